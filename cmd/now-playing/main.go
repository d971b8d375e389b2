package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/joho/godotenv"
	"github.com/zmb3/spotify/v2"
	spotifyauth "github.com/zmb3/spotify/v2/auth"
	"golang.org/x/oauth2"
)

func main() {
	_ = godotenv.Load()

	clientID := os.Getenv("SPOTIFY_CLIENT_ID")
	clientSecret := os.Getenv("SPOTIFY_CLIENT_SECRET")
	refreshToken := os.Getenv("SPOTIFY_REFRESH_TOKEN")

	if clientID == "" || clientSecret == "" || refreshToken == "" {
		log.Fatal("SPOTIFY_CLIENT_ID, SPOTIFY_CLIENT_SECRET and SPOTIFY_REFRESH_TOKEN must be set")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	authenticator := spotifyauth.New(
		spotifyauth.WithClientID(clientID),
		spotifyauth.WithClientSecret(clientSecret),
	)
	client := spotify.New(authenticator.Client(ctx, &oauth2.Token{RefreshToken: refreshToken}))

	playing, err := client.PlayerCurrentlyPlaying(ctx)
	if err != nil {
		log.Fatalf("Failed getting currently playing track: %v", err)
	}

	if playing == nil || playing.Item == nil {
		fmt.Println("Nothing is playing")
		return
	}

	artists := make([]string, 0, len(playing.Item.Artists))
	for _, artist := range playing.Item.Artists {
		artists = append(artists, artist.Name)
	}

	state := "paused"
	if playing.Playing {
		state = "playing"
	}

	progress := time.Duration(playing.Progress) * time.Millisecond
	duration := playing.Item.TimeDuration()

	fmt.Printf("%s - %s (%s)\n", playing.Item.Name, strings.Join(artists, ", "), state)
	fmt.Printf("%s / %s\n", progress.Round(time.Second), duration.Round(time.Second))
}
