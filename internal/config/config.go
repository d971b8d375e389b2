package config

import (
	"errors"
	"fmt"

	"github.com/ilyakaznacheev/cleanenv"
	"github.com/joho/godotenv"
)

var ErrMissingRequiredValue = errors.New("missing required value")
var ErrInvalidValue = errors.New("invalid value")

type environment string

const (
	production  environment = "production"
	development environment = "development"
)

type Config struct {
	spotifyClientID     string
	spotifyClientSecret string
	spotifyRefreshToken string
	externalAuthToken   string
	sentryDSN           string
	port                string
	env                 environment
}

func (c *Config) SpotifyClientID() string {
	return c.spotifyClientID
}

func (c *Config) SpotifyClientSecret() string {
	return c.spotifyClientSecret
}

func (c *Config) SpotifyRefreshToken() string {
	return c.spotifyRefreshToken
}

func (c *Config) ExternalAuthToken() string {
	return c.externalAuthToken
}

func (c *Config) SentryDSN() string {
	return c.sentryDSN
}

func (c *Config) Port() string {
	return c.port
}

func (c *Config) IsProduction() bool {
	return c.env == production
}

func (c *Config) IsDevelopment() bool {
	return c.env == development
}

// Return a string representation suitable for logging etc
func (c *Config) NonSensitiveString() string {
	return fmt.Sprintf("Config{env: %s, port: %s, ...}", string(c.env), c.port)
}

type rawConfig struct {
	Environment         string `env:"SPOT_ENVIRONMENT"`
	SpotifyClientID     string `env:"SPOTIFY_CLIENT_ID"`
	SpotifyClientSecret string `env:"SPOTIFY_CLIENT_SECRET"`
	SpotifyRefreshToken string `env:"SPOTIFY_REFRESH_TOKEN"`
	ExternalAuthToken   string `env:"EXTERNAL_AUTH_TOKEN"`
	SentryDSN           string `env:"SENTRY_DSN"`
	Port                string `env:"PORT" env-default:"3001"`
}

func ConfigFromEnv() (Config, error) {
	// A .env file is optional, real environment variables take precedence
	_ = godotenv.Load()

	var raw rawConfig
	if err := cleanenv.ReadEnv(&raw); err != nil {
		return Config{}, fmt.Errorf("failed to read environment: %w", err)
	}

	missingKey := func(key string) (Config, error) {
		return Config{}, fmt.Errorf("%w: %s", ErrMissingRequiredValue, key)
	}

	var env environment
	switch raw.Environment {
	case "production":
		env = production
	case "development":
		env = development
	case "":
		return missingKey("SPOT_ENVIRONMENT")
	default:
		return Config{}, fmt.Errorf("%w: SPOT_ENVIRONMENT (%s)", ErrInvalidValue, raw.Environment)
	}

	if env == production {
		if raw.SpotifyClientID == "" {
			return missingKey("SPOTIFY_CLIENT_ID")
		}
		if raw.SpotifyClientSecret == "" {
			return missingKey("SPOTIFY_CLIENT_SECRET")
		}
		if raw.SpotifyRefreshToken == "" {
			return missingKey("SPOTIFY_REFRESH_TOKEN")
		}
		if raw.ExternalAuthToken == "" {
			return missingKey("EXTERNAL_AUTH_TOKEN")
		}
		if raw.SentryDSN == "" {
			return missingKey("SENTRY_DSN")
		}
	}

	return Config{
		spotifyClientID:     raw.SpotifyClientID,
		spotifyClientSecret: raw.SpotifyClientSecret,
		spotifyRefreshToken: raw.SpotifyRefreshToken,
		externalAuthToken:   raw.ExternalAuthToken,
		sentryDSN:           raw.SentryDSN,
		port:                raw.Port,
		env:                 env,
	}, nil
}
