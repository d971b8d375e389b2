package cache

// Key identifies one of the few cached upstream resources. The keyspace is
// fixed and enumerated here, it is not a general string keyspace.
type Key string

const (
	KeyCurrentTrack Key = "current-track"
	KeyTopTracks    Key = "top-tracks"
)

// Cache is a store of previously fetched upstream values with a bounded
// lifetime. An entry past its expiry is treated as absent. Implementations
// must make get, set and delete atomic with respect to each other.
type Cache[T any] interface {
	get(key Key) (T, bool)
	set(key Key, data T)
	delete(key Key)
}
