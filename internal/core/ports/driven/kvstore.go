package driven

// KVStore is the durable key-value persistence the repository writes
// through. Values are serialized collections; the store treats them as
// opaque strings. Implementations are synchronous and durable across
// process restarts.
type KVStore interface {
	// Get retrieves the value stored under key. The second result is
	// false when the key is absent.
	Get(key string) (string, bool, error)

	// Set stores value under key, replacing any previous value.
	Set(key, value string) error

	// Remove deletes the key. Removing an absent key is not an error.
	Remove(key string) error
}
