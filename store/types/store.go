package types

// KVStore is the host state interface consumed by the core submodules. State
// is persisted under the standardized paths defined in 24-host; the concrete
// backing store is supplied by the embedding host (see store/dbadapter for
// the default tm-db backing).
type KVStore interface {
	// Get returns nil iff key doesn't exist. Panics on nil key.
	Get(key []byte) []byte

	// Has checks if a key exists. Panics on nil key.
	Has(key []byte) bool

	// Set sets the key. Panics on nil key or nil value.
	Set(key, value []byte)

	// Delete deletes the key. Panics on nil key.
	Delete(key []byte)
}
