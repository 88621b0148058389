package cachekv

import (
	"sort"
	"sync"

	"github.com/cosmos/ibc-core/store/types"
)

// cValue represents a cached value. If dirty is true, it indicates the
// cached value is different from the underlying value.
type cValue struct {
	value []byte
	dirty bool
}

// Store wraps an in-memory cache around an underlying types.KVStore. Writes
// are buffered until Write is called, which flushes them to the parent in
// deterministic (sorted key) order. A Store that is discarded without
// calling Write leaves the parent untouched.
type Store struct {
	mtx    sync.Mutex
	cache  map[string]*cValue
	parent types.KVStore
}

var _ types.KVStore = (*Store)(nil)

// NewStore creates a new Store object
func NewStore(parent types.KVStore) *Store {
	return &Store{
		cache:  make(map[string]*cValue),
		parent: parent,
	}
}

// Get implements types.KVStore.
func (store *Store) Get(key []byte) []byte {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	types.AssertValidKey(key)

	cacheValue, ok := store.cache[string(key)]
	if ok {
		return cacheValue.value
	}

	value := store.parent.Get(key)
	store.setCacheValue(key, value, false)

	return value
}

// Set implements types.KVStore.
func (store *Store) Set(key, value []byte) {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	types.AssertValidKey(key)
	types.AssertValidValue(value)

	store.setCacheValue(key, value, true)
}

// Has implements types.KVStore.
func (store *Store) Has(key []byte) bool {
	value := store.Get(key)
	return value != nil
}

// Delete implements types.KVStore.
func (store *Store) Delete(key []byte) {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	types.AssertValidKey(key)
	store.setCacheValue(key, nil, true)
}

// Write writes pending updates to the parent store in sorted key order.
// The cache is cleared afterwards so the store can be reused.
func (store *Store) Write() {
	store.mtx.Lock()
	defer store.mtx.Unlock()

	keys := make([]string, 0, len(store.cache))
	for key, dbValue := range store.cache {
		if dbValue.dirty {
			keys = append(keys, key)
		}
	}

	sort.Strings(keys)

	for _, key := range keys {
		cacheValue := store.cache[key]
		if cacheValue.value == nil {
			store.parent.Delete([]byte(key))
			continue
		}

		store.parent.Set([]byte(key), cacheValue.value)
	}

	store.cache = make(map[string]*cValue)
}

// setCacheValue sets the cache value without locking; callers must hold mtx.
func (store *Store) setCacheValue(key, value []byte, dirty bool) {
	store.cache[string(key)] = &cValue{
		value: value,
		dirty: dirty,
	}
}
