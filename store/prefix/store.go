package prefix

import (
	"github.com/cosmos/ibc-core/store/types"
)

// Store wraps a parent store and prepends a fixed prefix to every key. It is
// used to give each client an isolated sub-store rooted at its 24-host
// client path.
type Store struct {
	parent types.KVStore
	prefix []byte
}

var _ types.KVStore = Store{}

// NewStore returns a prefixed view over the parent store.
func NewStore(parent types.KVStore, prefix []byte) Store {
	return Store{
		parent: parent,
		prefix: prefix,
	}
}

func (s Store) key(key []byte) []byte {
	if key == nil {
		panic("nil key on Store")
	}

	return cloneAppend(s.prefix, key)
}

func cloneAppend(bz, tail []byte) []byte {
	res := make([]byte, len(bz)+len(tail))
	copy(res, bz)
	copy(res[len(bz):], tail)
	return res
}

// Get implements types.KVStore.
func (s Store) Get(key []byte) []byte {
	return s.parent.Get(s.key(key))
}

// Has implements types.KVStore.
func (s Store) Has(key []byte) bool {
	return s.parent.Has(s.key(key))
}

// Set implements types.KVStore.
func (s Store) Set(key, value []byte) {
	types.AssertValidKey(key)
	types.AssertValidValue(value)
	s.parent.Set(s.key(key), value)
}

// Delete implements types.KVStore.
func (s Store) Delete(key []byte) {
	s.parent.Delete(s.key(key))
}
