package cachekv_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/ibc-core/store/cachekv"
	"github.com/cosmos/ibc-core/store/dbadapter"
)

func TestCacheKVStore(t *testing.T) {
	parent := dbadapter.NewStore(dbm.NewMemDB())
	parent.Set([]byte("key1"), []byte("value1"))

	store := cachekv.NewStore(parent)

	// reads pass through to the parent
	require.Equal(t, []byte("value1"), store.Get([]byte("key1")))
	require.True(t, store.Has([]byte("key1")))

	// writes are buffered until Write is called
	store.Set([]byte("key2"), []byte("value2"))
	require.Equal(t, []byte("value2"), store.Get([]byte("key2")))
	require.Nil(t, parent.Get([]byte("key2")))

	store.Delete([]byte("key1"))
	require.False(t, store.Has([]byte("key1")))
	require.True(t, parent.Has([]byte("key1")))

	store.Write()

	require.Equal(t, []byte("value2"), parent.Get([]byte("key2")))
	require.False(t, parent.Has([]byte("key1")))
}

func TestCacheKVStoreDiscard(t *testing.T) {
	parent := dbadapter.NewStore(dbm.NewMemDB())
	parent.Set([]byte("key1"), []byte("value1"))

	store := cachekv.NewStore(parent)
	store.Set([]byte("key1"), []byte("overwritten"))
	store.Set([]byte("key2"), []byte("value2"))

	// dropping the cache without Write leaves the parent untouched
	require.Equal(t, []byte("value1"), parent.Get([]byte("key1")))
	require.Nil(t, parent.Get([]byte("key2")))
}

func TestCacheKVStoreNested(t *testing.T) {
	parent := dbadapter.NewStore(dbm.NewMemDB())

	outer := cachekv.NewStore(parent)
	outer.Set([]byte("key1"), []byte("value1"))

	inner := cachekv.NewStore(outer)
	inner.Set([]byte("key2"), []byte("value2"))
	require.Equal(t, []byte("value1"), inner.Get([]byte("key1")))

	inner.Write()
	require.Equal(t, []byte("value2"), outer.Get([]byte("key2")))
	require.Nil(t, parent.Get([]byte("key2")))

	outer.Write()
	require.Equal(t, []byte("value1"), parent.Get([]byte("key1")))
	require.Equal(t, []byte("value2"), parent.Get([]byte("key2")))
}

func TestCacheKVStoreValidation(t *testing.T) {
	store := cachekv.NewStore(dbadapter.NewStore(dbm.NewMemDB()))

	require.Panics(t, func() { store.Set(nil, []byte("value")) })
	require.Panics(t, func() { store.Set([]byte(""), []byte("value")) })
	require.Panics(t, func() { store.Set([]byte("key"), nil) })
	require.Panics(t, func() { store.Get(nil) })
}
