package prefix_test

import (
	"testing"

	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/ibc-core/store/dbadapter"
	"github.com/cosmos/ibc-core/store/prefix"
)

func TestPrefixStore(t *testing.T) {
	parent := dbadapter.NewStore(dbm.NewMemDB())
	store := prefix.NewStore(parent, []byte("clients/06-solomachine-0/"))

	store.Set([]byte("clientState"), []byte("value"))

	// the parent sees the key under the prefix
	require.Equal(t, []byte("value"), parent.Get([]byte("clients/06-solomachine-0/clientState")))
	require.Equal(t, []byte("value"), store.Get([]byte("clientState")))
	require.True(t, store.Has([]byte("clientState")))

	// stores with different prefixes are isolated from each other
	other := prefix.NewStore(parent, []byte("clients/06-solomachine-1/"))
	require.False(t, other.Has([]byte("clientState")))

	store.Delete([]byte("clientState"))
	require.False(t, store.Has([]byte("clientState")))
	require.False(t, parent.Has([]byte("clients/06-solomachine-0/clientState")))
}
