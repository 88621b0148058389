package types_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"
	dbm "github.com/tendermint/tm-db"

	"github.com/cosmos/ibc-core/store/dbadapter"
	coretypes "github.com/cosmos/ibc-core/types"
)

func newTestContext() coretypes.Context {
	store := dbadapter.NewStore(dbm.NewMemDB())
	return coretypes.NewContext("testchain-1", 10, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), store, log.NewNopLogger())
}

func TestContextAccessors(t *testing.T) {
	ctx := newTestContext()

	require.Equal(t, "testchain-1", ctx.ChainID())
	require.Equal(t, int64(10), ctx.BlockHeight())
	require.Equal(t, time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC), ctx.BlockTime())
	require.NotNil(t, ctx.KVStore())
	require.NotNil(t, ctx.EventManager())

	ctx = ctx.WithBlockHeight(11).WithBlockTime(ctx.BlockTime().Add(time.Second))
	require.Equal(t, int64(11), ctx.BlockHeight())
}

func TestCacheContextDiscard(t *testing.T) {
	ctx := newTestContext()

	cacheCtx, _ := ctx.CacheContext()
	cacheCtx.KVStore().Set([]byte("key"), []byte("value"))
	cacheCtx.EventManager().EmitEvent(coretypes.NewEvent("test", coretypes.NewAttribute("k", "v")))

	require.Equal(t, []byte("value"), cacheCtx.KVStore().Get([]byte("key")))

	// nothing is visible to the parent until write is called
	require.Nil(t, ctx.KVStore().Get([]byte("key")))
	require.Empty(t, ctx.EventManager().Events())
}

func TestCacheContextWrite(t *testing.T) {
	ctx := newTestContext()

	cacheCtx, writeFn := ctx.CacheContext()
	cacheCtx.KVStore().Set([]byte("key"), []byte("value"))
	cacheCtx.EventManager().EmitEvent(coretypes.NewEvent("test", coretypes.NewAttribute("k", "v")))

	writeFn()

	require.Equal(t, []byte("value"), ctx.KVStore().Get([]byte("key")))
	require.Len(t, ctx.EventManager().Events(), 1)
	require.Equal(t, "test", ctx.EventManager().Events()[0].Type)
}

func TestCacheContextNested(t *testing.T) {
	ctx := newTestContext()

	cacheCtx, writeFn := ctx.CacheContext()
	nestedCtx, nestedWriteFn := cacheCtx.CacheContext()

	nestedCtx.KVStore().Set([]byte("nested"), []byte("value"))
	nestedWriteFn()

	require.Equal(t, []byte("value"), cacheCtx.KVStore().Get([]byte("nested")))
	require.Nil(t, ctx.KVStore().Get([]byte("nested")))

	writeFn()
	require.Equal(t, []byte("value"), ctx.KVStore().Get([]byte("nested")))
}
