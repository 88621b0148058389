package types

import (
	"time"

	"cosmossdk.io/log"

	"github.com/cosmos/ibc-core/store/cachekv"
	storetypes "github.com/cosmos/ibc-core/store/types"
)

// Context is the per-message execution environment handed to every keeper
// operation. It carries the host's view of the current block (height, time,
// chain id), the root IBC store, a logger and an event manager.
//
// Contexts are value types; the With* methods return shallow copies.
type Context struct {
	chainID      string
	blockHeight  int64
	blockTime    time.Time
	store        storetypes.KVStore
	logger       log.Logger
	eventManager *EventManager
}

// NewContext returns a Context configured for the given block.
func NewContext(chainID string, blockHeight int64, blockTime time.Time, store storetypes.KVStore, logger log.Logger) Context {
	return Context{
		chainID:      chainID,
		blockHeight:  blockHeight,
		blockTime:    blockTime,
		store:        store,
		logger:       logger,
		eventManager: NewEventManager(),
	}
}

// ChainID returns the chain identifier of the host chain.
func (c Context) ChainID() string { return c.chainID }

// BlockHeight returns the current block height of the host chain.
func (c Context) BlockHeight() int64 { return c.blockHeight }

// BlockTime returns the timestamp of the current block.
func (c Context) BlockTime() time.Time { return c.blockTime }

// KVStore returns the root IBC store.
func (c Context) KVStore() storetypes.KVStore { return c.store }

// Logger returns the context logger.
func (c Context) Logger() log.Logger { return c.logger }

// EventManager returns the event manager events are emitted into.
func (c Context) EventManager() *EventManager { return c.eventManager }

// WithBlockHeight returns a copy of the context with an updated block height.
func (c Context) WithBlockHeight(height int64) Context {
	c.blockHeight = height
	return c
}

// WithBlockTime returns a copy of the context with an updated block time.
func (c Context) WithBlockTime(blockTime time.Time) Context {
	c.blockTime = blockTime
	return c
}

// WithLogger returns a copy of the context with an updated logger.
func (c Context) WithLogger(logger log.Logger) Context {
	c.logger = logger
	return c
}

// WithKVStore returns a copy of the context with a different backing store.
func (c Context) WithKVStore(store storetypes.KVStore) Context {
	c.store = store
	return c
}

// CacheContext returns a context with the store branched and a fresh event
// manager, along with a write function. Nothing is visible to the parent
// context until write is called: state changes are flushed to the parent
// store and buffered events are emitted into the parent event manager. This
// is the all-or-nothing unit of work every inbound message runs in.
func (c Context) CacheContext() (cc Context, write func()) {
	cms := cachekv.NewStore(c.store)
	cc = c.WithKVStore(cms)
	cc.eventManager = NewEventManager()

	write = func() {
		c.eventManager.EmitEvents(cc.eventManager.Events())
		cms.Write()
	}

	return cc, write
}
