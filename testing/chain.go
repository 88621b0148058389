package ibctesting

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	amino "github.com/tendermint/go-amino"
	dbm "github.com/tendermint/tm-db"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	porttypes "github.com/cosmos/ibc-core/modules/core/05-port/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-core/modules/core/keeper"
	ibctypes "github.com/cosmos/ibc-core/modules/core/types"
	solomachine "github.com/cosmos/ibc-core/modules/light-clients/06-solomachine"
	"github.com/cosmos/ibc-core/store/dbadapter"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// TestChain is a single IBC host in a test fixture. It keeps its state in an
// in-memory database and is represented to counterparty chains as a solo
// machine, so proofs of its state are signatures rather than Merkle proofs.
type TestChain struct {
	t *testing.T

	Coordinator *Coordinator
	ChainID     string
	Codec       *amino.Codec
	DB          dbm.DB
	Store       storetypes.KVStore
	Keeper      *keeper.Keeper
	MockModule  *MockModule

	// Solomachine is the chain's signing identity
	Solomachine *Solomachine

	CurrentHeight int64
	CurrentTime   time.Time
}

// NewTestChain initializes a chain with a fresh in-memory store, a sealed
// router binding the mock application and a solo machine identity.
func NewTestChain(t *testing.T, coord *Coordinator, chainID string) *TestChain {
	t.Helper()

	cdc := amino.NewCodec()
	ibctypes.RegisterCodec(cdc)
	solomachine.RegisterCodec(cdc)

	db := dbm.NewMemDB()
	store := dbadapter.NewStore(db)

	k := keeper.NewKeeper(cdc)
	mockModule := NewMockModule()
	router := porttypes.NewRouter()
	router.AddRoute(MockPort, mockModule)
	k.SetRouter(router)

	return &TestChain{
		t:             t,
		Coordinator:   coord,
		ChainID:       chainID,
		Codec:         cdc,
		DB:            db,
		Store:         store,
		Keeper:        k,
		MockModule:    mockModule,
		Solomachine:   NewSolomachine(t, cdc, DefaultDiversifier+"-"+chainID, coord.CurrentTime),
		CurrentHeight: 1,
		CurrentTime:   coord.CurrentTime,
	}
}

// GetContext returns a context for the current block of the chain.
func (chain *TestChain) GetContext() coretypes.Context {
	return coretypes.NewContext(chain.ChainID, chain.CurrentHeight, chain.CurrentTime, chain.Store, log.NewNopLogger())
}

// NextBlock advances the chain by one block.
func (chain *TestChain) NextBlock() {
	chain.CurrentHeight++
}

// GetPrefix returns the store prefix under which the chain commits its state.
func (chain *TestChain) GetPrefix() commitmenttypes.MerklePrefix {
	return prefix
}

// GetTimeoutHeight returns a height on this chain far enough in the future
// that packets sent to it do not time out during a test.
func (chain *TestChain) GetTimeoutHeight() clienttypes.Height {
	return clienttypes.NewHeight(clienttypes.ParseChainID(chain.ChainID), uint64(chain.CurrentHeight)+100)
}

// GetTimeoutTimestamp returns a timestamp on this chain far enough in the
// future that packets sent to it do not time out during a test.
func (chain *TestChain) GetTimeoutTimestamp() uint64 {
	return uint64(chain.CurrentTime.Add(time.Hour).UnixNano())
}
