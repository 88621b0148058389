package types

import (
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"

	"github.com/cosmos/ibc-core/modules/core/exported"
)

// ClientKeeper expected account IBC client keeper
type ClientKeeper interface {
	GetClientState(ctx coretypes.Context, clientID string) (exported.ClientState, bool)
	GetClientConsensusState(ctx coretypes.Context, clientID string, height exported.Height) (exported.ConsensusState, bool)
	GetClientStatus(ctx coretypes.Context, clientID string) exported.Status
	GetClientTimestampAtHeight(ctx coretypes.Context, clientID string, height exported.Height) (uint64, error)
	ClientStore(ctx coretypes.Context, clientID string) storetypes.KVStore
}
