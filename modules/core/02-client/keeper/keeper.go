package keeper

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	amino "github.com/tendermint/go-amino"

	"github.com/cosmos/ibc-core/modules/core/02-client/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	"github.com/cosmos/ibc-core/store/prefix"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// Keeper represents a type that grants read and write permissions to any client
// state information
type Keeper struct {
	cdc *amino.Codec
}

// NewKeeper creates a new NewKeeper instance
func NewKeeper(cdc *amino.Codec) Keeper {
	return Keeper{
		cdc: cdc,
	}
}

// Codec returns the IBC module codec.
func (k Keeper) Codec() *amino.Codec {
	return k.cdc
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx coretypes.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GenerateClientIdentifier returns the next client identifier.
func (k Keeper) GenerateClientIdentifier(ctx coretypes.Context, clientType string) string {
	nextClientSeq := k.GetNextClientSequence(ctx)
	clientID := types.FormatClientIdentifier(clientType, nextClientSeq)

	nextClientSeq++
	k.SetNextClientSequence(ctx, nextClientSeq)
	return clientID
}

// GetClientState gets a particular client from the store
func (k Keeper) GetClientState(ctx coretypes.Context, clientID string) (exported.ClientState, bool) {
	store := k.ClientStore(ctx, clientID)
	bz := store.Get(host.ClientStateKey())
	if len(bz) == 0 {
		return nil, false
	}

	clientState := types.MustUnmarshalClientState(k.cdc, bz)
	return clientState, true
}

// SetClientState sets a particular Client to the store
func (k Keeper) SetClientState(ctx coretypes.Context, clientID string, clientState exported.ClientState) {
	store := k.ClientStore(ctx, clientID)
	store.Set(host.ClientStateKey(), types.MustMarshalClientState(k.cdc, clientState))
}

// GetClientConsensusState gets the stored consensus state from a client at a given height.
func (k Keeper) GetClientConsensusState(ctx coretypes.Context, clientID string, height exported.Height) (exported.ConsensusState, bool) {
	store := k.ClientStore(ctx, clientID)
	bz := store.Get(host.ConsensusStateKey(height))
	if len(bz) == 0 {
		return nil, false
	}

	consensusState := types.MustUnmarshalConsensusState(k.cdc, bz)
	return consensusState, true
}

// SetClientConsensusState sets a ConsensusState to a particular client at the given height
func (k Keeper) SetClientConsensusState(ctx coretypes.Context, clientID string, height exported.Height, consensusState exported.ConsensusState) {
	store := k.ClientStore(ctx, clientID)
	store.Set(host.ConsensusStateKey(height), types.MustMarshalConsensusState(k.cdc, consensusState))
}

// GetNextClientSequence gets the next client sequence from the store.
func (k Keeper) GetNextClientSequence(ctx coretypes.Context) uint64 {
	store := ctx.KVStore()
	bz := store.Get([]byte(types.KeyNextClientSequence))
	if len(bz) == 0 {
		return 0
	}

	return storetypes.BigEndianToUint64(bz)
}

// SetNextClientSequence sets the next client sequence to the store.
func (k Keeper) SetNextClientSequence(ctx coretypes.Context, sequence uint64) {
	store := ctx.KVStore()
	bz := storetypes.Uint64ToBigEndian(sequence)
	store.Set([]byte(types.KeyNextClientSequence), bz)
}

// ClientStore returns isolated prefix store for each client so they can read/write in separate
// namespace without being able to read/write other client's data
func (k Keeper) ClientStore(ctx coretypes.Context, clientID string) storetypes.KVStore {
	clientPrefix := []byte(fmt.Sprintf("%s/%s/", host.KeyClientStorePrefix, clientID))
	return prefix.NewStore(ctx.KVStore(), clientPrefix)
}

// GetClientStatus returns the status for a client state given a client identifier. If the client
// does not exist, an Unknown status is returned.
func (k Keeper) GetClientStatus(ctx coretypes.Context, clientID string) exported.Status {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return exported.Unknown
	}

	if !k.GetParams(ctx).IsAllowedClient(clientState.ClientType()) {
		return exported.Unknown
	}

	return clientState.Status(ctx, k.ClientStore(ctx, clientID), k.cdc)
}

// GetClientTimestampAtHeight returns the timestamp in nanoseconds of the consensus state at the
// given height.
func (k Keeper) GetClientTimestampAtHeight(ctx coretypes.Context, clientID string, height exported.Height) (uint64, error) {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return 0, errorsmod.Wrapf(types.ErrClientNotFound, "clientID (%s)", clientID)
	}

	return clientState.GetTimestampAtHeight(ctx, k.ClientStore(ctx, clientID), k.cdc, height)
}

// GetParams returns the total set of ibc-client parameters.
func (k Keeper) GetParams(ctx coretypes.Context) types.Params {
	store := ctx.KVStore()
	bz := store.Get([]byte(types.KeyParams))
	if len(bz) == 0 {
		return types.DefaultParams()
	}

	var params types.Params
	k.cdc.MustUnmarshalBinaryBare(bz, &params)
	return params
}

// SetParams sets the total set of ibc-client parameters.
func (k Keeper) SetParams(ctx coretypes.Context, params types.Params) {
	store := ctx.KVStore()
	bz := k.cdc.MustMarshalBinaryBare(params)
	store.Set([]byte(types.KeyParams), bz)
}
