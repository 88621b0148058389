package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	amino "github.com/tendermint/go-amino"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/03-connection/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// Keeper defines the IBC connection keeper
type Keeper struct {
	cdc          *amino.Codec
	clientKeeper types.ClientKeeper
}

// NewKeeper creates a new IBC connection Keeper instance
func NewKeeper(cdc *amino.Codec, ck types.ClientKeeper) Keeper {
	return Keeper{
		cdc:          cdc,
		clientKeeper: ck,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx coretypes.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GetCommitmentPrefix returns the IBC connection store prefix as a commitment
// Prefix
func (Keeper) GetCommitmentPrefix() commitmenttypes.MerklePrefix {
	return commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey))
}

// GenerateConnectionIdentifier returns the next connection identifier.
func (k Keeper) GenerateConnectionIdentifier(ctx coretypes.Context) string {
	nextConnSeq := k.GetNextConnectionSequence(ctx)
	connectionID := types.FormatConnectionIdentifier(nextConnSeq)

	nextConnSeq++
	k.SetNextConnectionSequence(ctx, nextConnSeq)
	return connectionID
}

// GetConnection returns a connection with a particular identifier
func (k Keeper) GetConnection(ctx coretypes.Context, connectionID string) (types.ConnectionEnd, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.ConnectionKey(connectionID))
	if len(bz) == 0 {
		return types.ConnectionEnd{}, false
	}

	var connection types.ConnectionEnd
	k.cdc.MustUnmarshalBinaryBare(bz, &connection)

	return connection, true
}

// HasConnection returns true if the connection with the provided identifier
// exists in the store.
func (k Keeper) HasConnection(ctx coretypes.Context, connectionID string) bool {
	store := ctx.KVStore()
	return store.Has(host.ConnectionKey(connectionID))
}

// SetConnection sets a connection to the store
func (k Keeper) SetConnection(ctx coretypes.Context, connectionID string, connection types.ConnectionEnd) {
	store := ctx.KVStore()
	bz := k.cdc.MustMarshalBinaryBare(connection)
	store.Set(host.ConnectionKey(connectionID), bz)
}

// GetNextConnectionSequence gets the next connection sequence from the store.
func (k Keeper) GetNextConnectionSequence(ctx coretypes.Context) uint64 {
	store := ctx.KVStore()
	bz := store.Get([]byte(types.KeyNextConnectionSequence))
	if len(bz) == 0 {
		return 0
	}

	return storetypes.BigEndianToUint64(bz)
}

// SetNextConnectionSequence sets the next connection sequence to the store.
func (k Keeper) SetNextConnectionSequence(ctx coretypes.Context, sequence uint64) {
	store := ctx.KVStore()
	bz := storetypes.Uint64ToBigEndian(sequence)
	store.Set([]byte(types.KeyNextConnectionSequence), bz)
}

// GetClientConnectionPaths returns all the connection paths stored under a
// particular client
func (k Keeper) GetClientConnectionPaths(ctx coretypes.Context, clientID string) ([]string, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.ClientConnectionsKey(clientID))
	if len(bz) == 0 {
		return nil, false
	}

	var paths []string
	k.cdc.MustUnmarshalBinaryBare(bz, &paths)
	return paths, true
}

// SetClientConnectionPaths sets the connections paths for client
func (k Keeper) SetClientConnectionPaths(ctx coretypes.Context, clientID string, paths []string) {
	store := ctx.KVStore()
	bz := k.cdc.MustMarshalBinaryBare(paths)
	store.Set(host.ClientConnectionsKey(clientID), bz)
}

// GetTimestampAtHeight returns the timestamp in nanoseconds of the consensus
// state at the given height.
func (k Keeper) GetTimestampAtHeight(ctx coretypes.Context, connection types.ConnectionEnd, height exported.Height) (uint64, error) {
	return k.clientKeeper.GetClientTimestampAtHeight(ctx, connection.ClientId, height)
}

// addConnectionToClient is used to add a connection identifier to the set of
// connections associated with a client.
func (k Keeper) addConnectionToClient(ctx coretypes.Context, clientID, connectionID string) error {
	_, found := k.clientKeeper.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	conns, found := k.GetClientConnectionPaths(ctx, clientID)
	if !found {
		conns = []string{}
	}

	conns = append(conns, connectionID)
	k.SetClientConnectionPaths(ctx, clientID, conns)
	return nil
}
