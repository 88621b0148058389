package keeper

import (
	errorsmod "cosmossdk.io/errors"
	"cosmossdk.io/log"
	amino "github.com/tendermint/go-amino"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-core/modules/core/03-connection/types"
	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// Keeper defines the IBC channel keeper
type Keeper struct {
	cdc              *amino.Codec
	clientKeeper     types.ClientKeeper
	connectionKeeper types.ConnectionKeeper
}

// NewKeeper creates a new IBC channel Keeper instance
func NewKeeper(
	cdc *amino.Codec,
	clientKeeper types.ClientKeeper,
	connectionKeeper types.ConnectionKeeper,
) Keeper {
	return Keeper{
		cdc:              cdc,
		clientKeeper:     clientKeeper,
		connectionKeeper: connectionKeeper,
	}
}

// Logger returns a module-specific logger.
func (Keeper) Logger(ctx coretypes.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName+"/"+types.SubModuleName)
}

// GenerateChannelIdentifier returns the next channel identifier.
func (k Keeper) GenerateChannelIdentifier(ctx coretypes.Context) string {
	nextChannelSeq := k.GetNextChannelSequence(ctx)
	channelID := types.FormatChannelIdentifier(nextChannelSeq)

	nextChannelSeq++
	k.SetNextChannelSequence(ctx, nextChannelSeq)
	return channelID
}

// GetChannel returns a channel with a particular identifier binded to a specific port
func (k Keeper) GetChannel(ctx coretypes.Context, portID, channelID string) (types.Channel, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.ChannelKey(portID, channelID))
	if len(bz) == 0 {
		return types.Channel{}, false
	}

	var channel types.Channel
	k.cdc.MustUnmarshalBinaryBare(bz, &channel)
	return channel, true
}

// HasChannel true if the channel with the given identifiers exists in state.
func (k Keeper) HasChannel(ctx coretypes.Context, portID, channelID string) bool {
	store := ctx.KVStore()
	return store.Has(host.ChannelKey(portID, channelID))
}

// SetChannel sets a channel to the store
func (k Keeper) SetChannel(ctx coretypes.Context, portID, channelID string, channel types.Channel) {
	store := ctx.KVStore()
	bz := k.cdc.MustMarshalBinaryBare(channel)
	store.Set(host.ChannelKey(portID, channelID), bz)
}

// GetNextChannelSequence gets the next channel sequence from the store.
func (k Keeper) GetNextChannelSequence(ctx coretypes.Context) uint64 {
	store := ctx.KVStore()
	bz := store.Get([]byte(types.KeyNextChannelSequence))
	if len(bz) == 0 {
		return 0
	}

	return storetypes.BigEndianToUint64(bz)
}

// SetNextChannelSequence sets the next channel sequence to the store.
func (k Keeper) SetNextChannelSequence(ctx coretypes.Context, sequence uint64) {
	store := ctx.KVStore()
	bz := storetypes.Uint64ToBigEndian(sequence)
	store.Set([]byte(types.KeyNextChannelSequence), bz)
}

// GetNextSequenceSend gets a channel's next send sequence from the store
func (k Keeper) GetNextSequenceSend(ctx coretypes.Context, portID, channelID string) (uint64, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.NextSequenceSendKey(portID, channelID))
	if len(bz) == 0 {
		return 0, false
	}

	return storetypes.BigEndianToUint64(bz), true
}

// SetNextSequenceSend sets a channel's next send sequence to the store
func (k Keeper) SetNextSequenceSend(ctx coretypes.Context, portID, channelID string, sequence uint64) {
	store := ctx.KVStore()
	bz := storetypes.Uint64ToBigEndian(sequence)
	store.Set(host.NextSequenceSendKey(portID, channelID), bz)
}

// GetNextSequenceRecv gets a channel's next receive sequence from the store
func (k Keeper) GetNextSequenceRecv(ctx coretypes.Context, portID, channelID string) (uint64, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.NextSequenceRecvKey(portID, channelID))
	if len(bz) == 0 {
		return 0, false
	}

	return storetypes.BigEndianToUint64(bz), true
}

// SetNextSequenceRecv sets a channel's next receive sequence to the store
func (k Keeper) SetNextSequenceRecv(ctx coretypes.Context, portID, channelID string, sequence uint64) {
	store := ctx.KVStore()
	bz := storetypes.Uint64ToBigEndian(sequence)
	store.Set(host.NextSequenceRecvKey(portID, channelID), bz)
}

// GetNextSequenceAck gets a channel's next ack sequence from the store
func (k Keeper) GetNextSequenceAck(ctx coretypes.Context, portID, channelID string) (uint64, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.NextSequenceAckKey(portID, channelID))
	if len(bz) == 0 {
		return 0, false
	}

	return storetypes.BigEndianToUint64(bz), true
}

// SetNextSequenceAck sets a channel's next ack sequence to the store
func (k Keeper) SetNextSequenceAck(ctx coretypes.Context, portID, channelID string, sequence uint64) {
	store := ctx.KVStore()
	bz := storetypes.Uint64ToBigEndian(sequence)
	store.Set(host.NextSequenceAckKey(portID, channelID), bz)
}

// GetPacketReceipt gets a packet receipt from the store
func (k Keeper) GetPacketReceipt(ctx coretypes.Context, portID, channelID string, sequence uint64) (string, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.PacketReceiptKey(portID, channelID, sequence))
	if len(bz) == 0 {
		return "", false
	}

	return string(bz), true
}

// SetPacketReceipt sets an empty packet receipt to the store
func (k Keeper) SetPacketReceipt(ctx coretypes.Context, portID, channelID string, sequence uint64) {
	store := ctx.KVStore()
	store.Set(host.PacketReceiptKey(portID, channelID, sequence), []byte{byte(1)})
}

// GetPacketCommitment gets the packet commitment hash from the store
func (k Keeper) GetPacketCommitment(ctx coretypes.Context, portID, channelID string, sequence uint64) []byte {
	store := ctx.KVStore()
	bz := store.Get(host.PacketCommitmentKey(portID, channelID, sequence))
	return bz
}

// HasPacketCommitment returns true if the packet commitment exists
func (k Keeper) HasPacketCommitment(ctx coretypes.Context, portID, channelID string, sequence uint64) bool {
	store := ctx.KVStore()
	return store.Has(host.PacketCommitmentKey(portID, channelID, sequence))
}

// SetPacketCommitment sets the packet commitment hash to the store
func (k Keeper) SetPacketCommitment(ctx coretypes.Context, portID, channelID string, sequence uint64, commitmentHash []byte) {
	store := ctx.KVStore()
	store.Set(host.PacketCommitmentKey(portID, channelID, sequence), commitmentHash)
}

func (k Keeper) deletePacketCommitment(ctx coretypes.Context, portID, channelID string, sequence uint64) {
	store := ctx.KVStore()
	store.Delete(host.PacketCommitmentKey(portID, channelID, sequence))
}

// SetPacketAcknowledgement sets the packet ack hash to the store
func (k Keeper) SetPacketAcknowledgement(ctx coretypes.Context, portID, channelID string, sequence uint64, ackHash []byte) {
	store := ctx.KVStore()
	store.Set(host.PacketAcknowledgementKey(portID, channelID, sequence), ackHash)
}

// GetPacketAcknowledgement gets the packet ack hash from the store
func (k Keeper) GetPacketAcknowledgement(ctx coretypes.Context, portID, channelID string, sequence uint64) ([]byte, bool) {
	store := ctx.KVStore()
	bz := store.Get(host.PacketAcknowledgementKey(portID, channelID, sequence))
	if len(bz) == 0 {
		return nil, false
	}
	return bz, true
}

// HasPacketAcknowledgement check if the packet ack hash is already on the store
func (k Keeper) HasPacketAcknowledgement(ctx coretypes.Context, portID, channelID string, sequence uint64) bool {
	store := ctx.KVStore()
	return store.Has(host.PacketAcknowledgementKey(portID, channelID, sequence))
}

// GetChannelClientState returns the associated client state with its proper clientID
// for the provided port and channel identifiers.
func (k Keeper) GetChannelClientState(ctx coretypes.Context, portID, channelID string) (string, exported.ClientState, error) {
	channel, found := k.GetChannel(ctx, portID, channelID)
	if !found {
		return "", nil, errorsmod.Wrapf(types.ErrChannelNotFound, "port-id: %s, channel-id: %s", portID, channelID)
	}

	connection, found := k.connectionKeeper.GetConnection(ctx, channel.ConnectionHops[0])
	if !found {
		return "", nil, errorsmod.Wrapf(connectiontypes.ErrConnectionNotFound, "connection-id: %s", channel.ConnectionHops[0])
	}

	clientState, found := k.clientKeeper.GetClientState(ctx, connection.ClientId)
	if !found {
		return "", nil, errorsmod.Wrapf(clienttypes.ErrClientNotFound, "client-id: %s", connection.ClientId)
	}

	return connection.ClientId, clientState, nil
}

// GetConnection wraps the connection keeper's GetConnection function.
func (k Keeper) GetConnection(ctx coretypes.Context, connectionID string) (connectiontypes.ConnectionEnd, error) {
	connection, found := k.connectionKeeper.GetConnection(ctx, connectionID)
	if !found {
		return connectiontypes.ConnectionEnd{}, errorsmod.Wrapf(connectiontypes.ErrConnectionNotFound, "connection-id: %s", connectionID)
	}

	return connection, nil
}
