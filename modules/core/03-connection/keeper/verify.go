package keeper

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// VerifyConnectionState verifies a proof of the connection state of the
// specified connection end stored on the target machine.
func (k Keeper) VerifyConnectionState(
	ctx coretypes.Context,
	connection types.ConnectionEnd,
	height exported.Height,
	proof []byte,
	connectionID string,
	counterpartyConnection types.ConnectionEnd, // opposite connection
) error {
	clientID := connection.ClientId
	clientState, clientStore, err := k.getClientStateAndVerificationStore(ctx, clientID)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(connection.Counterparty.Prefix, commitmenttypes.NewMerklePath(host.ConnectionPath(connectionID)))
	if err != nil {
		return err
	}

	bz := k.cdc.MustMarshalBinaryBare(counterpartyConnection)

	if err := clientState.VerifyMembership(
		ctx, clientStore, k.cdc, height,
		connection.DelayPeriod, 0,
		proof, merklePath, bz,
	); err != nil {
		return errorsmod.Wrapf(err, "failed connection state verification for client (%s)", clientID)
	}

	return nil
}

// VerifyChannelState verifies a proof of the channel state of the specified
// channel end, under the specified port, stored on the target machine.
func (k Keeper) VerifyChannelState(
	ctx coretypes.Context,
	connection types.ConnectionEnd,
	height exported.Height,
	proof []byte,
	portID,
	channelID string,
	channel channeltypes.Channel,
) error {
	clientID := connection.ClientId
	clientState, clientStore, err := k.getClientStateAndVerificationStore(ctx, clientID)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(connection.Counterparty.Prefix, commitmenttypes.NewMerklePath(host.ChannelPath(portID, channelID)))
	if err != nil {
		return err
	}

	bz := k.cdc.MustMarshalBinaryBare(channel)

	if err := clientState.VerifyMembership(
		ctx, clientStore, k.cdc, height,
		connection.DelayPeriod, 0,
		proof, merklePath, bz,
	); err != nil {
		return errorsmod.Wrapf(err, "failed channel state verification for client (%s)", clientID)
	}

	return nil
}

// VerifyPacketCommitment verifies a proof of an outgoing packet commitment at
// the specified port, specified channel, and specified sequence.
func (k Keeper) VerifyPacketCommitment(
	ctx coretypes.Context,
	connection types.ConnectionEnd,
	height exported.Height,
	proof []byte,
	portID,
	channelID string,
	sequence uint64,
	commitmentBytes []byte,
) error {
	clientID := connection.ClientId
	clientState, clientStore, err := k.getClientStateAndVerificationStore(ctx, clientID)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(connection.Counterparty.Prefix, commitmenttypes.NewMerklePath(host.PacketCommitmentPath(portID, channelID, sequence)))
	if err != nil {
		return err
	}

	if err := clientState.VerifyMembership(
		ctx, clientStore, k.cdc, height,
		connection.DelayPeriod, 0,
		proof, merklePath, commitmentBytes,
	); err != nil {
		return errorsmod.Wrapf(err, "failed packet commitment verification for client (%s)", clientID)
	}

	return nil
}

// VerifyPacketAcknowledgement verifies a proof of an incoming packet
// acknowledgement at the specified port, specified channel, and specified sequence.
func (k Keeper) VerifyPacketAcknowledgement(
	ctx coretypes.Context,
	connection types.ConnectionEnd,
	height exported.Height,
	proof []byte,
	portID,
	channelID string,
	sequence uint64,
	acknowledgement []byte,
) error {
	clientID := connection.ClientId
	clientState, clientStore, err := k.getClientStateAndVerificationStore(ctx, clientID)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(connection.Counterparty.Prefix, commitmenttypes.NewMerklePath(host.PacketAcknowledgementPath(portID, channelID, sequence)))
	if err != nil {
		return err
	}

	if err := clientState.VerifyMembership(
		ctx, clientStore, k.cdc, height,
		connection.DelayPeriod, 0,
		proof, merklePath, channeltypes.CommitAcknowledgement(acknowledgement),
	); err != nil {
		return errorsmod.Wrapf(err, "failed packet acknowledgement verification for client (%s)", clientID)
	}

	return nil
}

// VerifyPacketReceiptAbsence verifies a proof of the absence of an
// incoming packet receipt at the specified port, specified channel, and
// specified sequence.
func (k Keeper) VerifyPacketReceiptAbsence(
	ctx coretypes.Context,
	connection types.ConnectionEnd,
	height exported.Height,
	proof []byte,
	portID,
	channelID string,
	sequence uint64,
) error {
	clientID := connection.ClientId
	clientState, clientStore, err := k.getClientStateAndVerificationStore(ctx, clientID)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(connection.Counterparty.Prefix, commitmenttypes.NewMerklePath(host.PacketReceiptPath(portID, channelID, sequence)))
	if err != nil {
		return err
	}

	if err := clientState.VerifyNonMembership(
		ctx, clientStore, k.cdc, height,
		connection.DelayPeriod, 0,
		proof, merklePath,
	); err != nil {
		return errorsmod.Wrapf(err, "failed packet receipt absence verification for client (%s)", clientID)
	}

	return nil
}

// VerifyNextSequenceRecv verifies a proof of the next sequence number to be
// received of the specified channel at the specified port.
func (k Keeper) VerifyNextSequenceRecv(
	ctx coretypes.Context,
	connection types.ConnectionEnd,
	height exported.Height,
	proof []byte,
	portID,
	channelID string,
	nextSequenceRecv uint64,
) error {
	clientID := connection.ClientId
	clientState, clientStore, err := k.getClientStateAndVerificationStore(ctx, clientID)
	if err != nil {
		return err
	}

	merklePath, err := commitmenttypes.ApplyPrefix(connection.Counterparty.Prefix, commitmenttypes.NewMerklePath(host.NextSequenceRecvPath(portID, channelID)))
	if err != nil {
		return err
	}

	if err := clientState.VerifyMembership(
		ctx, clientStore, k.cdc, height,
		connection.DelayPeriod, 0,
		proof, merklePath, storetypes.Uint64ToBigEndian(nextSequenceRecv),
	); err != nil {
		return errorsmod.Wrapf(err, "failed next sequence receive verification for client (%s)", clientID)
	}

	return nil
}

// getClientStateAndVerificationStore returns the client state and associated
// KVStore for the provided client identifier. The client must be Active.
func (k Keeper) getClientStateAndVerificationStore(ctx coretypes.Context, clientID string) (exported.ClientState, storetypes.KVStore, error) {
	clientState, found := k.clientKeeper.GetClientState(ctx, clientID)
	if !found {
		return nil, nil, errorsmod.Wrap(clienttypes.ErrClientNotFound, clientID)
	}

	if status := k.clientKeeper.GetClientStatus(ctx, clientID); status != exported.Active {
		return nil, nil, errorsmod.Wrapf(clienttypes.ErrClientNotActive, "client (%s) status is %s", clientID, status)
	}

	return clientState, k.clientKeeper.ClientStore(ctx, clientID), nil
}
