package keeper

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-core/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-core/modules/core/05-port/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// Every message handler runs against a branched context. State and events are
// written back to the caller's context only if the handler succeeds, so a
// failed message leaves no residue.

// CreateClient defines a rpc handler method for MsgCreateClient.
func (k *Keeper) CreateClient(ctx coretypes.Context, msg *clienttypes.MsgCreateClient) (*clienttypes.MsgCreateClientResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	clientID, err := k.ClientKeeper.CreateClient(cacheCtx, msg.ClientState, msg.ConsensusState)
	if err != nil {
		return nil, err
	}

	writeFn()

	return &clienttypes.MsgCreateClientResponse{ClientId: clientID}, nil
}

// UpdateClient defines a rpc handler method for MsgUpdateClient.
func (k *Keeper) UpdateClient(ctx coretypes.Context, msg *clienttypes.MsgUpdateClient) (*clienttypes.MsgUpdateClientResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ClientKeeper.UpdateClient(cacheCtx, msg.ClientId, msg.ClientMessage); err != nil {
		return nil, err
	}

	writeFn()

	return &clienttypes.MsgUpdateClientResponse{}, nil
}

// SubmitMisbehaviour defines a rpc handler method for MsgSubmitMisbehaviour.
func (k *Keeper) SubmitMisbehaviour(ctx coretypes.Context, msg *clienttypes.MsgSubmitMisbehaviour) (*clienttypes.MsgSubmitMisbehaviourResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ClientKeeper.SubmitMisbehaviour(cacheCtx, msg.ClientId, msg.Misbehaviour); err != nil {
		return nil, err
	}

	writeFn()

	return &clienttypes.MsgSubmitMisbehaviourResponse{}, nil
}

// ConnectionOpenInit defines a rpc handler method for MsgConnectionOpenInit.
func (k *Keeper) ConnectionOpenInit(ctx coretypes.Context, msg *connectiontypes.MsgConnectionOpenInit) (*connectiontypes.MsgConnectionOpenInitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	connectionID, err := k.ConnectionKeeper.ConnOpenInit(cacheCtx, msg.ClientId, msg.Counterparty, msg.Version, msg.DelayPeriod)
	if err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open init failed")
	}

	writeFn()

	return &connectiontypes.MsgConnectionOpenInitResponse{ConnectionId: connectionID}, nil
}

// ConnectionOpenTry defines a rpc handler method for MsgConnectionOpenTry.
func (k *Keeper) ConnectionOpenTry(ctx coretypes.Context, msg *connectiontypes.MsgConnectionOpenTry) (*connectiontypes.MsgConnectionOpenTryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	connectionID, err := k.ConnectionKeeper.ConnOpenTry(cacheCtx, msg.Counterparty, msg.DelayPeriod, msg.ClientId, msg.CounterpartyVersions, msg.ProofInit, msg.ProofHeight)
	if err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open try failed")
	}

	writeFn()

	return &connectiontypes.MsgConnectionOpenTryResponse{ConnectionId: connectionID}, nil
}

// ConnectionOpenAck defines a rpc handler method for MsgConnectionOpenAck.
func (k *Keeper) ConnectionOpenAck(ctx coretypes.Context, msg *connectiontypes.MsgConnectionOpenAck) (*connectiontypes.MsgConnectionOpenAckResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ConnectionKeeper.ConnOpenAck(cacheCtx, msg.ConnectionId, msg.Version, msg.CounterpartyConnectionId, msg.ProofTry, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open ack failed")
	}

	writeFn()

	return &connectiontypes.MsgConnectionOpenAckResponse{}, nil
}

// ConnectionOpenConfirm defines a rpc handler method for MsgConnectionOpenConfirm.
func (k *Keeper) ConnectionOpenConfirm(ctx coretypes.Context, msg *connectiontypes.MsgConnectionOpenConfirm) (*connectiontypes.MsgConnectionOpenConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ConnectionKeeper.ConnOpenConfirm(cacheCtx, msg.ConnectionId, msg.ProofAck, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "connection handshake open confirm failed")
	}

	writeFn()

	return &connectiontypes.MsgConnectionOpenConfirmResponse{}, nil
}

// ChannelOpenInit defines a rpc handler method for MsgChannelOpenInit.
func (k *Keeper) ChannelOpenInit(ctx coretypes.Context, msg *channeltypes.MsgChannelOpenInit) (*channeltypes.MsgChannelOpenInitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	channelID, err := k.ChannelKeeper.ChanOpenInit(
		cacheCtx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId,
		msg.Channel.Counterparty, msg.Channel.Version,
	)
	if err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open init failed")
	}

	writeFn()

	return &channeltypes.MsgChannelOpenInitResponse{ChannelId: channelID, Version: msg.Channel.Version}, nil
}

// ChannelOpenTry defines a rpc handler method for MsgChannelOpenTry.
func (k *Keeper) ChannelOpenTry(ctx coretypes.Context, msg *channeltypes.MsgChannelOpenTry) (*channeltypes.MsgChannelOpenTryResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	channelID, err := k.ChannelKeeper.ChanOpenTry(
		cacheCtx, msg.Channel.Ordering, msg.Channel.ConnectionHops, msg.PortId,
		msg.Channel.Counterparty, msg.Channel.Version, msg.CounterpartyVersion,
		msg.ProofInit, msg.ProofHeight,
	)
	if err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open try failed")
	}

	writeFn()

	return &channeltypes.MsgChannelOpenTryResponse{ChannelId: channelID, Version: msg.Channel.Version}, nil
}

// ChannelOpenAck defines a rpc handler method for MsgChannelOpenAck.
func (k *Keeper) ChannelOpenAck(ctx coretypes.Context, msg *channeltypes.MsgChannelOpenAck) (*channeltypes.MsgChannelOpenAckResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ChannelKeeper.ChanOpenAck(
		cacheCtx, msg.PortId, msg.ChannelId, msg.CounterpartyVersion, msg.CounterpartyChannelId,
		msg.ProofTry, msg.ProofHeight,
	); err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open ack failed")
	}

	writeFn()

	return &channeltypes.MsgChannelOpenAckResponse{}, nil
}

// ChannelOpenConfirm defines a rpc handler method for MsgChannelOpenConfirm.
func (k *Keeper) ChannelOpenConfirm(ctx coretypes.Context, msg *channeltypes.MsgChannelOpenConfirm) (*channeltypes.MsgChannelOpenConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ChannelKeeper.ChanOpenConfirm(cacheCtx, msg.PortId, msg.ChannelId, msg.ProofAck, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "channel handshake open confirm failed")
	}

	writeFn()

	return &channeltypes.MsgChannelOpenConfirmResponse{}, nil
}

// ChannelCloseInit defines a rpc handler method for MsgChannelCloseInit.
func (k *Keeper) ChannelCloseInit(ctx coretypes.Context, msg *channeltypes.MsgChannelCloseInit) (*channeltypes.MsgChannelCloseInitResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ChannelKeeper.ChanCloseInit(cacheCtx, msg.PortId, msg.ChannelId); err != nil {
		return nil, errorsmod.Wrap(err, "channel close init failed")
	}

	writeFn()

	return &channeltypes.MsgChannelCloseInitResponse{}, nil
}

// ChannelCloseConfirm defines a rpc handler method for MsgChannelCloseConfirm.
func (k *Keeper) ChannelCloseConfirm(ctx coretypes.Context, msg *channeltypes.MsgChannelCloseConfirm) (*channeltypes.MsgChannelCloseConfirmResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	cacheCtx, writeFn := ctx.CacheContext()

	if err := k.ChannelKeeper.ChanCloseConfirm(cacheCtx, msg.PortId, msg.ChannelId, msg.ProofInit, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "channel close confirm failed")
	}

	writeFn()

	return &channeltypes.MsgChannelCloseConfirmResponse{}, nil
}

// RecvPacket defines a rpc handler method for MsgRecvPacket.
func (k *Keeper) RecvPacket(ctx coretypes.Context, msg *channeltypes.MsgRecvPacket) (*channeltypes.MsgRecvPacketResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	// Retrieve callbacks from the router. The destination port identifies the
	// application module that will process the packet data.
	cbs, ok := k.Router.GetRoute(msg.Packet.DestinationPort)
	if !ok {
		return nil, errorsmod.Wrapf(porttypes.ErrInvalidRoute, "route not found to module: %s", msg.Packet.DestinationPort)
	}

	cacheCtx, writeFn := ctx.CacheContext()

	// Perform TAO verification and mark the packet as received.
	if err := k.ChannelKeeper.RecvPacket(cacheCtx, msg.Packet, msg.ProofCommitment, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "receive packet verification failed")
	}

	// Perform application logic callback on its own branch. An unsuccessful
	// acknowledgement discards the application state changes while the packet
	// receipt and the error acknowledgement are still committed.
	cbCtx, cbWriteFn := cacheCtx.CacheContext()
	ack := cbs.OnRecvPacket(cbCtx, msg.Packet)
	if ack == nil || ack.Success() {
		// write application state changes for asynchronous and successful acknowledgements
		cbWriteFn()
	}

	// Set packet acknowledgement only if the acknowledgement is not nil.
	// NOTE: IBC applications modules may call the WriteAcknowledgement asynchronously if the
	// acknowledgement is nil.
	if ack != nil {
		if err := k.ChannelKeeper.WriteAcknowledgement(cacheCtx, msg.Packet, ack); err != nil {
			return nil, err
		}
	}

	writeFn()

	k.Logger(ctx).Info("receive packet callback succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel)

	return &channeltypes.MsgRecvPacketResponse{}, nil
}

// Acknowledgement defines a rpc handler method for MsgAcknowledgement.
func (k *Keeper) Acknowledgement(ctx coretypes.Context, msg *channeltypes.MsgAcknowledgement) (*channeltypes.MsgAcknowledgementResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	// Retrieve callbacks from the router. The source port identifies the
	// application module that originally sent the packet.
	cbs, ok := k.Router.GetRoute(msg.Packet.SourcePort)
	if !ok {
		return nil, errorsmod.Wrapf(porttypes.ErrInvalidRoute, "route not found to module: %s", msg.Packet.SourcePort)
	}

	cacheCtx, writeFn := ctx.CacheContext()

	// Perform TAO verification and delete the packet commitment.
	if err := k.ChannelKeeper.AcknowledgePacket(cacheCtx, msg.Packet, msg.Acknowledgement, msg.ProofAcked, msg.ProofHeight); err != nil {
		return nil, errorsmod.Wrap(err, "acknowledge packet verification failed")
	}

	// Perform application logic callback
	if err := cbs.OnAcknowledgementPacket(cacheCtx, msg.Packet, msg.Acknowledgement); err != nil {
		return nil, errorsmod.Wrap(err, "acknowledge packet callback failed")
	}

	writeFn()

	k.Logger(ctx).Info("acknowledgement succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel)

	return &channeltypes.MsgAcknowledgementResponse{}, nil
}

// Timeout defines a rpc handler method for MsgTimeout.
func (k *Keeper) Timeout(ctx coretypes.Context, msg *channeltypes.MsgTimeout) (*channeltypes.MsgTimeoutResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	// Retrieve callbacks from the router
	cbs, ok := k.Router.GetRoute(msg.Packet.SourcePort)
	if !ok {
		return nil, errorsmod.Wrapf(porttypes.ErrInvalidRoute, "route not found to module: %s", msg.Packet.SourcePort)
	}

	cacheCtx, writeFn := ctx.CacheContext()

	// Perform TAO verification
	if err := k.ChannelKeeper.TimeoutPacket(cacheCtx, msg.Packet, msg.ProofUnreceived, msg.ProofHeight, msg.NextSequenceRecv); err != nil {
		return nil, errorsmod.Wrap(err, "timeout packet verification failed")
	}

	// Perform application logic callback
	if err := cbs.OnTimeoutPacket(cacheCtx, msg.Packet); err != nil {
		return nil, errorsmod.Wrap(err, "timeout packet callback failed")
	}

	// Delete packet commitment
	if err := k.ChannelKeeper.TimeoutExecuted(cacheCtx, msg.Packet); err != nil {
		return nil, err
	}

	writeFn()

	k.Logger(ctx).Info("timeout packet callback succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel)

	return &channeltypes.MsgTimeoutResponse{}, nil
}

// TimeoutOnClose defines a rpc handler method for MsgTimeoutOnClose.
func (k *Keeper) TimeoutOnClose(ctx coretypes.Context, msg *channeltypes.MsgTimeoutOnClose) (*channeltypes.MsgTimeoutOnCloseResponse, error) {
	if err := msg.ValidateBasic(); err != nil {
		return nil, err
	}

	// Retrieve callbacks from the router
	cbs, ok := k.Router.GetRoute(msg.Packet.SourcePort)
	if !ok {
		return nil, errorsmod.Wrapf(porttypes.ErrInvalidRoute, "route not found to module: %s", msg.Packet.SourcePort)
	}

	cacheCtx, writeFn := ctx.CacheContext()

	// Perform TAO verification
	if err := k.ChannelKeeper.TimeoutOnClose(cacheCtx, msg.Packet, msg.ProofUnreceived, msg.ProofClose, msg.ProofHeight, msg.NextSequenceRecv); err != nil {
		return nil, errorsmod.Wrap(err, "timeout on close packet verification failed")
	}

	// Perform application logic callback
	//
	// NOTE: MsgTimeout and MsgTimeoutOnClose use the same "OnTimeoutPacket"
	// application logic callback.
	if err := cbs.OnTimeoutPacket(cacheCtx, msg.Packet); err != nil {
		return nil, errorsmod.Wrap(err, "timeout packet callback failed")
	}

	// Delete packet commitment
	if err := k.ChannelKeeper.TimeoutExecuted(cacheCtx, msg.Packet); err != nil {
		return nil, err
	}

	writeFn()

	k.Logger(ctx).Info("timeout on close callback succeeded", "port-id", msg.Packet.SourcePort, "channel-id", msg.Packet.SourceChannel)

	return &channeltypes.MsgTimeoutOnCloseResponse{}, nil
}
