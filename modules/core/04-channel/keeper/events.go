package keeper

import (
	"encoding/hex"
	"fmt"

	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	coretypes "github.com/cosmos/ibc-core/types"
)

// emitChannelOpenInitEvent emits a channel open init event
func emitChannelOpenInitEvent(ctx coretypes.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelOpenInit,
			coretypes.NewAttribute(types.AttributeKeyPortID, portID),
			coretypes.NewAttribute(types.AttributeKeyChannelID, channelID),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitChannelOpenTryEvent emits a channel open try event
func emitChannelOpenTryEvent(ctx coretypes.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelOpenTry,
			coretypes.NewAttribute(types.AttributeKeyPortID, portID),
			coretypes.NewAttribute(types.AttributeKeyChannelID, channelID),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitChannelOpenAckEvent emits a channel open acknowledge event
func emitChannelOpenAckEvent(ctx coretypes.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelOpenAck,
			coretypes.NewAttribute(types.AttributeKeyPortID, portID),
			coretypes.NewAttribute(types.AttributeKeyChannelID, channelID),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitChannelOpenConfirmEvent emits a channel open confirm event
func emitChannelOpenConfirmEvent(ctx coretypes.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelOpenConfirm,
			coretypes.NewAttribute(types.AttributeKeyPortID, portID),
			coretypes.NewAttribute(types.AttributeKeyChannelID, channelID),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitChannelCloseInitEvent emits a channel close init event
func emitChannelCloseInitEvent(ctx coretypes.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelCloseInit,
			coretypes.NewAttribute(types.AttributeKeyPortID, portID),
			coretypes.NewAttribute(types.AttributeKeyChannelID, channelID),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitChannelCloseConfirmEvent emits a channel close confirm event
func emitChannelCloseConfirmEvent(ctx coretypes.Context, portID string, channelID string, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelCloseConfirm,
			coretypes.NewAttribute(types.AttributeKeyPortID, portID),
			coretypes.NewAttribute(types.AttributeKeyChannelID, channelID),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitChannelClosedEvent emits a channel closed event
func emitChannelClosedEvent(ctx coretypes.Context, packet types.Packet, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeChannelClosed,
			coretypes.NewAttribute(types.AttributeKeyPortID, packet.GetSourcePort()),
			coretypes.NewAttribute(types.AttributeKeyChannelID, packet.GetSourceChannel()),
			coretypes.NewAttribute(types.AttributeCounterpartyPortID, channel.Counterparty.PortId),
			coretypes.NewAttribute(types.AttributeCounterpartyChannelID, channel.Counterparty.ChannelId),
			coretypes.NewAttribute(types.AttributeKeyConnectionID, channel.ConnectionHops[0]),
			coretypes.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitSendPacketEvent emits an event with packet data along with other packet information for relayer
// to pick up and relay to other chain
func emitSendPacketEvent(ctx coretypes.Context, packet types.Packet, channel types.Channel, timeoutHeight exported.Height) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeSendPacket,
			coretypes.NewAttribute(types.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			coretypes.NewAttribute(types.AttributeKeyTimeoutHeight, timeoutHeight.String()),
			coretypes.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			coretypes.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			coretypes.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			coretypes.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			coretypes.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			coretypes.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			coretypes.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
			coretypes.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitRecvPacketEvent emits a receive packet event for the relayer to query.
func emitRecvPacketEvent(ctx coretypes.Context, packet types.Packet, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeRecvPacket,
			coretypes.NewAttribute(types.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			coretypes.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			coretypes.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			coretypes.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			coretypes.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			coretypes.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			coretypes.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			coretypes.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			coretypes.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
			coretypes.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitWriteAcknowledgementEvent emits an event that the relayer can query for
func emitWriteAcknowledgementEvent(ctx coretypes.Context, packet exported.PacketI, channel types.Channel, acknowledgement []byte) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeWriteAck,
			coretypes.NewAttribute(types.AttributeKeyDataHex, hex.EncodeToString(packet.GetData())),
			coretypes.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			coretypes.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			coretypes.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			coretypes.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			coretypes.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			coretypes.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			coretypes.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			coretypes.NewAttribute(types.AttributeKeyAckHex, hex.EncodeToString(acknowledgement)),
			coretypes.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitAcknowledgePacketEvent emits an acknowledge packet event.
func emitAcknowledgePacketEvent(ctx coretypes.Context, packet types.Packet, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeAcknowledgePacket,
			coretypes.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			coretypes.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			coretypes.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			coretypes.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			coretypes.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			coretypes.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			coretypes.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			coretypes.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
			coretypes.NewAttribute(types.AttributeKeyConnection, channel.ConnectionHops[0]),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitTimeoutPacketEvent emits a timeout packet event.
func emitTimeoutPacketEvent(ctx coretypes.Context, packet types.Packet, channel types.Channel) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeTimeoutPacket,
			coretypes.NewAttribute(types.AttributeKeyTimeoutHeight, packet.GetTimeoutHeight().String()),
			coretypes.NewAttribute(types.AttributeKeyTimeoutTimestamp, fmt.Sprintf("%d", packet.GetTimeoutTimestamp())),
			coretypes.NewAttribute(types.AttributeKeySequence, fmt.Sprintf("%d", packet.GetSequence())),
			coretypes.NewAttribute(types.AttributeKeySrcPort, packet.GetSourcePort()),
			coretypes.NewAttribute(types.AttributeKeySrcChannel, packet.GetSourceChannel()),
			coretypes.NewAttribute(types.AttributeKeyDstPort, packet.GetDestPort()),
			coretypes.NewAttribute(types.AttributeKeyDstChannel, packet.GetDestChannel()),
			coretypes.NewAttribute(types.AttributeKeyChannelOrdering, channel.Ordering.String()),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}
