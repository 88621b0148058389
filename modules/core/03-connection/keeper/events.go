package keeper

import (
	"github.com/cosmos/ibc-core/modules/core/03-connection/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// emitConnectionOpenInitEvent emits a connection open init event
func emitConnectionOpenInitEvent(ctx coretypes.Context, connectionID string, clientID string, counterparty types.Counterparty) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeConnectionOpenInit,
			coretypes.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			coretypes.NewAttribute(types.AttributeKeyClientID, clientID),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyClientID, counterparty.ClientId),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyConnectionID, counterparty.ConnectionId),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitConnectionOpenTryEvent emits a connection open try event
func emitConnectionOpenTryEvent(ctx coretypes.Context, connectionID string, clientID string, counterparty types.Counterparty) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeConnectionOpenTry,
			coretypes.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			coretypes.NewAttribute(types.AttributeKeyClientID, clientID),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyClientID, counterparty.ClientId),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyConnectionID, counterparty.ConnectionId),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitConnectionOpenAckEvent emits a connection open acknowledge event
func emitConnectionOpenAckEvent(ctx coretypes.Context, connectionID string, connectionEnd types.ConnectionEnd) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeConnectionOpenAck,
			coretypes.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			coretypes.NewAttribute(types.AttributeKeyClientID, connectionEnd.ClientId),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyClientID, connectionEnd.Counterparty.ClientId),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyConnectionID, connectionEnd.Counterparty.ConnectionId),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitConnectionOpenConfirmEvent emits a connection open confirm event
func emitConnectionOpenConfirmEvent(ctx coretypes.Context, connectionID string, connectionEnd types.ConnectionEnd) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeConnectionOpenConfirm,
			coretypes.NewAttribute(types.AttributeKeyConnectionID, connectionID),
			coretypes.NewAttribute(types.AttributeKeyClientID, connectionEnd.ClientId),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyClientID, connectionEnd.Counterparty.ClientId),
			coretypes.NewAttribute(types.AttributeKeyCounterpartyConnectionID, connectionEnd.Counterparty.ConnectionId),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}
