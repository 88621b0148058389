package keeper

import (
	"strings"

	"github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	coretypes "github.com/cosmos/ibc-core/types"
)

// emitCreateClientEvent emits a create client event
func emitCreateClientEvent(ctx coretypes.Context, clientID string, clientState exported.ClientState) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeCreateClient,
			coretypes.NewAttribute(types.AttributeKeyClientID, clientID),
			coretypes.NewAttribute(types.AttributeKeyClientType, clientState.ClientType()),
			coretypes.NewAttribute(types.AttributeKeyConsensusHeight, clientState.GetLatestHeight().String()),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitUpdateClientEvent emits an update client event
func emitUpdateClientEvent(ctx coretypes.Context, clientID string, clientType string, consensusHeights []exported.Height) {
	consensusHeightAttrs := make([]string, len(consensusHeights))
	for i, height := range consensusHeights {
		consensusHeightAttrs[i] = height.String()
	}

	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeUpdateClient,
			coretypes.NewAttribute(types.AttributeKeyClientID, clientID),
			coretypes.NewAttribute(types.AttributeKeyClientType, clientType),
			coretypes.NewAttribute(types.AttributeKeyConsensusHeights, strings.Join(consensusHeightAttrs, ",")),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}

// emitSubmitMisbehaviourEvent emits a client misbehaviour event
func emitSubmitMisbehaviourEvent(ctx coretypes.Context, clientID string, clientState exported.ClientState) {
	ctx.EventManager().EmitEvents(coretypes.Events{
		coretypes.NewEvent(
			types.EventTypeSubmitMisbehaviour,
			coretypes.NewAttribute(types.AttributeKeyClientID, clientID),
			coretypes.NewAttribute(types.AttributeKeyClientType, clientState.ClientType()),
		),
		coretypes.NewEvent(
			coretypes.EventTypeMessage,
			coretypes.NewAttribute(coretypes.AttributeKeyModule, types.AttributeValueCategory),
		),
	})
}
