package keeper

import (
	errorsmod "cosmossdk.io/errors"
	metrics "github.com/armon/go-metrics"

	"github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	coretypes "github.com/cosmos/ibc-core/types"
)

// CreateClient generates a new client identifier and invokes the associated
// light client's initialization logic. Client identifiers are generated
// deterministically from a per-chain sequence. The light client is
// responsible for setting any client-specific data in the store via the
// Initialize method. This includes the client state, initial consensus state
// and any associated metadata. The generated client identifier will be
// returned if a client was successfully initialized.
func (k Keeper) CreateClient(ctx coretypes.Context, clientState exported.ClientState, consensusState exported.ConsensusState) (string, error) {
	params := k.GetParams(ctx)
	if !params.IsAllowedClient(clientState.ClientType()) {
		return "", errorsmod.Wrapf(
			types.ErrInvalidClientType,
			"client state type %s is not registered in the allowlist", clientState.ClientType(),
		)
	}

	clientID := k.GenerateClientIdentifier(ctx, clientState.ClientType())
	clientStore := k.ClientStore(ctx, clientID)

	if err := clientState.Initialize(ctx, k.cdc, clientStore, consensusState); err != nil {
		return "", err
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return "", errorsmod.Wrapf(types.ErrClientNotActive, "cannot create client (%s) with status %s", clientID, status)
	}

	k.Logger(ctx).Info("client created at height", "client-id", clientID, "height", clientState.GetLatestHeight().String())

	defer metrics.IncrCounterWithLabels(
		[]string{"ibc", "client", "create"},
		1,
		[]metrics.Label{{Name: types.LabelClientType, Value: clientState.ClientType()}},
	)

	emitCreateClientEvent(ctx, clientID, clientState)

	return clientID, nil
}

// UpdateClient updates the consensus state and the state root from a provided header.
func (k Keeper) UpdateClient(ctx coretypes.Context, clientID string, clientMsg exported.ClientMessage) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "cannot update client with ID %s", clientID)
	}

	clientStore := k.ClientStore(ctx, clientID)

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot update client (%s) with status %s", clientID, status)
	}

	if err := clientState.VerifyClientMessage(ctx, k.cdc, clientStore, clientMsg); err != nil {
		return err
	}

	foundMisbehaviour := clientState.CheckForMisbehaviour(ctx, k.cdc, clientStore, clientMsg)
	if foundMisbehaviour {
		clientState.UpdateStateOnMisbehaviour(ctx, k.cdc, clientStore, clientMsg)

		k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

		defer metrics.IncrCounterWithLabels(
			[]string{"ibc", "client", "misbehaviour"},
			1,
			[]metrics.Label{
				{Name: types.LabelClientType, Value: clientState.ClientType()},
				{Name: types.LabelClientID, Value: clientID},
				{Name: types.LabelMsgType, Value: "update"},
			},
		)

		emitSubmitMisbehaviourEvent(ctx, clientID, clientState)

		return nil
	}

	consensusHeights := clientState.UpdateState(ctx, k.cdc, clientStore, clientMsg)

	k.Logger(ctx).Info("client state updated", "client-id", clientID, "heights", consensusHeights)

	defer metrics.IncrCounterWithLabels(
		[]string{"ibc", "client", "update"},
		1,
		[]metrics.Label{
			{Name: types.LabelClientType, Value: clientState.ClientType()},
			{Name: types.LabelClientID, Value: clientID},
			{Name: types.LabelUpdateType, Value: "msg"},
		},
	)

	emitUpdateClientEvent(ctx, clientID, clientState.ClientType(), consensusHeights)

	return nil
}

// SubmitMisbehaviour freezes a client against the provided misbehaviour
// evidence. The misbehaviour is verified by the light client before the
// client state is mutated.
func (k Keeper) SubmitMisbehaviour(ctx coretypes.Context, clientID string, misbehaviour exported.ClientMessage) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "cannot check misbehaviour for client with ID %s", clientID)
	}

	clientStore := k.ClientStore(ctx, clientID)

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot process misbehaviour for client (%s) with status %s", clientID, status)
	}

	if err := clientState.VerifyClientMessage(ctx, k.cdc, clientStore, misbehaviour); err != nil {
		return err
	}

	if !clientState.CheckForMisbehaviour(ctx, k.cdc, clientStore, misbehaviour) {
		return errorsmod.Wrapf(types.ErrInvalidMisbehaviour, "failed to verify misbehaviour for client (%s)", clientID)
	}

	clientState.UpdateStateOnMisbehaviour(ctx, k.cdc, clientStore, misbehaviour)

	k.Logger(ctx).Info("client frozen due to misbehaviour", "client-id", clientID)

	defer metrics.IncrCounterWithLabels(
		[]string{"ibc", "client", "misbehaviour"},
		1,
		[]metrics.Label{
			{Name: types.LabelClientType, Value: misbehaviour.ClientType()},
			{Name: types.LabelClientID, Value: clientID},
		},
	)

	emitSubmitMisbehaviourEvent(ctx, clientID, clientState)

	return nil
}

// VerifyMembership retrieves the light client module for the clientID and
// verifies the proof of the existence of a key-value pair at a specified
// height.
func (k Keeper) VerifyMembership(ctx coretypes.Context, clientID string, height exported.Height, proof []byte, path exported.Path, value []byte) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "clientID (%s)", clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot verify membership using client (%s) with status %s", clientID, status)
	}

	return clientState.VerifyMembership(ctx, k.ClientStore(ctx, clientID), k.cdc, height, 0, 0, proof, path, value)
}

// VerifyNonMembership retrieves the light client module for the clientID and
// verifies the absence of a given key at a specified height.
func (k Keeper) VerifyNonMembership(ctx coretypes.Context, clientID string, height exported.Height, proof []byte, path exported.Path) error {
	clientState, found := k.GetClientState(ctx, clientID)
	if !found {
		return errorsmod.Wrapf(types.ErrClientNotFound, "clientID (%s)", clientID)
	}

	if status := k.GetClientStatus(ctx, clientID); status != exported.Active {
		return errorsmod.Wrapf(types.ErrClientNotActive, "cannot verify non-membership using client (%s) with status %s", clientID, status)
	}

	return clientState.VerifyNonMembership(ctx, k.ClientStore(ctx, clientID), k.cdc, height, 0, 0, proof, path)
}
