package solomachine

import (
	"time"

	errorsmod "cosmossdk.io/errors"
	amino "github.com/tendermint/go-amino"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

var _ exported.ClientState = (*ClientState)(nil)

// ClientState tracks the current sequence and signing key of a solo machine.
// The latest height of the client is (0, Sequence). A zero TrustingPeriod
// disables expiry.
type ClientState struct {
	Sequence       uint64          `json:"sequence"`
	IsFrozen       bool            `json:"is_frozen"`
	ConsensusState *ConsensusState `json:"consensus_state"`
	TrustingPeriod time.Duration   `json:"trusting_period"`
}

// NewClientState creates a new ClientState instance.
func NewClientState(sequence uint64, consensusState *ConsensusState, trustingPeriod time.Duration) *ClientState {
	return &ClientState{
		Sequence:       sequence,
		IsFrozen:       false,
		ConsensusState: consensusState,
		TrustingPeriod: trustingPeriod,
	}
}

// ClientType returns the solo machine client type.
func (ClientState) ClientType() string {
	return exported.Solomachine
}

// GetLatestHeight returns the latest sequence as a height. The revision
// number is always zero for a solo machine.
func (cs ClientState) GetLatestHeight() exported.Height {
	return clienttypes.NewHeight(0, cs.Sequence)
}

// Validate performs basic validation of the client state fields.
func (cs ClientState) Validate() error {
	if cs.Sequence == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "sequence cannot be 0")
	}
	if cs.ConsensusState == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if cs.TrustingPeriod < 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidClient, "trusting period cannot be negative")
	}

	return cs.ConsensusState.ValidateBasic()
}

// Status returns the status of the solo machine client. The client is frozen
// once misbehaviour is detected, and expires when the trusting period has
// elapsed since the latest consensus timestamp.
func (cs ClientState) Status(ctx coretypes.Context, _ storetypes.KVStore, _ *amino.Codec) exported.Status {
	if cs.IsFrozen {
		return exported.Frozen
	}

	if cs.TrustingPeriod > 0 {
		latestTimestamp := time.Unix(0, int64(cs.ConsensusState.Timestamp))
		if ctx.BlockTime().After(latestTimestamp.Add(cs.TrustingPeriod)) {
			return exported.Expired
		}
	}

	return exported.Active
}

// GetTimestampAtHeight returns the timestamp of the consensus state recorded
// at the given sequence.
func (cs ClientState) GetTimestampAtHeight(ctx coretypes.Context, clientStore storetypes.KVStore, cdc *amino.Codec, height exported.Height) (uint64, error) {
	consensusState, found := getConsensusState(clientStore, cdc, height)
	if !found {
		return 0, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height %s", height)
	}

	return consensusState.Timestamp, nil
}

// Initialize checks that the initial consensus state is the one carried by
// the client state and writes both to the client store, recording the
// consensus state under the initial sequence.
func (cs ClientState) Initialize(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, consState exported.ConsensusState) error {
	if err := cs.Validate(); err != nil {
		return err
	}

	consensusState, ok := consState.(*ConsensusState)
	if !ok {
		return errorsmod.Wrapf(clienttypes.ErrInvalidConsensus, "expected %T, got %T", &ConsensusState{}, consState)
	}

	if !cs.ConsensusState.PublicKey.Equals(consensusState.PublicKey) ||
		cs.ConsensusState.Diversifier != consensusState.Diversifier ||
		cs.ConsensusState.Timestamp != consensusState.Timestamp {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "consensus state does not match the one carried by the client state")
	}

	setClientState(clientStore, cdc, &cs)
	setConsensusState(clientStore, cdc, consensusState, cs.GetLatestHeight())

	return nil
}

// VerifyMembership verifies a signature over the provided path and value,
// made by the key recorded at the proof height. Verification does not modify
// the client state.
func (cs ClientState) VerifyMembership(
	ctx coretypes.Context,
	clientStore storetypes.KVStore,
	cdc *amino.Codec,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof []byte,
	path exported.Path,
	value []byte,
) error {
	signBz, consensusState, sigData, err := produceVerificationArgs(clientStore, cdc, height, proof, path, value)
	if err != nil {
		return err
	}

	return VerifySignature(consensusState.PublicKey, signBz, sigData.Signature)
}

// VerifyNonMembership verifies a signature over the provided path with no
// associated value, made by the key recorded at the proof height.
func (cs ClientState) VerifyNonMembership(
	ctx coretypes.Context,
	clientStore storetypes.KVStore,
	cdc *amino.Codec,
	height exported.Height,
	delayTimePeriod uint64,
	delayBlockPeriod uint64,
	proof []byte,
	path exported.Path,
) error {
	signBz, consensusState, sigData, err := produceVerificationArgs(clientStore, cdc, height, proof, path, nil)
	if err != nil {
		return err
	}

	return VerifySignature(consensusState.PublicKey, signBz, sigData.Signature)
}

// produceVerificationArgs reconstructs the sign bytes for a proof at the
// given height and returns them with the consensus state recorded at that
// height and the decoded signature.
func produceVerificationArgs(
	clientStore storetypes.KVStore,
	cdc *amino.Codec,
	height exported.Height,
	proof []byte,
	path exported.Path,
	value []byte,
) ([]byte, *ConsensusState, *SignatureAndData, error) {
	if height.GetRevisionNumber() != 0 {
		return nil, nil, nil, errorsmod.Wrapf(ErrInvalidProof, "revision number must be 0 for solomachine, got %d", height.GetRevisionNumber())
	}

	sequence := height.GetRevisionHeight()
	if sequence == 0 {
		return nil, nil, nil, errorsmod.Wrap(ErrInvalidProof, "sequence cannot be 0")
	}

	if path == nil || path.Empty() {
		return nil, nil, nil, errorsmod.Wrap(ErrInvalidProof, "path cannot be empty")
	}

	consensusState, found := getConsensusState(clientStore, cdc, height)
	if !found {
		return nil, nil, nil, errorsmod.Wrapf(clienttypes.ErrConsensusStateNotFound, "height %s", height)
	}

	sigData, err := unmarshalSignatureAndData(cdc, proof)
	if err != nil {
		return nil, nil, nil, err
	}

	if sigData.Timestamp < consensusState.Timestamp {
		return nil, nil, nil, errorsmod.Wrapf(ErrInvalidProof, "proof timestamp %d is earlier than consensus state timestamp %d", sigData.Timestamp, consensusState.Timestamp)
	}

	signBytes := &SignBytes{
		Sequence:    sequence,
		Timestamp:   sigData.Timestamp,
		Diversifier: consensusState.Diversifier,
		Path:        []byte(path.String()),
		Data:        value,
	}

	signBz, err := cdc.MarshalBinaryBare(signBytes)
	if err != nil {
		return nil, nil, nil, errorsmod.Wrapf(ErrInvalidProof, "failed to marshal sign bytes: %v", err)
	}

	return signBz, consensusState, sigData, nil
}

// getClientState reads the solo machine client state from the client store.
func getClientState(clientStore storetypes.KVStore, cdc *amino.Codec) (*ClientState, bool) {
	bz := clientStore.Get(host.ClientStateKey())
	if len(bz) == 0 {
		return nil, false
	}

	clientState, ok := clienttypes.MustUnmarshalClientState(cdc, bz).(*ClientState)
	if !ok {
		return nil, false
	}

	return clientState, true
}

// setClientState writes the solo machine client state to the client store.
func setClientState(clientStore storetypes.KVStore, cdc *amino.Codec, clientState *ClientState) {
	clientStore.Set(host.ClientStateKey(), clienttypes.MustMarshalClientState(cdc, clientState))
}

// getConsensusState reads the consensus state recorded at the given height.
func getConsensusState(clientStore storetypes.KVStore, cdc *amino.Codec, height exported.Height) (*ConsensusState, bool) {
	bz := clientStore.Get(host.ConsensusStateKey(height))
	if len(bz) == 0 {
		return nil, false
	}

	consensusState, ok := clienttypes.MustUnmarshalConsensusState(cdc, bz).(*ConsensusState)
	if !ok {
		return nil, false
	}

	return consensusState, true
}

// setConsensusState writes a consensus state under the given height.
func setConsensusState(clientStore storetypes.KVStore, cdc *amino.Codec, consensusState *ConsensusState, height exported.Height) {
	clientStore.Set(host.ConsensusStateKey(height), clienttypes.MustMarshalConsensusState(cdc, consensusState))
}
