package solomachine

import (
	"fmt"

	errorsmod "cosmossdk.io/errors"
	amino "github.com/tendermint/go-amino"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// SentinelHeaderPath is the path signed over by a solo machine when producing
// an update header. It cannot collide with any commitment path.
const SentinelHeaderPath = "solomachine:header"

// VerifyClientMessage checks a header or misbehaviour against the current
// public key and sequence of the solo machine.
func (cs ClientState) VerifyClientMessage(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) error {
	switch msg := clientMsg.(type) {
	case *Header:
		return cs.verifyHeader(cdc, msg)
	case *Misbehaviour:
		return cs.verifyMisbehaviour(cdc, msg)
	default:
		return errorsmod.Wrapf(clienttypes.ErrInvalidClientType, "expected %T or %T, got %T", &Header{}, &Misbehaviour{}, clientMsg)
	}
}

func (cs ClientState) verifyHeader(cdc *amino.Codec, header *Header) error {
	// the header must consume exactly the current sequence
	if header.Sequence != cs.Sequence {
		return errorsmod.Wrapf(ErrInvalidSequence, "header sequence does not match the client state sequence (%d != %d)", header.Sequence, cs.Sequence)
	}

	if header.Timestamp < cs.ConsensusState.Timestamp {
		return errorsmod.Wrapf(ErrInvalidHeader, "header timestamp is less than the consensus state timestamp (%d < %d)", header.Timestamp, cs.ConsensusState.Timestamp)
	}

	headerData := &HeaderData{
		NewPubKey:      header.NewPublicKey,
		NewDiversifier: header.NewDiversifier,
	}

	dataBz, err := cdc.MarshalBinaryBare(headerData)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidHeader, "failed to marshal header data: %v", err)
	}

	signBytes := &SignBytes{
		Sequence:    header.Sequence,
		Timestamp:   header.Timestamp,
		Diversifier: cs.ConsensusState.Diversifier,
		Path:        []byte(SentinelHeaderPath),
		Data:        dataBz,
	}

	signBz, err := cdc.MarshalBinaryBare(signBytes)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidHeader, "failed to marshal sign bytes: %v", err)
	}

	if err := VerifySignature(cs.ConsensusState.PublicKey, signBz, header.Signature); err != nil {
		return errorsmod.Wrap(ErrInvalidHeader, err.Error())
	}

	return nil
}

func (cs ClientState) verifyMisbehaviour(cdc *amino.Codec, misbehaviour *Misbehaviour) error {
	if err := cs.verifySignatureAndData(cdc, misbehaviour.Sequence, misbehaviour.SignatureOne); err != nil {
		return errorsmod.Wrap(err, "failed to verify signature one")
	}

	if err := cs.verifySignatureAndData(cdc, misbehaviour.Sequence, misbehaviour.SignatureTwo); err != nil {
		return errorsmod.Wrap(err, "failed to verify signature two")
	}

	return nil
}

// verifySignatureAndData checks that the evidence was signed by the current
// public key over the claimed sequence, path and data.
func (cs ClientState) verifySignatureAndData(cdc *amino.Codec, sequence uint64, sigData *SignatureAndData) error {
	signBytes := &SignBytes{
		Sequence:    sequence,
		Timestamp:   sigData.Timestamp,
		Diversifier: cs.ConsensusState.Diversifier,
		Path:        sigData.Path,
		Data:        sigData.Data,
	}

	signBz, err := cdc.MarshalBinaryBare(signBytes)
	if err != nil {
		return errorsmod.Wrapf(ErrInvalidMisbehaviour, "failed to marshal sign bytes: %v", err)
	}

	return VerifySignature(cs.ConsensusState.PublicKey, signBz, sigData.Signature)
}

// CheckForMisbehaviour returns true for misbehaviour evidence. A verified
// header is never misbehaviour since it must consume the current sequence.
func (cs ClientState) CheckForMisbehaviour(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) bool {
	_, ok := clientMsg.(*Misbehaviour)
	return ok
}

// UpdateStateOnMisbehaviour freezes the client. Frozen is terminal for a solo
// machine.
func (cs ClientState) UpdateStateOnMisbehaviour(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) {
	cs.IsFrozen = true
	setClientState(clientStore, cdc, &cs)
}

// UpdateState rotates the public key and diversifier, increments the
// sequence and records the new consensus state under the new sequence.
// The client message must be a verified header.
func (cs ClientState) UpdateState(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg exported.ClientMessage) []exported.Height {
	header, ok := clientMsg.(*Header)
	if !ok {
		panic(fmt.Errorf("unsupported client message type %T", clientMsg))
	}

	consensusState := &ConsensusState{
		PublicKey:   header.NewPublicKey,
		Diversifier: header.NewDiversifier,
		Timestamp:   header.Timestamp,
	}

	cs.Sequence++
	cs.ConsensusState = consensusState

	newHeight := cs.GetLatestHeight()
	setClientState(clientStore, cdc, &cs)
	setConsensusState(clientStore, cdc, consensusState, newHeight)

	return []exported.Height{newHeight}
}
