package types

import (
	amino "github.com/tendermint/go-amino"

	"github.com/cosmos/ibc-core/modules/core/exported"
)

// RegisterCodec registers the IBC client interfaces on the provided amino
// codec. Concrete light client implementations register themselves against
// these interfaces.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterInterface((*exported.ClientState)(nil), nil)
	cdc.RegisterInterface((*exported.ConsensusState)(nil), nil)
	cdc.RegisterInterface((*exported.ClientMessage)(nil), nil)
	cdc.RegisterInterface((*exported.Height)(nil), nil)
	cdc.RegisterConcrete(Height{}, "ibc/client/Height", nil)
}

// MustMarshalClientState marshals a client state and panics on failure.
func MustMarshalClientState(cdc *amino.Codec, clientState exported.ClientState) []byte {
	return cdc.MustMarshalBinaryBare(clientState)
}

// MustUnmarshalClientState unmarshals bytes into a client state and panics on
// failure.
func MustUnmarshalClientState(cdc *amino.Codec, bz []byte) exported.ClientState {
	var clientState exported.ClientState
	cdc.MustUnmarshalBinaryBare(bz, &clientState)
	return clientState
}

// MustMarshalConsensusState marshals a consensus state and panics on failure.
func MustMarshalConsensusState(cdc *amino.Codec, consensusState exported.ConsensusState) []byte {
	return cdc.MustMarshalBinaryBare(consensusState)
}

// MustUnmarshalConsensusState unmarshals bytes into a consensus state and
// panics on failure.
func MustUnmarshalConsensusState(cdc *amino.Codec, bz []byte) exported.ConsensusState {
	var consensusState exported.ConsensusState
	cdc.MustUnmarshalBinaryBare(bz, &consensusState)
	return consensusState
}
