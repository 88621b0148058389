package solomachine

import (
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/crypto/ed25519"
)

// RegisterCodec registers the solo machine concrete client types and the
// public key implementations they rely on.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterConcrete(&ClientState{}, "ibc/lightclients/solomachine/ClientState", nil)
	cdc.RegisterConcrete(&ConsensusState{}, "ibc/lightclients/solomachine/ConsensusState", nil)
	cdc.RegisterConcrete(&Header{}, "ibc/lightclients/solomachine/Header", nil)
	cdc.RegisterConcrete(&Misbehaviour{}, "ibc/lightclients/solomachine/Misbehaviour", nil)

	cdc.RegisterInterface((*crypto.PubKey)(nil), nil)
	cdc.RegisterConcrete(ed25519.PubKey{}, "tendermint/PubKeyEd25519", nil)
}
