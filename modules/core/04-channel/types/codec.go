package types

import (
	amino "github.com/tendermint/go-amino"
)

// ModuleCdc references the channel submodule codec. It is used to serialise
// acknowledgements written into state.
var ModuleCdc = amino.NewCodec()

// RegisterCodec registers the channel types on the provided amino codec.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterConcrete(Channel{}, "ibc/channel/Channel", nil)
	cdc.RegisterConcrete(Packet{}, "ibc/channel/Packet", nil)
	cdc.RegisterConcrete(Acknowledgement{}, "ibc/channel/Acknowledgement", nil)
}
