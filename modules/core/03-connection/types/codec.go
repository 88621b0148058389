package types

import (
	amino "github.com/tendermint/go-amino"
)

// RegisterCodec registers the connection types on the provided amino codec.
func RegisterCodec(cdc *amino.Codec) {
	cdc.RegisterConcrete(ConnectionEnd{}, "ibc/connection/ConnectionEnd", nil)
	cdc.RegisterConcrete(Version{}, "ibc/connection/Version", nil)
}
