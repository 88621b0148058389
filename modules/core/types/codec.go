package types

import (
	amino "github.com/tendermint/go-amino"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-core/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
)

// RegisterCodec registers the IBC core types on the provided amino codec.
// Light client implementations must register their concrete client state,
// consensus state and client message types separately.
func RegisterCodec(cdc *amino.Codec) {
	clienttypes.RegisterCodec(cdc)
	connectiontypes.RegisterCodec(cdc)
	channeltypes.RegisterCodec(cdc)
}
