package keeper

import (
	"cosmossdk.io/log"
	amino "github.com/tendermint/go-amino"

	clientkeeper "github.com/cosmos/ibc-core/modules/core/02-client/keeper"
	connectionkeeper "github.com/cosmos/ibc-core/modules/core/03-connection/keeper"
	channelkeeper "github.com/cosmos/ibc-core/modules/core/04-channel/keeper"
	porttypes "github.com/cosmos/ibc-core/modules/core/05-port/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	coretypes "github.com/cosmos/ibc-core/types"
)

// Keeper defines each ICS keeper for IBC
type Keeper struct {
	cdc *amino.Codec

	ClientKeeper     clientkeeper.Keeper
	ConnectionKeeper connectionkeeper.Keeper
	ChannelKeeper    channelkeeper.Keeper
	Router           *porttypes.Router
}

// NewKeeper creates a new ibc Keeper
func NewKeeper(cdc *amino.Codec) *Keeper {
	clientKeeper := clientkeeper.NewKeeper(cdc)
	connectionKeeper := connectionkeeper.NewKeeper(cdc, clientKeeper)
	channelKeeper := channelkeeper.NewKeeper(cdc, clientKeeper, connectionKeeper)

	return &Keeper{
		cdc:              cdc,
		ClientKeeper:     clientKeeper,
		ConnectionKeeper: connectionKeeper,
		ChannelKeeper:    channelKeeper,
	}
}

// Codec returns the IBC module codec.
func (k *Keeper) Codec() *amino.Codec {
	return k.cdc
}

// SetRouter sets the Router in IBC Keeper and seals it. The method panics if
// there is an existing router that's already sealed.
func (k *Keeper) SetRouter(rtr *porttypes.Router) {
	if k.Router != nil && k.Router.Sealed() {
		panic("cannot reset a sealed router")
	}

	k.Router = rtr
	k.Router.Seal()
}

// Logger returns a module-specific logger.
func (*Keeper) Logger(ctx coretypes.Context) log.Logger {
	return ctx.Logger().With("module", "x/"+exported.ModuleName)
}
