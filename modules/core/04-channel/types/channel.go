package types

import (
	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-core/modules/core/24-host"
)

// State defines if a channel is in one of the following states:
// CLOSED, INIT, TRYOPEN or OPEN.
type State int32

const (
	// UNINITIALIZED defines the default channel state.
	UNINITIALIZED State = iota
	// INIT defines a channel end that has just started the opening handshake.
	INIT
	// TRYOPEN defines a channel end that has acknowledged the handshake step on
	// the counterparty chain.
	TRYOPEN
	// OPEN defines a channel end that has completed the handshake and is ready
	// to send and receive packets.
	OPEN
	// CLOSED defines a channel end that has been closed and can no longer be
	// used to send or receive packets.
	CLOSED
)

// String implements the Stringer interface
func (s State) String() string {
	switch s {
	case INIT:
		return "INIT"
	case TRYOPEN:
		return "TRYOPEN"
	case OPEN:
		return "OPEN"
	case CLOSED:
		return "CLOSED"
	default:
		return "UNINITIALIZED"
	}
}

// Order defines if a channel is ORDERED or UNORDERED.
type Order int32

const (
	// NONE defines a zero ordering.
	NONE Order = iota
	// UNORDERED defines a channel where packets can be delivered in any order.
	UNORDERED
	// ORDERED defines a channel where packets are delivered exactly in the
	// order which they were sent.
	ORDERED
)

// String implements the Stringer interface
func (o Order) String() string {
	switch o {
	case UNORDERED:
		return "ORDER_UNORDERED"
	case ORDERED:
		return "ORDER_ORDERED"
	default:
		return "ORDER_NONE_UNSPECIFIED"
	}
}

// Counterparty defines a channel end counterparty
type Counterparty struct {
	// port on the counterparty chain which owns the other end of the channel.
	PortId string
	// channel end on the counterparty chain
	ChannelId string
}

// NewCounterparty returns a new Counterparty instance
func NewCounterparty(portID, channelID string) Counterparty {
	return Counterparty{
		PortId:    portID,
		ChannelId: channelID,
	}
}

// GetPortID implements the CounterpartyChannel interface
func (c Counterparty) GetPortID() string {
	return c.PortId
}

// GetChannelID implements the CounterpartyChannel interface
func (c Counterparty) GetChannelID() string {
	return c.ChannelId
}

// ValidateBasic performs a basic validation check of the identifiers
func (c Counterparty) ValidateBasic() error {
	if err := host.PortIdentifierValidator(c.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty port ID")
	}
	if c.ChannelId != "" {
		if err := host.ChannelIdentifierValidator(c.ChannelId); err != nil {
			return errorsmod.Wrap(err, "invalid counterparty channel ID")
		}
	}
	return nil
}

// Channel defines pipeline for exactly-once packet delivery between specific
// modules on separate blockchains, which has at least one end capable of
// sending packets and one end capable of receiving packets.
type Channel struct {
	// current state of the channel end
	State State
	// whether the channel is ordered or unordered
	Ordering Order
	// counterparty channel end
	Counterparty Counterparty
	// list of connection identifiers, in order, along which packets sent on
	// this channel will travel
	ConnectionHops []string
	// opaque channel version, which is agreed upon during the handshake
	Version string
}

// NewChannel creates a new Channel instance
func NewChannel(
	state State, ordering Order, counterparty Counterparty,
	hops []string, version string,
) Channel {
	return Channel{
		State:          state,
		Ordering:       ordering,
		Counterparty:   counterparty,
		ConnectionHops: hops,
		Version:        version,
	}
}

// GetState implements the Channel interface
func (ch Channel) GetState() int32 {
	return int32(ch.State)
}

// GetOrdering implements the Channel interface
func (ch Channel) GetOrdering() int32 {
	return int32(ch.Ordering)
}

// GetCounterparty implements the Channel interface
func (ch Channel) GetCounterparty() Counterparty {
	return ch.Counterparty
}

// GetConnectionHops implements the Channel interface
func (ch Channel) GetConnectionHops() []string {
	return ch.ConnectionHops
}

// GetVersion implements the Channel interface
func (ch Channel) GetVersion() string {
	return ch.Version
}

// ValidateBasic performs a basic validation of the channel fields
func (ch Channel) ValidateBasic() error {
	if ch.State == UNINITIALIZED {
		return ErrInvalidChannelState
	}
	if !(ch.Ordering == ORDERED || ch.Ordering == UNORDERED) {
		return errorsmod.Wrap(ErrInvalidChannelOrdering, ch.Ordering.String())
	}
	if len(ch.ConnectionHops) != 1 {
		return errorsmod.Wrap(
			ErrTooManyConnectionHops,
			"current IBC version only supports one connection hop",
		)
	}
	if err := host.ConnectionIdentifierValidator(ch.ConnectionHops[0]); err != nil {
		return errorsmod.Wrap(err, "invalid connection hop ID")
	}
	return ch.Counterparty.ValidateBasic()
}
