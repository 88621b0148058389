package types

import (
	errorsmod "cosmossdk.io/errors"

	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
)

// State defines if a connection is in one of the following states:
// UNINITIALIZED, INIT, TRYOPEN or OPEN.
type State int32

const (
	// UNINITIALIZED defines the default connection state.
	UNINITIALIZED State = iota
	// INIT defines a connection end that has just started the opening handshake.
	INIT
	// TRYOPEN defines a connection end that has acknowledged the handshake step
	// on the counterparty chain.
	TRYOPEN
	// OPEN defines a connection end that has completed the handshake.
	OPEN
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
	default:
		return "UNINITIALIZED"
	}
}

// Counterparty defines the counterparty chain's connection and client
// identifiers along with its commitment prefix.
type Counterparty struct {
	// identifies the client on the counterparty chain associated with a given
	// connection.
	ClientId string
	// identifies the connection end on the counterparty chain associated with a
	// given connection.
	ConnectionId string
	// commitment merkle prefix of the counterparty chain.
	Prefix commitmenttypes.MerklePrefix
}

// NewCounterparty creates a new Counterparty instance.
func NewCounterparty(clientID, connectionID string, prefix commitmenttypes.MerklePrefix) Counterparty {
	return Counterparty{
		ClientId:     clientID,
		ConnectionId: connectionID,
		Prefix:       prefix,
	}
}

// GetClientID implements the CounterpartyConnectionI interface
func (c Counterparty) GetClientID() string {
	return c.ClientId
}

// GetConnectionID implements the CounterpartyConnectionI interface
func (c Counterparty) GetConnectionID() string {
	return c.ConnectionId
}

// GetPrefix implements the CounterpartyConnectionI interface
func (c Counterparty) GetPrefix() commitmenttypes.MerklePrefix {
	return c.Prefix
}

// ValidateBasic performs a basic validation check of the identifiers and prefix
func (c Counterparty) ValidateBasic() error {
	if c.ConnectionId != "" {
		if err := host.ConnectionIdentifierValidator(c.ConnectionId); err != nil {
			return errorsmod.Wrap(err, "invalid counterparty connection ID")
		}
	}
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty client ID")
	}
	if c.Prefix.Empty() {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty prefix cannot be empty")
	}
	return nil
}

// ConnectionEnd defines a stateful object on a chain connected to another
// separate one. The semantics of the connection's state machine are described
// by the connection handshake.
type ConnectionEnd struct {
	// client associated with this connection.
	ClientId string
	// IBC version which can be utilised to determine encodings or protocols for
	// channels or packets utilising this connection.
	Versions []*Version
	// current state of the connection end.
	State State
	// counterparty chain associated with this connection.
	Counterparty Counterparty
	// delay period that must pass before a consensus state can be used for
	// packet-verification. NOTE: delay period logic is only implemented by some
	// clients.
	DelayPeriod uint64
}

// NewConnectionEnd creates a new ConnectionEnd instance.
func NewConnectionEnd(state State, clientID string, counterparty Counterparty, versions []*Version, delayPeriod uint64) ConnectionEnd {
	return ConnectionEnd{
		ClientId:     clientID,
		Versions:     versions,
		State:        state,
		Counterparty: counterparty,
		DelayPeriod:  delayPeriod,
	}
}

// GetClientID implements the Connection interface
func (c ConnectionEnd) GetClientID() string {
	return c.ClientId
}

// GetState implements the Connection interface
func (c ConnectionEnd) GetState() int32 {
	return int32(c.State)
}

// GetCounterparty implements the Connection interface
func (c ConnectionEnd) GetCounterparty() Counterparty {
	return c.Counterparty
}

// GetVersions implements the Connection interface
func (c ConnectionEnd) GetVersions() []*Version {
	return c.Versions
}

// GetDelayPeriod implements the Connection interface
func (c ConnectionEnd) GetDelayPeriod() uint64 {
	return c.DelayPeriod
}

// ValidateBasic implements the Connection interface.
// NOTE: the protocol supported version are not validated.
func (c ConnectionEnd) ValidateBasic() error {
	if err := host.ClientIdentifierValidator(c.ClientId); err != nil {
		return errorsmod.Wrap(err, "invalid client ID")
	}
	if len(c.Versions) == 0 {
		return errorsmod.Wrap(ErrInvalidVersion, "empty connection versions")
	}
	for _, version := range c.Versions {
		if err := ValidateVersion(version); err != nil {
			return err
		}
	}
	return c.Counterparty.ValidateBasic()
}
