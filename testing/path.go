package ibctesting

import (
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
)

// ChannelConfig holds the port, version and ordering an endpoint uses when
// opening channels.
type ChannelConfig struct {
	PortID  string
	Version string
	Order   channeltypes.Order
}

// NewChannelConfig returns a channel config bound to the mock application.
func NewChannelConfig() *ChannelConfig {
	return &ChannelConfig{
		PortID:  MockPort,
		Version: MockVersion,
		Order:   channeltypes.UNORDERED,
	}
}

// Path contains two endpoints representing two chains connected over IBC.
type Path struct {
	EndpointA *Endpoint
	EndpointB *Endpoint
}

// NewPath constructs endpoints for each chain with default channel config,
// wired as counterparties of each other.
func NewPath(chainA, chainB *TestChain) *Path {
	endpointA := NewEndpoint(chainA)
	endpointB := NewEndpoint(chainB)

	endpointA.Counterparty = endpointB
	endpointB.Counterparty = endpointA

	return &Path{
		EndpointA: endpointA,
		EndpointB: endpointB,
	}
}

// SetChannelOrdered sets both endpoints of the path to use ordered channels.
func (path *Path) SetChannelOrdered() {
	path.EndpointA.ChannelConfig.Order = channeltypes.ORDERED
	path.EndpointB.ChannelConfig.Order = channeltypes.ORDERED
}
