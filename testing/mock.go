package ibctesting

import (
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-core/modules/core/05-port/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	coretypes "github.com/cosmos/ibc-core/types"
)

var _ porttypes.IBCModule = (*MockModule)(nil)

// MockModule is a stand-in IBC application bound to MockPort on every test
// chain. Each callback can be overridden per test; the zero overrides
// acknowledge every packet successfully.
type MockModule struct {
	OnRecvPacketFn            func(ctx coretypes.Context, packet channeltypes.Packet) exported.Acknowledgement
	OnAcknowledgementPacketFn func(ctx coretypes.Context, packet channeltypes.Packet, acknowledgement []byte) error
	OnTimeoutPacketFn         func(ctx coretypes.Context, packet channeltypes.Packet) error
}

// NewMockModule returns a mock application with default callbacks.
func NewMockModule() *MockModule {
	return &MockModule{}
}

// OnRecvPacket implements porttypes.IBCModule.
func (m *MockModule) OnRecvPacket(ctx coretypes.Context, packet channeltypes.Packet) exported.Acknowledgement {
	if m.OnRecvPacketFn != nil {
		return m.OnRecvPacketFn(ctx, packet)
	}

	return MockAcknowledgement
}

// OnAcknowledgementPacket implements porttypes.IBCModule.
func (m *MockModule) OnAcknowledgementPacket(ctx coretypes.Context, packet channeltypes.Packet, acknowledgement []byte) error {
	if m.OnAcknowledgementPacketFn != nil {
		return m.OnAcknowledgementPacketFn(ctx, packet, acknowledgement)
	}

	return nil
}

// OnTimeoutPacket implements porttypes.IBCModule.
func (m *MockModule) OnTimeoutPacket(ctx coretypes.Context, packet channeltypes.Packet) error {
	if m.OnTimeoutPacketFn != nil {
		return m.OnTimeoutPacketFn(ctx, packet)
	}

	return nil
}
