package types

import (
	"github.com/cosmos/ibc-core/modules/core/exported"
	coretypes "github.com/cosmos/ibc-core/types"

	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
)

// IBCModule defines an interface that implements all the callbacks
// that modules must define as specified in ICS-26
type IBCModule interface {
	// OnRecvPacket must return an acknowledgement that implements the
	// Acknowledgement interface. In the case of an asynchronous acknowledgement,
	// nil should be returned. If the acknowledgement returned is successful, the
	// state changes on callback are written, otherwise the packet execution is
	// discarded.
	OnRecvPacket(
		ctx coretypes.Context,
		packet channeltypes.Packet,
	) exported.Acknowledgement

	OnAcknowledgementPacket(
		ctx coretypes.Context,
		packet channeltypes.Packet,
		acknowledgement []byte,
	) error

	OnTimeoutPacket(
		ctx coretypes.Context,
		packet channeltypes.Packet,
	) error
}
