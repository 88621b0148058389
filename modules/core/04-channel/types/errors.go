package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC channel sentinel errors
var (
	ErrChannelExists            = errorsmod.Register(SubModuleName, 2, "channel already exists")
	ErrChannelNotFound          = errorsmod.Register(SubModuleName, 3, "channel not found")
	ErrInvalidChannel           = errorsmod.Register(SubModuleName, 4, "invalid channel")
	ErrInvalidChannelState      = errorsmod.Register(SubModuleName, 5, "invalid channel state")
	ErrInvalidChannelOrdering   = errorsmod.Register(SubModuleName, 6, "invalid channel ordering")
	ErrInvalidCounterparty      = errorsmod.Register(SubModuleName, 7, "invalid counterparty channel")
	ErrSequenceSendNotFound     = errorsmod.Register(SubModuleName, 8, "sequence send not found")
	ErrSequenceReceiveNotFound  = errorsmod.Register(SubModuleName, 9, "sequence receive not found")
	ErrSequenceAckNotFound      = errorsmod.Register(SubModuleName, 10, "sequence acknowledgement not found")
	ErrInvalidPacket            = errorsmod.Register(SubModuleName, 11, "invalid packet")
	ErrPacketTimeout            = errorsmod.Register(SubModuleName, 12, "packet timeout")
	ErrTooManyConnectionHops    = errorsmod.Register(SubModuleName, 13, "too many connection hops")
	ErrInvalidAcknowledgement   = errorsmod.Register(SubModuleName, 14, "invalid acknowledgement")
	ErrAcknowledgementExists    = errorsmod.Register(SubModuleName, 15, "acknowledgement for packet already exists")
	ErrInvalidChannelIdentifier = errorsmod.Register(SubModuleName, 16, "invalid channel identifier")

	// packets already relayed errors
	ErrPacketReceived           = errorsmod.Register(SubModuleName, 17, "packet already received")
	ErrPacketCommitmentNotFound = errorsmod.Register(SubModuleName, 18, "packet commitment not found")

	// ORDERED channel error
	ErrPacketSequenceOutOfOrder = errorsmod.Register(SubModuleName, 19, "packet sequence is out of order")

	ErrInvalidTimeout    = errorsmod.Register(SubModuleName, 20, "invalid packet timeout")
	ErrTimeoutNotReached = errorsmod.Register(SubModuleName, 21, "timeout not reached")
	ErrTimeoutElapsed    = errorsmod.Register(SubModuleName, 22, "timeout elapsed")
)
