package types

import (
	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
)

// MsgChannelOpenInit defines a msg sent by a Relayer to Chain A to initialize
// a channel handshake. It is called by a relayer on Chain A.
type MsgChannelOpenInit struct {
	PortId  string
	Channel Channel
}

// MsgChannelOpenInitResponse defines the MsgChannelOpenInit response type.
type MsgChannelOpenInitResponse struct {
	ChannelId string
	Version   string
}

// NewMsgChannelOpenInit creates a new MsgChannelOpenInit. It sets the counterparty channel
// identifier to be empty.
func NewMsgChannelOpenInit(
	portID, version string, channelOrder Order, connectionHops []string,
	counterpartyPortID string,
) *MsgChannelOpenInit {
	counterparty := NewCounterparty(counterpartyPortID, "")
	channel := NewChannel(INIT, channelOrder, counterparty, connectionHops, version)
	return &MsgChannelOpenInit{
		PortId:  portID,
		Channel: channel,
	}
}

// ValidateBasic implements Msg.
func (msg MsgChannelOpenInit) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if msg.Channel.State != INIT {
		return errorsmod.Wrapf(ErrInvalidChannelState,
			"channel state must be INIT in MsgChannelOpenInit. expected: %s, got: %s",
			INIT, msg.Channel.State,
		)
	}
	if msg.Channel.Counterparty.ChannelId != "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty channel identifier must be empty")
	}
	return msg.Channel.ValidateBasic()
}

// MsgChannelOpenTry defines a msg sent by a Relayer to try to open a channel
// on Chain B. The version field within the Channel field has been deprecated. Its
// value will be ignored by core IBC.
type MsgChannelOpenTry struct {
	PortId              string
	Channel             Channel
	CounterpartyVersion string
	// proof of the channel creation on Chain A: `UNINITIALIZED -> INIT`
	ProofInit   []byte
	ProofHeight clienttypes.Height
}

// MsgChannelOpenTryResponse defines the MsgChannelOpenTry response type.
type MsgChannelOpenTryResponse struct {
	ChannelId string
	Version   string
}

// NewMsgChannelOpenTry creates a new MsgChannelOpenTry instance. The channel
// version is determined on chain A by the version proposed in this message
// and the application callback.
func NewMsgChannelOpenTry(
	portID, version string, channelOrder Order, connectionHops []string,
	counterpartyPortID, counterpartyChannelID, counterpartyVersion string,
	proofInit []byte, proofHeight clienttypes.Height,
) *MsgChannelOpenTry {
	counterparty := NewCounterparty(counterpartyPortID, counterpartyChannelID)
	channel := NewChannel(TRYOPEN, channelOrder, counterparty, connectionHops, version)
	return &MsgChannelOpenTry{
		PortId:              portID,
		Channel:             channel,
		CounterpartyVersion: counterpartyVersion,
		ProofInit:           proofInit,
		ProofHeight:         proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgChannelOpenTry) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if msg.Channel.State != TRYOPEN {
		return errorsmod.Wrapf(ErrInvalidChannelState,
			"channel state must be TRYOPEN in MsgChannelOpenTry. expected: %s, got: %s",
			TRYOPEN, msg.Channel.State,
		)
	}
	if msg.Channel.Counterparty.ChannelId == "" {
		return errorsmod.Wrap(ErrInvalidCounterparty, "counterparty channel identifier cannot be empty")
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty init proof")
	}
	return msg.Channel.ValidateBasic()
}

// MsgChannelOpenAck defines a msg sent by a Relayer to Chain A to acknowledge
// the change of channel state to TRYOPEN on Chain B.
type MsgChannelOpenAck struct {
	PortId                string
	ChannelId             string
	CounterpartyChannelId string
	CounterpartyVersion   string
	// proof of the channel state change on Chain B: `UNINITIALIZED -> TRYOPEN`
	ProofTry    []byte
	ProofHeight clienttypes.Height
}

// MsgChannelOpenAckResponse defines the MsgChannelOpenAck response type.
type MsgChannelOpenAckResponse struct{}

// NewMsgChannelOpenAck creates a new MsgChannelOpenAck instance
func NewMsgChannelOpenAck(
	portID, channelID, counterpartyChannelID string, cpv string,
	proofTry []byte, proofHeight clienttypes.Height,
) *MsgChannelOpenAck {
	return &MsgChannelOpenAck{
		PortId:                portID,
		ChannelId:             channelID,
		CounterpartyChannelId: counterpartyChannelID,
		CounterpartyVersion:   cpv,
		ProofTry:              proofTry,
		ProofHeight:           proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgChannelOpenAck) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if err := host.ChannelIdentifierValidator(msg.CounterpartyChannelId); err != nil {
		return errorsmod.Wrap(err, "invalid counterparty channel ID")
	}
	if len(msg.ProofTry) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty try proof")
	}
	return nil
}

// MsgChannelOpenConfirm defines a msg sent by a Relayer to Chain B to
// acknowledge the change of channel state to OPEN on Chain A.
type MsgChannelOpenConfirm struct {
	PortId    string
	ChannelId string
	// proof for the change of the channel state on Chain A: `INIT -> OPEN`
	ProofAck    []byte
	ProofHeight clienttypes.Height
}

// MsgChannelOpenConfirmResponse defines the MsgChannelOpenConfirm response type.
type MsgChannelOpenConfirmResponse struct{}

// NewMsgChannelOpenConfirm creates a new MsgChannelOpenConfirm instance
func NewMsgChannelOpenConfirm(
	portID, channelID string, proofAck []byte, proofHeight clienttypes.Height,
) *MsgChannelOpenConfirm {
	return &MsgChannelOpenConfirm{
		PortId:      portID,
		ChannelId:   channelID,
		ProofAck:    proofAck,
		ProofHeight: proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgChannelOpenConfirm) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if len(msg.ProofAck) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty acknowledgement proof")
	}
	return nil
}

// MsgChannelCloseInit defines a msg sent by a Relayer to Chain A to close a
// channel with Chain B.
type MsgChannelCloseInit struct {
	PortId    string
	ChannelId string
}

// MsgChannelCloseInitResponse defines the MsgChannelCloseInit response type.
type MsgChannelCloseInitResponse struct{}

// NewMsgChannelCloseInit creates a new MsgChannelCloseInit instance
func NewMsgChannelCloseInit(portID, channelID string) *MsgChannelCloseInit {
	return &MsgChannelCloseInit{
		PortId:    portID,
		ChannelId: channelID,
	}
}

// ValidateBasic implements Msg.
func (msg MsgChannelCloseInit) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	return nil
}

// MsgChannelCloseConfirm defines a msg sent by a Relayer to Chain B to
// acknowledge the change of channel state to CLOSED on Chain A.
type MsgChannelCloseConfirm struct {
	PortId    string
	ChannelId string
	// proof of the channel state change on Chain A: `OPEN -> CLOSED`
	ProofInit   []byte
	ProofHeight clienttypes.Height
}

// MsgChannelCloseConfirmResponse defines the MsgChannelCloseConfirm response type.
type MsgChannelCloseConfirmResponse struct{}

// NewMsgChannelCloseConfirm creates a new MsgChannelCloseConfirm instance
func NewMsgChannelCloseConfirm(
	portID, channelID string, proofInit []byte, proofHeight clienttypes.Height,
) *MsgChannelCloseConfirm {
	return &MsgChannelCloseConfirm{
		PortId:      portID,
		ChannelId:   channelID,
		ProofInit:   proofInit,
		ProofHeight: proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgChannelCloseConfirm) ValidateBasic() error {
	if err := host.PortIdentifierValidator(msg.PortId); err != nil {
		return errorsmod.Wrap(err, "invalid port ID")
	}
	if !IsValidChannelID(msg.ChannelId) {
		return ErrInvalidChannelIdentifier
	}
	if len(msg.ProofInit) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty init proof")
	}
	return nil
}

// MsgRecvPacket receives an incoming IBC packet.
type MsgRecvPacket struct {
	Packet Packet
	// proof of the packet commitment on the sending chain
	ProofCommitment []byte
	ProofHeight     clienttypes.Height
}

// MsgRecvPacketResponse defines the MsgRecvPacket response type.
type MsgRecvPacketResponse struct{}

// NewMsgRecvPacket constructs new MsgRecvPacket
func NewMsgRecvPacket(
	packet Packet, proofCommitment []byte, proofHeight clienttypes.Height,
) *MsgRecvPacket {
	return &MsgRecvPacket{
		Packet:          packet,
		ProofCommitment: proofCommitment,
		ProofHeight:     proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgRecvPacket) ValidateBasic() error {
	if len(msg.ProofCommitment) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty commitment proof")
	}
	return msg.Packet.ValidateBasic()
}

// MsgAcknowledgement receives an incoming IBC acknowledgement.
type MsgAcknowledgement struct {
	Packet          Packet
	Acknowledgement []byte
	// proof of the acknowledgement on the receiving chain
	ProofAcked  []byte
	ProofHeight clienttypes.Height
}

// MsgAcknowledgementResponse defines the MsgAcknowledgement response type.
type MsgAcknowledgementResponse struct{}

// NewMsgAcknowledgement constructs a new MsgAcknowledgement
func NewMsgAcknowledgement(
	packet Packet,
	ack, proofAcked []byte,
	proofHeight clienttypes.Height,
) *MsgAcknowledgement {
	return &MsgAcknowledgement{
		Packet:          packet,
		Acknowledgement: ack,
		ProofAcked:      proofAcked,
		ProofHeight:     proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgAcknowledgement) ValidateBasic() error {
	if len(msg.ProofAcked) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty acknowledgement proof")
	}
	if len(msg.Acknowledgement) == 0 {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "ack bytes cannot be empty")
	}
	return msg.Packet.ValidateBasic()
}

// MsgTimeout receives a timed-out packet.
type MsgTimeout struct {
	Packet Packet
	// proof of the absence of a packet receipt (UNORDERED) or of the next
	// sequence receive (ORDERED) on the receiving chain
	ProofUnreceived  []byte
	ProofHeight      clienttypes.Height
	NextSequenceRecv uint64
}

// MsgTimeoutResponse defines the MsgTimeout response type.
type MsgTimeoutResponse struct{}

// NewMsgTimeout constructs a new MsgTimeout
func NewMsgTimeout(
	packet Packet, nextSequenceRecv uint64, proofUnreceived []byte,
	proofHeight clienttypes.Height,
) *MsgTimeout {
	return &MsgTimeout{
		Packet:           packet,
		NextSequenceRecv: nextSequenceRecv,
		ProofUnreceived:  proofUnreceived,
		ProofHeight:      proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgTimeout) ValidateBasic() error {
	if len(msg.ProofUnreceived) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty unreceived proof")
	}
	return msg.Packet.ValidateBasic()
}

// MsgTimeoutOnClose timeouts a packet upon the counterparty channel closing.
type MsgTimeoutOnClose struct {
	Packet Packet
	// proof of the absence of a packet receipt or of the next sequence receive
	// on the receiving chain
	ProofUnreceived []byte
	// proof of the CLOSED state of the channel end on the receiving chain
	ProofClose       []byte
	ProofHeight      clienttypes.Height
	NextSequenceRecv uint64
}

// MsgTimeoutOnCloseResponse defines the MsgTimeoutOnClose response type.
type MsgTimeoutOnCloseResponse struct{}

// NewMsgTimeoutOnClose constructs new MsgTimeoutOnClose
func NewMsgTimeoutOnClose(
	packet Packet, nextSequenceRecv uint64,
	proofUnreceived, proofClose []byte,
	proofHeight clienttypes.Height,
) *MsgTimeoutOnClose {
	return &MsgTimeoutOnClose{
		Packet:           packet,
		NextSequenceRecv: nextSequenceRecv,
		ProofUnreceived:  proofUnreceived,
		ProofClose:       proofClose,
		ProofHeight:      proofHeight,
	}
}

// ValidateBasic implements Msg.
func (msg MsgTimeoutOnClose) ValidateBasic() error {
	if msg.NextSequenceRecv == 0 {
		return errorsmod.Wrap(ErrInvalidPacket, "next sequence receive cannot be 0")
	}
	if len(msg.ProofUnreceived) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty unreceived proof")
	}
	if len(msg.ProofClose) == 0 {
		return errorsmod.Wrap(commitmenttypes.ErrInvalidProof, "cannot submit an empty proof of closed counterparty channel end")
	}
	return msg.Packet.ValidateBasic()
}
