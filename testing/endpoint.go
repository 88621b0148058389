package ibctesting

import (
	"github.com/stretchr/testify/require"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	connectiontypes "github.com/cosmos/ibc-core/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	storetypes "github.com/cosmos/ibc-core/store/types"
)

// Endpoint is one side of a Path. It tracks the identifiers created for it on
// its chain during the handshakes and produces the messages a relayer would
// submit.
type Endpoint struct {
	Chain        *TestChain
	Counterparty *Endpoint

	ClientID     string
	ConnectionID string
	ChannelID    string

	ChannelConfig *ChannelConfig
	DelayPeriod   uint64
}

// NewEndpoint constructs an endpoint for the given chain with defaults.
func NewEndpoint(chain *TestChain) *Endpoint {
	return &Endpoint{
		Chain:         chain,
		ChannelConfig: NewChannelConfig(),
		DelayPeriod:   DefaultDelayPeriod,
	}
}

// CreateClient creates a solo machine client on the endpoint's chain tracking
// the counterparty chain's signing identity.
func (endpoint *Endpoint) CreateClient() error {
	solo := endpoint.Counterparty.Chain.Solomachine

	msg := clienttypes.NewMsgCreateClient(solo.ClientState(), solo.ConsensusState())
	res, err := endpoint.Chain.Keeper.CreateClient(endpoint.Chain.GetContext(), msg)
	if err != nil {
		return err
	}

	endpoint.ClientID = res.ClientId
	solo.ClientID = res.ClientId
	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// UpdateClient rotates the counterparty solo machine to a fresh key pair and
// submits the resulting header to the endpoint's client.
func (endpoint *Endpoint) UpdateClient() error {
	solo := endpoint.Counterparty.Chain.Solomachine
	header := solo.CreateHeader(solo.Diversifier)

	msg := clienttypes.NewMsgUpdateClient(endpoint.ClientID, header)
	if _, err := endpoint.Chain.Keeper.UpdateClient(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ConnOpenInit initializes a connection on the endpoint's chain.
func (endpoint *Endpoint) ConnOpenInit() error {
	msg := connectiontypes.NewMsgConnectionOpenInit(
		endpoint.ClientID, endpoint.Counterparty.ClientID,
		endpoint.Counterparty.Chain.GetPrefix(), nil, endpoint.DelayPeriod,
	)
	res, err := endpoint.Chain.Keeper.ConnectionOpenInit(endpoint.Chain.GetContext(), msg)
	if err != nil {
		return err
	}

	endpoint.ConnectionID = res.ConnectionId
	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ConnOpenTry relays the counterparty's INIT connection to the endpoint's chain.
func (endpoint *Endpoint) ConnOpenTry() error {
	proofInit, proofHeight := endpoint.Counterparty.connectionProof()

	msg := connectiontypes.NewMsgConnectionOpenTry(
		endpoint.ClientID, endpoint.Counterparty.ConnectionID, endpoint.Counterparty.ClientID,
		endpoint.Counterparty.Chain.GetPrefix(),
		connectiontypes.GetCompatibleVersions(), endpoint.DelayPeriod,
		proofInit, proofHeight,
	)
	res, err := endpoint.Chain.Keeper.ConnectionOpenTry(endpoint.Chain.GetContext(), msg)
	if err != nil {
		return err
	}

	endpoint.ConnectionID = res.ConnectionId
	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ConnOpenAck relays the counterparty's TRYOPEN connection back to the
// endpoint's chain.
func (endpoint *Endpoint) ConnOpenAck() error {
	proofTry, proofHeight := endpoint.Counterparty.connectionProof()
	counterpartyConnection := endpoint.Counterparty.GetConnection()

	msg := connectiontypes.NewMsgConnectionOpenAck(
		endpoint.ConnectionID, endpoint.Counterparty.ConnectionID,
		proofTry, proofHeight,
		counterpartyConnection.Versions[0],
	)
	if _, err := endpoint.Chain.Keeper.ConnectionOpenAck(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ConnOpenConfirm confirms the counterparty's OPEN connection on the
// endpoint's chain.
func (endpoint *Endpoint) ConnOpenConfirm() error {
	proofAck, proofHeight := endpoint.Counterparty.connectionProof()

	msg := connectiontypes.NewMsgConnectionOpenConfirm(endpoint.ConnectionID, proofAck, proofHeight)
	if _, err := endpoint.Chain.Keeper.ConnectionOpenConfirm(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ChanOpenInit initializes a channel on the endpoint's chain.
func (endpoint *Endpoint) ChanOpenInit() error {
	msg := channeltypes.NewMsgChannelOpenInit(
		endpoint.ChannelConfig.PortID, endpoint.ChannelConfig.Version, endpoint.ChannelConfig.Order,
		[]string{endpoint.ConnectionID}, endpoint.Counterparty.ChannelConfig.PortID,
	)
	res, err := endpoint.Chain.Keeper.ChannelOpenInit(endpoint.Chain.GetContext(), msg)
	if err != nil {
		return err
	}

	endpoint.ChannelID = res.ChannelId
	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ChanOpenTry relays the counterparty's INIT channel to the endpoint's chain.
func (endpoint *Endpoint) ChanOpenTry() error {
	proofInit, proofHeight := endpoint.Counterparty.channelProof()
	counterpartyChannel := endpoint.Counterparty.GetChannel()

	msg := channeltypes.NewMsgChannelOpenTry(
		endpoint.ChannelConfig.PortID, endpoint.ChannelConfig.Version, endpoint.ChannelConfig.Order,
		[]string{endpoint.ConnectionID},
		endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID,
		counterpartyChannel.Version,
		proofInit, proofHeight,
	)
	res, err := endpoint.Chain.Keeper.ChannelOpenTry(endpoint.Chain.GetContext(), msg)
	if err != nil {
		return err
	}

	endpoint.ChannelID = res.ChannelId
	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ChanOpenAck relays the counterparty's TRYOPEN channel back to the
// endpoint's chain.
func (endpoint *Endpoint) ChanOpenAck() error {
	proofTry, proofHeight := endpoint.Counterparty.channelProof()
	counterpartyChannel := endpoint.Counterparty.GetChannel()

	msg := channeltypes.NewMsgChannelOpenAck(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		endpoint.Counterparty.ChannelID, counterpartyChannel.Version,
		proofTry, proofHeight,
	)
	if _, err := endpoint.Chain.Keeper.ChannelOpenAck(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ChanOpenConfirm confirms the counterparty's OPEN channel on the endpoint's
// chain.
func (endpoint *Endpoint) ChanOpenConfirm() error {
	proofAck, proofHeight := endpoint.Counterparty.channelProof()

	msg := channeltypes.NewMsgChannelOpenConfirm(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		proofAck, proofHeight,
	)
	if _, err := endpoint.Chain.Keeper.ChannelOpenConfirm(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ChanCloseInit closes the channel on the endpoint's chain.
func (endpoint *Endpoint) ChanCloseInit() error {
	msg := channeltypes.NewMsgChannelCloseInit(endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	if _, err := endpoint.Chain.Keeper.ChannelCloseInit(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// ChanCloseConfirm closes the channel on the endpoint's chain with proof of
// the counterparty channel's closure.
func (endpoint *Endpoint) ChanCloseConfirm() error {
	proofInit, proofHeight := endpoint.Counterparty.channelProof()

	msg := channeltypes.NewMsgChannelCloseConfirm(
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		proofInit, proofHeight,
	)
	if _, err := endpoint.Chain.Keeper.ChannelCloseConfirm(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// SendPacket commits a packet on the endpoint's chain and returns it.
func (endpoint *Endpoint) SendPacket(timeoutHeight clienttypes.Height, timeoutTimestamp uint64, data []byte) (channeltypes.Packet, error) {
	sequence, err := endpoint.Chain.Keeper.ChannelKeeper.SendPacket(
		endpoint.Chain.GetContext(),
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		timeoutHeight, timeoutTimestamp, data,
	)
	if err != nil {
		return channeltypes.Packet{}, err
	}

	packet := channeltypes.NewPacket(
		data, sequence,
		endpoint.ChannelConfig.PortID, endpoint.ChannelID,
		endpoint.Counterparty.ChannelConfig.PortID, endpoint.Counterparty.ChannelID,
		timeoutHeight, timeoutTimestamp,
	)

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return packet, nil
}

// RecvPacket receives a packet sent by the counterparty on the endpoint's
// chain, running the mock application callback and writing its
// acknowledgement.
func (endpoint *Endpoint) RecvPacket(packet channeltypes.Packet) error {
	proof, proofHeight := endpoint.Counterparty.packetCommitmentProof(packet)

	msg := channeltypes.NewMsgRecvPacket(packet, proof, proofHeight)
	if _, err := endpoint.Chain.Keeper.RecvPacket(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// AcknowledgePacket acknowledges a packet on the endpoint's chain with proof
// of the acknowledgement written by the counterparty.
func (endpoint *Endpoint) AcknowledgePacket(packet channeltypes.Packet, ack []byte) error {
	proof, proofHeight := endpoint.Counterparty.packetAcknowledgementProof(packet, ack)

	msg := channeltypes.NewMsgAcknowledgement(packet, ack, proof, proofHeight)
	if _, err := endpoint.Chain.Keeper.Acknowledgement(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// TimeoutPacket times out a packet on the endpoint's chain with proof that
// the counterparty never received it.
func (endpoint *Endpoint) TimeoutPacket(packet channeltypes.Packet) error {
	proof, proofHeight, nextSeqRecv := endpoint.Counterparty.packetUnreceivedProof(packet, endpoint.ChannelConfig.Order)

	msg := channeltypes.NewMsgTimeout(packet, nextSeqRecv, proof, proofHeight)
	if _, err := endpoint.Chain.Keeper.Timeout(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// TimeoutOnClose times out a packet on the endpoint's chain with proof that
// the counterparty channel is closed and the packet was never received.
func (endpoint *Endpoint) TimeoutOnClose(packet channeltypes.Packet) error {
	proofUnreceived, proofHeight, nextSeqRecv := endpoint.Counterparty.packetUnreceivedProof(packet, endpoint.ChannelConfig.Order)
	proofClose, _ := endpoint.Counterparty.channelProof()

	msg := channeltypes.NewMsgTimeoutOnClose(packet, nextSeqRecv, proofUnreceived, proofClose, proofHeight)
	if _, err := endpoint.Chain.Keeper.TimeoutOnClose(endpoint.Chain.GetContext(), msg); err != nil {
		return err
	}

	endpoint.Chain.Coordinator.CommitBlock(endpoint.Chain)

	return nil
}

// GetClientState retrieves the endpoint's client state.
func (endpoint *Endpoint) GetClientState() exported.ClientState {
	clientState, found := endpoint.Chain.Keeper.ClientKeeper.GetClientState(endpoint.Chain.GetContext(), endpoint.ClientID)
	require.True(endpoint.Chain.t, found, "client %s not found", endpoint.ClientID)
	return clientState
}

// GetConnection retrieves the endpoint's connection end.
func (endpoint *Endpoint) GetConnection() connectiontypes.ConnectionEnd {
	connection, found := endpoint.Chain.Keeper.ConnectionKeeper.GetConnection(endpoint.Chain.GetContext(), endpoint.ConnectionID)
	require.True(endpoint.Chain.t, found, "connection %s not found", endpoint.ConnectionID)
	return connection
}

// GetChannel retrieves the endpoint's channel end.
func (endpoint *Endpoint) GetChannel() channeltypes.Channel {
	channel, found := endpoint.Chain.Keeper.ChannelKeeper.GetChannel(endpoint.Chain.GetContext(), endpoint.ChannelConfig.PortID, endpoint.ChannelID)
	require.True(endpoint.Chain.t, found, "channel %s not found", endpoint.ChannelID)
	return channel
}

// connectionProof signs the endpoint's stored connection end so the
// counterparty client can verify it.
func (endpoint *Endpoint) connectionProof() ([]byte, clienttypes.Height) {
	connection := endpoint.GetConnection()
	bz := endpoint.Chain.Codec.MustMarshalBinaryBare(connection)

	merklePath := endpoint.commitmentPath(host.ConnectionPath(endpoint.ConnectionID))
	return endpoint.Chain.Solomachine.GenerateProof(merklePath, bz), endpoint.Chain.Solomachine.GetHeight()
}

// channelProof signs the endpoint's stored channel end so the counterparty
// client can verify it.
func (endpoint *Endpoint) channelProof() ([]byte, clienttypes.Height) {
	channel := endpoint.GetChannel()
	bz := endpoint.Chain.Codec.MustMarshalBinaryBare(channel)

	merklePath := endpoint.commitmentPath(host.ChannelPath(endpoint.ChannelConfig.PortID, endpoint.ChannelID))
	return endpoint.Chain.Solomachine.GenerateProof(merklePath, bz), endpoint.Chain.Solomachine.GetHeight()
}

// packetCommitmentProof signs the commitment of a packet sent by the endpoint.
func (endpoint *Endpoint) packetCommitmentProof(packet channeltypes.Packet) ([]byte, clienttypes.Height) {
	commitment := channeltypes.CommitPacket(packet)

	merklePath := endpoint.commitmentPath(host.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence))
	return endpoint.Chain.Solomachine.GenerateProof(merklePath, commitment), endpoint.Chain.Solomachine.GetHeight()
}

// packetAcknowledgementProof signs the acknowledgement commitment written by
// the endpoint for a received packet.
func (endpoint *Endpoint) packetAcknowledgementProof(packet channeltypes.Packet, ack []byte) ([]byte, clienttypes.Height) {
	merklePath := endpoint.commitmentPath(host.PacketAcknowledgementPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence))
	return endpoint.Chain.Solomachine.GenerateProof(merklePath, channeltypes.CommitAcknowledgement(ack)), endpoint.Chain.Solomachine.GetHeight()
}

// packetUnreceivedProof signs evidence that the endpoint never received the
// packet: the next sequence receive for ordered channels, the absence of a
// packet receipt for unordered ones.
func (endpoint *Endpoint) packetUnreceivedProof(packet channeltypes.Packet, order channeltypes.Order) ([]byte, clienttypes.Height, uint64) {
	nextSeqRecv, found := endpoint.Chain.Keeper.ChannelKeeper.GetNextSequenceRecv(endpoint.Chain.GetContext(), packet.DestinationPort, packet.DestinationChannel)
	require.True(endpoint.Chain.t, found, "next sequence receive not found for channel %s", packet.DestinationChannel)

	var proof []byte
	if order == channeltypes.ORDERED {
		merklePath := endpoint.commitmentPath(host.NextSequenceRecvPath(packet.DestinationPort, packet.DestinationChannel))
		proof = endpoint.Chain.Solomachine.GenerateProof(merklePath, storetypes.Uint64ToBigEndian(nextSeqRecv))
	} else {
		merklePath := endpoint.commitmentPath(host.PacketReceiptPath(packet.DestinationPort, packet.DestinationChannel, packet.Sequence))
		proof = endpoint.Chain.Solomachine.GenerateNonMembershipProof(merklePath)
	}

	return proof, endpoint.Chain.Solomachine.GetHeight(), nextSeqRecv
}

// commitmentPath prefixes a host path with the chain's commitment prefix.
func (endpoint *Endpoint) commitmentPath(path string) commitmenttypes.MerklePath {
	merklePath, err := commitmenttypes.ApplyPrefix(endpoint.Chain.GetPrefix(), commitmenttypes.NewMerklePath(path))
	require.NoError(endpoint.Chain.t, err)
	return merklePath
}
