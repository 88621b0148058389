package keeper_test

import (
	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
	ibctesting "github.com/cosmos/ibc-core/testing"
)

func (suite *KeeperTestSuite) TestSendPacket() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(1), packet.Sequence)

	// the commitment to the packet fields is stored
	commitment := suite.chainA.Keeper.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Equal(types.CommitPacket(packet), commitment)

	// the send sequence is incremented
	seq, found := suite.chainA.Keeper.ChannelKeeper.GetNextSequenceSend(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel)
	suite.Require().True(found)
	suite.Require().Equal(uint64(2), seq)

	packet, err = path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)
	suite.Require().Equal(uint64(2), packet.Sequence)
}

func (suite *KeeperTestSuite) TestSendPacketChannelClosed() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	suite.Require().NoError(path.EndpointA.ChanCloseInit())

	_, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().ErrorIs(err, types.ErrInvalidChannelState)
}

func (suite *KeeperTestSuite) TestSendPacketTimeoutElapsed() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// the timeout timestamp is not beyond the latest timestamp of the
	// counterparty client, so the packet would be dead on arrival
	_, err := path.EndpointA.SendPacket(clienttypes.ZeroHeight(), suite.chainB.Solomachine.Time, ibctesting.MockPacketData)
	suite.Require().ErrorIs(err, types.ErrPacketTimeout)
}

func (suite *KeeperTestSuite) TestRecvPacket() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	suite.Require().NoError(path.EndpointB.RecvPacket(packet))

	// the receipt is written for unordered channels
	_, found := suite.chainB.Keeper.ChannelKeeper.GetPacketReceipt(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)

	// the mock acknowledgement is written synchronously
	ackCommitment, found := suite.chainB.Keeper.ChannelKeeper.GetPacketAcknowledgement(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)
	suite.Require().Equal(types.CommitAcknowledgement(ibctesting.MockAcknowledgement.Acknowledgement()), ackCommitment)

	// receiving the same packet again is a replay
	suite.Require().ErrorIs(path.EndpointB.RecvPacket(packet), types.ErrPacketReceived)
}

func (suite *KeeperTestSuite) TestRecvPacketOrdered() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	path.SetChannelOrdered()
	suite.coordinator.Setup(path)

	packetOne, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	packetTwo, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	// ordered channels reject packets received out of order, leaving the
	// receive sequence untouched
	suite.Require().ErrorIs(path.EndpointB.RecvPacket(packetTwo), types.ErrPacketSequenceOutOfOrder)

	seq, found := suite.chainB.Keeper.ChannelKeeper.GetNextSequenceRecv(suite.chainB.GetContext(), packetTwo.DestinationPort, packetTwo.DestinationChannel)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seq)

	suite.Require().NoError(path.EndpointB.RecvPacket(packetOne))
	suite.Require().NoError(path.EndpointB.RecvPacket(packetTwo))

	seq, found = suite.chainB.Keeper.ChannelKeeper.GetNextSequenceRecv(suite.chainB.GetContext(), packetTwo.DestinationPort, packetTwo.DestinationChannel)
	suite.Require().True(found)
	suite.Require().Equal(uint64(3), seq)

	// a stale sequence is a replay
	suite.Require().ErrorIs(path.EndpointB.RecvPacket(packetOne), types.ErrPacketReceived)
}

func (suite *KeeperTestSuite) TestAcknowledgePacket() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	suite.Require().NoError(path.EndpointB.RecvPacket(packet))

	ack := ibctesting.MockAcknowledgement.Acknowledgement()
	suite.Require().NoError(path.EndpointA.AcknowledgePacket(packet, ack))

	// the commitment is deleted once the packet lifecycle completes
	commitment := suite.chainA.Keeper.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Empty(commitment)

	// acknowledging again is a replay
	suite.Require().ErrorIs(path.EndpointA.AcknowledgePacket(packet, ack), types.ErrPacketCommitmentNotFound)
}

func (suite *KeeperTestSuite) TestAcknowledgePacketOrdered() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	path.SetChannelOrdered()
	suite.coordinator.Setup(path)

	packetOne, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	packetTwo, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	suite.Require().NoError(path.EndpointB.RecvPacket(packetOne))
	suite.Require().NoError(path.EndpointB.RecvPacket(packetTwo))

	ack := ibctesting.MockAcknowledgement.Acknowledgement()

	// ordered channels require acknowledgements in sequence
	suite.Require().ErrorIs(path.EndpointA.AcknowledgePacket(packetTwo, ack), types.ErrPacketSequenceOutOfOrder)

	suite.Require().NoError(path.EndpointA.AcknowledgePacket(packetOne, ack))
	suite.Require().NoError(path.EndpointA.AcknowledgePacket(packetTwo, ack))

	seq, found := suite.chainA.Keeper.ChannelKeeper.GetNextSequenceAck(suite.chainA.GetContext(), packetTwo.SourcePort, packetTwo.SourceChannel)
	suite.Require().True(found)
	suite.Require().Equal(uint64(3), seq)
}

func (suite *KeeperTestSuite) TestWriteAcknowledgement() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet := types.NewPacket(
		ibctesting.MockPacketData, 1,
		path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID,
		path.EndpointB.ChannelConfig.PortID, path.EndpointB.ChannelID,
		suite.chainB.GetTimeoutHeight(), 0,
	)

	err := suite.chainB.Keeper.ChannelKeeper.WriteAcknowledgement(suite.chainB.GetContext(), packet, ibctesting.MockAcknowledgement)
	suite.Require().NoError(err)

	// overwriting an acknowledgement is not allowed
	err = suite.chainB.Keeper.ChannelKeeper.WriteAcknowledgement(suite.chainB.GetContext(), packet, ibctesting.MockAcknowledgement)
	suite.Require().ErrorIs(err, types.ErrAcknowledgementExists)

	// nil and empty acknowledgements are rejected
	packet.Sequence = 2
	err = suite.chainB.Keeper.ChannelKeeper.WriteAcknowledgement(suite.chainB.GetContext(), packet, nil)
	suite.Require().ErrorIs(err, types.ErrInvalidAcknowledgement)
}
