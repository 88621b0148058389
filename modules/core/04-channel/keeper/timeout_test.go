package keeper_test

import (
	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
	ibctesting "github.com/cosmos/ibc-core/testing"
)

func (suite *KeeperTestSuite) TestTimeoutPacket() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// the timeout timestamp is just beyond the latest timestamp known to the
	// counterparty client, so the send succeeds
	timeoutTimestamp := suite.chainB.Solomachine.Time + 1
	packet, err := path.EndpointA.SendPacket(clienttypes.ZeroHeight(), timeoutTimestamp, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	// the timeout cannot be proven until the client progresses past it
	suite.Require().ErrorIs(path.EndpointA.TimeoutPacket(packet), types.ErrTimeoutNotReached)

	suite.Require().NoError(path.EndpointA.UpdateClient())

	suite.Require().NoError(path.EndpointA.TimeoutPacket(packet))

	// the commitment is deleted once the timeout is processed
	commitment := suite.chainA.Keeper.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Empty(commitment)

	// an unordered channel stays open after a timeout
	suite.Require().Equal(types.OPEN, path.EndpointA.GetChannel().State)

	// timing out again is a replay
	suite.Require().ErrorIs(path.EndpointA.TimeoutPacket(packet), types.ErrPacketCommitmentNotFound)

	// a timed-out packet can no longer be acknowledged
	err = path.EndpointA.AcknowledgePacket(packet, ibctesting.MockAcknowledgement.Acknowledgement())
	suite.Require().ErrorIs(err, types.ErrPacketCommitmentNotFound)
}

func (suite *KeeperTestSuite) TestTimeoutPacketOrdered() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	path.SetChannelOrdered()
	suite.coordinator.Setup(path)

	timeoutTimestamp := suite.chainB.Solomachine.Time + 1
	packet, err := path.EndpointA.SendPacket(clienttypes.ZeroHeight(), timeoutTimestamp, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	suite.Require().NoError(path.EndpointA.UpdateClient())
	suite.Require().NoError(path.EndpointA.TimeoutPacket(packet))

	// an ordered channel is closed by a timeout
	suite.Require().Equal(types.CLOSED, path.EndpointA.GetChannel().State)
}

func (suite *KeeperTestSuite) TestTimeoutPacketAfterAcknowledgement() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// the timeout is far in the future and never elapses during the test
	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	suite.Require().NoError(path.EndpointB.RecvPacket(packet))
	suite.Require().NoError(path.EndpointA.AcknowledgePacket(packet, ibctesting.MockAcknowledgement.Acknowledgement()))

	// an acknowledged packet reports its completed lifecycle rather than a
	// pending timeout, even though the timeout has not been reached
	suite.Require().ErrorIs(path.EndpointA.TimeoutPacket(packet), types.ErrPacketCommitmentNotFound)
}

func (suite *KeeperTestSuite) TestTimeoutOnClose() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(clienttypes.ZeroHeight(), suite.chainA.GetTimeoutTimestamp(), ibctesting.MockPacketData)
	suite.Require().NoError(err)

	// the counterparty closes its channel end before receiving the packet
	suite.Require().NoError(path.EndpointB.ChanCloseInit())

	suite.Require().NoError(path.EndpointA.TimeoutOnClose(packet))

	commitment := suite.chainA.Keeper.ChannelKeeper.GetPacketCommitment(suite.chainA.GetContext(), packet.SourcePort, packet.SourceChannel, packet.Sequence)
	suite.Require().Empty(commitment)
}

func (suite *KeeperTestSuite) TestTimeoutOnCloseChannelOpen() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(clienttypes.ZeroHeight(), suite.chainA.GetTimeoutTimestamp(), ibctesting.MockPacketData)
	suite.Require().NoError(err)

	// the proof shows the counterparty channel is still OPEN, not CLOSED
	suite.Require().Error(path.EndpointA.TimeoutOnClose(packet))
}
