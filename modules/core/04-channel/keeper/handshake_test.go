package keeper_test

import (
	connectiontypes "github.com/cosmos/ibc-core/modules/core/03-connection/types"
	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
	ibctesting "github.com/cosmos/ibc-core/testing"
)

func (suite *KeeperTestSuite) TestChannelHandshake() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupConnections(path)

	suite.Require().NoError(path.EndpointA.ChanOpenInit())
	suite.Require().Equal("channel-0", path.EndpointA.ChannelID)

	channel := path.EndpointA.GetChannel()
	suite.Require().Equal(types.INIT, channel.State)
	suite.Require().Equal(types.UNORDERED, channel.Ordering)
	suite.Require().Equal(ibctesting.MockPort, channel.Counterparty.PortId)
	// the counterparty channel identifier is unknown until the ack step
	suite.Require().Empty(channel.Counterparty.ChannelId)

	// the handshake initializes all packet sequences
	seq, found := suite.chainA.Keeper.ChannelKeeper.GetNextSequenceSend(suite.chainA.GetContext(), path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seq)

	seq, found = suite.chainA.Keeper.ChannelKeeper.GetNextSequenceRecv(suite.chainA.GetContext(), path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seq)

	seq, found = suite.chainA.Keeper.ChannelKeeper.GetNextSequenceAck(suite.chainA.GetContext(), path.EndpointA.ChannelConfig.PortID, path.EndpointA.ChannelID)
	suite.Require().True(found)
	suite.Require().Equal(uint64(1), seq)

	suite.Require().NoError(path.EndpointB.ChanOpenTry())
	suite.Require().Equal("channel-0", path.EndpointB.ChannelID)

	channel = path.EndpointB.GetChannel()
	suite.Require().Equal(types.TRYOPEN, channel.State)
	suite.Require().Equal(path.EndpointA.ChannelID, channel.Counterparty.ChannelId)

	suite.Require().NoError(path.EndpointA.ChanOpenAck())

	channel = path.EndpointA.GetChannel()
	suite.Require().Equal(types.OPEN, channel.State)
	suite.Require().Equal(path.EndpointB.ChannelID, channel.Counterparty.ChannelId)

	suite.Require().NoError(path.EndpointB.ChanOpenConfirm())

	channel = path.EndpointB.GetChannel()
	suite.Require().Equal(types.OPEN, channel.State)
}

func (suite *KeeperTestSuite) TestChanOpenInitConnectionNotOpen() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	// the connection is only in INIT
	suite.Require().NoError(path.EndpointA.ConnOpenInit())

	suite.Require().ErrorIs(path.EndpointA.ChanOpenInit(), connectiontypes.ErrInvalidConnectionState)
}

func (suite *KeeperTestSuite) TestChanOpenInitConnectionNotFound() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	path.EndpointA.ConnectionID = "connection-100"

	suite.Require().ErrorIs(path.EndpointA.ChanOpenInit(), connectiontypes.ErrConnectionNotFound)
}

func (suite *KeeperTestSuite) TestChanOpenAckInvalidState() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// the channel on chain A is already OPEN
	suite.Require().ErrorIs(path.EndpointA.ChanOpenAck(), types.ErrInvalidChannelState)
}

func (suite *KeeperTestSuite) TestChanClose() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	suite.Require().NoError(path.EndpointA.ChanCloseInit())
	suite.Require().Equal(types.CLOSED, path.EndpointA.GetChannel().State)

	// closing an already closed channel fails
	suite.Require().ErrorIs(path.EndpointA.ChanCloseInit(), types.ErrInvalidChannelState)

	suite.Require().NoError(path.EndpointB.ChanCloseConfirm())
	suite.Require().Equal(types.CLOSED, path.EndpointB.GetChannel().State)
}
