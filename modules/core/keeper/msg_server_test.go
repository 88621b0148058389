package keeper_test

import (
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
	porttypes "github.com/cosmos/ibc-core/modules/core/05-port/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	host "github.com/cosmos/ibc-core/modules/core/24-host"
	"github.com/cosmos/ibc-core/modules/core/exported"
	ibctesting "github.com/cosmos/ibc-core/testing"
	coretypes "github.com/cosmos/ibc-core/types"
)

// recvPacketMsg builds a MsgRecvPacket with a proof signed by the sending
// chain's solo machine identity.
func (suite *KeeperTestSuite) recvPacketMsg(sender *ibctesting.TestChain, packet channeltypes.Packet) *channeltypes.MsgRecvPacket {
	commitment := channeltypes.CommitPacket(packet)

	merklePath, err := commitmenttypes.ApplyPrefix(
		sender.GetPrefix(),
		commitmenttypes.NewMerklePath(host.PacketCommitmentPath(packet.SourcePort, packet.SourceChannel, packet.Sequence)),
	)
	suite.Require().NoError(err)

	proof := sender.Solomachine.GenerateProof(merklePath, commitment)
	return channeltypes.NewMsgRecvPacket(packet, proof, sender.Solomachine.GetHeight())
}

func (suite *KeeperTestSuite) TestRecvPacketWritesAcknowledgement() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	ctx := suite.chainB.GetContext()
	_, err = suite.chainB.Keeper.RecvPacket(ctx, suite.recvPacketMsg(suite.chainA, packet))
	suite.Require().NoError(err)

	// events from the receive flow are propagated to the caller's context
	suite.Require().NotEmpty(ctx.EventManager().Events())

	ackCommitment, found := suite.chainB.Keeper.ChannelKeeper.GetPacketAcknowledgement(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)
	suite.Require().Equal(channeltypes.CommitAcknowledgement(ibctesting.MockAcknowledgement.Acknowledgement()), ackCommitment)
}

func (suite *KeeperTestSuite) TestRecvPacketFailedAckDiscardsAppState() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	appStateKey := []byte("mock/app/state")
	suite.chainB.MockModule.OnRecvPacketFn = func(ctx coretypes.Context, packet channeltypes.Packet) exported.Acknowledgement {
		ctx.KVStore().Set(appStateKey, packet.Data)
		return ibctesting.MockFailAcknowledgement
	}

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	_, err = suite.chainB.Keeper.RecvPacket(suite.chainB.GetContext(), suite.recvPacketMsg(suite.chainA, packet))
	suite.Require().NoError(err)

	// the application writes are rolled back on a failed acknowledgement
	suite.Require().False(suite.chainB.GetContext().KVStore().Has(appStateKey))

	// the receipt and the error acknowledgement are still committed
	_, found := suite.chainB.Keeper.ChannelKeeper.GetPacketReceipt(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)

	ackCommitment, found := suite.chainB.Keeper.ChannelKeeper.GetPacketAcknowledgement(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)
	suite.Require().Equal(channeltypes.CommitAcknowledgement(ibctesting.MockFailAcknowledgement.Acknowledgement()), ackCommitment)
}

func (suite *KeeperTestSuite) TestRecvPacketSuccessfulAckKeepsAppState() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	appStateKey := []byte("mock/app/state")
	suite.chainB.MockModule.OnRecvPacketFn = func(ctx coretypes.Context, packet channeltypes.Packet) exported.Acknowledgement {
		ctx.KVStore().Set(appStateKey, packet.Data)
		return ibctesting.MockAcknowledgement
	}

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	_, err = suite.chainB.Keeper.RecvPacket(suite.chainB.GetContext(), suite.recvPacketMsg(suite.chainA, packet))
	suite.Require().NoError(err)

	suite.Require().Equal(ibctesting.MockPacketData, suite.chainB.GetContext().KVStore().Get(appStateKey))
}

func (suite *KeeperTestSuite) TestRecvPacketAsyncAcknowledgement() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	// a nil acknowledgement defers the write to the application
	suite.chainB.MockModule.OnRecvPacketFn = func(ctx coretypes.Context, packet channeltypes.Packet) exported.Acknowledgement {
		return nil
	}

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	suite.Require().NoError(path.EndpointB.RecvPacket(packet))

	_, found := suite.chainB.Keeper.ChannelKeeper.GetPacketReceipt(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().True(found)

	_, found = suite.chainB.Keeper.ChannelKeeper.GetPacketAcknowledgement(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestRecvPacketInvalidProofDiscardsState() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	// sign the wrong commitment
	mutated := packet
	mutated.Data = []byte("tampered")
	msg := suite.recvPacketMsg(suite.chainA, mutated)
	msg.Packet = packet

	ctx := suite.chainB.GetContext()
	_, err = suite.chainB.Keeper.RecvPacket(ctx, msg)
	suite.Require().Error(err)

	// nothing is committed and no events are emitted on failure
	suite.Require().Empty(ctx.EventManager().Events())

	_, found := suite.chainB.Keeper.ChannelKeeper.GetPacketReceipt(suite.chainB.GetContext(), packet.DestinationPort, packet.DestinationChannel, packet.Sequence)
	suite.Require().False(found)
}

func (suite *KeeperTestSuite) TestRecvPacketRouteNotFound() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.Setup(path)

	packet, err := path.EndpointA.SendPacket(suite.chainB.GetTimeoutHeight(), 0, ibctesting.MockPacketData)
	suite.Require().NoError(err)

	packet.DestinationPort = "transfer"

	_, err = suite.chainB.Keeper.RecvPacket(suite.chainB.GetContext(), suite.recvPacketMsg(suite.chainA, packet))
	suite.Require().ErrorIs(err, porttypes.ErrInvalidRoute)
}
