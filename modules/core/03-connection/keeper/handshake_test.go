package keeper_test

import (
	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/03-connection/types"
	ibctesting "github.com/cosmos/ibc-core/testing"
)

func (suite *KeeperTestSuite) TestConnectionHandshake() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	suite.Require().NoError(path.EndpointA.ConnOpenInit())
	suite.Require().Equal("connection-0", path.EndpointA.ConnectionID)

	connection := path.EndpointA.GetConnection()
	suite.Require().Equal(types.INIT, connection.State)
	suite.Require().Equal(path.EndpointA.ClientID, connection.ClientId)
	suite.Require().Equal(path.EndpointB.ClientID, connection.Counterparty.ClientId)
	// the counterparty connection identifier is unknown until the ack step
	suite.Require().Empty(connection.Counterparty.ConnectionId)

	suite.Require().NoError(path.EndpointB.ConnOpenTry())
	suite.Require().Equal("connection-0", path.EndpointB.ConnectionID)

	connection = path.EndpointB.GetConnection()
	suite.Require().Equal(types.TRYOPEN, connection.State)
	suite.Require().Equal(path.EndpointA.ConnectionID, connection.Counterparty.ConnectionId)

	suite.Require().NoError(path.EndpointA.ConnOpenAck())

	connection = path.EndpointA.GetConnection()
	suite.Require().Equal(types.OPEN, connection.State)
	suite.Require().Equal(path.EndpointB.ConnectionID, connection.Counterparty.ConnectionId)

	suite.Require().NoError(path.EndpointB.ConnOpenConfirm())

	connection = path.EndpointB.GetConnection()
	suite.Require().Equal(types.OPEN, connection.State)
}

func (suite *KeeperTestSuite) TestConnOpenInitInvalidVersion() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	counterparty := types.NewCounterparty(path.EndpointB.ClientID, "", suite.chainB.GetPrefix())
	version := types.NewVersion("99", nil)

	_, err := suite.chainA.Keeper.ConnectionKeeper.ConnOpenInit(suite.chainA.GetContext(), path.EndpointA.ClientID, counterparty, version, 0)
	suite.Require().ErrorIs(err, types.ErrInvalidVersion)
}

func (suite *KeeperTestSuite) TestConnOpenInitClientNotActive() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	// freeze the client hosted on chain A
	misbehaviour := suite.chainB.Solomachine.CreateMisbehaviour()
	msg := clienttypes.NewMsgSubmitMisbehaviour(path.EndpointA.ClientID, misbehaviour)
	_, err := suite.chainA.Keeper.SubmitMisbehaviour(suite.chainA.GetContext(), msg)
	suite.Require().NoError(err)

	suite.Require().ErrorIs(path.EndpointA.ConnOpenInit(), clienttypes.ErrClientNotActive)
}

func (suite *KeeperTestSuite) TestConnOpenAckInvalidState() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupConnections(path)

	// the connection on chain A is already OPEN
	suite.Require().ErrorIs(path.EndpointA.ConnOpenAck(), types.ErrInvalidConnectionState)
}

func (suite *KeeperTestSuite) TestConnOpenConfirmInvalidState() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupConnections(path)

	// confirm requires the connection to be in TRYOPEN
	suite.Require().ErrorIs(path.EndpointB.ConnOpenConfirm(), types.ErrInvalidConnectionState)
}
