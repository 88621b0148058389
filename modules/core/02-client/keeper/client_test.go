package keeper_test

import (
	"github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	ibctesting "github.com/cosmos/ibc-core/testing"
)

func (suite *KeeperTestSuite) TestCreateClient() {
	solo := suite.chainB.Solomachine
	clientID, err := suite.chainA.Keeper.ClientKeeper.CreateClient(suite.chainA.GetContext(), solo.ClientState(), solo.ConsensusState())
	suite.Require().NoError(err)
	suite.Require().Equal("06-solomachine-0", clientID)

	status := suite.chainA.Keeper.ClientKeeper.GetClientStatus(suite.chainA.GetContext(), clientID)
	suite.Require().Equal(exported.Active, status)

	// identifiers are generated from a monotonic sequence
	clientID, err = suite.chainA.Keeper.ClientKeeper.CreateClient(suite.chainA.GetContext(), solo.ClientState(), solo.ConsensusState())
	suite.Require().NoError(err)
	suite.Require().Equal("06-solomachine-1", clientID)

	consensusState, found := suite.chainA.Keeper.ClientKeeper.GetClientConsensusState(suite.chainA.GetContext(), clientID, solo.GetHeight())
	suite.Require().True(found)
	suite.Require().Equal(solo.Time, consensusState.GetTimestamp())
}

func (suite *KeeperTestSuite) TestCreateClientDisallowedType() {
	suite.chainA.Keeper.ClientKeeper.SetParams(suite.chainA.GetContext(), types.NewParams("07-tendermint"))

	solo := suite.chainB.Solomachine
	_, err := suite.chainA.Keeper.ClientKeeper.CreateClient(suite.chainA.GetContext(), solo.ClientState(), solo.ConsensusState())
	suite.Require().ErrorIs(err, types.ErrInvalidClientType)
}

func (suite *KeeperTestSuite) TestUpdateClientNotFound() {
	header := suite.chainB.Solomachine.CreateHeader(suite.chainB.Solomachine.Diversifier)
	err := suite.chainA.Keeper.ClientKeeper.UpdateClient(suite.chainA.GetContext(), "06-solomachine-99", header)
	suite.Require().ErrorIs(err, types.ErrClientNotFound)
}

func (suite *KeeperTestSuite) TestClientTimestampAtHeight() {
	path := ibctesting.NewPath(suite.chainA, suite.chainB)
	suite.coordinator.SetupClients(path)

	initialHeight := path.EndpointA.GetClientState().GetLatestHeight()
	initialTime := suite.chainB.Solomachine.Time

	suite.Require().NoError(path.EndpointA.UpdateClient())

	// the timestamp at the superseded height remains queryable
	timestamp, err := suite.chainA.Keeper.ClientKeeper.GetClientTimestampAtHeight(suite.chainA.GetContext(), path.EndpointA.ClientID, initialHeight)
	suite.Require().NoError(err)
	suite.Require().Equal(initialTime, timestamp)

	latestHeight := path.EndpointA.GetClientState().GetLatestHeight()
	timestamp, err = suite.chainA.Keeper.ClientKeeper.GetClientTimestampAtHeight(suite.chainA.GetContext(), path.EndpointA.ClientID, latestHeight)
	suite.Require().NoError(err)
	suite.Require().Equal(suite.chainB.Solomachine.Time, timestamp)
}

func (suite *KeeperTestSuite) TestGetParams() {
	// unset params fall back to the allow-all default
	params := suite.chainA.Keeper.ClientKeeper.GetParams(suite.chainA.GetContext())
	suite.Require().Equal(types.DefaultParams(), params)

	expParams := types.NewParams(exported.Solomachine)
	suite.chainA.Keeper.ClientKeeper.SetParams(suite.chainA.GetContext(), expParams)
	suite.Require().Equal(expParams, suite.chainA.Keeper.ClientKeeper.GetParams(suite.chainA.GetContext()))
}
