package solomachine_test

import (
	"testing"
	"time"

	"cosmossdk.io/log"
	"github.com/stretchr/testify/require"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/crypto/ed25519"
	dbm "github.com/tendermint/tm-db"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	solomachine "github.com/cosmos/ibc-core/modules/light-clients/06-solomachine"
	"github.com/cosmos/ibc-core/store/dbadapter"
	ibctesting "github.com/cosmos/ibc-core/testing"
	coretypes "github.com/cosmos/ibc-core/types"
)

func TestClientStateValidate(t *testing.T) {
	privKey := ed25519.GenPrivKey()
	consensusState := solomachine.NewConsensusState(privKey.PubKey(), "diversifier", 10)

	testCases := []struct {
		name        string
		clientState *solomachine.ClientState
		expPass     bool
	}{
		{"valid client state", solomachine.NewClientState(1, consensusState, 0), true},
		{"sequence is zero", solomachine.NewClientState(0, consensusState, 0), false},
		{"nil consensus state", solomachine.NewClientState(1, nil, 0), false},
		{"consensus state timestamp is zero", solomachine.NewClientState(1, solomachine.NewConsensusState(privKey.PubKey(), "diversifier", 0), 0), false},
		{"consensus state public key is nil", solomachine.NewClientState(1, solomachine.NewConsensusState(nil, "diversifier", 10), 0), false},
	}

	for _, tc := range testCases {
		err := tc.clientState.Validate()

		if tc.expPass {
			require.NoError(t, err, "case %s", tc.name)
		} else {
			require.Error(t, err, "case %s", tc.name)
		}
	}
}

func TestClientStateStatus(t *testing.T) {
	privKey := ed25519.GenPrivKey()
	startTime := time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)
	consensusState := solomachine.NewConsensusState(privKey.PubKey(), "diversifier", uint64(startTime.UnixNano()))

	store := dbadapter.NewStore(dbm.NewMemDB())
	cdc := amino.NewCodec()
	solomachine.RegisterCodec(cdc)

	newCtx := func(blockTime time.Time) coretypes.Context {
		return coretypes.NewContext("testchain-1", 1, blockTime, store, log.NewNopLogger())
	}

	// a zero trusting period disables expiry
	clientState := solomachine.NewClientState(1, consensusState, 0)
	require.Equal(t, exported.Active, clientState.Status(newCtx(startTime.Add(time.Hour*24*365)), store, cdc))

	clientState = solomachine.NewClientState(1, consensusState, time.Hour)
	require.Equal(t, exported.Active, clientState.Status(newCtx(startTime.Add(time.Minute)), store, cdc))
	require.Equal(t, exported.Expired, clientState.Status(newCtx(startTime.Add(2*time.Hour)), store, cdc))

	clientState.IsFrozen = true
	require.Equal(t, exported.Frozen, clientState.Status(newCtx(startTime), store, cdc))
}

func TestHeaderValidateBasic(t *testing.T) {
	privKey := ed25519.GenPrivKey()

	header := &solomachine.Header{
		Sequence:       1,
		Timestamp:      10,
		Signature:      []byte("signature"),
		NewPublicKey:   privKey.PubKey(),
		NewDiversifier: "diversifier",
	}
	require.NoError(t, header.ValidateBasic())

	invalid := *header
	invalid.Sequence = 0
	require.Error(t, invalid.ValidateBasic())

	invalid = *header
	invalid.Timestamp = 0
	require.Error(t, invalid.ValidateBasic())

	invalid = *header
	invalid.Signature = nil
	require.Error(t, invalid.ValidateBasic())

	invalid = *header
	invalid.NewPublicKey = nil
	require.Error(t, invalid.ValidateBasic())

	invalid = *header
	invalid.NewDiversifier = "   "
	require.Error(t, invalid.ValidateBasic())
}

func TestMisbehaviourValidateBasic(t *testing.T) {
	sigOne := &solomachine.SignatureAndData{Signature: []byte("sig"), Path: []byte("path/one"), Data: []byte("data one"), Timestamp: 10}
	sigTwo := &solomachine.SignatureAndData{Signature: []byte("sig"), Path: []byte("path/two"), Data: []byte("data two"), Timestamp: 10}

	misbehaviour := &solomachine.Misbehaviour{Sequence: 1, SignatureOne: sigOne, SignatureTwo: sigTwo}
	require.NoError(t, misbehaviour.ValidateBasic())
	require.Equal(t, exported.Solomachine, misbehaviour.ClientType())

	invalid := &solomachine.Misbehaviour{Sequence: 0, SignatureOne: sigOne, SignatureTwo: sigTwo}
	require.Error(t, invalid.ValidateBasic())

	invalid = &solomachine.Misbehaviour{Sequence: 1, SignatureOne: nil, SignatureTwo: sigTwo}
	require.Error(t, invalid.ValidateBasic())

	// identical signed payloads are not misbehaviour
	invalid = &solomachine.Misbehaviour{Sequence: 1, SignatureOne: sigOne, SignatureTwo: sigOne}
	require.Error(t, invalid.ValidateBasic())
}

func TestUpdateClient(t *testing.T) {
	coord := ibctesting.NewCoordinator(t, 2)
	chainA := coord.GetChain(ibctesting.GetChainID(1))
	chainB := coord.GetChain(ibctesting.GetChainID(2))

	path := ibctesting.NewPath(chainA, chainB)
	coord.SetupClients(path)

	clientState := path.EndpointA.GetClientState()
	initialHeight := clientState.GetLatestHeight()

	require.NoError(t, path.EndpointA.UpdateClient())

	clientState = path.EndpointA.GetClientState()
	smClientState, ok := clientState.(*solomachine.ClientState)
	require.True(t, ok)

	// the sequence advances by one and the consensus state rotates to the new key
	require.Equal(t, initialHeight.GetRevisionHeight()+1, smClientState.Sequence)
	require.True(t, smClientState.ConsensusState.PublicKey.Equals(chainB.Solomachine.PublicKey))

	consensusState, found := chainA.Keeper.ClientKeeper.GetClientConsensusState(chainA.GetContext(), path.EndpointA.ClientID, smClientState.GetLatestHeight())
	require.True(t, found)
	require.Equal(t, chainB.Solomachine.Time, consensusState.GetTimestamp())

	// a header consuming a stale sequence is rejected
	staleHeader := &solomachine.Header{
		Sequence:       1,
		Timestamp:      chainB.Solomachine.Time,
		Signature:      []byte("signature"),
		NewPublicKey:   chainB.Solomachine.PublicKey,
		NewDiversifier: chainB.Solomachine.Diversifier,
	}
	msg := clienttypes.NewMsgUpdateClient(path.EndpointA.ClientID, staleHeader)
	_, err := chainA.Keeper.UpdateClient(chainA.GetContext(), msg)
	require.Error(t, err)
}

func TestMisbehaviourFreezesClient(t *testing.T) {
	coord := ibctesting.NewCoordinator(t, 2)
	chainA := coord.GetChain(ibctesting.GetChainID(1))
	chainB := coord.GetChain(ibctesting.GetChainID(2))

	path := ibctesting.NewPath(chainA, chainB)
	coord.SetupClients(path)

	misbehaviour := chainB.Solomachine.CreateMisbehaviour()
	msg := clienttypes.NewMsgSubmitMisbehaviour(path.EndpointA.ClientID, misbehaviour)
	_, err := chainA.Keeper.SubmitMisbehaviour(chainA.GetContext(), msg)
	require.NoError(t, err)

	status := chainA.Keeper.ClientKeeper.GetClientStatus(chainA.GetContext(), path.EndpointA.ClientID)
	require.Equal(t, exported.Frozen, status)

	// a frozen client can no longer be updated
	require.Error(t, path.EndpointA.UpdateClient())
}

func TestMisbehaviourViaUpdateClient(t *testing.T) {
	coord := ibctesting.NewCoordinator(t, 2)
	chainA := coord.GetChain(ibctesting.GetChainID(1))
	chainB := coord.GetChain(ibctesting.GetChainID(2))

	path := ibctesting.NewPath(chainA, chainB)
	coord.SetupClients(path)

	// misbehaviour submitted through the update path also freezes the client
	misbehaviour := chainB.Solomachine.CreateMisbehaviour()
	msg := clienttypes.NewMsgUpdateClient(path.EndpointA.ClientID, misbehaviour)
	_, err := chainA.Keeper.UpdateClient(chainA.GetContext(), msg)
	require.NoError(t, err)

	status := chainA.Keeper.ClientKeeper.GetClientStatus(chainA.GetContext(), path.EndpointA.ClientID)
	require.Equal(t, exported.Frozen, status)
}

func TestVerifyMembership(t *testing.T) {
	coord := ibctesting.NewCoordinator(t, 2)
	chainA := coord.GetChain(ibctesting.GetChainID(1))
	chainB := coord.GetChain(ibctesting.GetChainID(2))

	path := ibctesting.NewPath(chainA, chainB)
	coord.SetupClients(path)

	solo := chainB.Solomachine
	merklePath, err := commitmenttypes.ApplyPrefix(chainB.GetPrefix(), commitmenttypes.NewMerklePath("custom/key"))
	require.NoError(t, err)

	value := []byte("value")
	proof := solo.GenerateProof(merklePath, value)

	err = chainA.Keeper.ClientKeeper.VerifyMembership(chainA.GetContext(), path.EndpointA.ClientID, solo.GetHeight(), proof, merklePath, value)
	require.NoError(t, err)

	// verification is side-effect free: the client sequence does not change
	clientState := path.EndpointA.GetClientState()
	require.Equal(t, solo.Sequence, clientState.(*solomachine.ClientState).Sequence)

	// a mismatched value fails verification
	err = chainA.Keeper.ClientKeeper.VerifyMembership(chainA.GetContext(), path.EndpointA.ClientID, solo.GetHeight(), proof, merklePath, []byte("other value"))
	require.Error(t, err)

	// a proof at an unknown sequence fails verification
	err = chainA.Keeper.ClientKeeper.VerifyMembership(chainA.GetContext(), path.EndpointA.ClientID, clienttypes.NewHeight(0, solo.Sequence+1), proof, merklePath, value)
	require.Error(t, err)
}

func TestVerifyNonMembership(t *testing.T) {
	coord := ibctesting.NewCoordinator(t, 2)
	chainA := coord.GetChain(ibctesting.GetChainID(1))
	chainB := coord.GetChain(ibctesting.GetChainID(2))

	path := ibctesting.NewPath(chainA, chainB)
	coord.SetupClients(path)

	solo := chainB.Solomachine
	merklePath, err := commitmenttypes.ApplyPrefix(chainB.GetPrefix(), commitmenttypes.NewMerklePath("absent/key"))
	require.NoError(t, err)

	proof := solo.GenerateNonMembershipProof(merklePath)

	err = chainA.Keeper.ClientKeeper.VerifyNonMembership(chainA.GetContext(), path.EndpointA.ClientID, solo.GetHeight(), proof, merklePath)
	require.NoError(t, err)

	// a membership proof cannot stand in for an absence proof
	memProof := solo.GenerateProof(merklePath, []byte("value"))
	err = chainA.Keeper.ClientKeeper.VerifyNonMembership(chainA.GetContext(), path.EndpointA.ClientID, solo.GetHeight(), memProof, merklePath)
	require.Error(t, err)
}
