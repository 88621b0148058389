package ibctesting

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/crypto"
	"github.com/tendermint/tendermint/crypto/ed25519"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
	solomachine "github.com/cosmos/ibc-core/modules/light-clients/06-solomachine"
)

// Solomachine is the signing identity of a test chain. The counterparty chain
// hosts a solo machine client tracking it; this type mirrors the sequence,
// diversifier and timestamp the client holds so it can produce proofs the
// client accepts.
type Solomachine struct {
	t *testing.T

	cdc         *amino.Codec
	ClientID    string
	PrivateKey  ed25519.PrivKey
	PublicKey   crypto.PubKey
	Sequence    uint64
	Diversifier string
	Time        uint64
}

// NewSolomachine returns a solo machine identity starting at sequence 1.
func NewSolomachine(t *testing.T, cdc *amino.Codec, diversifier string, startTime time.Time) *Solomachine {
	t.Helper()

	privKey := ed25519.GenPrivKey()
	return &Solomachine{
		t:           t,
		cdc:         cdc,
		PrivateKey:  privKey,
		PublicKey:   privKey.PubKey(),
		Sequence:    1,
		Diversifier: diversifier,
		Time:        uint64(startTime.UnixNano()),
	}
}

// ClientState returns the current client state of the solo machine.
func (solo *Solomachine) ClientState() *solomachine.ClientState {
	return solomachine.NewClientState(solo.Sequence, solo.ConsensusState(), 0)
}

// ConsensusState returns the current consensus state of the solo machine.
func (solo *Solomachine) ConsensusState() *solomachine.ConsensusState {
	return solomachine.NewConsensusState(solo.PublicKey, solo.Diversifier, solo.Time)
}

// GetHeight returns the current sequence as a height.
func (solo *Solomachine) GetHeight() clienttypes.Height {
	return clienttypes.NewHeight(0, solo.Sequence)
}

// CreateHeader rotates the solo machine to a fresh key pair and returns the
// update header for the current sequence. The local identity is advanced to
// mirror the client update the header produces.
func (solo *Solomachine) CreateHeader(newDiversifier string) *solomachine.Header {
	newPrivKey := ed25519.GenPrivKey()
	newPubKey := newPrivKey.PubKey()
	newTime := solo.Time + uint64(TimeIncrement.Nanoseconds())

	data, err := solo.cdc.MarshalBinaryBare(&solomachine.HeaderData{
		NewPubKey:      newPubKey,
		NewDiversifier: newDiversifier,
	})
	require.NoError(solo.t, err)

	signature := solo.sign(&solomachine.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   newTime,
		Diversifier: solo.Diversifier,
		Path:        []byte(solomachine.SentinelHeaderPath),
		Data:        data,
	})

	header := &solomachine.Header{
		Sequence:       solo.Sequence,
		Timestamp:      newTime,
		Signature:      signature,
		NewPublicKey:   newPubKey,
		NewDiversifier: newDiversifier,
	}

	solo.Sequence++
	solo.Time = newTime
	solo.PrivateKey = newPrivKey
	solo.PublicKey = newPubKey
	solo.Diversifier = newDiversifier

	return header
}

// CreateMisbehaviour signs two different payloads at the current sequence.
func (solo *Solomachine) CreateMisbehaviour() *solomachine.Misbehaviour {
	pathOne := []byte("counterfeit/path/one")
	dataOne := []byte("valid signed data")
	pathTwo := []byte("counterfeit/path/two")
	dataTwo := []byte("conflicting signed data")

	signatureOne := solo.sign(&solomachine.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        pathOne,
		Data:        dataOne,
	})

	signatureTwo := solo.sign(&solomachine.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        pathTwo,
		Data:        dataTwo,
	})

	return &solomachine.Misbehaviour{
		Sequence: solo.Sequence,
		SignatureOne: &solomachine.SignatureAndData{
			Signature: signatureOne,
			Path:      pathOne,
			Data:      dataOne,
			Timestamp: solo.Time,
		},
		SignatureTwo: &solomachine.SignatureAndData{
			Signature: signatureTwo,
			Path:      pathTwo,
			Data:      dataTwo,
			Timestamp: solo.Time,
		},
	}
}

// GenerateProof signs the value stored under the given commitment path at the
// current sequence and returns the serialized proof.
func (solo *Solomachine) GenerateProof(path exported.Path, data []byte) []byte {
	signature := solo.sign(&solomachine.SignBytes{
		Sequence:    solo.Sequence,
		Timestamp:   solo.Time,
		Diversifier: solo.Diversifier,
		Path:        []byte(path.String()),
		Data:        data,
	})

	proof, err := solo.cdc.MarshalBinaryBare(&solomachine.SignatureAndData{
		Signature: signature,
		Path:      []byte(path.String()),
		Data:      data,
		Timestamp: solo.Time,
	})
	require.NoError(solo.t, err)

	return proof
}

// GenerateNonMembershipProof signs an absence of any value under the given
// commitment path at the current sequence.
func (solo *Solomachine) GenerateNonMembershipProof(path exported.Path) []byte {
	return solo.GenerateProof(path, nil)
}

func (solo *Solomachine) sign(signBytes *solomachine.SignBytes) []byte {
	bz, err := solo.cdc.MarshalBinaryBare(signBytes)
	require.NoError(solo.t, err)

	signature, err := solo.PrivateKey.Sign(bz)
	require.NoError(solo.t, err)

	return signature
}
