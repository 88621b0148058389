package solomachine

import (
	errorsmod "cosmossdk.io/errors"
	"github.com/tendermint/tendermint/crypto"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
)

var _ exported.ConsensusState = (*ConsensusState)(nil)

// ConsensusState is the public key and diversifier a solo machine signs with
// at a given sequence, together with the timestamp of its last update.
type ConsensusState struct {
	PublicKey   crypto.PubKey `json:"public_key"`
	Diversifier string        `json:"diversifier"`
	Timestamp   uint64        `json:"timestamp"`
}

// NewConsensusState creates a new ConsensusState instance.
func NewConsensusState(publicKey crypto.PubKey, diversifier string, timestamp uint64) *ConsensusState {
	return &ConsensusState{
		PublicKey:   publicKey,
		Diversifier: diversifier,
		Timestamp:   timestamp,
	}
}

// ClientType returns the solo machine client type.
func (ConsensusState) ClientType() string {
	return exported.Solomachine
}

// GetTimestamp returns the timestamp in nanoseconds.
func (cs ConsensusState) GetTimestamp() uint64 {
	return cs.Timestamp
}

// ValidateBasic defines basic validation for the solo machine consensus state.
func (cs ConsensusState) ValidateBasic() error {
	if cs.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "timestamp cannot be 0")
	}
	if cs.PublicKey == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidConsensus, "public key cannot be nil")
	}

	return nil
}
