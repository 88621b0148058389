package solomachine

import (
	"strings"

	errorsmod "cosmossdk.io/errors"
	"github.com/tendermint/tendermint/crypto"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
)

var _ exported.ClientMessage = (*Header)(nil)

// Header is a solo machine client update. It rotates the public key and
// diversifier by signing over them at the client's current sequence.
type Header struct {
	Sequence       uint64        `json:"sequence"`
	Timestamp      uint64        `json:"timestamp"`
	Signature      []byte        `json:"signature"`
	NewPublicKey   crypto.PubKey `json:"new_public_key"`
	NewDiversifier string        `json:"new_diversifier"`
}

// ClientType returns the solo machine client type.
func (Header) ClientType() string {
	return exported.Solomachine
}

// ValidateBasic ensures that the sequence, signature and public key have all
// been initialized.
func (h Header) ValidateBasic() error {
	if h.Sequence == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "sequence number cannot be zero")
	}

	if h.Timestamp == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "timestamp cannot be zero")
	}

	if strings.TrimSpace(h.NewDiversifier) == "" {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "diversifier cannot contain only spaces")
	}

	if len(h.Signature) == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "signature cannot be empty")
	}

	if h.NewPublicKey == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidHeader, "new public key cannot be empty")
	}

	return nil
}
