package solomachine

import (
	"bytes"

	errorsmod "cosmossdk.io/errors"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
)

var _ exported.ClientMessage = (*Misbehaviour)(nil)

// Misbehaviour is evidence of a solo machine signing two different payloads
// at the same sequence.
type Misbehaviour struct {
	Sequence     uint64            `json:"sequence"`
	SignatureOne *SignatureAndData `json:"signature_one"`
	SignatureTwo *SignatureAndData `json:"signature_two"`
}

// ClientType returns the solo machine client type.
func (Misbehaviour) ClientType() string {
	return exported.Solomachine
}

// ValidateBasic implements exported.ClientMessage.
func (misbehaviour Misbehaviour) ValidateBasic() error {
	if misbehaviour.Sequence == 0 {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "sequence cannot be 0")
	}

	if misbehaviour.SignatureOne == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "signature one cannot be nil")
	}

	if misbehaviour.SignatureTwo == nil {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "signature two cannot be nil")
	}

	if err := misbehaviour.SignatureOne.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "signature one failed basic validation")
	}

	if err := misbehaviour.SignatureTwo.ValidateBasic(); err != nil {
		return errorsmod.Wrap(err, "signature two failed basic validation")
	}

	// misbehaviour requires two distinct signed payloads at the same sequence
	if bytes.Equal(misbehaviour.SignatureOne.Path, misbehaviour.SignatureTwo.Path) &&
		bytes.Equal(misbehaviour.SignatureOne.Data, misbehaviour.SignatureTwo.Data) {
		return errorsmod.Wrap(clienttypes.ErrInvalidMisbehaviour, "misbehaviour signature data must be signed over different messages")
	}

	return nil
}
