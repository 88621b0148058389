package solomachine

import (
	errorsmod "cosmossdk.io/errors"
	amino "github.com/tendermint/go-amino"
	"github.com/tendermint/tendermint/crypto"
)

// SignBytes is the payload a solo machine signs. Path is the full commitment
// path of the value being proven and Data holds the committed value bytes
// (nil for non-membership).
type SignBytes struct {
	Sequence    uint64 `json:"sequence"`
	Timestamp   uint64 `json:"timestamp"`
	Diversifier string `json:"diversifier"`
	Path        []byte `json:"path"`
	Data        []byte `json:"data"`
}

// HeaderData is the signed payload of an update header, binding the new
// public key and diversifier to the sequence being consumed.
type HeaderData struct {
	NewPubKey      crypto.PubKey `json:"new_pub_key"`
	NewDiversifier string        `json:"new_diversifier"`
}

// SignatureAndData is the proof format produced by a solo machine. It carries
// the signature together with the path, data and timestamp that were signed
// over so the verifier can reconstruct the sign bytes.
type SignatureAndData struct {
	Signature []byte `json:"signature"`
	Path      []byte `json:"path"`
	Data      []byte `json:"data"`
	Timestamp uint64 `json:"timestamp"`
}

// ValidateBasic ensures the signature and signed path are non-empty.
func (sd SignatureAndData) ValidateBasic() error {
	if len(sd.Signature) == 0 {
		return errorsmod.Wrap(ErrInvalidSignatureAndData, "signature cannot be empty")
	}
	if len(sd.Path) == 0 {
		return errorsmod.Wrap(ErrInvalidSignatureAndData, "path cannot be empty")
	}
	if sd.Timestamp == 0 {
		return errorsmod.Wrap(ErrInvalidSignatureAndData, "timestamp cannot be 0")
	}

	return nil
}

// VerifySignature verifies that the provided public key generated the
// signature over the given sign bytes.
func VerifySignature(pubKey crypto.PubKey, signBytes, signature []byte) error {
	if pubKey == nil {
		return errorsmod.Wrap(ErrSignatureVerificationFailed, "public key cannot be nil")
	}

	if !pubKey.VerifySignature(signBytes, signature) {
		return ErrSignatureVerificationFailed
	}

	return nil
}

// unmarshalSignatureAndData decodes a raw proof into the solo machine
// signature format.
func unmarshalSignatureAndData(cdc *amino.Codec, proof []byte) (*SignatureAndData, error) {
	if len(proof) == 0 {
		return nil, errorsmod.Wrap(ErrInvalidProof, "proof cannot be empty")
	}

	sigData := &SignatureAndData{}
	if err := cdc.UnmarshalBinaryBare(proof, sigData); err != nil {
		return nil, errorsmod.Wrapf(ErrInvalidProof, "failed to unmarshal proof into signature and data: %v", err)
	}

	if err := sigData.ValidateBasic(); err != nil {
		return nil, err
	}

	return sigData, nil
}
