package errors

import (
	errorsmod "cosmossdk.io/errors"

	"github.com/cosmos/ibc-core/modules/core/exported"
)

const codespace = exported.ModuleName

var (
	// ErrInvalidSequence is used when the sequence number (nonce) is incorrect
	// for the signature.
	ErrInvalidSequence = errorsmod.Register(codespace, 1, "invalid sequence")

	// ErrUnknownRequest is used when the request body is unknown.
	ErrUnknownRequest = errorsmod.Register(codespace, 2, "unknown request")

	// ErrInvalidRequest defines an error where the request contains invalid data.
	ErrInvalidRequest = errorsmod.Register(codespace, 3, "invalid request")

	// ErrInvalidHeight defines an error for an invalid height
	ErrInvalidHeight = errorsmod.Register(codespace, 4, "invalid height")

	// ErrInvalidVersion defines a general error for an invalid version
	ErrInvalidVersion = errorsmod.Register(codespace, 5, "invalid version")

	// ErrInvalidChainID defines an error when the chain-id is invalid.
	ErrInvalidChainID = errorsmod.Register(codespace, 6, "invalid chain-id")

	// ErrInvalidType defines an error for an invalid type.
	ErrInvalidType = errorsmod.Register(codespace, 7, "invalid type")

	// ErrLogic defines an internal logic error, e.g. an invariant or assertion
	// that is violated. It is a programmer error, not a user-facing error.
	ErrLogic = errorsmod.Register(codespace, 8, "internal logic error")

	// ErrNotFound defines an error when a requested entity doesn't exist in the state.
	ErrNotFound = errorsmod.Register(codespace, 9, "not found")
)
