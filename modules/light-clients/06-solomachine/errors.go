package solomachine

import (
	errorsmod "cosmossdk.io/errors"
)

// SubModuleName for the solo machine client
const SubModuleName = "solo machine"

var (
	ErrInvalidHeader               = errorsmod.Register(SubModuleName, 2, "invalid header")
	ErrInvalidSequence             = errorsmod.Register(SubModuleName, 3, "invalid sequence")
	ErrInvalidSignatureAndData     = errorsmod.Register(SubModuleName, 4, "invalid signature and data")
	ErrSignatureVerificationFailed = errorsmod.Register(SubModuleName, 5, "signature verification failed")
	ErrInvalidProof                = errorsmod.Register(SubModuleName, 6, "invalid solo machine proof")
	ErrInvalidMisbehaviour         = errorsmod.Register(SubModuleName, 7, "invalid misbehaviour")
)
