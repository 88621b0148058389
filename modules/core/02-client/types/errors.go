package types

import (
	errorsmod "cosmossdk.io/errors"
)

// IBC client sentinel errors
var (
	ErrClientExists                    = errorsmod.Register(SubModuleName, 2, "light client already exists")
	ErrInvalidClient                   = errorsmod.Register(SubModuleName, 3, "light client is invalid")
	ErrClientNotFound                  = errorsmod.Register(SubModuleName, 4, "light client not found")
	ErrClientFrozen                    = errorsmod.Register(SubModuleName, 5, "light client is frozen due to misbehaviour")
	ErrClientExpired                   = errorsmod.Register(SubModuleName, 6, "light client is expired")
	ErrClientNotActive                 = errorsmod.Register(SubModuleName, 7, "light client is not active")
	ErrConsensusStateNotFound          = errorsmod.Register(SubModuleName, 8, "consensus state not found")
	ErrInvalidConsensus                = errorsmod.Register(SubModuleName, 9, "invalid consensus state")
	ErrInvalidClientType               = errorsmod.Register(SubModuleName, 10, "invalid client type")
	ErrInvalidHeader                   = errorsmod.Register(SubModuleName, 11, "invalid client header")
	ErrInvalidMisbehaviour             = errorsmod.Register(SubModuleName, 12, "invalid light client misbehaviour")
	ErrFailedMembershipVerification    = errorsmod.Register(SubModuleName, 13, "membership verification failed")
	ErrFailedNonMembershipVerification = errorsmod.Register(SubModuleName, 14, "non-membership verification failed")
	ErrInvalidHeight                   = errorsmod.Register(SubModuleName, 15, "invalid height")
)
