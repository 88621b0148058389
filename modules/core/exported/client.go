package exported

import (
	amino "github.com/tendermint/go-amino"

	storetypes "github.com/cosmos/ibc-core/store/types"
	coretypes "github.com/cosmos/ibc-core/types"
)

// Status represents the status of a client
type Status string

const (
	// TypeClientMisbehaviour is the shared evidence misbehaviour type
	TypeClientMisbehaviour string = "client_misbehaviour"

	// Solomachine is used to indicate that the light client is a solo machine.
	Solomachine string = "06-solomachine"

	// Active is a status type of a client. An active client is allowed to be used.
	Active Status = "Active"

	// Frozen is a status type of a client. A frozen client is not allowed to be used.
	Frozen Status = "Frozen"

	// Expired is a status type of a client. An expired client is not allowed to be used.
	Expired Status = "Expired"

	// Unknown indicates there was an error in determining the status of a client.
	Unknown Status = "Unknown"
)

// String returns the string representation of a client status.
func (s Status) String() string {
	return string(s)
}

// ClientState defines the required common functions for light clients.
// Implementations are registered with the codec by client type and own the
// verification rules for their consensus; the core treats them as opaque
// capabilities keyed by client type.
type ClientState interface {
	ClientType() string
	GetLatestHeight() Height
	Validate() error

	// Status must return the status of the client. Only Active clients are allowed to process packets.
	Status(ctx coretypes.Context, clientStore storetypes.KVStore, cdc *amino.Codec) Status

	// GetTimestampAtHeight must return the timestamp for the consensus state associated with the provided height.
	GetTimestampAtHeight(
		ctx coretypes.Context,
		clientStore storetypes.KVStore,
		cdc *amino.Codec,
		height Height,
	) (uint64, error)

	// Initialize is called upon client creation, it allows the client to perform
	// validation on the initial consensus state and set the client state,
	// consensus state and any client-specific metadata in the provided client store.
	Initialize(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, consensusState ConsensusState) error

	// VerifyMembership is a generic proof verification method which verifies a
	// proof of the existence of a value at a given CommitmentPath at the
	// specified height. The caller is expected to construct the full
	// CommitmentPath from a CommitmentPrefix and a standardized path (as
	// defined in ICS 24). Verification is side-effect free.
	VerifyMembership(
		ctx coretypes.Context,
		clientStore storetypes.KVStore,
		cdc *amino.Codec,
		height Height,
		delayTimePeriod uint64,
		delayBlockPeriod uint64,
		proof []byte,
		path Path,
		value []byte,
	) error

	// VerifyNonMembership is a generic proof verification method which
	// verifies the absence of a given CommitmentPath at a specified height.
	// Verification is side-effect free.
	VerifyNonMembership(
		ctx coretypes.Context,
		clientStore storetypes.KVStore,
		cdc *amino.Codec,
		height Height,
		delayTimePeriod uint64,
		delayBlockPeriod uint64,
		proof []byte,
		path Path,
	) error

	// VerifyClientMessage must verify a ClientMessage. A ClientMessage could be a
	// Header or Misbehaviour. Calls to CheckForMisbehaviour, UpdateState and
	// UpdateStateOnMisbehaviour will assume that the content of the ClientMessage
	// has been verified and can be trusted. An error should be returned if the
	// ClientMessage fails to verify.
	VerifyClientMessage(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg ClientMessage) error

	// CheckForMisbehaviour checks for evidence of a misbehaviour in Header or
	// Misbehaviour type. It assumes the ClientMessage has already been verified.
	CheckForMisbehaviour(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg ClientMessage) bool

	// UpdateStateOnMisbehaviour should perform appropriate state changes on a
	// client state given that misbehaviour has been detected and verified. The
	// resulting client status is Frozen, which is terminal.
	UpdateStateOnMisbehaviour(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg ClientMessage)

	// UpdateState updates and stores as necessary any associated information
	// for an IBC client, such as the ClientState and corresponding ConsensusState.
	// Upon successful update, a list of consensus heights is returned.
	// It assumes the ClientMessage has already been verified.
	UpdateState(ctx coretypes.Context, cdc *amino.Codec, clientStore storetypes.KVStore, clientMsg ClientMessage) []Height
}

// ConsensusState is the state of the counterparty consensus at a particular
// height. It is immutable once stored.
type ConsensusState interface {
	ClientType() string // Consensus kind

	// GetTimestamp returns the timestamp (in nanoseconds) of the consensus state
	GetTimestamp() uint64

	ValidateBasic() error
}

// ClientMessage is an interface used to update an IBC client. The update may
// be done by a single header or by misbehaviour evidence; any type which,
// once verified, produces a change to the client state.
type ClientMessage interface {
	ClientType() string
	ValidateBasic() error
}

// Height is a wrapper interface over clienttypes.Height
// all clients must use the concrete implementation in 02-client types
type Height interface {
	IsZero() bool
	LT(Height) bool
	LTE(Height) bool
	EQ(Height) bool
	GT(Height) bool
	GTE(Height) bool
	GetRevisionNumber() uint64
	GetRevisionHeight() uint64
	Increment() Height
	Decrement() (Height, bool)
	String() string
}
