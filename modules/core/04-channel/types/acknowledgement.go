package types

import (
	"strconv"
	"strings"

	errorsmod "cosmossdk.io/errors"
)

// Acknowledgement is the recommended acknowledgement format to be used by
// app-specific protocols. An acknowledgement carries either a result or an
// error, never both.
type Acknowledgement struct {
	// response contains either a result or an error and must be non-empty
	Result []byte `json:"result,omitempty"`
	Error  string `json:"error,omitempty"`
}

// NewResultAcknowledgement returns a new instance of Acknowledgement using an
// Acknowledgement_Result type in the Response field.
func NewResultAcknowledgement(result []byte) Acknowledgement {
	return Acknowledgement{
		Result: result,
	}
}

// NewErrorAcknowledgement returns a new instance of Acknowledgement using an
// Acknowledgement_Error type in the Response field.
// NOTE: Acknowledgements are written into state and a changing error message
// would break consensus, so only a deterministic error code is used.
func NewErrorAcknowledgement(err error) Acknowledgement {
	// the ABCI code is included in the abcitypes.ResponseDeliverTx hash
	// constructed in Tendermint and is therefore deterministic
	_, code, _ := errorsmod.ABCIInfo(err, false) // discard non-deterministic codespace and log values

	return Acknowledgement{
		Error: "ABCI code: " + strconv.FormatUint(uint64(code), 10) + ": error handling packet: see events for details",
	}
}

// Success implements the Acknowledgement interface. The acknowledgement is
// considered successful if it is a ResultAcknowledgement. Both a nil result
// and an error acknowledgement are unsuccessful.
func (ack Acknowledgement) Success() bool {
	return len(ack.Result) > 0 && ack.Error == ""
}

// ValidateBasic performs a basic validation of the acknowledgement
func (ack Acknowledgement) ValidateBasic() error {
	if len(ack.Result) > 0 && ack.Error != "" {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement cannot contain both a result and an error")
	}
	if len(ack.Result) == 0 && strings.TrimSpace(ack.Error) == "" {
		return errorsmod.Wrap(ErrInvalidAcknowledgement, "acknowledgement must contain a non-empty result or error")
	}
	return nil
}

// Acknowledgement implements the Acknowledgement interface. It returns the
// acknowledgement serialised using JSON.
func (ack Acknowledgement) Acknowledgement() []byte {
	return ModuleCdc.MustMarshalJSON(&ack)
}
