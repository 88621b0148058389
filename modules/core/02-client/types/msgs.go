package types

import (
	errorsmod "cosmossdk.io/errors"

	host "github.com/cosmos/ibc-core/modules/core/24-host"
	ibcerrors "github.com/cosmos/ibc-core/modules/core/errors"
	"github.com/cosmos/ibc-core/modules/core/exported"
)

// MsgCreateClient defines a message to create an IBC client.
type MsgCreateClient struct {
	// light client state
	ClientState exported.ClientState
	// consensus state associated with the client that corresponds to a given
	// height.
	ConsensusState exported.ConsensusState
}

// MsgCreateClientResponse defines the MsgCreateClient response type.
type MsgCreateClientResponse struct {
	ClientId string
}

// NewMsgCreateClient creates a new MsgCreateClient instance
func NewMsgCreateClient(clientState exported.ClientState, consensusState exported.ConsensusState) *MsgCreateClient {
	return &MsgCreateClient{
		ClientState:    clientState,
		ConsensusState: consensusState,
	}
}

// ValidateBasic implements Msg.
func (msg MsgCreateClient) ValidateBasic() error {
	if msg.ClientState == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client state cannot be nil")
	}
	if err := msg.ClientState.Validate(); err != nil {
		return err
	}
	if msg.ConsensusState == nil {
		return errorsmod.Wrap(ErrInvalidConsensus, "consensus state cannot be nil")
	}
	if msg.ClientState.ClientType() != msg.ConsensusState.ClientType() {
		return errorsmod.Wrap(ErrInvalidClientType, "client type for client state and consensus state do not match")
	}
	return msg.ConsensusState.ValidateBasic()
}

// MsgUpdateClient defines a message to update an IBC client with a client
// message (header or misbehaviour).
type MsgUpdateClient struct {
	// client unique identifier
	ClientId string
	// client message to update the light client
	ClientMessage exported.ClientMessage
}

// MsgUpdateClientResponse defines the MsgUpdateClient response type.
type MsgUpdateClientResponse struct{}

// NewMsgUpdateClient creates a new MsgUpdateClient instance
func NewMsgUpdateClient(id string, clientMsg exported.ClientMessage) *MsgUpdateClient {
	return &MsgUpdateClient{
		ClientId:      id,
		ClientMessage: clientMsg,
	}
}

// ValidateBasic implements Msg.
func (msg MsgUpdateClient) ValidateBasic() error {
	if msg.ClientMessage == nil {
		return errorsmod.Wrap(ErrInvalidClient, "client message cannot be nil")
	}
	if err := msg.ClientMessage.ValidateBasic(); err != nil {
		return err
	}
	return host.ClientIdentifierValidator(msg.ClientId)
}

// MsgSubmitMisbehaviour defines a message to submit light client misbehaviour
// evidence and freeze the client.
type MsgSubmitMisbehaviour struct {
	// client unique identifier
	ClientId string
	// misbehaviour used for freezing the light client
	Misbehaviour exported.ClientMessage
}

// MsgSubmitMisbehaviourResponse defines the MsgSubmitMisbehaviour response
// type.
type MsgSubmitMisbehaviourResponse struct{}

// NewMsgSubmitMisbehaviour creates a new MsgSubmitMisbehaviour instance.
func NewMsgSubmitMisbehaviour(clientID string, misbehaviour exported.ClientMessage) *MsgSubmitMisbehaviour {
	return &MsgSubmitMisbehaviour{
		ClientId:     clientID,
		Misbehaviour: misbehaviour,
	}
}

// ValidateBasic implements Msg.
func (msg MsgSubmitMisbehaviour) ValidateBasic() error {
	if msg.Misbehaviour == nil {
		return errorsmod.Wrap(ErrInvalidMisbehaviour, "misbehaviour cannot be nil")
	}
	if err := msg.Misbehaviour.ValidateBasic(); err != nil {
		return err
	}
	if msg.Misbehaviour.ClientType() == "" {
		return errorsmod.Wrap(ibcerrors.ErrInvalidType, "client type cannot be empty")
	}
	return host.ClientIdentifierValidator(msg.ClientId)
}
