package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
)

func TestChannelValidateBasic(t *testing.T) {
	counterparty := types.NewCounterparty("transfer", "channel-0")

	testCases := []struct {
		name    string
		channel types.Channel
		expPass bool
	}{
		{"valid channel", types.NewChannel(types.INIT, types.ORDERED, counterparty, []string{"connection-0"}, "1.0"), true},
		{"invalid state", types.NewChannel(types.UNINITIALIZED, types.ORDERED, counterparty, []string{"connection-0"}, "1.0"), false},
		{"invalid order", types.NewChannel(types.INIT, types.NONE, counterparty, []string{"connection-0"}, "1.0"), false},
		{"more than one connection hop", types.NewChannel(types.INIT, types.ORDERED, counterparty, []string{"connection-0", "connection-1"}, "1.0"), false},
		{"invalid connection hop identifier", types.NewChannel(types.INIT, types.ORDERED, counterparty, []string{"(invalid)"}, "1.0"), false},
		{"invalid counterparty", types.NewChannel(types.INIT, types.ORDERED, types.NewCounterparty("(invalid)", "channel-0"), []string{"connection-0"}, "1.0"), false},
	}

	for _, tc := range testCases {
		err := tc.channel.ValidateBasic()

		if tc.expPass {
			require.NoError(t, err, "case %s", tc.name)
		} else {
			require.Error(t, err, "case %s", tc.name)
		}
	}
}

func TestCounterpartyValidateBasic(t *testing.T) {
	require.NoError(t, types.NewCounterparty("transfer", "channel-0").ValidateBasic())

	// an empty counterparty channel identifier is allowed during the handshake
	require.NoError(t, types.NewCounterparty("transfer", "").ValidateBasic())

	require.Error(t, types.NewCounterparty("(invalid)", "channel-0").ValidateBasic())
	require.Error(t, types.NewCounterparty("transfer", "(invalid)").ValidateBasic())
}

func TestStateString(t *testing.T) {
	require.Equal(t, "UNINITIALIZED", types.UNINITIALIZED.String())
	require.Equal(t, "INIT", types.INIT.String())
	require.Equal(t, "TRYOPEN", types.TRYOPEN.String())
	require.Equal(t, "OPEN", types.OPEN.String())
	require.Equal(t, "CLOSED", types.CLOSED.String())
}

func TestOrderString(t *testing.T) {
	require.Equal(t, "ORDER_NONE_UNSPECIFIED", types.NONE.String())
	require.Equal(t, "ORDER_UNORDERED", types.UNORDERED.String())
	require.Equal(t, "ORDER_ORDERED", types.ORDERED.String())
}
