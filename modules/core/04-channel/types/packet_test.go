package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	clienttypes "github.com/cosmos/ibc-core/modules/core/02-client/types"
	"github.com/cosmos/ibc-core/modules/core/04-channel/types"
)

var (
	validPacketData  = []byte("testdata")
	timeoutHeight    = clienttypes.NewHeight(0, 100)
	timeoutTimestamp = uint64(100)
	disabledTimeout  = clienttypes.ZeroHeight()
)

func TestCommitPacket(t *testing.T) {
	packet := types.NewPacket(validPacketData, 1, "portid", "channel-0", "cpportid", "channel-1", timeoutHeight, timeoutTimestamp)

	commitment := types.CommitPacket(packet)
	require.NotNil(t, commitment)
	require.Len(t, commitment, 32)

	// the commitment is deterministic
	require.Equal(t, commitment, types.CommitPacket(packet))

	// any mutation of the committed fields changes the commitment
	mutated := packet
	mutated.TimeoutTimestamp++
	require.NotEqual(t, commitment, types.CommitPacket(mutated))

	mutated = packet
	mutated.TimeoutHeight = clienttypes.NewHeight(0, 101)
	require.NotEqual(t, commitment, types.CommitPacket(mutated))

	mutated = packet
	mutated.Data = []byte("otherdata")
	require.NotEqual(t, commitment, types.CommitPacket(mutated))
}

func TestPacketValidateBasic(t *testing.T) {
	testCases := []struct {
		name    string
		packet  types.Packet
		expPass bool
	}{
		{"valid packet", types.NewPacket(validPacketData, 1, "portid", "channel-0", "cpportid", "channel-1", timeoutHeight, timeoutTimestamp), true},
		{"valid packet with timestamp timeout only", types.NewPacket(validPacketData, 1, "portid", "channel-0", "cpportid", "channel-1", disabledTimeout, timeoutTimestamp), true},
		{"invalid sequence", types.NewPacket(validPacketData, 0, "portid", "channel-0", "cpportid", "channel-1", timeoutHeight, timeoutTimestamp), false},
		{"invalid source port", types.NewPacket(validPacketData, 1, "(portid)", "channel-0", "cpportid", "channel-1", timeoutHeight, timeoutTimestamp), false},
		{"invalid source channel", types.NewPacket(validPacketData, 1, "portid", "(channel-0)", "cpportid", "channel-1", timeoutHeight, timeoutTimestamp), false},
		{"invalid destination port", types.NewPacket(validPacketData, 1, "portid", "channel-0", "(cpportid)", "channel-1", timeoutHeight, timeoutTimestamp), false},
		{"invalid destination channel", types.NewPacket(validPacketData, 1, "portid", "channel-0", "cpportid", "(channel-1)", timeoutHeight, timeoutTimestamp), false},
		{"disabled both timeouts", types.NewPacket(validPacketData, 1, "portid", "channel-0", "cpportid", "channel-1", disabledTimeout, 0), false},
		{"empty data", types.NewPacket([]byte{}, 1, "portid", "channel-0", "cpportid", "channel-1", timeoutHeight, timeoutTimestamp), false},
	}

	for _, tc := range testCases {
		err := tc.packet.ValidateBasic()

		if tc.expPass {
			require.NoError(t, err, "case %s", tc.name)
		} else {
			require.Error(t, err, "case %s", tc.name)
		}
	}
}

func TestTimeoutElapsed(t *testing.T) {
	testCases := []struct {
		name       string
		timeout    types.Timeout
		height     clienttypes.Height
		timestamp  uint64
		expElapsed bool
	}{
		{"height elapsed", types.NewTimeout(clienttypes.NewHeight(0, 10), 0), clienttypes.NewHeight(0, 10), 0, true},
		{"height not elapsed", types.NewTimeout(clienttypes.NewHeight(0, 10), 0), clienttypes.NewHeight(0, 9), 0, false},
		{"timestamp elapsed", types.NewTimeout(clienttypes.ZeroHeight(), 10), clienttypes.ZeroHeight(), 10, true},
		{"timestamp not elapsed", types.NewTimeout(clienttypes.ZeroHeight(), 10), clienttypes.ZeroHeight(), 9, false},
		{"timestamp elapsed, height not", types.NewTimeout(clienttypes.NewHeight(0, 10), 10), clienttypes.NewHeight(0, 5), 20, true},
		{"neither elapsed", types.NewTimeout(clienttypes.NewHeight(0, 10), 10), clienttypes.NewHeight(0, 5), 5, false},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.expElapsed, tc.timeout.Elapsed(tc.height, tc.timestamp), "case %s", tc.name)
	}
}

func TestAcknowledgement(t *testing.T) {
	resultAck := types.NewResultAcknowledgement([]byte("success"))
	require.True(t, resultAck.Success())
	require.NoError(t, resultAck.ValidateBasic())
	require.NotEmpty(t, resultAck.Acknowledgement())

	errAck := types.NewErrorAcknowledgement(types.ErrInvalidPacket)
	require.False(t, errAck.Success())
	require.NoError(t, errAck.ValidateBasic())
	require.NotEmpty(t, errAck.Acknowledgement())

	// acknowledgement serialization is deterministic
	require.Equal(t, resultAck.Acknowledgement(), types.NewResultAcknowledgement([]byte("success")).Acknowledgement())

	emptyAck := types.Acknowledgement{}
	require.Error(t, emptyAck.ValidateBasic())
}
