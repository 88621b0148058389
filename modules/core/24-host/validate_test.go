package host_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	host "github.com/cosmos/ibc-core/modules/core/24-host"
)

type testCase struct {
	msg     string
	id      string
	expPass bool
}

func TestDefaultIdentifierValidator(t *testing.T) {
	testCases := []testCase{
		{"valid lowercase", "lowercaseid", true},
		{"valid id special chars", "._+-#[]<>._+-#[]<>", true},
		{"valid id lower and special chars", "lower._+-#[]<>", true},
		{"numeric id", "1234567890", true},
		{"uppercase id", "NOTLOWERCASE", true},
		{"numeric id", "double..dots", true},
		{"blank id", "               ", false},
		{"id length out of range", "1", false},
		{"id is too long", "this identifier is too long to be used as a valid identifier", false},
		{"path-like id", "lower/case/id", false},
		{"invalid id", "(clientid)", false},
		{"empty string", "", false},
	}

	for _, tc := range testCases {
		err := host.ClientIdentifierValidator(tc.id)

		if tc.expPass {
			require.NoError(t, err, tc.msg)
		} else {
			require.Error(t, err, tc.msg)
		}
	}
}

func TestPortIdentifierValidator(t *testing.T) {
	// port identifiers may be longer than the other identifiers
	longPort := strings.Repeat("a", host.DefaultMaxPortCharacterLength)
	require.NoError(t, host.PortIdentifierValidator(longPort))
	require.Error(t, host.PortIdentifierValidator(longPort+"a"))
	require.Error(t, host.PortIdentifierValidator("a"))
}

func TestPathValidator(t *testing.T) {
	validateFn := host.NewPathValidator(func(path string) error { return nil })

	testCases := []testCase{
		{"valid path", "p1/p2/p3", true},
		{"valid path with standardized identifiers", "clients/06-solomachine-0/clientState", true},
		{"path with blank identifier", "p1//p3", false},
		{"path with trailing separator", "p1/p2/", false},
		{"path element with invalid characters", "p1/(p2)/p3", false},
		{"identifier not in path format", "path-without-separators", false},
	}

	for _, tc := range testCases {
		err := validateFn(tc.id)

		if tc.expPass {
			require.NoError(t, err, tc.msg)
		} else {
			require.Error(t, err, tc.msg)
		}
	}
}

func TestParseIdentifier(t *testing.T) {
	sequence, err := host.ParseIdentifier("channel-13", "channel-")
	require.NoError(t, err)
	require.Equal(t, uint64(13), sequence)

	_, err = host.ParseIdentifier("channel-", "channel-")
	require.Error(t, err)

	_, err = host.ParseIdentifier("connection-5", "channel-")
	require.Error(t, err)
}
