package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-core/modules/core/03-connection/types"
)

func TestValidateVersion(t *testing.T) {
	testCases := []struct {
		name    string
		version *types.Version
		expPass bool
	}{
		{"valid version", types.DefaultIBCVersion, true},
		{"valid empty feature set", types.NewVersion("1", []string{}), true},
		{"empty version identifier", types.NewVersion("       ", []string{"ORDER_UNORDERED"}), false},
		{"empty feature", types.NewVersion("1", []string{"ORDER_UNORDERED", "   "}), false},
	}

	for _, tc := range testCases {
		err := types.ValidateVersion(tc.version)

		if tc.expPass {
			require.NoError(t, err, "case %s", tc.name)
		} else {
			require.Error(t, err, "case %s", tc.name)
		}
	}
}

func TestIsSupportedVersion(t *testing.T) {
	require.True(t, types.IsSupportedVersion(types.GetCompatibleVersions(), types.DefaultIBCVersion))
	require.False(t, types.IsSupportedVersion(types.GetCompatibleVersions(), types.NewVersion("2", nil)))

	// a version with an unsupported feature subset is not supported
	require.False(t, types.IsSupportedVersion(types.GetCompatibleVersions(), types.NewVersion("1", []string{"ORDER_DAG"})))
}

func TestFindSupportedVersion(t *testing.T) {
	restricted := types.NewVersion("1", []string{"ORDER_ORDERED"})

	version, found := types.FindSupportedVersion(types.DefaultIBCVersion, []*types.Version{restricted})
	require.True(t, found)
	require.Equal(t, restricted, version)

	_, found = types.FindSupportedVersion(types.NewVersion("2", nil), types.GetCompatibleVersions())
	require.False(t, found)
}

func TestPickVersion(t *testing.T) {
	testCases := []struct {
		name                 string
		supportedVersions    []*types.Version
		counterpartyVersions []*types.Version
		expVer               *types.Version
		expPass              bool
	}{
		{"valid default version", types.GetCompatibleVersions(), types.GetCompatibleVersions(), types.DefaultIBCVersion, true},
		{
			"valid feature subset",
			types.GetCompatibleVersions(),
			[]*types.Version{types.NewVersion("1", []string{"ORDER_ORDERED"})},
			types.NewVersion("1", []string{"ORDER_ORDERED"}),
			true,
		},
		{"no matching identifier", types.GetCompatibleVersions(), []*types.Version{types.NewVersion("2", nil)}, nil, false},
		{
			"no matching feature set",
			[]*types.Version{types.NewVersion("1", []string{"ORDER_ORDERED"})},
			[]*types.Version{types.NewVersion("1", []string{"ORDER_UNORDERED"})},
			nil, false,
		},
	}

	for _, tc := range testCases {
		version, err := types.PickVersion(tc.supportedVersions, tc.counterpartyVersions)

		if tc.expPass {
			require.NoError(t, err, "case %s", tc.name)
			require.Equal(t, tc.expVer, version, "case %s", tc.name)
		} else {
			require.Error(t, err, "case %s", tc.name)
		}
	}
}

func TestVerifyProposedVersion(t *testing.T) {
	testCases := []struct {
		name             string
		proposedVersion  *types.Version
		supportedVersion *types.Version
		expPass          bool
	}{
		{"entire feature set supported", types.DefaultIBCVersion, types.NewVersion("1", []string{"ORDER_ORDERED", "ORDER_UNORDERED", "ORDER_DAG"}), true},
		{"empty feature sets not allowed", types.NewVersion("1", []string{}), types.DefaultIBCVersion, false},
		{"one feature missing", types.DefaultIBCVersion, types.NewVersion("1", []string{"ORDER_UNORDERED", "ORDER_DAG"}), false},
		{"identifier mismatch", types.DefaultIBCVersion, types.NewVersion("2", []string{"ORDER_ORDERED", "ORDER_UNORDERED"}), false},
	}

	for _, tc := range testCases {
		err := tc.supportedVersion.VerifyProposedVersion(tc.proposedVersion)

		if tc.expPass {
			require.NoError(t, err, "case %s", tc.name)
		} else {
			require.Error(t, err, "case %s", tc.name)
		}
	}
}

func TestVerifySupportedFeature(t *testing.T) {
	require.True(t, types.VerifySupportedFeature(types.DefaultIBCVersion, "ORDER_ORDERED"))
	require.True(t, types.VerifySupportedFeature(types.DefaultIBCVersion, "ORDER_UNORDERED"))
	require.False(t, types.VerifySupportedFeature(types.NewVersion("1", []string{"ORDER_ORDERED"}), "ORDER_UNORDERED"))
}
