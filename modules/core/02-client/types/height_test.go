package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-core/modules/core/02-client/types"
)

func TestCompareHeights(t *testing.T) {
	testCases := []struct {
		name        string
		height1     types.Height
		height2     types.Height
		compareSign int64
	}{
		{"revision number 1 is lesser", types.NewHeight(1, 3), types.NewHeight(3, 4), -1},
		{"revision number 1 is greater", types.NewHeight(7, 5), types.NewHeight(4, 5), 1},
		{"revision height 1 is lesser", types.NewHeight(3, 4), types.NewHeight(3, 9), -1},
		{"revision height 1 is greater", types.NewHeight(3, 8), types.NewHeight(3, 3), 1},
		{"revision number is MaxUint64", types.NewHeight(^uint64(0), 1), types.NewHeight(0, 1), 1},
		{"heights are equal", types.NewHeight(4, 4), types.NewHeight(4, 4), 0},
	}

	for _, tc := range testCases {
		compare := tc.height1.Compare(tc.height2)

		switch tc.compareSign {
		case -1:
			require.True(t, compare == -1, "case %s", tc.name)
			require.True(t, tc.height1.LT(tc.height2), "case %s", tc.name)
			require.True(t, tc.height1.LTE(tc.height2), "case %s", tc.name)
		case 0:
			require.True(t, compare == 0, "case %s", tc.name)
			require.True(t, tc.height1.EQ(tc.height2), "case %s", tc.name)
			require.True(t, tc.height1.GTE(tc.height2), "case %s", tc.name)
			require.True(t, tc.height1.LTE(tc.height2), "case %s", tc.name)
		case 1:
			require.True(t, compare == 1, "case %s", tc.name)
			require.True(t, tc.height1.GT(tc.height2), "case %s", tc.name)
			require.True(t, tc.height1.GTE(tc.height2), "case %s", tc.name)
		}
	}
}

func TestIncrement(t *testing.T) {
	initial := types.NewHeight(3, 10)
	incremented := initial.Increment()

	require.Equal(t, uint64(3), incremented.GetRevisionNumber())
	require.Equal(t, uint64(11), incremented.GetRevisionHeight())
	// the original height is unchanged
	require.Equal(t, uint64(10), initial.RevisionHeight)
}

func TestDecrement(t *testing.T) {
	decremented, ok := types.NewHeight(3, 10).Decrement()
	require.True(t, ok)
	require.Equal(t, types.NewHeight(3, 9), decremented)

	_, ok = types.NewHeight(3, 0).Decrement()
	require.False(t, ok)
}

func TestString(t *testing.T) {
	height := types.NewHeight(3, 10)
	require.Equal(t, "3-10", height.String())

	parsed, err := types.ParseHeight("3-10")
	require.NoError(t, err)
	require.Equal(t, height, parsed)

	_, err = types.ParseHeight("3-10-")
	require.Error(t, err)

	_, err = types.ParseHeight("3")
	require.Error(t, err)

	_, err = types.ParseHeight("a-b")
	require.Error(t, err)
}

func TestParseChainID(t *testing.T) {
	testCases := []struct {
		chainID  string
		revision uint64
	}{
		{"gaiamainnet-3", 3},
		{"gaiamainnet-3-booth", 0},
		{"testchain-1", 1},
		{"testchain", 0},
		{"-1", 0},
		{"gaia-mainnet-40", 40},
	}

	for _, tc := range testCases {
		require.Equal(t, tc.revision, types.ParseChainID(tc.chainID), "chainID %s", tc.chainID)
	}
}

func TestSetRevisionNumber(t *testing.T) {
	chainID, err := types.SetRevisionNumber("gaiamainnet-3", 4)
	require.NoError(t, err)
	require.Equal(t, "gaiamainnet-4", chainID)

	_, err = types.SetRevisionNumber("gaiamainnet", 4)
	require.Error(t, err)
}
