package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-core/modules/core/23-commitment/types"
)

func TestApplyPrefix(t *testing.T) {
	prefix := types.NewMerklePrefix([]byte("storePrefixKey"))
	path := types.NewMerklePath("path/to/leaf")

	prefixedPath, err := types.ApplyPrefix(prefix, path)
	require.NoError(t, err)
	require.Equal(t, 2, len(prefixedPath.KeyPath))
	require.Equal(t, "storePrefixKey/path/to/leaf", prefixedPath.String())

	// applying an empty prefix is invalid
	_, err = types.ApplyPrefix(types.NewMerklePrefix(nil), path)
	require.Error(t, err)
}

func TestMerklePath(t *testing.T) {
	path := types.NewMerklePath("ibc", "connections/connection-0")
	require.Equal(t, "ibc/connections/connection-0", path.String())
	require.False(t, path.Empty())

	key, err := path.GetKey(1)
	require.NoError(t, err)
	require.Equal(t, []byte("connections/connection-0"), key)

	_, err = path.GetKey(2)
	require.Error(t, err)

	require.True(t, types.NewMerklePath().Empty())
}

func TestMerkleRoot(t *testing.T) {
	root := types.NewMerkleRoot([]byte("apphash"))
	require.Equal(t, []byte("apphash"), root.GetHash())
	require.False(t, root.Empty())
	require.True(t, types.NewMerkleRoot(nil).Empty())
}

func TestMerkleProofValidateArgs(t *testing.T) {
	// an empty proof always fails verification
	proof := types.MerkleProof{}
	root := types.NewMerkleRoot([]byte("apphash"))
	path := types.NewMerklePath("ibc", "key")

	err := proof.VerifyMembership(types.GetSDKSpecs(), root, path, []byte("value"))
	require.Error(t, err)

	err = proof.VerifyNonMembership(types.GetSDKSpecs(), root, path)
	require.Error(t, err)
}

func TestMerkleProofMarshalRoundTrip(t *testing.T) {
	// an empty proof chain marshals to empty bytes
	proof := types.MerkleProof{}
	bz, err := proof.Marshal()
	require.NoError(t, err)
	require.Empty(t, bz)

	decoded, err := types.UnmarshalMerkleProof(bz)
	require.NoError(t, err)
	require.True(t, decoded.Empty())

	// malformed bytes are rejected
	_, err = types.UnmarshalMerkleProof([]byte{0xff, 0x01, 0x02})
	require.Error(t, err)
}
