package types_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/cosmos/ibc-core/modules/core/05-port/types"
	ibctesting "github.com/cosmos/ibc-core/testing"
)

func TestRouter(t *testing.T) {
	router := types.NewRouter()
	require.False(t, router.Sealed())

	router.AddRoute("mock", ibctesting.NewMockModule())
	require.True(t, router.HasRoute("mock"))

	route, ok := router.GetRoute("mock")
	require.True(t, ok)
	require.NotNil(t, route)

	_, ok = router.GetRoute("transfer")
	require.False(t, ok)

	// duplicate registrations panic
	require.Panics(t, func() {
		router.AddRoute("mock", ibctesting.NewMockModule())
	})

	// invalid module names panic
	require.Panics(t, func() {
		router.AddRoute("(invalid)", ibctesting.NewMockModule())
	})

	router.Seal()
	require.True(t, router.Sealed())

	// registration after sealing panics
	require.Panics(t, func() {
		router.AddRoute("transfer", ibctesting.NewMockModule())
	})

	// sealing twice panics
	require.Panics(t, func() {
		router.Seal()
	})
}
