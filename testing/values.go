package ibctesting

import (
	"time"

	connectiontypes "github.com/cosmos/ibc-core/modules/core/03-connection/types"
	channeltypes "github.com/cosmos/ibc-core/modules/core/04-channel/types"
	commitmenttypes "github.com/cosmos/ibc-core/modules/core/23-commitment/types"
	"github.com/cosmos/ibc-core/modules/core/exported"
)

const (
	// ChainIDPrefix defines the default chain ID prefix for test chains
	ChainIDPrefix = "testchain"

	// MockPort is the port the mock application is bound to on every test chain
	MockPort = "mock"

	// MockVersion is the channel version the mock application negotiates
	MockVersion = "mock-version"

	DefaultDelayPeriod uint64 = 0

	// DefaultDiversifier seeds the solo machine identity of each test chain.
	// The chain ID is appended to keep the two machines distinct.
	DefaultDiversifier = "diversifier"
)

var (
	// TimeIncrement is how much the coordinator advances time per committed block
	TimeIncrement = time.Second * 5

	// globalStartTime is the starting point for all test chain clocks
	globalStartTime = time.Date(2020, 1, 2, 0, 0, 0, 0, time.UTC)

	// ConnectionVersion is the version negotiated by default on every test connection
	ConnectionVersion = connectiontypes.GetCompatibleVersions()[0]

	// MockPacketData is arbitrary application data carried by test packets
	MockPacketData = []byte("mock packet data")

	// MockAcknowledgement is the acknowledgement the mock application returns on receive
	MockAcknowledgement = channeltypes.NewResultAcknowledgement([]byte("mock acknowledgement"))

	// MockFailAcknowledgement is an unsuccessful acknowledgement for failure paths
	MockFailAcknowledgement = channeltypes.NewErrorAcknowledgement(channeltypes.ErrInvalidPacket)

	prefix = commitmenttypes.NewMerklePrefix([]byte(exported.StoreKey))
)
