package ibctesting

import (
	"fmt"
	"strconv"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// Coordinator drives a set of test chains, keeping their clocks in sync and
// orchestrating handshakes between them.
type Coordinator struct {
	t *testing.T

	CurrentTime time.Time
	Chains      map[string]*TestChain
}

// NewCoordinator initializes the coordinator with n test chains.
func NewCoordinator(t *testing.T, n int) *Coordinator {
	t.Helper()

	coord := &Coordinator{
		t:           t,
		CurrentTime: globalStartTime,
		Chains:      make(map[string]*TestChain),
	}

	for i := 1; i <= n; i++ {
		chainID := GetChainID(i)
		coord.Chains[chainID] = NewTestChain(t, coord, chainID)
	}

	return coord
}

// GetChainID returns the chain ID used for the chain at the given index.
func GetChainID(index int) string {
	return ChainIDPrefix + "-" + strconv.Itoa(index)
}

// GetChain returns the chain with the given chain ID.
func (coord *Coordinator) GetChain(chainID string) *TestChain {
	chain, found := coord.Chains[chainID]
	require.True(coord.t, found, fmt.Sprintf("%s chain does not exist", chainID))
	return chain
}

// IncrementTime advances the clock of every chain by the time increment.
func (coord *Coordinator) IncrementTime() {
	coord.IncrementTimeBy(TimeIncrement)
}

// IncrementTimeBy advances the clock of every chain by the given duration.
func (coord *Coordinator) IncrementTimeBy(increment time.Duration) {
	coord.CurrentTime = coord.CurrentTime.Add(increment)
	for _, chain := range coord.Chains {
		chain.CurrentTime = coord.CurrentTime
	}
}

// CommitBlock advances the given chains by one block and moves time forward
// on every chain.
func (coord *Coordinator) CommitBlock(chains ...*TestChain) {
	for _, chain := range chains {
		chain.NextBlock()
	}
	coord.IncrementTime()
}

// SetupClients creates a client on each endpoint of the path tracking the
// counterparty chain's solo machine.
func (coord *Coordinator) SetupClients(path *Path) {
	require.NoError(coord.t, path.EndpointA.CreateClient())
	require.NoError(coord.t, path.EndpointB.CreateClient())
}

// SetupConnections creates clients and an open connection between the two
// endpoints of the path.
func (coord *Coordinator) SetupConnections(path *Path) {
	coord.SetupClients(path)
	coord.CreateConnections(path)
}

// CreateConnections runs the full connection handshake starting on endpoint A.
func (coord *Coordinator) CreateConnections(path *Path) {
	require.NoError(coord.t, path.EndpointA.ConnOpenInit())
	require.NoError(coord.t, path.EndpointB.ConnOpenTry())
	require.NoError(coord.t, path.EndpointA.ConnOpenAck())
	require.NoError(coord.t, path.EndpointB.ConnOpenConfirm())
}

// CreateChannels runs the full channel handshake starting on endpoint A.
func (coord *Coordinator) CreateChannels(path *Path) {
	require.NoError(coord.t, path.EndpointA.ChanOpenInit())
	require.NoError(coord.t, path.EndpointB.ChanOpenTry())
	require.NoError(coord.t, path.EndpointA.ChanOpenAck())
	require.NoError(coord.t, path.EndpointB.ChanOpenConfirm())
}

// Setup creates clients, an open connection and an open channel between the
// two endpoints of the path.
func (coord *Coordinator) Setup(path *Path) {
	coord.SetupConnections(path)
	coord.CreateChannels(path)
}
