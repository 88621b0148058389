package exported

const (
	// ModuleName is the name of the IBC module
	ModuleName = "ibc"

	// StoreKey is the prefix under which the entire IBC state is committed.
	// Counterparty chains prove IBC state against this prefix.
	StoreKey = ModuleName
)
