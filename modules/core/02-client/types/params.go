package types

import (
	"fmt"
	"strings"
)

// AllowAllClients is the value that if set in AllowedClients param
// would allow any wired up light client modules to be allowed
const AllowAllClients = "*"

// DefaultAllowedClients are the default clients for the AllowedClients parameter.
var DefaultAllowedClients = []string{AllowAllClients}

// Params defines the set of IBC light client parameters.
type Params struct {
	// AllowedClients defines the list of allowed client state types which can
	// be created and interacted with. If a client type is removed from the
	// allowed clients list, usage of this client will be disabled until it is
	// added again to the list.
	AllowedClients []string
}

// NewParams creates a new parameter configuration for the ibc client module
func NewParams(allowedClients ...string) Params {
	return Params{
		AllowedClients: allowedClients,
	}
}

// DefaultParams is the default parameter configuration for the ibc-client module.
func DefaultParams() Params {
	return NewParams(DefaultAllowedClients...)
}

// Validate all ibc-client module parameters
func (p Params) Validate() error {
	return validateClients(p.AllowedClients)
}

// IsAllowedClient checks if the given client type is registered on the allowlist.
func (p Params) IsAllowedClient(clientType string) bool {
	// Still need to check for blank client type
	if strings.TrimSpace(clientType) == "" {
		return false
	}

	// Check for allow all client wildcard
	// If exist then allow all type of client
	if len(p.AllowedClients) == 1 && p.AllowedClients[0] == AllowAllClients {
		return true
	}

	for _, allowed := range p.AllowedClients {
		if allowed == clientType {
			return true
		}
	}

	return false
}

// validateClients checks that the given clients are not blank and there are no duplicates.
// If AllowAllClients wildcard (*) is used, then there should no other client types in the allow list
func validateClients(clients []string) error {
	foundWildcard := false
	for i, clientType := range clients {
		if strings.TrimSpace(clientType) == "" {
			return fmt.Errorf("client type %d cannot be blank", i)
		}
		if clientType == AllowAllClients {
			foundWildcard = true
		}
	}

	if foundWildcard && len(clients) > 1 {
		return fmt.Errorf("allow list must have only one element because the allow all clients wildcard (%s) is present", AllowAllClients)
	}

	return nil
}
