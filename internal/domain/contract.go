package domain

import "fmt"

// ContractInfo describes a compiled contract artifact
type ContractInfo struct {
	Name         string // Contract name, e.g. "Counter"
	Path         string // Source path, e.g. "src/Counter.sol"
	ArtifactPath string // Path to the Foundry artifact JSON
}

// Key returns the unique "path:Name" reference for the contract
func (c *ContractInfo) Key() string {
	if c.Path == "" {
		return c.Name
	}
	return fmt.Sprintf("%s:%s", c.Path, c.Name)
}
