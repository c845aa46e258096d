package config

import (
	"time"
)

// Output formats
const (
	OutputTable = "table"
	OutputJSON  = "json"
	OutputYAML  = "yaml"
)

// RuntimeConfig represents the complete runtime configuration
// This is injected into use cases and contains all resolved settings
type RuntimeConfig struct {
	// Core settings
	ProjectRoot string
	Profile     string // Foundry profile used to resolve the out directory
	OutDir      string // Absolute path of the artifacts directory

	// Derivation settings
	Hasher string // Name of the keccak implementation, see abisig.NewHasher

	// Execution settings
	Output         string // table, json or yaml
	Debug          bool
	NonInteractive bool
	Timeout        time.Duration

	// Resolved configurations
	FoundryConfig *FoundryConfig // nil outside a Foundry project
}
