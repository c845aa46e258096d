package config

// FoundryConfig represents the parts of foundry.toml abisig reads
type FoundryConfig struct {
	Profile map[string]ProfileConfig `toml:"profile"`
}

// ProfileConfig represents a [profile.<name>] section
type ProfileConfig struct {
	OutPath string `toml:"out,omitempty"`
}

// OutPath returns the artifacts directory configured for profile, falling
// back to the default profile and then to "out"
func (f *FoundryConfig) OutPath(profile string) string {
	if f != nil {
		if p, ok := f.Profile[profile]; ok && p.OutPath != "" {
			return p.OutPath
		}
		if p, ok := f.Profile["default"]; ok && p.OutPath != "" {
			return p.OutPath
		}
	}
	return "out"
}
