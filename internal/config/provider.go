package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// Provider creates RuntimeConfig for Wire dependency injection
func Provider(v *viper.Viper) (*config.RuntimeConfig, error) {
	projectRoot := v.GetString("project_root")
	if projectRoot == "" {
		var err error
		projectRoot, err = os.Getwd()
		if err != nil {
			return nil, err
		}
	}

	cfg := &config.RuntimeConfig{
		ProjectRoot:    projectRoot,
		Profile:        v.GetString("profile"),
		Hasher:         v.GetString("hasher"),
		Output:         strings.ToLower(v.GetString("output")),
		Debug:          v.GetBool("debug"),
		NonInteractive: v.GetBool("non_interactive"),
		Timeout:        v.GetDuration("timeout"),
	}

	switch cfg.Output {
	case config.OutputTable, config.OutputJSON, config.OutputYAML:
	default:
		return nil, fmt.Errorf("unsupported output format %q (use table, json or yaml)", cfg.Output)
	}

	if _, err := abisig.NewHasher(cfg.Hasher); err != nil {
		return nil, err
	}

	// foundry.toml is optional: signature commands work anywhere
	if _, err := os.Stat(filepath.Join(projectRoot, "foundry.toml")); err == nil {
		foundryConfig, err := loadFoundryConfig(projectRoot)
		if err != nil {
			return nil, fmt.Errorf("failed to load foundry config: %w", err)
		}
		cfg.FoundryConfig = foundryConfig
	}

	outDir := v.GetString("out")
	if outDir == "" {
		outDir = cfg.FoundryConfig.OutPath(cfg.Profile)
	}
	outDir = os.ExpandEnv(outDir)
	if !filepath.IsAbs(outDir) {
		outDir = filepath.Join(projectRoot, outDir)
	}
	cfg.OutDir = outDir

	return cfg, nil
}

// FindProjectRoot walks up from current directory to find foundry.toml
func FindProjectRoot() (string, error) {
	dir, err := os.Getwd()
	if err != nil {
		return "", err
	}
	return findProjectRootFrom(dir)
}

func findProjectRootFrom(dir string) (string, error) {
	for {
		foundryToml := filepath.Join(dir, "foundry.toml")
		if _, err := os.Stat(foundryToml); err == nil {
			return dir, nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", fmt.Errorf("not in a Foundry project (foundry.toml not found)")
		}
		dir = parent
	}
}

// SetupViper creates and configures a viper instance
func SetupViper(projectRoot string, cmd *cobra.Command) *viper.Viper {
	v := viper.New()

	// Set up config file
	v.SetConfigName("config")
	v.SetConfigType("json")
	v.AddConfigPath(filepath.Join(projectRoot, ".abisig"))

	// Set up environment variables
	v.SetEnvPrefix("ABISIG")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	// Set defaults
	v.SetDefault("profile", "default")
	v.SetDefault("hasher", abisig.HasherGoEthereum)
	v.SetDefault("output", config.OutputTable)
	v.SetDefault("timeout", "1m")
	v.SetDefault("debug", false)
	v.SetDefault("non_interactive", false)
	v.SetDefault("project_root", projectRoot)

	// Try to read config file (ignore error if not found)
	_ = v.ReadInConfig()

	if cmd != nil {
		cmd.Flags().VisitAll(func(f *pflag.Flag) {
			if !f.Changed {
				return
			}
			key := strings.ReplaceAll(f.Name, "-", "_")
			if err := v.BindPFlag(key, f); err != nil {
				panic(err)
			}
		})
	}

	return v
}
