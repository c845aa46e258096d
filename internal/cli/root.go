package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abisig/internal/app"
	"github.com/trebuchet-org/abisig/internal/config"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// contextKey is the type for context keys
type contextKey string

const (
	// appKey is the context key for the app instance
	appKey contextKey = "app"
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "abisig",
		Short: "Canonical ABI signatures, selectors and event topics",
		Long: `abisig canonicalizes Solidity ABI entries into signatures and derives
4-byte function selectors and 32-byte event topics with keccak-256.

Inside a Foundry project it also indexes compiled artifacts so contracts can
be inspected, searched by selector and verified against go-ethereum.`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			// Skip for help/version commands
			if cmd.Name() == "version" || cmd.Name() == "help" || cmd.Name() == "completion" {
				return nil
			}

			// Find project root; signature commands work anywhere
			projectRoot, err := config.FindProjectRoot()
			if err != nil {
				if projectRoot, err = os.Getwd(); err != nil {
					return err
				}
			}

			v := config.SetupViper(projectRoot, cmd)

			// Initialize app with DI
			appInstance, err := app.InitApp(v)
			if err != nil {
				return fmt.Errorf("failed to initialize app: %w", err)
			}
			appInstance.Log.Debug("app initialized",
				"project", appInstance.Config.ProjectRoot,
				"out", appInstance.Config.OutDir,
				"hasher", appInstance.Config.Hasher)

			// Store app in context
			ctx := context.WithValue(cmd.Context(), appKey, appInstance)

			// Add timeout if configured
			if appInstance.Config.Timeout > 0 {
				var cancel context.CancelFunc
				ctx, cancel = context.WithTimeout(ctx, appInstance.Config.Timeout)
				// Store cancel func to be called on command completion
				cmd.PostRun = func(cmd *cobra.Command, args []string) {
					cancel()
				}
			}

			cmd.SetContext(ctx)

			return nil
		},
	}

	// Global flags
	rootCmd.PersistentFlags().Bool("debug", false, "Enable debug output")
	rootCmd.PersistentFlags().Bool("non-interactive", false, "Disable interactive prompts")
	rootCmd.PersistentFlags().StringP("output", "o", "table", "Output format (table, json, yaml)")
	rootCmd.PersistentFlags().String("hasher", "", fmt.Sprintf("Keccak-256 implementation (%v)", abisig.HasherNames))
	rootCmd.PersistentFlags().StringP("profile", "p", "", "Foundry profile used to locate artifacts")
	rootCmd.PersistentFlags().String("out", "", "Artifacts directory (overrides foundry.toml)")

	// Add command groups
	rootCmd.AddGroup(&cobra.Group{
		ID:    "main",
		Title: "Signature Commands",
	})
	rootCmd.AddGroup(&cobra.Group{
		ID:    "contracts",
		Title: "Contract Commands",
	})

	// Main commands
	for _, cmd := range []*cobra.Command{
		NewSignatureCmd(),
		NewSelectorCmd(),
		NewTopicCmd(),
	} {
		cmd.GroupID = "main"
		rootCmd.AddCommand(cmd)
	}

	// Contract commands
	for _, cmd := range []*cobra.Command{
		NewInspectCmd(),
		NewFindCmd(),
		NewVerifyCmd(),
	} {
		cmd.GroupID = "contracts"
		rootCmd.AddCommand(cmd)
	}

	// Version command
	rootCmd.AddCommand(NewVersionCmd())

	return rootCmd
}

// getApp retrieves the app instance from the command context
func getApp(cmd *cobra.Command) (*app.App, error) {
	appInstance := cmd.Context().Value(appKey)
	if appInstance == nil {
		return nil, fmt.Errorf("app not initialized")
	}

	app, ok := appInstance.(*app.App)
	if !ok {
		return nil, fmt.Errorf("invalid app instance")
	}

	return app, nil
}
