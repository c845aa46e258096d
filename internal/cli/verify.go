package cli

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abisig/internal/cli/render"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// NewVerifyCmd creates the verify command
func NewVerifyCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <contract|artifact.json>",
		Short: "Cross-check derived identifiers against go-ethereum",
		Long: `Derive every signature, selector and topic of a contract and compare them
with the ones computed by go-ethereum's ABI parser.

Exits with a non-zero status when any identifier differs.`,
		Example: `  abisig verify Token
  abisig verify out/Token.sol/Token.json -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.VerifyContract.Run(cmd.Context(), usecase.VerifyContractParams{
				Contract: args[0],
			})
			if err != nil {
				return err
			}

			if err := render.NewVerifyRenderer(cmd.OutOrStdout(), app.Config.Output).Render(result); err != nil {
				return err
			}
			if !result.OK() {
				return fmt.Errorf("%w: %d mismatches", domain.ErrVerificationFailed, len(result.Mismatches))
			}
			return nil
		},
	}
}
