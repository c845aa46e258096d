package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abisig/internal/cli/render"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// NewInspectCmd creates the inspect command
func NewInspectCmd() *cobra.Command {
	var kinds []string

	cmd := &cobra.Command{
		Use:   "inspect <contract|artifact.json>",
		Short: "List signatures and identifiers of a contract",
		Long: `List the canonical signature and identifier of every function, event and
custom error of a compiled contract.

The contract can be a name, a "path:Name" key or the path to an artifact or
ABI JSON file.`,
		Example: `  # Inspect a contract by name
  abisig inspect Token

  # Only events, as JSON
  abisig inspect src/Token.sol:Token --kind event -o json`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			entryKinds, err := parseKinds(kinds)
			if err != nil {
				return err
			}

			result, err := app.InspectContract.Run(cmd.Context(), usecase.InspectContractParams{
				Contract: args[0],
				Kinds:    entryKinds,
			})
			if err != nil {
				return err
			}

			return render.NewEntriesRenderer(cmd.OutOrStdout(), app.Config.Output).RenderInspect(result)
		},
	}

	cmd.Flags().StringSliceVarP(&kinds, "kind", "k", nil, "Only show these kinds (function, event, error)")

	return cmd
}
