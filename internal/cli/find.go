package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abisig/internal/cli/render"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// NewFindCmd creates the find command
func NewFindCmd() *cobra.Command {
	var limit int

	cmd := &cobra.Command{
		Use:   "find <selector|topic|name>",
		Short: "Find ABI entries across compiled contracts",
		Long: `Search every compiled contract of the project.

A 4-byte hex query matches function and error selectors, a 32-byte hex query
matches event topics and anything else is fuzzy-matched against entry names.`,
		Example: `  # Which contract implements 0xa9059cbb?
  abisig find 0xa9059cbb

  # Entries named like "transfer"
  abisig find transfer --limit 5`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			result, err := app.FindEntries.Run(cmd.Context(), usecase.FindEntriesParams{
				Query: args[0],
				Limit: limit,
			})
			if err != nil {
				return err
			}

			return render.NewEntriesRenderer(cmd.OutOrStdout(), app.Config.Output).RenderFind(result)
		},
	}

	cmd.Flags().IntVarP(&limit, "limit", "l", 20, "Maximum number of name matches (0 for all)")

	return cmd
}
