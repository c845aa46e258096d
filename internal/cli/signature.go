package cli

import (
	"github.com/spf13/cobra"
	"github.com/trebuchet-org/abisig/internal/cli/render"
	"github.com/trebuchet-org/abisig/internal/usecase"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// NewSignatureCmd creates the signature command
func NewSignatureCmd() *cobra.Command {
	return newComputeCmd(computeCmdSpec{
		use:   "signature <abi-json|signature>",
		short: "Print the canonical signature of an ABI entry",
		long: `Print the canonical signature of an ABI entry.

Tuples are collapsed recursively into parenthesised component lists and all
whitespace is removed.`,
		example: `  # Canonical signature of a function with a struct argument
  abisig signature '{"name":"foo","inputs":[{"type":"tuple","components":[{"type":"address"},{"type":"uint256"}]}]}'

  # Every entry of a compiled ABI
  abisig signature @out/Token.sol/Token.json`,
		field: render.FieldSignature,
	})
}

// NewSelectorCmd creates the selector command
func NewSelectorCmd() *cobra.Command {
	return newComputeCmd(computeCmdSpec{
		use:     "selector <abi-json|signature>",
		aliases: []string{"sel"},
		short:   "Print the 4-byte function selector",
		example: `  # Selector of an ERC-20 transfer
  abisig selector 'transfer(address,uint256)'

  # Read an ABI entry from stdin
  echo '{"name":"balanceOf","inputs":[{"type":"address"}]}' | abisig selector -`,
		field:       render.FieldSelector,
		defaultKind: abisig.KindFunction,
	})
}

// NewTopicCmd creates the topic command
func NewTopicCmd() *cobra.Command {
	return newComputeCmd(computeCmdSpec{
		use:   "topic <abi-json|signature>",
		short: "Print the 32-byte event topic",
		example: `  # Topic of the ERC-20 Transfer event
  abisig topic 'Transfer(address,address,uint256)'`,
		field:       render.FieldTopic,
		defaultKind: abisig.KindEvent,
	})
}

type computeCmdSpec struct {
	use         string
	aliases     []string
	short       string
	long        string
	example     string
	field       string
	defaultKind abisig.EntryKind
}

// newComputeCmd builds one of the commands backed by ComputeSignature
func newComputeCmd(spec computeCmdSpec) *cobra.Command {
	var kind string

	long := spec.long
	if long == "" {
		long = spec.short + `.

The argument is an ABI entry object, a full ABI array, or a signature such as
"transfer(address,uint256)". Use "-" to read stdin or "@file" to read a file.`
	}

	cmd := &cobra.Command{
		Use:     spec.use,
		Aliases: spec.aliases,
		Short:   spec.short,
		Long:    long,
		Example: spec.example,
		Args:    cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			app, err := getApp(cmd)
			if err != nil {
				return err
			}

			input, err := readInput(args[0], cmd.InOrStdin())
			if err != nil {
				return err
			}

			entryKind, err := parseKind(kind)
			if err != nil {
				return err
			}
			if entryKind == "" {
				entryKind = spec.defaultKind
			}

			result, err := app.ComputeSignature.Run(cmd.Context(), usecase.ComputeSignatureParams{
				Input: input,
				Kind:  entryKind,
			})
			if err != nil {
				return err
			}

			renderer := render.NewSignatureRenderer(cmd.OutOrStdout(), app.Config.Output, spec.field)
			return renderer.Render(result)
		},
	}

	cmd.Flags().StringVarP(&kind, "kind", "k", "", "Entry kind for plain signatures (function, event, error)")

	return cmd
}
