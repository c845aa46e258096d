package cli

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// readInput resolves a positional argument: "-" reads stdin, "@path" reads a
// file and anything else is used as given
func readInput(arg string, stdin io.Reader) (string, error) {
	switch {
	case arg == "-":
		data, err := io.ReadAll(stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	case strings.HasPrefix(arg, "@"):
		data, err := os.ReadFile(arg[1:])
		if err != nil {
			return "", fmt.Errorf("failed to read %s: %w", arg[1:], err)
		}
		return string(data), nil
	default:
		return arg, nil
	}
}

// parseKind validates a --kind flag value
func parseKind(s string) (abisig.EntryKind, error) {
	switch kind := abisig.EntryKind(strings.ToLower(s)); kind {
	case "":
		return "", nil
	case abisig.KindFunction, abisig.KindEvent, abisig.KindError:
		return kind, nil
	default:
		return "", fmt.Errorf("invalid kind: %s (valid: function, event, error)", s)
	}
}

// parseKinds validates a repeated --kind flag
func parseKinds(values []string) ([]abisig.EntryKind, error) {
	kinds := make([]abisig.EntryKind, 0, len(values))
	for _, v := range values {
		kind, err := parseKind(v)
		if err != nil {
			return nil, err
		}
		if kind != "" {
			kinds = append(kinds, kind)
		}
	}
	return kinds, nil
}
