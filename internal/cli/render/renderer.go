package render

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/trebuchet-org/abisig/internal/domain/config"
	"gopkg.in/yaml.v3"
)

type Renderer[T any] interface {
	Render(result T) error
}

// writeStructured writes v as JSON or YAML. It returns false for table
// output so callers fall through to their human readable layout.
func writeStructured(out io.Writer, format string, v any) (bool, error) {
	switch format {
	case config.OutputJSON:
		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		return true, enc.Encode(v)
	case config.OutputYAML:
		enc := yaml.NewEncoder(out)
		enc.SetIndent(2)
		if err := enc.Encode(v); err != nil {
			return true, err
		}
		return true, enc.Close()
	case config.OutputTable, "":
		return false, nil
	default:
		return true, fmt.Errorf("unsupported output format: %s", format)
	}
}
