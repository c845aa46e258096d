package render

import (
	"fmt"
	"io"

	"github.com/trebuchet-org/abisig/internal/usecase"
)

// Fields printed by the signature commands
const (
	FieldSignature = "signature"
	FieldSelector  = "selector"
	FieldTopic     = "topic"
)

// SignatureRenderer prints one derived value per entry
type SignatureRenderer struct {
	out    io.Writer
	format string
	field  string
}

// NewSignatureRenderer creates a renderer printing field in the given format
func NewSignatureRenderer(out io.Writer, format, field string) *SignatureRenderer {
	return &SignatureRenderer{
		out:    out,
		format: format,
		field:  field,
	}
}

// Render prints the bare value for a single entry, and the value next to its
// signature when an ABI array produced several
func (r *SignatureRenderer) Render(result *usecase.ComputeSignatureResult) error {
	if done, err := writeStructured(r.out, r.format, result.Entries); done {
		return err
	}

	for _, entry := range result.Entries {
		var value string
		switch r.field {
		case FieldSelector:
			value = entry.Selector
		case FieldTopic:
			value = entry.Topic
		default:
			value = entry.Signature
		}

		if len(result.Entries) == 1 || r.field == FieldSignature {
			fmt.Fprintln(r.out, value)
			continue
		}
		fmt.Fprintf(r.out, "%s  %s\n", value, entry.Signature)
	}
	return nil
}

var _ Renderer[*usecase.ComputeSignatureResult] = (*SignatureRenderer)(nil)
