package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// VerifyRenderer handles rendering of verification results
type VerifyRenderer struct {
	out    io.Writer
	format string
}

// NewVerifyRenderer creates a new verify renderer
func NewVerifyRenderer(out io.Writer, format string) *VerifyRenderer {
	return &VerifyRenderer{
		out:    out,
		format: format,
	}
}

type verifyOutput struct {
	Contract   string            `json:"contract" yaml:"contract"`
	Checked    int               `json:"checked" yaml:"checked"`
	OK         bool              `json:"ok" yaml:"ok"`
	Mismatches []domain.Mismatch `json:"mismatches" yaml:"mismatches"`
}

// Render prints a summary line followed by every mismatch
func (r *VerifyRenderer) Render(result *usecase.VerifyContractResult) error {
	out := verifyOutput{
		Contract:   result.Contract.Key(),
		Checked:    result.Checked,
		OK:         result.OK(),
		Mismatches: result.Mismatches,
	}
	if out.Mismatches == nil {
		out.Mismatches = []domain.Mismatch{}
	}
	if done, err := writeStructured(r.out, r.format, out); done {
		return err
	}

	if result.OK() {
		fmt.Fprintln(r.out, FormatSuccess(fmt.Sprintf("%s: %d identifiers match go-ethereum", out.Contract, result.Checked)))
		return nil
	}

	color.New(color.FgRed, color.Bold).Fprintf(r.out, "%s: %d of %d identifiers differ\n",
		out.Contract, len(result.Mismatches), result.Checked)
	for _, m := range result.Mismatches {
		fmt.Fprintf(r.out, "  %s %s\n", kindLabel(m.Kind), m.Signature)
		fmt.Fprintf(r.out, "    %s\n", color.New(color.FgYellow).Sprint(m.Reason))
		if m.Expected != "" {
			fmt.Fprintf(r.out, "    expected: %s\n", m.Expected)
		}
		if m.Actual != "" {
			fmt.Fprintf(r.out, "    actual:   %s\n", m.Actual)
		}
	}
	return nil
}

var _ Renderer[*usecase.VerifyContractResult] = (*VerifyRenderer)(nil)
