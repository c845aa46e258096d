package render

import (
	"fmt"
	"io"

	"github.com/fatih/color"
	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// EntriesRenderer renders derived signature tables for inspect and find
type EntriesRenderer struct {
	out    io.Writer
	format string
}

// NewEntriesRenderer creates a new entries renderer
func NewEntriesRenderer(out io.Writer, format string) *EntriesRenderer {
	return &EntriesRenderer{
		out:    out,
		format: format,
	}
}

// RenderInspect renders every entry of a single contract
func (r *EntriesRenderer) RenderInspect(result *usecase.InspectContractResult) error {
	if done, err := writeStructured(r.out, r.format, result.Entries); done {
		return err
	}

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "%s\n", result.Contract.Key())
	if len(result.Entries) == 0 {
		fmt.Fprintln(r.out, "No functions, events or errors found")
		return nil
	}
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, renderEntriesTable(result.Entries, false))
	return nil
}

// RenderFind renders matches across contracts
func (r *EntriesRenderer) RenderFind(result *usecase.FindEntriesResult) error {
	if done, err := writeStructured(r.out, r.format, result.Matches); done {
		return err
	}

	if len(result.Matches) == 0 {
		color.New(color.FgYellow).Fprintf(r.out, "No entries match %s\n", result.Query)
		return nil
	}

	color.New(color.FgCyan, color.Bold).Fprintf(r.out, "Found %d entries matching %s by %s:\n\n",
		len(result.Matches), result.Query, result.Mode)
	fmt.Fprintln(r.out, renderEntriesTable(result.Matches, true))
	return nil
}

// renderEntriesTable lays entries out with go-pretty, one row per entry
func renderEntriesTable(entries []domain.SignatureEntry, withContract bool) string {
	t := table.NewWriter()
	t.SetStyle(table.StyleLight)
	t.Style().Options.SeparateRows = false
	t.Style().Options.DrawBorder = false
	t.Style().Options.SeparateHeader = false
	t.Style().Options.SeparateColumns = false
	t.Style().Box = table.BoxStyle{
		PaddingRight: "   ",
	}

	header := table.Row{"KIND", "IDENTIFIER", "SIGNATURE"}
	if withContract {
		header = append(header, "CONTRACT")
	}
	t.AppendHeader(header)
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 1, Align: text.AlignLeft},
		{Number: 2, Align: text.AlignLeft},
		{Number: 3, Align: text.AlignLeft},
	})

	for _, entry := range entries {
		sig := entry.Signature
		if entry.Anonymous {
			sig += color.New(color.Faint).Sprint(" anonymous")
		}
		row := table.Row{kindLabel(entry.Kind), entry.Identifier(), sig}
		if withContract {
			row = append(row, entry.Contract)
		}
		t.AppendRow(row)
	}

	return t.Render()
}
