package render

import (
	"strings"

	"github.com/fatih/color"
	"github.com/trebuchet-org/abisig/pkg/abisig"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// FormatError formats a command error for stderr. The full chain is kept
// so wrapped context such as the contract name stays visible.
func FormatError(err error) string {
	msg := err.Error()

	// Capitalize first letter
	if len(msg) > 0 {
		msg = strings.ToUpper(msg[:1]) + msg[1:]
	}

	return color.New(color.FgRed).Sprintf("Error: %s", msg)
}

// FormatSuccess formats a success message with the success icon
func FormatSuccess(message string) string {
	return color.New(color.FgGreen).Sprintf("✅ %s", message)
}

// kindLabel renders an entry kind as a coloured title-case label
func kindLabel(kind abisig.EntryKind) string {
	label := cases.Title(language.English).String(string(kind))
	switch kind {
	case abisig.KindEvent:
		return color.New(color.FgMagenta).Sprint(label)
	case abisig.KindError:
		return color.New(color.FgRed).Sprint(label)
	default:
		return color.New(color.FgCyan).Sprint(label)
	}
}
