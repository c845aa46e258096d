package abisig

import (
	"strings"
	"unicode"
)

// Signature builds the canonical "name(t1,t2,...)" form of an entry.
// The name is used verbatim and input order is preserved.
func Signature(e InterfaceEntry) string {
	return e.Name + "(" + collapseList(e.Inputs) + ")"
}

// NormalizeSignature strips every whitespace rune from a pre-formed signature
func NormalizeSignature(sig string) string {
	if strings.IndexFunc(sig, unicode.IsSpace) < 0 {
		return sig
	}
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, sig)
}
