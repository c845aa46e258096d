package abisig

import (
	"strings"

	"github.com/samber/lo"
)

// Collapse renders a parameter type into its canonical string form.
// Tuples expand recursively to "(t1,t2,...)" followed by their array suffix.
func Collapse(p ParameterType) string {
	switch t := p.(type) {
	case Simple:
		return string(t)
	case Tuple:
		return "(" + collapseList(t.Components) + ")" + t.Suffix
	default:
		// unreachable for the sealed set
		return ""
	}
}

func collapseList(types []ParameterType) string {
	return strings.Join(lo.Map(types, func(p ParameterType, _ int) string {
		return Collapse(p)
	}), ",")
}
