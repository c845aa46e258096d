package abisig

import (
	"encoding/json"
	"fmt"
	"strings"
)

// jsonParam mirrors a parameter object in Solidity ABI JSON
type jsonParam struct {
	Name       string      `json:"name,omitempty"`
	Type       *string     `json:"type"`
	Components []jsonParam `json:"components,omitempty"`
	Indexed    bool        `json:"indexed,omitempty"`
}

// jsonEntry mirrors an entry object in Solidity ABI JSON
type jsonEntry struct {
	Type      string      `json:"type,omitempty"`
	Name      *string     `json:"name"`
	Inputs    []jsonParam `json:"inputs"`
	Anonymous bool        `json:"anonymous,omitempty"`
}

// ParseEntry parses a single ABI JSON object. A missing "type" on the entry
// defaults to "function".
func ParseEntry(data []byte) (InterfaceEntry, error) {
	var raw jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return InterfaceEntry{}, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}
	return raw.toEntry("")
}

// ParseABI parses a full ABI JSON array. Constructor, fallback and receive
// entries are skipped since they have no name-based identifier.
func ParseABI(data []byte) ([]InterfaceEntry, error) {
	var raw []jsonEntry
	if err := json.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrMalformedInput, err)
	}

	entries := make([]InterfaceEntry, 0, len(raw))
	for i, r := range raw {
		switch r.Type {
		case "constructor", "fallback", "receive":
			continue
		}
		entry, err := r.toEntry(fmt.Sprintf("[%d]", i))
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}
	return entries, nil
}

func (r jsonEntry) toEntry(path string) (InterfaceEntry, error) {
	if r.Name == nil {
		return InterfaceEntry{}, &MalformedInputError{Path: path, Field: "name"}
	}

	kind := EntryKind(r.Type)
	switch kind {
	case "":
		kind = KindFunction
	case KindFunction, KindEvent, KindError:
	default:
		return InterfaceEntry{}, fmt.Errorf("%w: unsupported entry type %q", ErrMalformedInput, r.Type)
	}

	inputs, err := toParameterTypes(r.Inputs, joinPath(path, "inputs"))
	if err != nil {
		return InterfaceEntry{}, err
	}

	return InterfaceEntry{
		Kind:      kind,
		Name:      *r.Name,
		Inputs:    inputs,
		Anonymous: r.Anonymous,
	}, nil
}

func toParameterTypes(params []jsonParam, path string) ([]ParameterType, error) {
	types := make([]ParameterType, 0, len(params))
	for i, p := range params {
		t, err := p.toParameterType(fmt.Sprintf("%s[%d]", path, i))
		if err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, nil
}

func (p jsonParam) toParameterType(path string) (ParameterType, error) {
	if p.Type == nil {
		return nil, &MalformedInputError{Path: path, Field: "type"}
	}

	suffix, ok := tupleSuffix(*p.Type)
	if !ok {
		return Simple(*p.Type), nil
	}
	if p.Components == nil {
		return nil, &MalformedInputError{Path: path, Field: "components"}
	}

	components, err := toParameterTypes(p.Components, path+".components")
	if err != nil {
		return nil, err
	}
	return Tuple{Components: components, Suffix: suffix}, nil
}

// tupleSuffix reports whether t is "tuple" optionally followed by array
// dimensions, and returns those dimensions
func tupleSuffix(t string) (string, bool) {
	rest, ok := strings.CutPrefix(t, "tuple")
	if !ok {
		return "", false
	}
	if rest == "" || strings.HasPrefix(rest, "[") {
		return rest, true
	}
	return "", false
}

func joinPath(base, field string) string {
	if base == "" {
		return field
	}
	return base + "." + field
}
