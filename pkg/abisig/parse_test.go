package abisig

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseEntry(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		signature string
		kind      EntryKind
	}{
		{
			name:      "transfer",
			input:     `{"name":"transfer","inputs":[{"type":"address"},{"type":"uint256"}]}`,
			signature: "transfer(address,uint256)",
			kind:      KindFunction,
		},
		{
			name: "tuple",
			input: `{"name":"foo","type":"function","inputs":[{"type":"tuple","components":[
				{"name":"anAddress","type":"address"},
				{"name":"anInt","type":"uint256"},
				{"name":"someBytes","type":"bytes"}]}]}`,
			signature: "foo((address,uint256,bytes))",
			kind:      KindFunction,
		},
		{
			name:      "event",
			input:     `{"type":"event","name":"Transfer","inputs":[{"type":"address","indexed":true},{"type":"address","indexed":true},{"type":"uint256"}]}`,
			signature: "Transfer(address,address,uint256)",
			kind:      KindEvent,
		},
		{
			name:      "no inputs field",
			input:     `{"name":"kill"}`,
			signature: "kill()",
			kind:      KindFunction,
		},
		{
			name:      "nested tuple",
			input:     `{"name":"n","inputs":[{"type":"tuple","components":[{"type":"tuple","components":[{"type":"uint8"}]}]}]}`,
			signature: "n(((uint8)))",
			kind:      KindFunction,
		},
		{
			name:      "empty tuple",
			input:     `{"name":"e","inputs":[{"type":"tuple","components":[]}]}`,
			signature: "e(())",
			kind:      KindFunction,
		},
		{
			name:      "tuple array",
			input:     `{"name":"batch","inputs":[{"type":"tuple[]","components":[{"type":"address"},{"type":"bytes"}]},{"type":"tuple[2]","components":[{"type":"bool"}]}]}`,
			signature: "batch((address,bytes)[],(bool)[2])",
			kind:      KindFunction,
		},
		{
			name:      "custom error",
			input:     `{"type":"error","name":"Unauthorized","inputs":[{"type":"address"}]}`,
			signature: "Unauthorized(address)",
			kind:      KindError,
		},
		{
			name:      "tuple-like simple type is kept",
			input:     `{"name":"t","inputs":[{"type":"tuples"}]}`,
			signature: "t(tuples)",
			kind:      KindFunction,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entry, err := ParseEntry([]byte(tt.input))
			require.NoError(t, err)
			assert.Equal(t, tt.kind, entry.Kind)
			assert.Equal(t, tt.signature, Signature(entry))
		})
	}
}

func TestParseEntry_Malformed(t *testing.T) {
	tests := []struct {
		name  string
		input string
		field string
		path  string
	}{
		{
			name:  "missing name",
			input: `{"inputs":[]}`,
			field: "name",
		},
		{
			name:  "missing type",
			input: `{"name":"f","inputs":[{"type":"address"},{"name":"x"}]}`,
			field: "type",
			path:  "inputs[1]",
		},
		{
			name:  "missing nested type",
			input: `{"name":"f","inputs":[{"type":"tuple","components":[{"type":"uint8"},{}]}]}`,
			field: "type",
			path:  "inputs[0].components[1]",
		},
		{
			name:  "tuple without components",
			input: `{"name":"f","inputs":[{"type":"tuple"}]}`,
			field: "components",
			path:  "inputs[0]",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParseEntry([]byte(tt.input))
			require.Error(t, err)
			assert.ErrorIs(t, err, ErrMalformedInput)

			var malformed *MalformedInputError
			require.ErrorAs(t, err, &malformed)
			assert.Equal(t, tt.field, malformed.Field)
			assert.Equal(t, tt.path, malformed.Path)
		})
	}
}

func TestParseEntry_InvalidJSON(t *testing.T) {
	_, err := ParseEntry([]byte(`{"name":`))
	assert.ErrorIs(t, err, ErrMalformedInput)

	_, err = ParseEntry([]byte(`{"name":"x","type":"constructor"}`))
	assert.ErrorIs(t, err, ErrMalformedInput)
}

func TestParseABI(t *testing.T) {
	input := `[
		{"type":"constructor","inputs":[{"name":"owner","type":"address"}]},
		{"type":"fallback"},
		{"type":"receive"},
		{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"type":"bool"}]},
		{"type":"event","name":"Ping","inputs":[],"anonymous":true},
		{"type":"error","name":"Nope","inputs":[]}
	]`

	entries, err := ParseABI([]byte(input))
	require.NoError(t, err)
	require.Len(t, entries, 3)

	assert.Equal(t, "transfer(address,uint256)", Signature(entries[0]))
	assert.Equal(t, KindEvent, entries[1].Kind)
	assert.True(t, entries[1].Anonymous)
	assert.Equal(t, KindError, entries[2].Kind)
}

func TestParseABI_MalformedPath(t *testing.T) {
	_, err := ParseABI([]byte(`[{"type":"function","name":"ok","inputs":[]},{"type":"function","inputs":[]}]`))

	var malformed *MalformedInputError
	require.ErrorAs(t, err, &malformed)
	assert.Equal(t, "[1]", malformed.Path)
	assert.Equal(t, "name", malformed.Field)
}
