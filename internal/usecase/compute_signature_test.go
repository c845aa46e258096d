package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

func TestComputeSignature_Run(t *testing.T) {
	uc := NewComputeSignature(abisig.Deriver{})

	tests := []struct {
		name      string
		params    ComputeSignatureParams
		signature string
		selector  string
		kind      abisig.EntryKind
		fromJSON  bool
	}{
		{
			name:      "raw signature with whitespace",
			params:    ComputeSignatureParams{Input: "transfer(address, uint256)"},
			signature: "transfer(address,uint256)",
			selector:  "0xa9059cbb",
			kind:      abisig.KindFunction,
		},
		{
			name:      "raw event signature",
			params:    ComputeSignatureParams{Input: "Transfer(address,address,uint256)", Kind: abisig.KindEvent},
			signature: "Transfer(address,address,uint256)",
			selector:  "0xddf252ad",
			kind:      abisig.KindEvent,
		},
		{
			name:      "JSON entry",
			params:    ComputeSignatureParams{Input: `{"name":"kill","inputs":[]}`},
			signature: "kill()",
			selector:  "0x41c0e1b5",
			kind:      abisig.KindFunction,
			fromJSON:  true,
		},
		{
			name:      "JSON kind wins over params",
			params:    ComputeSignatureParams{Input: ` {"type":"error","name":"Error","inputs":[{"type":"string"}]}`, Kind: abisig.KindEvent},
			signature: "Error(string)",
			selector:  "0x08c379a0",
			kind:      abisig.KindError,
			fromJSON:  true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := uc.Run(context.Background(), tt.params)
			require.NoError(t, err)
			require.Len(t, result.Entries, 1)

			entry := result.Entries[0]
			assert.Equal(t, tt.signature, entry.Signature)
			assert.Equal(t, tt.selector, entry.Selector)
			assert.Equal(t, tt.kind, entry.Kind)
			assert.Equal(t, tt.fromJSON, result.FromJSON)
			assert.Len(t, entry.Topic, 66)
		})
	}
}

func TestComputeSignature_ABIArray(t *testing.T) {
	uc := NewComputeSignature(abisig.Deriver{})

	result, err := uc.Run(context.Background(), ComputeSignatureParams{Input: tokenABI})
	require.NoError(t, err)
	require.Len(t, result.Entries, 4)

	assert.Equal(t, "transfer", result.Entries[0].Name)
	assert.Equal(t, "0x70a08231", result.Entries[1].Selector)
	assert.Equal(t, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef", result.Entries[2].Identifier())
	assert.Equal(t, abisig.KindError, result.Entries[3].Kind)
}

func TestComputeSignature_Errors(t *testing.T) {
	uc := NewComputeSignature(abisig.Deriver{})

	_, err := uc.Run(context.Background(), ComputeSignatureParams{Input: "   "})
	assert.ErrorIs(t, err, abisig.ErrMalformedInput)

	_, err = uc.Run(context.Background(), ComputeSignatureParams{Input: `{"inputs":[]}`})
	assert.ErrorIs(t, err, abisig.ErrMalformedInput)

	_, err = uc.Run(context.Background(), ComputeSignatureParams{Input: "bad(\xff)"})
	assert.ErrorIs(t, err, abisig.ErrHashFailure)
}
