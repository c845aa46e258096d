package domain

import (
	"errors"
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNotFoundSentinels(t *testing.T) {
	tests := []struct {
		name string
		err  error
	}{
		{"contract not found", ErrContractNotFound},
		{"no artifacts", ErrNoArtifacts},
		{"wrapped no artifacts", fmt.Errorf("%w: out does not exist", ErrNoArtifacts)},
		{"no entries match", NoEntriesMatchErr{Query: "0xdeadbeef"}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.ErrorIs(t, tt.err, ErrNotFound)
		})
	}

	assert.False(t, errors.Is(ErrNoArtifacts, ErrContractNotFound))
	assert.False(t, errors.Is(ErrVerificationFailed, ErrNotFound))
	assert.ErrorIs(t, fmt.Errorf("resolve: %w", ErrContractNotFound), ErrContractNotFound)
}
