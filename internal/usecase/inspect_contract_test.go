package usecase

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

func TestInspectContract_Run(t *testing.T) {
	ctx := context.Background()

	repo := new(MockArtifactRepository)
	repo.On("SearchContracts", ctx, "Token").Return([]*domain.ContractInfo{tokenContract}, nil)
	repo.On("LoadABI", ctx, tokenContract).Return([]byte(tokenABI), nil)

	resolver := newResolver(&config.RuntimeConfig{}, repo, new(MockABIFileReader), nil)
	uc := NewInspectContract(resolver, abisig.Deriver{})

	t.Run("all kinds", func(t *testing.T) {
		result, err := uc.Run(ctx, InspectContractParams{Contract: "Token"})
		require.NoError(t, err)
		require.Len(t, result.Entries, 4)

		assert.Equal(t, "src/Token.sol:Token", result.Entries[0].Contract)
		assert.Equal(t, "transfer(address,uint256)", result.Entries[0].Signature)
		assert.Equal(t, "0xa9059cbb", result.Entries[0].Identifier())
		assert.Equal(t, "InsufficientBalance(uint256)", result.Entries[3].Signature)
	})

	t.Run("filtered to events", func(t *testing.T) {
		result, err := uc.Run(ctx, InspectContractParams{Contract: "Token", Kinds: []abisig.EntryKind{abisig.KindEvent}})
		require.NoError(t, err)
		require.Len(t, result.Entries, 1)
		assert.Equal(t, "Transfer", result.Entries[0].Name)
	})
}

func TestInspectContract_MalformedABI(t *testing.T) {
	ctx := context.Background()
	broken := &domain.ContractInfo{Name: "Broken", Path: "src/Broken.sol"}

	repo := new(MockArtifactRepository)
	repo.On("SearchContracts", ctx, "Broken").Return([]*domain.ContractInfo{broken}, nil)
	repo.On("LoadABI", ctx, broken).Return([]byte(`[{"type":"function","inputs":[]}]`), nil)

	uc := NewInspectContract(newResolver(&config.RuntimeConfig{}, repo, new(MockABIFileReader), nil), abisig.Deriver{})
	_, err := uc.Run(ctx, InspectContractParams{Contract: "Broken"})
	assert.ErrorIs(t, err, abisig.ErrMalformedInput)
}
