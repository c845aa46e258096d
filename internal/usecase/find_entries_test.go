package usecase

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

var discardLogger = slog.New(slog.NewTextHandler(io.Discard, nil))

func newFindRepo(ctx context.Context) *MockArtifactRepository {
	broken := &domain.ContractInfo{Name: "Broken", Path: "src/Broken.sol"}
	missing := &domain.ContractInfo{Name: "Missing", Path: "src/Missing.sol"}
	pinger := &domain.ContractInfo{Name: "Pinger", Path: "src/Pinger.sol"}

	repo := new(MockArtifactRepository)
	repo.On("ListContracts", ctx).Return([]*domain.ContractInfo{tokenContract, broken, missing, pinger}, nil)
	repo.On("LoadABI", ctx, tokenContract).Return([]byte(tokenABI), nil)
	repo.On("LoadABI", ctx, broken).Return([]byte(`{not json`), nil)
	repo.On("LoadABI", ctx, missing).Return(nil, errors.New("gone"))
	repo.On("LoadABI", ctx, pinger).Return([]byte(`[
		{"type":"function","name":"transfer","inputs":[{"type":"address"},{"type":"uint256"}]},
		{"type":"function","name":"ping","inputs":[]}
	]`), nil)
	return repo
}

func TestFindEntries_BySelector(t *testing.T) {
	ctx := context.Background()
	uc := NewFindEntries(newFindRepo(ctx), abisig.Deriver{}, NopProgress{}, discardLogger)

	for _, query := range []string{"0xa9059cbb", "A9059CBB"} {
		result, err := uc.Run(ctx, FindEntriesParams{Query: query})
		require.NoError(t, err)

		assert.Equal(t, FindBySelector, result.Mode)
		require.Len(t, result.Matches, 2)
		assert.Equal(t, "src/Token.sol:Token", result.Matches[0].Contract)
		assert.Equal(t, "src/Pinger.sol:Pinger", result.Matches[1].Contract)
	}
}

func TestFindEntries_ByTopic(t *testing.T) {
	ctx := context.Background()
	uc := NewFindEntries(newFindRepo(ctx), abisig.Deriver{}, NopProgress{}, discardLogger)

	result, err := uc.Run(ctx, FindEntriesParams{Query: "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"})
	require.NoError(t, err)

	assert.Equal(t, FindByTopic, result.Mode)
	require.Len(t, result.Matches, 1)
	assert.Equal(t, "Transfer", result.Matches[0].Name)
}

func TestFindEntries_ByName(t *testing.T) {
	ctx := context.Background()
	uc := NewFindEntries(newFindRepo(ctx), abisig.Deriver{}, NopProgress{}, discardLogger)

	result, err := uc.Run(ctx, FindEntriesParams{Query: "balance"})
	require.NoError(t, err)
	assert.Equal(t, FindByName, result.Mode)
	require.NotEmpty(t, result.Matches)
	assert.Equal(t, "balanceOf", result.Matches[0].Name)

	limited, err := uc.Run(ctx, FindEntriesParams{Query: "transfer", Limit: 1})
	require.NoError(t, err)
	assert.Len(t, limited.Matches, 1)
}

func TestFindEntries_NoMatch(t *testing.T) {
	ctx := context.Background()
	uc := NewFindEntries(newFindRepo(ctx), abisig.Deriver{}, NopProgress{}, discardLogger)

	_, err := uc.Run(ctx, FindEntriesParams{Query: "0xdeadbeef"})
	var noMatch domain.NoEntriesMatchErr
	require.ErrorAs(t, err, &noMatch)
	assert.ErrorIs(t, err, domain.ErrNotFound)

	_, err = uc.Run(ctx, FindEntriesParams{Query: " "})
	assert.Error(t, err)
}

func TestFindEntries_NoArtifacts(t *testing.T) {
	ctx := context.Background()
	repo := new(MockArtifactRepository)
	repo.On("ListContracts", ctx).Return([]*domain.ContractInfo{}, nil)

	uc := NewFindEntries(repo, abisig.Deriver{}, NopProgress{}, discardLogger)
	_, err := uc.Run(ctx, FindEntriesParams{Query: "ping"})
	assert.ErrorIs(t, err, domain.ErrNoArtifacts)
}

func TestFindEntries_Cancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	uc := NewFindEntries(newFindRepo(ctx), abisig.Deriver{}, NopProgress{}, discardLogger)
	_, err := uc.Run(ctx, FindEntriesParams{Query: "ping"})
	assert.ErrorIs(t, err, context.Canceled)
}

func TestClassifyQuery(t *testing.T) {
	tests := []struct {
		query string
		mode  string
		id    string
	}{
		{"0xa9059cbb", FindBySelector, "0xa9059cbb"},
		{"A9059CBB", FindBySelector, "0xa9059cbb"},
		{"0xDDF252AD1BE2C89B69C2B068FC378DAA952BA7F163C4A11628F55A4DF523B3EF", FindByTopic, "0xddf252ad1be2c89b69c2b068fc378daa952ba7f163c4a11628f55a4df523b3ef"},
		{"transfer", FindByName, ""},
		{"0xabc", FindByName, ""},
		{"cafe", FindByName, ""},
	}

	for _, tt := range tests {
		t.Run(tt.query, func(t *testing.T) {
			mode, id := classifyQuery(tt.query)
			assert.Equal(t, tt.mode, mode)
			assert.Equal(t, tt.id, id)
		})
	}
}

// recordingSink keeps the messages a use case reports
type recordingSink struct {
	NopProgress
	infos  []string
	errors []string
}

func (s *recordingSink) Info(message string)  { s.infos = append(s.infos, message) }
func (s *recordingSink) Error(message string) { s.errors = append(s.errors, message) }

func TestFindEntries_ReportsSummary(t *testing.T) {
	ctx := context.Background()
	sink := &recordingSink{}

	uc := NewFindEntries(newFindRepo(ctx), abisig.Deriver{}, sink, discardLogger)
	_, err := uc.Run(ctx, FindEntriesParams{Query: "ping"})
	require.NoError(t, err)

	assert.Equal(t, []string{"Skipped 2 of 4 artifacts with an unreadable ABI (see --debug)"}, sink.errors)
	assert.Equal(t, []string{"Hashed 6 entries from 2 contracts"}, sink.infos)
}
