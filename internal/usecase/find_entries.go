package usecase

import (
	"context"
	"fmt"
	"log/slog"
	"strings"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/sahilm/fuzzy"
	"github.com/samber/lo"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// Lookup modes
const (
	FindBySelector = "selector"
	FindByTopic    = "topic"
	FindByName     = "name"
)

// FindEntriesParams contains parameters for searching ABI entries
type FindEntriesParams struct {
	// Query is a 4-byte selector, a 32-byte topic (hex) or a name pattern
	Query string
	// Limit caps name matches; zero means no limit
	Limit int
}

// FindEntriesResult contains matching entries across all indexed contracts
type FindEntriesResult struct {
	Query   string
	Mode    string
	Matches []domain.SignatureEntry
}

// FindEntries searches every indexed artifact for an identifier or a name
type FindEntries struct {
	artifacts ArtifactRepository
	deriver   abisig.Deriver
	sink      ProgressSink
	log       *slog.Logger
}

// NewFindEntries creates a new FindEntries use case
func NewFindEntries(artifacts ArtifactRepository, deriver abisig.Deriver, sink ProgressSink, log *slog.Logger) *FindEntries {
	return &FindEntries{
		artifacts: artifacts,
		deriver:   deriver,
		sink:      sink,
		log:       log.With("component", "FindEntries"),
	}
}

// Run executes the use case
func (uc *FindEntries) Run(ctx context.Context, params FindEntriesParams) (*FindEntriesResult, error) {
	query := strings.TrimSpace(params.Query)
	if query == "" {
		return nil, fmt.Errorf("empty query")
	}

	mode, id := classifyQuery(query)

	all, err := uc.collect(ctx)
	if err != nil {
		return nil, err
	}

	var matches []domain.SignatureEntry
	switch mode {
	case FindBySelector:
		matches = lo.Filter(all, func(e domain.SignatureEntry, _ int) bool {
			return e.Kind != abisig.KindEvent && e.Selector == id
		})
	case FindByTopic:
		matches = lo.Filter(all, func(e domain.SignatureEntry, _ int) bool {
			return e.Kind == abisig.KindEvent && e.Topic == id
		})
	default:
		matches = matchNames(all, query)
		if params.Limit > 0 && len(matches) > params.Limit {
			matches = matches[:params.Limit]
		}
	}

	if len(matches) == 0 {
		return nil, domain.NoEntriesMatchErr{Query: query}
	}

	return &FindEntriesResult{
		Query:   query,
		Mode:    mode,
		Matches: matches,
	}, nil
}

// collect derives the entries of every indexed contract. Artifacts with an
// unparsable ABI are skipped.
func (uc *FindEntries) collect(ctx context.Context) ([]domain.SignatureEntry, error) {
	contracts, err := uc.artifacts.ListContracts(ctx)
	if err != nil {
		return nil, err
	}
	if len(contracts) == 0 {
		return nil, domain.ErrNoArtifacts
	}

	var all []domain.SignatureEntry
	skipped := 0
	for i, contract := range contracts {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		uc.sink.OnProgress(ctx, ProgressEvent{
			Stage:   "indexing",
			Current: i + 1,
			Total:   len(contracts),
			Message: fmt.Sprintf("Hashing %s (%d/%d)", contract.Name, i+1, len(contracts)),
			Spinner: true,
		})

		abiJSON, err := uc.artifacts.LoadABI(ctx, contract)
		if err != nil {
			uc.log.Debug("skipping artifact", "contract", contract.Key(), "error", err)
			skipped++
			continue
		}
		entries, err := abisig.ParseABI(abiJSON)
		if err != nil {
			uc.log.Debug("skipping unparsable ABI", "contract", contract.Key(), "error", err)
			skipped++
			continue
		}
		derived, err := deriveEntries(uc.deriver, contract.Key(), entries)
		if err != nil {
			return nil, err
		}
		all = append(all, derived...)
	}
	uc.sink.OnProgress(ctx, ProgressEvent{Stage: "indexed", Total: len(contracts)})

	if skipped > 0 {
		uc.sink.Error(fmt.Sprintf("Skipped %d of %d artifacts with an unreadable ABI (see --debug)", skipped, len(contracts)))
	}
	uc.sink.Info(fmt.Sprintf("Hashed %d entries from %d contracts", len(all), len(contracts)-skipped))

	return all, nil
}

// classifyQuery decides whether the query is a selector, a topic or a name.
// Identifiers are returned in normalized 0x-prefixed lowercase form.
func classifyQuery(query string) (string, string) {
	raw := strings.ToLower(query)
	if !strings.HasPrefix(raw, "0x") {
		raw = "0x" + raw
	}
	b, err := hexutil.Decode(raw)
	if err != nil {
		return FindByName, ""
	}
	switch len(b) {
	case 4:
		return FindBySelector, hexutil.Encode(b)
	case 32:
		return FindByTopic, hexutil.Encode(b)
	}
	return FindByName, ""
}

// matchNames ranks entries by fuzzy match against their name, best first
func matchNames(entries []domain.SignatureEntry, pattern string) []domain.SignatureEntry {
	names := lo.Map(entries, func(e domain.SignatureEntry, _ int) string {
		return e.Name
	})
	found := fuzzy.Find(pattern, names)
	return lo.Map(found, func(m fuzzy.Match, _ int) domain.SignatureEntry {
		return entries[m.Index]
	})
}
