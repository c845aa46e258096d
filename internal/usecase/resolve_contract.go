package usecase

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/domain/config"
)

// ResolveContract resolves a contract reference to its artifact and ABI
type ResolveContract struct {
	config    *config.RuntimeConfig
	artifacts ArtifactRepository
	files     ABIFileReader
	selector  InteractiveSelector
	sink      ProgressSink
}

// NewResolveContract creates a new ResolveContract use case
func NewResolveContract(
	cfg *config.RuntimeConfig,
	artifacts ArtifactRepository,
	files ABIFileReader,
	selector InteractiveSelector,
	sink ProgressSink,
) *ResolveContract {
	return &ResolveContract{
		config:    cfg,
		artifacts: artifacts,
		files:     files,
		selector:  selector,
		sink:      sink,
	}
}

// Resolve accepts a path to a JSON file, a "path:Name" key or a contract name
func (uc *ResolveContract) Resolve(ctx context.Context, ref string) (*domain.ContractInfo, []byte, error) {
	if strings.HasSuffix(ref, ".json") {
		if _, err := os.Stat(ref); err == nil {
			return uc.files.ReadABIFile(ctx, ref)
		}
	}

	contract, err := uc.find(ctx, ref)
	if err != nil {
		return nil, nil, err
	}

	abiJSON, err := uc.artifacts.LoadABI(ctx, contract)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to load ABI for %s: %w", contract.Key(), err)
	}
	return contract, abiJSON, nil
}

func (uc *ResolveContract) find(ctx context.Context, ref string) (*domain.ContractInfo, error) {
	uc.sink.OnProgress(ctx, ProgressEvent{
		Stage:   "resolving",
		Message: fmt.Sprintf("Resolving contract: %s", ref),
		Spinner: true,
	})
	defer uc.sink.OnProgress(ctx, ProgressEvent{Stage: "resolved"})

	if strings.Contains(ref, ":") {
		contract, err := uc.artifacts.GetContract(ctx, ref)
		if err != nil {
			return nil, err
		}
		if contract == nil {
			return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, ref)
		}
		return contract, nil
	}

	candidates, err := uc.artifacts.SearchContracts(ctx, ref)
	if err != nil {
		return nil, err
	}

	// Prefer exact name matches over substring matches
	var exact []*domain.ContractInfo
	for _, c := range candidates {
		if c.Name == ref {
			exact = append(exact, c)
		}
	}
	if len(exact) > 0 {
		candidates = exact
	}

	switch len(candidates) {
	case 0:
		return nil, fmt.Errorf("%w: %s", domain.ErrContractNotFound, ref)
	case 1:
		return candidates[0], nil
	}

	if uc.selector != nil && !uc.config.NonInteractive {
		uc.sink.OnProgress(ctx, ProgressEvent{Stage: "selecting"})
		selected, err := uc.selector.SelectContract(ctx, candidates, fmt.Sprintf("Multiple contracts found for '%s'. Select one:", ref))
		if err != nil {
			return nil, fmt.Errorf("contract selection failed: %w", err)
		}
		return selected, nil
	}

	return nil, domain.AmbiguousContractErr{Query: ref, Matches: candidates}
}
