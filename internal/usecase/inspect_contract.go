package usecase

import (
	"context"
	"fmt"
	"slices"

	"github.com/samber/lo"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// InspectContractParams contains parameters for inspecting a contract
type InspectContractParams struct {
	Contract string
	// Kinds restricts the result; empty means all kinds
	Kinds []abisig.EntryKind
}

// InspectContractResult lists every identifier of a contract ABI
type InspectContractResult struct {
	Contract *domain.ContractInfo
	Entries  []domain.SignatureEntry
}

// InspectContract derives the signatures of every function, event and error
// of a compiled contract
type InspectContract struct {
	resolver *ResolveContract
	deriver  abisig.Deriver
}

// NewInspectContract creates a new InspectContract use case
func NewInspectContract(resolver *ResolveContract, deriver abisig.Deriver) *InspectContract {
	return &InspectContract{
		resolver: resolver,
		deriver:  deriver,
	}
}

// Run executes the use case
func (uc *InspectContract) Run(ctx context.Context, params InspectContractParams) (*InspectContractResult, error) {
	contract, abiJSON, err := uc.resolver.Resolve(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	entries, err := abisig.ParseABI(abiJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", contract.Key(), err)
	}

	if len(params.Kinds) > 0 {
		entries = lo.Filter(entries, func(e abisig.InterfaceEntry, _ int) bool {
			return slices.Contains(params.Kinds, e.Kind)
		})
	}

	results, err := deriveEntries(uc.deriver, contract.Key(), entries)
	if err != nil {
		return nil, err
	}

	return &InspectContractResult{
		Contract: contract,
		Entries:  results,
	}, nil
}
