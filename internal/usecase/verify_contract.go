package usecase

import (
	"context"
	"fmt"

	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// VerifyContractParams contains parameters for verification
type VerifyContractParams struct {
	Contract string
}

// VerifyContractResult reports how abisig compares to the reference parser
type VerifyContractResult struct {
	Contract   *domain.ContractInfo
	Checked    int
	Mismatches []domain.Mismatch
}

// OK reports whether every identifier matched
func (r *VerifyContractResult) OK() bool {
	return len(r.Mismatches) == 0
}

// VerifyContract cross-checks derived identifiers against an independent ABI
// implementation
type VerifyContract struct {
	resolver  *ResolveContract
	deriver   abisig.Deriver
	reference ReferenceDeriver
}

// NewVerifyContract creates a new VerifyContract use case
func NewVerifyContract(resolver *ResolveContract, deriver abisig.Deriver, reference ReferenceDeriver) *VerifyContract {
	return &VerifyContract{
		resolver:  resolver,
		deriver:   deriver,
		reference: reference,
	}
}

// Run executes the use case
func (uc *VerifyContract) Run(ctx context.Context, params VerifyContractParams) (*VerifyContractResult, error) {
	contract, abiJSON, err := uc.resolver.Resolve(ctx, params.Contract)
	if err != nil {
		return nil, err
	}

	entries, err := abisig.ParseABI(abiJSON)
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI of %s: %w", contract.Key(), err)
	}
	ours, err := deriveEntries(uc.deriver, contract.Key(), entries)
	if err != nil {
		return nil, err
	}

	reference, err := uc.reference.Derive(ctx, abiJSON)
	if err != nil {
		return nil, fmt.Errorf("reference derivation failed: %w", err)
	}

	return &VerifyContractResult{
		Contract:   contract,
		Checked:    len(ours),
		Mismatches: compareWithReference(ours, reference),
	}, nil
}

func referenceKey(kind abisig.EntryKind, sig string) string {
	return string(kind) + ":" + sig
}

// compareWithReference matches entries by kind and signature
func compareWithReference(ours []domain.SignatureEntry, reference []domain.ReferenceEntry) []domain.Mismatch {
	refs := make(map[string]domain.ReferenceEntry, len(reference))
	for _, r := range reference {
		refs[referenceKey(r.Kind, r.Signature)] = r
	}

	var mismatches []domain.Mismatch
	seen := make(map[string]bool, len(ours))
	for _, e := range ours {
		key := referenceKey(e.Kind, e.Signature)
		seen[key] = true

		ref, ok := refs[key]
		if !ok {
			mismatches = append(mismatches, domain.Mismatch{
				Kind:      e.Kind,
				Signature: e.Signature,
				Actual:    e.Identifier(),
				Reason:    "signature not produced by reference parser",
			})
			continue
		}
		if ref.Identifier != e.Identifier() {
			mismatches = append(mismatches, domain.Mismatch{
				Kind:      e.Kind,
				Signature: e.Signature,
				Expected:  ref.Identifier,
				Actual:    e.Identifier(),
				Reason:    "identifier differs",
			})
		}
	}

	for _, r := range reference {
		if !seen[referenceKey(r.Kind, r.Signature)] {
			mismatches = append(mismatches, domain.Mismatch{
				Kind:      r.Kind,
				Signature: r.Signature,
				Expected:  r.Identifier,
				Reason:    "entry missing from abisig output",
			})
		}
	}

	return mismatches
}
