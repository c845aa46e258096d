package usecase

import (
	"context"
	"fmt"
	"strings"

	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// ComputeSignatureParams contains parameters for computing signatures
type ComputeSignatureParams struct {
	// Input is an ABI entry object, an ABI array, or a pre-formed signature
	Input string
	// Kind applies to pre-formed signatures only; ABI JSON carries its own kind
	Kind abisig.EntryKind
}

// ComputeSignatureResult contains the derived signatures
type ComputeSignatureResult struct {
	Entries  []domain.SignatureEntry
	FromJSON bool
}

// ComputeSignature derives canonical signatures, selectors and topics from
// ABI JSON or from a signature string
type ComputeSignature struct {
	deriver abisig.Deriver
}

// NewComputeSignature creates a new ComputeSignature use case
func NewComputeSignature(deriver abisig.Deriver) *ComputeSignature {
	return &ComputeSignature{deriver: deriver}
}

// Run executes the use case
func (uc *ComputeSignature) Run(ctx context.Context, params ComputeSignatureParams) (*ComputeSignatureResult, error) {
	input := strings.TrimSpace(params.Input)
	if input == "" {
		return nil, fmt.Errorf("%w: empty input", abisig.ErrMalformedInput)
	}

	switch input[0] {
	case '{':
		entry, err := abisig.ParseEntry([]byte(input))
		if err != nil {
			return nil, err
		}
		return uc.fromEntries([]abisig.InterfaceEntry{entry})
	case '[':
		entries, err := abisig.ParseABI([]byte(input))
		if err != nil {
			return nil, err
		}
		return uc.fromEntries(entries)
	}

	kind := params.Kind
	if kind == "" {
		kind = abisig.KindFunction
	}

	result, err := deriveSignature(uc.deriver, input)
	if err != nil {
		return nil, err
	}
	name, _, _ := strings.Cut(result.Signature, "(")
	result.Name = name
	result.Kind = kind

	return &ComputeSignatureResult{Entries: []domain.SignatureEntry{result}}, nil
}

func (uc *ComputeSignature) fromEntries(entries []abisig.InterfaceEntry) (*ComputeSignatureResult, error) {
	results, err := deriveEntries(uc.deriver, "", entries)
	if err != nil {
		return nil, err
	}
	return &ComputeSignatureResult{Entries: results, FromJSON: true}, nil
}
