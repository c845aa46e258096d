package abi

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"

	ethabi "github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/usecase"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// EthReference derives identifiers with go-ethereum's ABI parser
type EthReference struct {
	log *slog.Logger
}

// NewEthReference creates a new go-ethereum backed reference deriver
func NewEthReference(log *slog.Logger) *EthReference {
	return &EthReference{
		log: log.With("component", "EthReference"),
	}
}

// Derive parses abiJSON with go-ethereum and returns the signature and
// identifier of every function, event and error
func (r *EthReference) Derive(ctx context.Context, abiJSON []byte) ([]domain.ReferenceEntry, error) {
	parsed, err := ethabi.JSON(bytes.NewReader(abiJSON))
	if err != nil {
		return nil, fmt.Errorf("failed to parse ABI: %w", err)
	}

	entries := make([]domain.ReferenceEntry, 0, len(parsed.Methods)+len(parsed.Events)+len(parsed.Errors))
	for _, method := range parsed.Methods {
		entries = append(entries, domain.ReferenceEntry{
			Kind:       abisig.KindFunction,
			Signature:  method.Sig,
			Identifier: hexutil.Encode(method.ID),
		})
	}
	for _, event := range parsed.Events {
		entries = append(entries, domain.ReferenceEntry{
			Kind:       abisig.KindEvent,
			Signature:  event.Sig,
			Identifier: event.ID.Hex(),
		})
	}
	for _, abiErr := range parsed.Errors {
		entries = append(entries, domain.ReferenceEntry{
			Kind:       abisig.KindError,
			Signature:  abiErr.Sig,
			Identifier: hexutil.Encode(abiErr.ID[:4]),
		})
	}

	r.log.Debug("derived reference identifiers", "methods", len(parsed.Methods), "events", len(parsed.Events), "errors", len(parsed.Errors))
	return entries, nil
}

var _ usecase.ReferenceDeriver = (*EthReference)(nil)
