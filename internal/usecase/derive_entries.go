package usecase

import (
	"fmt"

	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// deriveEntries computes signatures and identifiers for every entry of an ABI.
// Both the selector and the topic are filled in regardless of kind.
func deriveEntries(deriver abisig.Deriver, contract string, entries []abisig.InterfaceEntry) ([]domain.SignatureEntry, error) {
	results := make([]domain.SignatureEntry, 0, len(entries))
	for _, entry := range entries {
		result, err := deriveEntry(deriver, entry)
		if err != nil {
			return nil, fmt.Errorf("failed to derive %s %s: %w", entry.Kind, entry.Name, err)
		}
		result.Contract = contract
		results = append(results, result)
	}
	return results, nil
}

func deriveEntry(deriver abisig.Deriver, entry abisig.InterfaceEntry) (domain.SignatureEntry, error) {
	sig := abisig.Signature(entry)
	result, err := deriveSignature(deriver, sig)
	if err != nil {
		return result, err
	}
	result.Kind = entry.Kind
	result.Name = entry.Name
	result.Anonymous = entry.Anonymous
	return result, nil
}

func deriveSignature(deriver abisig.Deriver, sig string) (domain.SignatureEntry, error) {
	topic, err := deriver.Topic(sig)
	if err != nil {
		return domain.SignatureEntry{}, err
	}
	var sel abisig.Selector
	copy(sel[:], topic[:4])

	return domain.SignatureEntry{
		Signature: abisig.NormalizeSignature(sig),
		Selector:  sel.Hex(),
		Topic:     topic.Hex(),
	}, nil
}
