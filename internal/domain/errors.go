package domain

import (
	"errors"
	"fmt"
	"sort"
	"strings"
)

// Sentinel errors for domain operations
var (
	// ErrNotFound is returned when a requested resource doesn't exist
	ErrNotFound = errors.New("not found")

	// ErrContractNotFound is returned when a contract can't be found
	ErrContractNotFound error = notFoundErr("contract not found")

	// ErrNoArtifacts is returned when the project has no compiled artifacts
	ErrNoArtifacts error = notFoundErr("no compiled artifacts found (run forge build)")

	// ErrVerificationFailed is returned when derived identifiers disagree with the reference ABI parser
	ErrVerificationFailed = errors.New("verification failed")
)

// notFoundErr is a sentinel that also matches ErrNotFound
type notFoundErr string

func (e notFoundErr) Error() string {
	return string(e)
}

func (e notFoundErr) Is(target error) bool {
	return target == ErrNotFound
}

// NoEntriesMatchErr is returned when a lookup finds nothing
type NoEntriesMatchErr struct {
	Query string
}

func (e NoEntriesMatchErr) Error() string {
	return fmt.Sprintf("no ABI entries match %q", e.Query)
}

func (e NoEntriesMatchErr) Unwrap() error {
	return ErrNotFound
}

// AmbiguousContractErr is returned when a contract name matches several artifacts
// and no interactive selection is possible
type AmbiguousContractErr struct {
	Query   string
	Matches []*ContractInfo
}

func (e AmbiguousContractErr) Error() string {
	sorted := make([]*ContractInfo, len(e.Matches))
	copy(sorted, e.Matches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].Key() < sorted[j].Key()
	})

	var suggestions []string
	for _, contract := range sorted {
		suggestions = append(suggestions, fmt.Sprintf("  - %s (%s)", contract.Name, contract.Path))
	}

	return fmt.Sprintf("multiple contracts found matching %q - use full path:contract format to disambiguate:\n%s",
		e.Query, strings.Join(suggestions, "\n"))
}
