package usecase

import (
	"context"

	"github.com/trebuchet-org/abisig/internal/domain"
)

// ArtifactRepository provides access to compiled contract artifacts
type ArtifactRepository interface {
	// GetContract returns the contract with the exact "path:Name" key, or nil
	GetContract(ctx context.Context, key string) (*domain.ContractInfo, error)
	// SearchContracts returns contracts whose name or path contains the pattern
	SearchContracts(ctx context.Context, pattern string) ([]*domain.ContractInfo, error)
	// ListContracts returns every indexed contract
	ListContracts(ctx context.Context) ([]*domain.ContractInfo, error)
	// LoadABI returns the raw ABI JSON array of a contract
	LoadABI(ctx context.Context, contract *domain.ContractInfo) ([]byte, error)
}

// ABIFileReader loads an ABI from a standalone file (an artifact or a bare ABI array)
type ABIFileReader interface {
	ReadABIFile(ctx context.Context, path string) (*domain.ContractInfo, []byte, error)
}

// ReferenceDeriver computes identifiers with an independent ABI implementation
type ReferenceDeriver interface {
	Derive(ctx context.Context, abiJSON []byte) ([]domain.ReferenceEntry, error)
}

// InteractiveSelector handles interactive user selection
type InteractiveSelector interface {
	SelectContract(ctx context.Context, contracts []*domain.ContractInfo, prompt string) (*domain.ContractInfo, error)
}

// Progress tracking interfaces

// ProgressEvent represents a progress update
type ProgressEvent struct {
	Stage   string
	Current int
	Total   int
	Message string
	Spinner bool
}

// ProgressSink receives progress events
type ProgressSink interface {
	OnProgress(ctx context.Context, event ProgressEvent)
	Info(message string)
	Error(message string)
}

// NopProgress is a no-op implementation of ProgressSink
type NopProgress struct{}

func (NopProgress) OnProgress(context.Context, ProgressEvent) {}
func (NopProgress) Info(string)                               {}
func (NopProgress) Error(string)                              {}
