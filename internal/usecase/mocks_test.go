package usecase

import (
	"context"

	"github.com/stretchr/testify/mock"
	"github.com/trebuchet-org/abisig/internal/domain"
)

// MockArtifactRepository is a mock implementation of ArtifactRepository
type MockArtifactRepository struct {
	mock.Mock
}

func (m *MockArtifactRepository) GetContract(ctx context.Context, key string) (*domain.ContractInfo, error) {
	args := m.Called(ctx, key)
	if c := args.Get(0); c != nil {
		return c.(*domain.ContractInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArtifactRepository) SearchContracts(ctx context.Context, pattern string) ([]*domain.ContractInfo, error) {
	args := m.Called(ctx, pattern)
	if c := args.Get(0); c != nil {
		return c.([]*domain.ContractInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArtifactRepository) ListContracts(ctx context.Context) ([]*domain.ContractInfo, error) {
	args := m.Called(ctx)
	if c := args.Get(0); c != nil {
		return c.([]*domain.ContractInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

func (m *MockArtifactRepository) LoadABI(ctx context.Context, contract *domain.ContractInfo) ([]byte, error) {
	args := m.Called(ctx, contract)
	if b := args.Get(0); b != nil {
		return b.([]byte), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockABIFileReader is a mock implementation of ABIFileReader
type MockABIFileReader struct {
	mock.Mock
}

func (m *MockABIFileReader) ReadABIFile(ctx context.Context, path string) (*domain.ContractInfo, []byte, error) {
	args := m.Called(ctx, path)
	var contract *domain.ContractInfo
	if c := args.Get(0); c != nil {
		contract = c.(*domain.ContractInfo)
	}
	var abiJSON []byte
	if b := args.Get(1); b != nil {
		abiJSON = b.([]byte)
	}
	return contract, abiJSON, args.Error(2)
}

// MockInteractiveSelector is a mock implementation of InteractiveSelector
type MockInteractiveSelector struct {
	mock.Mock
}

func (m *MockInteractiveSelector) SelectContract(ctx context.Context, contracts []*domain.ContractInfo, prompt string) (*domain.ContractInfo, error) {
	args := m.Called(ctx, contracts, prompt)
	if c := args.Get(0); c != nil {
		return c.(*domain.ContractInfo), args.Error(1)
	}
	return nil, args.Error(1)
}

// MockReferenceDeriver is a mock implementation of ReferenceDeriver
type MockReferenceDeriver struct {
	mock.Mock
}

func (m *MockReferenceDeriver) Derive(ctx context.Context, abiJSON []byte) ([]domain.ReferenceEntry, error) {
	args := m.Called(ctx, abiJSON)
	if r := args.Get(0); r != nil {
		return r.([]domain.ReferenceEntry), args.Error(1)
	}
	return nil, args.Error(1)
}

const tokenABI = `[
	{"type":"constructor","inputs":[{"name":"supply","type":"uint256"}]},
	{"type":"function","name":"transfer","inputs":[{"name":"to","type":"address"},{"name":"value","type":"uint256"}],"outputs":[{"type":"bool"}]},
	{"type":"function","name":"balanceOf","inputs":[{"name":"owner","type":"address"}],"outputs":[{"type":"uint256"}]},
	{"type":"event","name":"Transfer","inputs":[{"name":"from","type":"address","indexed":true},{"name":"to","type":"address","indexed":true},{"name":"value","type":"uint256"}]},
	{"type":"error","name":"InsufficientBalance","inputs":[{"name":"needed","type":"uint256"}]}
]`

var tokenContract = &domain.ContractInfo{
	Name:         "Token",
	Path:         "src/Token.sol",
	ArtifactPath: "out/Token.sol/Token.json",
}
