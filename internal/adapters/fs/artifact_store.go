package fs

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"github.com/trebuchet-org/abisig/internal/domain"
	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// foundryArtifact is the subset of a Foundry artifact abisig reads
type foundryArtifact struct {
	ABI      json.RawMessage `json:"abi"`
	Metadata json.RawMessage `json:"metadata"`
}

type artifactMetadata struct {
	Settings struct {
		CompilationTarget map[string]string `json:"compilationTarget"`
	} `json:"settings"`
}

// ArtifactStore indexes Foundry artifacts under the configured out directory
type ArtifactStore struct {
	outDir string
	log    *slog.Logger

	mu            sync.RWMutex
	indexed       bool
	contracts     map[string]*domain.ContractInfo   // key: "path:Name", or "Name" when unique
	contractNames map[string][]*domain.ContractInfo // key: contract name
}

// NewArtifactStore creates a new artifact store
func NewArtifactStore(cfg *config.RuntimeConfig, log *slog.Logger) *ArtifactStore {
	return &ArtifactStore{
		outDir: cfg.OutDir,
		log:    log.With("component", "ArtifactStore"),
	}
}

func (s *ArtifactStore) index() error {
	s.contracts = make(map[string]*domain.ContractInfo)
	s.contractNames = make(map[string][]*domain.ContractInfo)

	if _, err := os.Stat(s.outDir); os.IsNotExist(err) {
		return fmt.Errorf("%w: %s does not exist", domain.ErrNoArtifacts, s.outDir)
	}

	err := filepath.Walk(s.outDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			if info.Name() == "build-info" {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".json" {
			return nil
		}
		return s.processArtifact(path)
	})
	if err != nil {
		return err
	}

	s.indexed = true
	s.log.Debug("indexed artifacts", "dir", s.outDir, "contracts", len(s.contractNames))
	return nil
}

// processArtifact processes a single artifact file
func (s *ArtifactStore) processArtifact(artifactPath string) error {
	data, err := os.ReadFile(artifactPath)
	if err != nil {
		return err
	}

	var artifact foundryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		s.log.Debug("skipping invalid artifact", "path", artifactPath, "error", err)
		return nil
	}
	if !isJSONArray(artifact.ABI) {
		return nil
	}

	info := &domain.ContractInfo{ArtifactPath: artifactPath}
	info.Path, info.Name = compilationTarget(artifact.Metadata)
	if info.Name == "" {
		// out/<File>.sol/<Name>.json
		info.Name = strings.TrimSuffix(filepath.Base(artifactPath), ".json")
		info.Path = filepath.Base(filepath.Dir(artifactPath))
	}

	fullKey := info.Key()
	if _, exists := s.contracts[fullKey]; exists {
		return nil
	}
	s.contracts[fullKey] = info

	if existing, exists := s.contractNames[info.Name]; exists {
		s.contractNames[info.Name] = append(existing, info)
		delete(s.contracts, info.Name)
	} else {
		s.contractNames[info.Name] = []*domain.ContractInfo{info}
		s.contracts[info.Name] = info
	}
	return nil
}

// compilationTarget extracts source path and contract name from artifact
// metadata, which Foundry writes either as an object or as a JSON string
func compilationTarget(raw json.RawMessage) (string, string) {
	if len(raw) == 0 {
		return "", ""
	}

	var meta artifactMetadata
	if raw[0] == '"' {
		var encoded string
		if err := json.Unmarshal(raw, &encoded); err != nil {
			return "", ""
		}
		raw = json.RawMessage(encoded)
	}
	if err := json.Unmarshal(raw, &meta); err != nil {
		return "", ""
	}
	for source, contract := range meta.Settings.CompilationTarget {
		return source, contract
	}
	return "", ""
}

func isJSONArray(raw json.RawMessage) bool {
	trimmed := bytes.TrimSpace(raw)
	return len(trimmed) > 0 && trimmed[0] == '['
}

// ensureIndexed walks the out directory on first use
func (s *ArtifactStore) ensureIndexed() error {
	s.mu.RLock()
	indexed := s.indexed
	s.mu.RUnlock()
	if indexed {
		return nil
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.indexed {
		return nil
	}
	return s.index()
}

// GetContract retrieves a contract by key (name or path:name). A key that is
// not indexed returns nil without error.
func (s *ArtifactStore) GetContract(ctx context.Context, key string) (*domain.ContractInfo, error) {
	if err := s.ensureIndexed(); err != nil {
		return nil, err
	}
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.contracts[key], nil
}

// SearchContracts returns contracts whose name or path contains pattern (case-insensitive)
func (s *ArtifactStore) SearchContracts(ctx context.Context, pattern string) ([]*domain.ContractInfo, error) {
	contracts, err := s.ListContracts(ctx)
	if err != nil {
		return nil, err
	}

	lowPattern := strings.ToLower(pattern)
	var results []*domain.ContractInfo
	for _, info := range contracts {
		if strings.Contains(strings.ToLower(info.Name), lowPattern) ||
			strings.Contains(strings.ToLower(info.Path), lowPattern) {
			results = append(results, info)
		}
	}
	return results, nil
}

// ListContracts returns all indexed contracts sorted by key
func (s *ArtifactStore) ListContracts(ctx context.Context) ([]*domain.ContractInfo, error) {
	if err := s.ensureIndexed(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	var results []*domain.ContractInfo
	for _, infos := range s.contractNames {
		results = append(results, infos...)
	}
	sort.Slice(results, func(i, j int) bool {
		return results[i].Key() < results[j].Key()
	})
	return results, nil
}

// LoadABI returns the ABI array of an indexed contract
func (s *ArtifactStore) LoadABI(ctx context.Context, contract *domain.ContractInfo) ([]byte, error) {
	_, abiJSON, err := readABI(contract.ArtifactPath)
	return abiJSON, err
}

// ReadABIFile reads a Foundry artifact or a bare ABI array from path
func (s *ArtifactStore) ReadABIFile(ctx context.Context, path string) (*domain.ContractInfo, []byte, error) {
	metadata, abiJSON, err := readABI(path)
	if err != nil {
		return nil, nil, err
	}

	info := &domain.ContractInfo{ArtifactPath: path}
	info.Path, info.Name = compilationTarget(metadata)
	if info.Name == "" {
		info.Name = strings.TrimSuffix(filepath.Base(path), filepath.Ext(path))
		info.Path = ""
	}
	return info, abiJSON, nil
}

// readABI returns the metadata and the ABI array of an artifact file. A file
// holding a bare ABI array has no metadata.
func readABI(path string) (json.RawMessage, []byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to read %s: %w", path, err)
	}

	if isJSONArray(data) {
		return nil, data, nil
	}

	var artifact foundryArtifact
	if err := json.Unmarshal(data, &artifact); err != nil {
		return nil, nil, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	if !isJSONArray(artifact.ABI) {
		return nil, nil, fmt.Errorf("%s has no \"abi\" array", path)
	}
	return artifact.Metadata, artifact.ABI, nil
}

// Ensure the adapter implements the interfaces
var (
	_ usecase.ArtifactRepository = (*ArtifactStore)(nil)
	_ usecase.ABIFileReader      = (*ArtifactStore)(nil)
)
