package abisig

import (
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/crypto"
	"golang.org/x/crypto/sha3"
)

// Hasher computes a keccak-256 digest. Implementations must be safe for
// concurrent use.
type Hasher interface {
	Digest(data []byte) ([32]byte, error)
}

// Keccak256 hashes with go-ethereum's keccak implementation
type Keccak256 struct{}

// Digest returns the keccak-256 digest of data
func (Keccak256) Digest(data []byte) ([32]byte, error) {
	return crypto.Keccak256Hash(data), nil
}

// LegacyKeccak256 hashes with golang.org/x/crypto/sha3. A new state is
// allocated for every call.
type LegacyKeccak256 struct{}

// Digest returns the keccak-256 digest of data
func (LegacyKeccak256) Digest(data []byte) ([32]byte, error) {
	var out [32]byte
	h := sha3.NewLegacyKeccak256()
	if _, err := h.Write(data); err != nil {
		return out, err
	}
	copy(out[:], h.Sum(nil))
	return out, nil
}

// HasherFunc adapts a plain function to the Hasher interface
type HasherFunc func(data []byte) ([32]byte, error)

// Digest calls f(data)
func (f HasherFunc) Digest(data []byte) ([32]byte, error) {
	return f(data)
}

// Names accepted by NewHasher
const (
	// HasherGoEthereum selects Keccak256
	HasherGoEthereum = "go-ethereum"
	// HasherXCrypto selects LegacyKeccak256
	HasherXCrypto = "x/crypto"
)

// HasherNames lists the names accepted by NewHasher
var HasherNames = []string{HasherGoEthereum, HasherXCrypto}

// NewHasher returns the hasher registered under name. An empty name selects
// the go-ethereum implementation.
func NewHasher(name string) (Hasher, error) {
	switch strings.ToLower(name) {
	case "", HasherGoEthereum, "geth":
		return Keccak256{}, nil
	case HasherXCrypto, "sha3":
		return LegacyKeccak256{}, nil
	default:
		return nil, fmt.Errorf("unknown hasher %q (available: %s)", name, strings.Join(HasherNames, ", "))
	}
}
