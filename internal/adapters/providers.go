package adapters

import (
	"github.com/google/wire"
	"github.com/trebuchet-org/abisig/internal/adapters/abi"
	"github.com/trebuchet-org/abisig/internal/adapters/fs"
	"github.com/trebuchet-org/abisig/internal/adapters/interactive"
	"github.com/trebuchet-org/abisig/internal/adapters/progress"
	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/internal/usecase"
	"github.com/trebuchet-org/abisig/pkg/abisig"
)

// ProvideHasher provides the keccak-256 implementation selected in config
func ProvideHasher(cfg *config.RuntimeConfig) (abisig.Hasher, error) {
	return abisig.NewHasher(cfg.Hasher)
}

// ProvideDeriver provides a Deriver bound to the configured hasher
func ProvideDeriver(hasher abisig.Hasher) abisig.Deriver {
	return abisig.NewDeriver(hasher)
}

// HashSet provides the signature derivation core
var HashSet = wire.NewSet(
	ProvideHasher,
	ProvideDeriver,
)

// FSSet provides filesystem-based implementations
var FSSet = wire.NewSet(
	fs.NewArtifactStore,
	wire.Bind(new(usecase.ArtifactRepository), new(*fs.ArtifactStore)),
	wire.Bind(new(usecase.ABIFileReader), new(*fs.ArtifactStore)),
)

// ReferenceSet provides the go-ethereum backed reference implementation
var ReferenceSet = wire.NewSet(
	abi.NewEthReference,
	wire.Bind(new(usecase.ReferenceDeriver), new(*abi.EthReference)),
)

// InteractiveSet provides interactive implementations
var InteractiveSet = wire.NewSet(
	interactive.NewSelectorAdapter,
	wire.Bind(new(usecase.InteractiveSelector), new(*interactive.SelectorAdapter)),
)

// ProgressSet provides the progress sink for long running use cases
var ProgressSet = wire.NewSet(
	progress.ProvideSink,
)

// AllAdapters includes all adapter sets
var AllAdapters = wire.NewSet(
	HashSet,
	FSSet,
	ReferenceSet,
	InteractiveSet,
	ProgressSet,
)
