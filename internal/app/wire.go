//go:build wireinject
// +build wireinject

package app

import (
	"github.com/google/wire"
	"github.com/spf13/viper"
	"github.com/trebuchet-org/abisig/internal/adapters"
	"github.com/trebuchet-org/abisig/internal/config"
	"github.com/trebuchet-org/abisig/internal/logging"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// InitApp creates a fully wired App instance
func InitApp(v *viper.Viper) (*App, error) {
	wire.Build(
		// Configuration
		config.Provider,
		logging.LoggingSet,

		// Adapters
		adapters.AllAdapters,

		// Use cases
		usecase.NewComputeSignature,
		usecase.NewResolveContract,
		usecase.NewInspectContract,
		usecase.NewFindEntries,
		usecase.NewVerifyContract,

		// App
		NewApp,
	)
	return nil, nil
}
