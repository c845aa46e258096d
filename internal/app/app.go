package app

import (
	"log/slog"

	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// App is the main application container that holds all use cases
type App struct {
	// Configuration
	Config *config.RuntimeConfig
	Log    *slog.Logger

	// Use cases
	ComputeSignature *usecase.ComputeSignature
	InspectContract  *usecase.InspectContract
	FindEntries      *usecase.FindEntries
	VerifyContract   *usecase.VerifyContract
}

// NewApp creates a new application instance with all use cases
func NewApp(
	cfg *config.RuntimeConfig,
	log *slog.Logger,
	computeSignature *usecase.ComputeSignature,
	inspectContract *usecase.InspectContract,
	findEntries *usecase.FindEntries,
	verifyContract *usecase.VerifyContract,
) (*App, error) {
	return &App{
		Config:           cfg,
		Log:              log,
		ComputeSignature: computeSignature,
		InspectContract:  inspectContract,
		FindEntries:      findEntries,
		VerifyContract:   verifyContract,
	}, nil
}
