package progress

import (
	"os"

	"github.com/trebuchet-org/abisig/internal/domain/config"
	"github.com/trebuchet-org/abisig/internal/usecase"
)

// ProvideSink selects the spinner for interactive table output and a no-op
// sink otherwise, so machine readable output stays clean
func ProvideSink(cfg *config.RuntimeConfig) usecase.ProgressSink {
	if cfg.NonInteractive || cfg.Output != config.OutputTable || !isTerminal(os.Stderr) {
		return NewNopSink()
	}
	return NewSpinnerSink(os.Stderr)
}

func isTerminal(f *os.File) bool {
	info, err := f.Stat()
	if err != nil {
		return false
	}
	return info.Mode()&os.ModeCharDevice != 0
}
