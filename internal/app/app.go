package app

import (
	"os"

	"github.com/rs/zerolog"

	"log-manager/internal/api"
	"log-manager/internal/config"
	"log-manager/pkg/appstate"
	"log-manager/pkg/notify"
)

// Options override what the environment configures.
type Options struct {
	DataFile string
}

// Open reads the environment, builds the logger and returns a Service over
// the user's document.
func Open(opts Options) (*api.Service, zerolog.Logger, error) {
	cfg, err := config.Read()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	logger, err := NewLogger(cfg.Env, os.Stderr)
	if err != nil {
		return nil, zerolog.Nop(), err
	}

	path := DataFile(cfg, opts)
	logger.Debug().
		Str("env", cfg.Env).
		Str("data_file", path).
		Msg("opening app state")

	return api.Open(appstate.NewFileStore(path), notify.NewBus(), logger), logger, nil
}

// DataFile picks the document path: explicit option, then environment, then
// the per-user default.
func DataFile(cfg *config.Config, opts Options) string {
	switch {
	case opts.DataFile != "":
		return opts.DataFile
	case cfg.DataFile != "":
		return cfg.DataFile
	default:
		return appstate.DefaultPath()
	}
}
