package commands

import (
	"io"

	"github.com/rs/zerolog"

	"tableflip.dev/folio/pkg/app"
	"tableflip.dev/folio/pkg/commands/options"
	"tableflip.dev/folio/pkg/config"
	"tableflip.dev/folio/pkg/content"
	"tableflip.dev/folio/pkg/logging"
)

// env is what most commands need before they can run.
type env struct {
	cfg    *config.Config
	lib    *content.Library
	log    zerolog.Logger
	closer io.Closer
}

func (e *env) service() *app.Service {
	svc := app.NewService(e.lib)
	svc.TileTemplate = e.cfg.TilesURL
	return svc
}

func (e *env) Close() error {
	if e.closer == nil {
		return nil
	}
	return e.closer.Close()
}

// loadEnv reads config, sets up logging and loads content. quiet drops
// logs that have nowhere to go but the terminal.
func loadEnv(co *options.ContentOptions, lo *options.LogOptions, quiet bool) (*env, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	logOpts := lo.Logging(cfg)
	logOpts.Quiet = quiet
	log, closer, err := logging.New(logOpts)
	if err != nil {
		return nil, err
	}
	if cfg.Source != "" {
		log.Debug().Str("config", cfg.Source).Msg("config loaded")
	}
	lib, err := co.Load(cfg)
	if err != nil {
		_ = closer.Close()
		return nil, err
	}
	return &env{cfg: cfg, lib: lib, log: log, closer: closer}, nil
}
