package main

import (
	"log/slog"

	"framecache/internal/config"
	"framecache/internal/logging"
)

// commandContext carries lazily loaded configuration and the logger
// across subcommands.
type commandContext struct {
	configFlag *string

	cfg    *config.Config
	logger *slog.Logger
}

func newCommandContext(configFlag *string) *commandContext {
	return &commandContext{configFlag: configFlag}
}

// ensureConfig loads the config file once and builds the logger from it.
func (ctx *commandContext) ensureConfig() (*config.Config, error) {
	if ctx.cfg != nil {
		return ctx.cfg, nil
	}

	path := ""
	if ctx.configFlag != nil {
		path = *ctx.configFlag
	}
	cfg, err := config.Load(path)
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(logging.Options{
		Level:  cfg.Log.Level,
		Format: cfg.Log.Format,
	})
	if err != nil {
		return nil, err
	}

	ctx.cfg = cfg
	ctx.logger = logging.NewComponentLogger(logger, "cli")
	return cfg, nil
}
