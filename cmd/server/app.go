package main

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/phrazzld/digits/internal/config"
	"github.com/phrazzld/digits/internal/domain/arith"
)

type application struct {
	config *config.Config
	logger *slog.Logger
	engine arith.Service
}

// engineParams translates engine configuration into service parameters.
func engineParams(cfg config.EngineConfig) *arith.Params {
	return arith.NewParams(arith.ParamsConfig{
		SaturateOrdinals: !cfg.StrictConversion,
		NamesOnly:        !cfg.AllowSymbols,
	})
}

func newApplication(cfg *config.Config, logger *slog.Logger) (*application, error) {
	engine, err := arith.NewServiceWithParams(engineParams(cfg.Engine), logger)
	if err != nil {
		return nil, fmt.Errorf("failed to create digit engine: %w", err)
	}
	logger.Info("digit engine initialized",
		"strict_conversion", cfg.Engine.StrictConversion,
		"allow_symbols", cfg.Engine.AllowSymbols)

	return &application{
		config: cfg,
		logger: logger,
		engine: engine,
	}, nil
}

// Run starts the HTTP server and blocks until it shuts down.
func (app *application) Run(ctx context.Context) error {
	router := app.setupRouter()

	if err := app.startHTTPServer(ctx, router); err != nil {
		return fmt.Errorf("server error: %w", err)
	}

	return nil
}
