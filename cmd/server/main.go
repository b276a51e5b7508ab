// Package main implements the entry point for the digits API server, which
// exposes single-digit decimal arithmetic over HTTP.
package main

import (
	"context"
	"flag"
	"log"
)

func main() {
	configPath := flag.String("config", "", "path to a YAML config file")
	flag.Parse()

	cfg, err := loadAppConfig(*configPath)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	logger, err := setupAppLogger(cfg)
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	app, err := newApplication(cfg, logger)
	if err != nil {
		logger.Error("failed to initialize application", "error", err)
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.Run(context.Background()); err != nil {
		logger.Error("application exited with error", "error", err)
		log.Fatalf("Server error: %v", err)
	}
}
