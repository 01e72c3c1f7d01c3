package main

import (
	"log"
	"os"

	"github.com/shaibs3/resepgen/internal/config"
	"github.com/shaibs3/resepgen/internal/logger"
)

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	// Initialize logger first (for configuration loading)
	initialLogger, err := logger.NewLogger("production", "info")
	if err != nil {
		log.Fatal("failed to initialize logger:", err)
	}
	defer func() {
		_ = initialLogger.Sync()
	}()

	cfg := config.Load(initialLogger)

	if err := newRootCmd(cfg).Execute(); err != nil {
		_ = initialLogger.Sync()
		os.Exit(1)
	}
}
