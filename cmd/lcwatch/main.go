package main

import (
	"fmt"
	"os"
	"time"

	"lcwatch/internal/cli"
	"lcwatch/internal/config"
	"lcwatch/internal/log"
	"lcwatch/internal/registry"
	"lcwatch/internal/repository/leetcode"
	"lcwatch/internal/service"
	"lcwatch/internal/version"
)

func main() {
	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		// It is unrecoverable if we cannot produce an application config
		_, _ = fmt.Fprintf(os.Stderr, "failed to load config: %v\n", err)
		os.Exit(1)
	}

	// Initialise logger
	logger, err := log.New(log.Config{
		Level:    cfg.Logging.Level,
		FilePath: cfg.Logging.FilePath,
	})
	if err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "failed to initialise logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Close()

	// Set the default global logger
	log.SetDefaultLogger(logger)

	log.Info("Starting up lcwatch", "version", version.GetVersion(), "build_time", version.GetBuildTime())

	reg, err := registry.New(cfg.Store.Path)
	if err != nil {
		log.Error("Unable to open the username store", "path", cfg.Store.Path, "error", err)
		_, _ = fmt.Fprintf(os.Stderr, "failed to open username store: %v\n", err)
		os.Exit(1)
	}

	client := leetcode.NewClient(leetcode.ClientConfig{
		Endpoint: cfg.API.Endpoint,
		Timeout:  time.Duration(cfg.API.TimeoutSeconds) * time.Second,
	})
	repo := leetcode.NewSubmissionRepository(client, cfg.API.SubmissionLimit, cfg.API.MaxInFlight)
	tracker := service.NewTracker(reg, repo, cfg.Digest.MaxUsers)

	if err := cli.Execute(tracker); err != nil {
		log.Error("Unhandled error while running command", "error", err)
		_, _ = fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
