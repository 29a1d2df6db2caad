// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/scorecache"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/server"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/traversal"
	"github.com/AleutianAI/BaconLocal/pkg/ux"
)

// runServe builds the graph and serves the HTTP API until interrupted.
func runServe(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	datasetPath := config.Dataset
	if len(args) > 0 {
		datasetPath = args[0]
	}
	if datasetPath == "" {
		ux.Error("no dataset: pass a DATASET argument or set 'dataset' in config.yaml")
		os.Exit(traversal.ExitError)
	}

	listen := serveListen
	if listen == "" {
		listen = config.Listen
	}

	cache, err := openScoreCache()
	if err != nil {
		ux.Error(err.Error())
		os.Exit(traversal.ExitError)
	}
	defer cache.Close()

	srv, err := server.New(server.Config{
		DatasetPath:   datasetPath,
		Reference:     config.ReferenceActor,
		Listen:        listen,
		RatePerSecond: config.RateLimit.PerSecond,
		RateBurst:     config.RateLimit.Burst,
		Cache:         cache,
		Logger:        logger,
		Watch:         true,
	})
	if err != nil {
		ux.Error(err.Error())
		os.Exit(traversal.ExitError)
	}

	ux.Title("bacon serve")
	ux.Info("listening on http://" + listen)

	if err := srv.Run(ctx); err != nil {
		ux.Error(err.Error())
		os.Exit(traversal.ExitError)
	}
}

// openScoreCache opens the persistent score cache when cache_dir is
// configured, otherwise an in-memory one.
func openScoreCache() (*scorecache.Cache, error) {
	if config.CacheDir != "" {
		cfg := scorecache.DefaultConfig(config.CacheDir)
		cfg.Logger = logger.Slog()
		return scorecache.Open(cfg)
	}
	cfg := scorecache.InMemoryConfig()
	cfg.Logger = logger.Slog()
	return scorecache.Open(cfg)
}
