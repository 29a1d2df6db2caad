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
	"errors"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/dataset"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/traversal"
	"github.com/AleutianAI/BaconLocal/pkg/ux"
)

// maxQueryHistory bounds the interactive reader's history buffer.
const maxQueryHistory = 50

// runScore parses the dataset, then runs the interactive query loop.
func runScore(cmd *cobra.Command, args []string) {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	reference := referenceActor
	if reference == "" {
		reference = config.ReferenceActor
	}

	graph, err := buildGraph(args[0])
	if err != nil {
		ux.Error(err.Error())
		os.Exit(traversal.ExitError)
	}

	runner := NewScoreRunner(ScoreRunnerConfig{
		Graph:     graph,
		Reference: reference,
		Input:     NewInteractiveInputReader(maxQueryHistory),
		TracePath: tracePath,
		Logger:    logger,
	})

	if err := runner.Run(ctx); err != nil {
		if !errors.Is(err, context.Canceled) {
			ux.Error(err.Error())
		}
		os.Exit(traversal.ExitError)
	}
	if runner.Failed() {
		os.Exit(traversal.ExitError)
	}
	os.Exit(traversal.ExitSuccess)
}

// buildGraph parses a dataset file into a fresh graph and logs build
// stats.
func buildGraph(path string) (*index.Graph, error) {
	graph := index.NewGraph()
	stats, err := dataset.ParseFile(path, graph)
	if err != nil {
		return nil, err
	}
	logger.Info("graph built",
		"dataset", path,
		"movies", stats.Movies,
		"actors", stats.Actors,
		"links", stats.Links,
		"checksum", stats.Checksum)
	return graph, nil
}
