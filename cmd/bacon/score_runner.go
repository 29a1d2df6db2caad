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
	"fmt"
	"io"
	"os"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/traversal"
	"github.com/AleutianAI/BaconLocal/pkg/logging"
	"github.com/AleutianAI/BaconLocal/pkg/ux"
)

// =============================================================================
// ScoreRunner
// =============================================================================

// ScoreRunnerConfig groups everything a ScoreRunner needs.
//
// # Fields
//
//   - Graph: Required. The fully built graph; not mutated by the runner.
//   - Reference: Required. Name of the reference actor ("Kevin Bacon").
//   - Input: Required. Source of query lines.
//   - Out: Optional. Destination for score lines. Default: os.Stdout.
//   - ErrOut: Optional. Destination for per-query errors. Default: os.Stderr.
//   - TracePath: Optional. Also print the hop chain for each score.
//   - Logger: Optional. Default: logging.Default().
type ScoreRunnerConfig struct {
	Graph     *index.Graph
	Reference string
	Input     InputReader
	Out       io.Writer
	ErrOut    io.Writer
	TracePath bool
	Logger    *logging.Logger
}

// ScoreRunner drives the interactive query loop: one actor name per
// input line, one score line per query.
//
// # Description
//
// For each line the runner resolves the actor by exact name. An
// unknown name is a recoverable error: it is reported on ErrOut,
// latches the failure flag, and the loop continues. A known actor is
// scored against the reference actor with BFS and the result printed
// as "Score: <n>", or "Score: No Bacon!" when unreachable. If the
// reference actor itself is absent from the graph, every query
// short-circuits to "Score: No Bacon!" without running BFS.
//
// # Thread Safety
//
// Not thread-safe. One runner per input stream.
type ScoreRunner struct {
	graph     *index.Graph
	reference string
	input     InputReader
	out       io.Writer
	errOut    io.Writer
	tracePath bool
	logger    *logging.Logger
	errSeen   bool
}

// NewScoreRunner creates a ScoreRunner from the given config,
// applying defaults for optional fields.
func NewScoreRunner(cfg ScoreRunnerConfig) *ScoreRunner {
	if cfg.Out == nil {
		cfg.Out = os.Stdout
	}
	if cfg.ErrOut == nil {
		cfg.ErrOut = os.Stderr
	}
	if cfg.Logger == nil {
		cfg.Logger = logging.Default()
	}
	return &ScoreRunner{
		graph:     cfg.Graph,
		reference: cfg.Reference,
		input:     cfg.Input,
		out:       cfg.Out,
		errOut:    cfg.ErrOut,
		tracePath: cfg.TracePath,
		logger:    cfg.Logger,
	}
}

// Failed reports whether any query failed to resolve. It feeds the
// process exit status: 0 only if every query resolved.
func (r *ScoreRunner) Failed() bool {
	return r.errSeen
}

// Run executes the query loop until end of input, a read error, or
// context cancellation.
//
// Returns nil on end of input; per-query lookup failures do not abort
// the loop (see Failed).
func (r *ScoreRunner) Run(ctx context.Context) error {
	refID, refFound := r.graph.FindActor(r.reference)
	if !refFound {
		r.logger.Warn("reference actor absent from dataset; all queries will report no score",
			"reference", r.reference)
	}

	if p, ok := r.input.(PromptingInputReader); ok {
		p.SetPrompt("? ")
	}

	for {
		// Check for context cancellation before blocking on input
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		line, err := r.input.ReadLine()
		if err != nil {
			if err == io.EOF {
				return nil
			}
			return fmt.Errorf("read query: %w", err)
		}

		// Skip empty input
		if line == "" {
			continue
		}

		if err := r.score(ctx, refID, refFound, line); err != nil {
			return err
		}
	}
}

// score resolves and reports a single query.
func (r *ScoreRunner) score(ctx context.Context, refID index.ActorID, refFound bool, name string) error {
	actorID, ok := r.graph.FindActor(name)
	if !ok {
		// Recoverable: latch the failure and keep going.
		r.errSeen = true
		notFound := &traversal.ActorNotFoundError{Name: name}
		fmt.Fprintf(r.errOut, "Error: %v\n", notFound)
		r.logger.Debug("query failed", "actor", name, "error", notFound)
		return nil
	}

	if !refFound {
		fmt.Fprintln(r.out, "Score: No Bacon!")
		return nil
	}

	if r.tracePath {
		result, err := traversal.ShortestPath(ctx, r.graph, actorID, refID)
		if err != nil {
			return err
		}
		r.printDistance(result.Distance)
		if result.Reachable() {
			fmt.Fprintln(r.out, ux.Chain(r.chainHops(result)))
		}
		return nil
	}

	distance, err := traversal.ShortestDistance(ctx, r.graph, refID, actorID)
	if err != nil {
		return err
	}
	r.printDistance(distance)
	return nil
}

// printDistance writes the score line. The exact wording is the
// output contract; keep it byte-stable.
func (r *ScoreRunner) printDistance(distance int) {
	if distance == traversal.Unreachable {
		fmt.Fprintln(r.out, "Score: No Bacon!")
		return
	}
	fmt.Fprintf(r.out, "Score: %d\n", distance)
}

// chainHops converts a traversal result into renderable hops.
func (r *ScoreRunner) chainHops(result *traversal.Result) []ux.ChainHop {
	hops := make([]ux.ChainHop, 0, len(result.Path))
	for _, hop := range result.Path {
		ch := ux.ChainHop{Name: r.graph.Actor(hop.Actor).Name}
		if hop.Movie != index.NoMovie {
			ch.Via = r.graph.Movie(hop.Movie).Title
		}
		hops = append(hops, ch)
	}
	return hops
}
