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
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/traversal"
)

// graphQueryTimeout bounds one-shot graph commands.
const graphQueryTimeout = 30 * time.Second

// pathResult is the JSON shape of `graph path --json`.
type pathResult struct {
	From      string    `json:"from"`
	To        string    `json:"to"`
	Score     int       `json:"score"`
	Reachable bool      `json:"reachable"`
	Path      []pathHop `json:"path,omitempty"`
}

// pathHop is one step of a JSON hop chain. Movie is empty on the
// first hop.
type pathHop struct {
	Actor string `json:"actor"`
	Movie string `json:"movie,omitempty"`
}

// runGraphStats prints graph size counters for a dataset.
func runGraphStats(cmd *cobra.Command, args []string) {
	graph, err := buildGraph(args[0])
	if err != nil {
		outputGraphError("Failed to load dataset", err)
		os.Exit(traversal.ExitError)
	}

	stats := graph.Stats()
	if graphJSONOutput {
		outputGraphJSON(stats)
	} else {
		fmt.Printf("Actors: %d\nMovies: %d\nLinks:  %d\n",
			stats.Actors, stats.Movies, stats.Links)
	}

	os.Exit(traversal.ExitSuccess)
}

// runGraphPath computes the shortest chain between two actors.
func runGraphPath(cmd *cobra.Command, args []string) {
	ctx, cancel := context.WithTimeout(context.Background(), graphQueryTimeout)
	defer cancel()

	fromName, toName := args[1], args[2]

	graph, err := buildGraph(args[0])
	if err != nil {
		outputGraphError("Failed to load dataset", err)
		os.Exit(traversal.ExitError)
	}

	fromID, ok := graph.FindActor(fromName)
	if !ok {
		outputGraphError("Unknown actor", &traversal.ActorNotFoundError{Name: fromName})
		os.Exit(traversal.ExitError)
	}
	toID, ok := graph.FindActor(toName)
	if !ok {
		outputGraphError("Unknown actor", &traversal.ActorNotFoundError{Name: toName})
		os.Exit(traversal.ExitError)
	}

	result, err := traversal.ShortestPath(ctx, graph, fromID, toID)
	if err != nil {
		outputGraphError("Query failed", err)
		os.Exit(traversal.ExitError)
	}

	out := pathResult{
		From:      fromName,
		To:        toName,
		Score:     result.Distance,
		Reachable: result.Reachable(),
	}
	for _, hop := range result.Path {
		ph := pathHop{Actor: graph.Actor(hop.Actor).Name}
		if hop.Movie != index.NoMovie {
			ph.Movie = graph.Movie(hop.Movie).Title
		}
		out.Path = append(out.Path, ph)
	}

	if graphJSONOutput {
		outputGraphJSON(out)
	} else {
		outputPathText(out)
	}

	os.Exit(traversal.ExitSuccess)
}

// =============================================================================
// HELPER FUNCTIONS
// =============================================================================

// outputGraphError outputs an error message.
func outputGraphError(msg string, err error) {
	if graphJSONOutput {
		result := map[string]interface{}{
			"success": false,
			"error":   err.Error(),
		}
		encoder := json.NewEncoder(os.Stdout)
		encoder.SetIndent("", "  ")
		encoder.Encode(result)
	} else {
		fmt.Fprintf(os.Stderr, "Error: %s: %v\n", msg, err)
	}
}

// outputGraphJSON outputs any result as JSON.
func outputGraphJSON(result interface{}) {
	encoder := json.NewEncoder(os.Stdout)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(result); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to encode JSON: %v\n", err)
		os.Exit(traversal.ExitError)
	}
}

// outputPathText outputs a path result as text.
func outputPathText(result pathResult) {
	if !result.Reachable {
		fmt.Printf("No path between %s and %s\n", result.From, result.To)
		return
	}

	for i, hop := range result.Path {
		if i == 0 {
			fmt.Printf("  %s\n", hop.Actor)
			continue
		}
		fmt.Printf("    shares %q with\n  %s\n", hop.Movie, hop.Actor)
	}
	fmt.Printf("\nScore: %d\n", result.Score)
}
