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
	"github.com/spf13/cobra"
)

// --- Global Command Variables ---
var (
	tracePath       bool
	referenceActor  string
	graphJSONOutput bool
	serveListen     string

	rootCmd = &cobra.Command{
		Use:   "bacon",
		Short: "Compute degrees of separation between actors",
		Long: `Bacon builds an in-memory graph from a movie/actor dataset and
computes shortest-path distances ("Bacon numbers") between actors.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	// --- Score ---
	scoreCmd = &cobra.Command{
		Use:   "score DATASET",
		Short: "Interactively score actors against the reference actor",
		Long: `Parses the dataset once, then reads one actor name per line from
standard input until end of stream. For each name it prints
"Score: <n>" (the number of shared-movie hops to the reference actor)
or "Score: No Bacon!" when the actor is unreachable.

Exit status is 0 if every query resolved, 1 if any queried name was
absent from the dataset or the dataset could not be read.`,
		Args: cobra.ExactArgs(1),
		Run:  runScore, // Defined in cmd_score.go
	}

	// --- Graph inspection ---
	graphCmd = &cobra.Command{
		Use:   "graph",
		Short: "Inspect the actor/movie graph",
	}
	graphStatsCmd = &cobra.Command{
		Use:   "stats DATASET",
		Short: "Print actor, movie, and link counts for a dataset",
		Args:  cobra.ExactArgs(1),
		Run:   runGraphStats, // Defined in cmd_graph.go
	}
	graphPathCmd = &cobra.Command{
		Use:   "path DATASET FROM TO",
		Short: "Find the shortest chain between two actors",
		Long: `Computes the shortest chain of shared movies between two actors
and prints each hop with the connecting movie.

Examples:
  bacon graph path movies.txt "John Lithgow" "Kevin Bacon"
  bacon graph path movies.txt "X" "Y" --json`,
		Args: cobra.ExactArgs(3),
		Run:  runGraphPath, // Defined in cmd_graph.go
	}

	// --- Serve ---
	serveCmd = &cobra.Command{
		Use:   "serve [DATASET]",
		Short: "Serve score queries over HTTP",
		Long: `Builds the graph and serves score, path, and stats queries over an
HTTP API. The dataset file is watched for changes and reloaded without
dropping in-flight queries. The dataset path comes from the argument or
the 'dataset' key in config.yaml.`,
		Args: cobra.MaximumNArgs(1),
		Run:  runServe, // Defined in cmd_serve.go
	}
)

// init runs when the Go program starts
func init() {
	rootCmd.AddCommand(scoreCmd)
	scoreCmd.Flags().BoolVarP(&tracePath, "path", "l", false,
		"Also print the chain of actors and movies for each score")
	scoreCmd.Flags().StringVar(&referenceActor, "reference", "",
		"Reference actor to score against (default from config, \"Kevin Bacon\")")

	rootCmd.AddCommand(graphCmd)
	graphCmd.AddCommand(graphStatsCmd)
	graphCmd.AddCommand(graphPathCmd)
	graphCmd.PersistentFlags().BoolVar(&graphJSONOutput, "json", false,
		"Output as JSON")

	rootCmd.AddCommand(serveCmd)
	serveCmd.Flags().StringVar(&serveListen, "listen", "",
		"Bind address (default from config, localhost:8440)")
}
