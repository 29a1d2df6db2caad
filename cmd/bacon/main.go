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
	"os"

	"github.com/spf13/cobra"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/traversal"
	"github.com/AleutianAI/BaconLocal/pkg/logging"
	"github.com/AleutianAI/BaconLocal/pkg/ux"
)

var (
	config Config
	logger *logging.Logger
)

func main() {
	// Execute the root command. Cobra handles parsing the arguments.
	if err := rootCmd.Execute(); err != nil {
		ux.Error(err.Error())
		os.Exit(traversal.ExitError)
	}
	if logger != nil {
		logger.Close()
	}
}

func init() {
	rootCmd.PersistentPreRun = func(cmd *cobra.Command, args []string) {
		// config.yaml is optional; defaults apply when it is absent.
		cfg, err := LoadConfig("config.yaml")
		if err != nil {
			ux.Error(err.Error())
			os.Exit(traversal.ExitError)
		}
		config = cfg

		logger = logging.New(logging.Config{
			Level:   logging.ParseLevel(config.LogLevel),
			LogDir:  config.LogDir,
			Service: "bacon",
		})
	}
}
