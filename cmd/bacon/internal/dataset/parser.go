// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

// Package dataset parses the line-oriented movie/actor dataset format
// into an index.Graph.
//
// # Grammar
//
// The format is line-oriented with three line kinds:
//
//   - A line containing a colon is a movie heading. The title is
//     everything after the first colon and the single character that
//     follows it (the separating space); no further trimming applies.
//   - A line whose first character is whitespace, or an empty line,
//     is a separator and is ignored.
//   - Any other line is an actor name, taken verbatim.
//
// Actor lines attach to the most recent movie heading. An actor line
// before any heading is a fatal MalformedInputError.
package dataset

import (
	"bufio"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode"

	"github.com/AleutianAI/BaconLocal/cmd/bacon/internal/index"
)

// maxLineBytes bounds a single dataset line. Titles and names are
// short in practice; 1 MiB leaves generous headroom.
const maxLineBytes = 1 << 20

// Stats summarizes one parse run.
type Stats struct {
	// Lines is the total number of input lines read, separators included.
	Lines int `json:"lines"`

	// Movies is the number of heading lines seen (one record each;
	// repeated titles are not merged).
	Movies int `json:"movies"`

	// Actors is the number of distinct actor names registered.
	Actors int `json:"actors"`

	// Links is the number of actor-movie memberships created.
	// Idempotent re-links do not count.
	Links int `json:"links"`

	// Checksum is the hex SHA-256 of the raw dataset bytes. It keys
	// cached scores and identifies the loaded snapshot in the API.
	Checksum string `json:"checksum"`
}

// Parse reads the dataset from r and builds it into g.
//
// # Description
//
// Parse consumes the entire reader, registering movies and actors and
// wiring bidirectional membership links. The graph passed in is
// usually empty; parsing into a non-empty graph appends to it.
//
// On a grammar violation the returned error wraps ErrMalformedInput
// and g must be discarded: build-phase errors taint the whole graph.
//
// # Outputs
//
//   - *Stats: Parse counters and the dataset checksum.
//   - error: Non-nil on read failure or malformed input.
//
// # Thread Safety
//
// Not safe for concurrent use with the same Graph. Parse is the build
// phase; see the index package for the lifecycle contract.
func Parse(r io.Reader, g *index.Graph) (*Stats, error) {
	stats := &Stats{}
	hash := sha256.New()

	scanner := bufio.NewScanner(io.TeeReader(r, hash))
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)

	current := index.NoMovie
	for scanner.Scan() {
		stats.Lines++
		line := scanner.Text()

		// Blank line or leading whitespace: separator.
		if line == "" || unicode.IsSpace(rune(line[0])) {
			continue
		}

		if idx := strings.IndexByte(line, ':'); idx >= 0 {
			// Movie heading. The title starts after ": "; a heading
			// with nothing after the colon yields an empty title.
			title := ""
			if idx+2 <= len(line) {
				title = line[idx+2:]
			}
			current = g.AddMovie(title)
			stats.Movies++
			continue
		}

		// Actor line.
		if current == index.NoMovie {
			return nil, &MalformedInputError{Line: stats.Lines, Text: line}
		}
		actor := g.GetOrCreateActor(line)
		before := len(g.Actor(actor).Movies)
		g.Link(actor, current)
		if len(g.Actor(actor).Movies) > before {
			stats.Links++
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading dataset: %w", err)
	}

	stats.Actors = g.NumActors()
	stats.Checksum = hex.EncodeToString(hash.Sum(nil))
	return stats, nil
}

// ParseFile opens path and parses it into g.
//
// The open error is returned wrapped so callers can distinguish an
// unreadable dataset (fatal before any parsing) from malformed input.
func ParseFile(path string, g *index.Graph) (*Stats, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening dataset %s: %w", path, err)
	}
	defer f.Close()

	return Parse(f, g)
}
