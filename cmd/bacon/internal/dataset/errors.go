// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package dataset

import (
	"errors"
	"fmt"
)

// Sentinel errors for dataset parsing.
var (
	// ErrMalformedInput indicates the dataset violates the line grammar.
	// Build-phase errors are fatal: a malformed dataset taints the whole
	// graph, so parsing never resumes past one.
	ErrMalformedInput = errors.New("malformed dataset input")
)

// MalformedInputError reports an actor line with no preceding movie
// heading, the one way the line grammar can be violated.
type MalformedInputError struct {
	Line int    // 1-based line number in the dataset
	Text string // the offending line, verbatim
}

// Error implements the error interface.
func (e *MalformedInputError) Error() string {
	return fmt.Sprintf("line %d: actor %q appears before any movie heading", e.Line, e.Text)
}

// Unwrap returns the sentinel error.
func (e *MalformedInputError) Unwrap() error {
	return ErrMalformedInput
}
