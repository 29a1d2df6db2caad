// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package traversal

import (
	"errors"
	"fmt"
)

// Exit codes for score queries.
const (
	ExitSuccess = 0 // All queries resolved (even when unreachable)
	ExitError   = 1 // Error (dataset unreadable, unknown actor, etc.)
	ExitBadArgs = 2 // Invalid arguments
)

// Sentinel errors for graph queries.
var (
	ErrActorNotFound = errors.New("actor not found")
	ErrTimeout       = errors.New("query timed out")
)

// ActorNotFoundError provides details about a missing actor name.
type ActorNotFoundError struct {
	Name string
}

// Error implements the error interface.
func (e *ActorNotFoundError) Error() string {
	return fmt.Sprintf("actor %q not found in dataset", e.Name)
}

// Unwrap returns the sentinel error.
func (e *ActorNotFoundError) Unwrap() error {
	return ErrActorNotFound
}
