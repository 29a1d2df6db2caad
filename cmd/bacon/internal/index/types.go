// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.
//
// NOTE: This work is subject to additional terms under AGPL v3 Section 7.
// See the NOTICE.txt file for details regarding AI system attribution.

package index

// ActorID is a stable arena index identifying an actor within a Graph.
//
// IDs are assigned in insertion order starting at 0 and are never
// reused or invalidated; an ID from one Graph is meaningless in another.
type ActorID int32

// MovieID is a stable arena index identifying a movie within a Graph.
type MovieID int32

// Sentinel IDs for "no entity".
const (
	NoActor ActorID = -1
	NoMovie MovieID = -1
)

// Actor is a graph node: a named entity whose distance to the
// reference actor is queried.
//
// Movies holds the IDs of every movie the actor appears in, in the
// order the links were made while parsing the dataset. The slice is
// read-only after the build phase.
//
// Identity is by Name: no two actors in one Graph share a name.
type Actor struct {
	ID     ActorID   `json:"id"`
	Name   string    `json:"name"`
	Movies []MovieID `json:"movies"`
}

// Movie is a named grouping entity; it induces adjacency between all
// actors in its cast.
//
// Movies are NOT de-duplicated by title: every heading line in the
// dataset creates a distinct record, even when the title repeats.
// Cast preserves insertion order and is read-only after the build phase.
type Movie struct {
	ID    MovieID   `json:"id"`
	Title string    `json:"title"`
	Cast  []ActorID `json:"cast"`
}

// Stats summarizes the size of a built Graph.
type Stats struct {
	Actors int `json:"actors"`
	Movies int `json:"movies"`
	Links  int `json:"links"`
}
