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

// Graph holds the actor and movie arenas plus the by-name actor lookup.
//
// # Description
//
// Graph is the single owner of all Actor and Movie records for its
// lifetime. Records are created during dataset parsing and never
// removed; membership links are non-owning IDs into the arenas.
//
// # Thread Safety
//
// Mutating methods (GetOrCreateActor, AddMovie, Link) must only be
// called during the single-threaded build phase. All read methods are
// safe for concurrent use once building has finished.
type Graph struct {
	actors []Actor
	movies []Movie
	byName map[string]ActorID
	links  int
}

// NewGraph creates an empty Graph ready for building.
func NewGraph() *Graph {
	return &Graph{
		actors: make([]Actor, 0),
		movies: make([]Movie, 0),
		byName: make(map[string]ActorID),
	}
}

// FindActor looks up an actor by exact, case-sensitive name.
//
// # Outputs
//
//   - ActorID: The actor's ID, or NoActor if absent.
//   - bool: True if the actor exists.
func (g *Graph) FindActor(name string) (ActorID, bool) {
	id, ok := g.byName[name]
	if !ok {
		return NoActor, false
	}
	return id, true
}

// GetOrCreateActor returns the actor with the given name, registering
// a new record with an empty movie list if the name is unseen.
//
// Insertion order is preserved: the first occurrence of a name in the
// dataset fixes the actor's position in the arena, which keeps
// traversal order deterministic across runs.
func (g *Graph) GetOrCreateActor(name string) ActorID {
	if id, ok := g.byName[name]; ok {
		return id
	}
	id := ActorID(len(g.actors))
	g.actors = append(g.actors, Actor{
		ID:     id,
		Name:   name,
		Movies: nil,
	})
	g.byName[name] = id
	return id
}

// AddMovie registers a new movie record with an empty cast.
//
// Every call creates a distinct record, even for a title that has been
// seen before; repeated headings in the dataset intentionally do not
// merge casts.
func (g *Graph) AddMovie(title string) MovieID {
	id := MovieID(len(g.movies))
	g.movies = append(g.movies, Movie{
		ID:    id,
		Title: title,
		Cast:  nil,
	})
	return id
}

// Link records that the actor appears in the movie.
//
// # Description
//
// The link is bidirectional: the movie is appended to the actor's
// movie list and the actor to the movie's cast, in one step, so the
// two lists can never disagree. Re-linking an already-linked pair is
// a no-op, not an error; the check is against the movie's cast.
func (g *Graph) Link(actor ActorID, movie MovieID) {
	m := &g.movies[movie]
	for _, member := range m.Cast {
		if member == actor {
			return
		}
	}
	m.Cast = append(m.Cast, actor)
	a := &g.actors[actor]
	a.Movies = append(a.Movies, movie)
	g.links++
}

// Actor returns the actor record for the given ID.
//
// The returned pointer references arena memory; callers must treat it
// as read-only.
func (g *Graph) Actor(id ActorID) *Actor {
	return &g.actors[id]
}

// Movie returns the movie record for the given ID.
//
// The returned pointer references arena memory; callers must treat it
// as read-only.
func (g *Graph) Movie(id MovieID) *Movie {
	return &g.movies[id]
}

// NumActors returns the number of registered actors.
func (g *Graph) NumActors() int {
	return len(g.actors)
}

// NumMovies returns the number of registered movies.
func (g *Graph) NumMovies() int {
	return len(g.movies)
}

// Stats returns actor, movie, and link counts for the graph.
func (g *Graph) Stats() Stats {
	return Stats{
		Actors: len(g.actors),
		Movies: len(g.movies),
		Links:  g.links,
	}
}
