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

import (
	"testing"
)

// TestGraph_GetOrCreateActor_Identity tests that repeated names resolve
// to the same record.
func TestGraph_GetOrCreateActor_Identity(t *testing.T) {
	g := NewGraph()

	a := g.GetOrCreateActor("Kevin Bacon")
	b := g.GetOrCreateActor("Kevin Bacon")

	if a != b {
		t.Errorf("GetOrCreateActor returned %d then %d for the same name", a, b)
	}
	if g.NumActors() != 1 {
		t.Errorf("NumActors = %d, want 1", g.NumActors())
	}
}

// TestGraph_FindActor_CaseSensitive tests exact-match lookup semantics.
func TestGraph_FindActor_CaseSensitive(t *testing.T) {
	g := NewGraph()
	g.GetOrCreateActor("Kevin Bacon")

	if _, ok := g.FindActor("kevin bacon"); ok {
		t.Error("FindActor matched a name with different case")
	}
	if _, ok := g.FindActor("Kevin Bacon"); !ok {
		t.Error("FindActor failed to match an exact name")
	}
	if id, ok := g.FindActor("Nobody"); ok || id != NoActor {
		t.Errorf("FindActor on absent name = (%d, %v), want (NoActor, false)", id, ok)
	}
}

// TestGraph_InsertionOrder tests that actor IDs follow first-seen order.
func TestGraph_InsertionOrder(t *testing.T) {
	g := NewGraph()

	names := []string{"A", "B", "C", "B", "A", "D"}
	for _, n := range names {
		g.GetOrCreateActor(n)
	}

	want := []string{"A", "B", "C", "D"}
	if g.NumActors() != len(want) {
		t.Fatalf("NumActors = %d, want %d", g.NumActors(), len(want))
	}
	for i, name := range want {
		if got := g.Actor(ActorID(i)).Name; got != name {
			t.Errorf("Actor(%d).Name = %q, want %q", i, got, name)
		}
	}
}

// TestGraph_Link_Bidirectional tests that one Link call updates both sides.
func TestGraph_Link_Bidirectional(t *testing.T) {
	g := NewGraph()
	a := g.GetOrCreateActor("Kevin Bacon")
	m := g.AddMovie("Footloose")

	g.Link(a, m)

	actor := g.Actor(a)
	movie := g.Movie(m)
	if len(actor.Movies) != 1 || actor.Movies[0] != m {
		t.Errorf("actor.Movies = %v, want [%d]", actor.Movies, m)
	}
	if len(movie.Cast) != 1 || movie.Cast[0] != a {
		t.Errorf("movie.Cast = %v, want [%d]", movie.Cast, a)
	}
}

// TestGraph_Link_Idempotent tests that re-linking a pair duplicates nothing.
func TestGraph_Link_Idempotent(t *testing.T) {
	g := NewGraph()
	a := g.GetOrCreateActor("Kevin Bacon")
	m := g.AddMovie("Footloose")

	g.Link(a, m)
	g.Link(a, m)
	g.Link(a, m)

	if got := len(g.Actor(a).Movies); got != 1 {
		t.Errorf("actor movie list has %d entries after re-link, want 1", got)
	}
	if got := len(g.Movie(m).Cast); got != 1 {
		t.Errorf("movie cast has %d entries after re-link, want 1", got)
	}
	if got := g.Stats().Links; got != 1 {
		t.Errorf("Stats().Links = %d, want 1", got)
	}
}

// TestGraph_AddMovie_NoTitleDedup tests that repeated titles create
// distinct movie records.
func TestGraph_AddMovie_NoTitleDedup(t *testing.T) {
	g := NewGraph()

	m1 := g.AddMovie("Tremors")
	m2 := g.AddMovie("Tremors")

	if m1 == m2 {
		t.Error("AddMovie merged two headings with the same title")
	}
	if g.NumMovies() != 2 {
		t.Errorf("NumMovies = %d, want 2", g.NumMovies())
	}

	// Linking the same actor into both records keeps the lists separate.
	a := g.GetOrCreateActor("Kevin Bacon")
	g.Link(a, m1)
	g.Link(a, m2)
	if got := len(g.Actor(a).Movies); got != 2 {
		t.Errorf("actor movie list has %d entries, want 2", got)
	}
}

// TestGraph_Stats tests the size summary.
func TestGraph_Stats(t *testing.T) {
	g := NewGraph()
	m := g.AddMovie("Footloose")
	g.Link(g.GetOrCreateActor("Kevin Bacon"), m)
	g.Link(g.GetOrCreateActor("John Lithgow"), m)

	got := g.Stats()
	want := Stats{Actors: 2, Movies: 1, Links: 2}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
