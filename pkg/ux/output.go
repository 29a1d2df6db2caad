// Copyright (C) 2025 Aleutian AI (jinterlante@aleutian.ai)
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published by
// the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
// See the LICENSE.txt file for the full license text.

// Package ux provides terminal output styling for the bacon CLI.
//
// Styling is applied to banners, errors, and path rendering only. The
// score lines themselves ("Score: <n>", "Score: No Bacon!") are part of
// the output contract and are printed unstyled on stdout so they stay
// machine-parseable.
package ux

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-isatty"
)

// Bacon color palette - warm smokehouse reds and ambers
var (
	ColorEmber  = lipgloss.Color("#E85D3A") // Ember orange - highlights
	ColorMaple  = lipgloss.Color("#C9823B") // Maple amber - secondary elements
	ColorCrisp  = lipgloss.Color("#F4D03F") // Crisp gold - warnings
	ColorSmoke  = lipgloss.Color("#5C5650") // Smoke gray - muted text
	ColorHickoy = lipgloss.Color("#8A4B2D") // Hickory brown - borders

	// Semantic colors
	ColorSuccess = lipgloss.Color("#7DC97D")
	ColorError   = lipgloss.Color("#E74C3C")
)

// Styles provides pre-configured lipgloss styles.
var Styles = struct {
	Title     lipgloss.Style
	Bold      lipgloss.Style
	Muted     lipgloss.Style
	Success   lipgloss.Style
	Warning   lipgloss.Style
	Error     lipgloss.Style
	Highlight lipgloss.Style
	Box       lipgloss.Style
}{
	Title:     lipgloss.NewStyle().Bold(true).Foreground(ColorEmber),
	Bold:      lipgloss.NewStyle().Bold(true),
	Muted:     lipgloss.NewStyle().Foreground(ColorSmoke),
	Success:   lipgloss.NewStyle().Foreground(ColorSuccess),
	Warning:   lipgloss.NewStyle().Foreground(ColorCrisp),
	Error:     lipgloss.NewStyle().Foreground(ColorError),
	Highlight: lipgloss.NewStyle().Foreground(ColorEmber).Bold(true),
	Box: lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(ColorHickoy).
		Padding(0, 1),
}

// plain disables styling when stderr is not a terminal (piped output,
// CI). Overridable for tests via SetPlain.
var plain = !isatty.IsTerminal(os.Stderr.Fd()) && !isatty.IsCygwinTerminal(os.Stderr.Fd())

// SetPlain forces styled or unstyled output regardless of TTY state.
func SetPlain(p bool) {
	plain = p
}

// Title prints a styled banner line to stderr.
func Title(text string) {
	if plain {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintln(os.Stderr, Styles.Title.Render(text))
}

// Info prints an informational message to stderr.
func Info(text string) {
	if plain {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", Styles.Muted.Render("│"), text)
}

// Muted prints secondary text to stderr.
func Muted(text string) {
	if plain {
		fmt.Fprintln(os.Stderr, text)
		return
	}
	fmt.Fprintln(os.Stderr, Styles.Muted.Render(text))
}

// Error prints an error message to stderr.
func Error(text string) {
	if plain {
		fmt.Fprintf(os.Stderr, "Error: %s\n", text)
		return
	}
	fmt.Fprintf(os.Stderr, "%s %s\n", Styles.Error.Render("✗"), Styles.Error.Render(text))
}

// Chain renders a hop chain ("A ─[Movie]→ B ─[Movie]→ C") with the
// connecting movies muted and the endpoints highlighted.
func Chain(hops []ChainHop) string {
	if len(hops) == 0 {
		return ""
	}

	var b strings.Builder
	for i, hop := range hops {
		if i > 0 {
			if plain {
				b.WriteString(fmt.Sprintf(" -[%s]-> ", hop.Via))
			} else {
				b.WriteString(Styles.Muted.Render(fmt.Sprintf(" ─[%s]→ ", hop.Via)))
			}
		}
		name := hop.Name
		if !plain && (i == 0 || i == len(hops)-1) {
			name = Styles.Highlight.Render(name)
		}
		b.WriteString(name)
	}
	return b.String()
}

// ChainHop is one step of a rendered hop chain. Via is empty on the
// first hop.
type ChainHop struct {
	Name string
	Via  string
}
