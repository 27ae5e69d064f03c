// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/jobdeck/lib/schema/job"
)

// Theme defines the color palette for the jobdeck board. All colors
// use lipgloss ANSI 256-color codes for broad terminal compatibility;
// status colors come from the registry and may also be hex triplets.
type Theme struct {
	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// Selected card.
	SelectedBackground lipgloss.Color
	SelectedForeground lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Archived portion of the progress bar and its count label.
	ArchivedForeground lipgloss.Color

	// Resume grade badges, indexed by letter (A best). Unknown
	// grades fall back to FaintText.
	GradeA lipgloss.Color
	GradeB lipgloss.Color
	GradeC lipgloss.Color
	GradeD lipgloss.Color
	GradeF lipgloss.Color

	// Drag ghost: the floating copy of the card under the pointer.
	GhostBackground lipgloss.Color
	GhostForeground lipgloss.Color

	// Drop target highlight: the column the gesture currently hovers.
	DropTargetBorder lipgloss.Color

	// Animation accents: background tint for recently-changed cards.
	// HotAccentPut is used for created/updated jobs; HotAccentRemove
	// for jobs that left the collection.
	HotAccentPut    lipgloss.Color
	HotAccentRemove lipgloss.Color

	// Filter and finder match highlighting.
	SearchHighlightBackground lipgloss.Color

	// Floating menus (dropdowns, the finder).
	OverlayForeground lipgloss.Color
	OverlayBackground lipgloss.Color

	// SegmentFallbacks colors progress segments and column headers
	// for statuses whose registry entry has no color, cycled by
	// column position.
	SegmentFallbacks [5]lipgloss.Color
}

// GradeColor returns the badge color for a resume grade letter. Only
// the leading letter matters, so "B+" and "B-" share a color.
func (theme Theme) GradeColor(grade string) lipgloss.Color {
	if grade == "" {
		return theme.FaintText
	}
	switch grade[0] {
	case 'A', 'a':
		return theme.GradeA
	case 'B', 'b':
		return theme.GradeB
	case 'C', 'c':
		return theme.GradeC
	case 'D', 'd':
		return theme.GradeD
	case 'F', 'f':
		return theme.GradeF
	default:
		return theme.FaintText
	}
}

// StatusColor resolves a registry status to a display color: the
// registry's own color when set, otherwise a palette fallback cycled
// by the status's position in the ordered registry.
func (theme Theme) StatusColor(status job.Status, position int) lipgloss.Color {
	if status.Color != "" {
		return lipgloss.Color(status.Color)
	}
	if position < 0 {
		position = 0
	}
	return theme.SegmentFallbacks[position%len(theme.SegmentFallbacks)]
}

// DefaultTheme is the built-in dark-terminal color scheme.
var DefaultTheme = Theme{
	NormalText: lipgloss.Color("252"),
	FaintText:  lipgloss.Color("245"),

	SelectedBackground: lipgloss.Color("236"),
	SelectedForeground: lipgloss.Color("255"),

	HeaderForeground: lipgloss.Color("255"),
	BorderColor:      lipgloss.Color("240"),
	HelpText:         lipgloss.Color("241"),

	ArchivedForeground: lipgloss.Color("240"),

	GradeA: lipgloss.Color("114"), // green
	GradeB: lipgloss.Color("75"),  // blue
	GradeC: lipgloss.Color("220"), // amber
	GradeD: lipgloss.Color("208"), // orange
	GradeF: lipgloss.Color("196"), // red

	GhostBackground: lipgloss.Color("237"),
	GhostForeground: lipgloss.Color("255"),

	DropTargetBorder: lipgloss.Color("220"),

	HotAccentPut:    lipgloss.Color("58"), // dark amber background tint
	HotAccentRemove: lipgloss.Color("52"), // dark red background tint

	SearchHighlightBackground: lipgloss.Color("58"),

	OverlayForeground: lipgloss.Color("252"),
	OverlayBackground: lipgloss.Color("237"),

	SegmentFallbacks: [5]lipgloss.Color{
		lipgloss.Color("75"),  // blue
		lipgloss.Color("220"), // amber
		lipgloss.Color("114"), // green
		lipgloss.Color("196"), // red
		lipgloss.Color("245"), // gray
	},
}
