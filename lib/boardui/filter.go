// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// FilterModel holds the search bar state. The actual matching lives
// in board.Matches; this type owns only input editing and rendering.
type FilterModel struct {
	// Input is the current search query text.
	Input string

	// Active is true when the search bar has keyboard focus (the
	// user pressed / to start typing).
	Active bool
}

// HandleRune processes a character typed while the search bar is
// active. Returns true if the input changed.
func (filter *FilterModel) HandleRune(character rune) bool {
	filter.Input += string(character)
	return true
}

// HandleBackspace removes the last character from the search input.
// Returns true if the input changed.
func (filter *FilterModel) HandleBackspace() bool {
	if len(filter.Input) == 0 {
		return false
	}
	runes := []rune(filter.Input)
	filter.Input = string(runes[:len(runes)-1])
	return true
}

// Clear resets the search input and deactivates the bar.
func (filter *FilterModel) Clear() {
	filter.Input = ""
	filter.Active = false
}

// View renders the search bar. When active, shows the input with a
// cursor. When inactive with text, shows the query as a subtle
// indicator. When inactive and empty, returns the empty string.
func (filter *FilterModel) View(theme tui.Theme, width int) string {
	if !filter.Active && filter.Input == "" {
		return ""
	}

	if filter.Active {
		cursor := lipgloss.NewStyle().
			Foreground(theme.HeaderForeground).
			Bold(true).
			Render("▎")
		return lipgloss.NewStyle().
			Foreground(theme.NormalText).
			Width(width).
			Render(" / " + filter.Input + cursor)
	}

	return lipgloss.NewStyle().
		Foreground(theme.FaintText).
		Width(width).
		Render(" search: " + filter.Input)
}
