// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"fmt"
	"slices"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// finderMaxResults caps the visible result list in the finder overlay.
const finderMaxResults = 10

// finderResult is one scored candidate in the job finder.
type finderResult struct {
	Entry     jobindex.Entry
	Score     int
	Positions []int // Matched rune indices in the candidate text.
}

// FinderModel is the fuzzy job finder overlay: type-to-filter across
// company and title with fzf scoring, enter to jump the board to the
// chosen card. Unlike the search bar, the finder never changes the
// board projection; it is a navigation shortcut.
type FinderModel struct {
	Input   string
	Results []finderResult
	Cursor  int
}

// finderCandidateText is the string the fuzzy matcher scores for an
// entry.
func finderCandidateText(entry jobindex.Entry) string {
	return entry.Content.Company + " " + entry.Content.Title
}

// Refresh rematches the query against the full collection. Called on
// every keystroke; one slab is shared across the pass.
func (finder *FinderModel) Refresh(entries []jobindex.Entry) {
	finder.Results = finder.Results[:0]
	pattern := []rune(strings.ToLower(finder.Input))
	slab := tui.NewFuzzySlab()

	for _, entry := range entries {
		match := tui.FuzzyMatch(finderCandidateText(entry), pattern, slab)
		if !match.Matched {
			continue
		}
		finder.Results = append(finder.Results, finderResult{
			Entry:     entry,
			Score:     match.Score,
			Positions: match.Positions,
		})
	}

	// Higher score first; stable so equal scores keep collection
	// order (most recent first).
	slices.SortStableFunc(finder.Results, func(a, b finderResult) int {
		return b.Score - a.Score
	})

	if finder.Cursor >= len(finder.Results) {
		finder.Cursor = 0
	}
}

// MoveUp moves the cursor up, wrapping to the bottom of the visible
// window.
func (finder *FinderModel) MoveUp() {
	if len(finder.Results) == 0 {
		return
	}
	finder.Cursor--
	if finder.Cursor < 0 {
		finder.Cursor = min(len(finder.Results), finderMaxResults) - 1
	}
}

// MoveDown moves the cursor down, wrapping to the top.
func (finder *FinderModel) MoveDown() {
	if len(finder.Results) == 0 {
		return
	}
	finder.Cursor++
	if finder.Cursor >= min(len(finder.Results), finderMaxResults) {
		finder.Cursor = 0
	}
}

// Selected returns the entry under the cursor.
func (finder *FinderModel) Selected() (jobindex.Entry, bool) {
	if finder.Cursor < 0 || finder.Cursor >= len(finder.Results) {
		return jobindex.Entry{}, false
	}
	return finder.Results[finder.Cursor].Entry, true
}

// Render produces the finder box lines for overlay splicing.
func (finder *FinderModel) Render(theme tui.Theme, screenWidth int) []string {
	width := 56
	if width > screenWidth-4 {
		width = screenWidth - 4
	}
	if width < 20 {
		width = 20
	}
	innerWidth := width - 2

	boxStyle := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.OverlayBackground)
	selectedStyle := lipgloss.NewStyle().
		Foreground(theme.SelectedForeground).
		Background(theme.SelectedBackground)
	matchStyle := lipgloss.NewStyle().
		Foreground(theme.OverlayForeground).
		Background(theme.SearchHighlightBackground).
		Bold(true)

	lines := make([]string, 0, finderMaxResults+2)

	prompt := "find: " + finder.Input + "▎"
	prompt = ansi.Truncate(prompt, innerWidth, "…")
	lines = append(lines, boxStyle.Bold(true).Render(
		" "+prompt+strings.Repeat(" ", max(0, innerWidth-ansi.StringWidth(prompt)))+" "))

	visible := finder.Results
	if len(visible) > finderMaxResults {
		visible = visible[:finderMaxResults]
	}
	for index, result := range visible {
		base := boxStyle
		highlight := matchStyle
		if index == finder.Cursor {
			base = selectedStyle
			highlight = selectedStyle.Bold(true)
		}
		line := renderFinderLine(result, innerWidth, base, highlight)
		lines = append(lines, base.Render(" ")+line+base.Render(" "))
	}

	if len(finder.Results) == 0 {
		empty := "no matches"
		lines = append(lines, boxStyle.Render(
			" "+empty+strings.Repeat(" ", max(0, innerWidth-len(empty)))+" "))
	} else if len(finder.Results) > finderMaxResults {
		more := fmt.Sprintf("… %d more", len(finder.Results)-finderMaxResults)
		lines = append(lines, boxStyle.Faint(true).Render(
			" "+more+strings.Repeat(" ", max(0, innerWidth-ansi.StringWidth(more)))+" "))
	}

	return lines
}

// renderFinderLine renders one result with matched runes highlighted.
func renderFinderLine(result finderResult, width int, base, highlight lipgloss.Style) string {
	text := finderCandidateText(result.Entry)
	runes := []rune(text)
	if len(runes) > width {
		runes = runes[:width-1]
		runes = append(runes, '…')
	}

	matched := make(map[int]bool, len(result.Positions))
	for _, position := range result.Positions {
		matched[position] = true
	}

	var builder strings.Builder
	for index, r := range runes {
		if matched[index] {
			builder.WriteString(highlight.Render(string(r)))
		} else {
			builder.WriteString(base.Render(string(r)))
		}
	}
	for index := len(runes); index < width; index++ {
		builder.WriteString(base.Render(" "))
	}
	return builder.String()
}
