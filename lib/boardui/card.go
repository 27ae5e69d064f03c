// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// CardHeight is the vertical footprint of one card in a column: two
// content lines plus a blank separator row. Zone registration and
// scroll math both depend on it matching the renderer.
const CardHeight = 3

// cardState carries the per-card render modifiers the column renderer
// resolves from board state.
type cardState struct {
	Selected bool
	Hot      bool
	HeatKind tui.HeatKind
	Query    string // Active search text, for match highlighting.
}

// renderCard produces the two content lines of a card at the given
// width. Line one is the company with the resume-fit badge right
// aligned; line two is the position title.
func renderCard(theme tui.Theme, width int, entry jobindex.Entry, state cardState) []string {
	background := lipgloss.Color("")
	foreground := theme.NormalText
	switch {
	case state.Selected:
		background = theme.SelectedBackground
		foreground = theme.SelectedForeground
	case state.Hot && state.HeatKind == tui.HeatRemove:
		background = theme.HotAccentRemove
	case state.Hot:
		background = theme.HotAccentPut
	}

	baseStyle := lipgloss.NewStyle().Foreground(foreground).Background(background)
	faintStyle := lipgloss.NewStyle().Foreground(theme.FaintText).Background(background)
	highlightStyle := lipgloss.NewStyle().
		Foreground(foreground).
		Background(theme.SearchHighlightBackground)

	badge := fitBadge(theme, entry.Content, background)
	badgeWidth := ansi.StringWidth(badge)

	companyWidth := width - 1 - badgeWidth
	if companyWidth < 1 {
		companyWidth = 1
	}
	company := ansi.Truncate(entry.Content.Company, companyWidth, "…")
	companyRendered := renderHighlighted(company, state.Query, baseStyle.Bold(true), highlightStyle)
	gap := companyWidth - ansi.StringWidth(company)
	lineOne := baseStyle.Render(" ") + companyRendered +
		baseStyle.Render(strings.Repeat(" ", gap)) + badge

	title := ansi.Truncate(entry.Content.Title, width-1, "…")
	titleRendered := renderHighlighted(title, state.Query, faintStyle, highlightStyle)
	titlePad := width - 1 - ansi.StringWidth(title)
	lineTwo := faintStyle.Render(" ") + titleRendered +
		faintStyle.Render(strings.Repeat(" ", titlePad))

	return []string{lineOne, lineTwo}
}

// fitBadge renders the resume analysis badge ("B 82%") or an empty
// string when the job has no analysis yet.
func fitBadge(theme tui.Theme, content job.Content, background lipgloss.Color) string {
	if content.ResumeAnalysis == nil {
		return ""
	}
	text := content.ResumeAnalysis.Grade
	if percentage := content.MatchPercentage(); percentage != job.MissingMatchPercentage {
		if text != "" {
			text += " "
		}
		text += fmt.Sprintf("%d%%", percentage)
	}
	if text == "" {
		return ""
	}
	return lipgloss.NewStyle().
		Foreground(theme.GradeColor(content.ResumeAnalysis.Grade)).
		Background(background).
		Render(text + " ")
}

// renderGhost produces the floating one-line copy of the dragged card
// rendered under the pointer.
func renderGhost(theme tui.Theme, entry jobindex.Entry) []string {
	style := lipgloss.NewStyle().
		Foreground(theme.GhostForeground).
		Background(theme.GhostBackground).
		Bold(true)
	text := entry.Content.Company
	if entry.Content.Title != "" {
		text += " · " + entry.Content.Title
	}
	return []string{style.Render(" " + ansi.Truncate(text, 40, "…") + " ")}
}

// renderHighlighted renders text with the first case-insensitive
// occurrence of query styled as a search match. Empty query or no
// occurrence renders the whole text in the base style.
func renderHighlighted(text, query string, baseStyle, highlightStyle lipgloss.Style) string {
	if query == "" {
		return baseStyle.Render(text)
	}
	trimmed := strings.TrimSpace(query)
	if trimmed == "" {
		return baseStyle.Render(text)
	}
	// Match rune-wise on the original string. Lowercasing the whole
	// text can change byte lengths (İ, the Kelvin sign), so byte
	// offsets from a lowered copy must not be applied to the original.
	textRunes := []rune(text)
	queryLength := len([]rune(trimmed))
	for start := 0; start+queryLength <= len(textRunes); start++ {
		candidate := string(textRunes[start : start+queryLength])
		if strings.EqualFold(candidate, trimmed) {
			return baseStyle.Render(string(textRunes[:start])) +
				highlightStyle.Render(candidate) +
				baseStyle.Render(string(textRunes[start+queryLength:]))
		}
	}
	return baseStyle.Render(text)
}
