// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/jobdeck/lib/board"
	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// renderHeader produces the single-line pipeline summary: a segmented
// progress bar proportional to each active status's share of the
// collection, the archived remainder dimmed at the tail, and the
// totals right-aligned.
func renderHeader(
	theme tui.Theme,
	segments []board.Segment,
	archivedCount int,
	totalJobCount int,
	width int,
) string {
	stats := fmt.Sprintf(" %d active · %d archived · %d total ",
		totalJobCount-archivedCount, archivedCount, totalJobCount)
	statsRendered := lipgloss.NewStyle().Foreground(theme.FaintText).Render(stats)

	barWidth := width - ansi.StringWidth(stats)
	if barWidth < 4 {
		return statsRendered
	}

	if totalJobCount == 0 {
		empty := lipgloss.NewStyle().
			Foreground(theme.BorderColor).
			Render(strings.Repeat("─", barWidth))
		return empty + statsRendered
	}

	var builder strings.Builder
	consumed := 0
	cumulative := 0
	for position, segment := range segments {
		cumulative += segment.Count
		// Cumulative rounding keeps the bar exactly barWidth wide
		// regardless of per-segment rounding error.
		boundary := cumulative * barWidth / totalJobCount
		span := boundary - consumed
		if span <= 0 {
			continue
		}
		builder.WriteString(renderSegmentSpan(
			theme, segment.Status.Name, segment.Count, span,
			theme.StatusColor(segment.Status, position),
		))
		consumed += span
	}

	// Archived tail fills whatever the active segments left.
	if tail := barWidth - consumed; tail > 0 {
		builder.WriteString(lipgloss.NewStyle().
			Foreground(theme.ArchivedForeground).
			Render(strings.Repeat("░", tail)))
	}

	return builder.String() + statsRendered
}

// renderSegmentSpan draws one colored bar segment, embedding the
// status label when the span is wide enough to hold it.
func renderSegmentSpan(theme tui.Theme, name string, count, span int, color lipgloss.Color) string {
	label := fmt.Sprintf(" %s %d ", name, count)
	if ansi.StringWidth(label) > span {
		label = fmt.Sprintf(" %d ", count)
	}
	if ansi.StringWidth(label) > span {
		label = ""
	}
	pad := span - ansi.StringWidth(label)
	left := pad / 2
	right := pad - left

	return lipgloss.NewStyle().
		Foreground(theme.HeaderForeground).
		Background(color).
		Render(strings.Repeat(" ", left) + label + strings.Repeat(" ", right))
}
