// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package boardui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/bureau-foundation/jobdeck/lib/jobindex"
	"github.com/bureau-foundation/jobdeck/lib/schema/job"
	"github.com/bureau-foundation/jobdeck/lib/tui"
)

// columnContext carries everything the column renderer needs from
// board state for one status column.
type columnContext struct {
	Status       job.Status
	StatusColor  lipgloss.Color
	Entries      []jobindex.Entry
	Width        int // Total column footprint including the scrollbar.
	Height       int // Lines available including the header row.
	ScrollOffset int // In cards, not lines.
	Focused      bool
	DropTarget   bool   // Column is hovered by an active drag or pending move.
	SelectedID   string // Board-wide stable selection.
	Query        string
	Heat         *tui.HeatTracker
	Now          time.Time
}

// visibleCardCount returns how many cards fit below the column header.
func visibleCardCount(columnHeight int) int {
	contentHeight := columnHeight - 1
	if contentHeight < 0 {
		return 0
	}
	return contentHeight / CardHeight
}

// renderColumn produces one status column: a header line with the
// status name and count, then the visible card window, then a
// right-edge scrollbar when cards overflow.
func renderColumn(theme tui.Theme, context columnContext) string {
	contentHeight := context.Height - 1
	innerWidth := context.Width - 1 // One column reserved for the scrollbar.
	if innerWidth < 2 {
		innerWidth = 2
	}

	header := renderColumnHeader(theme, context, innerWidth)

	visible := visibleCardCount(context.Height)
	start := context.ScrollOffset
	if start > len(context.Entries) {
		start = len(context.Entries)
	}
	end := start + visible
	if end > len(context.Entries) {
		end = len(context.Entries)
	}

	lines := make([]string, 0, contentHeight)
	for _, entry := range context.Entries[start:end] {
		state := cardState{
			Selected: entry.ID == context.SelectedID && context.Focused,
			Hot:      context.Heat != nil && context.Heat.Heat(entry.ID, context.Now) > 0,
			Query:    context.Query,
		}
		if state.Hot {
			state.HeatKind = context.Heat.Kind(entry.ID)
		}
		lines = append(lines, renderCard(theme, innerWidth, entry, state)...)
		lines = append(lines, "")
	}
	for len(lines) < contentHeight {
		lines = append(lines, "")
	}
	lines = lines[:contentHeight]

	// Pad every line to the inner width so the horizontal join keeps
	// columns aligned.
	for index, line := range lines {
		pad := innerWidth - ansi.StringWidth(line)
		if pad > 0 {
			lines[index] = line + strings.Repeat(" ", pad)
		}
	}

	cardsBlock := strings.Join(lines, "\n")

	if len(context.Entries) > visible {
		scrollbar := tui.RenderScrollbar(
			theme, contentHeight,
			len(context.Entries), visible, context.ScrollOffset,
			context.Focused,
		)
		cardsBlock = lipgloss.JoinHorizontal(lipgloss.Top, cardsBlock, scrollbar)
	} else {
		blank := strings.TrimRight(strings.Repeat(" \n", contentHeight), "\n")
		cardsBlock = lipgloss.JoinHorizontal(lipgloss.Top, cardsBlock, blank)
	}

	return header + "\n" + cardsBlock
}

// renderColumnHeader renders the status name, count, and drop-target
// indicator for one column.
func renderColumnHeader(theme tui.Theme, context columnContext, innerWidth int) string {
	marker := "●"
	if context.DropTarget {
		marker = "▶"
	}
	text := fmt.Sprintf(" %s %s %d", marker, context.Status.Name, len(context.Entries))
	text = ansi.Truncate(text, context.Width, "…")

	style := lipgloss.NewStyle().Foreground(context.StatusColor).Bold(context.Focused)
	if context.DropTarget {
		style = lipgloss.NewStyle().Foreground(theme.DropTargetBorder).Bold(true)
	}

	pad := context.Width - ansi.StringWidth(text)
	if pad < 0 {
		pad = 0
	}
	return style.Render(text) + strings.Repeat(" ", pad)
}
