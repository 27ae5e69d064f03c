// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"strings"

	"github.com/charmbracelet/x/ansi"
)

// SpliceOverlay replaces a rectangular region of a rendered view with
// overlay content. The overlay lines are placed starting at (anchorX,
// anchorY) in screen coordinates. Uses ANSI-aware truncation so escape
// sequences in the original view survive on both sides of the overlay.
//
// The board uses this for every floating element: the drag ghost that
// follows the pointer, status-move dropdowns, and the job finder.
func SpliceOverlay(view string, overlayLines []string, anchorX, anchorY int) string {
	if len(overlayLines) == 0 {
		return view
	}

	viewLines := strings.Split(view, "\n")
	overlayWidth := ansi.StringWidth(overlayLines[0])

	for index, overlayLine := range overlayLines {
		viewLineIndex := anchorY + index
		if viewLineIndex < 0 || viewLineIndex >= len(viewLines) {
			continue
		}

		viewLine := viewLines[viewLineIndex]
		viewLineWidth := ansi.StringWidth(viewLine)

		// Build: prefix + reset + overlay + reset + suffix.
		var result strings.Builder
		if anchorX > 0 {
			result.WriteString(ansi.Truncate(viewLine, anchorX, ""))
		}
		result.WriteString("\x1b[0m")
		result.WriteString(overlayLine)
		result.WriteString("\x1b[0m")

		suffixStart := anchorX + overlayWidth
		if suffixStart < viewLineWidth {
			result.WriteString(ansi.TruncateLeft(viewLine, suffixStart, ""))
		}

		viewLines[viewLineIndex] = result.String()
	}

	return strings.Join(viewLines, "\n")
}

// ClampAnchor shifts an overlay anchor so a box of the given size
// stays fully on screen. Keeps drag ghosts and dropdowns visible when
// the pointer nears the right or bottom edge.
func ClampAnchor(anchorX, anchorY, boxWidth, boxHeight, screenWidth, screenHeight int) (int, int) {
	if anchorX+boxWidth > screenWidth {
		anchorX = screenWidth - boxWidth
	}
	if anchorX < 0 {
		anchorX = 0
	}
	if anchorY+boxHeight > screenHeight {
		anchorY = screenHeight - boxHeight
	}
	if anchorY < 0 {
		anchorY = 0
	}
	return anchorX, anchorY
}
