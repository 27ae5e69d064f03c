// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

// Package tui provides shared terminal user interface components for
// jobdeck's board view: the color theme, overlay splicing for
// floating elements (drag ghost, dropdowns, the job finder), dropdown
// menus, proportional scrollbars, change-heat animation, and fzf
// fuzzy matching.
//
// The boardui package owns layout and domain rendering; everything
// here is presentation machinery with no knowledge of columns or
// gestures beyond the rectangles it is asked to draw.
package tui
