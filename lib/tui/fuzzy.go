// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package tui

import (
	"github.com/junegunn/fzf/src/algo"
	"github.com/junegunn/fzf/src/util"
)

func init() {
	// fzf's matcher needs its scoring tables built once before use;
	// without this call FuzzyMatchV2 never matches anything.
	algo.Init("default")
}

// FuzzyResult holds the outcome of matching a pattern against text.
type FuzzyResult struct {
	// Matched is true when every pattern rune was found in order.
	Matched bool

	// Score ranks match quality; higher is better. Comparable only
	// across candidates for the same pattern.
	Score int

	// Positions are the rune indices in the text that matched, for
	// highlight rendering. Ascending order.
	Positions []int
}

// NewFuzzySlab allocates the scratch memory fzf's matcher reuses
// across calls. One slab per matching pass; not safe to share across
// goroutines.
func NewFuzzySlab() *util.Slab {
	return util.MakeSlab(100*1024, 2048)
}

// FuzzyMatch runs fzf's V2 fuzzy matching algorithm against a single
// text candidate. Case-insensitive with Unicode normalization, the
// configuration the job finder wants for company and title matching.
// The pattern is the query as runes; pass the same slab for every
// candidate in one pass.
func FuzzyMatch(text string, pattern []rune, slab *util.Slab) FuzzyResult {
	if len(pattern) == 0 {
		return FuzzyResult{Matched: true}
	}

	chars := util.ToChars([]byte(text))
	result, positions := algo.FuzzyMatchV2(false, true, true, &chars, pattern, true, slab)
	if result.Start < 0 {
		return FuzzyResult{}
	}

	matched := FuzzyResult{Matched: true, Score: result.Score}
	if positions != nil {
		// fzf returns positions in reverse order; flip them so
		// highlight rendering can walk the text forward.
		matched.Positions = make([]int, len(*positions))
		for index, position := range *positions {
			matched.Positions[len(*positions)-1-index] = position
		}
	}
	return matched
}
