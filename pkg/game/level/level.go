// Package level defines the fixed descent: nine circles, each with its own
// maze dimensions, fragment count, and guide requirement. The difficulty
// numbers are flat tuning data consumed by maze generation.
package level

import (
	"github.com/leonelquinteros/gotext"
)

// TotalLevels is the fixed number of circles in the descent
const TotalLevels = 9

// Difficulty is the per-level tuning record consumed by maze generation
type Difficulty struct {
	Width         int
	Height        int
	FragmentCount int

	// WantsGuide asks the placer for a guide entity; GuideRequired gates
	// the exit on finding it. Kept separate so a level may show the guide
	// without requiring him.
	WantsGuide    bool
	GuideRequired bool
}

// table holds one entry per level, index 0 = level 1. Dimensions stay odd so
// the carve lattice fills the whole interior.
var table = [TotalLevels]Difficulty{
	{Width: 15, Height: 11, FragmentCount: 3, WantsGuide: true, GuideRequired: true},
	{Width: 17, Height: 13, FragmentCount: 4, WantsGuide: true, GuideRequired: true},
	{Width: 19, Height: 15, FragmentCount: 5, WantsGuide: true, GuideRequired: true},
	{Width: 21, Height: 15, FragmentCount: 6, WantsGuide: true, GuideRequired: true},
	{Width: 23, Height: 17, FragmentCount: 7, WantsGuide: true, GuideRequired: true},
	{Width: 25, Height: 19, FragmentCount: 8, WantsGuide: false, GuideRequired: false},
	{Width: 27, Height: 21, FragmentCount: 9, WantsGuide: false, GuideRequired: false},
	{Width: 29, Height: 21, FragmentCount: 10, WantsGuide: false, GuideRequired: false},
	{Width: 31, Height: 23, FragmentCount: 12, WantsGuide: false, GuideRequired: false},
}

// ForLevel returns the difficulty record for the given level (1-based).
// Out-of-range levels clamp to the nearest table edge.
func ForLevel(n int) Difficulty {
	if n < 1 {
		n = 1
	}
	if n > TotalLevels {
		n = TotalLevels
	}
	return table[n-1]
}

// IsFinalLevel returns true if the given level (1-based) is the last circle
func IsFinalLevel(n int) bool {
	return n >= TotalLevels
}

// NextLevel returns the next level (1-based) for the given current level,
// or 0 if there is no next level
func NextLevel(n int) int {
	if n < 1 || n >= TotalLevels {
		return 0
	}
	return n + 1
}

// levelNameKeys are the gotext catalog keys for the circle names
var levelNameKeys = [TotalLevels]string{
	"LEVEL_LIMBO",
	"LEVEL_WINDS",
	"LEVEL_MIRE",
	"LEVEL_EMBERS",
	"LEVEL_IRON_WOOD",
	"LEVEL_BURNING_SANDS",
	"LEVEL_CHASM",
	"LEVEL_MALEBOLGE",
	"LEVEL_FROZEN_LAKE",
}

// Name returns the localized display name for the given level
func Name(n int) string {
	if n < 1 {
		n = 1
	}
	if n > TotalLevels {
		n = TotalLevels
	}
	return gotext.Get(levelNameKeys[n-1])
}
