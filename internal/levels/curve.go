// Package levels implements the chat progression level curve.
//
// The XP required to advance from level L to L+1 is
// BaseXP * L * ScalingFactor^(L-1), truncated to an integer. Levels are
// never stored; callers derive them from cumulative XP on every read so
// stored level and XP cannot drift apart.
package levels

import "math"

// Curve holds the tunable parameters of the progression curve.
type Curve struct {
	BaseXP        int
	ScalingFactor float64
}

// DefaultCurve matches the documented defaults (level_multiplier=100,
// level_scaling_factor=1.2).
var DefaultCurve = Curve{BaseXP: 100, ScalingFactor: 1.2}

// XPForNextLevel returns the XP delta needed to go from level to level+1.
// The delta is never below 1: LevelFor accumulates these deltas and relies
// on every step advancing, whatever the curve parameters are.
func (c Curve) XPForNextLevel(level int) int {
	if level < 1 {
		level = 1
	}
	xp := int(float64(c.BaseXP) * float64(level) * math.Pow(c.ScalingFactor, float64(level-1)))
	if xp < 1 {
		return 1
	}
	return xp
}

// ThresholdFor returns the cumulative XP required to reach level.
// Levels at or below 1 have a zero threshold.
func (c Curve) ThresholdFor(level int) int {
	total := 0
	for l := 1; l < level; l++ {
		total += c.XPForNextLevel(l)
	}
	return total
}

// LevelFor returns the highest level whose threshold totalXP meets or exceeds.
func (c Curve) LevelFor(totalXP int) int {
	if totalXP < 0 {
		totalXP = 0
	}
	level := 1
	needed := 0
	for {
		needed += c.XPForNextLevel(level)
		if totalXP < needed {
			return level
		}
		level++
	}
}

// Progress describes position within the current level.
type Progress struct {
	Level     int `json:"level"`
	IntoLevel int `json:"into_level"` // XP earned past the current level's threshold
	Needed    int `json:"needed"`     // XP delta from threshold to next level
}

// ProgressFor computes level and intra-level progress for a cumulative XP total.
func (c Curve) ProgressFor(totalXP int) Progress {
	level := c.LevelFor(totalXP)
	return Progress{
		Level:     level,
		IntoLevel: totalXP - c.ThresholdFor(level),
		Needed:    c.XPForNextLevel(level),
	}
}
