package levels

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestXPForNextLevel_Defaults(t *testing.T) {
	c := DefaultCurve

	// 100 * 1 * 1.2^0 = 100
	assert.Equal(t, 100, c.XPForNextLevel(1))
	// 100 * 2 * 1.2^1 = 240
	assert.Equal(t, 240, c.XPForNextLevel(2))
	// 100 * 3 * 1.2^2 = 432
	assert.Equal(t, 432, c.XPForNextLevel(3))
}

func TestThresholdFor_Defaults(t *testing.T) {
	c := DefaultCurve

	assert.Equal(t, 0, c.ThresholdFor(0))
	assert.Equal(t, 0, c.ThresholdFor(1))
	assert.Equal(t, 100, c.ThresholdFor(2))
	assert.Equal(t, 340, c.ThresholdFor(3))
}

func TestLevelFor_Boundaries(t *testing.T) {
	c := DefaultCurve

	tests := []struct {
		xp    int
		level int
	}{
		{0, 1},
		{99, 1},
		{100, 2},
		{339, 2},
		{340, 3},
		{341, 3},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.level, c.LevelFor(tt.xp), "xp=%d", tt.xp)
	}
}

func TestLevelFor_NegativeClampsToOne(t *testing.T) {
	assert.Equal(t, 1, DefaultCurve.LevelFor(-50))
}

// The three functions must stay mutually consistent:
// ThresholdFor(LevelFor(x)) <= x < ThresholdFor(LevelFor(x)+1)
func TestCurve_Consistency(t *testing.T) {
	c := DefaultCurve

	prevLevel := 1
	for x := 0; x <= 20000; x += 7 {
		level := c.LevelFor(x)
		require.LessOrEqual(t, c.ThresholdFor(level), x, "xp=%d", x)
		require.Greater(t, c.ThresholdFor(level+1), x, "xp=%d", x)

		// monotone non-decreasing
		require.GreaterOrEqual(t, level, prevLevel, "xp=%d", x)
		prevLevel = level
	}
}

func TestProgressFor(t *testing.T) {
	c := DefaultCurve

	p := c.ProgressFor(150)
	assert.Equal(t, 2, p.Level)
	assert.Equal(t, 50, p.IntoLevel)
	assert.Equal(t, 240, p.Needed)
}

// A curve with a non-positive base or scaling factor must still terminate:
// every per-level delta is floored at 1 so LevelFor always advances.
func TestLevelFor_DegenerateParametersTerminate(t *testing.T) {
	degenerate := []Curve{
		{BaseXP: 0, ScalingFactor: 1.2},
		{BaseXP: -100, ScalingFactor: 1.2},
		{BaseXP: 100, ScalingFactor: 0},
		{BaseXP: 100, ScalingFactor: -1},
	}
	for _, c := range degenerate {
		level := c.LevelFor(10)
		assert.Positive(t, level, "curve %+v", c)
	}

	// With a zero base every delta floors to 1, so thresholds step by 1.
	c := Curve{BaseXP: 0, ScalingFactor: 1.2}
	assert.Equal(t, 1, c.XPForNextLevel(1))
	assert.Equal(t, 11, c.LevelFor(10))
}

func TestCurve_CustomParameters(t *testing.T) {
	c := Curve{BaseXP: 50, ScalingFactor: 2.0}

	// 1->2: 50, 2->3: 50*2*2 = 200
	assert.Equal(t, 50, c.XPForNextLevel(1))
	assert.Equal(t, 200, c.XPForNextLevel(2))
	assert.Equal(t, 250, c.ThresholdFor(3))
	assert.Equal(t, 3, c.LevelFor(250))
}
