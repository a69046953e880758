package stats

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeReferenceScale(t *testing.T) {
	gold := ReferenceOrDefault("GOLD")

	pair := Normalize(SummaryMetrics{}, gold)

	assert.Equal(t, "GOLD", pair.Tier)
	assert.Equal(t, [4]string{"KDA", "CS/min", "Vision/min", "Objectives/game"}, pair.Axes)
	assert.Equal(t, [4]float64{}, pair.Player)
	assert.InDelta(t, 2.6, pair.Reference[0], 1e-9)
	assert.InDelta(t, 6.0, pair.Reference[1], 1e-9)
	assert.InDelta(t, 3.0, pair.Reference[2], 1e-9)
	assert.InDelta(t, 2.0, pair.Reference[3], 1e-9)
}

func TestRadarAxesAreNotShared(t *testing.T) {
	pair := Normalize(SummaryMetrics{}, ReferenceOrDefault("GOLD"))
	pair.Axes[0] = "changed"

	axes := RadarAxes()
	axes[1] = "changed"

	assert.Equal(t, AxisKda, Normalize(SummaryMetrics{}, ReferenceOrDefault("GOLD")).Axes[0])
	assert.Equal(t, AxisCsPerMin, RadarAxes()[1])
}

func TestNormalizePlayerScale(t *testing.T) {
	metrics := SummaryMetrics{AvgKda: 5, CsPerMin: 7.5, AvgVisionPerMin: 1.5, AvgObjectivesPerGame: 0.75}

	pair := Normalize(metrics, ReferenceOrDefault("IRON"))

	assert.InDelta(t, 5.0, pair.Player[0], 1e-9)
	assert.InDelta(t, 7.5, pair.Player[1], 1e-9)
	assert.InDelta(t, 5.0, pair.Player[2], 1e-9)
	assert.InDelta(t, 2.5, pair.Player[3], 1e-9)
}

func TestNormalizeStaysInRange(t *testing.T) {
	tests := []struct {
		name    string
		metrics SummaryMetrics
	}{
		{
			name:    "hundred times the ceilings",
			metrics: SummaryMetrics{AvgKda: 100 * KdaCeiling, CsPerMin: 100 * CsPerMinCeiling, AvgVisionPerMin: 100 * VisionCeiling, AvgObjectivesPerGame: 100 * ObjectivesCeiling},
		},
		{
			name:    "negative values",
			metrics: SummaryMetrics{AvgKda: -1, CsPerMin: -5, AvgVisionPerMin: -0.1, AvgObjectivesPerGame: -3},
		},
		{
			name:    "not a number and infinity",
			metrics: SummaryMetrics{AvgKda: math.NaN(), CsPerMin: math.Inf(1), AvgVisionPerMin: math.Inf(-1)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			pair := Normalize(tt.metrics, ReferenceOrDefault(""))
			for _, values := range [][4]float64{pair.Player, pair.Reference} {
				for _, value := range values {
					assert.GreaterOrEqual(t, value, 0.0)
					assert.LessOrEqual(t, value, RadarScale)
				}
			}
		})
	}

	pair := Normalize(tests[0].metrics, ReferenceOrDefault("GOLD"))
	assert.Equal(t, [4]float64{10, 10, 10, 10}, pair.Player)
}

func TestReferenceOrDefault(t *testing.T) {
	assert.Equal(t, "DIAMOND", ReferenceOrDefault("diamond").Tier)
	assert.Equal(t, "GOLD", ReferenceOrDefault("").Tier)
	assert.Equal(t, "GOLD", ReferenceOrDefault("wood").Tier)
}

func TestDefaultReferencesOrdered(t *testing.T) {
	references := DefaultReferences()

	assert.Len(t, references, 10)
	assert.Equal(t, "IRON", references[0].Tier)
	assert.Equal(t, "CHALLENGER", references[len(references)-1].Tier)

	for i := 1; i < len(references); i++ {
		assert.Greater(t, references[i].KDA, references[i-1].KDA)
		assert.Greater(t, references[i].CSPerMin, references[i-1].CSPerMin)
	}
}
