package stats

// Radar axis ceilings, a value at the ceiling is drawn at the edge of the chart.
const (
	KdaCeiling        = 10.0
	CsPerMinCeiling   = 10.0
	VisionCeiling     = 3.0
	ObjectivesCeiling = 3.0

	// RadarScale is the top of the common axis.
	RadarScale = 10.0
)

// Radar axis labels.
const (
	AxisKda        = "KDA"
	AxisCsPerMin   = "CS/min"
	AxisVision     = "Vision/min"
	AxisObjectives = "Objectives/game"
)

// RadarAxes returns the labels of the four radar axes, in tuple order.
func RadarAxes() [4]string {
	return [4]string{AxisKda, AxisCsPerMin, AxisVision, AxisObjectives}
}

var ceilings = [4]float64{KdaCeiling, CsPerMinCeiling, VisionCeiling, ObjectivesCeiling}

// RadarPair is the player and the reference tier on the same 0-10 scale.
type RadarPair struct {
	Axes      [4]string  `json:"axes"`
	Tier      string     `json:"tier"`
	Player    [4]float64 `json:"player"`
	Reference [4]float64 `json:"reference"`
}

// Normalize scales the player metrics and the reference quadruple against fixed per axis ceilings.
// The reference tier is only compared, never used as the scale.
func Normalize(metrics SummaryMetrics, reference RankReference) RadarPair {
	player := [4]float64{metrics.AvgKda, metrics.CsPerMin, metrics.AvgVisionPerMin, metrics.AvgObjectivesPerGame}

	return RadarPair{
		Axes:      RadarAxes(),
		Tier:      reference.Tier,
		Player:    scaleAll(player),
		Reference: scaleAll(reference.Values()),
	}
}

func scaleAll(values [4]float64) [4]float64 {
	var scaled [4]float64
	for i, value := range values {
		scaled[i] = scale(value, ceilings[i])
	}
	return scaled
}

// scale maps value onto [0, RadarScale].
func scale(value, ceiling float64) float64 {
	scaled := value / ceiling * RadarScale
	// NaN fails every comparison, treat it as empty.
	if !(scaled > 0) {
		return 0
	}
	return min(RadarScale, scaled)
}
