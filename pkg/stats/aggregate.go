package stats

import (
	"errors"
	"winalyze/pkg/messages"
)

// ErrEmptyRows is returned when there is nothing to aggregate.
var ErrEmptyRows = errors.New(messages.EmptyRows)

// SummaryMetrics are the averages and rates derived from a row set.
type SummaryMetrics struct {
	Total                int     `json:"total"`
	Wins                 int     `json:"wins"`
	AvgKda               float64 `json:"avgKda"`
	AvgCs                float64 `json:"avgCs"`
	CsPerMin             float64 `json:"csPerMin"`
	AvgVisionScore       float64 `json:"avgVisionScore"`
	AvgVisionPerMin      float64 `json:"avgVisionPerMin"`
	AvgObjectivesPerGame float64 `json:"avgObjectivesPerGame"`
	WinratePercent       float64 `json:"winratePercent"`
}

// Aggregate reduces the rows into the summary metrics.
//
// CsPerMin is a rate over the whole sample (total cs over total minutes) while
// AvgVisionPerMin is the mean of the per match rates. Both shapes are kept.
func Aggregate(rows []MatchParticipantRow) (SummaryMetrics, error) {
	if len(rows) == 0 {
		return SummaryMetrics{}, ErrEmptyRows
	}

	var (
		wins          int
		kdaSum        float64
		csSum         int
		visionSum     int
		visionRateSum float64
		objectiveSum  int
		durationSum   int
	)

	for _, row := range rows {
		if row.Win {
			wins++
		}
		kdaSum += row.KDA()
		csSum += row.CreepScore()
		visionSum += row.VisionScore
		visionRateSum += float64(row.VisionScore) / row.Minutes()
		objectiveSum += row.Objectives()
		durationSum += row.GameDurationSeconds
	}

	total := float64(len(rows))
	totalMinutes := max(1, float64(durationSum)/60)

	return SummaryMetrics{
		Total:                len(rows),
		Wins:                 wins,
		AvgKda:               kdaSum / total,
		AvgCs:                float64(csSum) / total,
		CsPerMin:             float64(csSum) / totalMinutes,
		AvgVisionScore:       float64(visionSum) / total,
		AvgVisionPerMin:      visionRateSum / total,
		AvgObjectivesPerGame: float64(objectiveSum) / total,
		WinratePercent:       100 * float64(wins) / total,
	}, nil
}
