package converters

import (
	"fmt"
	"winalyze/api/dto"
	"winalyze/fetcher/assets"
	"winalyze/pkg/stats"
)

const (
	ResultVictory = "Victory"
	ResultDefeat  = "Defeat"
)

// ConvertHistoryEntry formats a row for the history list.
// Per minute values are whole numbers over whole minutes, as shown on the match cards.
func ConvertHistoryEntry(row stats.MatchParticipantRow, version string) dto.MatchHistoryEntry {
	minutes := max(1, row.GameDurationSeconds/60)
	cs := row.CreepScore()

	result := ResultDefeat
	if row.Win {
		result = ResultVictory
	}

	return dto.MatchHistoryEntry{
		MatchId:      row.MatchId,
		ChampionName: row.ChampionName,
		ChampionIcon: assets.ChampionIconURL(version, row.ChampionName),
		Win:          row.Win,
		Result:       result,
		Score:        fmt.Sprintf("%d/%d/%d", row.Kills, row.Deaths, row.Assists),
		Kda:          fmt.Sprintf("%.2f", row.KDA()),
		Cs:           cs,
		CsPerMin:     cs / minutes,
		Vision:       row.VisionScore,
		VisionPerMin: row.VisionScore / minutes,
		Duration:     FormatDuration(row.GameDurationSeconds),
	}
}

// ConvertMatchPage formats a page of rows.
func ConvertMatchPage(sessionId string, page stats.Page[stats.MatchParticipantRow], version string) *dto.MatchPage {
	matches := make([]dto.MatchHistoryEntry, 0, len(page.Subset))
	for _, row := range page.Subset {
		matches = append(matches, ConvertHistoryEntry(row, version))
	}

	return &dto.MatchPage{
		SessionId:  sessionId,
		Page:       page.Page,
		PageSize:   page.PageSize,
		TotalPages: page.TotalPages,
		HasPrev:    page.Page > 1 && page.Page <= page.TotalPages,
		HasNext:    page.Page >= 1 && page.Page < page.TotalPages,
		Matches:    matches,
	}
}

// ConvertCards formats the summary metrics for the dashboard cards.
func ConvertCards(metrics stats.SummaryMetrics) dto.SummaryCards {
	return dto.SummaryCards{
		Winrate: fmt.Sprintf("%.1f%%", metrics.WinratePercent),
		Kda:     fmt.Sprintf("%.2f", metrics.AvgKda),
		Cs:      fmt.Sprintf("%.1f", metrics.AvgCs),
		Vision:  fmt.Sprintf("%.1f", metrics.AvgVisionScore),
	}
}

// ConvertStandings attaches the champion icons to a leaderboard.
func ConvertStandings(standings []stats.ChampionStanding, version string) []dto.ChampionEntry {
	entries := make([]dto.ChampionEntry, 0, len(standings))
	for _, standing := range standings {
		entries = append(entries, dto.ChampionEntry{
			ChampionStanding: standing,
			Icon:             assets.ChampionIconURL(version, standing.ChampionName),
		})
	}
	return entries
}

// FormatDuration renders seconds as "31m 5s".
func FormatDuration(seconds int) string {
	return fmt.Sprintf("%dm %ds", seconds/60, seconds%60)
}
