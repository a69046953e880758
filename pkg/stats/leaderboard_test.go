package stats

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func games(champion string, wins, losses int) []MatchParticipantRow {
	rows := make([]MatchParticipantRow, 0, wins+losses)
	for i := 0; i < wins; i++ {
		rows = append(rows, MatchParticipantRow{ChampionName: champion, Win: true})
	}
	for i := 0; i < losses; i++ {
		rows = append(rows, MatchParticipantRow{ChampionName: champion})
	}
	return rows
}

func concat(groups ...[]MatchParticipantRow) []MatchParticipantRow {
	var rows []MatchParticipantRow
	for _, group := range groups {
		rows = append(rows, group...)
	}
	return rows
}

func TestRankByPlayCount(t *testing.T) {
	rows := concat(
		games("Lux", 1, 1),
		games("Ahri", 2, 3),
		games("Zed", 1, 1),
		games("Jinx", 0, 1),
		games("Thresh", 3, 0),
	)

	standings := RankByPlayCount(rows)

	assert.Equal(t, []ChampionStanding{
		{ChampionName: "Ahri", GamesPlayed: 5, Wins: 2, Winrate: 40},
		{ChampionName: "Thresh", GamesPlayed: 3, Wins: 3, Winrate: 100},
		{ChampionName: "Lux", GamesPlayed: 2, Wins: 1, Winrate: 50},
	}, standings)
}

func TestRankByPlayCountTiesKeepInputOrder(t *testing.T) {
	rows := concat(games("Zed", 1, 0), games("Ahri", 1, 0), games("Lux", 1, 0), games("Jinx", 1, 0))

	standings := RankByPlayCount(rows)

	assert.Len(t, standings, 3)
	assert.Equal(t, "Zed", standings[0].ChampionName)
	assert.Equal(t, "Ahri", standings[1].ChampionName)
	assert.Equal(t, "Lux", standings[2].ChampionName)
}

func TestRankByWinrate(t *testing.T) {
	rows := concat(
		games("OneTrick", 1, 0),
		games("Ahri", 2, 1),
		games("Zed", 3, 1),
		games("Lux", 1, 4),
		games("Jinx", 2, 2),
	)

	standings := RankByWinrate(rows)

	assert.Len(t, standings, 3)
	assert.Equal(t, "Zed", standings[0].ChampionName)
	assert.Equal(t, 75.0, standings[0].Winrate)
	assert.Equal(t, "Ahri", standings[1].ChampionName)
	assert.Equal(t, "Jinx", standings[2].ChampionName)

	for _, standing := range standings {
		assert.NotEqual(t, "OneTrick", standing.ChampionName)
		assert.GreaterOrEqual(t, standing.GamesPlayed, MinGamesForWinrate)
	}
}

func TestRankByWinrateTiesKeepInputOrder(t *testing.T) {
	rows := concat(games("Zed", 2, 1), games("Ahri", 2, 1), games("Lux", 2, 1), games("Jinx", 2, 1))

	standings := RankByWinrate(rows)

	assert.Len(t, standings, 3)
	assert.Equal(t, "Zed", standings[0].ChampionName)
	assert.Equal(t, "Ahri", standings[1].ChampionName)
	assert.Equal(t, "Lux", standings[2].ChampionName)
	for _, standing := range standings {
		assert.Equal(t, 200.0/3, standing.Winrate)
	}
}

func TestRankByWinrateTiesFollowFirstAppearance(t *testing.T) {
	// Interleaved games, Lux shows up first.
	rows := []MatchParticipantRow{
		{ChampionName: "Lux", Win: true},
		{ChampionName: "Zed", Win: true},
		{ChampionName: "Ahri", Win: true},
		{ChampionName: "Jinx", Win: true},
		{ChampionName: "Zed"},
		{ChampionName: "Jinx"},
		{ChampionName: "Ahri", Win: true},
		{ChampionName: "Lux", Win: true},
		{ChampionName: "Zed", Win: true},
		{ChampionName: "Ahri"},
		{ChampionName: "Lux"},
		{ChampionName: "Jinx", Win: true},
	}

	standings := RankByWinrate(rows)

	assert.Len(t, standings, 3)
	assert.Equal(t, "Lux", standings[0].ChampionName)
	assert.Equal(t, "Zed", standings[1].ChampionName)
	assert.Equal(t, "Ahri", standings[2].ChampionName)
}

func TestRankByWinrateExcludesSmallSamples(t *testing.T) {
	rows := concat(games("Perfect", 2, 0), games("Ahri", 1, 2))

	standings := RankByWinrate(rows)

	assert.Equal(t, []ChampionStanding{
		{ChampionName: "Ahri", GamesPlayed: 3, Wins: 1, Winrate: 100.0 / 3},
	}, standings)
}

func TestLeaderboardsEmpty(t *testing.T) {
	assert.Empty(t, RankByPlayCount(nil))
	assert.Empty(t, RankByWinrate(nil))
}
