package stats

import "sort"

const (
	// LeaderboardSize is the number of champions kept on each leaderboard.
	LeaderboardSize = 3

	// MinGamesForWinrate keeps one lucky game from topping the winrate board.
	MinGamesForWinrate = 3
)

// ChampionStanding is a champion entry in a leaderboard.
type ChampionStanding struct {
	ChampionName string  `json:"championName"`
	GamesPlayed  int     `json:"gamesPlayed"`
	Wins         int     `json:"wins"`
	Winrate      float64 `json:"winrate"`
}

// RankByPlayCount returns the most played champions.
// Ties keep the order in which the champions first appear in the rows.
func RankByPlayCount(rows []MatchParticipantRow) []ChampionStanding {
	standings := groupByChampion(rows)

	sort.SliceStable(standings, func(i, j int) bool {
		return standings[i].GamesPlayed > standings[j].GamesPlayed
	})

	return top(standings)
}

// RankByWinrate returns the champions with the best winrate among those played at least MinGamesForWinrate times.
// Returns fewer entries when not enough champions qualify.
func RankByWinrate(rows []MatchParticipantRow) []ChampionStanding {
	standings := groupByChampion(rows)

	qualified := make([]ChampionStanding, 0, len(standings))
	for _, standing := range standings {
		if standing.GamesPlayed >= MinGamesForWinrate {
			qualified = append(qualified, standing)
		}
	}

	sort.SliceStable(qualified, func(i, j int) bool {
		return qualified[i].Winrate > qualified[j].Winrate
	})

	return top(qualified)
}

// groupByChampion counts games and wins per champion, in order of first appearance.
func groupByChampion(rows []MatchParticipantRow) []ChampionStanding {
	index := make(map[string]int)
	standings := make([]ChampionStanding, 0)

	for _, row := range rows {
		i, exists := index[row.ChampionName]
		if !exists {
			i = len(standings)
			index[row.ChampionName] = i
			standings = append(standings, ChampionStanding{ChampionName: row.ChampionName})
		}

		standings[i].GamesPlayed++
		if row.Win {
			standings[i].Wins++
		}
	}

	for i := range standings {
		standings[i].Winrate = 100 * float64(standings[i].Wins) / float64(standings[i].GamesPlayed)
	}

	return standings
}

func top(standings []ChampionStanding) []ChampionStanding {
	if len(standings) > LeaderboardSize {
		return standings[:LeaderboardSize]
	}
	return standings
}
