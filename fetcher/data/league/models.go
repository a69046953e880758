package leaguefetcher

// Queue types returned on the league entries.
const (
	QueueSolo = "RANKED_SOLO_5x5"
	QueueFlex = "RANKED_FLEX_SR"
)

// LeagueEntry defines the type returned by the league entries of a player.
type LeagueEntry struct {
	Puuid        string `json:"puuid"`
	QueueType    string `json:"queueType"`
	Tier         string `json:"tier"`
	Rank         string `json:"rank"`
	LeaguePoints int    `json:"leaguePoints"`
	Wins         int    `json:"wins"`
	Losses       int    `json:"losses"`
	HotStreak    bool   `json:"hotStreak"`
}

// FindQueue returns the entry of the given queue, nil when the player isn't ranked there.
func FindQueue(entries []LeagueEntry, queueType string) *LeagueEntry {
	for i := range entries {
		if entries[i].QueueType == queueType {
			return &entries[i]
		}
	}
	return nil
}
