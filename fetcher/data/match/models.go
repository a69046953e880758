package matchfetcher

// Return type from the match_v5 endpoint.
// Only the fields a history row is built from are decoded.
type MatchData struct {
	Info MatchInfo `json:"info"`
}

// MatchInfo contains the duration and the participants.
type MatchInfo struct {
	GameDuration int           `json:"gameDuration"`
	Participants []MatchPlayer `json:"participants"`
}

// MatchPlayer contains the stats and information about a given player in a Match.
type MatchPlayer struct {
	Assists              int         `json:"assists"`
	BaronKills           int         `json:"baronKills"`
	ChampionName         string      `json:"championName"`
	Challenges           *Challenges `json:"challenges"`
	Deaths               int         `json:"deaths"`
	DragonKills          int         `json:"dragonKills"`
	Kills                int         `json:"kills"`
	NeutralMinionsKilled int         `json:"neutralMinionsKilled"`
	Puuid                string      `json:"puuid"`
	TotalMinionsKilled   int         `json:"totalMinionsKilled"`
	VisionScore          int         `json:"visionScore"`
	Win                  bool        `json:"win"`
}

// Challenges of the player for this match.
// Only present on recent matches.
type Challenges struct {
	BaronTakedowns      int `json:"baronTakedowns"`
	DragonTakedowns     int `json:"dragonTakedowns"`
	RiftHeraldTakedowns int `json:"riftHeraldTakedowns"`
}
