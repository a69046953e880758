package stats

// MatchParticipantRow is the tracked player's line in a single match.
// Rows are built once per fetch and never modified afterwards.
type MatchParticipantRow struct {
	MatchId              string `json:"matchId"`
	ChampionName         string `json:"championName"`
	Win                  bool   `json:"win"`
	Kills                int    `json:"kills"`
	Deaths               int    `json:"deaths"`
	Assists              int    `json:"assists"`
	TotalMinionsKilled   int    `json:"totalMinionsKilled"`
	NeutralMinionsKilled int    `json:"neutralMinionsKilled"`
	VisionScore          int    `json:"visionScore"`
	DragonKills          int    `json:"dragonKills"`
	HeraldKills          int    `json:"heraldKills"`
	BaronKills           int    `json:"baronKills"`
	GameDurationSeconds  int    `json:"gameDurationSeconds"`
}

// KDA returns (kills + assists) / max(1, deaths).
func (r MatchParticipantRow) KDA() float64 {
	return float64(r.Kills+r.Assists) / float64(max(1, r.Deaths))
}

// CreepScore returns lane and jungle minions combined.
func (r MatchParticipantRow) CreepScore() int {
	return r.TotalMinionsKilled + r.NeutralMinionsKilled
}

// Objectives returns the epic monsters taken in the match.
func (r MatchParticipantRow) Objectives() int {
	return r.DragonKills + r.HeraldKills + r.BaronKills
}

// Minutes returns the match duration in minutes, never below one.
func (r MatchParticipantRow) Minutes() float64 {
	return max(1, float64(r.GameDurationSeconds)/60)
}
