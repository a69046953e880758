package dto

import "winalyze/pkg/stats"

// PlayerIdentity is the resolved player an analysis belongs to.
type PlayerIdentity struct {
	GameName      string `json:"gameName"`
	TagLine       string `json:"tagLine"`
	Puuid         string `json:"puuid"`
	Platform      string `json:"platform"`
	ProfileIconId int    `json:"profileIconId"`
	SummonerLevel int    `json:"summonerLevel"`
	SoloTier      string `json:"soloTier,omitempty"`
	SoloRank      string `json:"soloRank,omitempty"`
	LeaguePoints  int    `json:"leaguePoints,omitempty"`
}

// AnalysisCreated is returned after a fetch cycle.
type AnalysisCreated struct {
	SessionId  string         `json:"sessionId"`
	Player     PlayerIdentity `json:"player"`
	Matches    int            `json:"matches"`
	Skipped    int            `json:"skipped"`
	TotalPages int            `json:"totalPages"`
}

// SummaryCards are the metrics formatted for display.
type SummaryCards struct {
	Winrate string `json:"winrate"`
	Kda     string `json:"kda"`
	Cs      string `json:"cs"`
	Vision  string `json:"vision"`
}

// ChampionEntry is a leaderboard standing with its icon.
type ChampionEntry struct {
	stats.ChampionStanding
	Icon string `json:"icon"`
}

// Summary is the dashboard header: cards, radar and most played champions.
type Summary struct {
	SessionId  string               `json:"sessionId"`
	Player     PlayerIdentity       `json:"player"`
	Metrics    stats.SummaryMetrics `json:"metrics"`
	Cards      SummaryCards         `json:"cards"`
	Rank       string               `json:"rank"`
	RankName   string               `json:"rankName"`
	Radar      stats.RadarPair      `json:"radar"`
	MostPlayed []ChampionEntry      `json:"mostPlayed"`
}

// MatchHistoryEntry is a single row of the history list.
type MatchHistoryEntry struct {
	MatchId      string `json:"matchId"`
	ChampionName string `json:"championName"`
	ChampionIcon string `json:"championIcon"`
	Win          bool   `json:"win"`
	Result       string `json:"result"`
	Score        string `json:"score"`
	Kda          string `json:"kda"`
	Cs           int    `json:"cs"`
	CsPerMin     int    `json:"csPerMin"`
	Vision       int    `json:"vision"`
	VisionPerMin int    `json:"visionPerMin"`
	Duration     string `json:"duration"`
}

// MatchPage is a page of the history list.
type MatchPage struct {
	SessionId  string              `json:"sessionId"`
	Page       int                 `json:"page"`
	PageSize   int                 `json:"pageSize"`
	TotalPages int                 `json:"totalPages"`
	HasPrev    bool                `json:"hasPrev"`
	HasNext    bool                `json:"hasNext"`
	Matches    []MatchHistoryEntry `json:"matches"`
}

// Leaderboards are the two champion rankings of a session.
type Leaderboards struct {
	SessionId   string          `json:"sessionId"`
	MostPlayed  []ChampionEntry `json:"mostPlayed"`
	BestWinrate []ChampionEntry `json:"bestWinrate"`
}
