package filters

import (
	"strings"
	"winalyze/pkg/config"
	queuevalues "winalyze/pkg/riotvalues/queue"
	"winalyze/pkg/regions"
)

// Body of a new analysis request.
type AnalysisBody struct {
	GameName  string `json:"gameName"`
	TagLine   string `json:"tagLine"`
	Region    string `json:"region"`
	Count     int    `json:"count" binding:"omitempty,min=1,max=100"`
	Queue     int    `json:"queue" binding:"omitempty,min=0"`
	SessionId string `json:"sessionId" binding:"omitempty,uuid"`
}

// URI params for the session endpoints.
type SessionURIParams struct {
	SessionId string `uri:"sessionId" binding:"required,uuid"`
}

// Query params for the summary.
type SummaryQueryParams struct {
	Rank string `form:"rank"`
}

// Query params for the match history.
type MatchesQueryParams struct {
	Page int `form:"page" binding:"omitempty,min=1"`
}

// Query params for the page navigation.
type NavigateQueryParams struct {
	Direction string `form:"direction" binding:"required,oneof=next prev"`
}

// AnalysisFilter is a validated analysis request.
type AnalysisFilter struct {
	GameName  string
	TagLine   string
	Platform  string
	Count     int
	Queue     int
	SessionId string
}

// NewAnalysisFilter validates the body and fills the defaults.
// A Riot ID typed as "name#tag" in the name field is split.
func NewAnalysisFilter(body *AnalysisBody) (*AnalysisFilter, error) {
	gameName := strings.TrimSpace(body.GameName)
	tagLine := strings.TrimPrefix(strings.TrimSpace(body.TagLine), "#")
	if name, tag, found := strings.Cut(gameName, "#"); found && tagLine == "" {
		gameName, tagLine = strings.TrimSpace(name), strings.TrimSpace(tag)
	}

	if err := ValidateGameName(gameName); err != nil {
		return nil, err
	}
	if err := ValidateTagLine(tagLine); err != nil {
		return nil, err
	}

	platform := config.Analysis.Platform
	if body.Region != "" {
		sub, err := regions.ParseSubRegion(body.Region)
		if err != nil {
			return nil, ValidationError{Field: "region", Message: err.Error()}
		}
		platform = string(sub)
	}

	if !queuevalues.IsKnownQueue(body.Queue) {
		return nil, ValidationError{Field: "queue", Message: "unknown queue"}
	}

	count := body.Count
	if count == 0 {
		count = config.Analysis.MatchCount
	}

	return &AnalysisFilter{
		GameName:  gameName,
		TagLine:   tagLine,
		Platform:  platform,
		Count:     config.ClampMatchCount(count),
		Queue:     body.Queue,
		SessionId: body.SessionId,
	}, nil
}
