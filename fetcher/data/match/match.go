package matchfetcher

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"winalyze/fetcher/requests"
	"winalyze/pkg/messages"
	"winalyze/pkg/regions"
)

// The match fetcher with it's limiter and region.
type MatchFetcher struct {
	limiter *requests.RateLimiter
	host    requests.HostFunc
	region  regions.MainRegion
}

// Create a instance of the match fetcher.
func CreateMatchFetcher(limiter *requests.RateLimiter, host requests.HostFunc, region regions.MainRegion) *MatchFetcher {
	return &MatchFetcher{
		limiter: limiter,
		host:    host,
		region:  region,
	}
}

// Get a given match data.
func (m *MatchFetcher) GetMatchData(ctx context.Context, matchId string) (*MatchData, error) {
	if err := m.limiter.WaitApi(ctx); err != nil {
		return nil, err
	}

	// Format the URL.
	endpoint := fmt.Sprintf("%s/lol/match/v5/matches/%s", m.host(string(m.region)), url.PathEscape(matchId))

	resp, err := requests.AuthRequest(ctx, endpoint, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", endpoint, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if err := requests.CheckResponse(resp, endpoint); err != nil {
		return nil, err
	}

	// Parse the matches data.
	var matchData MatchData
	if err := json.NewDecoder(resp.Body).Decode(&matchData); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	return &matchData, nil
}

// FindParticipant returns the entry of the given player, nil if they didn't play the match.
func (m *MatchData) FindParticipant(puuid string) *MatchPlayer {
	for i := range m.Info.Participants {
		if m.Info.Participants[i].Puuid == puuid {
			return &m.Info.Participants[i]
		}
	}
	return nil
}
