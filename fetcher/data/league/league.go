package leaguefetcher

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

// The league fetcher with it's limit and platform.
type LeagueFetcher struct {
	limiter  *requests.RateLimiter // Pointer to the limiter, since it's shared.
	host     requests.HostFunc
	platform regions.SubRegion
}

// Create a league fetcher.
func CreateLeagueFetcher(limiter *requests.RateLimiter, host requests.HostFunc, platform regions.SubRegion) *LeagueFetcher {
	return &LeagueFetcher{
		limiter:  limiter,
		host:     host,
		platform: platform,
	}
}

// Get a given player entries for each queue.
// Unranked players get an empty list.
func (l *LeagueFetcher) GetLeagueByPuuid(ctx context.Context, puuid string) ([]LeagueEntry, error) {
	if err := l.limiter.WaitApi(ctx); err != nil {
		return nil, err
	}

	endpoint := fmt.Sprintf("%s/lol/league/v4/entries/by-puuid/%s", l.host(string(l.platform)), url.PathEscape(puuid))

	resp, err := requests.AuthRequest(ctx, endpoint, http.MethodGet, nil)
	if err != nil {
		return nil, fmt.Errorf(messages.RequestFailedMsg+": %w", endpoint, err)
	}

	defer resp.Body.Close()

	// Check the status code.
	if err := requests.CheckResponse(resp, endpoint); err != nil {
		return nil, err
	}

	// Parse the league entries.
	var entries []LeagueEntry
	if err := json.NewDecoder(resp.Body).Decode(&entries); err != nil {
		return nil, fmt.Errorf(messages.FailedToParseMsg+": %w", err)
	}

	return entries, nil
}
