package requests

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"
	"winalyze/pkg/config"
	"winalyze/pkg/messages"
)

// ErrNotFound is returned when the Riot API answers with a 404.
var ErrNotFound = errors.New("resource not found")

// ErrMissingApiKey is returned when an authenticated request is attempted without a key.
var ErrMissingApiKey = errors.New(messages.MissingApiKey)

// StatusError is any other non 200 answer.
type StatusError struct {
	StatusCode int
	URL        string
}

func (e *StatusError) Error() string {
	return fmt.Sprintf(messages.BadStatusCodeMsg, e.StatusCode, e.URL)
}

// Shared client, Riot answers fast or not at all.
var client = &http.Client{Timeout: 10 * time.Second}

// HostFunc returns the base url for a routing value, like "EUROPE" or "EUW1".
type HostFunc func(route string) string

// RiotHost is the production host for a routing value.
func RiotHost(route string) string {
	return fmt.Sprintf("https://%s.api.riotgames.com", strings.ToLower(route))
}

// Do a authenticated request to the Riot API.
// Return the respose.
func AuthRequest(ctx context.Context, rawUrl string, method string, params map[string]string) (*http.Response, error) {
	if config.ApiKey == "" {
		return nil, ErrMissingApiKey
	}

	req, err := newRequest(ctx, rawUrl, method, params)
	if err != nil {
		return nil, err
	}

	// Add the token from the .env
	req.Header.Set("X-Riot-Token", config.ApiKey)
	return client.Do(req)
}

// Create a simple request and return it.
func Request(ctx context.Context, rawUrl string, method string) (*http.Response, error) {
	req, err := newRequest(ctx, rawUrl, method, nil)
	if err != nil {
		return nil, err
	}
	return client.Do(req)
}

func newRequest(ctx context.Context, rawUrl string, method string, params map[string]string) (*http.Request, error) {
	req, err := http.NewRequestWithContext(ctx, method, rawUrl, nil)
	if err != nil {
		return nil, fmt.Errorf("error creating request: %w", err)
	}

	if len(params) > 0 {
		query := url.Values{}
		for key, value := range params {
			query.Set(key, value)
		}
		req.URL.RawQuery = query.Encode()
	}
	return req, nil
}

// CheckResponse converts the status code of a response into an error.
func CheckResponse(resp *http.Response, rawUrl string) error {
	switch resp.StatusCode {
	case http.StatusOK:
		return nil
	case http.StatusNotFound:
		return fmt.Errorf("%w: %s", ErrNotFound, rawUrl)
	default:
		return &StatusError{StatusCode: resp.StatusCode, URL: rawUrl}
	}
}
