package collectorservice

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"errors"
	"fmt"
	"strings"
	"time"
	"winalyze/api/filters"
	leaguefetcher "winalyze/fetcher/data/league"
	matchfetcher "winalyze/fetcher/data/match"
	playerfetcher "winalyze/fetcher/data/player"
	"winalyze/fetcher/requests"
	"winalyze/pkg/logger"
	"winalyze/pkg/messages"
	"winalyze/pkg/stats"

	"github.com/redis/go-redis/v9"
)

// Terminal errors of a fetch cycle.
var (
	ErrPlayerNotFound      = errors.New(messages.PlayerNotFound)
	ErrProfileUnavailable  = errors.New(messages.ProfileUnavailable)
	ErrNoMatchesFound      = errors.New(messages.NoMatchesFound)
	ErrAnalysisInProgress  = errors.New(messages.AnalysisInProgress)
	ErrMatchRecordMissing  = errors.New(messages.MatchRecordMissing)
	errParticipantNotFound = errors.New("player is not a participant of the match")
)

// Provider is the Riot API as seen by a fetch cycle.
type Provider interface {
	ResolveIdentity(ctx context.Context, gameName, tagLine string) (*playerfetcher.Account, error)
	ResolveSummoner(ctx context.Context, puuid string) (*playerfetcher.SummonerByPuuid, error)
	ResolveLeague(ctx context.Context, puuid string) ([]leaguefetcher.LeagueEntry, error)
	ListRecentMatchIds(ctx context.Context, puuid string, count, queue int) ([]string, error)
	FetchMatch(ctx context.Context, matchId string) (*matchfetcher.MatchData, error)
}

// ProviderFactory returns the provider serving a platform.
type ProviderFactory func(platform string) (Provider, error)

// Redis methods used for the cooldown lock.
type ThrottleClient interface {
	SetNX(ctx context.Context, key string, value any, expiration time.Duration) *redis.BoolCmd
	TTL(ctx context.Context, key string) *redis.DurationCmd
}

// CollectorService runs the fetch cycles.
type CollectorService struct {
	providers ProviderFactory
	redis     ThrottleClient
	logger    logger.Logger
	cooldown  time.Duration
}

// CollectorServiceDeps is the dependency list for the collector service.
// Redis is optional, without it there is no cooldown between analyses.
type CollectorServiceDeps struct {
	Providers ProviderFactory
	Redis     ThrottleClient
	Logger    logger.Logger
	Cooldown  time.Duration
}

// Result of a fetch cycle.
type Result struct {
	Platform  string
	Account   *playerfetcher.Account
	Summoner  *playerfetcher.SummonerByPuuid
	SoloQueue *leaguefetcher.LeagueEntry // Nil when unranked or when the lookup failed.
	Rows      []stats.MatchParticipantRow
	Skipped   int
}

// NewCollectorService creates a collector service.
func NewCollectorService(deps *CollectorServiceDeps) *CollectorService {
	return &CollectorService{
		providers: deps.Providers,
		redis:     deps.Redis,
		logger:    deps.Logger,
		cooldown:  deps.Cooldown,
	}
}

// Collect resolves the player and builds one row per readable match, newest first.
// Match records that can't be read are logged and skipped.
func (cs *CollectorService) Collect(ctx context.Context, filter *filters.AnalysisFilter) (*Result, error) {
	provider, err := cs.providers(filter.Platform)
	if err != nil {
		return nil, err
	}

	if cs.redis != nil && cs.cooldown > 0 {
		key := createPlayerRateLimitKey(filter.GameName, filter.TagLine, filter.Platform, "analysis")
		redisCtx, cancel := context.WithTimeout(ctx, time.Second)
		err := cs.checkRateLimit(redisCtx, key, cs.cooldown)
		cancel()
		if err != nil {
			return nil, err
		}
	}

	account, err := provider.ResolveIdentity(ctx, filter.GameName, filter.TagLine)
	if err != nil {
		// Nothing was searched, don't blame the player.
		if errors.Is(err, requests.ErrMissingApiKey) || ctx.Err() != nil {
			return nil, err
		}
		cs.logger.Errorf("Couldn't resolve %s#%s on %s: %v", filter.GameName, filter.TagLine, filter.Platform, err)
		return nil, fmt.Errorf("%w: %s#%s", ErrPlayerNotFound, filter.GameName, filter.TagLine)
	}

	summoner, err := provider.ResolveSummoner(ctx, account.Puuid)
	if err != nil {
		cs.logger.Errorf("Couldn't get the summoner of %s: %v", account.Puuid, err)
		return nil, ErrProfileUnavailable
	}

	// The ranked badge is cosmetic, the analysis goes on without it.
	entries, err := provider.ResolveLeague(ctx, account.Puuid)
	if err != nil {
		cs.logger.Errorf("Couldn't get the league entries of %s: %v", account.Puuid, err)
	}

	matchIds, err := provider.ListRecentMatchIds(ctx, account.Puuid, filter.Count, filter.Queue)
	if err != nil {
		cs.logger.Errorf("Couldn't list the matches of %s: %v", account.Puuid, err)
		return nil, ErrNoMatchesFound
	}

	result := &Result{
		Platform:  filter.Platform,
		Account:   account,
		Summoner:  summoner,
		SoloQueue: leaguefetcher.FindQueue(entries, leaguefetcher.QueueSolo),
		Rows:      make([]stats.MatchParticipantRow, 0, len(matchIds)),
	}

	// Records are requested one at a time, the limiter spaces them.
	for _, matchId := range matchIds {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		row, err := cs.collectMatch(ctx, provider, matchId, account.Puuid)
		if err != nil {
			if ctx.Err() != nil {
				return nil, ctx.Err()
			}
			result.Skipped++
			cs.logger.Errorf("Skipping match %s: %v", matchId, err)
			continue
		}
		result.Rows = append(result.Rows, row)
	}

	if len(result.Rows) == 0 {
		return nil, ErrNoMatchesFound
	}

	cs.logger.Infof("Collected %d matches for %s#%s on %s, %d skipped", len(result.Rows), account.GameName, account.TagLine, filter.Platform, result.Skipped)
	return result, nil
}

// collectMatch fetches a record and extracts the tracked player's row.
func (cs *CollectorService) collectMatch(ctx context.Context, provider Provider, matchId, puuid string) (stats.MatchParticipantRow, error) {
	match, err := provider.FetchMatch(ctx, matchId)
	if err != nil {
		return stats.MatchParticipantRow{}, fmt.Errorf("%w: %w", ErrMatchRecordMissing, err)
	}

	player := match.FindParticipant(puuid)
	if player == nil {
		return stats.MatchParticipantRow{}, fmt.Errorf("%w: %w", ErrMatchRecordMissing, errParticipantNotFound)
	}

	return ToRow(matchId, match, player), nil
}

// ToRow flattens the participant entry of a match.
func ToRow(matchId string, match *matchfetcher.MatchData, player *matchfetcher.MatchPlayer) stats.MatchParticipantRow {
	row := stats.MatchParticipantRow{
		MatchId:              matchId,
		ChampionName:         player.ChampionName,
		Win:                  player.Win,
		Kills:                player.Kills,
		Deaths:               player.Deaths,
		Assists:              player.Assists,
		TotalMinionsKilled:   player.TotalMinionsKilled,
		NeutralMinionsKilled: player.NeutralMinionsKilled,
		VisionScore:          player.VisionScore,
		DragonKills:          player.DragonKills,
		BaronKills:           player.BaronKills,
		GameDurationSeconds:  match.Info.GameDuration,
	}

	// Objectives count takedowns, assists included, when the challenges block is there.
	// Older records only carry the player's own dragon and baron kills, heralds stay at zero.
	if c := player.Challenges; c != nil {
		row.DragonKills = c.DragonTakedowns
		row.HeraldKills = c.RiftHeraldTakedowns
		row.BaronKills = c.BaronTakedowns
	}
	return row
}

// createPlayerRateLimitKey generates a consistent hash-based key for rate limiting
func createPlayerRateLimitKey(gameName, tagLine, platform, prefix string) string {
	keyData := fmt.Sprintf("%s|%s|%s",
		strings.ToLower(gameName),
		strings.ToLower(tagLine),
		strings.ToLower(platform))

	hasher := sha256.New()
	hasher.Write([]byte(keyData))
	keyHash := hex.EncodeToString(hasher.Sum(nil))

	return fmt.Sprintf("%s:%s", prefix, keyHash)
}

// checkRateLimit takes the cooldown lock, or reports how long until it's released.
func (cs *CollectorService) checkRateLimit(ctx context.Context, rateLimitKey string, lockDuration time.Duration) error {
	lockAcquired, err := cs.redis.SetNX(ctx, rateLimitKey, "processing", lockDuration).Result()
	if err != nil {
		// The cooldown is a courtesy to the API, a redis outage shouldn't block analyses.
		cs.logger.Errorf("Couldn't check rate limits on redis: %v", err)
		return nil
	}

	if lockAcquired {
		return nil
	}

	ttl, err := cs.redis.TTL(ctx, rateLimitKey).Result()
	if err != nil || ttl <= 0 {
		return fmt.Errorf("%w, "+messages.PleaseWait, ErrAnalysisInProgress)
	}

	return fmt.Errorf("%w, "+messages.RetryIn, ErrAnalysisInProgress, int(ttl.Seconds()))
}
