package analysisservice

import (
	"context"
	"errors"
	"sync"
	"time"
	"winalyze/api/converters"
	"winalyze/api/dto"
	"winalyze/api/filters"
	repositories "winalyze/api/repositories/reference"
	collectorservice "winalyze/api/services/collector"
	"winalyze/pkg/logger"
	"winalyze/pkg/messages"
	tiervalues "winalyze/pkg/riotvalues/tier"
	"winalyze/pkg/stats"

	"github.com/google/uuid"
)

const (
	DirectionNext = "next"
	DirectionPrev = "prev"
)

var (
	ErrSessionNotFound  = errors.New(messages.SessionNotFound)
	ErrInvalidDirection = errors.New(messages.InvalidPageDirection)
)

// Runs a fetch cycle.
type Collector interface {
	Collect(ctx context.Context, filter *filters.AnalysisFilter) (*collectorservice.Result, error)
}

// Keeps the sessions alive between requests.
type SessionStore interface {
	Get(key string) (*Session, bool)
	Set(key string, value *Session, ttl time.Duration)
}

// Gives the ddragon version used on the icons.
type VersionResolver interface {
	LatestVersion(ctx context.Context) string
}

// Session is the result of a fetch cycle plus what the user is looking at.
// A new analysis replaces the whole session, the rows are never modified.
type Session struct {
	ID      string
	Player  dto.PlayerIdentity
	Rows    []stats.MatchParticipantRow
	Skipped int

	mu   sync.Mutex
	page int
	rank string
}

// AnalysisService builds the dashboard views from the sessions.
type AnalysisService struct {
	collector  Collector
	sessions   SessionStore
	versions   VersionResolver
	references repositories.ReferenceRepository
	logger     logger.Logger
	sessionTTL time.Duration
	pageSize   int
}

// AnalysisServiceDeps is the dependency list for the analysis service.
// References is optional, the built-in table is used without it.
type AnalysisServiceDeps struct {
	Collector  Collector
	Sessions   SessionStore
	Versions   VersionResolver
	References repositories.ReferenceRepository
	Logger     logger.Logger
	SessionTTL time.Duration
	PageSize   int
}

// NewAnalysisService creates an analysis service.
func NewAnalysisService(deps *AnalysisServiceDeps) *AnalysisService {
	pageSize := deps.PageSize
	if pageSize <= 0 {
		pageSize = stats.DefaultPageSize
	}

	return &AnalysisService{
		collector:  deps.Collector,
		sessions:   deps.Sessions,
		versions:   deps.Versions,
		references: deps.References,
		logger:     deps.Logger,
		sessionTTL: deps.SessionTTL,
		pageSize:   pageSize,
	}
}

// StartAnalysis runs a fetch cycle and stores its rows in a session.
// When the filter names a session, that session is replaced instead of creating a new one.
func (as *AnalysisService) StartAnalysis(ctx context.Context, filter *filters.AnalysisFilter) (*dto.AnalysisCreated, error) {
	sessionId := filter.SessionId
	if sessionId != "" {
		if _, err := as.getSession(sessionId); err != nil {
			return nil, err
		}
	}

	result, err := as.collector.Collect(ctx, filter)
	if err != nil {
		return nil, err
	}

	if sessionId == "" {
		sessionId = uuid.NewString()
	} else {
		as.logger.Infof("Replacing session %s with a new analysis of %s#%s", sessionId, result.Account.GameName, result.Account.TagLine)
	}

	session := &Session{
		ID: sessionId,
		Player: dto.PlayerIdentity{
			GameName:      result.Account.GameName,
			TagLine:       result.Account.TagLine,
			Puuid:         result.Account.Puuid,
			Platform:      result.Platform,
			ProfileIconId: result.Summoner.ProfileIconId,
			SummonerLevel: result.Summoner.SummonerLevel,
		},
		Rows:    result.Rows,
		Skipped: result.Skipped,
		page:    1,
		rank:    tiervalues.DefaultTier,
	}
	if solo := result.SoloQueue; solo != nil {
		session.Player.SoloTier = solo.Tier
		session.Player.SoloRank = solo.Rank
		session.Player.LeaguePoints = solo.LeaguePoints
	}
	as.sessions.Set(sessionId, session, as.sessionTTL)

	return &dto.AnalysisCreated{
		SessionId:  sessionId,
		Player:     session.Player,
		Matches:    len(session.Rows),
		Skipped:    session.Skipped,
		TotalPages: stats.TotalPages(len(session.Rows), as.pageSize),
	}, nil
}

// GetSummary returns the metrics and the radar against a tier.
// An empty tier keeps the last selected one, an unknown tier compares against GOLD.
func (as *AnalysisService) GetSummary(ctx context.Context, sessionId, tier string) (*dto.Summary, error) {
	session, err := as.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	metrics, err := stats.Aggregate(session.Rows)
	if err != nil {
		return nil, err
	}

	rank := session.selectRank(tier)
	reference := as.lookupReference(ctx, rank)
	version := as.versions.LatestVersion(ctx)

	return &dto.Summary{
		SessionId:  session.ID,
		Player:     session.Player,
		Metrics:    metrics,
		Cards:      converters.ConvertCards(metrics),
		Rank:       rank,
		RankName:   tiervalues.DisplayName(rank),
		Radar:      stats.Normalize(metrics, reference),
		MostPlayed: converters.ConvertStandings(stats.RankByPlayCount(session.Rows), version),
	}, nil
}

// GetPage returns a page of the match history.
// Page zero returns the current page, a page inside the history becomes the current one.
func (as *AnalysisService) GetPage(ctx context.Context, sessionId string, page int) (*dto.MatchPage, error) {
	session, err := as.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	session.mu.Lock()
	if page <= 0 {
		page = session.page
	} else if page <= stats.TotalPages(len(session.Rows), as.pageSize) {
		session.page = page
	}
	session.mu.Unlock()

	return as.renderPage(ctx, session, page), nil
}

// Navigate moves the current page one step, staying inside the history.
func (as *AnalysisService) Navigate(ctx context.Context, sessionId, direction string) (*dto.MatchPage, error) {
	if direction != DirectionNext && direction != DirectionPrev {
		return nil, ErrInvalidDirection
	}

	session, err := as.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	totalPages := stats.TotalPages(len(session.Rows), as.pageSize)

	session.mu.Lock()
	if direction == DirectionNext {
		session.page = min(session.page+1, totalPages)
	} else {
		session.page = max(session.page-1, 1)
	}
	page := session.page
	session.mu.Unlock()

	return as.renderPage(ctx, session, page), nil
}

// GetLeaderboards returns the most played and best winrate champions.
func (as *AnalysisService) GetLeaderboards(ctx context.Context, sessionId string) (*dto.Leaderboards, error) {
	session, err := as.getSession(sessionId)
	if err != nil {
		return nil, err
	}

	version := as.versions.LatestVersion(ctx)
	return &dto.Leaderboards{
		SessionId:   session.ID,
		MostPlayed:  converters.ConvertStandings(stats.RankByPlayCount(session.Rows), version),
		BestWinrate: converters.ConvertStandings(stats.RankByWinrate(session.Rows), version),
	}, nil
}

// ListReferences returns the reference table, lowest tier first.
func (as *AnalysisService) ListReferences(ctx context.Context) ([]stats.RankReference, error) {
	if as.references == nil {
		return stats.DefaultReferences(), nil
	}

	references, err := as.references.ListReferences(ctx)
	if err != nil {
		as.logger.Errorf("Couldn't list the rank references: %v", err)
		return stats.DefaultReferences(), nil
	}
	if len(references) == 0 {
		return stats.DefaultReferences(), nil
	}
	return references, nil
}

func (as *AnalysisService) getSession(sessionId string) (*Session, error) {
	session, ok := as.sessions.Get(sessionId)
	if !ok || session == nil {
		return nil, ErrSessionNotFound
	}
	return session, nil
}

func (as *AnalysisService) renderPage(ctx context.Context, session *Session, page int) *dto.MatchPage {
	subset := stats.Paginate(session.Rows, page, as.pageSize)
	return converters.ConvertMatchPage(session.ID, subset, as.versions.LatestVersion(ctx))
}

// lookupReference prefers the stored table and falls back to the built-in one.
func (as *AnalysisService) lookupReference(ctx context.Context, tier string) stats.RankReference {
	if as.references != nil {
		reference, err := as.references.GetReference(ctx, tier)
		if err == nil {
			return *reference
		}
		if !errors.Is(err, repositories.ErrReferenceNotFound) {
			as.logger.Errorf("Couldn't get the %s reference: %v", tier, err)
		}
	}
	return stats.ReferenceOrDefault(tier)
}

// selectRank stores a valid tier and returns the tier to compare against.
func (s *Session) selectRank(tier string) string {
	s.mu.Lock()
	defer s.mu.Unlock()

	if tier == "" {
		return s.rank
	}

	normalized, ok := tiervalues.NormalizeTier(tier)
	if !ok {
		return tiervalues.DefaultTier
	}
	s.rank = normalized
	return normalized
}
