package report

import (
	"context"
	"log/slog"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/preston-bernstein/nba-stat-finder/internal/app/leaders"
	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	domainreport "github.com/preston-bernstein/nba-stat-finder/internal/domain/report"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/metrics"
	"github.com/preston-bernstein/nba-stat-finder/internal/providers"
)

// Publisher receives finished summaries. Failures are logged and never
// affect the caller's result.
type Publisher interface {
	Publish(ctx context.Context, summary domainreport.DailySummary) error
}

// Service builds daily summaries from a game provider and a stats provider.
type Service struct {
	games       providers.GameProvider
	stats       providers.StatsProvider
	logger      *slog.Logger
	metrics     *metrics.Recorder
	publisher   Publisher
	concurrency int
	keyMode     leaders.KeyMode
	now         func() time.Time
}

// NewService constructs a Service. Per-game fetches run sequentially and
// leaders are keyed by game unless options say otherwise.
func NewService(games providers.GameProvider, stats providers.StatsProvider, opts ...Option) *Service {
	s := &Service{
		games:       games,
		stats:       stats,
		concurrency: 1,
		keyMode:     leaders.KeyByGame,
		now:         time.Now,
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Build fetches the games for date, formats them, and computes the day's
// stat leaders. The first failing upstream call aborts the build and its
// error is returned as is.
func (s *Service) Build(ctx context.Context, date string) (domainreport.DailySummary, error) {
	if s.games == nil || s.stats == nil {
		return domainreport.DailySummary{}, providers.ErrProviderUnavailable
	}

	start := s.now()
	summary, err := s.build(ctx, date)
	s.metrics.RecordReportBuild(s.now().Sub(start), len(summary.GameLines), err)
	if err != nil {
		return domainreport.DailySummary{}, err
	}

	s.publish(ctx, summary)
	return summary, nil
}

func (s *Service) build(ctx context.Context, date string) (domainreport.DailySummary, error) {
	games, err := s.games.FetchGames(ctx, date)
	if err != nil {
		return domainreport.DailySummary{}, err
	}

	summary := domainreport.DailySummary{Date: date, GameLines: FormatGames(games)}
	if len(games) == 0 {
		return summary, nil
	}

	ids := domaingames.IDs(games)
	perGame := make([]leaders.GameLeaders, len(ids))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.concurrency)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			lines, err := s.stats.FetchPlayerStats(gctx, id)
			if err != nil {
				return err
			}
			perGame[i] = leaders.GameLeaders{GameID: id, Leaders: leaders.Extract(lines)}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return domainreport.DailySummary{}, err
	}

	summary.Leaders, err = leaders.Reduce(perGame, s.keyMode)
	if err != nil {
		return domainreport.DailySummary{}, err
	}
	return summary, nil
}

func (s *Service) publish(ctx context.Context, summary domainreport.DailySummary) {
	if s.publisher == nil {
		return
	}
	err := s.publisher.Publish(ctx, summary)
	s.metrics.RecordPublish(err)
	if err != nil {
		logging.Warn(logging.FromContext(ctx, s.logger), "summary publish failed",
			slog.String(logging.FieldDate, summary.Date),
			slog.Any("error", err),
		)
	}
}
