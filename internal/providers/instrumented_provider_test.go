package providers

import (
	"bytes"
	"context"
	"errors"
	"log/slog"
	"strings"
	"testing"
	"time"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
	"github.com/preston-bernstein/nba-stat-finder/internal/logging"
	"github.com/preston-bernstein/nba-stat-finder/internal/metrics"
)

type scriptedProvider struct {
	games    []domaingames.Game
	lines    []stats.PlayerGameStat
	err      error
	calls    int
	lastDate string
	lastGame int
}

func (s *scriptedProvider) FetchGames(ctx context.Context, date string) ([]domaingames.Game, error) {
	s.calls++
	s.lastDate = date
	return s.games, s.err
}

func (s *scriptedProvider) FetchPlayerStats(ctx context.Context, gameID int) ([]stats.PlayerGameStat, error) {
	s.calls++
	s.lastGame = gameID
	return s.lines, s.err
}

func TestInstrumentedProviderPassesThroughAndRecords(t *testing.T) {
	inner := &scriptedProvider{
		games: []domaingames.Game{{ID: 1}},
		lines: []stats.PlayerGameStat{{FirstName: "A", LastName: "B"}},
	}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, nil, rec, "apinba")

	games, err := p.FetchGames(context.Background(), "2024-01-15")
	if err != nil || len(games) != 1 {
		t.Fatalf("unexpected games result %v %v", games, err)
	}
	if inner.lastDate != "2024-01-15" {
		t.Fatalf("expected date forwarded, got %q", inner.lastDate)
	}

	lines, err := p.FetchPlayerStats(context.Background(), 42)
	if err != nil || len(lines) != 1 {
		t.Fatalf("unexpected stats result %v %v", lines, err)
	}
	if inner.lastGame != 42 {
		t.Fatalf("expected game id forwarded, got %d", inner.lastGame)
	}

	if got := rec.ProviderCalls("apinba"); got != 2 {
		t.Fatalf("expected 2 recorded calls, got %d", got)
	}
	if got := rec.ProviderErrors("apinba"); got != 0 {
		t.Fatalf("expected no errors, got %d", got)
	}
}

func TestInstrumentedProviderDoesNotRetry(t *testing.T) {
	inner := &scriptedProvider{err: &RemoteTransportError{Provider: "apinba", StatusCode: 503}}
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(inner, nil, rec, "apinba")

	_, err := p.FetchGames(context.Background(), "2024-01-15")
	if _, ok := AsRemoteTransportError(err); !ok {
		t.Fatalf("expected transport error passed through unchanged, got %v", err)
	}
	if inner.calls != 1 {
		t.Fatalf("expected a single attempt, got %d", inner.calls)
	}
	if got := rec.ProviderErrors("apinba"); got != 1 {
		t.Fatalf("expected 1 recorded error, got %d", got)
	}

	if _, err := p.FetchPlayerStats(context.Background(), 1); err == nil {
		t.Fatalf("expected stats error")
	}
}

func TestInstrumentedProviderLogsToRequestLogger(t *testing.T) {
	var buf bytes.Buffer
	scoped := slog.New(slog.NewTextHandler(&buf, nil))
	ctx := logging.WithLogger(context.Background(), scoped)

	p := NewInstrumentedProvider(&scriptedProvider{err: errors.New("boom")}, nil, nil, "")
	_, _ = p.FetchGames(ctx, "2024-01-15")

	out := buf.String()
	if !strings.Contains(out, "games fetch failed") || !strings.Contains(out, "provider=provider") {
		t.Fatalf("expected failure logged with fallback provider name, got %q", out)
	}
}

func TestInstrumentedProviderMeasuresLatency(t *testing.T) {
	rec := metrics.NewRecorder()
	p := NewInstrumentedProvider(&scriptedProvider{}, nil, rec, "apinba").(*instrumentedProvider)
	ticks := []time.Time{time.Unix(0, 0), time.Unix(0, 0).Add(25 * time.Millisecond)}
	p.now = func() time.Time {
		t := ticks[0]
		ticks = ticks[1:]
		return t
	}

	_, _ = p.FetchGames(context.Background(), "2024-01-15")
	if got := rec.LastCallLatency("apinba"); got != 25*time.Millisecond {
		t.Fatalf("expected 25ms latency, got %s", got)
	}
}

func TestInstrumentedProviderHandlesNilInner(t *testing.T) {
	p := NewInstrumentedProvider(nil, nil, nil, "apinba")
	if _, err := p.FetchGames(context.Background(), "2024-01-15"); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
	if _, err := p.FetchPlayerStats(context.Background(), 1); !errors.Is(err, ErrProviderUnavailable) {
		t.Fatalf("expected ErrProviderUnavailable, got %v", err)
	}
}
