package testutil

import (
	"context"
	"sync"
	"sync/atomic"

	domaingames "github.com/preston-bernstein/nba-stat-finder/internal/domain/games"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

// StubProvider is a test double for providers.DataProvider. Games and
// GamesErr answer FetchGames; Stats and StatsErr answer FetchPlayerStats per
// game id.
type StubProvider struct {
	Games    []domaingames.Game
	GamesErr error
	Stats    map[int][]stats.PlayerGameStat
	StatsErr map[int]error

	// Gate, when set, blocks every stats fetch until it is closed.
	Gate chan struct{}

	GameCalls  atomic.Int32
	StatsCalls atomic.Int32

	mu          sync.Mutex
	inFlight    int
	maxInFlight int
	dates       []string
	gameIDs     []int
}

// FetchGames returns the configured games and error while tracking calls.
func (s *StubProvider) FetchGames(_ context.Context, date string) ([]domaingames.Game, error) {
	s.GameCalls.Add(1)
	s.mu.Lock()
	s.dates = append(s.dates, date)
	s.mu.Unlock()
	if s.GamesErr != nil {
		return nil, s.GamesErr
	}
	return s.Games, nil
}

// FetchPlayerStats returns the configured lines for gameID.
func (s *StubProvider) FetchPlayerStats(ctx context.Context, gameID int) ([]stats.PlayerGameStat, error) {
	s.StatsCalls.Add(1)
	s.mu.Lock()
	s.gameIDs = append(s.gameIDs, gameID)
	s.inFlight++
	if s.inFlight > s.maxInFlight {
		s.maxInFlight = s.inFlight
	}
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.inFlight--
		s.mu.Unlock()
	}()

	if s.Gate != nil {
		select {
		case <-s.Gate:
		case <-ctx.Done():
			return nil, ctx.Err()
		}
	}
	if err := s.StatsErr[gameID]; err != nil {
		return nil, err
	}
	return s.Stats[gameID], nil
}

// Dates returns the dates FetchGames was called with.
func (s *StubProvider) Dates() []string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]string(nil), s.dates...)
}

// GameIDs returns the game ids FetchPlayerStats was called with, in call order.
func (s *StubProvider) GameIDs() []int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]int(nil), s.gameIDs...)
}

// MaxInFlight returns the highest number of concurrent stats fetches observed.
func (s *StubProvider) MaxInFlight() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.maxInFlight
}
