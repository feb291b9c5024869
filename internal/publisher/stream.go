package publisher

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/redis/go-redis/v9"

	domainreport "github.com/preston-bernstein/nba-stat-finder/internal/domain/report"
)

// DefaultStream is the stream key used when none is configured.
const DefaultStream = "nba.daily_summaries"

type streamClient interface {
	XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd
	Close() error
}

// StreamPublisher appends finished daily summaries to a Redis stream.
type StreamPublisher struct {
	client streamClient
	stream string
}

// NewStreamPublisher creates a publisher over an existing client.
func NewStreamPublisher(client streamClient, stream string) *StreamPublisher {
	if strings.TrimSpace(stream) == "" {
		stream = DefaultStream
	}
	return &StreamPublisher{client: client, stream: stream}
}

// Open connects to the Redis server named by rawURL (redis://...).
func Open(rawURL, stream string) (*StreamPublisher, error) {
	opts, err := redis.ParseURL(rawURL)
	if err != nil {
		return nil, fmt.Errorf("parsing redis url: %w", err)
	}
	return NewStreamPublisher(redis.NewClient(opts), stream), nil
}

// Stream returns the stream key summaries are written to.
func (p *StreamPublisher) Stream() string {
	return p.stream
}

// Publish appends the summary, its rendered text, and the game count.
func (p *StreamPublisher) Publish(ctx context.Context, summary domainreport.DailySummary) error {
	data, err := json.Marshal(summary)
	if err != nil {
		return fmt.Errorf("marshaling daily summary: %w", err)
	}

	return p.client.XAdd(ctx, &redis.XAddArgs{
		Stream: p.stream,
		Values: map[string]interface{}{
			"date":  summary.Date,
			"games": len(summary.GameLines),
			"data":  string(data),
			"text":  summary.Text(),
		},
	}).Err()
}

// Close releases the underlying connection pool.
func (p *StreamPublisher) Close() error {
	if p == nil || p.client == nil {
		return nil
	}
	return p.client.Close()
}
