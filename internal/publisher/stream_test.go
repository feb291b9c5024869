package publisher

import (
	"context"
	"encoding/json"
	"errors"
	"testing"

	"github.com/redis/go-redis/v9"

	domainreport "github.com/preston-bernstein/nba-stat-finder/internal/domain/report"
	"github.com/preston-bernstein/nba-stat-finder/internal/domain/stats"
)

type fakeStreamClient struct {
	args       []*redis.XAddArgs
	err        error
	closeCalls int
}

func (f *fakeStreamClient) XAdd(ctx context.Context, a *redis.XAddArgs) *redis.StringCmd {
	f.args = append(f.args, a)
	return redis.NewStringResult("1-0", f.err)
}

func (f *fakeStreamClient) Close() error {
	f.closeCalls++
	return nil
}

func sampleSummary() domainreport.DailySummary {
	return domainreport.DailySummary{
		Date:      "2024-01-15",
		GameLines: []string{"LAL 100 vs 95 BOS"},
		Leaders: stats.Leaders{
			stats.Points:   {Name: "Player X", Value: 30},
			stats.Assists:  {Name: "Player Y", Value: 9},
			stats.Rebounds: {Name: "Player Y", Value: 11},
			stats.Steals:   {Name: "Player Y", Value: 3},
			stats.Blocks:   {Name: "Player Y", Value: 2},
		},
	}
}

func TestPublishWritesSummaryToStream(t *testing.T) {
	client := &fakeStreamClient{}
	p := NewStreamPublisher(client, "custom.stream")

	if err := p.Publish(context.Background(), sampleSummary()); err != nil {
		t.Fatalf("expected no error, got %v", err)
	}
	if len(client.args) != 1 {
		t.Fatalf("expected one XAdd, got %d", len(client.args))
	}

	args := client.args[0]
	if args.Stream != "custom.stream" {
		t.Fatalf("unexpected stream %s", args.Stream)
	}
	values, ok := args.Values.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map values, got %T", args.Values)
	}
	if values["date"] != "2024-01-15" || values["games"] != 1 {
		t.Fatalf("unexpected values %+v", values)
	}

	var decoded domainreport.DailySummary
	if err := json.Unmarshal([]byte(values["data"].(string)), &decoded); err != nil {
		t.Fatalf("expected JSON payload, got %v", err)
	}
	if decoded.Leaders[stats.Points].Name != "Player X" {
		t.Fatalf("unexpected decoded payload %+v", decoded)
	}
	if values["text"] != sampleSummary().Text() {
		t.Fatalf("expected rendered text in stream entry")
	}
}

func TestPublishReturnsClientError(t *testing.T) {
	client := &fakeStreamClient{err: errors.New("connection refused")}
	p := NewStreamPublisher(client, "")

	if err := p.Publish(context.Background(), sampleSummary()); err == nil {
		t.Fatalf("expected error")
	}
	if p.Stream() != DefaultStream {
		t.Fatalf("expected default stream, got %s", p.Stream())
	}
}

func TestOpenRejectsBadURL(t *testing.T) {
	if _, err := Open("not a url", ""); err == nil {
		t.Fatalf("expected parse error")
	}
}

func TestOpenAndClose(t *testing.T) {
	p, err := Open("redis://localhost:6379/0", "s")
	if err != nil {
		t.Fatalf("unexpected error %v", err)
	}
	if err := p.Close(); err != nil {
		t.Fatalf("unexpected close error %v", err)
	}

	client := &fakeStreamClient{}
	if err := NewStreamPublisher(client, "s").Close(); err != nil || client.closeCalls != 1 {
		t.Fatalf("expected close delegated")
	}
	var nilPublisher *StreamPublisher
	if err := nilPublisher.Close(); err != nil {
		t.Fatalf("expected nil-safe close")
	}
}
