package metrics

import (
	"errors"
	"testing"
	"time"
)

func TestRecorderTracksProviderAttemptsAndErrors(t *testing.T) {
	rec := NewRecorder()
	rec.RecordProviderAttempt("apinba", "games", 10*time.Millisecond, nil)
	rec.RecordProviderAttempt("apinba", "player_stats", 15*time.Millisecond, errors.New("boom"))

	if got := rec.ProviderCalls("apinba"); got != 2 {
		t.Fatalf("expected 2 calls, got %d", got)
	}
	if got := rec.ProviderErrors("apinba"); got != 1 {
		t.Fatalf("expected 1 error, got %d", got)
	}
	if got := rec.LastCallLatency("apinba"); got != 15*time.Millisecond {
		t.Fatalf("expected last latency to be 15ms, got %s", got)
	}

	snap := rec.Snapshot("apinba")
	if snap.Calls != 2 || snap.Errors != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}
	if other := rec.Snapshot("unknown"); other.Calls != 0 {
		t.Fatalf("expected empty stats for unknown provider, got %+v", other)
	}
}

func TestRecorderTracksReportBuilds(t *testing.T) {
	rec := NewRecorder()
	rec.RecordReportBuild(time.Millisecond, 3, nil)
	rec.RecordReportBuild(time.Millisecond, 0, errors.New("upstream"))

	snap := rec.Snapshot("")
	if snap.ReportBuilds != 2 || snap.ReportFailures != 1 || snap.LastReportGames != 0 {
		t.Fatalf("unexpected report stats %+v", snap)
	}
}

func TestRecorderTracksPublishes(t *testing.T) {
	rec := NewRecorder()
	rec.RecordPublish(nil)
	rec.RecordPublish(nil)
	rec.RecordPublish(errors.New("redis down"))

	snap := rec.Snapshot("")
	if snap.Published != 2 || snap.PublishFailures != 1 {
		t.Fatalf("unexpected publish stats %+v", snap)
	}
}

func TestNilRecorderIsSafe(t *testing.T) {
	var rec *Recorder
	rec.RecordProviderAttempt("p", "games", time.Millisecond, nil)
	rec.RecordReportBuild(time.Millisecond, 1, nil)
	rec.RecordPublish(nil)
	rec.RecordHTTPRequest("GET", "/", 200, time.Millisecond)
	if snap := rec.Snapshot("p"); snap != (Snapshot{}) {
		t.Fatalf("expected zero snapshot from nil recorder, got %+v", snap)
	}
}
