package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	lastCallLatency time.Duration
}

type reportStats struct {
	builds    int
	failures  int
	lastGames int
	published int
	pubErrors int
}

// Recorder captures lightweight, in-memory metrics about provider calls and
// report builds, and forwards them to OpenTelemetry instruments when set up.
type Recorder struct {
	mu      sync.Mutex
	stats   map[string]*providerStats
	reports reportStats
	otel    *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
// The operation distinguishes games lookups from per-game statistics lookups.
func (r *Recorder) RecordProviderAttempt(provider, operation string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, operation, duration, err)
	}
}

// RecordReportBuild tracks one daily report build and how many games it covered.
func (r *Recorder) RecordReportBuild(duration time.Duration, games int, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	r.reports.builds++
	r.reports.lastGames = games
	if err != nil {
		r.reports.failures++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordReportBuild(duration, games, err)
	}
}

// RecordPublish tracks one attempt to hand a finished summary downstream.
func (r *Recorder) RecordPublish(err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	if err != nil {
		r.reports.pubErrors++
	} else {
		r.reports.published++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordPublish(err)
	}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// LastCallLatency returns the last recorded latency for a provider call.
func (r *Recorder) LastCallLatency(provider string) time.Duration {
	return r.Snapshot(provider).LastCallLatency
}

// Snapshot is a point-in-time copy of provider and report stats.
type Snapshot struct {
	Calls           int
	Errors          int
	LastCallLatency time.Duration
	ReportBuilds    int
	ReportFailures  int
	LastReportGames int
	Published       int
	PublishFailures int
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	snap := Snapshot{
		ReportBuilds:    r.reports.builds,
		ReportFailures:  r.reports.failures,
		LastReportGames: r.reports.lastGames,
		Published:       r.reports.published,
		PublishFailures: r.reports.pubErrors,
	}
	if stats, ok := r.stats[provider]; ok && stats != nil {
		snap.Calls = stats.calls
		snap.Errors = stats.errors
		snap.LastCallLatency = stats.lastCallLatency
	}
	return snap
}
