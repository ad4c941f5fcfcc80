package metrics

import (
	"sync"
	"time"
)

type providerStats struct {
	calls           int
	errors          int
	rateLimitHits   int
	lastRetryAfter  time.Duration
	lastCallLatency time.Duration
}

type notifyStats struct {
	goals  int
	sent   int
	failed int
}

// Recorder keeps in-memory counters for provider calls and goal alerts and
// mirrors them to OpenTelemetry instruments when telemetry is enabled.
type Recorder struct {
	mu           sync.Mutex
	stats        map[string]*providerStats
	teams        map[string]*notifyStats
	trackedGames int64
	otel         *otelInstruments
}

func NewRecorder() *Recorder {
	return newRecorder(nil)
}

func newRecorder(otel *otelInstruments) *Recorder {
	return &Recorder{
		stats: make(map[string]*providerStats),
		teams: make(map[string]*notifyStats),
		otel:  otel,
	}
}

// RecordProviderAttempt increments counters for a provider call and stores the last observed latency.
func (r *Recorder) RecordProviderAttempt(provider string, duration time.Duration, err error) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.providerLocked(provider)
	stats.calls++
	stats.lastCallLatency = duration
	if err != nil {
		stats.errors++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordProviderAttempt(provider, duration, err)
	}
}

// RecordRateLimit tracks that a provider response hit a rate limit and stores the last Retry-After.
func (r *Recorder) RecordRateLimit(provider string, retryAfter time.Duration) {
	if r == nil {
		return
	}

	r.mu.Lock()
	stats := r.providerLocked(provider)
	stats.rateLimitHits++
	if retryAfter > 0 {
		stats.lastRetryAfter = retryAfter
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordRateLimit(provider, retryAfter)
	}
}

// RecordGoalDetected counts a newly seen scoring play for team.
func (r *Recorder) RecordGoalDetected(team string) {
	if r == nil {
		return
	}
	r.mu.Lock()
	r.teamLocked(team).goals++
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordGoal(team)
	}
}

// RecordNotification counts one delivery attempt to a single subscriber.
func (r *Recorder) RecordNotification(team string, err error) {
	if r == nil {
		return
	}
	r.mu.Lock()
	stats := r.teamLocked(team)
	if err != nil {
		stats.failed++
	} else {
		stats.sent++
	}
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.recordNotification(team, err)
	}
}

// AdjustTrackedGames moves the tracked-games gauge by delta.
func (r *Recorder) AdjustTrackedGames(delta int64) {
	if r == nil || delta == 0 {
		return
	}
	r.mu.Lock()
	r.trackedGames += delta
	r.mu.Unlock()

	if r.otel != nil {
		r.otel.adjustTrackedGames(delta)
	}
}

// TrackedGames reports the current gauge value.
func (r *Recorder) TrackedGames() int64 {
	if r == nil {
		return 0
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.trackedGames
}

// ProviderCalls returns the total attempts recorded for a provider.
func (r *Recorder) ProviderCalls(provider string) int {
	return r.Snapshot(provider).Calls
}

// ProviderErrors returns the total failed attempts recorded for a provider.
func (r *Recorder) ProviderErrors(provider string) int {
	return r.Snapshot(provider).Errors
}

// RateLimitHits returns the number of rate limit events seen for a provider.
func (r *Recorder) RateLimitHits(provider string) int {
	return r.Snapshot(provider).RateLimitHits
}

// LastRetryAfter returns the most recent Retry-After recorded for a provider.
func (r *Recorder) LastRetryAfter(provider string) time.Duration {
	return r.Snapshot(provider).LastRetryAfter
}

// Snapshot is a copy of the stats for one provider.
type Snapshot struct {
	Calls           int
	Errors          int
	RateLimitHits   int
	LastRetryAfter  time.Duration
	LastCallLatency time.Duration
}

func (r *Recorder) Snapshot(provider string) Snapshot {
	if r == nil {
		return Snapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.stats[provider]
	if !ok {
		return Snapshot{}
	}
	return Snapshot{
		Calls:           stats.calls,
		Errors:          stats.errors,
		RateLimitHits:   stats.rateLimitHits,
		LastRetryAfter:  stats.lastRetryAfter,
		LastCallLatency: stats.lastCallLatency,
	}
}

// TeamSnapshot is a copy of the alert counters for one team.
type TeamSnapshot struct {
	Goals  int
	Sent   int
	Failed int
}

func (r *Recorder) Team(team string) TeamSnapshot {
	if r == nil {
		return TeamSnapshot{}
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	stats, ok := r.teams[team]
	if !ok {
		return TeamSnapshot{}
	}
	return TeamSnapshot{Goals: stats.goals, Sent: stats.sent, Failed: stats.failed}
}

// RecordHTTPRequest tracks basic HTTP metrics.
func (r *Recorder) RecordHTTPRequest(method, path string, status int, duration time.Duration) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordHTTPRequest(method, path, status, duration)
}

// RecordPollerCycle tracks poller cycles and errors.
func (r *Recorder) RecordPollerCycle(duration time.Duration, err error) {
	if r == nil || r.otel == nil {
		return
	}
	r.otel.recordPoller(duration, err)
}

func (r *Recorder) providerLocked(provider string) *providerStats {
	stats, ok := r.stats[provider]
	if !ok {
		stats = &providerStats{}
		r.stats[provider] = stats
	}
	return stats
}

func (r *Recorder) teamLocked(team string) *notifyStats {
	stats, ok := r.teams[team]
	if !ok {
		stats = &notifyStats{}
		r.teams[team] = stats
	}
	return stats
}
