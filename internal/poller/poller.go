package poller

import (
	"context"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/cockroachdb/errors"
	"github.com/sourcegraph/conc/panics"
	"github.com/sourcegraph/conc/pool"

	"github.com/preston-bernstein/nhl-goal-notifier/internal/domain/games"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/logging"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/metrics"
	"github.com/preston-bernstein/nhl-goal-notifier/internal/providers"
)

const (
	defaultConcurrency = 4
	readyFailureLimit  = 3
)

// GameProcessor advances one game and reports its phase.
type GameProcessor interface {
	Process(ctx context.Context, gameID int64, teams []string, catchUp bool) games.Phase
}

// TeamLister lists the teams that currently have subscribers.
type TeamLister interface {
	ActiveTeams() []string
}

// Intervals holds the delays the scheduler picks between cycles.
type Intervals struct {
	Live          time.Duration
	Intermission  time.Duration
	PreGame       time.Duration
	ScheduleCheck time.Duration
	CatchUp       time.Duration
}

// DefaultIntervals returns the production cadence.
func DefaultIntervals() Intervals {
	return Intervals{
		Live:          10 * time.Second,
		Intermission:  60 * time.Second,
		PreGame:       5 * time.Minute,
		ScheduleCheck: 30 * time.Minute,
		CatchUp:       time.Second,
	}
}

func (i Intervals) withDefaults() Intervals {
	d := DefaultIntervals()
	if i.Live <= 0 {
		i.Live = d.Live
	}
	if i.Intermission <= 0 {
		i.Intermission = d.Intermission
	}
	if i.PreGame <= 0 {
		i.PreGame = d.PreGame
	}
	if i.ScheduleCheck <= 0 {
		i.ScheduleCheck = d.ScheduleCheck
	}
	if i.CatchUp <= 0 {
		i.CatchUp = d.CatchUp
	}
	return i
}

// SelectDelay picks the next poll delay from the phases seen in a cycle.
func (i Intervals) SelectDelay(phases []games.Phase) time.Duration {
	var intermission, preGame bool
	for _, phase := range phases {
		switch phase {
		case games.PhaseLive:
			return i.Live
		case games.PhaseIntermission:
			intermission = true
		case games.PhasePreGame:
			preGame = true
		}
	}
	switch {
	case intermission:
		return i.Intermission
	case preGame:
		return i.PreGame
	default:
		return i.ScheduleCheck
	}
}

// Status describes the recent health of the poll loop.
type Status struct {
	ConsecutiveFailures int           `json:"consecutiveFailures"`
	LastError           string        `json:"lastError,omitempty"`
	LastAttempt         time.Time     `json:"lastAttempt"`
	LastSuccess         time.Time     `json:"lastSuccess"`
	LastDelay           time.Duration `json:"lastDelay"`
}

// IsReady reports whether the poller has completed a cycle recently and is not failing repeatedly.
func (s Status) IsReady() bool {
	if s.LastSuccess.IsZero() {
		return false
	}
	return s.ConsecutiveFailures < readyFailureLimit
}

// Poller drives the tracker from a single re-armable timer. The delay after
// each cycle adapts to the most urgent phase it saw.
type Poller struct {
	schedule    providers.ScheduleProvider
	tracker     GameProcessor
	teams       TeamLister
	logger      *slog.Logger
	metrics     *metrics.Recorder
	intervals   Intervals
	concurrency int

	// timerMu guards the only live timer handle and the loop context.
	timerMu sync.Mutex
	timer   *time.Timer
	ctx     context.Context
	cancel  context.CancelFunc
	started bool
	stopped bool

	// cycleMu serialises cycle bodies.
	cycleMu sync.Mutex

	statusMu sync.RWMutex
	status   Status
}

// New constructs a Poller. Zero intervals fall back to DefaultIntervals.
func New(schedule providers.ScheduleProvider, tracker GameProcessor, teams TeamLister, logger *slog.Logger, recorder *metrics.Recorder, intervals Intervals, concurrency int) *Poller {
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		schedule:    schedule,
		tracker:     tracker,
		teams:       teams,
		logger:      logger,
		metrics:     recorder,
		intervals:   intervals.withDefaults(),
		concurrency: concurrency,
	}
}

// Start fires the first cycle immediately. Later calls are no-ops.
func (p *Poller) Start(ctx context.Context) {
	p.timerMu.Lock()
	if p.started || p.stopped {
		p.timerMu.Unlock()
		return
	}
	p.started = true
	p.ctx, p.cancel = context.WithCancel(ctx)
	p.timerMu.Unlock()

	logging.Info(p.logger, "poller started",
		"live_ms", p.intervals.Live.Milliseconds(),
		"schedule_check_ms", p.intervals.ScheduleCheck.Milliseconds(),
	)
	p.arm(0)
}

// Stop cancels the pending timer and in-flight work. It is safe to call more than once.
func (p *Poller) Stop(ctx context.Context) error {
	_ = ctx
	p.timerMu.Lock()
	defer p.timerMu.Unlock()
	if p.stopped {
		return nil
	}
	p.stopped = true
	if p.timer != nil {
		p.timer.Stop()
		p.timer = nil
	}
	if p.cancel != nil {
		p.cancel()
	}
	logging.Info(p.logger, "poller stopped")
	return nil
}

// Status returns a snapshot of the loop's recent health.
func (p *Poller) Status() Status {
	p.statusMu.RLock()
	defer p.statusMu.RUnlock()
	return p.status
}

// arm replaces the pending timer with one that fires after delay.
func (p *Poller) arm(delay time.Duration) {
	p.timerMu.Lock()
	defer p.timerMu.Unlock()
	if !p.started || p.stopped {
		return
	}
	if p.timer != nil {
		p.timer.Stop()
	}
	p.timer = time.AfterFunc(delay, p.fire)
}

func (p *Poller) loopContext() context.Context {
	p.timerMu.Lock()
	defer p.timerMu.Unlock()
	if p.ctx == nil {
		return context.Background()
	}
	return p.ctx
}

func (p *Poller) fire() {
	ctx := p.loopContext()
	if ctx.Err() != nil {
		return
	}

	var delay time.Duration
	var catcher panics.Catcher
	catcher.Try(func() {
		delay = p.RunCycle(ctx)
	})
	if recovered := catcher.Recovered(); recovered != nil {
		err := recovered.AsError()
		logging.Error(p.logger, "poll cycle panicked", err)
		p.recordFailure(err, time.Now())
		delay = p.intervals.ScheduleCheck
	}

	p.setDelay(delay)
	p.arm(delay)
}

// scheduleResult is one team's schedule fetch.
type scheduleResult struct {
	team  string
	games []games.ScheduledGame
	err   error
}

// RunCycle performs one poll cycle and returns the delay before the next one.
func (p *Poller) RunCycle(ctx context.Context) time.Duration {
	p.cycleMu.Lock()
	defer p.cycleMu.Unlock()

	start := time.Now()
	p.recordAttempt(start)

	teams := p.teams.ActiveTeams()
	if len(teams) == 0 {
		logging.Debug(p.logger, "no subscribed teams")
		p.recordSuccess(start)
		p.metrics.RecordPollerCycle(time.Since(start), nil)
		return p.intervals.ScheduleCheck
	}

	results := p.fetchSchedules(ctx, teams)
	interest, failures := collectGames(results)
	for _, res := range results {
		if res.err != nil {
			logging.Warn(p.logger, "schedule fetch failed", logging.FieldTeam, res.team, "error", res.err)
		}
	}

	ids := make([]int64, 0, len(interest))
	for id := range interest {
		ids = append(ids, id)
	}
	sort.Slice(ids, func(i, j int) bool { return ids[i] < ids[j] })

	phases := make([]games.Phase, 0, len(ids))
	for _, id := range ids {
		if ctx.Err() != nil {
			break
		}
		phases = append(phases, p.tracker.Process(ctx, id, interest[id], false))
	}

	delay := p.intervals.SelectDelay(phases)

	var cycleErr error
	if failures == len(teams) {
		cycleErr = errors.Wrapf(results[0].err, "all %d schedule fetches failed", failures)
		p.recordFailure(cycleErr, start)
	} else {
		p.recordSuccess(start)
	}
	p.metrics.RecordPollerCycle(time.Since(start), cycleErr)

	logging.Info(p.logger, "poll cycle complete",
		logging.FieldTeams, teams,
		logging.FieldCount, len(ids),
		logging.FieldDelayMS, delay.Milliseconds(),
		logging.FieldDurationMS, time.Since(start).Milliseconds(),
	)
	return delay
}

func (p *Poller) fetchSchedules(ctx context.Context, teams []string) []scheduleResult {
	workers := pool.NewWithResults[scheduleResult]().WithMaxGoroutines(p.concurrency)
	for _, team := range teams {
		workers.Go(func() scheduleResult {
			list, err := p.schedule.TodaysGames(ctx, team)
			return scheduleResult{team: team, games: list, err: err}
		})
	}
	return workers.Wait()
}

// collectGames maps each unfinished game to the teams interested in it.
func collectGames(results []scheduleResult) (map[int64][]string, int) {
	interest := make(map[int64][]string)
	failures := 0
	for _, res := range results {
		if res.err != nil {
			failures++
			continue
		}
		for _, game := range res.games {
			if game.Phase() == games.PhasePostGame {
				continue
			}
			interest[game.ID] = appendUnique(interest[game.ID], res.team)
		}
	}
	return interest, failures
}

func appendUnique(list []string, v string) []string {
	for _, existing := range list {
		if existing == v {
			return list
		}
	}
	return append(list, v)
}

func (p *Poller) recordAttempt(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastAttempt = at
}

func (p *Poller) recordSuccess(at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures = 0
	p.status.LastError = ""
	p.status.LastSuccess = at
}

func (p *Poller) recordFailure(err error, at time.Time) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.ConsecutiveFailures++
	if err != nil {
		p.status.LastError = err.Error()
	}
	p.status.LastAttempt = at
}

func (p *Poller) setDelay(d time.Duration) {
	p.statusMu.Lock()
	defer p.statusMu.Unlock()
	p.status.LastDelay = d
}
