package timer

import (
	"sync"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/dayzero-app/dayzero/util/errors"
	"github.com/dayzero-app/dayzero/util/localtime"
	"github.com/dayzero-app/dayzero/util/logging"
)

var SchedulerStoppedError = errors.NewError("scheduler already stopped")

var defaultTickInterval = time.Second

// State is the scheduler lifecycle; Stopped is terminal.
type State uint8

const (
	StateIdle State = iota
	StateRunning
	StatePaused
	StateStopped
)

func (st State) String() string {
	switch st {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// TickScheduler owns the single recurring cadence behind a live elapsed-time
// display. Each cycle re-reads the active timer from the provider, computes
// the breakdown and hands it to onTick; nothing is cached across ticks.
//
// The callbacks run while the scheduler lock is held; they must not call
// back into the scheduler.
type TickScheduler struct {
	sync.Mutex
	*logging.Logging
	onTick          func(ElapsedBreakdown)
	onRefreshNeeded func()
	provider        func() *ActiveTimer
	interval        time.Duration
	nowFunc         func() time.Time
	state           State
	stopChan        chan struct{}
}

func NewTickScheduler(
	onTick func(ElapsedBreakdown),
	onRefreshNeeded func(),
	provider func() *ActiveTimer,
) *TickScheduler {
	return &TickScheduler{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "tick-scheduler")
		}),
		onTick:          onTick,
		onRefreshNeeded: onRefreshNeeded,
		provider:        provider,
		interval:        defaultTickInterval,
		nowFunc:         localtime.UTCNow,
	}
}

// SetInterval overrides the 1-second cadence; only effective before the
// cadence is armed.
func (sc *TickScheduler) SetInterval(d time.Duration) *TickScheduler {
	sc.Lock()
	defer sc.Unlock()

	sc.interval = d

	return sc
}

// SetNowFunc overrides the clock, localtime.UTCNow by default.
func (sc *TickScheduler) SetNowFunc(f func() time.Time) *TickScheduler {
	sc.Lock()
	defer sc.Unlock()

	sc.nowFunc = f

	return sc
}

func (sc *TickScheduler) State() State {
	sc.Lock()
	defer sc.Unlock()

	return sc.state
}

// Start computes and emits once synchronously, then arms the cadence. When
// the provider has no active timer, the zero breakdown is emitted and no
// cadence is armed; a later Start picks up again. Starting a running
// scheduler is a no-op; a stopped one cannot be restarted.
func (sc *TickScheduler) Start() error {
	sc.Lock()
	defer sc.Unlock()

	switch sc.state {
	case StateStopped:
		return SchedulerStoppedError
	case StateRunning:
		return nil
	}

	return sc.run()
}

// Pause cancels the cadence without a final emission; the underlying ticker
// is released, not merely muted. No-op unless running.
func (sc *TickScheduler) Pause() error {
	sc.Lock()
	defer sc.Unlock()

	if sc.state != StateRunning {
		return nil
	}

	sc.state = StatePaused
	sc.cancelCadence()

	sc.Log().Debug().Msg("paused")

	return nil
}

// Resume asks the caller once to refresh its data, then computes, emits and
// re-arms like Start. The refresh is fire-and-forget; the next ticks read
// whatever the provider returns meanwhile. No-op unless paused.
func (sc *TickScheduler) Resume() error {
	sc.Lock()
	defer sc.Unlock()

	switch sc.state {
	case StateStopped:
		return SchedulerStoppedError
	case StatePaused:
	default:
		return nil
	}

	sc.onRefreshNeeded()

	return sc.run()
}

// Stop cancels the cadence and emits the zero breakdown exactly once; after
// Stop returns no onTick is delivered, even for a fire already scheduled.
// Idempotent.
func (sc *TickScheduler) Stop() error {
	sc.Lock()
	defer sc.Unlock()

	if sc.state == StateStopped {
		return nil
	}

	sc.cancelCadence()
	sc.state = StateStopped
	sc.onTick(ElapsedBreakdown{})

	sc.Log().Debug().Msg("stopped")

	return nil
}

func (sc *TickScheduler) run() error {
	if sc.interval < time.Nanosecond {
		return xerrors.Errorf("too narrow interval: %v", sc.interval)
	}

	active := sc.provider()
	if active == nil {
		sc.state = StateIdle
		sc.onTick(ElapsedBreakdown{})

		sc.Log().Debug().Msg("no active timer; cadence not armed")

		return nil
	}

	sc.onTick(BreakdownBetween(active.ResetInstant, sc.nowFunc()))

	sc.state = StateRunning
	sc.stopChan = make(chan struct{}, 1)

	go sc.clock(sc.stopChan)

	return nil
}

func (sc *TickScheduler) clock(stopChan chan struct{}) {
	ticker := time.NewTicker(sc.tickInterval())
	defer ticker.Stop()

	for {
		select {
		case <-stopChan:
			return
		case <-ticker.C:
			if !sc.tick(stopChan) {
				return
			}
		}
	}
}

// tick reports whether the cadence stays armed.
func (sc *TickScheduler) tick(stopChan chan struct{}) bool {
	sc.Lock()
	defer sc.Unlock()

	// the handle is cleared before the stop signal is sent; a fire racing
	// cancellation lands here and must lose.
	if sc.state != StateRunning || sc.stopChan != stopChan {
		return false
	}

	active := sc.provider()
	if active == nil {
		// active timer disappeared; quiesce after one zero emission
		sc.state = StateIdle
		sc.stopChan = nil
		sc.onTick(ElapsedBreakdown{})

		sc.Log().Debug().Msg("active timer disappeared; cadence halted")

		return false
	}

	sc.onTick(BreakdownBetween(active.ResetInstant, sc.nowFunc()))

	return true
}

func (sc *TickScheduler) tickInterval() time.Duration {
	sc.Lock()
	defer sc.Unlock()

	return sc.interval
}

func (sc *TickScheduler) cancelCadence() {
	if sc.stopChan == nil {
		return
	}

	ch := sc.stopChan
	sc.stopChan = nil
	ch <- struct{}{}
}
