package timer

import (
	"sync"

	"github.com/rs/zerolog"

	"github.com/dayzero-app/dayzero/util/logging"
)

// SignalSource is one stream of host events, e.g. tab visibility or window
// focus. Subscribe returns the matching unsubscribe.
type SignalSource interface {
	Subscribe(func()) (unsubscribe func())
}

// VisibilityCoordinator pauses the wrapped scheduler while the host is
// hidden and resumes it, with a data refresh, when the host is visible
// again. Each consumer owns its own coordinator and scheduler pair; there is
// no shared registry.
type VisibilityCoordinator struct {
	sync.Mutex
	*logging.Logging
	scheduler    *TickScheduler
	hidden       []SignalSource
	visible      []SignalSource
	unsubscribes []func()
	attached     bool
}

// NewVisibilityCoordinator wraps scheduler with the given signal sources;
// hidden sources drive Pause, visible sources drive Resume. Both the
// visibility-like and the focus-like source of the host must be wired, since
// either can fire without the other.
func NewVisibilityCoordinator(
	scheduler *TickScheduler,
	hidden []SignalSource,
	visible []SignalSource,
) *VisibilityCoordinator {
	return &VisibilityCoordinator{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "visibility-coordinator")
		}),
		scheduler: scheduler,
		hidden:    hidden,
		visible:   visible,
	}
}

// Attach subscribes to all signal sources; calling it again is a no-op.
func (vc *VisibilityCoordinator) Attach() error {
	vc.Lock()
	defer vc.Unlock()

	if vc.attached {
		return nil
	}

	for _, s := range vc.hidden {
		vc.unsubscribes = append(vc.unsubscribes, s.Subscribe(vc.onHidden))
	}

	for _, s := range vc.visible {
		vc.unsubscribes = append(vc.unsubscribes, s.Subscribe(vc.onVisible))
	}

	vc.attached = true

	vc.Log().Debug().
		Int("hidden_sources", len(vc.hidden)).
		Int("visible_sources", len(vc.visible)).
		Msg("attached")

	return nil
}

// Cleanup detaches from the signal sources and stops the scheduler; safe to
// call without a prior Attach.
func (vc *VisibilityCoordinator) Cleanup() error {
	vc.Lock()
	defer vc.Unlock()

	for _, unsubscribe := range vc.unsubscribes {
		unsubscribe()
	}

	vc.unsubscribes = nil
	vc.attached = false

	return vc.scheduler.Stop()
}

func (vc *VisibilityCoordinator) onHidden() {
	if err := vc.scheduler.Pause(); err != nil {
		vc.Log().Error().Err(err).Msg("failed to pause")
	}
}

func (vc *VisibilityCoordinator) onVisible() {
	if err := vc.scheduler.Resume(); err != nil {
		vc.Log().Error().Err(err).Msg("failed to resume")
	}
}

// Signal is a fan-out SignalSource; the host side bridges its events by
// calling Fire.
type Signal struct {
	sync.Mutex
	subscribers map[int]func()
	next        int
}

func NewSignal() *Signal {
	return &Signal{subscribers: map[int]func(){}}
}

func (sg *Signal) Subscribe(callback func()) func() {
	sg.Lock()
	defer sg.Unlock()

	id := sg.next
	sg.next++
	sg.subscribers[id] = callback

	return func() {
		sg.Lock()
		defer sg.Unlock()

		delete(sg.subscribers, id)
	}
}

// Fire invokes the current subscribers in subscription order.
func (sg *Signal) Fire() {
	sg.Lock()
	callbacks := make([]func(), 0, len(sg.subscribers))

	for i := 0; i < sg.next; i++ {
		if callback, found := sg.subscribers[i]; found {
			callbacks = append(callbacks, callback)
		}
	}
	sg.Unlock()

	for _, callback := range callbacks {
		callback()
	}
}
