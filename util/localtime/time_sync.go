package localtime

import (
	"sync"
	"time"

	"github.com/beevik/ntp"
	"github.com/rs/zerolog"
	"golang.org/x/xerrors"

	"github.com/dayzero-app/dayzero/util"
	"github.com/dayzero-app/dayzero/util/logging"
)

var (
	minTimeSyncCheckInterval = time.Second * 5
	syncerLock               sync.RWMutex
	timeSyncer               *TimeSyncer
)

// TimeSyncer keeps the offset against the given NTP server; Now() applies
// the offset.
type TimeSyncer struct {
	sync.RWMutex
	*logging.Logging
	server   string
	offset   time.Duration
	interval time.Duration
	stopChan chan struct{}
	started  bool
}

// NewTimeSyncer creates new TimeSyncer; the server must be reachable at
// least once.
func NewTimeSyncer(server string, checkInterval time.Duration) (*TimeSyncer, error) {
	if err := util.Retry(3, time.Second*2, func(int) error {
		if _, err := ntp.Query(server); err != nil {
			return xerrors.Errorf("failed to query ntp server, %q: %w", server, err)
		}

		return nil
	}); err != nil {
		return nil, err
	}

	ts := &TimeSyncer{
		Logging: logging.NewLogging(func(c zerolog.Context) zerolog.Context {
			return c.Str("module", "time-syncer").
				Str("server", server).
				Dur("interval", checkInterval)
		}),
		server:   server,
		interval: checkInterval,
		stopChan: make(chan struct{}, 1),
	}

	ts.check()

	return ts, nil
}

func (ts *TimeSyncer) Start() error {
	ts.Lock()
	defer ts.Unlock()

	if ts.started {
		return util.DaemonAlreadyStartedError
	}

	if ts.interval < minTimeSyncCheckInterval {
		ts.Log().Warn().
			Dur("check_interval", ts.interval).
			Dur("min_check_interval", minTimeSyncCheckInterval).
			Msg("interval too short")
	}

	ts.started = true
	ts.stopChan = make(chan struct{}, 1)

	go ts.schedule()

	ts.Log().Debug().Msg("started")

	return nil
}

func (ts *TimeSyncer) Stop() error {
	ts.Lock()
	defer ts.Unlock()

	if !ts.started {
		return util.DaemonAlreadyStoppedError
	}

	ts.started = false
	ts.stopChan <- struct{}{}

	ts.Log().Debug().Msg("stopped")

	return nil
}

func (ts *TimeSyncer) IsStarted() bool {
	ts.RLock()
	defer ts.RUnlock()

	return ts.started
}

func (ts *TimeSyncer) IsStopped() bool {
	return !ts.IsStarted()
}

func (ts *TimeSyncer) schedule() {
	ticker := time.NewTicker(ts.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ts.stopChan:
			return
		case <-ticker.C:
			ts.check()
		}
	}
}

// Offset returns the latest time offset.
func (ts *TimeSyncer) Offset() time.Duration {
	ts.RLock()
	defer ts.RUnlock()

	return ts.offset
}

func (ts *TimeSyncer) check() {
	response, err := ntp.Query(ts.server)
	if err != nil {
		ts.Log().Error().Err(err).Msg("failed to query")

		return
	}

	if err := response.Validate(); err != nil {
		ts.Log().Error().Err(err).
			Interface("response", response).
			Msg("invalid response")

		return
	}

	ts.Lock()
	ts.offset = response.ClockOffset
	ts.Unlock()

	ts.Log().Debug().
		Dur("offset", response.ClockOffset).
		Msg("time checked")
}

// SetTimeSyncer sets the global TimeSyncer; Now() and UTCNow() start to
// apply its offset.
func SetTimeSyncer(syncer *TimeSyncer) {
	syncerLock.Lock()
	defer syncerLock.Unlock()

	timeSyncer = syncer
}
