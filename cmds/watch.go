package cmds

import (
	"os"
	"os/signal"
	"sync/atomic"
	"syscall"
	"time"

	"github.com/alecthomas/kong"
	"github.com/pkg/errors"

	"github.com/dayzero-app/dayzero/timer"
	"github.com/dayzero-app/dayzero/util/localtime"
	"github.com/dayzero-app/dayzero/util/logging"
)

// WatchCommand runs the live incident timer against a YAML store and prints
// every tick. SIGUSR1/SIGTSTP play the host's hidden/blurred signals,
// SIGUSR2/SIGCONT the visible/focused ones; SIGINT and SIGTERM clean up.
type WatchCommand struct {
	Store     string        `arg:"" name:"store" help:"timer store file (yaml)" type:"existingfile"`
	Interval  time.Duration `name:"interval" help:"tick cadence (default: ${interval})" default:"${interval}"`
	NTPServer string        `name:"ntp" help:"ntp server for clock sync" placeholder:"HOST"`
}

var WatchVars = kong.Vars{
	"interval": "1s",
}

func (cmd *WatchCommand) Run(log *logging.Logging) error {
	if cmd.NTPServer != "" {
		syncer, err := localtime.NewTimeSyncer(cmd.NTPServer, time.Minute)
		if err != nil {
			return errors.Wrap(err, "failed to create time syncer")
		}

		_ = syncer.SetLogging(log)

		if err := syncer.Start(); err != nil {
			return err
		}

		localtime.SetTimeSyncer(syncer)

		defer func() {
			localtime.SetTimeSyncer(nil)
			_ = syncer.Stop()
		}()
	}

	st, err := LoadTimerStore(cmd.Store)
	if err != nil {
		return err
	}

	var store atomic.Value
	store.Store(st)

	provider := func() *timer.ActiveTimer {
		s := store.Load().(*TimerStore)

		return timer.SelectActive(s.PublicRecord(), s.PersonalRecords())
	}

	onTick := func(eb timer.ElapsedBreakdown) {
		active := provider()
		if active == nil {
			log.Log().Info().Msg(timer.NoIncidentStatement)

			return
		}

		log.Log().Info().
			Str("clock", timer.CompactBetween(active.ResetInstant, localtime.UTCNow())).
			Str("timer", active.ID).
			Msg(eb.Verbose())
	}

	onRefreshNeeded := func() {
		go func() {
			s, err := LoadTimerStore(cmd.Store)
			if err != nil {
				log.Log().Error().Err(err).Msg("failed to reload timer store")

				return
			}

			store.Store(s)
		}()
	}

	sc := timer.NewTickScheduler(onTick, onRefreshNeeded, provider).
		SetInterval(cmd.Interval)
	_ = sc.SetLogging(log)

	hiddenTab, hiddenFocus := timer.NewSignal(), timer.NewSignal()
	visibleTab, visibleFocus := timer.NewSignal(), timer.NewSignal()

	vc := timer.NewVisibilityCoordinator(
		sc,
		[]timer.SignalSource{hiddenTab, hiddenFocus},
		[]timer.SignalSource{visibleTab, visibleFocus},
	)
	_ = vc.SetLogging(log)

	if err := vc.Attach(); err != nil {
		return err
	}

	if err := sc.Start(); err != nil {
		_ = vc.Cleanup()

		return err
	}

	sigChan := make(chan os.Signal, 2)
	signal.Notify(sigChan,
		syscall.SIGUSR1,
		syscall.SIGUSR2,
		syscall.SIGTSTP,
		syscall.SIGCONT,
		syscall.SIGINT,
		syscall.SIGTERM,
	)
	defer signal.Stop(sigChan)

	for sg := range sigChan {
		switch sg {
		case syscall.SIGUSR1:
			hiddenTab.Fire()
		case syscall.SIGTSTP:
			hiddenFocus.Fire()
		case syscall.SIGUSR2:
			visibleTab.Fire()
		case syscall.SIGCONT:
			visibleFocus.Fire()
		default:
			log.Log().Info().Str("signal", sg.String()).Msg("watch stopped")

			return vc.Cleanup()
		}
	}

	return nil
}
