package engine

import (
	"syscall"

	"github.com/prism-zip/prism-dictation/internal/control"
)

// signalsAdapter adapts control.Signals's raw os.Signal values to the
// loop's signalKind enum, keeping the loop itself free of syscall details.
type signalsAdapter struct {
	signals *control.Signals
}

func newSignalsAdapter(s *control.Signals) *signalsAdapter {
	return &signalsAdapter{signals: s}
}

func (a *signalsAdapter) Drain() []signalKind {
	var out []signalKind
	for _, sig := range a.signals.Drain() {
		switch sig {
		case syscall.SIGUSR1, syscall.SIGTSTP:
			out = append(out, sigSuspend)
		case syscall.SIGCONT:
			out = append(out, sigResume)
		case syscall.SIGHUP:
			out = append(out, sigReload)
		}
	}
	return out
}
