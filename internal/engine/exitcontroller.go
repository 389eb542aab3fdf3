package engine

import (
	"time"

	"github.com/prism-zip/prism-dictation/internal/control"
)

// exitCode mirrors the original tool's exit_fn return convention.
type exitCode int

const (
	exitContinue exitCode = 0
	exitFinish   exitCode = 1
	exitCancel   exitCode = -1
)

// exitController decides when a recording session should end by watching
// its cookie file: the "end" subcommand bumps the cookie's mtime away from
// the value recorded at start, and the "cancel" subcommand removes it
// entirely.
type exitController struct {
	cookiePath     string
	startMtime     int64
	useOvertime    bool
	delayExit      float64
	touchTime      time.Time
	touchTimeIsSet bool
	now            func() time.Time
}

func newExitController(cookiePath string, startMtime int64, delayExit, timeout float64) *exitController {
	return &exitController{
		cookiePath:  cookiePath,
		startMtime:  startMtime,
		useOvertime: delayExit > 0.0 && timeout == 0.0,
		delayExit:   delayExit,
		now:         time.Now,
	}
}

// Check evaluates whether the session should end, continuing the
// delay_exit overtime window only once some text has actually been
// handled, so an accidental tap of push-to-talk doesn't hang around.
func (e *exitController) Check(handledAny bool) exitCode {
	mtime, exists, err := control.MtimeOrZero(e.cookiePath)
	if err != nil || !exists {
		return exitCancel
	}
	if mtime == e.startMtime {
		return exitContinue
	}

	if handledAny && e.useOvertime {
		if !e.touchTimeIsSet {
			e.touchTime = e.now()
			e.touchTimeIsSet = true
		}
		if e.now().Sub(e.touchTime).Seconds() < e.delayExit {
			return exitContinue
		}
	}

	return exitFinish
}
