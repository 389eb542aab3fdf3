package engine

import (
	"fmt"
	"os"

	"github.com/prism-zip/prism-dictation/internal/control"
	"github.com/prism-zip/prism-dictation/internal/statuslog"
	"github.com/prism-zip/prism-dictation/internal/textproc"
	"github.com/prism-zip/prism-dictation/internal/userhook"
)

// textPipeline post-processes recognized text: number formatting, the
// user's custom hook script, and run-on punctuation when this recording
// picks up immediately after a previous one left off.
type textPipeline struct {
	procOpts  textproc.Options
	isRunOn   bool
	hookPath  string
	log       *statuslog.Logger
	hook      *userhook.Hook
	firstCall bool
}

func newTextPipeline(procOpts textproc.Options, isRunOn bool, hookPath string, log *statuslog.Logger) *textPipeline {
	return &textPipeline{procOpts: procOpts, isRunOn: isRunOn, hookPath: hookPath, log: log, firstCall: true}
}

// Process applies number/capitalization rules, the user hook (if any), and
// run-on punctuation. Calling it with an empty string reloads the user
// hook without producing output, mirroring the original tool's SIGHUP
// handler.
//
// A hook that fails to load on its very first attempt, throws, or returns
// something other than a string is fatal and returned as an error; a hook
// that fails to reload on a later call is logged and the previous hook (if
// any) keeps running, matching the original tool's SIGHUP behavior.
func (p *textPipeline) Process(text string) (string, error) {
	if p.firstCall || text == "" {
		if err := p.reloadHook(); err != nil {
			return "", err
		}
	}
	if text == "" {
		return "", nil
	}

	text = textproc.Process(text, p.procOpts)

	if p.hook != nil {
		out, err := p.hook.Process(text)
		if err != nil {
			return "", err
		}
		text = out
	}

	if p.isRunOn {
		if p.procOpts.FullSentence {
			text = ". " + text
		} else {
			text = ", " + text
		}
	}

	p.firstCall = false
	return text, nil
}

// reloadHook (re)loads the user hook script. Failing to load it for the
// very first time is fatal, since there is no previous hook to fall back
// to; failing a later reload keeps the previous hook and only logs.
func (p *textPipeline) reloadHook() error {
	if p.hookPath == "" {
		return nil
	}
	hook, err := userhook.Reload(p.hookPath, p.hook)
	if err != nil {
		if p.hook == nil {
			return fmt.Errorf("loading user hook: %w", err)
		}
		p.log.Error("user hook load error: %v", err)
		return nil
	}
	p.hook = hook
	return nil
}

// isRunOnFromCookieAge reports whether a pre-existing cookie's age is
// within punctuateFromPreviousTimeout, meaning this recording continues
// the previous one's sentence.
func isRunOnFromCookieAge(cookiePath string, punctuateFromPreviousTimeout float64) bool {
	if punctuateFromPreviousTimeout <= 0.0 {
		return false
	}
	if _, err := os.Stat(cookiePath); err != nil {
		return false
	}
	age, err := control.AgeInSeconds(cookiePath)
	if err != nil {
		return false
	}
	return age < punctuateFromPreviousTimeout
}
