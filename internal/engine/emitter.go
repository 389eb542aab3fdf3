package engine

import "strings"

// deliverer is the subset of typingsink.Sink the emitter needs, named
// independently so tests can supply a recorder in place of a real sink.
type deliverer interface {
	Deliver(deletePrevChars int, text string) error
}

// emitter reproduces the original tool's handle_fn_wrapper: in deferred
// mode it accumulates recognized phrases and emits them once, complete, at
// the end of the session; in progressive mode it emits the minimal diff
// between the previous and current candidate text as soon as each VOSK
// result arrives, so dictation appears as the speaker talks.
type emitter struct {
	progressive           bool
	progressiveContinuous bool
	process               func(string) (string, error)
	sink                  deliverer

	textList   []string
	textPrev   string
	handledAny bool
}

func newEmitter(progressive, progressiveContinuous bool, process func(string) (string, error), sink deliverer) *emitter {
	return &emitter{progressive: progressive, progressiveContinuous: progressiveContinuous, process: process, sink: sink}
}

// HandledAny reports whether any result has been handled since the last
// Suspended call: a partial or final in progressive mode, a final only in
// deferred mode.
func (e *emitter) HandledAny() bool { return e.handledAny }

// Suspended clears accumulated state, called when recording is paused so
// nothing from before the pause leaks into the next segment.
func (e *emitter) Suspended() {
	e.handledAny = false
	e.textPrev = ""
	if !(e.progressive && e.progressiveContinuous) {
		e.textList = nil
	}
}

// Handle processes one recognized phrase, text, which is either a partial
// (in-progress, still mutable) or final (settled) VOSK result.
func (e *emitter) Handle(text string, isPartial bool) error {
	if !e.progressive {
		if isPartial {
			return nil
		}
		e.textList = append(e.textList, text)
		e.handledAny = true
		return nil
	}

	var textCurr string
	var err error
	if e.progressiveContinuous {
		textCurr, err = e.process(text)
	} else {
		textCurr, err = e.process(strings.Join(append(append([]string(nil), e.textList...), text), " "))
	}
	if err != nil {
		return err
	}

	if textCurr != e.textPrev {
		deletePrevChars, suffix := diffSuffix(e.textPrev, textCurr)
		if err := e.sink.Deliver(deletePrevChars, suffix); err != nil {
			return err
		}
		e.textPrev = textCurr
	}

	if !isPartial {
		if e.progressiveContinuous {
			e.textPrev = ""
		} else {
			e.textList = append(e.textList, text)
		}
	}

	e.handledAny = true
	return nil
}

// FinishDeferred delivers the full accumulated text at once. It is a no-op
// in progressive mode, where text was already delivered incrementally.
func (e *emitter) FinishDeferred() error {
	if e.progressive {
		return nil
	}
	text, err := e.process(strings.Join(e.textList, " "))
	if err != nil {
		return err
	}
	return e.sink.Deliver(0, text)
}
