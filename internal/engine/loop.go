package engine

import (
	"time"

	"github.com/prism-zip/prism-dictation/internal/recognizer"
	"github.com/prism-zip/prism-dictation/internal/statuslog"
	"github.com/prism-zip/prism-dictation/internal/typingsink"
)

// audioStream is the subset of audiosource.Source the loop depends on,
// named independently so tests can substitute a scripted stream.
type audioStream interface {
	Read(buf []byte) (int, error)
	Stop() error
}

// audioStarter launches a new capture stream, used both at recording start
// and again on every resume from suspend.
type audioStarter func() (audioStream, error)

const blockSize = 1 << 20 // 1mb, matches the original tool's read chunk size.

// loopConfig bundles everything the recording loop needs. It is
// deliberately built from narrow interfaces (audioStarter, recognizer.Engine,
// typingsink.Sink) rather than concrete packages so the loop can be driven by
// fakes in tests.
type loopConfig struct {
	StartAudio            audioStarter
	Rec                   recognizer.Engine
	Exit                  func(handledAny bool) exitCode
	Process               func(string) (string, error)
	Sink                  typingsink.Sink
	Progressive           bool
	ProgressiveContinuous bool
	Timeout               float64
	IdleTime              float64
	SuspendOnStart        bool
	Verbose               int
	Log                   *statuslog.Logger
	Signals               signalSource
	Sleep                 func(time.Duration)
	Now                   func() time.Time
	StopSelf              func() error
}

// signalSource is the subset of control.Signals the loop depends on.
type signalSource interface {
	Drain() []signalKind
}

// signalKind abstracts over os.Signal so loop tests don't need real OS
// signals; control.Signals is adapted to this via signalsAdapter.
type signalKind int

const (
	sigSuspend signalKind = iota
	sigResume
	sigReload
)

// run executes one full recording session: it reads PCM from the capture
// stream, feeds it to the recognizer, emits partial/final results through
// emitter, and reacts to suspend/resume/reload signals and the exit
// controller, until the session ends, is canceled, or times out.
//
// It mirrors the original tool's text_from_vosk_pipe.
func run(cfg loopConfig) (handledAny bool, canceled bool, err error) {
	em := newEmitter(cfg.Progressive, cfg.ProgressiveContinuous, cfg.Process, cfg.Sink)

	var stream audioStream
	suspended := cfg.SuspendOnStart
	if !suspended {
		stream, err = cfg.StartAudio()
		if err != nil {
			return false, false, err
		}
		if err := cfg.Sink.Setup(); err != nil {
			return false, false, err
		}
	}

	useTimeout := cfg.Timeout != 0.0
	var timeoutTextPrev string
	var timeoutTimePrev time.Time
	if useTimeout {
		timeoutTimePrev = cfg.Now()
	}

	idleTimePrev := cfg.Now()

	suspendPause := func() error {
		if final, err := readFinal(cfg.Rec); err == nil && final != "" {
			if err := em.Handle(final, false); err != nil {
				return err
			}
		}
		if err := cfg.Rec.Reset(); err != nil {
			return err
		}
		em.Suspended()
		if cfg.Verbose >= 1 {
			cfg.Log.Status("Recording suspended.")
		}
		if stream != nil {
			if err := cfg.Sink.Teardown(); err != nil {
				return err
			}
			stream.Stop()
			stream = nil
		}
		return nil
	}

	suspendResume := func() error {
		if cfg.Verbose >= 1 {
			cfg.Log.Status("Recording.")
		}
		if err := cfg.Sink.Setup(); err != nil {
			return err
		}
		s, err := cfg.StartAudio()
		if err != nil {
			return err
		}
		stream = s
		return nil
	}

	buf := make([]byte, blockSize)

	code := exitContinue
	for code == exitContinue {
		code = cfg.Exit(em.HandledAny())

		for _, sig := range cfg.Signals.Drain() {
			switch sig {
			case sigSuspend:
				if !suspended {
					suspended = true
					if err := suspendPause(); err != nil {
						return em.HandledAny(), false, err
					}
					// Actually stop the process so it burns no CPU while
					// suspended, matching the original tool's SIGSTOP-based
					// suspend handler. A later SIGCONT (sigResume) both
					// resumes the process and is observed on the next
					// Drain once it does.
					if cfg.StopSelf != nil {
						if err := cfg.StopSelf(); err != nil {
							return em.HandledAny(), false, err
						}
					}
				}
			case sigResume:
				suspended = false
			case sigReload:
				if _, err := cfg.Process(""); err != nil {
					return em.HandledAny(), false, err
				}
			}
		}

		if suspended {
			continue
		}

		if cfg.IdleTime > 0.0 {
			now := cfg.Now()
			remaining := cfg.IdleTime - now.Sub(idleTimePrev).Seconds()
			if remaining > 0.0 {
				cfg.Sleep(time.Duration(remaining * float64(time.Second)))
				idleTimePrev = cfg.Now()
			} else {
				idleTimePrev = now
			}
		}

		if stream == nil {
			if err := suspendResume(); err != nil {
				return em.HandledAny(), false, err
			}
			continue
		}

		n, err := stream.Read(buf)
		if err != nil {
			return em.HandledAny(), false, err
		}
		if n == 0 {
			continue
		}

		isFinal, err := cfg.Rec.AcceptWaveform(buf[:n])
		if err != nil {
			return em.HandledAny(), false, err
		}

		var resultText string
		if isFinal {
			final, err := readFinal(cfg.Rec)
			if err != nil {
				return em.HandledAny(), false, err
			}
			resultText = final
			if final != "" {
				if err := em.Handle(final, false); err != nil {
					return em.HandledAny(), false, err
				}
			}
		} else {
			partial, err := cfg.Rec.PartialText()
			if err != nil {
				return em.HandledAny(), false, err
			}
			resultText = partial
			if partial != "" {
				if err := em.Handle(partial, true); err != nil {
					return em.HandledAny(), false, err
				}
			}
		}

		if useTimeout {
			if resultText != timeoutTextPrev {
				timeoutTextPrev = resultText
				timeoutTimePrev = cfg.Now()
			} else if cfg.Now().Sub(timeoutTimePrev).Seconds() > cfg.Timeout {
				if code == exitContinue {
					code = exitFinish
				}
			}
		}
	}

	if stream != nil {
		stream.Stop()
		if err := cfg.Sink.Teardown(); err != nil {
			return em.HandledAny(), false, err
		}
	}

	if code == exitCancel {
		return em.HandledAny(), true, nil
	}

	if final, err := readFinal(cfg.Rec); err == nil && final != "" {
		if err := em.Handle(final, false); err != nil {
			return em.HandledAny(), false, err
		}
	}

	if err := em.FinishDeferred(); err != nil {
		return em.HandledAny(), false, err
	}

	return em.HandledAny(), false, nil
}

func readFinal(rec recognizer.Engine) (string, error) {
	return rec.FinalText()
}
