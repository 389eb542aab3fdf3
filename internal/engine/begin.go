package engine

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/prism-zip/prism-dictation/internal/audiosource"
	"github.com/prism-zip/prism-dictation/internal/control"
	"github.com/prism-zip/prism-dictation/internal/recognizer"
	"github.com/prism-zip/prism-dictation/internal/statuslog"
	"github.com/prism-zip/prism-dictation/internal/textproc"
	"github.com/prism-zip/prism-dictation/internal/typingsink"
)

// TempCookieName is the default cookie filename under the OS temp
// directory, used when no --cookie path is given.
const TempCookieName = "prism-dictation.cookie"

// BeginConfig holds every parameter of the begin subcommand.
type BeginConfig struct {
	VoskModelDir    string
	VoskGrammarFile string
	CookiePath      string
	PulseDeviceName string
	SampleRate      int
	InputMethod     string

	Progressive           bool
	ProgressiveContinuous bool

	FullSentence                 bool
	NumbersAsDigits              bool
	NumbersUseSeparator          bool
	NumbersMinValue              *int64
	NumbersNoSuffix              bool
	PunctuateFromPreviousTimeout float64

	Timeout        float64
	IdleTime       float64
	DelayExit      float64
	SuspendOnStart bool
	Verbose        int

	Output            string
	SimulateInputTool string

	UserHookPath string

	Log *statuslog.Logger
}

// DefaultCookiePath returns the cookie path used when none is configured.
func DefaultCookiePath() string {
	return filepath.Join(os.TempDir(), TempCookieName)
}

// Begin starts a recording session: it claims the cookie file, wires up
// the recognizer, audio capture and typing sink, and runs the session to
// completion, returning once the end/cancel subcommand (or a timeout) has
// fired. It mirrors the original tool's main_begin.
func Begin(cfg BeginConfig) error {
	cookiePath := cfg.CookiePath
	if cookiePath == "" {
		cookiePath = DefaultCookiePath()
	}

	isRunOn := isRunOnFromCookieAge(cookiePath, cfg.PunctuateFromPreviousTimeout)

	if err := control.WritePID(cookiePath); err != nil {
		return err
	}

	// Force a zero mtime so a fast begin/end tap doesn't leave dictation
	// running: exitController compares against this value to detect "end"
	// (any later touch bumps the mtime away from zero).
	zero := time.Unix(0, 0)
	if err := control.Touch(cookiePath, &zero); err != nil {
		return err
	}
	startMtime, exists, err := control.MtimeOrZero(cookiePath)
	if err != nil {
		return err
	}
	if !exists || startMtime != 0 {
		cfg.Log.Error("Cookie removed right after creation (unlikely but respect the request)")
		return nil
	}

	sink, err := resolveSink(cfg.Output, cfg.SimulateInputTool)
	if err != nil {
		return err
	}

	rec, err := recognizer.New(recognizer.Config{
		ModelDir:    cfg.VoskModelDir,
		SampleRate:  float64(cfg.SampleRate),
		GrammarFile: cfg.VoskGrammarFile,
	})
	if err != nil {
		return err
	}
	defer rec.Close()

	pipeline := newTextPipeline(textproc.Options{
		FullSentence:        cfg.FullSentence,
		NumbersAsDigits:     cfg.NumbersAsDigits,
		NumbersUseSeparator: cfg.NumbersUseSeparator,
		NumbersMinValue:     cfg.NumbersMinValue,
		NumbersNoSuffix:     cfg.NumbersNoSuffix,
	}, isRunOn, cfg.UserHookPath, cfg.Log)

	exitCtl := newExitController(cookiePath, startMtime, cfg.DelayExit, cfg.Timeout)

	signals := control.InstallSignals()
	defer signals.Stop()

	startAudio := func() (audioStream, error) {
		return audiosource.Start(audiosource.Config{
			Method:          cfg.InputMethod,
			SampleRate:      cfg.SampleRate,
			PulseDeviceName: cfg.PulseDeviceName,
		})
	}

	handledAny, canceled, err := run(loopConfig{
		StartAudio:            startAudio,
		Rec:                   rec,
		Exit:                  exitCtl.Check,
		Process:               pipeline.Process,
		Sink:                  sink,
		Progressive:           cfg.Progressive,
		ProgressiveContinuous: cfg.ProgressiveContinuous,
		Timeout:               cfg.Timeout,
		IdleTime:              cfg.IdleTime,
		SuspendOnStart:        cfg.SuspendOnStart,
		Verbose:               cfg.Verbose,
		Log:                   cfg.Log,
		Signals:               newSignalsAdapter(signals),
		Sleep:                 time.Sleep,
		Now:                   time.Now,
		StopSelf:              control.StopSelf,
	})
	if err != nil {
		return err
	}

	if canceled {
		cfg.Log.Error("Text input canceled!")
		return nil
	}

	if !handledAny {
		cfg.Log.Error("No text found in the audio")
		// Avoid continuing punctuation from a recording that found nothing.
		return control.Touch(cookiePath, nil)
	}

	return nil
}

func resolveSink(output, simulateInputTool string) (typingsink.Sink, error) {
	switch output {
	case "SIMULATE_INPUT":
		return typingsink.New(simulateInputTool)
	case "STDOUT":
		return typingsink.NewStdoutSink(), nil
	default:
		return nil, fmt.Errorf("engine: unknown output %q", output)
	}
}

// End requests a graceful finish of the session owning cookiePath.
func End(cookiePath string) error {
	return control.End(cookiePath)
}

// Cancel requests an immediate, silent stop of the session owning
// cookiePath.
func Cancel(cookiePath string) error {
	return control.Cancel(cookiePath)
}

// Suspend pauses the session owning cookiePath.
func Suspend(cookiePath string) error {
	return control.Suspend(cookiePath)
}

// Resume continues a previously suspended session.
func Resume(cookiePath string) error {
	return control.Resume(cookiePath)
}
