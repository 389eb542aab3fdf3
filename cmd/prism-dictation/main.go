// Command prism-dictation is a push-to-talk dictation tool: "begin" starts
// listening, "end" finishes and types the result, "cancel" discards it, and
// "suspend"/"resume" pause and continue a running session.
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/prism-zip/prism-dictation/internal/engine"
	"github.com/prism-zip/prism-dictation/internal/settings"
	"github.com/prism-zip/prism-dictation/internal/statuslog"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	log := statuslog.New(0)

	var err error
	switch os.Args[1] {
	case "begin":
		err = runBegin(os.Args[2:], log)
	case "end":
		err = runEnd(os.Args[2:])
	case "cancel":
		err = runCancel(os.Args[2:])
	case "suspend":
		err = runSuspend(os.Args[2:])
	case "resume":
		err = runResume(os.Args[2:])
	case "-h", "--help":
		usage()
		return
	default:
		fmt.Fprintf(os.Stderr, "prism-dictation: unknown command %q\n", os.Args[1])
		usage()
		os.Exit(1)
	}

	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, "usage: prism-dictation {begin,end,cancel,suspend,resume} [flags]")
}

func cookieFlag(fs *flag.FlagSet) *string {
	return fs.String("cookie", "", "location of the temporary cookie monitored to begin/end dictation")
}

func cookiePathOrDefault(path string) string {
	if path != "" {
		return path
	}
	return engine.DefaultCookiePath()
}

func runBegin(args []string, log *statuslog.Logger) error {
	fs := flag.NewFlagSet("begin", flag.ExitOnError)
	cookie := cookieFlag(fs)
	config := fs.String("config", "", "override the file used for the user configuration (empty disables it)")
	voskModelDir := fs.String("vosk-model-dir", "", "path to the VOSK model")
	voskGrammarFile := fs.String("vosk-grammar-file", "", "path to a JSON grammar file restricting recognized phrases")
	pulseDeviceName := fs.String("pulse-device-name", "", "pulse-audio device name to record from")
	sampleRate := fs.Int("sample-rate", 44100, "sample rate to use for recording, in Hz")
	deferOutput := fs.Bool("defer-output", false, "defer output until exiting instead of typing as you speak")
	progressiveContinuous := fs.Bool("continuous", false, "reprocess only the newest phrase instead of the whole session on every update")
	timeout := fs.Float64("timeout", 0.0, "finish when no speech is processed for this many seconds (zero disables)")
	idleTime := fs.Float64("idle-time", 0.1, "time to idle between processing audio, clamped to 0.5")
	delayExit := fs.Float64("delay-exit", 0.0, "time to continue running after an end request (zero disables)")
	suspendOnStart := fs.Bool("suspend-on-start", false, "start immediately suspended")
	punctuateFromPreviousTimeout := fs.Float64("punctuate-from-previous-timeout", 0.0, "treat this recording as a continuation if the previous one ended within this many seconds")
	fullSentence := fs.Bool("full-sentence", false, "capitalize the first character and punctuate run-on dictation")
	numbersAsDigits := fs.Bool("numbers-as-digits", false, "convert numbers into digits instead of whole words")
	numbersUseSeparator := fs.Bool("numbers-use-separator", false, "use comma separators for numbers")
	numbersMinValue := fs.Int64("numbers-min-value", 0, "minimum value for numbers converted to digits (0 disables the minimum)")
	numbersNoSuffix := fs.Bool("numbers-no-suffix", false, "suppress number suffixes such as 1st/2nd when --numbers-as-digits is set")
	inputMethod := fs.String("input", "PAREC", "audio input method: PAREC or SOX")
	output := fs.String("output", "SIMULATE_INPUT", "output method: SIMULATE_INPUT or STDOUT")
	simulateInputTool := fs.String("simulate-input-tool", "XDOTOOL", "keystroke simulation tool: XDOTOOL, DOTOOL, DOTOOLC, YDOTOOL, WTYPE or STDOUT")
	verbose := fs.Int("verbose", 0, "verbosity level (0=errors only, 1=actions, 2=internal detail)")
	if err := fs.Parse(args); err != nil {
		return err
	}

	log = statuslog.New(*verbose)

	applySettingsDefaults(fs, log)

	hookPath := *config
	configSet := false
	fs.Visit(func(f *flag.Flag) {
		if f.Name == "config" {
			configSet = true
		}
	})
	if !configSet {
		if p, err := settings.UserHookPath(); err == nil {
			if _, err := os.Stat(p); err == nil {
				hookPath = p
			}
		}
	}

	var minValue *int64
	if *numbersMinValue != 0 {
		v := *numbersMinValue
		minValue = &v
	}

	progressive := !(*deferOutput || *output == "STDOUT")

	clampedIdleTime := *idleTime
	if clampedIdleTime > 0.5 {
		clampedIdleTime = 0.5
	}

	return engine.Begin(engine.BeginConfig{
		VoskModelDir:                 *voskModelDir,
		VoskGrammarFile:              *voskGrammarFile,
		CookiePath:                   *cookie,
		PulseDeviceName:              *pulseDeviceName,
		SampleRate:                   *sampleRate,
		InputMethod:                  *inputMethod,
		Progressive:                  progressive,
		ProgressiveContinuous:        *progressiveContinuous,
		FullSentence:                 *fullSentence,
		NumbersAsDigits:              *numbersAsDigits,
		NumbersUseSeparator:          *numbersUseSeparator,
		NumbersMinValue:              minValue,
		NumbersNoSuffix:              *numbersNoSuffix,
		PunctuateFromPreviousTimeout: *punctuateFromPreviousTimeout,
		Timeout:                      *timeout,
		IdleTime:                     clampedIdleTime,
		DelayExit:                    *delayExit,
		SuspendOnStart:               *suspendOnStart,
		Verbose:                      *verbose,
		Output:                       *output,
		SimulateInputTool:            *simulateInputTool,
		UserHookPath:                 hookPath,
		Log:                          log,
	})
}

// applySettingsDefaults fills unset flags from the user's settings.yaml,
// leaving any flag the user actually passed on the command line alone.
func applySettingsDefaults(fs *flag.FlagSet, log *statuslog.Logger) {
	cfg, err := settings.Load()
	if err != nil {
		log.Error("loading settings: %v", err)
		return
	}

	set := map[string]bool{}
	fs.Visit(func(f *flag.Flag) { set[f.Name] = true })

	setIfUnset := func(name, value string) {
		if set[name] {
			return
		}
		_ = fs.Set(name, value)
	}

	if cfg.VoskModelDir != "" {
		setIfUnset("vosk-model-dir", cfg.VoskModelDir)
	}
	if cfg.VoskGrammar != "" {
		setIfUnset("vosk-grammar-file", cfg.VoskGrammar)
	}
	if cfg.PulseDevice != "" {
		setIfUnset("pulse-device-name", cfg.PulseDevice)
	}
	if cfg.SampleRate != 0 {
		setIfUnset("sample-rate", fmt.Sprint(cfg.SampleRate))
	}
	if cfg.InputMethod != "" {
		setIfUnset("input", cfg.InputMethod)
	}
	if cfg.Output != "" {
		setIfUnset("output", cfg.Output)
	}
	if cfg.SimulateInput != "" {
		setIfUnset("simulate-input-tool", cfg.SimulateInput)
	}
}

func runEnd(args []string) error {
	fs := flag.NewFlagSet("end", flag.ExitOnError)
	cookie := cookieFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return engine.End(cookiePathOrDefault(*cookie))
}

func runCancel(args []string) error {
	fs := flag.NewFlagSet("cancel", flag.ExitOnError)
	cookie := cookieFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return engine.Cancel(cookiePathOrDefault(*cookie))
}

func runSuspend(args []string) error {
	fs := flag.NewFlagSet("suspend", flag.ExitOnError)
	cookie := cookieFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return engine.Suspend(cookiePathOrDefault(*cookie))
}

func runResume(args []string) error {
	fs := flag.NewFlagSet("resume", flag.ExitOnError)
	cookie := cookieFlag(fs)
	if err := fs.Parse(args); err != nil {
		return err
	}
	return engine.Resume(cookiePathOrDefault(*cookie))
}
