// Package recognizer wraps Vosk behind a small interface so the engine can
// be tested without a real model, and generalizes the teacher's stt.Engine
// to the partial/final access the dictation loop needs. Vosk's JSON results
// are decoded here; only their text field is returned.
package recognizer

import (
	"encoding/json"
	"fmt"
	"os"

	vosk "github.com/alphacep/vosk-api/go"
)

// Engine is the subset of Vosk's recognizer behavior the dictation engine
// depends on.
type Engine interface {
	// AcceptWaveform feeds PCM data in and reports whether a final result
	// is now available.
	AcceptWaveform(data []byte) (bool, error)
	// PartialText returns the in-progress partial transcription.
	PartialText() (string, error)
	// FinalText returns and clears the current final transcription.
	FinalText() (string, error)
	// Reset discards any in-progress state without producing a result,
	// used when recording is suspended.
	Reset() error
	Close()
}

// VoskEngine implements Engine with github.com/alphacep/vosk-api/go.
type VoskEngine struct {
	model      *vosk.VoskModel
	recognizer *vosk.VoskRecognizer
	sampleRate float64
	grammar    string
}

// Config parameterizes model loading.
type Config struct {
	ModelDir    string
	SampleRate  float64
	GrammarFile string
}

// New loads the model at cfg.ModelDir and creates a recognizer, optionally
// restricted to the phrases in cfg.GrammarFile (a JSON array of strings),
// mirroring vosk_recognizer_new_grm.
func New(cfg Config) (*VoskEngine, error) {
	if _, err := os.Stat(cfg.ModelDir); err != nil {
		return nil, fmt.Errorf("vosk model directory %q not found: %w", cfg.ModelDir, err)
	}

	vosk.SetLogLevel(-1)

	model, err := vosk.NewModel(cfg.ModelDir)
	if err != nil {
		return nil, fmt.Errorf("loading vosk model from %q: %w", cfg.ModelDir, err)
	}

	grammar := ""
	if cfg.GrammarFile != "" {
		data, err := os.ReadFile(cfg.GrammarFile)
		if err != nil {
			model.Free()
			return nil, fmt.Errorf("reading grammar file %q: %w", cfg.GrammarFile, err)
		}
		grammar = string(data)
	}

	e := &VoskEngine{model: model, sampleRate: cfg.SampleRate, grammar: grammar}
	if err := e.newRecognizer(); err != nil {
		model.Free()
		return nil, err
	}
	return e, nil
}

func (e *VoskEngine) newRecognizer() error {
	var rec *vosk.VoskRecognizer
	var err error
	if e.grammar == "" {
		rec, err = vosk.NewRecognizer(e.model, e.sampleRate)
	} else {
		rec, err = vosk.NewRecognizerGrm(e.model, e.sampleRate, e.grammar)
	}
	if err != nil {
		return fmt.Errorf("creating vosk recognizer: %w", err)
	}
	e.recognizer = rec
	return nil
}

func (e *VoskEngine) AcceptWaveform(data []byte) (bool, error) {
	return e.recognizer.AcceptWaveform(data) > 0, nil
}

func (e *VoskEngine) PartialText() (string, error) {
	return jsonField(e.recognizer.PartialResult(), "partial")
}

func (e *VoskEngine) FinalText() (string, error) {
	return jsonField(e.recognizer.FinalResult(), "text")
}

// Reset recreates the underlying recognizer. Vosk has no in-place reset, so
// this discards the old one and creates a fresh one against the same model,
// matching the recreate-on-reset idiom used elsewhere for this binding.
func (e *VoskEngine) Reset() error {
	if e.recognizer != nil {
		e.recognizer.Free()
	}
	return e.newRecognizer()
}

func (e *VoskEngine) Close() {
	if e.recognizer != nil {
		e.recognizer.Free()
		e.recognizer = nil
	}
	if e.model != nil {
		e.model.Free()
		e.model = nil
	}
}

// jsonField decodes a Vosk JSON result, returning empty string for an empty
// input. Vosk can return an empty string for FinalResult() immediately
// after a resume; tolerating it here avoids a decode error in that case.
func jsonField(raw, field string) (string, error) {
	if raw == "" {
		return "", nil
	}

	var data map[string]any
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return "", fmt.Errorf("parsing vosk result: %w", err)
	}

	text, _ := data[field].(string)
	return text, nil
}
