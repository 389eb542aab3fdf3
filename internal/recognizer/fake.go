package recognizer

// Fake is a scripted Engine used by engine-level tests in place of a real
// Vosk model, which cannot be loaded in this environment.
type Fake struct {
	// Partials[i] and Finals[i] are returned on the i-th AcceptWaveform
	// call; Finals[i] != "" marks that call as producing a final result.
	Partials []string
	Finals   []string

	step      int
	finalRead bool
	resets    int
	closed    bool
}

func (f *Fake) AcceptWaveform(data []byte) (bool, error) {
	isFinal := f.step < len(f.Finals) && f.Finals[f.step] != ""
	f.step++
	f.finalRead = false
	return isFinal, nil
}

func (f *Fake) PartialText() (string, error) {
	i := f.step - 1
	if i < 0 || i >= len(f.Partials) {
		return "", nil
	}
	return f.Partials[i], nil
}

// FinalText is a destructive read, matching Vosk's behavior of resetting
// its internal decode state on FinalResult(): calling it again before the
// next AcceptWaveform returns empty.
func (f *Fake) FinalText() (string, error) {
	if f.finalRead {
		return "", nil
	}
	f.finalRead = true

	i := f.step - 1
	if i < 0 || i >= len(f.Finals) {
		return "", nil
	}
	return f.Finals[i], nil
}

func (f *Fake) Reset() error {
	f.resets++
	f.step = 0
	return nil
}

func (f *Fake) Close() {
	f.closed = true
}

// Resets reports how many times Reset was called, for test assertions.
func (f *Fake) Resets() int { return f.resets }

// Closed reports whether Close was called, for test assertions.
func (f *Fake) Closed() bool { return f.closed }
