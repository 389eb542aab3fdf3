package engine

import (
	"testing"
	"time"

	"github.com/prism-zip/prism-dictation/internal/recognizer"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeAudioStream struct {
	chunks  [][]byte
	i       int
	stopped bool
}

func (f *fakeAudioStream) Read(buf []byte) (int, error) {
	if f.i >= len(f.chunks) {
		return 0, nil
	}
	n := copy(buf, f.chunks[f.i])
	f.i++
	return n, nil
}

func (f *fakeAudioStream) Stop() error {
	f.stopped = true
	return nil
}

type fakeSink struct {
	setups    int
	teardowns int
	recordingSink
}

func (f *fakeSink) Setup() error    { f.setups++; return nil }
func (f *fakeSink) Teardown() error { f.teardowns++; return nil }

type fakeSignals struct{}

func (fakeSignals) Drain() []signalKind { return nil }

// scriptedSignals emits each element of script on successive Drain calls,
// then nil forever after, so a test can make suspend/resume fire on
// specific loop iterations.
type scriptedSignals struct {
	script []signalKind
	i      int
}

func (s *scriptedSignals) Drain() []signalKind {
	if s.i >= len(s.script) {
		return nil
	}
	sig := s.script[s.i]
	s.i++
	return []signalKind{sig}
}

func TestRun_DeferredHappyPath(t *testing.T) {
	stream := &fakeAudioStream{chunks: [][]byte{[]byte("chunk1"), []byte("chunk2")}}
	rec := &recognizer.Fake{
		Partials: []string{"hel", ""},
		Finals:   []string{"", "hello world"},
	}
	sink := &fakeSink{}

	calls := 0
	exit := func(handledAny bool) exitCode {
		calls++
		if calls > 2 {
			return exitFinish
		}
		return exitContinue
	}

	handledAny, canceled, err := run(loopConfig{
		StartAudio: func() (audioStream, error) { return stream, nil },
		Rec:        rec,
		Exit:       exit,
		Process:    func(s string) (string, error) { return s, nil },
		Sink:       sink,
		Signals:    fakeSignals{},
		Sleep:      func(time.Duration) {},
		Now:        time.Now,
	})

	require.NoError(t, err)
	assert.False(t, canceled)
	assert.True(t, handledAny)
	assert.Equal(t, 1, sink.setups)
	assert.Equal(t, 1, sink.teardowns)
	require.Len(t, sink.texts, 1)
	assert.Equal(t, "hello world", sink.texts[0])
	assert.True(t, stream.stopped)
}

func TestRun_CancelSkipsFinalEmission(t *testing.T) {
	stream := &fakeAudioStream{chunks: [][]byte{[]byte("chunk1")}}
	rec := &recognizer.Fake{Partials: []string{"hel"}, Finals: []string{""}}
	sink := &fakeSink{}

	exit := func(handledAny bool) exitCode { return exitCancel }

	handledAny, canceled, err := run(loopConfig{
		StartAudio: func() (audioStream, error) { return stream, nil },
		Rec:        rec,
		Exit:       exit,
		Process:    func(s string) (string, error) { return s, nil },
		Sink:       sink,
		Signals:    fakeSignals{},
		Sleep:      func(time.Duration) {},
		Now:        time.Now,
	})

	require.NoError(t, err)
	assert.True(t, canceled)
	assert.False(t, handledAny)
	assert.Empty(t, sink.texts)
}

func TestRun_ProgressiveEmitsIncrementally(t *testing.T) {
	stream := &fakeAudioStream{chunks: [][]byte{[]byte("chunk1"), []byte("chunk2")}}
	rec := &recognizer.Fake{
		Partials: []string{"hel", ""},
		Finals:   []string{"", "hello world"},
	}
	sink := &fakeSink{}

	calls := 0
	exit := func(handledAny bool) exitCode {
		calls++
		if calls > 2 {
			return exitFinish
		}
		return exitContinue
	}

	_, _, err := run(loopConfig{
		StartAudio:  func() (audioStream, error) { return stream, nil },
		Rec:         rec,
		Exit:        exit,
		Process:     func(s string) (string, error) { return s, nil },
		Sink:        sink,
		Progressive: true,
		Signals:     fakeSignals{},
		Sleep:       func(time.Duration) {},
		Now:         time.Now,
	})

	require.NoError(t, err)
	assert.Equal(t, []string{"hel", "lo world"}, sink.texts)
}

func TestRun_SuspendTearsDownAndResumeRestartsStream(t *testing.T) {
	stream1 := &fakeAudioStream{}
	stream2 := &fakeAudioStream{chunks: [][]byte{[]byte("chunk1"), []byte("chunk2")}}
	streams := []*fakeAudioStream{stream1, stream2}
	starts := 0
	startAudio := func() (audioStream, error) {
		s := streams[starts]
		starts++
		return s, nil
	}

	rec := &recognizer.Fake{
		Partials: []string{"hel", ""},
		Finals:   []string{"", "hello world"},
	}
	sink := &fakeSink{}
	stopSelfCalls := 0

	calls := 0
	exit := func(handledAny bool) exitCode {
		calls++
		if calls > 4 {
			return exitFinish
		}
		return exitContinue
	}

	handledAny, canceled, err := run(loopConfig{
		StartAudio: startAudio,
		Rec:        rec,
		Exit:       exit,
		Process:    func(s string) (string, error) { return s, nil },
		Sink:       sink,
		Signals:    &scriptedSignals{script: []signalKind{sigSuspend, sigResume}},
		Sleep:      func(time.Duration) {},
		Now:        time.Now,
		StopSelf:   func() error { stopSelfCalls++; return nil },
	})

	require.NoError(t, err)
	assert.False(t, canceled)
	assert.True(t, handledAny)
	assert.Equal(t, 2, starts)
	assert.True(t, stream1.stopped)
	assert.True(t, stream2.stopped)
	assert.Equal(t, 2, sink.setups)
	assert.Equal(t, 2, sink.teardowns)
	assert.Equal(t, 1, stopSelfCalls)
	assert.Equal(t, []string{"hello world"}, sink.texts)
}
