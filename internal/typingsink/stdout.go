package typingsink

import (
	"io"
	"os"
	"strings"
)

// StdoutSink writes typed text directly to a stream instead of simulating
// keypresses, erasing prior output with backspace control bytes.
type StdoutSink struct {
	Writer io.Writer
}

// NewStdoutSink returns a StdoutSink writing to os.Stdout.
func NewStdoutSink() *StdoutSink { return &StdoutSink{Writer: os.Stdout} }

func (s *StdoutSink) Setup() error    { return nil }
func (s *StdoutSink) Teardown() error { return nil }

func (s *StdoutSink) Deliver(deletePrevChars int, text string) error {
	if deletePrevChars > 0 {
		if _, err := io.WriteString(s.Writer, strings.Repeat("\x08", deletePrevChars)); err != nil {
			return err
		}
	}
	_, err := io.WriteString(s.Writer, text)
	return err
}
