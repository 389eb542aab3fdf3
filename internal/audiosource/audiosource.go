// Package audiosource launches an external audio-capture command (parec or
// sox) and exposes its stdout as a non-blocking raw PCM stream.
//
// Shelling out rather than linking a capture library is a deliberate choice
// carried over from the original tool: it keeps prism-dictation decoupled
// from any particular audio backend, at the cost of depending on the
// command being installed.
package audiosource

import (
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strconv"
	"syscall"

	"golang.org/x/sys/unix"
)

// Config selects and parameterizes the capture command.
type Config struct {
	// Method is "PAREC" or "SOX".
	Method          string
	SampleRate      int
	PulseDeviceName string
}

// Source is a running capture subprocess with a non-blocking stdout pipe.
type Source struct {
	cmd    *exec.Cmd
	stdout *os.File
}

// Start launches the capture command described by cfg.
func Start(cfg Config) (*Source, error) {
	args, err := buildCommand(cfg)
	if err != nil {
		return nil, err
	}

	r, w, err := os.Pipe()
	if err != nil {
		return nil, fmt.Errorf("creating capture pipe: %w", err)
	}

	cmd := exec.Command(args[0], args[1:]...)
	cmd.Stdout = w
	cmd.Stderr = nil

	if err := cmd.Start(); err != nil {
		r.Close()
		w.Close()
		return nil, fmt.Errorf("command %q not found: %w", args[0], err)
	}
	w.Close()

	if err := unix.SetNonblock(int(r.Fd()), true); err != nil {
		r.Close()
		_ = cmd.Process.Kill()
		return nil, fmt.Errorf("setting capture pipe non-blocking: %w", err)
	}

	return &Source{cmd: cmd, stdout: r}, nil
}

// Read reads up to len(buf) bytes of raw PCM without blocking. It returns
// (0, nil) when no data is currently available, matching the original
// tool's handling of a non-blocking read that raises nothing to read yet.
func (s *Source) Read(buf []byte) (int, error) {
	if s.stdout == nil {
		return 0, errors.New("audiosource: read after Stop")
	}

	n, err := s.stdout.Read(buf)
	if err != nil {
		if errors.Is(err, syscall.EAGAIN) || errors.Is(err, syscall.EWOULDBLOCK) {
			return 0, nil
		}
		return 0, err
	}
	return n, nil
}

// Stop terminates the capture subprocess and closes its pipe. It is safe to
// call more than once.
func (s *Source) Stop() error {
	if s.stdout != nil {
		s.stdout.Close()
		s.stdout = nil
	}
	if s.cmd != nil && s.cmd.Process != nil {
		_ = s.cmd.Process.Signal(syscall.SIGINT)
		_ = s.cmd.Wait()
		s.cmd = nil
	}
	return nil
}

func buildCommand(cfg Config) ([]string, error) {
	switch cfg.Method {
	case "PAREC":
		args := []string{
			"parec",
			"--record",
			"--rate=" + strconv.Itoa(cfg.SampleRate),
			"--channels=1",
		}
		if cfg.PulseDeviceName != "" {
			args = append(args, "--device="+cfg.PulseDeviceName)
		}
		args = append(args, "--format=s16ne", "--latency=10")
		return args, nil
	case "SOX":
		return []string{
			"sox", "-q", "-V1", "-d",
			"--buffer", "1000",
			"-r", strconv.Itoa(cfg.SampleRate),
			"-b", "16",
			"-e", "signed-integer",
			"-c", "1",
			"-t", "raw",
			"-L", "-",
		}, nil
	default:
		return nil, fmt.Errorf("audiosource: unsupported input method %q", cfg.Method)
	}
}
