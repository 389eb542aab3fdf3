package control

import (
	"errors"
	"fmt"
	"io/fs"
	"syscall"
)

// Suspend signals the process recorded in the cookie file to pause
// recording. A missing cookie means there is no session to suspend; that is
// silently ignored, matching the original tool's sibling operations on a
// dictation session that has already ended.
func Suspend(path string) error {
	pid, err := ReadPID(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := syscall.Kill(pid, syscall.SIGUSR1); err != nil {
		return fmt.Errorf("signaling pid %d: %w", pid, err)
	}
	return nil
}

// Resume signals the process recorded in the cookie file to continue
// recording. Resuming a process that isn't suspended is a no-op on the
// receiving end; a missing cookie is likewise silently ignored.
func Resume(path string) error {
	pid, err := ReadPID(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return err
	}
	if err := syscall.Kill(pid, syscall.SIGCONT); err != nil {
		return fmt.Errorf("signaling pid %d: %w", pid, err)
	}
	return nil
}

// End requests a graceful end of dictation: resume first (so a suspended
// process isn't stuck ignoring the cookie), then touch the cookie so its
// mtime changes, which the running process's exit check detects.
func End(path string) error {
	_ = Resume(path) // best effort; nothing to resume is not an error here.
	return Touch(path, nil)
}

// Cancel requests dictation stop without typing anything: resume first,
// then remove the cookie file entirely.
func Cancel(path string) error {
	_ = Resume(path)
	RemoveIfExists(path)
	return nil
}
