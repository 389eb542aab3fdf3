// Package control implements the cookie-file control plane used to start,
// stop, cancel, suspend and resume a running dictation process from sibling
// CLI invocations.
//
// The cookie file's mtime encodes the running process's state machine,
// exactly as in the original tool:
//   - mtime == 0: dictation has just begun (a fast begin/end tap should not
//     leave dictation running).
//   - mtime != 0 and the file still exists: an end request has been made.
//   - the file is missing entirely: a cancel request has been made.
//
// Its contents are the PID of the process to signal for suspend/resume.
package control

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

// Touch creates path if it doesn't exist and sets its modification time. A
// nil mtime uses the current time, matching os.Chtimes(path, now, now).
func Touch(path string, mtime *time.Time) error {
	if _, err := os.Stat(path); err != nil {
		if !os.IsNotExist(err) {
			return fmt.Errorf("stat %q: %w", path, err)
		}
		f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY, 0o644)
		if err != nil {
			return fmt.Errorf("create %q: %w", path, err)
		}
		f.Close()
	}

	t := time.Now()
	if mtime != nil {
		t = *mtime
	}
	if err := os.Chtimes(path, t, t); err != nil {
		return fmt.Errorf("touch %q: %w", path, err)
	}
	return nil
}

// MtimeOrZero returns the file's modification time as a Unix timestamp, and
// false if the file does not exist.
func MtimeOrZero(path string) (int64, bool, error) {
	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, false, nil
		}
		return 0, false, fmt.Errorf("stat %q: %w", path, err)
	}
	return info.ModTime().Unix(), true, nil
}

// AgeInSeconds returns how long ago path was last modified.
func AgeInSeconds(path string) (float64, error) {
	info, err := os.Stat(path)
	if err != nil {
		return 0, fmt.Errorf("stat %q: %w", path, err)
	}
	return time.Since(info.ModTime()).Seconds(), nil
}

// RemoveIfExists removes path, reporting whether it existed.
func RemoveIfExists(path string) bool {
	return os.Remove(path) == nil
}

// WritePID writes the current process's PID as the cookie file's contents,
// creating or truncating the file.
func WritePID(path string) error {
	if err := os.WriteFile(path, []byte(strconv.Itoa(os.Getpid())), 0o644); err != nil {
		return fmt.Errorf("writing cookie %q: %w", path, err)
	}
	return nil
}

// ReadPID reads the cookie file's contents as a PID.
func ReadPID(path string) (int, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return 0, fmt.Errorf("reading cookie %q: %w", path, err)
	}
	pid, err := strconv.Atoi(string(data))
	if err != nil {
		return 0, fmt.Errorf("parsing PID from cookie %q: %w", path, err)
	}
	return pid, nil
}
