package control

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuspend_MissingCookieIsSilentlyIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	err := Suspend(path)

	require.NoError(t, err)
}

func TestResume_MissingCookieIsSilentlyIgnored(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing")

	err := Resume(path)

	require.NoError(t, err)
}

func TestSuspend_SignalsPIDFromCookie(t *testing.T) {
	sigs := InstallSignals()
	defer sigs.Stop()

	path := filepath.Join(t.TempDir(), "cookie")
	require.NoError(t, WritePID(path))

	require.NoError(t, Suspend(path))

	assert.Eventually(t, func() bool {
		return len(sigs.Drain()) > 0
	}, time.Second, 5*time.Millisecond)
}

func TestResume_SignalsPIDFromCookie(t *testing.T) {
	sigs := InstallSignals()
	defer sigs.Stop()

	path := filepath.Join(t.TempDir(), "cookie")
	require.NoError(t, WritePID(path))

	require.NoError(t, Resume(path))

	assert.Eventually(t, func() bool {
		return len(sigs.Drain()) > 0
	}, time.Second, 5*time.Millisecond)
}
