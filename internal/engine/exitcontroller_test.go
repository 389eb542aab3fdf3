package engine

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/prism-zip/prism-dictation/internal/control"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestExitController_ContinuesWhileMtimeUnchanged(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie")
	zero := time.Unix(0, 0)
	require.NoError(t, control.Touch(path, &zero))

	ec := newExitController(path, 0, 0, 0)
	assert.Equal(t, exitContinue, ec.Check(false))
}

func TestExitController_CancelsWhenCookieRemoved(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie")
	ec := newExitController(path, 0, 0, 0)
	assert.Equal(t, exitCancel, ec.Check(false))
}

func TestExitController_FinishesWhenMtimeChanges(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie")
	zero := time.Unix(0, 0)
	require.NoError(t, control.Touch(path, &zero))
	bumped := time.Unix(100, 0)
	require.NoError(t, control.Touch(path, &bumped))

	ec := newExitController(path, 0, 0, 0)
	assert.Equal(t, exitFinish, ec.Check(true))
}

func TestExitController_OvertimeDelaysFinishUntilHandled(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie")
	zero := time.Unix(0, 0)
	require.NoError(t, control.Touch(path, &zero))
	bumped := time.Unix(100, 0)
	require.NoError(t, control.Touch(path, &bumped))

	ec := newExitController(path, 0, 5.0, 0.0)
	start := time.Now()
	ec.now = func() time.Time { return start }

	assert.Equal(t, exitContinue, ec.Check(true))

	ec.now = func() time.Time { return start.Add(10 * time.Second) }
	assert.Equal(t, exitFinish, ec.Check(true))
}

func TestExitController_IgnoresOvertimeWithoutHandledText(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cookie")
	zero := time.Unix(0, 0)
	require.NoError(t, control.Touch(path, &zero))
	bumped := time.Unix(100, 0)
	require.NoError(t, control.Touch(path, &bumped))

	ec := newExitController(path, 0, 5.0, 0.0)
	assert.Equal(t, exitFinish, ec.Check(false))
}

func TestExitController_MissingCookieFileIsNotError(t *testing.T) {
	_, exists, err := control.MtimeOrZero(filepath.Join(t.TempDir(), "nope"))
	assert.NoError(t, err)
	assert.False(t, exists)
}
