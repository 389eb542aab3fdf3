package statuslog

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLogger_VerbosityGating(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 0)

	l.Error("boom %d", 1)
	l.Status("status")
	l.Detail("detail")

	assert.Equal(t, "boom 1\n", buf.String())
}

func TestLogger_Level1ShowsStatus(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 1)

	l.Status("recording")
	l.Detail("detail")

	assert.Equal(t, "recording\n", buf.String())
}

func TestLogger_Level2ShowsDetail(t *testing.T) {
	var buf bytes.Buffer
	l := NewWithWriter(&buf, 2)

	l.Detail("verbose detail")

	assert.Equal(t, "verbose detail\n", buf.String())
}
