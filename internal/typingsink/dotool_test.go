package typingsink

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestDotoolSink_DeliverBeforeSetupErrors(t *testing.T) {
	d := NewDotoolSink()
	assert.Error(t, d.Deliver(0, "hello"))
}

func TestDotoolSink_TeardownBeforeSetupErrors(t *testing.T) {
	d := NewDotoolSink()
	assert.Error(t, d.Teardown())
}

func TestNewDotoolcSink_UsesDotoolcCommand(t *testing.T) {
	d := NewDotoolcSink()
	assert.Equal(t, "dotoolc", d.Command)
}
