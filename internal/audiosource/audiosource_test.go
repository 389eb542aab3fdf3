package audiosource

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildCommand_Parec(t *testing.T) {
	args, err := buildCommand(Config{Method: "PAREC", SampleRate: 16000})
	require.NoError(t, err)
	assert.Equal(t, []string{"parec", "--record", "--rate=16000", "--channels=1", "--format=s16ne", "--latency=10"}, args)
}

func TestBuildCommand_ParecWithDevice(t *testing.T) {
	args, err := buildCommand(Config{Method: "PAREC", SampleRate: 16000, PulseDeviceName: "mic0"})
	require.NoError(t, err)
	assert.Contains(t, args, "--device=mic0")
}

func TestBuildCommand_Sox(t *testing.T) {
	args, err := buildCommand(Config{Method: "SOX", SampleRate: 44100})
	require.NoError(t, err)
	assert.Equal(t, []string{
		"sox", "-q", "-V1", "-d",
		"--buffer", "1000",
		"-r", "44100",
		"-b", "16",
		"-e", "signed-integer",
		"-c", "1",
		"-t", "raw",
		"-L", "-",
	}, args)
}

func TestBuildCommand_UnsupportedMethod(t *testing.T) {
	_, err := buildCommand(Config{Method: "WAT"})
	assert.Error(t, err)
}
