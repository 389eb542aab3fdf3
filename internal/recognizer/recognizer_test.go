package recognizer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJsonField_EmptyStringIsNotError(t *testing.T) {
	text, err := jsonField("", "text")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestJsonField_ExtractsNamedField(t *testing.T) {
	text, err := jsonField(`{"text": "hello world"}`, "text")
	require.NoError(t, err)
	assert.Equal(t, "hello world", text)
}

func TestJsonField_MissingFieldIsEmpty(t *testing.T) {
	text, err := jsonField(`{"confidence": 0.9}`, "text")
	require.NoError(t, err)
	assert.Equal(t, "", text)
}

func TestJsonField_MalformedIsError(t *testing.T) {
	_, err := jsonField(`not json`, "text")
	assert.Error(t, err)
}

func TestFake_TracksResetsAndClose(t *testing.T) {
	f := &Fake{
		Partials: []string{"hel", "hello"},
		Finals:   []string{"", "hello world"},
	}

	isFinal, err := f.AcceptWaveform(nil)
	require.NoError(t, err)
	assert.False(t, isFinal)
	partial, _ := f.PartialText()
	assert.Equal(t, "hel", partial)

	isFinal, err = f.AcceptWaveform(nil)
	require.NoError(t, err)
	assert.True(t, isFinal)
	final, _ := f.FinalText()
	assert.Equal(t, "hello world", final)

	require.NoError(t, f.Reset())
	assert.Equal(t, 1, f.Resets())

	f.Close()
	assert.True(t, f.Closed())
}
