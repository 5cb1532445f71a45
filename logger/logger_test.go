package logger

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTextLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(Options{Buffer: buf, Level: WarnLevel, Type: TypeText})

	l.Info("hidden")
	l.Warn("unrecognized escape sequence", "offset", 3)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "unrecognized escape sequence")
	assert.Contains(t, out, "offset=3")
}

func TestNewJSONLogger(t *testing.T) {
	buf := new(bytes.Buffer)
	l := New(Options{Buffer: buf, Level: DebugLevel, Type: TypeJSON})

	l.Debug("token", "type", "text")
	assert.Contains(t, buf.String(), `"msg":"token"`)
	assert.Contains(t, buf.String(), `"type":"text"`)
}

func TestDiscard(t *testing.T) {
	assert.NotPanics(t, func() {
		Discard.Error("dropped", "key", "value")
	})
	assert.Equal(t, Discard, OrDiscard(nil))

	l := New(Options{Buffer: new(bytes.Buffer)})
	assert.Equal(t, l, OrDiscard(l))
}

func TestParseLevel(t *testing.T) {
	tcs := []struct {
		name     string
		expected Level
	}{
		{name: "debug", expected: DebugLevel},
		{name: "INFO", expected: InfoLevel},
		{name: "", expected: InfoLevel},
		{name: "warning", expected: WarnLevel},
		{name: " error ", expected: ErrorLevel},
	}
	for _, tc := range tcs {
		t.Run(tc.name, func(t *testing.T) {
			got, err := ParseLevel(tc.name)
			require.NoError(t, err)
			assert.Equal(t, tc.expected, got)
		})
	}

	_, err := ParseLevel("verbose")
	assert.Error(t, err)
}
