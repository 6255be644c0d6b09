package logger

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.Debug("debug message")
	log.Info("info message")
	log.Warn("warn message")

	out := buf.String()
	assert.NotContains(t, out, "debug message")
	assert.Contains(t, out, "info message")
	assert.Contains(t, out, "warn message")
}

func TestVerboseEnablesDebug(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, true, false)

	log.Debug("debug message")
	assert.Contains(t, buf.String(), "debug message")
}

func TestSetLevel(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.SetLevel("error")
	log.Info("info message")
	log.Error("error message")

	assert.NotContains(t, buf.String(), "info message")
	assert.Contains(t, buf.String(), "error message")
}

func TestSetLevelNone(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.SetLevel("none")
	log.Error("error message")
	assert.Empty(t, buf.String())
}

func TestUnknownLevelDefaultsToInfo(t *testing.T) {
	assert.Equal(t, LevelInfo, parseLogLevel("bogus"))
}

func TestMessageFormat(t *testing.T) {
	var buf bytes.Buffer
	log := New(&buf, false, false)

	log.Info("count=%d", 3)

	line := strings.TrimSuffix(buf.String(), "\n")
	assert.Regexp(t, `^\[\d{2}:\d{2}:\d{2}\.\d{3} INFO\] count=3$`, line)
}
