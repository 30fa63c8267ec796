package log_test

import (
	"bytes"
	"testing"

	"finder4/internal/log"

	"github.com/stretchr/testify/assert"
)

func TestInfoWritesOutput(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.Info("listing %s", "/tmp")
	assert.Contains(t, buf.String(), "listing /tmp")
}

func TestDebugSuppressedByDefault(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)
	log.SetDebug(false)

	log.Debugf("hidden message")
	assert.NotContains(t, buf.String(), "hidden message")

	log.SetDebug(true)
	defer log.SetDebug(false)

	log.Debugf("visible message")
	assert.Contains(t, buf.String(), "visible message")
}

func TestLogWithFields(t *testing.T) {
	var buf bytes.Buffer
	log.SetOutput(&buf)

	log.LogWithFields(log.F("path", "/tmp/x"), log.F("depth", 2)).Warn("column refresh failed")

	out := buf.String()
	assert.Contains(t, out, "column refresh failed")
	assert.Contains(t, out, "/tmp/x")
	assert.Contains(t, out, "depth")
}
