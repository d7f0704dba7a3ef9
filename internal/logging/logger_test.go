package logging

import (
	"bytes"
	"errors"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNewRenamesErrorKey(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelDebug)
	logger.Debug("clipboard read failed", "error", errors.New("no clipboard"))

	out := buf.String()
	assert.Contains(t, out, `err="no clipboard"`)
	assert.NotContains(t, out, "error=")
}

func TestNewHonoursLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(&buf, slog.LevelInfo)
	logger.Debug("hidden")
	assert.Empty(t, buf.String())
}

func TestNewNop(t *testing.T) {
	assert.NotPanics(t, func() { NewNop().Info("dropped") })
}
