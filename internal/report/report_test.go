package report

import (
	"bytes"
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Makepad-fr/connmatch/internal/model"
)

func TestWriteSanitizesByDefault(t *testing.T) {
	c := model.Evaluate("Server=db;Password=hunter2;Database=app", "Server=db;Password=hunter2;Database=app")

	var buf bytes.Buffer
	require.NoError(t, Write(&buf, c, false))
	assert.NotContains(t, buf.String(), "hunter2")

	var got Report
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "match", got.State)
	assert.Equal(t, "Perfect Match!", got.Title)
	assert.Equal(t, "Server=db;Password=***;Database=app", got.Left.Value)
	assert.Equal(t, "valid", got.Left.Validity)
	assert.Equal(t, "sqlserver", got.Left.Family)
	assert.Equal(t, 39, got.Right.Length)
}

func TestNewReveal(t *testing.T) {
	r := New(model.Evaluate("token=abc123;host=x", ""), true)
	assert.Equal(t, "token=abc123;host=x", r.Left.Value)
	assert.Equal(t, "waiting", r.State)
	assert.Equal(t, "unknown", r.Right.Validity)
	assert.Empty(t, r.Right.Family)
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) { return 0, errors.New("closed pipe") }

func TestWritePropagatesWriterError(t *testing.T) {
	err := Write(failingWriter{}, model.Evaluate("", ""), false)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "closed pipe")
}

func TestWriteField(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, WriteField(&buf, model.NewField("mongodb://admin:pw@db/app?key=abc"), false))

	var got Field
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "mongodb://admin:pw@db/app?key=***", got.Value)
	assert.Equal(t, "valid", got.Validity)
	assert.Equal(t, "mongodb", got.Family)
}
