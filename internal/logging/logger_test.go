package logging

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_JSONIncludesRunID(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "info", Format: "json", Writer: &buf})
	require.NoError(t, err)

	logger.Info("parsed digest", "records", 3)

	var entry map[string]any
	require.NoError(t, json.Unmarshal(buf.Bytes(), &entry))
	assert.Equal(t, "parsed digest", entry["msg"])
	assert.EqualValues(t, 3, entry["records"])
	assert.NotEmpty(t, entry["run_id"])
}

func TestNew_LevelFilters(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Level: "warn", Format: "console", Writer: &buf})
	require.NoError(t, err)

	logger.Info("hidden")
	logger.Warn("shown")

	assert.NotContains(t, buf.String(), "hidden")
	assert.Contains(t, buf.String(), "shown")
}

func TestNew_DefaultFormatForNonTerminal(t *testing.T) {
	var buf bytes.Buffer
	logger, err := New(Options{Writer: &buf})
	require.NoError(t, err)

	logger.Info("hello")
	assert.True(t, json.Valid(bytes.TrimSpace(buf.Bytes())), "non-terminal writers get json: %s", buf.String())
}

func TestNew_RejectsUnknownValues(t *testing.T) {
	_, err := New(Options{Format: "xml", Writer: &bytes.Buffer{}})
	assert.Error(t, err)

	_, err = New(Options{Level: "loud", Writer: &bytes.Buffer{}})
	assert.Error(t, err)
}
