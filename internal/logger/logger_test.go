package logger

import (
	"bytes"
	"encoding/json"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type logEntry map[string]any

func decode(t *testing.T, buf *bytes.Buffer) []logEntry {
	t.Helper()
	var entries []logEntry
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var entry logEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestWithFieldsPersist(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", Writer: buf})
	require.NoError(t, err)

	log = log.WithFields(map[string]any{"widget": "select"}).With("theme", "dark")
	log.Info("opened")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "opened", entries[0]["message"])
	require.Equal(t, "select", entries[0]["widget"])
	require.Equal(t, "dark", entries[0]["theme"])
	require.Equal(t, "info", entries[0]["level"])
}

func TestDebugRespectsLevel(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "INFO", Writer: buf})
	require.NoError(t, err)

	log.Debug("drag started", "x", 4)
	require.Empty(t, strings.TrimSpace(buf.String()))
	require.Equal(t, "info", log.Level())
}

func TestDebugKeyValues(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Debug("value changed", "value", "cherry", "dangling")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "cherry", entries[0]["value"])
	require.NotContains(t, entries[0], "dangling")
}

func TestErrorIncludesCause(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "debug", Writer: buf})
	require.NoError(t, err)

	log.Error(errors.New("boom"), "render failed")

	entries := decode(t, buf)
	require.Len(t, entries, 1)
	require.Equal(t, "render failed", entries[0]["message"])
	require.Equal(t, "boom", entries[0]["error"])
}

func TestUnknownLevel(t *testing.T) {
	t.Parallel()

	_, err := New(Options{Level: "loud"})
	require.ErrorContains(t, err, "loud")
}

func TestHumanReadable(t *testing.T) {
	t.Parallel()

	buf := &bytes.Buffer{}
	log, err := New(Options{Level: "info", HumanReadable: true, Writer: buf})
	require.NoError(t, err)

	log.Warn("theme fallback")
	require.Contains(t, buf.String(), "theme fallback")
	require.Contains(t, buf.String(), "WRN")
}

func TestNilAndNopAreSilent(t *testing.T) {
	t.Parallel()

	var log *Logger
	require.NotPanics(t, func() {
		log.Info("x")
		log.Debug("x", "k", "v")
		log.Warn("x")
		log.Error(errors.New("x"), "x")
		require.Nil(t, log.WithFields(map[string]any{"a": 1}))
		require.Nil(t, log.With("a", 1))
		require.Equal(t, "disabled", log.Level())
	})

	require.NotPanics(t, func() { Nop().Info("x") })
}
