/*
Copyright © 2024 Acronis International GmbH.

Released under MIT license.
*/

package log

import (
	"encoding/json"
	"errors"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"github.com/ssgreg/logf"
	"github.com/stretchr/testify/require"
)

func TestLoggerToFile(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Level = LevelInfo
	cfg.Output = OutputFile
	cfg.File.Path = filepath.Join(t.TempDir(), "crptapi.log")

	logger, closeFn := NewLogger(cfg)
	logger.Debug("must be skipped")
	logger.With(String("doc_id", "42")).Error("document submission failed", Error(errors.New("boom")))
	logger.Info("batch done", Int("submitted", 3), Millis("duration_ms", 1500*time.Millisecond))
	closeFn()

	data, err := os.ReadFile(cfg.File.Path)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)

	var entry map[string]interface{}
	require.NoError(t, json.Unmarshal([]byte(lines[0]), &entry))
	require.Equal(t, "error", entry["level"])
	require.Equal(t, "document submission failed", entry["msg"])
	require.Equal(t, "42", entry["doc_id"])
	require.Equal(t, "boom", entry["error"])
	require.Contains(t, entry, "pid")

	entry = nil
	require.NoError(t, json.Unmarshal([]byte(lines[1]), &entry))
	require.Equal(t, "batch done", entry["msg"])
	require.EqualValues(t, 3, entry["submitted"])
	require.EqualValues(t, 1500, entry["duration_ms"])
}

func TestTextFormat(t *testing.T) {
	cfg := NewDefaultConfig()
	cfg.Format = FormatText
	cfg.NoColor = true
	cfg.Output = OutputFile
	cfg.File.Path = filepath.Join(t.TempDir(), "crptapi.log")

	logger, closeFn := NewLogger(cfg)
	logger.Warn("rate limit exhausted", Int("limit", 10))
	closeFn()

	data, err := os.ReadFile(cfg.File.Path)
	require.NoError(t, err)
	require.Contains(t, string(data), "rate limit exhausted")
	require.Contains(t, string(data), "limit")
}

func TestExpandFilePath(t *testing.T) {
	start := time.Date(2024, 3, 5, 14, 7, 0, 0, time.UTC)
	res := expandFilePath("/var/log/crptapi-{{pid}}-{{starttime}}.log", start)
	require.Equal(t, "/var/log/crptapi-"+strconv.Itoa(os.Getpid())+"-202403051407.log", res)
}

func TestLevelOf(t *testing.T) {
	for _, lvl := range []Level{LevelError, LevelWarn, LevelInfo, LevelDebug} {
		require.Equal(t, lvl, LevelOf(lvl.toLogf()))
	}
	require.Equal(t, logf.LevelInfo, Level("verbose").toLogf())
}

func TestDisabledLogger(t *testing.T) {
	logger := NewDisabledLogger()
	require.NotPanics(t, func() {
		logger.With(Bool("k", true)).Error("nothing written")
	})
}
