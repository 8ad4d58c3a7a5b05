package tui

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSplog(t *testing.T) {
	t.Run("writes info bare and prefixes errors", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf)

		splog.Info("cloning %s", "main")
		splog.Error("failed %d", 2)

		require.Equal(t, "cloning main\n❌ failed 2\n", buf.String())
	})

	t.Run("debug messages follow debug mode", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		var buf bytes.Buffer
		splog := NewSplogWithWriter(&buf)

		splog.Debug("hidden")
		require.Empty(t, buf.String())

		splog.SetDebug(true)
		splog.Debug("shown")
		require.Equal(t, "shown\n", buf.String())
	})

	t.Run("mirrors messages to the log file", func(t *testing.T) {
		t.Setenv("DEBUG", "")
		logPath := filepath.Join(t.TempDir(), "logs", "githelper.log")
		var console bytes.Buffer
		splog, err := NewSplogWithConfig(&console, logPath)
		require.NoError(t, err)

		splog.Debug("file only %d", 42)
		require.NoError(t, splog.Close())

		data, err := os.ReadFile(logPath)
		require.NoError(t, err)
		require.Contains(t, string(data), "file only 42")
		require.Contains(t, string(data), "level=DEBUG")
		require.Empty(t, console.String())
	})
}

func TestGetLogFilePath(t *testing.T) {
	t.Setenv("GITHELPER_LOG_FILE", "/tmp/custom.log")
	require.Equal(t, "/tmp/custom.log", GetLogFilePath())
}
