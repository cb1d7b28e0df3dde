package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/WongKingLongKen/Creation-of-new-Products-Actuarial/internal/config"
)

func TestNewWritesFileAndConsole(t *testing.T) {
	logFile := filepath.Join(t.TempDir(), "debug.log")
	var console bytes.Buffer

	cfg := config.DefaultConfig().Logging
	cfg.File = logFile

	logger, closeFn, err := New(Options{Config: cfg, Console: &console})
	require.NoError(t, err)

	logger.Debug("debug detail")
	logger.Info("Completed")
	require.NoError(t, closeFn())

	assert.NotContains(t, console.String(), "debug detail")
	assert.Contains(t, console.String(), "INFO")
	assert.Contains(t, console.String(), "Completed")
	assert.Contains(t, console.String(), "run_id")

	data, err := os.ReadFile(logFile)
	require.NoError(t, err)
	lines := strings.Split(strings.TrimSpace(string(data)), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], "DEBUG")
	assert.Contains(t, lines[0], "plancode:")
	assert.Contains(t, lines[0], "debug detail")
}

func TestNewVerboseConsole(t *testing.T) {
	var console bytes.Buffer
	cfg := config.LoggingConfig{}

	logger, closeFn, err := New(Options{Config: cfg, Console: &console, Verbose: true})
	require.NoError(t, err)
	logger.Debug("shown")
	require.NoError(t, closeFn())
	assert.Contains(t, console.String(), "shown")
}

func TestNewInvalidLevel(t *testing.T) {
	_, _, err := New(Options{Config: config.LoggingConfig{Level: "loud"}})
	assert.Error(t, err)

	_, _, err = New(Options{Config: config.LoggingConfig{ConsoleLevel: "loud"}})
	assert.Error(t, err)
}
