package cmd

import (
	"log/slog"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestConfigConstants(t *testing.T) {
	assert.Equal(t, "jsreduce", configBaseName)
	assert.Equal(t, "jsreduce.yaml", configFileName)
	assert.Equal(t, ".", configFolderPath)
	assert.Equal(t, "output", outputFlagName)
	assert.Equal(t, "parallel", runParallelFlagName)
	assert.Equal(t, "run.parallel", runParallelConfigKey)
	assert.Equal(t, "engine.path", enginePathKey)
	assert.Equal(t, "engine.crash_exit_codes", engineCrashCodesKey)
	assert.Equal(t, "minimized", defaultOutputDir)
	assert.Equal(t, ".jsreduce-reports", defaultReportsDir)
	assert.Equal(t, "both", defaultRunMode)
	assert.Equal(t, 1, defaultRunParallel)
	assert.Equal(t, "JSREDUCE", envPrefix)
}

func TestConfigVersionConstants(t *testing.T) {
	assert.Equal(t, "version", configVersionKey)
	assert.Equal(t, 1, currentConfigVersion)
}

func TestEngineConfig(t *testing.T) {
	t.Run("missing engine", func(t *testing.T) {
		t.Setenv("JSREDUCE_ENGINE_PATH", " ")

		_, err := engineConfig()
		require.ErrorIs(t, err, errMissingEngine)
	})

	t.Run("from environment", func(t *testing.T) {
		t.Setenv("JSREDUCE_ENGINE_PATH", "/opt/d8")
		t.Setenv("JSREDUCE_ENGINE_ARGS", "--fuzzing --expose-gc")
		t.Setenv("JSREDUCE_ENGINE_TIMEOUT", "250ms")

		cfg, err := engineConfig()
		require.NoError(t, err)

		assert.Equal(t, "/opt/d8", cfg.Binary)
		assert.Equal(t, []string{"--fuzzing", "--expose-gc"}, cfg.Args)
		assert.Equal(t, 250*time.Millisecond, cfg.Timeout)
		assert.Equal(t, defaultCrashExitCodes, cfg.CrashExitCodes)
	})
}

func TestParseSlogLevel(t *testing.T) {
	tests := []struct {
		value string
		want  slog.Level
	}{
		{"", slog.LevelInfo},
		{"debug", slog.LevelDebug},
		{" WARN ", slog.LevelWarn},
		{"warning", slog.LevelWarn},
		{"error", slog.LevelError},
		{"-4", slog.LevelDebug},
		{"loud", slog.LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.value, func(t *testing.T) {
			assert.Equal(t, tt.want, parseSlogLevel(tt.value, slog.LevelInfo))
		})
	}
}

func TestConfigureLogger(t *testing.T) {
	original := slog.Default()
	t.Cleanup(func() { slog.SetDefault(original) })

	logPath := filepath.Join(t.TempDir(), "jsreduce.log")
	configureLogger(logPath, true)

	slog.Debug("logger configured", "key", "value")

	data, err := os.ReadFile(logPath)
	require.NoError(t, err)
	assert.Contains(t, string(data), "logger configured")
	assert.Contains(t, string(data), "key=value")
}
