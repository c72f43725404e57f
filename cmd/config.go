package cmd

import (
	"errors"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"

	"jsreduce.dev/pkg/jsreduce/internal/adapter"
	m "jsreduce.dev/pkg/jsreduce/internal/model"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "jsreduce"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."

	outputFlagName           = "output"
	reportsFlagName          = "reports"
	engineFlagName           = "engine"
	engineArgFlagName        = "engine-arg"
	timeoutFlagName          = "timeout"
	crashExitCodeFlagName    = "crash-exit-code"
	runParallelFlagName      = "parallel"
	modeFlagName             = "mode"
	baselineRunsFlagName     = "baseline-runs"
	requiredCoverageFlagName = "required-coverage"
	diffFlagName             = "diff"
	crashesFlagName          = "crashes"
	traceDirFlagName         = "trace-dir"
	keepTraceFlagName        = "keep-trace"
	logFlagName              = "log"
	verboseFlagName          = "verbose"

	reportsDirKey          = "reports.dir"
	enginePathKey          = "engine.path"
	engineArgsKey          = "engine.args"
	engineTimeoutKey       = "engine.timeout"
	engineCrashCodesKey    = "engine.crash_exit_codes"
	runParallelConfigKey   = "run.parallel"
	runModeKey             = "run.mode"
	runBaselineRunsKey     = "run.baseline_runs"
	runRequiredCoverageKey = "run.required_coverage"
	runDiffKey             = "run.diff"
	crashesDirKey          = "crashes.dir"
	traceDirKey            = "trace.dir"
	traceKeepKey           = "trace.keep"

	defaultOutputDir    = "minimized"
	defaultReportsDir   = ".jsreduce-reports"
	defaultRunParallel  = 1
	defaultRunMode      = string(m.ModeBoth)
	defaultBaselineRuns = 3
	defaultCrashesDir   = "crashes"

	envPrefix = "JSREDUCE"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".jsreduce.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

// defaultCrashExitCodes are the abort and segfault statuses a shell reports
// for an engine killed by SIGABRT or SIGSEGV.
var defaultCrashExitCodes = []int{134, 139}

var errMissingEngine = errors.New("no engine configured: pass --engine or set engine.path")

var globalLogger *slog.Logger

func init() {
	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultOutputDir)
	viper.SetDefault(reportsDirKey, defaultReportsDir)
	viper.SetDefault(enginePathKey, "")
	viper.SetDefault(engineArgsKey, []string{})
	viper.SetDefault(engineTimeoutKey, adapter.DefaultEngineTimeout)
	viper.SetDefault(engineCrashCodesKey, defaultCrashExitCodes)
	viper.SetDefault(runParallelConfigKey, defaultRunParallel)
	viper.SetDefault(runModeKey, defaultRunMode)
	viper.SetDefault(runBaselineRunsKey, defaultBaselineRuns)
	viper.SetDefault(runRequiredCoverageKey, "")
	viper.SetDefault(runDiffKey, false)
	viper.SetDefault(crashesDirKey, defaultCrashesDir)
	viper.SetDefault(traceDirKey, "")
	viper.SetDefault(traceKeepKey, false)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)

	// Without a config file, defaults and environment still apply.
	_ = viper.ReadInConfig()
}

// engineConfig assembles the engine invocation from flags, env and config.
func engineConfig() (adapter.EngineConfig, error) {
	binary := strings.TrimSpace(viper.GetString(enginePathKey))
	if binary == "" {
		return adapter.EngineConfig{}, errMissingEngine
	}

	return adapter.EngineConfig{
		Binary:         binary,
		Args:           viper.GetStringSlice(engineArgsKey),
		Timeout:        viper.GetDuration(engineTimeoutKey),
		CrashExitCodes: viper.GetIntSlice(engineCrashCodesKey),
	}, nil
}

func parseSlogLevel(value string, defaultLevel slog.Level) slog.Level {
	level := strings.ToLower(strings.TrimSpace(value))
	if level == "" {
		return defaultLevel
	}

	switch level {
	case "debug":
		return slog.LevelDebug
	case "info":
		return slog.LevelInfo
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	}

	// Allow numeric slog levels as well (e.g. -4 for debug).
	if n, err := strconv.Atoi(level); err == nil {
		return slog.Level(n)
	}

	return defaultLevel
}

// configureLogger configures the global slog logger.
//
// By default it logs at Info; if verbose is true it logs at Debug.
func configureLogger(logPath string, verbose bool) {
	if strings.TrimSpace(logPath) == "" {
		logPath = viper.GetString(logFilenameKey)
	}

	if strings.TrimSpace(logPath) == "" {
		logPath = defaultLogFilename
	}

	var logLevel slog.Level
	if verbose || viper.GetBool(logVerboseKey) {
		logLevel = slog.LevelDebug
	} else {
		logLevel = parseSlogLevel(viper.GetString(logLevelKey), slog.LevelInfo)
	}

	logWriter := &lumberjack.Logger{
		Filename:   logPath,
		MaxSize:    viper.GetInt(logMaxSizeKey),
		MaxBackups: viper.GetInt(logMaxBackupsKey),
		MaxAge:     viper.GetInt(logMaxAgeKey),
		Compress:   viper.GetBool(logCompressKey),
	}

	handler := slog.NewTextHandler(logWriter, &slog.HandlerOptions{
		AddSource: true,
		Level:     logLevel,
	})

	globalLogger = slog.New(handler)
	slog.SetDefault(globalLogger)
}
