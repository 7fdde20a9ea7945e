package cmd

import (
	"errors"
	"io/fs"
	"log/slog"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/viper"
	"gopkg.in/natefinch/lumberjack.v2"
	"hdrcheck.dev/pkg/hdrcheck/internal/domain"
)

const (
	configVersionKey     = "version"
	currentConfigVersion = 1

	configBaseName   = "hdrcheck"
	configFileName   = configBaseName + ".yaml"
	configFolderPath = "."
	envFileName      = ".env"

	outputFlagName      = "output"
	excludeFlagName     = "exclude"
	verboseFlagName     = "verbose"
	logFileFlagName     = "log-file"
	includeFlagName     = "include"
	extFlagName         = "ext"
	strictCacheFlagName = "strict-cache"
	parallelFlagName    = "parallel"
	requireSPFlagName   = "require-search-path"
	noSaveFlagName      = "no-save"
	macroFlagName       = "macro"
	dryRunFlagName      = "dry-run"
	masterFlagName      = "master"
	targetFlagName      = "target"

	excludeConfigKey = "paths.exclude"

	checkRootKey        = "check.root"
	checkSearchPathsKey = "check.search_paths"
	checkExtensionsKey  = "check.extensions"
	checkStrictCacheKey = "check.strict_cache"
	checkParallelKey    = "check.parallel"
	checkRequireSPKey   = "check.require_search_path"
	checkNoSaveKey      = "check.no_save"

	callsMacroKey      = "calls.macro"
	callsExtensionsKey = "calls.extensions"

	patchRootKey       = "patch.root"
	patchMacroKey      = "patch.macro"
	patchExtensionsKey = "patch.extensions"

	copyMasterKey     = "copy.master"
	copyTargetKey     = "copy.target"
	copyExtensionsKey = "copy.extensions"

	defaultReportsDir   = ".hdrcheck-reports"
	defaultCheckRoot    = "."
	defaultPatchRoot    = "lib/lvgl/src"
	defaultCheckThreads = 1

	envPrefix = "HDRCHECK"

	logFilenameKey   = "log.filename"
	logLevelKey      = "log.level"
	logVerboseKey    = "log.verbose"
	logMaxSizeKey    = "log.max_size"
	logMaxBackupsKey = "log.max_backups"
	logMaxAgeKey     = "log.max_age"
	logCompressKey   = "log.compress"

	defaultLogFilename   = ".hdrcheck.log"
	defaultLogLevel      = int(slog.LevelInfo)
	defaultLogVerbose    = false
	defaultLogMaxSize    = 10
	defaultLogMaxBackups = 3
	defaultLogMaxAge     = 28
	defaultLogCompress   = true
)

var globalLogger *slog.Logger

func init() {
	loadDotEnv(filepath.Join(configFolderPath, envFileName))

	viper.SetConfigName(configBaseName)
	viper.SetConfigType("yaml")
	viper.AddConfigPath(configFolderPath)
	viper.SetConfigFile(filepath.Join(configFolderPath, configFileName))
	viper.AutomaticEnv()
	viper.SetEnvPrefix(envPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_", ".", "_"))

	setDefaults()

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) || errors.Is(err, fs.ErrNotExist) {
			return
		}

		slog.Warn("failed to read config file", "file", configFileName, "error", err)
	}
}

func setDefaults() {
	viper.SetDefault(configVersionKey, currentConfigVersion)
	viper.SetDefault(outputFlagName, defaultReportsDir)
	viper.SetDefault(excludeConfigKey, []string{})

	viper.SetDefault(checkRootKey, defaultCheckRoot)
	viper.SetDefault(checkSearchPathsKey, []string{})
	viper.SetDefault(checkExtensionsKey, domain.DefaultExtensions)
	viper.SetDefault(checkStrictCacheKey, false)
	viper.SetDefault(checkParallelKey, defaultCheckThreads)
	viper.SetDefault(checkRequireSPKey, false)
	viper.SetDefault(checkNoSaveKey, false)

	viper.SetDefault(callsMacroKey, domain.DefaultMacro)
	viper.SetDefault(callsExtensionsKey, domain.DefaultExtensions)

	viper.SetDefault(patchRootKey, defaultPatchRoot)
	viper.SetDefault(patchMacroKey, domain.DefaultMacro)
	viper.SetDefault(patchExtensionsKey, domain.DefaultConfigExtensions)

	viper.SetDefault(copyMasterKey, domain.DefaultConfigMaster)
	viper.SetDefault(copyTargetKey, domain.DefaultConfigTarget)
	viper.SetDefault(copyExtensionsKey, domain.DefaultConfigExtensions)

	// Logging defaults (used by config/env and as fallbacks for flags).
	viper.SetDefault(logFilenameKey, defaultLogFilename)
	viper.SetDefault(logLevelKey, defaultLogLevel)
	viper.SetDefault(logVerboseKey, defaultLogVerbose)
	viper.SetDefault(logMaxSizeKey, defaultLogMaxSize)
	viper.SetDefault(logMaxBackupsKey, defaultLogMaxBackups)
	viper.SetDefault(logMaxAgeKey, defaultLogMaxAge)
	viper.SetDefault(logCompressKey, defaultLogCompress)
}

// loadDotEnv exports the variables of an optional .env file. Variables that
// are already set in the environment win.
func loadDotEnv(path string) {
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		slog.Warn("failed to load env file", "file", path, "error", err)
	}
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
	if verbose {
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
