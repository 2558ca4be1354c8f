package global

import (
	"io"
	"os"
	"path/filepath"

	"github.com/go-logr/zerologr"
	"github.com/nathanieltooley/pokefactory/golurk"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

var previousLogger zerolog.Logger

// GlobalInit loads the config at configPath, sets up logging and hands the engine its logger
func GlobalInit(configPath string, shouldLog bool) (Config, error) {
	// Basic logging for config debugging
	initLogger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).With().Timestamp().Logger()

	config, err := LoadConfig(configPath)
	if err != nil {
		initLogger.Err(err).Msg("error occurred while loading config, using defaults")
		config = populateConfig(Config{})
	}
	Opt = config

	level := zerolog.InfoLevel
	if Opt.Debug {
		level = zerolog.DebugLevel
	}

	logger := createLogger(Opt.LogFile, level)
	if !shouldLog {
		logger = zerolog.Nop()
	}

	log.Logger = logger
	BridgeEngineLogger(logger, Opt.Debug)

	return config, err
}

func createLogger(logFile string, level zerolog.Level) zerolog.Logger {
	var out io.Writer = zerolog.ConsoleWriter{Out: os.Stderr}

	if logFile != "" {
		fileWriter := NewRollingFileWriter(filepath.Dir(logFile), fileStem(logFile))
		out = zerolog.MultiLevelWriter(out, zerolog.ConsoleWriter{Out: fileWriter, NoColor: true})
	}

	return zerolog.New(out).With().Timestamp().Logger().Level(level)
}

// BridgeEngineLogger routes the engine's logr output into logger. Debug lets through the
// per-action and per-decision messages as well.
func BridgeEngineLogger(logger zerolog.Logger, debug bool) {
	zerologr.NameFieldName = "logger"
	zerologr.NameSeparator = "/"

	if debug {
		zerologr.SetMaxV(1)
	} else {
		zerologr.SetMaxV(0)
	}

	golurk.SetInternalLogger(zerologr.New(&logger))
}

func StopLogging() {
	previousLogger = log.Logger
	log.Logger = zerolog.Nop()
	BridgeEngineLogger(log.Logger, false)
}

func ContinueLogging() {
	log.Logger = previousLogger
	BridgeEngineLogger(log.Logger, Opt.Debug)
}

func UpdateLogLevel(level zerolog.Level) {
	log.Logger = log.Logger.Level(level)
}
