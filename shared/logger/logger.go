// Package logger configures the global zerolog logger.
package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"gopkg.in/natefinch/lumberjack.v2"

	"hotel/config"
)

const defaultLevel = zerolog.InfoLevel

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

func console() io.Writer {
	return zerolog.ConsoleWriter{Out: os.Stdout, TimeFormat: time.RFC3339}
}

// InitLogger installs a console logger at trace level so configuration
// loading itself can be logged. SetLogLevel narrows it afterwards.
func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = zerolog.New(console()).With().Timestamp().Logger()
	log.Trace().Msg("Zerolog initialized.")
}

// EnableFileOutput tees the global logger into a size-rotated JSON file when
// LOG_FILE_PATH is set. The returned closer releases the file.
func EnableFileOutput(cfg *config.Config) io.Closer {
	file := cfg.Log.File
	if file.Path == "" {
		return nopCloser{}
	}

	rotator := &lumberjack.Logger{
		Filename:   file.Path,
		MaxSize:    file.MaxSizeMB,
		MaxBackups: file.MaxBackups,
		MaxAge:     file.MaxAgeDays,
		Compress:   file.Compress,
	}

	log.Logger = zerolog.New(zerolog.MultiLevelWriter(console(), rotator)).With().Timestamp().Logger()
	log.Info().Str("path", file.Path).Msg("File logging enabled.")

	return rotator
}

// ErrorWithStack logs err with the stack of the caller attached.
func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies SERVER_LOG_LEVEL. Unset or unknown values fall back to
// info.
func SetLogLevel(cfg *config.Config) {
	level, err := zerolog.ParseLevel(cfg.Server.LogLevel)
	if err != nil || cfg.Server.LogLevel == "" {
		log.Warn().Str("requested", cfg.Server.LogLevel).Str("using", defaultLevel.String()).Msg("Log level not set or unknown.")

		level = defaultLevel
	}

	zerolog.SetGlobalLevel(level)
	log.Debug().Str("level", level.String()).Msg("Log level applied.")
}
