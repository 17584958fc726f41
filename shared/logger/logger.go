package logger

import (
	"io"
	"os"
	"time"

	"github.com/pkg/errors"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/shared/constant"
)

var output io.Writer = os.Stdout

func InitLogger() {
	zerolog.TimeFieldFormat = zerolog.TimeFormatUnix
	zerolog.SetGlobalLevel(zerolog.TraceLevel)

	log.Logger = log.Output(zerolog.ConsoleWriter{Out: output, TimeFormat: time.RFC3339})
	log.Trace().Msg("Zerolog initialized.")
}

func ErrorWithStack(err error) {
	log.Error().Msgf("%+v", errors.WithStack(err))
}

// SetLogLevel applies Server.LogLevel, defaulting to info. Deployed
// environments log JSON lines tagged with the app name and environment.
func SetLogLevel(config *config.Config) {
	if env := config.Server.Env; env != constant.Empty && env != constant.ServerEnvDevelopment {
		log.Logger = zerolog.New(output).With().
			Timestamp().
			Str("app", config.App.Name).
			Str("env", env).
			Logger()
	}

	level, err := zerolog.ParseLevel(config.Server.LogLevel)
	if err != nil || level == zerolog.NoLevel {
		level = zerolog.InfoLevel
		log.Info().Str("loglevel", level.String()).Msg("No valid log level configured, using default.")
	} else {
		log.Info().Str("loglevel", level.String()).Msg("Desired log level detected.")
	}

	zerolog.SetGlobalLevel(level)
}
