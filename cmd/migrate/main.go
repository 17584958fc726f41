package main

import (
	"os"

	"github.com/rs/zerolog/log"

	"venue/config"
	"venue/helper"
	"venue/shared/logger"
)

const (
	argLength = 2
)

var commands = map[string]func(*config.Config) error{
	"up":         helper.Up,
	"down":       helper.Down,
	"drop":       helper.Drop,
	"step-up":    helper.StepUp,
	"version":    helper.Version,
	"seed-admin": helper.SeedAdmin,
}

func main() {
	logger.InitLogger()

	if len(os.Args) < argLength {
		log.Fatal().Msg("Migration command (up/down/drop/step-up/version/seed-admin) is required")
	}

	cfg := config.Get()

	logger.SetLogLevel(cfg)

	command, ok := commands[os.Args[1]]
	if !ok {
		log.Fatal().Str("command", os.Args[1]).Msg("Invalid command. Use 'up', 'down', 'drop', 'step-up', 'version' or 'seed-admin'")
	}

	if err := command(cfg); err != nil {
		log.Fatal().Err(err).Str("command", os.Args[1]).Msg("Migration command failed")
	}
}
