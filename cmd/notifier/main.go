package main

import (
	"venue/config"
	"venue/di"
	"venue/shared/logger"
)

func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	notifier := di.InitializeNotifier()
	notifier.Run()
}
