package main

import (
	"venue/config"
	"venue/di"
	"venue/shared/logger"
)

// @title Venue Booking API
// @version 1.0
// @description Back office for venue inquiries, menu planning and rentals.
// @BasePath /
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description Type "Bearer" followed by a space and the access token.
func main() {
	cfg := config.Get()

	logger.InitLogger()

	logger.SetLogLevel(cfg)

	http := di.InitializeService()
	http.Serve()
}
