package main

import (
	"os"

	"weav-api/core/logger"
	"weav-api/core/server"
)

// @title Weav API
// @version 1.0
// @description Social event planning: friends, shared events, likes and recommendations.

// @host localhost:7070
// @BasePath /api

// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
// @description JWT Bearer token. Example: "Bearer {token}"

func main() {
	if err := server.Run(); err != nil {
		logger.Error("run server error", err)
		os.Exit(1)
	}
}
