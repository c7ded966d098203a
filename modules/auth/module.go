package auth

import (
	"weav-api/core/config"
	"weav-api/core/database"
	"weav-api/core/logger"
	"weav-api/core/middleware"
	"weav-api/modules/auth/controller"
	"weav-api/modules/auth/provider"
	"weav-api/modules/auth/router"
	"weav-api/modules/auth/service"
	userRepository "weav-api/modules/user/repository"

	"github.com/labstack/echo/v4"
)

func Init(api *echo.Group, db database.IDatabase, sessions service.SessionStore, cfg config.GoogleAPIConfig, mw *middleware.Middleware) {
	google := provider.NewGoogle(cfg)
	if !google.Configured() {
		logger.Warn("Auth:Init:GoogleNotConfigured", "reason", "google client id, secret or redirect uri missing")
	}

	users := userRepository.NewUserRepository(db)
	authService := service.NewAuthService(users, sessions, google)
	router.NewAuthRouter(controller.NewAuthController(authService)).Register(api, mw)
}
