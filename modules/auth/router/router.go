package router

import (
	"weav-api/core/middleware"
	"weav-api/modules/auth/controller"

	"github.com/labstack/echo/v4"
)

type AuthRouter struct {
	AuthController *controller.AuthController
}

func NewAuthRouter(authController *controller.AuthController) *AuthRouter {
	return &AuthRouter{AuthController: authController}
}

func (r *AuthRouter) Register(api *echo.Group, mw *middleware.Middleware) {
	auth := api.Group("/auth")

	auth.GET("/google", r.AuthController.GoogleAuth)
	auth.GET("/google/callback", r.AuthController.GoogleCallback)
	auth.POST("/refresh", r.AuthController.RefreshToken)
	auth.POST("/logout", r.AuthController.Logout, mw.AuthMiddleware())
}
