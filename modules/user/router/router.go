package router

import (
	"weav-api/core/middleware"
	"weav-api/modules/user/controller"

	"github.com/labstack/echo/v4"
)

type UserRouter struct {
	UserController *controller.UserController
}

func NewUserRouter(userController *controller.UserController) *UserRouter {
	return &UserRouter{UserController: userController}
}

func (r *UserRouter) Register(api *echo.Group, mw *middleware.Middleware) {
	users := api.Group("/users", mw.AuthMiddleware())

	users.GET("", r.UserController.GetMe)
	users.POST("", r.UserController.Post)
	users.PUT("", r.UserController.UpdateProfile)
	users.PUT("/avatar", r.UserController.UploadAvatar)
	users.GET("/:id", r.UserController.GetByID)
}
