package user

import (
	"weav-api/core/database"
	"weav-api/core/middleware"
	"weav-api/core/storage"
	"weav-api/modules/user/controller"
	"weav-api/modules/user/repository"
	"weav-api/modules/user/router"
	"weav-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// Init registers /api/users. cache and store may be nil.
func Init(api *echo.Group, db database.IDatabase, cache service.ProfileCache, store storage.Storage, mw *middleware.Middleware, friends controller.FriendHandlers) {
	repo := repository.NewUserRepository(db)
	svc := service.NewUserService(repo, cache, store)
	ctrl := controller.NewUserController(svc, friends)

	router.NewUserRouter(ctrl).Register(api, mw)
}
