package notification

import (
	"weav-api/core/database"
	"weav-api/core/middleware"
	"weav-api/modules/notification/controller"
	"weav-api/modules/notification/repository"
	"weav-api/modules/notification/router"
	"weav-api/modules/notification/service"

	"github.com/labstack/echo/v4"
)

func Init(e *echo.Group, db database.IDatabase, mw *middleware.Middleware) service.NotificationServiceInterface {
	repo := repository.NewNotificationRepository(db)
	svc := service.NewNotificationService(repo)
	ctrl := controller.NewNotificationController(svc)

	router.NewNotificationRouter(ctrl).Register(e, mw)

	return svc
}
