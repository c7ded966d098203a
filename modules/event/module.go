package event

import (
	"weav-api/core/database"
	"weav-api/core/middleware"
	"weav-api/core/queue"
	"weav-api/modules/event/controller"
	"weav-api/modules/event/repository"
	"weav-api/modules/event/router"
	"weav-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

func Init(api *echo.Group, db database.IDatabase, q queue.Enqueuer, mw *middleware.Middleware) {
	repo := repository.NewEventRepository(db)
	svc := service.NewEventService(repo, q)
	ctrl := controller.NewEventController(svc)

	router.NewEventRouter(ctrl).Register(api, mw)
}
