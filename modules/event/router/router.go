package router

import (
	"weav-api/core/middleware"
	"weav-api/modules/event/controller"

	"github.com/labstack/echo/v4"
)

type EventRouter struct {
	EventController *controller.EventController
}

func NewEventRouter(eventController *controller.EventController) *EventRouter {
	return &EventRouter{EventController: eventController}
}

func (r *EventRouter) Register(api *echo.Group, mw *middleware.Middleware) {
	events := api.Group("/events", mw.AuthMiddleware())

	events.GET("", r.EventController.ListEvents)
	events.POST("", r.EventController.CreateEvent)
	events.GET("/:id", r.EventController.GetEvent)
	events.PATCH("/:id", r.EventController.PatchEvent)
}
