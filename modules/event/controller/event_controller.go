package controller

import (
	"weav-api/core/controller"
	"weav-api/core/errors"
	"weav-api/core/utils"
	"weav-api/modules/event/dto"
	"weav-api/modules/event/service"

	"github.com/labstack/echo/v4"
)

const ActionToggleLike = "toggleLike"

type EventController struct {
	controller.BaseController
	EventService service.EventServiceInterface
}

func NewEventController(svc service.EventServiceInterface) *EventController {
	return &EventController{
		BaseController: controller.NewBaseController(),
		EventService:   svc,
	}
}

// ListEvents handles GET /api/events
// @Summary Events the caller created or participates in
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Success 200 {array} dto.EventResponse
// @Failure 401 {object} controller.ErrorResponse
// @Failure 500 {object} controller.ErrorResponse
// @Router /api/events [get]
func (c *EventController) ListEvents(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	events, appErr := c.EventService.ListEvents(ctx.Request().Context(), claims.UserID, nil)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, events)
}

// GetEvent handles GET /api/events/:id
// @Summary A single visible event
// @Tags Event
// @Security BearerAuth
// @Produce json
// @Param id path string true "Event ID"
// @Success 200 {object} dto.EventResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /api/events/{id} [get]
func (c *EventController) GetEvent(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	event, appErr := c.EventService.GetEvent(ctx.Request().Context(), claims.UserID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, event)
}

// CreateEvent handles POST /api/events
// @Summary Create an event and invite participants
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.CreateEventRequest true "Event"
// @Success 201 {object} dto.EventResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /api/events [post]
func (c *EventController) CreateEvent(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	var req dto.CreateEventRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	event, appErr := c.EventService.CreateEvent(ctx.Request().Context(), claims.UserID, &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.CreatedResponse(ctx, event)
}

// PatchEvent handles PATCH /api/events/:id
// @Summary Apply an action to an event; only toggleLike is supported
// @Tags Event
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param id path string true "Event ID"
// @Param request body dto.PatchEventRequest true "Action"
// @Success 200 {object} dto.ToggleLikeResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 500 {object} controller.ErrorResponse
// @Router /api/events/{id} [patch]
func (c *EventController) PatchEvent(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	eventID, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid event id")
	}

	var req dto.PatchEventRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}
	if req.Action != ActionToggleLike {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid action")
	}

	liked, appErr := c.EventService.ToggleLike(ctx.Request().Context(), claims.UserID, eventID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.ToggleLikeResponse{Success: true, IsLiked: liked})
}
