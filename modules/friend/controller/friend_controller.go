package controller

import (
	"weav-api/core/controller"
	"weav-api/core/errors"
	"weav-api/core/utils"
	"weav-api/modules/friend/dto"
	"weav-api/modules/friend/service"

	"github.com/labstack/echo/v4"
)

// FriendController serves the friend actions of /api/users.
type FriendController struct {
	controller.BaseController
	FriendService service.FriendServiceInterface
}

func NewFriendController(svc service.FriendServiceInterface) *FriendController {
	return &FriendController{
		BaseController: controller.NewBaseController(),
		FriendService:  svc,
	}
}

// AddFriend handles POST /api/users?action=friend
// @Summary Send a friend request
// @Tags Friend
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.AddFriendRequest true "Target email"
// @Success 200 {object} dto.SuccessResponse
// @Failure 404 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /api/users [post]
func (c *FriendController) AddFriend(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	var req dto.AddFriendRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	if appErr := c.FriendService.AddFriend(ctx.Request().Context(), claims.UserID, req.TargetEmail); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.SuccessResponse{Success: true})
}

// AcceptFriend handles POST /api/users?action=accept
func (c *FriendController) AcceptFriend(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	var req dto.AcceptFriendRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	requesterID, ok := utils.ParseID(req.FriendID)
	if !ok {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid friend id")
	}

	if appErr := c.FriendService.AcceptFriend(ctx.Request().Context(), claims.UserID, requesterID); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}

	return c.SuccessResponse(ctx, dto.SuccessResponse{Success: true})
}

// ListMyFriends handles GET /api/users?action=friends
func (c *FriendController) ListMyFriends(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	return c.listFriends(ctx, claims.UserID)
}

// ListUserFriends handles GET /api/users/:id?action=friends
func (c *FriendController) ListUserFriends(ctx echo.Context) error {
	userID, ok := utils.ParseID(ctx.Param("id"))
	if !ok {
		return c.BadRequest(errors.ErrInvalidInput, "Invalid user id")
	}
	return c.listFriends(ctx, userID)
}

func (c *FriendController) listFriends(ctx echo.Context, userID int64) error {
	friends, appErr := c.FriendService.ListFriends(ctx.Request().Context(), userID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, friends)
}
