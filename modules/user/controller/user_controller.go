package controller

import (
	"weav-api/core/controller"
	"weav-api/core/errors"
	"weav-api/core/utils"
	"weav-api/modules/user/dto"
	"weav-api/modules/user/service"

	"github.com/labstack/echo/v4"
)

// FriendHandlers are the friend actions dispatched from /api/users.
type FriendHandlers interface {
	AddFriend(c echo.Context) error
	AcceptFriend(c echo.Context) error
	ListMyFriends(c echo.Context) error
	ListUserFriends(c echo.Context) error
}

type UserController struct {
	controller.BaseController
	UserService service.UserServiceInterface
	Friends     FriendHandlers
}

func NewUserController(svc service.UserServiceInterface, friends FriendHandlers) *UserController {
	return &UserController{
		BaseController: controller.NewBaseController(),
		UserService:    svc,
		Friends:        friends,
	}
}

// GetMe handles GET /api/users
// @Summary Current user's profile, or friends with ?action=friends
// @Tags User
// @Security BearerAuth
// @Produce json
// @Param action query string false "friends"
// @Success 200 {object} dto.ProfileResponse
// @Failure 401 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /api/users [get]
func (c *UserController) GetMe(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	if ctx.QueryParam("action") == "friends" {
		return c.Friends.ListMyFriends(ctx)
	}

	profile, appErr := c.UserService.GetProfileByID(ctx.Request().Context(), claims.UserID)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, profile)
}

// Post handles POST /api/users?action=friend|accept|profile
// @Summary Friend request, accept, or profile sync
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param action query string true "friend, accept or profile"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Router /api/users [post]
func (c *UserController) Post(ctx echo.Context) error {
	switch ctx.QueryParam("action") {
	case "friend":
		return c.Friends.AddFriend(ctx)
	case "accept":
		return c.Friends.AcceptFriend(ctx)
	case "profile":
		return c.SyncProfile(ctx)
	default:
		return c.BadRequest(errors.ErrInvalidInput, "Invalid action")
	}
}

// SyncProfile upserts the caller's identity-provider profile.
func (c *UserController) SyncProfile(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	var req dto.SyncProfileRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	if _, appErr := c.UserService.SyncProfile(ctx.Request().Context(), claims.Email, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.SuccessResponse{Success: true})
}

// UpdateProfile handles PUT /api/users
// @Summary Partially update the caller's profile
// @Tags User
// @Security BearerAuth
// @Accept json
// @Produce json
// @Param request body dto.UpdateProfileRequest true "Fields to change"
// @Success 200 {object} dto.SuccessResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 403 {object} controller.ErrorResponse
// @Failure 409 {object} controller.ErrorResponse
// @Router /api/users [put]
func (c *UserController) UpdateProfile(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	var req dto.UpdateProfileRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	if appErr := c.UserService.UpdateProfile(ctx.Request().Context(), claims.UserID, &req); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.SuccessResponse{Success: true})
}

// UploadAvatar handles PUT /api/users/avatar (multipart field "file")
func (c *UserController) UploadAvatar(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}

	fh, err := ctx.FormFile("file")
	if err != nil {
		return c.BadRequest(errors.ErrMissingField, "file is required")
	}

	f, err := fh.Open()
	if err != nil {
		return c.BadRequest(errors.ErrInvalidRequestData, "Invalid file", err)
	}
	defer f.Close()

	res, appErr := c.UserService.UploadAvatar(ctx.Request().Context(), claims.UserID, &dto.AvatarUpload{
		Filename:    fh.Filename,
		ContentType: fh.Header.Get(echo.HeaderContentType),
		Size:        fh.Size,
		Body:        f,
	})
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, res)
}

// GetByID handles GET /api/users/:id?action=profile|friends
// @Summary Another user's profile or friends
// @Tags User
// @Security BearerAuth
// @Produce json
// @Param id path string true "User ID"
// @Param action query string true "profile or friends"
// @Success 200 {object} dto.ProfileResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 404 {object} controller.ErrorResponse
// @Router /api/users/{id} [get]
func (c *UserController) GetByID(ctx echo.Context) error {
	switch ctx.QueryParam("action") {
	case "profile":
		id, ok := utils.ParseID(ctx.Param("id"))
		if !ok {
			return c.BadRequest(errors.ErrInvalidInput, "Invalid user id")
		}
		profile, appErr := c.UserService.GetProfileByID(ctx.Request().Context(), id)
		if appErr != nil {
			return c.ErrorResponse(ctx, appErr)
		}
		return c.SuccessResponse(ctx, profile)
	case "friends":
		return c.Friends.ListUserFriends(ctx)
	default:
		return c.BadRequest(errors.ErrInvalidInput, "Invalid action")
	}
}
