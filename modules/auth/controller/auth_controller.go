package controller

import (
	"weav-api/core/constants"
	"weav-api/core/controller"
	"weav-api/core/errors"
	"weav-api/core/utils"
	"weav-api/modules/auth/dto"
	"weav-api/modules/auth/service"

	"github.com/labstack/echo/v4"
)

type AuthController struct {
	controller.BaseController
	AuthService service.AuthServiceInterface
}

func NewAuthController(authService service.AuthServiceInterface) *AuthController {
	return &AuthController{
		BaseController: controller.NewBaseController(),
		AuthService:    authService,
	}
}

// GoogleAuth handles GET /api/auth/google
// @Summary Google consent URL
// @Tags Auth
// @Produce json
// @Success 200 {object} dto.GoogleAuthURLResponse
// @Failure 500 {object} controller.ErrorResponse
// @Router /api/auth/google [get]
func (c *AuthController) GoogleAuth(ctx echo.Context) error {
	url, appErr := c.AuthService.GoogleAuthURL(ctx.Request().Context())
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.GoogleAuthURLResponse{URL: url})
}

// GoogleCallback handles GET /api/auth/google/callback
// @Summary Exchange the Google code for API tokens
// @Tags Auth
// @Produce json
// @Param code query string true "Authorization code"
// @Param state query string true "OAuth state"
// @Success 200 {object} dto.TokenResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /api/auth/google/callback [get]
func (c *AuthController) GoogleCallback(ctx echo.Context) error {
	if e := ctx.QueryParam("error"); e != "" {
		return c.Unauthorized(errors.ErrUnauthorized, "Google sign-in was cancelled")
	}

	tokens, appErr := c.AuthService.GoogleCallback(ctx.Request().Context(), ctx.QueryParam("code"), ctx.QueryParam("state"))
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, tokens)
}

// RefreshToken handles POST /api/auth/refresh
// @Summary Rotate the token pair
// @Tags Auth
// @Accept json
// @Produce json
// @Param request body dto.RefreshTokenRequest true "Refresh token"
// @Success 200 {object} dto.TokenResponse
// @Failure 401 {object} controller.ErrorResponse
// @Router /api/auth/refresh [post]
func (c *AuthController) RefreshToken(ctx echo.Context) error {
	var req dto.RefreshTokenRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	tokens, appErr := c.AuthService.RefreshToken(ctx.Request().Context(), req.RefreshToken)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, tokens)
}

// Logout handles POST /api/auth/logout
// @Summary Revoke the bearer token
// @Tags Auth
// @Security BearerAuth
// @Produce json
// @Success 200 {object} dto.SuccessResponse
// @Router /api/auth/logout [post]
func (c *AuthController) Logout(ctx echo.Context) error {
	claims, err := utils.GetClaims(ctx)
	if err != nil {
		return c.Unauthorized(errors.ErrUnauthorized, "Unauthorized")
	}
	raw, _ := ctx.Get(constants.ContextRawToken).(string)

	if appErr := c.AuthService.Logout(ctx.Request().Context(), claims, raw); appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, dto.SuccessResponse{Success: true})
}
