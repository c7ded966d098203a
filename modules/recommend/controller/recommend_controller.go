package controller

import (
	"weav-api/core/controller"
	"weav-api/modules/recommend/dto"
	"weav-api/modules/recommend/service"

	"github.com/labstack/echo/v4"
)

type RecommendController struct {
	controller.BaseController
	RecommendService service.RecommendServiceInterface
}

func NewRecommendController(svc service.RecommendServiceInterface) *RecommendController {
	return &RecommendController{
		BaseController:   controller.NewBaseController(),
		RecommendService: svc,
	}
}

// Recommend handles POST /api/recommend
// @Summary Recommended outings from the external events search
// @Tags Recommend
// @Accept json
// @Produce json
// @Param request body dto.RecommendRequest true "Calendars and preferences"
// @Success 200 {object} dto.RecommendResponse
// @Failure 400 {object} controller.ErrorResponse
// @Failure 429 {object} controller.ErrorResponse
// @Failure 500 {object} controller.ErrorResponse
// @Router /api/recommend [post]
func (c *RecommendController) Recommend(ctx echo.Context) error {
	var req dto.RecommendRequest
	if herr := controller.Bind(ctx, &req); herr != nil {
		return herr
	}

	resp, appErr := c.RecommendService.Recommend(ctx.Request().Context(), &req)
	if appErr != nil {
		return c.ErrorResponse(ctx, appErr)
	}
	return c.SuccessResponse(ctx, resp)
}
