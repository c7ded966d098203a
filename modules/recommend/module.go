package recommend

import (
	"weav-api/core/config"
	"weav-api/modules/recommend/client"
	"weav-api/modules/recommend/controller"
	"weav-api/modules/recommend/router"
	"weav-api/modules/recommend/service"

	"github.com/labstack/echo/v4"
)

// Init registers /api/recommend. cache may be nil.
func Init(api *echo.Group, cfg *config.Config, cache service.ResultCache) {
	search := client.NewClient(cfg.Eventbrite, nil)
	svc := service.NewRecommendService(search, cache, cfg.Eventbrite)
	ctrl := controller.NewRecommendController(svc)

	router.NewRecommendRouter(ctrl).Register(api, cfg.CORS, cfg.Eventbrite.RateLimit)
}
