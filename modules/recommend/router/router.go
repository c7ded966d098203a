package router

import (
	"net/http"
	"time"

	"weav-api/core/config"
	coreController "weav-api/core/controller"
	"weav-api/modules/recommend/controller"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"golang.org/x/time/rate"
)

type RecommendRouter struct {
	RecommendController *controller.RecommendController
}

func NewRecommendRouter(recommendController *controller.RecommendController) *RecommendRouter {
	return &RecommendRouter{RecommendController: recommendController}
}

// Register mounts the public /recommend route behind CORS and a per-IP limiter.
func (r *RecommendRouter) Register(api *echo.Group, cors config.CORSConfig, requestsPerSecond float64) {
	mws := []echo.MiddlewareFunc{
		echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
			AllowOrigins: cors.AllowOrigins,
			AllowMethods: []string{http.MethodPost, http.MethodGet, http.MethodOptions},
			AllowHeaders: []string{echo.HeaderContentType, echo.HeaderAuthorization},
		}),
	}
	if requestsPerSecond > 0 {
		mws = append(mws, RateLimiter(requestsPerSecond))
	}

	g := api.Group("/recommend", mws...)
	g.POST("", r.RecommendController.Recommend)
	// registered so the group's CORS middleware runs for preflight requests
	g.OPTIONS("", func(c echo.Context) error { return c.NoContent(http.StatusNoContent) })
}

// RateLimiter allows requestsPerSecond per client IP with a burst of twice that.
func RateLimiter(requestsPerSecond float64) echo.MiddlewareFunc {
	burst := int(requestsPerSecond * 2)
	if burst < 1 {
		burst = 1
	}

	return echoMiddleware.RateLimiterWithConfig(echoMiddleware.RateLimiterConfig{
		Store: echoMiddleware.NewRateLimiterMemoryStoreWithConfig(echoMiddleware.RateLimiterMemoryStoreConfig{
			Rate:      rate.Limit(requestsPerSecond),
			Burst:     burst,
			ExpiresIn: 3 * time.Minute,
		}),
		IdentifierExtractor: func(c echo.Context) (string, error) {
			return c.RealIP(), nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			return c.JSON(http.StatusForbidden, &coreController.ErrorResponse{Error: "Forbidden"})
		},
		DenyHandler: func(c echo.Context, identifier string, err error) error {
			return c.JSON(http.StatusTooManyRequests, &coreController.ErrorResponse{Error: "Too many requests"})
		},
	})
}
