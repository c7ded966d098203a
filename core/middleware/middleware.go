package middleware

import (
	"context"
	"net/http"

	"weav-api/core/constants"
	"weav-api/core/controller"
	"weav-api/core/logger"
	"weav-api/core/utils"

	"github.com/labstack/echo/v4"
)

// TokenBlacklist reports revoked tokens.
type TokenBlacklist interface {
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

type Middleware struct {
	blacklist TokenBlacklist
}

func NewMiddleware(blacklist TokenBlacklist) *Middleware {
	return &Middleware{blacklist: blacklist}
}

func unauthorized(c echo.Context) error {
	return c.JSON(http.StatusUnauthorized, &controller.ErrorResponse{Error: "Unauthorized"})
}

// AuthMiddleware requires a valid, unrevoked access token and stores its
// claims under constants.ContextTokenData.
func (m *Middleware) AuthMiddleware() echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			token, err := utils.GetTokenFromHeader(c)
			if err != nil {
				return unauthorized(c)
			}

			claims, err := utils.ValidateAndParseToken(token)
			if err != nil {
				logger.Debug("Middleware:Auth:InvalidToken", err)
				return unauthorized(c)
			}
			if claims.Scope != constants.ScopeTokenAccess || claims.UserID <= 0 {
				return unauthorized(c)
			}

			if m.blacklist != nil {
				revoked, err := m.blacklist.IsTokenBlacklisted(c.Request().Context(), token)
				if err != nil {
					logger.Error("Middleware:Auth:Blacklist", err)
					return unauthorized(c)
				}
				if revoked {
					return unauthorized(c)
				}
			}

			c.Set(constants.ContextTokenData, claims)
			c.Set(constants.ContextRawToken, token)
			return next(c)
		}
	}
}
