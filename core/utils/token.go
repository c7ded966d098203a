package utils

import (
	"fmt"
	"strings"
	"time"

	"weav-api/core/config"
	"weav-api/core/constants"
	"weav-api/core/errors"

	"github.com/golang-jwt/jwt/v5"
	"github.com/labstack/echo/v4"
)

// TokenClaims is the identity attached to every authenticated request.
type TokenClaims struct {
	UserID int64  `json:"uid"`
	Email  string `json:"email"`
	Scope  string `json:"scope"`
	jwt.RegisteredClaims
}

// ErrNoSigningKey means config was not loaded or carries no jwt secret.
var ErrNoSigningKey = errors.NewAppError(errors.ErrInternalServer, "jwt secret is not configured", nil)

func jwtSettings() (config.JWTConfig, error) {
	cfg, ok := config.GetSafe()
	if !ok || strings.TrimSpace(cfg.JWT.Secret) == "" {
		return config.JWTConfig{}, ErrNoSigningKey
	}
	return cfg.JWT, nil
}

// GenerateToken signs an HS256 token for the given scope.
func GenerateToken(userID int64, email string, scope string) (string, error) {
	s, err := jwtSettings()
	if err != nil {
		return "", err
	}

	ttl := s.AccessTTL
	if scope == constants.ScopeTokenRefresh {
		ttl = s.RefreshTTL
	}

	now := time.Now()
	claims := TokenClaims{
		UserID: userID,
		Email:  email,
		Scope:  scope,
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    s.Issuer,
			Subject:   fmt.Sprintf("%d", userID),
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(ttl)),
			ID:        GenerateID(),
		},
	}

	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString([]byte(s.Secret))
}

func ValidateAndParseToken(tokenString string) (*TokenClaims, error) {
	s, err := jwtSettings()
	if err != nil {
		return nil, err
	}

	claims := &TokenClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return []byte(s.Secret), nil
	}, jwt.WithIssuer(s.Issuer))
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, errors.NewAppError(errors.ErrTokenExpired, "token expired", err)
		}
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", err)
	}
	if !token.Valid {
		return nil, errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid token", nil)
	}

	return claims, nil
}

// RemainingTTL is how long the token stays valid, used when blacklisting it.
func (c *TokenClaims) RemainingTTL() time.Duration {
	if c.ExpiresAt == nil {
		return 0
	}
	return time.Until(c.ExpiresAt.Time)
}

// GetTokenFromHeader returns the bearer token of the request.
func GetTokenFromHeader(c echo.Context) (string, error) {
	header := c.Request().Header.Get(echo.HeaderAuthorization)
	if header == "" {
		return "", errors.NewAppError(errors.ErrMissingAuthorizationHeader, "missing authorization header", nil)
	}

	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") || strings.TrimSpace(parts[1]) == "" {
		return "", errors.NewAppError(errors.ErrInvalidTokenFormat, "invalid authorization header", nil)
	}

	return strings.TrimSpace(parts[1]), nil
}

// GetClaims reads the identity set by the auth middleware.
func GetClaims(c echo.Context) (*TokenClaims, error) {
	claims, ok := c.Get(constants.ContextTokenData).(*TokenClaims)
	if !ok || claims == nil {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Unauthorized", nil)
	}
	return claims, nil
}
