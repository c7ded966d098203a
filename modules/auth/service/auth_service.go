package service

import (
	"context"
	"strings"
	"time"

	"weav-api/core/constants"
	"weav-api/core/errors"
	"weav-api/core/logger"
	"weav-api/core/utils"
	"weav-api/modules/auth/dto"
	"weav-api/modules/auth/provider"
	userEntity "weav-api/modules/user/entity"
)

// UserStore is the user repository operation sign-in needs.
type UserStore interface {
	UpsertByEmail(ctx context.Context, user *userEntity.User) (*userEntity.User, error)
}

// SessionStore holds OAuth states and revoked tokens.
type SessionStore interface {
	SetOAuthState(ctx context.Context, state string) error
	ConsumeOAuthState(ctx context.Context, state string) (bool, error)
	AddToTokenBlacklist(ctx context.Context, token string, ttl time.Duration) error
	IsTokenBlacklisted(ctx context.Context, token string) (bool, error)
}

type AuthServiceInterface interface {
	GoogleAuthURL(ctx context.Context) (string, *errors.AppError)
	GoogleCallback(ctx context.Context, code, state string) (*dto.TokenResponse, *errors.AppError)
	RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError)
	Logout(ctx context.Context, claims *utils.TokenClaims, rawToken string) *errors.AppError
}

type AuthService struct {
	users    UserStore
	sessions SessionStore
	google   provider.IdentityProvider
}

func NewAuthService(users UserStore, sessions SessionStore, google provider.IdentityProvider) AuthServiceInterface {
	return &AuthService{users: users, sessions: sessions, google: google}
}

func (s *AuthService) GoogleAuthURL(ctx context.Context) (string, *errors.AppError) {
	if !s.google.Configured() {
		return "", errors.NewAppError(errors.ErrInternalServer, "Google OAuth configuration is missing", nil)
	}

	state := utils.GenerateRandomString(32)
	if err := s.sessions.SetOAuthState(ctx, state); err != nil {
		return "", errors.NewAppError(errors.ErrInternalServer, "Failed to store OAuth state", err)
	}

	return s.google.AuthCodeURL(state), nil
}

// GoogleCallback signs the user in: the state is single use, the user is upserted by email.
func (s *AuthService) GoogleCallback(ctx context.Context, code, state string) (*dto.TokenResponse, *errors.AppError) {
	if code == "" || state == "" {
		return nil, errors.NewAppError(errors.ErrMissingField, "code and state are required", nil)
	}

	ok, err := s.sessions.ConsumeOAuthState(ctx, state)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to validate OAuth state", err)
	}
	if !ok {
		logger.Warn("AuthService:GoogleCallback:UnknownState")
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid or expired OAuth state", nil)
	}

	info, err := s.google.Exchange(ctx, code)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrExternalService, "Failed to sign in with Google", err)
	}
	email := strings.ToLower(strings.TrimSpace(info.Email))
	if email == "" {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google account has no email address", nil)
	}
	if !info.VerifiedEmail {
		logger.Warn("AuthService:GoogleCallback:UnverifiedEmail", "email", email)
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Google account email is not verified", nil)
	}

	user, err := s.users.UpsertByEmail(ctx, &userEntity.User{
		Email:          email,
		Username:       optional(strings.Split(email, "@")[0]),
		FirstName:      optional(info.GivenName),
		LastName:       optional(info.FamilyName),
		ProfilePic:     optional(info.Picture),
		GcalPermission: info.CalendarGranted,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to save user", err)
	}

	logger.Info("AuthService:GoogleCallback:SignedIn", "user_id", user.ID)
	return s.issueTokens(user.ID, user.Email)
}

// RefreshToken rotates the pair and revokes the presented refresh token.
func (s *AuthService) RefreshToken(ctx context.Context, refreshToken string) (*dto.TokenResponse, *errors.AppError) {
	claims, err := utils.ValidateAndParseToken(refreshToken)
	if err != nil || claims.Scope != constants.ScopeTokenRefresh {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid refresh token", err)
	}

	revoked, err := s.sessions.IsTokenBlacklisted(ctx, refreshToken)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to check refresh token", err)
	}
	if revoked {
		return nil, errors.NewAppError(errors.ErrUnauthorized, "Invalid refresh token", nil)
	}

	tokens, appErr := s.issueTokens(claims.UserID, claims.Email)
	if appErr != nil {
		return nil, appErr
	}

	if err := s.sessions.AddToTokenBlacklist(ctx, refreshToken, claims.RemainingTTL()); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to revoke refresh token", err)
	}
	return tokens, nil
}

func (s *AuthService) Logout(ctx context.Context, claims *utils.TokenClaims, rawToken string) *errors.AppError {
	ttl := claims.RemainingTTL()
	if ttl <= 0 {
		return nil
	}
	if err := s.sessions.AddToTokenBlacklist(ctx, rawToken, ttl); err != nil {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to log out", err)
	}
	logger.Info("AuthService:Logout", "user_id", claims.UserID)
	return nil
}

func (s *AuthService) issueTokens(userID int64, email string) (*dto.TokenResponse, *errors.AppError) {
	access, err := utils.GenerateToken(userID, email, constants.ScopeTokenAccess)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate access token", err)
	}
	refresh, err := utils.GenerateToken(userID, email, constants.ScopeTokenRefresh)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to generate refresh token", err)
	}
	return &dto.TokenResponse{AccessToken: access, RefreshToken: refresh}, nil
}

func optional(s string) *string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	return &s
}
