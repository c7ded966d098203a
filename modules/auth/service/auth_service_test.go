package service

import (
	"context"
	"errors"
	"net/url"
	"testing"
	"time"

	"weav-api/core/cache"
	"weav-api/core/config"
	"weav-api/core/constants"
	appErrors "weav-api/core/errors"
	"weav-api/core/utils"
	"weav-api/modules/auth/provider"
	userEntity "weav-api/modules/user/entity"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeUsers struct {
	saved []*userEntity.User
}

func (f *fakeUsers) UpsertByEmail(_ context.Context, u *userEntity.User) (*userEntity.User, error) {
	f.saved = append(f.saved, u)
	out := *u
	out.ID = 42
	return &out, nil
}

type fakeGoogle struct {
	configured bool
	info       *provider.UserInfo
	err        error
}

func (g *fakeGoogle) Configured() bool { return g.configured }

func (g *fakeGoogle) AuthCodeURL(state string) string {
	return "https://accounts.example.com/auth?state=" + url.QueryEscape(state)
}

func (g *fakeGoogle) Exchange(context.Context, string) (*provider.UserInfo, error) {
	return g.info, g.err
}

func setup(t *testing.T, google *fakeGoogle) (AuthServiceInterface, *fakeUsers, *cache.RedisCache) {
	t.Helper()
	config.Set(&config.Config{JWT: config.JWTConfig{
		Secret:     "auth-secret",
		Issuer:     "weav",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}})
	t.Cleanup(func() { config.Set(nil) })

	mr := miniredis.RunT(t)
	rc := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rc.Close() })
	sessions := cache.NewRedisCache(rc)

	users := &fakeUsers{}
	return NewAuthService(users, sessions, google), users, sessions
}

func stateFrom(t *testing.T, authURL string) string {
	t.Helper()
	u, err := url.Parse(authURL)
	require.NoError(t, err)
	return u.Query().Get("state")
}

func TestGoogleSignIn(t *testing.T) {
	google := &fakeGoogle{configured: true, info: &provider.UserInfo{
		Email:           "Ana@Example.com",
		VerifiedEmail:   true,
		GivenName:       "Ana",
		FamilyName:      "Lima",
		CalendarGranted: true,
	}}
	svc, users, _ := setup(t, google)
	ctx := context.Background()

	authURL, appErr := svc.GoogleAuthURL(ctx)
	require.Nil(t, appErr)
	state := stateFrom(t, authURL)
	require.Len(t, state, 32)

	tokens, appErr := svc.GoogleCallback(ctx, "code", state)
	require.Nil(t, appErr)

	require.Len(t, users.saved, 1)
	saved := users.saved[0]
	assert.Equal(t, "ana@example.com", saved.Email)
	assert.Equal(t, "ana", *saved.Username)
	assert.Equal(t, "Ana", *saved.FirstName)
	assert.Nil(t, saved.ProfilePic)
	assert.True(t, saved.GcalPermission)

	claims, err := utils.ValidateAndParseToken(tokens.AccessToken)
	require.NoError(t, err)
	assert.Equal(t, int64(42), claims.UserID)
	assert.Equal(t, "ana@example.com", claims.Email)
	assert.Equal(t, constants.ScopeTokenAccess, claims.Scope)

	// the state is single use
	_, appErr = svc.GoogleCallback(ctx, "code", state)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrUnauthorized, appErr.Code)
}

func TestGoogleAuthURLNotConfigured(t *testing.T) {
	svc, _, _ := setup(t, &fakeGoogle{configured: false})

	_, appErr := svc.GoogleAuthURL(context.Background())
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrInternalServer, appErr.Code)
}

func TestGoogleCallbackErrors(t *testing.T) {
	tests := []struct {
		name    string
		google  *fakeGoogle
		code    string
		state   string
		wantErr appErrors.ErrorCode
		message string
	}{
		{
			name:    "missing code and state",
			google:  &fakeGoogle{configured: true},
			wantErr: appErrors.ErrMissingField,
			message: "code and state are required",
		},
		{
			name:    "unknown state",
			google:  &fakeGoogle{configured: true},
			code:    "code",
			state:   "forged",
			wantErr: appErrors.ErrUnauthorized,
			message: "Invalid or expired OAuth state",
		},
		{
			name:    "exchange fails",
			google:  &fakeGoogle{configured: true, err: errors.New("invalid_grant")},
			code:    "bad",
			state:   "s1",
			wantErr: appErrors.ErrExternalService,
			message: "Failed to sign in with Google",
		},
		{
			name:    "no email",
			google:  &fakeGoogle{configured: true, info: &provider.UserInfo{VerifiedEmail: true}},
			code:    "code",
			state:   "s1",
			wantErr: appErrors.ErrUnauthorized,
			message: "Google account has no email address",
		},
		{
			name:    "unverified email",
			google:  &fakeGoogle{configured: true, info: &provider.UserInfo{Email: "victim@example.com", VerifiedEmail: false}},
			code:    "code",
			state:   "s1",
			wantErr: appErrors.ErrUnauthorized,
			message: "Google account email is not verified",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			svc, users, sessions := setup(t, tt.google)
			ctx := context.Background()
			require.NoError(t, sessions.SetOAuthState(ctx, "s1"))

			tokens, appErr := svc.GoogleCallback(ctx, tt.code, tt.state)

			require.NotNil(t, appErr)
			assert.Nil(t, tokens)
			assert.Equal(t, tt.wantErr, appErr.Code)
			assert.Equal(t, tt.message, appErr.Message)
			assert.Empty(t, users.saved)
		})
	}
}

func TestRefreshRotatesAndRevokes(t *testing.T) {
	svc, _, sessions := setup(t, &fakeGoogle{})
	ctx := context.Background()

	refresh, err := utils.GenerateToken(7, "bo@example.com", constants.ScopeTokenRefresh)
	require.NoError(t, err)

	tokens, appErr := svc.RefreshToken(ctx, refresh)
	require.Nil(t, appErr)
	assert.NotEmpty(t, tokens.AccessToken)
	assert.NotEqual(t, refresh, tokens.RefreshToken)

	revoked, err := sessions.IsTokenBlacklisted(ctx, refresh)
	require.NoError(t, err)
	assert.True(t, revoked)

	_, appErr = svc.RefreshToken(ctx, refresh)
	require.NotNil(t, appErr)
	assert.Equal(t, appErrors.ErrUnauthorized, appErr.Code)
}

func TestRefreshRejectsAccessToken(t *testing.T) {
	svc, _, _ := setup(t, &fakeGoogle{})

	access, err := utils.GenerateToken(7, "bo@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)

	_, appErr := svc.RefreshToken(context.Background(), access)
	require.NotNil(t, appErr)
	assert.Equal(t, "Invalid refresh token", appErr.Message)
}

func TestLogoutBlacklistsToken(t *testing.T) {
	svc, _, sessions := setup(t, &fakeGoogle{})
	ctx := context.Background()

	access, err := utils.GenerateToken(7, "bo@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)
	claims, err := utils.ValidateAndParseToken(access)
	require.NoError(t, err)

	require.Nil(t, svc.Logout(ctx, claims, access))

	revoked, err := sessions.IsTokenBlacklisted(ctx, access)
	require.NoError(t, err)
	assert.True(t, revoked)
}
