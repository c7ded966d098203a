package controller

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"weav-api/core/config"
	"weav-api/core/constants"
	coreController "weav-api/core/controller"
	coreDto "weav-api/core/dto"
	"weav-api/core/errors"
	"weav-api/core/middleware"
	"weav-api/core/params"
	"weav-api/core/utils"
	"weav-api/core/validator"
	"weav-api/modules/notification/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeNotifications struct {
	userID  int64
	page    params.QueryParams
	readIDs []int64
	failAll bool
}

func (f *fakeNotifications) Create(context.Context, *dto.CreateNotificationRequest) error { return nil }

func (f *fakeNotifications) GetMyNotifications(_ context.Context, userID int64, p params.QueryParams) (*dto.PaginatedNotificationResponse, *errors.AppError) {
	f.userID, f.page = userID, p
	items := []dto.NotificationResponse{{
		ID:        3,
		Title:     "New friend request",
		Message:   "bo@example.com wants to be friends",
		Type:      "friend_request",
		Data:      map[string]any{},
		CreatedAt: time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC),
	}}
	return coreDto.NewPagination(items, 1, p.PageNumber, p.PageSize), nil
}

func (f *fakeNotifications) MarkAsRead(_ context.Context, userID int64, ids []int64) *errors.AppError {
	f.userID, f.readIDs = userID, ids
	return nil
}

func (f *fakeNotifications) MarkAllAsRead(context.Context, int64) *errors.AppError {
	if f.failAll {
		return errors.NewAppError(errors.ErrInternalServer, "Failed to mark all as read", nil)
	}
	return nil
}

func (f *fakeNotifications) CountUnread(context.Context, int64) (int, *errors.AppError) {
	return 4, nil
}

type noBlacklist struct{}

func (noBlacklist) IsTokenBlacklisted(context.Context, string) (bool, error) { return false, nil }

func setup(t *testing.T) (*echo.Echo, *fakeNotifications, string) {
	t.Helper()
	config.Set(&config.Config{JWT: config.JWTConfig{
		Secret:     "notification-secret",
		Issuer:     "weav",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}})
	t.Cleanup(func() { config.Set(nil) })

	token, err := utils.GenerateToken(9, "ana@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)

	e := echo.New()
	e.JSONSerializer = coreController.StrictJSONSerializer{}
	e.Validator = validator.New()
	e.HTTPErrorHandler = coreController.HTTPErrorHandler

	svc := &fakeNotifications{}
	ctrl := NewNotificationController(svc)
	g := e.Group("/api/notifications", middleware.NewMiddleware(noBlacklist{}).AuthMiddleware())
	g.GET("", ctrl.GetMyNotifications)
	g.GET("/unread-count", ctrl.CountUnread)
	g.PUT("/mark-read", ctrl.MarkAsRead)
	g.PUT("/mark-all-read", ctrl.MarkAllAsRead)

	return e, svc, token
}

func do(e *echo.Echo, method, target, token, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(method, target, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	if token != "" {
		req.Header.Set(echo.HeaderAuthorization, "Bearer "+token)
	}
	rec := httptest.NewRecorder()
	e.ServeHTTP(rec, req)
	return rec
}

func TestGetMyNotificationsPaginates(t *testing.T) {
	e, svc, token := setup(t)

	rec := do(e, http.MethodGet, "/api/notifications?page=2&limit=500", token, "")

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, int64(9), svc.userID)
	assert.Equal(t, params.QueryParams{PageNumber: 2, PageSize: constants.MaxPageSize}, svc.page)
	assert.JSONEq(t, `{
		"items": [{
			"id": 3,
			"title": "New friend request",
			"message": "bo@example.com wants to be friends",
			"type": "friend_request",
			"data": {},
			"is_read": false,
			"created_at": "2026-01-02T03:04:05Z"
		}],
		"totalItems": 1,
		"pageNumber": 2,
		"pageSize": 100,
		"totalPages": 1
	}`, rec.Body.String())
}

func TestMarkAsRead(t *testing.T) {
	e, svc, token := setup(t)

	rec := do(e, http.MethodPut, "/api/notifications/mark-read", token, `{"ids":[1,2]}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true}`, rec.Body.String())
	assert.Equal(t, []int64{1, 2}, svc.readIDs)

	rec = do(e, http.MethodPut, "/api/notifications/mark-read", token, `{"ids":[]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}

func TestMarkAllAsReadFailure(t *testing.T) {
	e, svc, token := setup(t)
	svc.failAll = true

	rec := do(e, http.MethodPut, "/api/notifications/mark-all-read", token, "")

	assert.Equal(t, http.StatusInternalServerError, rec.Code)
	assert.JSONEq(t, `{"error":"Failed to mark all as read"}`, rec.Body.String())
}

func TestCountUnread(t *testing.T) {
	e, _, token := setup(t)

	rec := do(e, http.MethodGet, "/api/notifications/unread-count", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"count":4}`, rec.Body.String())

	rec = do(e, http.MethodGet, "/api/notifications/unread-count", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)
}
