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
	"weav-api/core/errors"
	"weav-api/core/middleware"
	"weav-api/core/utils"
	"weav-api/core/validator"
	"weav-api/modules/event/dto"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEventService struct {
	liked   map[int64]bool
	created *dto.CreateEventRequest
}

func (f *fakeEventService) ListEvents(_ context.Context, userID int64, _ *int64) ([]dto.EventResponse, *errors.AppError) {
	return []dto.EventResponse{{ID: "7", Name: "Picnic", Tags: []string{}, Participants: []dto.ParticipantResponse{}}}, nil
}

func (f *fakeEventService) GetEvent(_ context.Context, _, eventID int64) (*dto.EventResponse, *errors.AppError) {
	if eventID != 7 {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return &dto.EventResponse{ID: "7", Name: "Picnic"}, nil
}

func (f *fakeEventService) ToggleLike(_ context.Context, _, eventID int64) (bool, *errors.AppError) {
	if eventID != 7 {
		return false, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	f.liked[eventID] = !f.liked[eventID]
	return f.liked[eventID], nil
}

func (f *fakeEventService) CreateEvent(_ context.Context, _ int64, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	f.created = req
	return &dto.EventResponse{ID: "100", Name: req.Title}, nil
}

type noBlacklist struct{}

func (noBlacklist) IsTokenBlacklisted(context.Context, string) (bool, error) { return false, nil }

func setup(t *testing.T) (*echo.Echo, *fakeEventService, string) {
	t.Helper()
	config.Set(&config.Config{JWT: config.JWTConfig{
		Secret:     "event-secret",
		Issuer:     "weav",
		AccessTTL:  time.Minute,
		RefreshTTL: time.Hour,
	}})
	t.Cleanup(func() { config.Set(nil) })

	token, err := utils.GenerateToken(1, "ana@example.com", constants.ScopeTokenAccess)
	require.NoError(t, err)

	e := echo.New()
	e.JSONSerializer = coreController.StrictJSONSerializer{}
	e.Validator = validator.New()
	e.HTTPErrorHandler = coreController.HTTPErrorHandler

	svc := &fakeEventService{liked: map[int64]bool{}}
	ctrl := NewEventController(svc)
	g := e.Group("/api/events", middleware.NewMiddleware(noBlacklist{}).AuthMiddleware())
	g.GET("", ctrl.ListEvents)
	g.POST("", ctrl.CreateEvent)
	g.GET("/:id", ctrl.GetEvent)
	g.PATCH("/:id", ctrl.PatchEvent)

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

func TestToggleLikeRoundTrip(t *testing.T) {
	e, _, token := setup(t)

	rec := do(e, http.MethodPatch, "/api/events/7", token, `{"action":"toggleLike"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"isLiked":true}`, rec.Body.String())

	rec = do(e, http.MethodPatch, "/api/events/7", token, `{"action":"toggleLike"}`)
	require.Equal(t, http.StatusOK, rec.Code)
	assert.JSONEq(t, `{"success":true,"isLiked":false}`, rec.Body.String())
}

func TestPatchEventErrors(t *testing.T) {
	tests := []struct {
		name   string
		target string
		body   string
		status int
		error  string
	}{
		{name: "unknown action", target: "/api/events/7", body: `{"action":"archive"}`, status: 400, error: "Invalid action"},
		{name: "missing action", target: "/api/events/7", body: `{}`, status: 400, error: "action is required"},
		{name: "bad id", target: "/api/events/x", body: `{"action":"toggleLike"}`, status: 400, error: "Invalid event id"},
		{name: "missing event", target: "/api/events/8", body: `{"action":"toggleLike"}`, status: 404, error: "Event not found"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			e, _, token := setup(t)

			rec := do(e, http.MethodPatch, tt.target, token, tt.body)

			assert.Equal(t, tt.status, rec.Code)
			assert.JSONEq(t, `{"error":"`+tt.error+`"}`, rec.Body.String())
		})
	}
}

func TestListEventsRequiresAuth(t *testing.T) {
	e, _, token := setup(t)

	rec := do(e, http.MethodGet, "/api/events", "", "")
	assert.Equal(t, http.StatusUnauthorized, rec.Code)

	rec = do(e, http.MethodGet, "/api/events", token, "")
	require.Equal(t, http.StatusOK, rec.Code)
	assert.True(t, strings.HasPrefix(strings.TrimSpace(rec.Body.String()), "["))
}

func TestCreateEventReturns201(t *testing.T) {
	e, svc, token := setup(t)

	rec := do(e, http.MethodPost, "/api/events", token,
		`{"title":"Dinner","startTime":"2026-11-01T18:00:00Z","endTime":"2026-11-01T20:00:00Z","participantEmails":["bo@x.com"]}`)

	require.Equal(t, http.StatusCreated, rec.Code)
	assert.Contains(t, rec.Body.String(), `"name":"Dinner"`)
	require.NotNil(t, svc.created)
	assert.Equal(t, []string{"bo@x.com"}, svc.created.ParticipantEmails)

	rec = do(e, http.MethodPost, "/api/events", token, `{"startTime":"2026-11-01T18:00:00Z","endTime":"2026-11-01T20:00:00Z"}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)

	rec = do(e, http.MethodPost, "/api/events", token, `{"title":"x","startTime":"a","endTime":"b","participantEmails":["not-an-email"]}`)
	assert.Equal(t, http.StatusBadRequest, rec.Code)
}
