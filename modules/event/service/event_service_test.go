package service

import (
	"context"
	"errors"
	"strings"
	"testing"

	appErrors "weav-api/core/errors"
	"weav-api/modules/event/dto"
	"weav-api/modules/event/entity"
	"weav-api/modules/notification/task"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	events       map[int64]*entity.Event
	participants map[int64][]int64
	likes        map[[2]int64]bool
	users        map[int64]string
	listErr      error
	likeErr      error
	nextID       int64
}

func newRepo() *fakeRepo {
	return &fakeRepo{
		events:       map[int64]*entity.Event{},
		participants: map[int64][]int64{},
		likes:        map[[2]int64]bool{},
		users:        map[int64]string{1: "ana@x.com", 2: "bo@x.com", 3: "cy@x.com"},
		nextID:       100,
	}
}

func (r *fakeRepo) addEvent(id, creator int64, title string, participants ...int64) {
	e := &entity.Event{Title: title, CreatorID: creator}
	e.ID = id
	r.events[id] = e
	r.participants[id] = participants
}

func (r *fakeRepo) visible(userID, eventID int64) bool {
	e := r.events[eventID]
	if e.CreatorID == userID {
		return true
	}
	for _, p := range r.participants[eventID] {
		if p == userID {
			return true
		}
	}
	return false
}

func (r *fakeRepo) ListVisible(_ context.Context, userID int64, eventID *int64) ([]entity.EventView, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	views := []entity.EventView{}
	for id := int64(0); id <= r.nextID; id++ {
		e, ok := r.events[id]
		if !ok || !r.visible(userID, id) || (eventID != nil && *eventID != id) {
			continue
		}
		views = append(views, entity.EventView{
			Event:        *e,
			CreatorEmail: r.users[e.CreatorID],
			IsLiked:      r.likes[[2]int64{userID, id}],
		})
	}
	return views, nil
}

func (r *fakeRepo) ListParticipants(_ context.Context, eventIDs []int64) ([]entity.Participant, error) {
	var out []entity.Participant
	for _, id := range eventIDs {
		for _, uid := range r.participants[id] {
			out = append(out, entity.Participant{EventID: id, UserID: uid, Email: r.users[uid]})
		}
	}
	return out, nil
}

func (r *fakeRepo) Exists(_ context.Context, eventID int64) (bool, error) {
	_, ok := r.events[eventID]
	return ok, nil
}

func (r *fakeRepo) HasLike(_ context.Context, userID, eventID int64) (bool, error) {
	return r.likes[[2]int64{userID, eventID}], r.likeErr
}

func (r *fakeRepo) AddLike(_ context.Context, userID, eventID int64) error {
	r.likes[[2]int64{userID, eventID}] = true
	return nil
}

func (r *fakeRepo) RemoveLike(_ context.Context, userID, eventID int64) error {
	delete(r.likes, [2]int64{userID, eventID})
	return nil
}

func (r *fakeRepo) Create(_ context.Context, event *entity.Event) (*entity.Event, error) {
	r.nextID++
	created := *event
	created.ID = r.nextID
	r.events[created.ID] = &created
	return &created, nil
}

func (r *fakeRepo) FindUsersByEmails(_ context.Context, emails []string) ([]entity.UserRef, error) {
	var out []entity.UserRef
	for id, email := range r.users {
		for _, e := range emails {
			if strings.EqualFold(e, email) {
				out = append(out, entity.UserRef{ID: id, Email: email})
			}
		}
	}
	return out, nil
}

func (r *fakeRepo) AddParticipants(_ context.Context, eventID int64, userIDs []int64) error {
	r.participants[eventID] = append(r.participants[eventID], userIDs...)
	return nil
}

type recordingQueue struct {
	payloads []task.DeliverPayload
}

func (q *recordingQueue) Enqueue(_ context.Context, _ string, payload any) error {
	q.payloads = append(q.payloads, payload.(task.DeliverPayload))
	return nil
}

func TestListEventsOnlyVisible(t *testing.T) {
	repo := newRepo()
	repo.addEvent(1, 1, "Mine")
	repo.addEvent(2, 2, "Invited", 1)
	repo.addEvent(3, 2, "Hidden", 3)
	svc := NewEventService(repo, nil)

	events, err := svc.ListEvents(context.Background(), 1, nil)
	require.Nil(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, "Mine", events[0].Name)
	assert.Equal(t, "Invited", events[1].Name)
	assert.Equal(t, 1, events[1].AttendeeCount)
	assert.Equal(t, "ana@x.com", events[1].Participants[0].Email)
}

func TestListEventsEmptyIsNotError(t *testing.T) {
	events, err := NewEventService(newRepo(), nil).ListEvents(context.Background(), 9, nil)
	require.Nil(t, err)
	assert.NotNil(t, events)
	assert.Empty(t, events)
}

func TestListEventsFailureIsGeneric(t *testing.T) {
	repo := newRepo()
	repo.listErr = errors.New("connection reset")

	events, err := NewEventService(repo, nil).ListEvents(context.Background(), 1, nil)
	assert.Nil(t, events)
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInternalServer, err.Code)
	assert.Equal(t, "Failed to fetch events", err.Message)
}

func TestGetEventNotVisible(t *testing.T) {
	repo := newRepo()
	repo.addEvent(3, 2, "Hidden")

	_, err := NewEventService(repo, nil).GetEvent(context.Background(), 1, 3)
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNotFound, err.Code)
	assert.Equal(t, "Event not found", err.Message)
}

func TestToggleLikeTwiceRestoresState(t *testing.T) {
	repo := newRepo()
	repo.addEvent(7, 1, "Picnic")
	svc := NewEventService(repo, nil)
	ctx := context.Background()

	liked, err := svc.ToggleLike(ctx, 1, 7)
	require.Nil(t, err)
	assert.True(t, liked)

	ev, err := svc.GetEvent(ctx, 1, 7)
	require.Nil(t, err)
	assert.True(t, ev.IsLiked)

	liked, err = svc.ToggleLike(ctx, 1, 7)
	require.Nil(t, err)
	assert.False(t, liked)
	assert.Empty(t, repo.likes)
}

func TestToggleLikeErrors(t *testing.T) {
	repo := newRepo()
	svc := NewEventService(repo, nil)

	_, err := svc.ToggleLike(context.Background(), 1, 404)
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrNotFound, err.Code)

	repo.addEvent(7, 1, "Picnic")
	repo.likeErr = errors.New("db down")
	_, err = svc.ToggleLike(context.Background(), 1, 7)
	require.NotNil(t, err)
	assert.Equal(t, appErrors.ErrInternalServer, err.Code)
	assert.Equal(t, "Failed to toggle event like", err.Message)
}

func TestCreateEvent(t *testing.T) {
	repo := newRepo()
	q := &recordingQueue{}
	svc := NewEventService(repo, q)

	ev, err := svc.CreateEvent(context.Background(), 1, &dto.CreateEventRequest{
		Title:             "  Dinner ",
		StartTime:         "2026-11-01T18:00:00Z",
		EndTime:           "2026-11-01T20:00:00Z",
		Tags:              []string{"food"},
		ParticipantEmails: []string{"BO@x.com", "bo@x.com", "nobody@x.com", "ana@x.com"},
	})
	require.Nil(t, err)
	assert.Equal(t, "Dinner", ev.Name)
	assert.Equal(t, "2026-11-01T18:00:00Z", ev.StartTime)
	assert.Equal(t, []string{"food"}, ev.Tags)
	assert.Equal(t, 1, ev.AttendeeCount)
	assert.Equal(t, "Free", ev.Price)
	assert.True(t, ev.IsFree)

	require.Len(t, q.payloads, 1)
	assert.Equal(t, int64(2), q.payloads[0].UserID)
	assert.Equal(t, "event_invitation", q.payloads[0].Type)
}

func TestCreateEventValidation(t *testing.T) {
	tests := []struct {
		name string
		req  dto.CreateEventRequest
		msg  string
	}{
		{name: "blank title", req: dto.CreateEventRequest{Title: " ", StartTime: "2026-11-01T18:00:00Z", EndTime: "2026-11-01T19:00:00Z"}, msg: "title is required"},
		{name: "bad start", req: dto.CreateEventRequest{Title: "x", StartTime: "tomorrow", EndTime: "2026-11-01T19:00:00Z"}, msg: "startTime must be an RFC3339 timestamp"},
		{name: "bad end", req: dto.CreateEventRequest{Title: "x", StartTime: "2026-11-01T18:00:00Z", EndTime: "2026-11-01"}, msg: "endTime must be an RFC3339 timestamp"},
		{name: "end before start", req: dto.CreateEventRequest{Title: "x", StartTime: "2026-11-01T18:00:00Z", EndTime: "2026-11-01T17:00:00Z"}, msg: "endTime must be after startTime"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			repo := newRepo()
			_, err := NewEventService(repo, nil).CreateEvent(context.Background(), 1, &tt.req)
			require.NotNil(t, err)
			assert.Equal(t, tt.msg, err.Message)
			assert.Empty(t, repo.events)
		})
	}
}
