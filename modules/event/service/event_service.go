package service

import (
	"context"
	"strings"
	"time"

	"weav-api/core/constants"
	"weav-api/core/errors"
	"weav-api/core/logger"
	"weav-api/core/queue"
	"weav-api/modules/event/dto"
	"weav-api/modules/event/entity"
	"weav-api/modules/event/mapper"
	"weav-api/modules/event/repository"
	"weav-api/modules/notification/task"
)

type EventServiceInterface interface {
	ListEvents(ctx context.Context, userID int64, eventID *int64) ([]dto.EventResponse, *errors.AppError)
	GetEvent(ctx context.Context, userID, eventID int64) (*dto.EventResponse, *errors.AppError)
	ToggleLike(ctx context.Context, userID, eventID int64) (bool, *errors.AppError)
	CreateEvent(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError)
}

type EventService struct {
	repo  repository.EventRepositoryInterface
	queue queue.Enqueuer
}

func NewEventService(repo repository.EventRepositoryInterface, q queue.Enqueuer) EventServiceInterface {
	return &EventService{repo: repo, queue: q}
}

// ListEvents returns the events userID created or participates in, never a partial list.
func (s *EventService) ListEvents(ctx context.Context, userID int64, eventID *int64) ([]dto.EventResponse, *errors.AppError) {
	views, err := s.repo.ListVisible(ctx, userID, eventID)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch events", err)
	}
	if len(views) == 0 {
		return []dto.EventResponse{}, nil
	}

	ids := make([]int64, 0, len(views))
	for _, v := range views {
		ids = append(ids, v.ID)
	}
	participants, err := s.repo.ListParticipants(ctx, ids)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to fetch events", err)
	}

	return mapper.ToEventResponses(views, participants), nil
}

func (s *EventService) GetEvent(ctx context.Context, userID, eventID int64) (*dto.EventResponse, *errors.AppError) {
	events, appErr := s.ListEvents(ctx, userID, &eventID)
	if appErr != nil {
		return nil, appErr
	}
	if len(events) == 0 {
		return nil, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}
	return &events[0], nil
}

// ToggleLike flips the like for (userID, eventID) and returns the new state.
// Check-then-act without a transaction; concurrent toggles may race.
func (s *EventService) ToggleLike(ctx context.Context, userID, eventID int64) (bool, *errors.AppError) {
	exists, err := s.repo.Exists(ctx, eventID)
	if err != nil {
		return false, errors.NewAppError(errors.ErrInternalServer, "Failed to toggle event like", err)
	}
	if !exists {
		return false, errors.NewAppError(errors.ErrNotFound, "Event not found", nil)
	}

	liked, err := s.repo.HasLike(ctx, userID, eventID)
	if err != nil {
		return false, errors.NewAppError(errors.ErrInternalServer, "Failed to toggle event like", err)
	}

	if liked {
		if err := s.repo.RemoveLike(ctx, userID, eventID); err != nil {
			return false, errors.NewAppError(errors.ErrInternalServer, "Failed to toggle event like", err)
		}
		return false, nil
	}

	if err := s.repo.AddLike(ctx, userID, eventID); err != nil {
		return false, errors.NewAppError(errors.ErrInternalServer, "Failed to toggle event like", err)
	}
	return true, nil
}

func (s *EventService) CreateEvent(ctx context.Context, creatorID int64, req *dto.CreateEventRequest) (*dto.EventResponse, *errors.AppError) {
	title := strings.TrimSpace(req.Title)
	if title == "" {
		return nil, errors.NewAppError(errors.ErrMissingField, "title is required", nil)
	}

	start, err := time.Parse(time.RFC3339, req.StartTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "startTime must be an RFC3339 timestamp", err)
	}
	end, err := time.Parse(time.RFC3339, req.EndTime)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "endTime must be an RFC3339 timestamp", err)
	}
	if !end.After(start) {
		return nil, errors.NewAppError(errors.ErrInvalidInput, "endTime must be after startTime", nil)
	}

	created, err := s.repo.Create(ctx, &entity.Event{
		Title:       title,
		Description: req.Description,
		StartTime:   &start,
		EndTime:     &end,
		CreatorID:   creatorID,
		Location:    req.Location,
		Price:       req.Price,
		Category:    req.Category,
		ImageURL:    req.ImageURL,
		Tags:        req.Tags,
	})
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to create event", err)
	}

	invited, appErr := s.addParticipants(ctx, created.ID, creatorID, req.ParticipantEmails)
	if appErr != nil {
		return nil, appErr
	}

	logger.Info("EventService:CreateEvent:Created", "event_id", created.ID, "creator_id", creatorID, "participants", len(invited))
	for _, userID := range invited {
		task.EnqueueDeliver(ctx, s.queue, task.DeliverPayload{
			UserID:  userID,
			Title:   "Event invitation",
			Message: "You have been invited to " + title,
			Type:    constants.NotificationTypeEventInvite,
			Data:    map[string]any{"event_id": created.ID, "from_user_id": creatorID},
		})
	}

	return s.GetEvent(ctx, creatorID, created.ID)
}

// addParticipants resolves emails to users and skips unknown ones and the creator.
func (s *EventService) addParticipants(ctx context.Context, eventID, creatorID int64, emails []string) ([]int64, *errors.AppError) {
	if len(emails) == 0 {
		return nil, nil
	}

	seen := make(map[string]bool, len(emails))
	normalized := make([]string, 0, len(emails))
	for _, e := range emails {
		e = strings.ToLower(strings.TrimSpace(e))
		if e == "" || seen[e] {
			continue
		}
		seen[e] = true
		normalized = append(normalized, e)
	}

	users, err := s.repo.FindUsersByEmails(ctx, normalized)
	if err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add event participants", err)
	}

	found := make(map[string]bool, len(users))
	ids := make([]int64, 0, len(users))
	for _, u := range users {
		found[strings.ToLower(u.Email)] = true
		if u.ID != creatorID {
			ids = append(ids, u.ID)
		}
	}
	for _, e := range normalized {
		if !found[e] {
			logger.Warn("EventService:CreateEvent:UnknownParticipant", "event_id", eventID, "email", e)
		}
	}

	if err := s.repo.AddParticipants(ctx, eventID, ids); err != nil {
		return nil, errors.NewAppError(errors.ErrInternalServer, "Failed to add event participants", err)
	}
	return ids, nil
}
