package repository

import (
	"context"
	"database/sql"
	"errors"

	"weav-api/core/database"
	"weav-api/core/logger"
	"weav-api/modules/event/entity"

	"github.com/lib/pq"
)

type EventRepository struct {
	DB database.IDatabase
}

func NewEventRepository(db database.IDatabase) *EventRepository {
	return &EventRepository{DB: db}
}

type EventRepositoryInterface interface {
	ListVisible(ctx context.Context, userID int64, eventID *int64) ([]entity.EventView, error)
	ListParticipants(ctx context.Context, eventIDs []int64) ([]entity.Participant, error)
	Exists(ctx context.Context, eventID int64) (bool, error)
	HasLike(ctx context.Context, userID, eventID int64) (bool, error)
	AddLike(ctx context.Context, userID, eventID int64) error
	RemoveLike(ctx context.Context, userID, eventID int64) error
	Create(ctx context.Context, event *entity.Event) (*entity.Event, error)
	FindUsersByEmails(ctx context.Context, emails []string) ([]entity.UserRef, error)
	AddParticipants(ctx context.Context, eventID int64, userIDs []int64) error
}

const eventColumns = `
	e.id, e.title, e.description, e.start_time, e.end_time, e.creator_id,
	e.location, e.price, e.category, e.image_url, e.tags, e.created_at, e.updated_at`

// ListVisible returns events the user created or participates in.
// A nil eventID lists all of them.
func (r *EventRepository) ListVisible(ctx context.Context, userID int64, eventID *int64) ([]entity.EventView, error) {
	query := `
		SELECT` + eventColumns + `,
		       u.email AS creator_email, u.username AS creator_username,
		       u.first_name AS creator_first_name, u.last_name AS creator_last_name,
		       EXISTS (
		           SELECT 1 FROM user_event_likes l WHERE l.event_id = e.id AND l.user_id = $1
		       ) AS is_liked
		FROM events e
		JOIN users u ON u.id = e.creator_id
		WHERE (e.creator_id = $1 OR EXISTS (
		           SELECT 1 FROM event_participants p WHERE p.event_id = e.id AND p.user_id = $1
		       ))
		  AND ($2::BIGINT IS NULL OR e.id = $2)
		ORDER BY e.start_time ASC NULLS LAST, e.id ASC
	`

	views := []entity.EventView{}
	if err := r.DB.SelectContext(ctx, &views, query, userID, eventID); err != nil {
		logger.Error("EventRepository:ListVisible", "user_id", userID, err)
		return nil, err
	}
	return views, nil
}

func (r *EventRepository) ListParticipants(ctx context.Context, eventIDs []int64) ([]entity.Participant, error) {
	if len(eventIDs) == 0 {
		return []entity.Participant{}, nil
	}

	query := `
		SELECT p.event_id, p.user_id, u.email, u.username, u.first_name, u.last_name
		FROM event_participants p
		JOIN users u ON u.id = p.user_id
		WHERE p.event_id = ANY($1)
		ORDER BY p.event_id, p.created_at
	`

	var participants []entity.Participant
	if err := r.DB.SelectContext(ctx, &participants, query, pq.Array(eventIDs)); err != nil {
		logger.Error("EventRepository:ListParticipants", err)
		return nil, err
	}
	return participants, nil
}

func (r *EventRepository) Exists(ctx context.Context, eventID int64) (bool, error) {
	var exists bool
	err := r.DB.GetContext(ctx, &exists, `SELECT EXISTS (SELECT 1 FROM events WHERE id = $1)`, eventID)
	if err != nil {
		logger.Error("EventRepository:Exists", "event_id", eventID, err)
		return false, err
	}
	return exists, nil
}

func (r *EventRepository) HasLike(ctx context.Context, userID, eventID int64) (bool, error) {
	var one int
	err := r.DB.GetContext(ctx, &one, `SELECT 1 FROM user_event_likes WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return false, nil
		}
		logger.Error("EventRepository:HasLike", err)
		return false, err
	}
	return true, nil
}

func (r *EventRepository) AddLike(ctx context.Context, userID, eventID int64) error {
	err := r.DB.ExecContext(ctx, `INSERT INTO user_event_likes (user_id, event_id) VALUES ($1, $2)`, userID, eventID)
	if err != nil {
		logger.Error("EventRepository:AddLike", "user_id", userID, "event_id", eventID, err)
		return database.MapError(err)
	}
	return nil
}

func (r *EventRepository) RemoveLike(ctx context.Context, userID, eventID int64) error {
	err := r.DB.ExecContext(ctx, `DELETE FROM user_event_likes WHERE user_id = $1 AND event_id = $2`, userID, eventID)
	if err != nil {
		logger.Error("EventRepository:RemoveLike", "user_id", userID, "event_id", eventID, err)
		return err
	}
	return nil
}

func (r *EventRepository) Create(ctx context.Context, event *entity.Event) (*entity.Event, error) {
	query := `
		INSERT INTO events (title, description, start_time, end_time, creator_id, location, price, category, image_url, tags)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id, title, description, start_time, end_time, creator_id,
		          location, price, category, image_url, tags, created_at, updated_at
	`

	tags := event.Tags
	if tags == nil {
		tags = pq.StringArray{}
	}

	var created entity.Event
	err := r.DB.GetContext(ctx, &created, query,
		event.Title, event.Description, event.StartTime, event.EndTime, event.CreatorID,
		event.Location, event.Price, event.Category, event.ImageURL, tags)
	if err != nil {
		logger.Error("EventRepository:Create", "creator_id", event.CreatorID, err)
		return nil, database.MapError(err)
	}
	return &created, nil
}

func (r *EventRepository) FindUsersByEmails(ctx context.Context, emails []string) ([]entity.UserRef, error) {
	if len(emails) == 0 {
		return []entity.UserRef{}, nil
	}

	var users []entity.UserRef
	err := r.DB.SelectContext(ctx, &users, `SELECT id, email FROM users WHERE lower(email) = ANY($1)`, pq.Array(emails))
	if err != nil {
		logger.Error("EventRepository:FindUsersByEmails", err)
		return nil, err
	}
	return users, nil
}

func (r *EventRepository) AddParticipants(ctx context.Context, eventID int64, userIDs []int64) error {
	if len(userIDs) == 0 {
		return nil
	}

	query := `
		INSERT INTO event_participants (event_id, user_id)
		SELECT $1, unnest($2::BIGINT[])
		ON CONFLICT DO NOTHING
	`
	if err := r.DB.ExecContext(ctx, query, eventID, pq.Array(userIDs)); err != nil {
		logger.Error("EventRepository:AddParticipants", "event_id", eventID, err)
		return database.MapError(err)
	}
	return nil
}
