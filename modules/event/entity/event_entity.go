package entity

import (
	"time"

	"weav-api/core/entity"

	"github.com/lib/pq"
)

type Event struct {
	Title       string         `db:"title"`
	Description *string        `db:"description"`
	StartTime   *time.Time     `db:"start_time"`
	EndTime     *time.Time     `db:"end_time"`
	CreatorID   int64          `db:"creator_id"`
	Location    *string        `db:"location"`
	Price       *string        `db:"price"`
	Category    *string        `db:"category"`
	ImageURL    *string        `db:"image_url"`
	Tags        pq.StringArray `db:"tags"`
	entity.BaseEntity
}

// EventView is an event joined with its creator and the caller's like.
type EventView struct {
	Event
	CreatorEmail     string  `db:"creator_email"`
	CreatorUsername  *string `db:"creator_username"`
	CreatorFirstName *string `db:"creator_first_name"`
	CreatorLastName  *string `db:"creator_last_name"`
	IsLiked          bool    `db:"is_liked"`
}

type Participant struct {
	EventID   int64   `db:"event_id"`
	UserID    int64   `db:"user_id"`
	Email     string  `db:"email"`
	Username  *string `db:"username"`
	FirstName *string `db:"first_name"`
	LastName  *string `db:"last_name"`
}

type UserRef struct {
	ID    int64  `db:"id"`
	Email string `db:"email"`
}
