package entity

import "time"

const (
	StatusPending  = "pending"
	StatusAccepted = "accepted"
)

// Friend is a directed request edge: UserID asked FriendID.
type Friend struct {
	ID        int64     `db:"id"`
	UserID    int64     `db:"user_id"`
	FriendID  int64     `db:"friend_id"`
	Status    string    `db:"status"`
	CreatedAt time.Time `db:"created_at"`
	UpdatedAt time.Time `db:"updated_at"`
}

// FriendWithUser is a friend edge joined with the user on the other side.
type FriendWithUser struct {
	ID              int64   `db:"id"`
	UserID          int64   `db:"user_id"`
	FriendID        int64   `db:"friend_id"`
	Status          string  `db:"status"`
	OtherID         int64   `db:"other_id"`
	OtherEmail      string  `db:"other_email"`
	OtherUsername   *string `db:"other_username"`
	OtherFirstName  *string `db:"other_first_name"`
	OtherLastName   *string `db:"other_last_name"`
	OtherProfilePic *string `db:"other_profile_pic"`
}
