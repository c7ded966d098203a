package repository

import (
	"context"
	"database/sql"
	"errors"

	"weav-api/core/database"
	"weav-api/core/logger"
	"weav-api/modules/friend/entity"
)

type FriendRepository struct {
	DB database.IDatabase
}

func NewFriendRepository(db database.IDatabase) *FriendRepository {
	return &FriendRepository{DB: db}
}

type FriendRepositoryInterface interface {
	FindUserIDByEmail(ctx context.Context, email string) (*int64, error)
	GetBetween(ctx context.Context, a, b int64) (*entity.Friend, error)
	Create(ctx context.Context, userID, friendID int64) (*entity.Friend, error)
	Accept(ctx context.Context, receiverID, requesterID int64) (bool, error)
	ListByUser(ctx context.Context, userID int64) ([]entity.FriendWithUser, error)
}

func (r *FriendRepository) FindUserIDByEmail(ctx context.Context, email string) (*int64, error) {
	var id int64
	err := r.DB.GetContext(ctx, &id, `SELECT id FROM users WHERE lower(email) = lower($1)`, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FriendRepository:FindUserIDByEmail", err)
		return nil, err
	}
	return &id, nil
}

// GetBetween returns the edge between two users in either direction.
func (r *FriendRepository) GetBetween(ctx context.Context, a, b int64) (*entity.Friend, error) {
	query := `
		SELECT id, user_id, friend_id, status, created_at, updated_at
		FROM friends
		WHERE (user_id = $1 AND friend_id = $2) OR (user_id = $2 AND friend_id = $1)
		LIMIT 1
	`

	var f entity.Friend
	err := r.DB.GetContext(ctx, &f, query, a, b)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("FriendRepository:GetBetween", err)
		return nil, err
	}
	return &f, nil
}

func (r *FriendRepository) Create(ctx context.Context, userID, friendID int64) (*entity.Friend, error) {
	query := `
		INSERT INTO friends (user_id, friend_id, status)
		VALUES ($1, $2, $3)
		RETURNING id, user_id, friend_id, status, created_at, updated_at
	`

	var f entity.Friend
	err := r.DB.GetContext(ctx, &f, query, userID, friendID, entity.StatusPending)
	if err != nil {
		logger.Error("FriendRepository:Create", "user_id", userID, "friend_id", friendID, err)
		return nil, database.MapError(err)
	}
	return &f, nil
}

// Accept flips a pending request sent by requesterID to receiverID.
// Returns false when there is no such pending request.
func (r *FriendRepository) Accept(ctx context.Context, receiverID, requesterID int64) (bool, error) {
	query := `
		UPDATE friends SET status = $3, updated_at = NOW()
		WHERE user_id = $1 AND friend_id = $2 AND status = $4
	`
	res, err := r.DB.ExecResultContext(ctx, query, requesterID, receiverID, entity.StatusAccepted, entity.StatusPending)
	if err != nil {
		logger.Error("FriendRepository:Accept", err)
		return false, err
	}
	n, err := res.RowsAffected()
	if err != nil {
		return false, err
	}
	return n > 0, nil
}

func (r *FriendRepository) ListByUser(ctx context.Context, userID int64) ([]entity.FriendWithUser, error) {
	query := `
		SELECT f.id, f.user_id, f.friend_id, f.status,
		       u.id AS other_id, u.email AS other_email, u.username AS other_username,
		       u.first_name AS other_first_name, u.last_name AS other_last_name,
		       u.profile_pic AS other_profile_pic
		FROM friends f
		JOIN users u ON u.id = CASE WHEN f.user_id = $1 THEN f.friend_id ELSE f.user_id END
		WHERE f.user_id = $1 OR f.friend_id = $1
		ORDER BY f.created_at DESC
	`

	var rows []entity.FriendWithUser
	if err := r.DB.SelectContext(ctx, &rows, query, userID); err != nil {
		logger.Error("FriendRepository:ListByUser", "user_id", userID, err)
		return nil, err
	}
	return rows, nil
}
