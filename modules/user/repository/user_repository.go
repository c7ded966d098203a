package repository

import (
	"context"
	"database/sql"
	"errors"

	"weav-api/core/database"
	"weav-api/core/logger"
	"weav-api/modules/user/entity"
)

const userColumns = `id, email, username, first_name, last_name, profile_pic,
		is_vegetarian, is_spicy, is_family, gcal_permission, created_at, updated_at`

type UserRepository struct {
	DB database.IDatabase
}

func NewUserRepository(db database.IDatabase) *UserRepository {
	return &UserRepository{DB: db}
}

type UserRepositoryInterface interface {
	GetByID(ctx context.Context, id int64) (*entity.User, error)
	GetByEmail(ctx context.Context, email string) (*entity.User, error)
	Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error)
	UpsertByEmail(ctx context.Context, user *entity.User) (*entity.User, error)
	UpdateProfilePic(ctx context.Context, id int64, url string) error
}

func (r *UserRepository) GetByID(ctx context.Context, id int64) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("UserRepository:GetByID", "id", id, err)
		return nil, err
	}
	return &user, nil
}

func (r *UserRepository) GetByEmail(ctx context.Context, email string) (*entity.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, email)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("UserRepository:GetByEmail", err)
		return nil, err
	}
	return &user, nil
}

// Update applies a partial patch. Returns nil, nil when the user does not exist.
func (r *UserRepository) Update(ctx context.Context, id int64, patch entity.UserPatch) (*entity.User, error) {
	query := `
		UPDATE users SET
			first_name      = COALESCE($2, first_name),
			last_name       = COALESCE($3, last_name),
			username        = COALESCE($4, username),
			email           = COALESCE($5, email),
			is_vegetarian   = COALESCE($6, is_vegetarian),
			is_spicy        = COALESCE($7, is_spicy),
			is_family       = COALESCE($8, is_family),
			gcal_permission = COALESCE($9, gcal_permission),
			updated_at      = NOW()
		WHERE id = $1
		RETURNING ` + userColumns

	var user entity.User
	err := r.DB.GetContext(ctx, &user, query, id,
		patch.FirstName, patch.LastName, patch.Username, patch.Email,
		patch.IsVegetarian, patch.IsSpicy, patch.IsFamily, patch.GcalPermission)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		logger.Error("UserRepository:Update", "id", id, err)
		return nil, database.MapError(err)
	}
	return &user, nil
}

// UpsertByEmail creates the user or fills in the fields that are still empty locally.
func (r *UserRepository) UpsertByEmail(ctx context.Context, user *entity.User) (*entity.User, error) {
	query := `
		INSERT INTO users (email, username, first_name, last_name, profile_pic, gcal_permission)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (email) DO UPDATE SET
			username    = COALESCE(users.username, EXCLUDED.username),
			first_name  = COALESCE(users.first_name, EXCLUDED.first_name),
			last_name   = COALESCE(users.last_name, EXCLUDED.last_name),
			profile_pic = COALESCE(users.profile_pic, EXCLUDED.profile_pic),
			gcal_permission = users.gcal_permission OR EXCLUDED.gcal_permission,
			updated_at  = NOW()
		RETURNING ` + userColumns

	var saved entity.User
	err := r.DB.GetContext(ctx, &saved, query,
		user.Email, user.Username, user.FirstName, user.LastName, user.ProfilePic, user.GcalPermission)
	if err != nil {
		logger.Error("UserRepository:UpsertByEmail", err)
		return nil, database.MapError(err)
	}
	return &saved, nil
}

func (r *UserRepository) UpdateProfilePic(ctx context.Context, id int64, url string) error {
	query := `UPDATE users SET profile_pic = $2, updated_at = NOW() WHERE id = $1`
	if err := r.DB.ExecContext(ctx, query, id, url); err != nil {
		logger.Error("UserRepository:UpdateProfilePic", "id", id, err)
		return err
	}
	return nil
}
