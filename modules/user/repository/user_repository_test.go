package repository

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"
	"time"

	"weav-api/core/database"
	"weav-api/modules/user/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/lib/pq"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var userCols = []string{"id", "email", "username", "first_name", "last_name", "profile_pic",
	"is_vegetarian", "is_spicy", "is_family", "gcal_permission", "created_at", "updated_at"}

func setupRepo(t *testing.T) (*UserRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewUserRepository(database.NewWithDB(db)), mock
}

func strPtr(s string) *string { return &s }
func boolPtr(b bool) *bool { return &b }

func TestGetByID(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE id = $1")).
		WithArgs(int64(1)).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(1, "ana@example.com", "ana", "Ana", nil, nil, true, false, false, true, now, now))

	user, err := repo.GetByID(context.Background(), 1)
	require.NoError(t, err)
	require.NotNil(t, user)
	assert.Equal(t, int64(1), user.ID)
	assert.Equal(t, "ana@example.com", user.Email)
	assert.Equal(t, "Ana", *user.FirstName)
	assert.Nil(t, user.LastName)
	assert.True(t, user.IsVegetarian)
	assert.True(t, user.GcalPermission)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByEmailNotFound(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("FROM users WHERE email = $1")).
		WithArgs("nobody@x.com").
		WillReturnError(sql.ErrNoRows)

	user, err := repo.GetByEmail(context.Background(), "nobody@x.com")
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpdateOnlyPassesSuppliedFields(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("first_name      = COALESCE($2, first_name)")).
		WithArgs(int64(3), "Bea", nil, nil, nil, true, nil, nil, nil).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(3, "bea@example.com", "bea", "Bea", "Old", nil, true, false, false, false, now, now))

	user, err := repo.Update(context.Background(), 3, entity.UserPatch{
		FirstName:    strPtr("Bea"),
		IsVegetarian: boolPtr(true),
	})
	require.NoError(t, err)
	assert.Equal(t, "Bea", *user.FirstName)
	assert.Equal(t, "Old", *user.LastName)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateDuplicateEmail(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("UPDATE users SET").
		WillReturnError(&pq.Error{Code: "23505", Constraint: "users_email_key"})

	_, err := repo.Update(context.Background(), 3, entity.UserPatch{Email: strPtr("taken@example.com")})
	require.Error(t, err)
	assert.True(t, errors.Is(err, database.ErrDuplicate))
}

func TestUpdateMissingUser(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery("UPDATE users SET").WillReturnError(sql.ErrNoRows)

	user, err := repo.Update(context.Background(), 99, entity.UserPatch{FirstName: strPtr("x")})
	assert.NoError(t, err)
	assert.Nil(t, user)
}

func TestUpsertByEmail(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("ON CONFLICT (email) DO UPDATE")).
		WithArgs("cy@example.com", "cy", "Cy", nil, "https://img/cy.png", false).
		WillReturnRows(sqlmock.NewRows(userCols).
			AddRow(8, "cy@example.com", "cy", "Cy", nil, "https://img/cy.png", false, false, false, false, now, now))

	user, err := repo.UpsertByEmail(context.Background(), &entity.User{
		Email:      "cy@example.com",
		Username:   strPtr("cy"),
		FirstName:  strPtr("Cy"),
		ProfilePic: strPtr("https://img/cy.png"),
	})
	require.NoError(t, err)
	assert.Equal(t, int64(8), user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdateProfilePic(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE users SET profile_pic = $2")).
		WithArgs(int64(4), "https://cdn/avatars/4/me.png").
		WillReturnResult(sqlmock.NewResult(0, 1))

	require.NoError(t, repo.UpdateProfilePic(context.Background(), 4, "https://cdn/avatars/4/me.png"))
	assert.NoError(t, mock.ExpectationsWereMet())
}
