package repository

import (
	"context"
	"regexp"
	"testing"
	"time"

	"weav-api/core/database"
	"weav-api/core/entity"
	"weav-api/core/params"
	notificationEntity "weav-api/modules/notification/entity"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupRepo(t *testing.T) (*NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New()
	require.NoError(t, err)
	t.Cleanup(func() { db.Close() })
	return NewNotificationRepository(database.NewWithDB(db)), mock
}

func TestCreate(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("INSERT INTO notifications")).
		WithArgs("New friend request", "You have a new friend request", "friend_request",
			sqlmock.AnyArg(), int64(2), false, now, now).
		WillReturnRows(sqlmock.NewRows([]string{"id"}).AddRow(11))

	n := &notificationEntity.Notification{
		UserID:     2,
		Title:      "New friend request",
		Message:    "You have a new friend request",
		Type:       "friend_request",
		Data:       notificationEntity.JSONB{"from_user_id": 1},
		BaseEntity: entity.BaseEntity{CreatedAt: now, UpdatedAt: now},
	}
	require.NoError(t, repo.Create(context.Background(), n))
	assert.Equal(t, int64(11), n.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetByUserID(t *testing.T) {
	repo, mock := setupRepo(t)
	now := time.Now()

	mock.ExpectQuery(regexp.QuoteMeta("SELECT COUNT(*) FROM notifications WHERE user_id = $1")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(3))
	mock.ExpectQuery(regexp.QuoteMeta("LIMIT $2 OFFSET $3")).
		WithArgs(int64(2), 2, 2).
		WillReturnRows(sqlmock.NewRows([]string{"id", "user_id", "title", "message", "type", "data", "is_read", "created_at", "updated_at"}).
			AddRow(7, 2, "t", "m", "friend_request", []byte(`{"from_user_id":1}`), false, now, now))

	rows, total, err := repo.GetByUserID(context.Background(), 2, params.QueryParams{PageNumber: 2, PageSize: 2})
	require.NoError(t, err)
	assert.Equal(t, 3, total)
	require.Len(t, rows, 1)
	assert.Equal(t, float64(1), rows[0].Data["from_user_id"])
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkAsReadExpandsIDs(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectExec(regexp.QuoteMeta("UPDATE notifications SET is_read = true, updated_at = NOW() WHERE user_id = $1 AND id IN ($2, $3)")).
		WithArgs(int64(2), int64(7), int64(8)).
		WillReturnResult(sqlmock.NewResult(0, 2))

	require.NoError(t, repo.MarkAsRead(context.Background(), 2, []int64{7, 8}))
	require.NoError(t, repo.MarkAsRead(context.Background(), 2, nil))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCountUnread(t *testing.T) {
	repo, mock := setupRepo(t)

	mock.ExpectQuery(regexp.QuoteMeta("is_read = false")).
		WithArgs(int64(2)).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(4))

	n, err := repo.CountUnread(context.Background(), 2)
	require.NoError(t, err)
	assert.Equal(t, 4, n)
}
