package repository_test

import (
	"regexp"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/aaravmahajanofficial/pos-admin/internal/models"
	repository "github.com/aaravmahajanofficial/pos-admin/internal/repositories"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepoTest(t *testing.T) (repository.NotificationRepository, sqlmock.Sqlmock) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	require.NoError(t, err, "Failed to create sqlmock")

	t.Cleanup(func() {
		db.Close()
	})

	repo := repository.NewNotificationRepo(db)
	require.NotNil(t, repo, "NewNotificationRepo should return a non-nil repository")

	return repo, mock
}

func TestNotificationRepository(t *testing.T) {
	t.Run("CreateNotification", func(t *testing.T) {
		// Arrange
		repo, mock := setupNotificationRepoTest(t)
		saleID := uuid.New()
		notification := &models.Notification{
			ID:        uuid.New(),
			SaleID:    &saleID,
			Type:      models.NotificationTypeEmail,
			Recipient: "buyer@example.com",
			Subject:   "Your receipt",
			Content:   "Thanks",
			Status:    models.StatusPending,
		}
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`INSERT INTO notifications (id, sale_id, type, recipient, subject, content, status, error_message, created_at, updated_at)`)).
			WithArgs(notification.ID, saleID, models.NotificationTypeEmail, "buyer@example.com", "Your receipt", "Thanks", models.StatusPending, "").
			WillReturnRows(sqlmock.NewRows([]string{"created_at", "updated_at"}).AddRow(now, now))

		// Act
		err := repo.CreateNotification(t.Context(), notification)

		// Assert
		require.NoError(t, err)
		assert.WithinDuration(t, now, notification.CreatedAt, time.Second)
		require.NoError(t, mock.ExpectationsWereMet())
	})

	t.Run("UpdateNotificationStatus", func(t *testing.T) {
		t.Run("Success", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications SET status = $1, error_message = $2`)).
				WithArgs(models.StatusSent, "", sqlmock.AnyArg(), id).
				WillReturnResult(sqlmock.NewResult(0, 1))

			require.NoError(t, repo.UpdateNotificationStatus(t.Context(), id, models.StatusSent, ""))
			require.NoError(t, mock.ExpectationsWereMet())
		})

		t.Run("Failure - not found", func(t *testing.T) {
			repo, mock := setupNotificationRepoTest(t)
			id := uuid.New()

			mock.ExpectExec(regexp.QuoteMeta(`UPDATE notifications`)).
				WithArgs(models.StatusFailed, "bounced", sqlmock.AnyArg(), id).
				WillReturnResult(sqlmock.NewResult(0, 0))

			err := repo.UpdateNotificationStatus(t.Context(), id, models.StatusFailed, "bounced")

			assert.ErrorIs(t, err, repository.ErrNotFound)
			require.NoError(t, mock.ExpectationsWereMet())
		})
	})

	t.Run("GetNotificationByID", func(t *testing.T) {
		repo, mock := setupNotificationRepoTest(t)
		id := uuid.New()
		now := time.Now()

		mock.ExpectQuery(regexp.QuoteMeta(`FROM notifications WHERE id = $1`)).
			WithArgs(id).
			WillReturnRows(sqlmock.NewRows([]string{"id", "sale_id", "type", "recipient", "subject", "content", "status", "error_message", "created_at", "updated_at", "sent_at"}).
				AddRow(id, nil, "email", "buyer@example.com", "Receipt", "Thanks", "sent", "", now, now, now))

		notification, err := repo.GetNotificationByID(t.Context(), id)

		require.NoError(t, err)
		assert.Nil(t, notification.SaleID)
		require.NotNil(t, notification.SentAt)
		assert.Equal(t, models.StatusSent, notification.Status)
		require.NoError(t, mock.ExpectationsWereMet())
	})
}
