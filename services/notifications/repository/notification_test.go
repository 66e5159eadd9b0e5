package repository

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/apperr"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupNotificationRepoTest(t *testing.T) (*NotificationRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewNotificationRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateWithRecipients(t *testing.T) {
	notification := &models.Notification{
		ID:        uuid.New(),
		Title:     "New occurrence reported",
		Message:   "Truck ABC1D23: BREAKDOWN",
		CreatedAt: time.Now(),
	}
	recipients := []uuid.UUID{uuid.New(), uuid.New()}

	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO notifications").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^INSERT INTO notification_recipients").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^INSERT INTO notification_recipients").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectCommit()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Recipient Insert Fails Rolls Back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO notifications").
					WillReturnResult(sqlmock.NewResult(0, 1))
				mock.ExpectExec("^INSERT INTO notification_recipients").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert notification recipient")
			},
		},
		{
			name: "Notification Insert Fails Rolls Back",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectBegin()
				mock.ExpectExec("^INSERT INTO notifications").
					WillReturnError(errors.New("database error"))
				mock.ExpectRollback()
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to insert notification")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupNotificationRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			err := repo.CreateWithRecipients(context.Background(), notification, recipients)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetActiveUserIDsByRoles(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	adminID := uuid.New()
	financeID := uuid.New()
	rows := sqlmock.NewRows([]string{"id"}).AddRow(adminID).AddRow(financeID)

	mock.ExpectQuery("^SELECT id FROM users WHERE role IN").
		WithArgs("ADMIN", "FINANCE").
		WillReturnRows(rows)

	ids, err := repo.GetActiveUserIDsByRoles(context.Background(), []string{"ADMIN", "FINANCE"})

	require.NoError(t, err)
	assert.Equal(t, []uuid.UUID{adminID, financeID}, ids)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetRecipient_NotFound(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	recipientID := uuid.New()
	mock.ExpectQuery("^SELECT (.+) FROM notification_recipients").
		WithArgs(recipientID).
		WillReturnError(sql.ErrNoRows)

	recipient, err := repo.GetRecipient(context.Background(), recipientID)

	assert.Nil(t, recipient)
	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestMarkRead_NotFound(t *testing.T) {
	repo, mock, cleanup := setupNotificationRepoTest(t)
	defer cleanup()

	recipientID := uuid.New()
	mock.ExpectExec("^UPDATE notification_recipients").
		WithArgs(recipientID, sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(0, 0))

	err := repo.MarkRead(context.Background(), recipientID)

	assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
	assert.NoError(t, mock.ExpectationsWereMet())
}
