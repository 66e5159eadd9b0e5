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
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/gstransportes/frota/internal/pkg/models"
	"github.com/jackc/pgconn"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupUserRepoTest(t *testing.T) (*UserRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewUserRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestCreateUser(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "Duplicate Email",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(&pgconn.PgError{Code: "23505"})
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperr.IsKind(err, apperr.KindConflict))
			},
		},
		{
			name: "Database Error",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectExec("^INSERT INTO users").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to create user")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user := &models.User{
				ID:        uuid.New(),
				Email:     "joao@example.com",
				Password:  "hashed",
				Name:      "Joao Silva",
				Role:      constants.RoleDriver,
				Active:    true,
				CreatedAt: time.Now(),
				UpdatedAt: time.Now(),
			}

			err := repo.Create(context.Background(), user)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestGetUserByEmail(t *testing.T) {
	userColumns := []string{"id", "email", "password", "name", "cpf", "phone", "role", "active", "created_at", "updated_at"}

	testCases := []struct {
		name       string
		email      string
		mockSetup  func(mock sqlmock.Sqlmock)
		assertFunc func(t *testing.T, user *models.User, err error)
	}{
		{
			name:  "Success",
			email: "joao@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				userID := uuid.MustParse("550e8400-e29b-41d4-a716-446655440000")
				rows := sqlmock.NewRows(userColumns).
					AddRow(userID, "joao@example.com", "hashed", "Joao Silva", "", "", constants.RoleDriver, true, time.Now(), time.Now())
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("joao@example.com").
					WillReturnRows(rows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.NoError(t, err)
				require.NotNil(t, user)
				assert.Equal(t, "joao@example.com", user.Email)
				assert.Equal(t, constants.RoleDriver, user.Role)
				assert.True(t, user.Active)
			},
		},
		{
			name:  "User Not Found",
			email: "nobody@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("nobody@example.com").
					WillReturnError(sql.ErrNoRows)
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
			},
		},
		{
			name:  "Database Error",
			email: "joao@example.com",
			mockSetup: func(mock sqlmock.Sqlmock) {
				mock.ExpectQuery("^SELECT (.+) FROM users").
					WithArgs("joao@example.com").
					WillReturnError(errors.New("database error"))
			},
			assertFunc: func(t *testing.T, user *models.User, err error) {
				assert.Nil(t, user)
				assert.Error(t, err)
				assert.Contains(t, err.Error(), "failed to get user by email")
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			tc.mockSetup(mock)

			user, err := repo.GetByEmail(context.Background(), tc.email)

			tc.assertFunc(t, user, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestSetUserActive(t *testing.T) {
	testCases := []struct {
		name       string
		mockSetup  func(mock sqlmock.Sqlmock, id uuid.UUID)
		assertFunc func(t *testing.T, err error)
	}{
		{
			name: "Success",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^UPDATE users").
					WithArgs(id, false).
					WillReturnResult(sqlmock.NewResult(0, 1))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.NoError(t, err)
			},
		},
		{
			name: "User Not Found",
			mockSetup: func(mock sqlmock.Sqlmock, id uuid.UUID) {
				mock.ExpectExec("^UPDATE users").
					WithArgs(id, false).
					WillReturnResult(sqlmock.NewResult(0, 0))
			},
			assertFunc: func(t *testing.T, err error) {
				assert.True(t, apperr.IsKind(err, apperr.KindNotFound))
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			repo, mock, cleanup := setupUserRepoTest(t)
			defer cleanup()

			id := uuid.New()
			tc.mockSetup(mock, id)

			err := repo.SetActive(context.Background(), id, false)

			tc.assertFunc(t, err)
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}
