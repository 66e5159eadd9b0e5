package repository

import (
	"context"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/gstransportes/frota/internal/pkg/constants"
	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func setupTireRepoTest(t *testing.T) (*TireRepo, sqlmock.Sqlmock, func()) {
	mockDB, mock, err := sqlmock.New()
	require.NoError(t, err)

	sqlxDB := sqlx.NewDb(mockDB, "sqlmock")
	repo := NewTireRepo(sqlxDB)

	cleanup := func() {
		sqlxDB.Close()
	}

	return repo, mock, cleanup
}

func TestListRecentProblemEvents_WindowsOnlyBlowoutAndMaintenance(t *testing.T) {
	repo, mock, cleanup := setupTireRepoTest(t)
	defer cleanup()

	tireID := uuid.New()
	eventColumns := []string{"id", "tire_id", "event_type", "description", "km_at_event", "cost", "photo_url", "created_at"}
	rows := sqlmock.NewRows(eventColumns).
		AddRow(uuid.New(), tireID, constants.TireEventBlowout, "Blowout on highway", 47200.0, nil, nil, time.Now()).
		AddRow(uuid.New(), tireID, constants.TireEventMaintenance, "Patched", 46000.0, nil, nil, time.Now())

	// the window must not admit WEAR or other event types
	mock.ExpectQuery(`event_type IN \('BLOWOUT', 'MAINTENANCE'\) ORDER BY created_at DESC LIMIT`).
		WithArgs(tireID, 5).
		WillReturnRows(rows)

	events, err := repo.ListRecentProblemEvents(context.Background(), tireID, 5)

	require.NoError(t, err)
	require.Len(t, events, 2)
	assert.Equal(t, constants.TireEventBlowout, events[0].EventType)
	assert.Equal(t, constants.TireEventMaintenance, events[1].EventType)
	assert.NoError(t, mock.ExpectationsWereMet())
}
