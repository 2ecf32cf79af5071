package repository

import (
	"context"
	"testing"
	"time"

	"github.com/pashagolub/pgxmock/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// ptr оборачивает значение в указатель: pgxmock не умеет сканировать
// литерал в указательный приёмник, ему нужно типизированное значение
func ptr[T any](v T) *T { return &v }

func newIncidentRepoMock(t *testing.T) (*IncidentRepository, pgxmock.PgxPoolIface) {
	t.Helper()
	mock, err := pgxmock.NewPool()
	require.NoError(t, err)
	t.Cleanup(mock.Close)
	return &IncidentRepository{db: mock}, mock
}

func TestList_NullDescriptionScansAsEmpty(t *testing.T) {
	// Подготовка
	repo, mock := newIncidentRepoMock(t)
	createdAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Ожидания: у первой строки description NULL (запись не из этого
	// приложения), у второй заполнен
	mock.ExpectQuery(`SELECT id, latitude, longitude, type, description, severity, created_at`).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "latitude", "longitude", "type", "description", "severity", "created_at"}).
			AddRow(int64(2), 40.72, -74.01, "fire", nil, 5, createdAt).
			AddRow(int64(1), 40.71, -74.0, "accident", ptr("two cars"), 2, createdAt))

	// Действие
	incidents, err := repo.List(context.Background())

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 2)
	assert.Equal(t, "", incidents[0].Description)
	assert.Equal(t, "two cars", incidents[1].Description)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestFindNearby_NullDescriptionScansAsEmpty(t *testing.T) {
	// Подготовка
	repo, mock := newIncidentRepoMock(t)
	createdAt := time.Date(2026, 9, 1, 10, 0, 0, 0, time.UTC)

	// Ожидания
	mock.ExpectQuery(`ST_DWithin`).
		WithArgs(40.7128, -74.006, 3000.0).
		WillReturnRows(pgxmock.
			NewRows([]string{"id", "latitude", "longitude", "type", "description", "severity", "created_at", "distance"}).
			AddRow(int64(1), 40.7129, -74.0061, "accident", nil, 3, createdAt, ptr(125.5)))

	// Действие
	incidents, err := repo.FindNearby(context.Background(), 40.7128, -74.006, 3000)

	// Проверки
	require.NoError(t, err)
	require.Len(t, incidents, 1)
	assert.Equal(t, "", incidents[0].Description)
	require.NotNil(t, incidents[0].DistanceMeters)
	assert.Equal(t, 125.5, *incidents[0].DistanceMeters)
	assert.NoError(t, mock.ExpectationsWereMet())
}
