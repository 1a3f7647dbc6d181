package postgres

import (
	"context"
	"regexp"
	"testing"

	"souk/internal/domain/entity"
	"souk/internal/domain/query"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestShipmentSearchRepository_CountShipments(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewShipmentSearchRepository(gormDB)

	driverID := uuid.New()
	pred := query.And(query.Eq("shipments.driver_id", driverID))

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(DISTINCT shipments.id) FROM shipments WHERE (shipments.driver_id = $1)`)).
		WithArgs(driverID).
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(int64(17)))

	total, err := repo.CountShipments(context.Background(), pred)
	require.NoError(t, err)
	assert.Equal(t, int64(17), total)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentSearchRepository_CountShipments_QueryError(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewShipmentSearchRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT COUNT(DISTINCT shipments.id) FROM shipments WHERE 1=1`)).
		WillReturnError(assert.AnError)

	total, err := repo.CountShipments(context.Background(), query.MatchAll())
	assert.Zero(t, total)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "database execution failed")
}

func TestShipmentSearchRepository_FindShipmentDetails_EmptyPage(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewShipmentSearchRepository(gormDB)

	mock.ExpectQuery(regexp.QuoteMeta(`SELECT * FROM "shipments" WHERE 1=1 ORDER BY shipments.created_at DESC, shipments.id DESC`)).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	details, err := repo.FindShipmentDetails(context.Background(), query.MatchAll(), 20, 0)
	require.NoError(t, err)
	assert.NotNil(t, details)
	assert.Empty(t, details)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestShipmentSearchRepository_AggregateShipmentStats(t *testing.T) {
	gormDB, mock := setupMockDB(t)
	repo := NewShipmentSearchRepository(gormDB)

	statsRows := sqlmock.NewRows([]string{"total_count", "avg_duration_minutes", "on_time_percentage", "total_delivery_fees"}).
		AddRow(int64(40), 52.5, 75.0, 8400.0)
	mock.ExpectQuery(`SELECT\s+COUNT\(DISTINCT shipments\.id\) AS total_count`).
		WillReturnRows(statsRows)

	distRows := sqlmock.NewRows([]string{"status", "count"}).
		AddRow("delivered", int64(30)).
		AddRow("in_progress", int64(8)).
		AddRow("misrouted", int64(2))
	mock.ExpectQuery(`SELECT shipments\.status AS status`).
		WillReturnRows(distRows)

	stats, err := repo.AggregateShipmentStats(context.Background(), query.MatchAll())
	require.NoError(t, err)

	assert.Equal(t, int64(40), stats.TotalCount)
	assert.Equal(t, 52.5, stats.AvgDurationMinutes)
	assert.Equal(t, 75.0, stats.OnTimePercentage)
	assert.Equal(t, 8400.0, stats.TotalDeliveryFees)

	assert.Equal(t, int64(30), stats.StatusDistribution[entity.ShipmentStatusDelivered])
	assert.Equal(t, int64(8), stats.StatusDistribution[entity.ShipmentStatusInProgress])
	assert.Equal(t, int64(0), stats.StatusDistribution[entity.ShipmentStatusPending])
	assert.Equal(t, int64(0), stats.StatusDistribution[entity.ShipmentStatusFailed])
	assert.Equal(t, int64(2), stats.StatusDistribution[entity.ShipmentStatus("misrouted")])
	assert.NoError(t, mock.ExpectationsWereMet())
}
