package impl

import (
	"context"
	"testing"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/query"
	"souk/internal/domain/repository"
	mockRepo "souk/internal/mocks/repository"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type shipmentSearchServiceFixtures struct {
	service    usecase.ShipmentSearchUsecase
	searchRepo *mockRepo.MockShipmentSearchRepository
	driverRepo *mockRepo.MockDriverRepository
	storeRepo  *mockRepo.MockStoreRepository
}

func createTestShipmentSearchService(t *testing.T) shipmentSearchServiceFixtures {
	searchRepo := mockRepo.NewMockShipmentSearchRepository(t)
	driverRepo := mockRepo.NewMockDriverRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewShipmentSearchService(ShipmentSearchServiceParams{
		SearchRepo: searchRepo,
		DriverRepo: driverRepo,
		StoreRepo:  storeRepo,
	})

	return shipmentSearchServiceFixtures{
		service:    service,
		searchRepo: searchRepo,
		driverRepo: driverRepo,
		storeRepo:  storeRepo,
	}
}

func TestShipmentSearchService_SearchShipments_ZeroMatches(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.searchRepo.EXPECT().
		CountShipments(ctx, mock.Anything).
		Return(int64(0), nil)

	result, err := fx.service.SearchShipments(ctx, callerID, entity.RoleAdmin, nil, usecase.PageRequest{Page: 3, PerPage: 10})
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.NotNil(t, result.Records)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 0, result.TotalPages)
	assert.Equal(t, entity.ZeroShipmentStats(), result.Stats)
}

func TestShipmentSearchService_SearchShipments_Success(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()
	callerID := uuid.New()
	records := []*entity.ShipmentDetail{
		{Shipment: entity.Shipment{ID: uuid.New(), Status: entity.ShipmentStatusDelivered}},
		{Shipment: entity.Shipment{ID: uuid.New(), Status: entity.ShipmentStatusPending}},
	}
	stats := &entity.ShipmentStats{
		TotalCount:         45,
		StatusDistribution: map[entity.ShipmentStatus]int64{entity.ShipmentStatusDelivered: 30},
		AvgDurationMinutes: 42.5,
		OnTimePercentage:   80,
		TotalDeliveryFees:  1250,
	}

	fx.searchRepo.EXPECT().
		CountShipments(ctx, mock.Anything).
		Return(int64(45), nil)
	fx.searchRepo.EXPECT().
		FindShipmentDetails(mock.Anything, mock.Anything, 20, 40).
		Return(records, nil)
	fx.searchRepo.EXPECT().
		AggregateShipmentStats(mock.Anything, mock.Anything).
		Return(stats, nil)

	result, err := fx.service.SearchShipments(ctx, callerID, entity.RoleAdmin, nil, usecase.PageRequest{Page: 9, PerPage: 20})
	require.NoError(t, err)

	assert.Equal(t, records, result.Records)
	assert.Equal(t, int64(45), result.Total)
	assert.Equal(t, 3, result.Page)
	assert.Equal(t, 3, result.TotalPages)
	assert.Equal(t, stats, result.Stats)
}

func TestShipmentSearchService_SearchShipments_DriverScoped(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()
	callerID := uuid.New()
	driverID := uuid.New()

	fx.driverRepo.EXPECT().
		FindDriverByUserID(ctx, callerID).
		Return(&entity.Driver{ID: driverID, UserID: callerID}, nil)

	fx.searchRepo.EXPECT().
		CountShipments(ctx, mock.MatchedBy(func(pred query.Predicate) bool {
			clause, args := pred.Clause()

			return assert.ObjectsAreEqual([]any{driverID}, args) &&
				clause == "(shipments.driver_id = ?)"
		})).
		Return(int64(0), nil)

	result, err := fx.service.SearchShipments(ctx, callerID, entity.RoleDriver, nil, usecase.PageRequest{})
	require.NoError(t, err)
	assert.Equal(t, int64(0), result.Total)
}

func TestShipmentSearchService_SearchShipments_DriverProfileMissing(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.driverRepo.EXPECT().
		FindDriverByUserID(ctx, callerID).
		Return(nil, repository.ErrDriverNotFound)

	result, err := fx.service.SearchShipments(ctx, callerID, entity.RoleDriver, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
}

func TestShipmentSearchService_SearchShipments_BuyerRejected(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	result, err := fx.service.SearchShipments(context.Background(), uuid.New(), entity.RoleBuyer, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestShipmentSearchService_SearchShipments_CountError(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()

	fx.searchRepo.EXPECT().
		CountShipments(ctx, mock.Anything).
		Return(int64(0), errors.New("database error"))

	result, err := fx.service.SearchShipments(ctx, uuid.New(), entity.RoleAdmin, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count shipments")
}

func TestShipmentSearchService_SearchShipments_AssemblyError(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()

	fx.searchRepo.EXPECT().
		CountShipments(ctx, mock.Anything).
		Return(int64(5), nil)
	fx.searchRepo.EXPECT().
		FindShipmentDetails(mock.Anything, mock.Anything, 20, 0).
		Return(nil, errors.New("assembly failed"))
	fx.searchRepo.EXPECT().
		AggregateShipmentStats(mock.Anything, mock.Anything).
		Return(entity.ZeroShipmentStats(), nil).
		Maybe()

	result, err := fx.service.SearchShipments(ctx, uuid.New(), entity.RoleAdmin, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "assembly failed")
}

func TestShipmentSearchService_SearchShipments_StatsError(t *testing.T) {
	fx := createTestShipmentSearchService(t)

	ctx := context.Background()

	fx.searchRepo.EXPECT().
		CountShipments(ctx, mock.Anything).
		Return(int64(5), nil)
	fx.searchRepo.EXPECT().
		FindShipmentDetails(mock.Anything, mock.Anything, 20, 0).
		Return([]*entity.ShipmentDetail{}, nil).
		Maybe()
	fx.searchRepo.EXPECT().
		AggregateShipmentStats(mock.Anything, mock.Anything).
		Return(nil, errors.New("stats failed"))

	result, err := fx.service.SearchShipments(ctx, uuid.New(), entity.RoleAdmin, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stats failed")
}

func TestCompileShipmentFilters_Nil(t *testing.T) {
	assert.Nil(t, compileShipmentFilters(nil))
}

func TestCompileShipmentFilters_Empty(t *testing.T) {
	assert.Empty(t, compileShipmentFilters(&usecase.ShipmentFilters{}))
}

func TestCompileShipmentFilters_Statuses(t *testing.T) {
	preds := compileShipmentFilters(&usecase.ShipmentFilters{
		Statuses: []entity.ShipmentStatus{entity.ShipmentStatusPending, entity.ShipmentStatusDelivered},
	})
	require.Len(t, preds, 1)

	clause, args := preds[0].Clause()
	assert.Equal(t, "shipments.status IN (?,?)", clause)
	assert.Equal(t, []any{entity.ShipmentStatusPending, entity.ShipmentStatusDelivered}, args)
}

func TestCompileShipmentFilters_DateRange(t *testing.T) {
	start := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	end := time.Date(2025, 1, 31, 23, 59, 59, 0, time.UTC)

	preds := compileShipmentFilters(&usecase.ShipmentFilters{
		DateRange: &usecase.DateRange{Start: &start, End: &end},
	})
	require.Len(t, preds, 2)

	clause, args := preds[0].Clause()
	assert.Equal(t, "shipments.created_at >= ?", clause)
	assert.Equal(t, []any{start}, args)

	clause, args = preds[1].Clause()
	assert.Equal(t, "shipments.created_at <= ?", clause)
	assert.Equal(t, []any{end}, args)
}

func TestCompileShipmentFilters_OpenEndedDateRange(t *testing.T) {
	start := time.Date(2025, 6, 1, 0, 0, 0, 0, time.UTC)

	preds := compileShipmentFilters(&usecase.ShipmentFilters{
		DateRange: &usecase.DateRange{Start: &start},
	})
	require.Len(t, preds, 1)

	clause, _ := preds[0].Clause()
	assert.Equal(t, "shipments.created_at >= ?", clause)
}

func TestCompileShipmentFilters_StoreAndDriver(t *testing.T) {
	storeID := uuid.New()
	driverID := uuid.New()

	preds := compileShipmentFilters(&usecase.ShipmentFilters{
		DriverID: &driverID,
		StoreID:  &storeID,
	})
	require.Len(t, preds, 2)

	clause, args := preds[0].Clause()
	assert.Equal(t, "shipments.driver_id = ?", clause)
	assert.Equal(t, []any{driverID}, args)

	clause, args = preds[1].Clause()
	assert.Contains(t, clause, "EXISTS")
	assert.Contains(t, clause, "so.store_id = ?")
	assert.Equal(t, []any{storeID}, args)
}

func TestCompileShipmentFilters_EstimatedDeliveryBounds(t *testing.T) {
	minMinutes := 30
	maxMinutes := 120

	preds := compileShipmentFilters(&usecase.ShipmentFilters{
		MinEstimatedDeliveryMinutes: &minMinutes,
		MaxEstimatedDeliveryMinutes: &maxMinutes,
	})
	require.Len(t, preds, 2)

	clause, args := preds[0].Clause()
	assert.Contains(t, clause, "estimated_delivery_date")
	assert.Contains(t, clause, ">= ?")
	assert.Equal(t, []any{minMinutes}, args)

	clause, _ = preds[1].Clause()
	assert.Contains(t, clause, "<= ?")
}

func TestCompileShipmentFilters_SupportTicket(t *testing.T) {
	hasTicket := true
	preds := compileShipmentFilters(&usecase.ShipmentFilters{HasSupportTicket: &hasTicket})
	require.Len(t, preds, 1)

	clause, _ := preds[0].Clause()
	assert.Contains(t, clause, "EXISTS")
	assert.Contains(t, clause, "Commande N°")

	hasTicket = false
	preds = compileShipmentFilters(&usecase.ShipmentFilters{HasSupportTicket: &hasTicket})
	require.Len(t, preds, 1)

	clause, _ = preds[0].Clause()
	assert.Contains(t, clause, "NOT EXISTS")
}
