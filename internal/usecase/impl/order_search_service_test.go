package impl

import (
	"context"
	"testing"

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

type orderSearchServiceFixtures struct {
	service    usecase.OrderSearchUsecase
	searchRepo *mockRepo.MockOrderSearchRepository
	driverRepo *mockRepo.MockDriverRepository
	storeRepo  *mockRepo.MockStoreRepository
}

func createTestOrderSearchService(t *testing.T) orderSearchServiceFixtures {
	searchRepo := mockRepo.NewMockOrderSearchRepository(t)
	driverRepo := mockRepo.NewMockDriverRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)
	service := NewOrderSearchService(OrderSearchServiceParams{
		SearchRepo: searchRepo,
		DriverRepo: driverRepo,
		StoreRepo:  storeRepo,
	})

	return orderSearchServiceFixtures{
		service:    service,
		searchRepo: searchRepo,
		driverRepo: driverRepo,
		storeRepo:  storeRepo,
	}
}

func TestOrderSearchService_SearchOrders_ZeroMatches(t *testing.T) {
	fx := createTestOrderSearchService(t)

	ctx := context.Background()

	fx.searchRepo.EXPECT().
		CountOrders(ctx, mock.Anything).
		Return(int64(0), nil)

	result, err := fx.service.SearchOrders(ctx, uuid.New(), entity.RoleAdmin, nil, usecase.PageRequest{})
	require.NoError(t, err)

	assert.Empty(t, result.Records)
	assert.NotNil(t, result.Records)
	assert.Equal(t, int64(0), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 0, result.TotalPages)
	assert.Equal(t, entity.ZeroOrderStats(), result.Stats)
}

func TestOrderSearchService_SearchOrders_Success(t *testing.T) {
	fx := createTestOrderSearchService(t)

	ctx := context.Background()
	records := []*entity.OrderDetail{
		{Order: entity.Order{ID: uuid.New(), Status: entity.OrderStatusDelivered}},
		{Order: entity.Order{ID: uuid.New(), Status: entity.OrderStatusPending}},
	}
	stats := &entity.OrderStats{
		TotalCount:         2,
		StatusDistribution: map[entity.OrderStatus]int64{entity.OrderStatusDelivered: 1, entity.OrderStatusPending: 1},
		TotalRevenue:       340,
	}

	fx.searchRepo.EXPECT().
		CountOrders(ctx, mock.Anything).
		Return(int64(2), nil)
	fx.searchRepo.EXPECT().
		FindOrderDetails(mock.Anything, mock.Anything, 20, 0).
		Return(records, nil)
	fx.searchRepo.EXPECT().
		AggregateOrderStats(mock.Anything, mock.Anything).
		Return(stats, nil)

	result, err := fx.service.SearchOrders(ctx, uuid.New(), entity.RoleManager, nil, usecase.PageRequest{})
	require.NoError(t, err)

	assert.Equal(t, records, result.Records)
	assert.Equal(t, int64(2), result.Total)
	assert.Equal(t, 1, result.Page)
	assert.Equal(t, 1, result.TotalPages)
	assert.Equal(t, stats, result.Stats)
}

func TestOrderSearchService_SearchOrders_StoreScoped(t *testing.T) {
	fx := createTestOrderSearchService(t)

	ctx := context.Background()
	callerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByOwner(ctx, callerID).
		Return(&entity.Store{ID: storeID, OwnerID: callerID}, nil)

	fx.searchRepo.EXPECT().
		CountOrders(ctx, mock.MatchedBy(func(pred query.Predicate) bool {
			clause, args := pred.Clause()

			return assert.ObjectsAreEqual([]any{storeID}, args) &&
				clause == "(EXISTS (SELECT 1 FROM store_orders so WHERE so.order_id = orders.id AND so.store_id = ?))"
		})).
		Return(int64(0), nil)

	_, err := fx.service.SearchOrders(ctx, callerID, entity.RoleStore, nil, usecase.PageRequest{})
	require.NoError(t, err)
}

func TestOrderSearchService_SearchOrders_StoreMissing(t *testing.T) {
	fx := createTestOrderSearchService(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByOwner(ctx, callerID).
		Return(nil, repository.ErrStoreNotFound)

	result, err := fx.service.SearchOrders(ctx, callerID, entity.RoleStore, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestOrderSearchService_SearchOrders_BuyerRejected(t *testing.T) {
	fx := createTestOrderSearchService(t)

	result, err := fx.service.SearchOrders(context.Background(), uuid.New(), entity.RoleBuyer, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestOrderSearchService_SearchOrders_CountError(t *testing.T) {
	fx := createTestOrderSearchService(t)

	ctx := context.Background()

	fx.searchRepo.EXPECT().
		CountOrders(ctx, mock.Anything).
		Return(int64(0), errors.New("database error"))

	result, err := fx.service.SearchOrders(ctx, uuid.New(), entity.RoleAdmin, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to count orders")
}

func TestOrderSearchService_SearchOrders_StatsError(t *testing.T) {
	fx := createTestOrderSearchService(t)

	ctx := context.Background()

	fx.searchRepo.EXPECT().
		CountOrders(ctx, mock.Anything).
		Return(int64(3), nil)
	fx.searchRepo.EXPECT().
		FindOrderDetails(mock.Anything, mock.Anything, 20, 0).
		Return([]*entity.OrderDetail{}, nil).
		Maybe()
	fx.searchRepo.EXPECT().
		AggregateOrderStats(mock.Anything, mock.Anything).
		Return(nil, errors.New("stats failed"))

	result, err := fx.service.SearchOrders(ctx, uuid.New(), entity.RoleAdmin, nil, usecase.PageRequest{})
	assert.Nil(t, result)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "stats failed")
}

func TestCompileOrderFilters_Nil(t *testing.T) {
	assert.Nil(t, compileOrderFilters(nil))
}

func TestCompileOrderFilters_Statuses(t *testing.T) {
	preds := compileOrderFilters(&usecase.OrderFilters{
		Statuses: []entity.OrderStatus{entity.OrderStatusShipped, entity.OrderStatusDelivered},
	})
	require.Len(t, preds, 1)

	clause, args := preds[0].Clause()
	assert.Equal(t, "orders.status IN (?,?)", clause)
	assert.Equal(t, []any{entity.OrderStatusShipped, entity.OrderStatusDelivered}, args)
}

func TestCompileOrderFilters_PaymentFilters(t *testing.T) {
	preds := compileOrderFilters(&usecase.OrderFilters{
		PaymentStatuses: []entity.PaymentStatus{entity.PaymentStatusFailed},
	})
	require.Len(t, preds, 1)

	clause, args := preds[0].Clause()
	assert.Contains(t, clause, "EXISTS")
	assert.Contains(t, clause, "JOIN store_orders so ON so.id = p.store_order_id")
	assert.Contains(t, clause, "so.order_id = orders.id")
	assert.Contains(t, clause, "p.status IN (?)")
	assert.Equal(t, []any{entity.PaymentStatusFailed}, args)
}

func TestCompileOrderFilters_AmountBoundsUseDerivedTotal(t *testing.T) {
	minAmount := 100.0
	maxAmount := 1000.0

	preds := compileOrderFilters(&usecase.OrderFilters{
		MinAmount: &minAmount,
		MaxAmount: &maxAmount,
	})
	require.Len(t, preds, 2)

	clause, args := preds[0].Clause()
	assert.Contains(t, clause, "SUM(so.total)")
	assert.Contains(t, clause, "so.order_id = orders.id")
	assert.Contains(t, clause, ">= ?")
	assert.Equal(t, []any{minAmount}, args)

	clause, args = preds[1].Clause()
	assert.Contains(t, clause, "<= ?")
	assert.Equal(t, []any{maxAmount}, args)
}
