package impl

import (
	"context"
	"testing"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/repository"
	mockRepo "souk/internal/mocks/repository"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type scopeResolverFixtures struct {
	resolver   *scopeResolver
	driverRepo *mockRepo.MockDriverRepository
	storeRepo  *mockRepo.MockStoreRepository
}

func createTestScopeResolver(t *testing.T) scopeResolverFixtures {
	driverRepo := mockRepo.NewMockDriverRepository(t)
	storeRepo := mockRepo.NewMockStoreRepository(t)

	return scopeResolverFixtures{
		resolver:   newScopeResolver(driverRepo, storeRepo),
		driverRepo: driverRepo,
		storeRepo:  storeRepo,
	}
}

func TestScopeResolver_ShipmentScope_Driver(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()
	driverID := uuid.New()

	fx.driverRepo.EXPECT().
		FindDriverByUserID(ctx, callerID).
		Return(&entity.Driver{ID: driverID, UserID: callerID}, nil)

	pred, err := fx.resolver.ShipmentScope(ctx, callerID, entity.RoleDriver)
	require.NoError(t, err)

	clause, args := pred.Clause()
	assert.Equal(t, "shipments.driver_id = ?", clause)
	assert.Equal(t, []any{driverID}, args)
}

func TestScopeResolver_ShipmentScope_DriverProfileMissing(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.driverRepo.EXPECT().
		FindDriverByUserID(ctx, callerID).
		Return(nil, repository.ErrDriverNotFound)

	pred, err := fx.resolver.ShipmentScope(ctx, callerID, entity.RoleDriver)
	assert.Nil(t, pred)
	assert.ErrorIs(t, err, domainerrors.ErrDriverNotFound)
}

func TestScopeResolver_ShipmentScope_DriverLookupError(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.driverRepo.EXPECT().
		FindDriverByUserID(ctx, callerID).
		Return(nil, errors.New("database error"))

	_, err := fx.resolver.ShipmentScope(ctx, callerID, entity.RoleDriver)
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to find driver by user ID")
}

func TestScopeResolver_ShipmentScope_Store(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByOwner(ctx, callerID).
		Return(&entity.Store{ID: storeID, OwnerID: callerID}, nil)

	pred, err := fx.resolver.ShipmentScope(ctx, callerID, entity.RoleStore)
	require.NoError(t, err)

	clause, args := pred.Clause()
	assert.Contains(t, clause, "EXISTS")
	assert.Contains(t, clause, "so.id = shipments.store_order_id")
	assert.Contains(t, clause, "so.store_id = ?")
	assert.Equal(t, []any{storeID}, args)
}

func TestScopeResolver_ShipmentScope_BackOffice(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()

	for _, role := range []entity.Role{entity.RoleAdmin, entity.RoleManager} {
		pred, err := fx.resolver.ShipmentScope(ctx, callerID, role)
		require.NoError(t, err)

		clause, args := pred.Clause()
		assert.Equal(t, "1=1", clause)
		assert.Empty(t, args)
	}
}

func TestScopeResolver_ShipmentScope_BuyerRejected(t *testing.T) {
	fx := createTestScopeResolver(t)

	pred, err := fx.resolver.ShipmentScope(context.Background(), uuid.New(), entity.RoleBuyer)
	assert.Nil(t, pred)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestScopeResolver_StoreOrderScope_Store(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByOwner(ctx, callerID).
		Return(&entity.Store{ID: storeID, OwnerID: callerID}, nil)

	pred, err := fx.resolver.StoreOrderScope(ctx, callerID, entity.RoleStore)
	require.NoError(t, err)

	clause, args := pred.Clause()
	assert.Equal(t, "store_orders.store_id = ?", clause)
	assert.Equal(t, []any{storeID}, args)
}

func TestScopeResolver_StoreOrderScope_StoreMissing(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByOwner(ctx, callerID).
		Return(nil, repository.ErrStoreNotFound)

	_, err := fx.resolver.StoreOrderScope(ctx, callerID, entity.RoleStore)
	assert.ErrorIs(t, err, domainerrors.ErrStoreNotFound)
}

func TestScopeResolver_StoreOrderScope_DriverRejected(t *testing.T) {
	fx := createTestScopeResolver(t)

	_, err := fx.resolver.StoreOrderScope(context.Background(), uuid.New(), entity.RoleDriver)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestScopeResolver_OrderScope_Store(t *testing.T) {
	fx := createTestScopeResolver(t)

	ctx := context.Background()
	callerID := uuid.New()
	storeID := uuid.New()

	fx.storeRepo.EXPECT().
		FindStoreByOwner(ctx, callerID).
		Return(&entity.Store{ID: storeID, OwnerID: callerID}, nil)

	pred, err := fx.resolver.OrderScope(ctx, callerID, entity.RoleStore)
	require.NoError(t, err)

	clause, args := pred.Clause()
	assert.Contains(t, clause, "EXISTS")
	assert.Contains(t, clause, "so.order_id = orders.id")
	assert.Contains(t, clause, "so.store_id = ?")
	assert.Equal(t, []any{storeID}, args)
}

func TestScopeResolver_OrderScope_Manager(t *testing.T) {
	fx := createTestScopeResolver(t)

	pred, err := fx.resolver.OrderScope(context.Background(), uuid.New(), entity.RoleManager)
	require.NoError(t, err)

	clause, _ := pred.Clause()
	assert.Equal(t, "1=1", clause)
}

func TestScopeResolver_OrderScope_DriverRejected(t *testing.T) {
	fx := createTestScopeResolver(t)

	_, err := fx.resolver.OrderScope(context.Background(), uuid.New(), entity.RoleDriver)
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}

func TestScopeResolver_UnknownRoleRejected(t *testing.T) {
	fx := createTestScopeResolver(t)

	_, err := fx.resolver.ShipmentScope(context.Background(), uuid.New(), entity.Role("superuser"))
	assert.ErrorIs(t, err, domainerrors.ErrRoleNotAllowed)
}
