package postgres

import (
	"context"
	"time"

	"souk/internal/domain/entity"
	domainerrors "souk/internal/domain/errors"
	"souk/internal/domain/query"
	"souk/internal/domain/repository"
	"souk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// storeOrderSearchRepository implements the repository.StoreOrderSearchRepository interface.
type storeOrderSearchRepository struct {
	db        *gorm.DB
	relations *relationLoader
	now       func() time.Time
}

// NewStoreOrderSearchRepository is the constructor for storeOrderSearchRepository.
func NewStoreOrderSearchRepository(db *gorm.DB) repository.StoreOrderSearchRepository {
	return &storeOrderSearchRepository{
		db:        db,
		relations: &relationLoader{db: db},
		now:       time.Now,
	}
}

// CountStoreOrders returns the number of distinct store orders the
// predicate matches.
func (repo *storeOrderSearchRepository) CountStoreOrders(ctx context.Context, pred query.Predicate) (int64, error) {
	clause, args := pred.Clause()

	var total int64
	if err := repo.db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT store_orders.id) FROM store_orders WHERE "+clause, args...).
		Scan(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count store orders")
	}

	return total, nil
}

// FindStoreOrderDetails loads one page of store orders and assembles
// their nested relations with batched IN queries.
func (repo *storeOrderSearchRepository) FindStoreOrderDetails(ctx context.Context, pred query.Predicate, limit, offset int) ([]*entity.StoreOrderDetail, error) {
	clause, args := pred.Clause()

	var storeOrderRows []*model.StoreOrderModel
	if err := repo.db.WithContext(ctx).
		Table("store_orders").
		Where(clause, args...).
		Order("store_orders.created_at DESC, store_orders.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&storeOrderRows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load store order page")
	}

	if len(storeOrderRows) == 0 {
		return []*entity.StoreOrderDetail{}, nil
	}

	storeOrderIDs := make([]uuid.UUID, 0, len(storeOrderRows))
	orderIDs := make([]uuid.UUID, 0, len(storeOrderRows))
	storeIDs := make([]uuid.UUID, 0, len(storeOrderRows))
	for _, row := range storeOrderRows {
		storeOrderIDs = append(storeOrderIDs, row.ID)
		orderIDs = append(orderIDs, row.OrderID)
		storeIDs = append(storeIDs, row.StoreID)
	}

	orders, err := repo.relations.ordersByID(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	buyerIDs := make([]uuid.UUID, 0, len(orders))
	deliveryAddressIDs := make([]uuid.UUID, 0, len(orders))
	for _, row := range orders {
		buyerIDs = append(buyerIDs, row.BuyerID)
		deliveryAddressIDs = append(deliveryAddressIDs, row.DeliveryAddressID)
	}

	stores, err := repo.relations.storesByID(ctx, storeIDs)
	if err != nil {
		return nil, err
	}

	customers, err := repo.relations.usersByID(ctx, buyerIDs)
	if err != nil {
		return nil, err
	}

	addresses, err := repo.relations.addressesByID(ctx, deliveryAddressIDs)
	if err != nil {
		return nil, err
	}

	shipments, err := repo.relations.shipmentsByStoreOrder(ctx, storeOrderIDs)
	if err != nil {
		return nil, err
	}

	driverIDs := make([]uuid.UUID, 0, len(shipments))
	for _, row := range shipments {
		if row.DriverID != nil {
			driverIDs = append(driverIDs, *row.DriverID)
		}
	}

	drivers, err := repo.relations.driverInfoByID(ctx, driverIDs)
	if err != nil {
		return nil, err
	}

	items, err := repo.relations.itemsByStoreOrder(ctx, storeOrderIDs)
	if err != nil {
		return nil, err
	}

	payments, err := repo.relations.paymentsByStoreOrder(ctx, storeOrderIDs)
	if err != nil {
		return nil, err
	}

	tickets, err := repo.relations.ticketsByOrder(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	now := repo.now()
	details := make([]*entity.StoreOrderDetail, 0, len(storeOrderRows))
	for _, row := range storeOrderRows {
		orderM, ok := orders[row.OrderID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("store order", row.ID, "order")
		}

		storeM, ok := stores[row.StoreID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("store order", row.ID, "store")
		}

		customerM, ok := customers[orderM.BuyerID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("store order", row.ID, "customer")
		}

		deliveryM, ok := addresses[orderM.DeliveryAddressID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("store order", row.ID, "delivery_address")
		}

		detail := &entity.StoreOrderDetail{
			StoreOrder:            *toStoreOrderDomain(row),
			Order:                 toOrderDomain(orderM),
			Store:                 toStoreDomain(storeM),
			Customer:              toUserDomain(customerM),
			DeliveryAddress:       toAddressDomain(deliveryM),
			Items:                 items[row.ID],
			Payment:               payments[row.ID],
			SupportTicket:         tickets[row.OrderID],
			EstimatedDeliveryTime: estimatedMinutes(orderM.EstimatedDeliveryDate, row.CreatedAt),
			IsDelayed:             delayedFlag(orderM.EstimatedDeliveryDate, entity.StoreOrderStatus(row.Status).IsTerminal(), now),
		}
		if shipmentM, ok := shipments[row.ID]; ok {
			detail.Shipment = toShipmentDomain(shipmentM)
			if shipmentM.DriverID != nil {
				detail.Driver = drivers[*shipmentM.DriverID]
			}
		}
		if detail.Items == nil {
			detail.Items = []*entity.OrderItem{}
		}

		details = append(details, detail)
	}

	return details, nil
}

// storeOrderStatsRow is the scan target for the aggregate query.
type storeOrderStatsRow struct {
	TotalCount            int64
	AvgDurationMinutes    float64
	AvgPreparationMinutes float64
	OnTimePercentage      float64
	TotalRevenue          float64
}

const storeOrderStatsQuery = `
SELECT
	COUNT(DISTINCT store_orders.id) AS total_count,
	COALESCE(AVG(EXTRACT(EPOCH FROM (store_orders.updated_at - store_orders.created_at)) / 60)
		FILTER (WHERE store_orders.status = 'delivered'), 0) AS avg_duration_minutes,
	COALESCE(AVG(EXTRACT(EPOCH FROM (sh.created_at - store_orders.created_at)) / 60), 0) AS avg_preparation_minutes,
	COALESCE(COUNT(*) FILTER (WHERE store_orders.status = 'delivered'
			AND o.estimated_delivery_date IS NOT NULL
			AND store_orders.updated_at <= o.estimated_delivery_date) * 100.0
		/ NULLIF(COUNT(*) FILTER (WHERE store_orders.status = 'delivered'), 0), 0) AS on_time_percentage,
	COALESCE(SUM(store_orders.total), 0) AS total_revenue
FROM store_orders
LEFT JOIN orders o ON o.id = store_orders.order_id
LEFT JOIN shipments sh ON sh.store_order_id = store_orders.id
WHERE `

const storeOrderDistributionQuery = `
SELECT store_orders.status AS status, COUNT(DISTINCT store_orders.id) AS count
FROM store_orders
WHERE `

// AggregateStoreOrderStats computes the stats payload over every row
// the predicate matches, without pagination.
func (repo *storeOrderSearchRepository) AggregateStoreOrderStats(ctx context.Context, pred query.Predicate) (*entity.StoreOrderStats, error) {
	clause, args := pred.Clause()

	var row storeOrderStatsRow
	if err := repo.db.WithContext(ctx).
		Raw(storeOrderStatsQuery+clause, args...).
		Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate store order stats")
	}

	var distributionRows []*statusCountRow
	if err := repo.db.WithContext(ctx).
		Raw(storeOrderDistributionQuery+clause+" GROUP BY store_orders.status", args...).
		Scan(&distributionRows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate store order status distribution")
	}

	stats := entity.ZeroStoreOrderStats()
	stats.TotalCount = row.TotalCount
	stats.AvgDurationMinutes = row.AvgDurationMinutes
	stats.AvgPreparationMinutes = row.AvgPreparationMinutes
	stats.OnTimePercentage = row.OnTimePercentage
	stats.TotalRevenue = row.TotalRevenue
	for _, dist := range distributionRows {
		stats.StatusDistribution[entity.StoreOrderStatus(dist.Status)] = dist.Count
	}

	return stats, nil
}
