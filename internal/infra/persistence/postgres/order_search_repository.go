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

// orderSearchRepository implements the repository.OrderSearchRepository interface.
type orderSearchRepository struct {
	db        *gorm.DB
	relations *relationLoader
	now       func() time.Time
}

// NewOrderSearchRepository is the constructor for orderSearchRepository.
func NewOrderSearchRepository(db *gorm.DB) repository.OrderSearchRepository {
	return &orderSearchRepository{
		db:        db,
		relations: &relationLoader{db: db},
		now:       time.Now,
	}
}

// CountOrders returns the number of distinct orders the predicate
// matches.
func (repo *orderSearchRepository) CountOrders(ctx context.Context, pred query.Predicate) (int64, error) {
	clause, args := pred.Clause()

	var total int64
	if err := repo.db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT orders.id) FROM orders WHERE "+clause, args...).
		Scan(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count orders")
	}

	return total, nil
}

// FindOrderDetails loads one page of orders and assembles their nested
// store orders and relations with batched IN queries. Each child
// store order carries its own store, shipment, driver, items and
// payment; customer, address and ticket stay on the parent.
func (repo *orderSearchRepository) FindOrderDetails(ctx context.Context, pred query.Predicate, limit, offset int) ([]*entity.OrderDetail, error) {
	clause, args := pred.Clause()

	var orderRows []*model.OrderModel
	if err := repo.db.WithContext(ctx).
		Table("orders").
		Where(clause, args...).
		Order("orders.created_at DESC, orders.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&orderRows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load order page")
	}

	if len(orderRows) == 0 {
		return []*entity.OrderDetail{}, nil
	}

	orderIDs := make([]uuid.UUID, 0, len(orderRows))
	buyerIDs := make([]uuid.UUID, 0, len(orderRows))
	deliveryAddressIDs := make([]uuid.UUID, 0, len(orderRows))
	for _, row := range orderRows {
		orderIDs = append(orderIDs, row.ID)
		buyerIDs = append(buyerIDs, row.BuyerID)
		deliveryAddressIDs = append(deliveryAddressIDs, row.DeliveryAddressID)
	}

	customers, err := repo.relations.usersByID(ctx, buyerIDs)
	if err != nil {
		return nil, err
	}

	addresses, err := repo.relations.addressesByID(ctx, deliveryAddressIDs)
	if err != nil {
		return nil, err
	}

	storeOrders, err := repo.relations.storeOrdersByOrder(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	storeOrderIDs := make([]uuid.UUID, 0, len(orderRows))
	storeIDs := make([]uuid.UUID, 0, len(orderRows))
	for _, children := range storeOrders {
		for _, child := range children {
			storeOrderIDs = append(storeOrderIDs, child.ID)
			storeIDs = append(storeIDs, child.StoreID)
		}
	}

	stores, err := repo.relations.storesByID(ctx, storeIDs)
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
	details := make([]*entity.OrderDetail, 0, len(orderRows))
	for _, row := range orderRows {
		customerM, ok := customers[row.BuyerID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("order", row.ID, "customer")
		}

		deliveryM, ok := addresses[row.DeliveryAddressID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("order", row.ID, "delivery_address")
		}

		children := make([]*entity.StoreOrderDetail, 0, len(storeOrders[row.ID]))
		for _, childM := range storeOrders[row.ID] {
			storeM, ok := stores[childM.StoreID]
			if !ok {
				return nil, domainerrors.NewDataIntegrityError("order", row.ID, "store")
			}

			child := &entity.StoreOrderDetail{
				StoreOrder:            *toStoreOrderDomain(childM),
				Store:                 toStoreDomain(storeM),
				Items:                 items[childM.ID],
				Payment:               payments[childM.ID],
				EstimatedDeliveryTime: estimatedMinutes(row.EstimatedDeliveryDate, childM.CreatedAt),
				IsDelayed:             delayedFlag(row.EstimatedDeliveryDate, entity.StoreOrderStatus(childM.Status).IsTerminal(), now),
			}
			if shipmentM, ok := shipments[childM.ID]; ok {
				child.Shipment = toShipmentDomain(shipmentM)
				if shipmentM.DriverID != nil {
					child.Driver = drivers[*shipmentM.DriverID]
				}
			}
			if child.Items == nil {
				child.Items = []*entity.OrderItem{}
			}

			children = append(children, child)
		}

		detail := &entity.OrderDetail{
			Order:                 *toOrderDomain(row),
			Customer:              toUserDomain(customerM),
			DeliveryAddress:       toAddressDomain(deliveryM),
			StoreOrders:           children,
			SupportTicket:         tickets[row.ID],
			EstimatedDeliveryTime: estimatedMinutes(row.EstimatedDeliveryDate, row.CreatedAt),
			IsDelayed:             delayedFlag(row.EstimatedDeliveryDate, entity.OrderStatus(row.Status).IsTerminal(), now),
		}

		details = append(details, detail)
	}

	return details, nil
}

// orderStatsRow is the scan target for the aggregate query.
type orderStatsRow struct {
	TotalCount            int64
	AvgDurationMinutes    float64
	AvgPreparationMinutes float64
	OnTimePercentage      float64
	TotalRevenue          float64
}

// Child aggregates go through correlated subqueries rather than joins
// so the per-order averages are not skewed by multi-store fanout.
const orderStatsQuery = `
SELECT
	COUNT(DISTINCT orders.id) AS total_count,
	COALESCE(AVG(EXTRACT(EPOCH FROM (orders.updated_at - orders.created_at)) / 60)
		FILTER (WHERE orders.status = 'delivered'), 0) AS avg_duration_minutes,
	COALESCE(AVG((SELECT EXTRACT(EPOCH FROM (MIN(sh.created_at) - orders.created_at)) / 60
		FROM shipments sh JOIN store_orders so ON so.id = sh.store_order_id
		WHERE so.order_id = orders.id)), 0) AS avg_preparation_minutes,
	COALESCE(COUNT(*) FILTER (WHERE orders.status = 'delivered'
			AND orders.estimated_delivery_date IS NOT NULL
			AND orders.updated_at <= orders.estimated_delivery_date) * 100.0
		/ NULLIF(COUNT(*) FILTER (WHERE orders.status = 'delivered'), 0), 0) AS on_time_percentage,
	COALESCE(SUM((SELECT SUM(so2.total) FROM store_orders so2 WHERE so2.order_id = orders.id)), 0) AS total_revenue
FROM orders
WHERE `

const orderDistributionQuery = `
SELECT orders.status AS status, COUNT(DISTINCT orders.id) AS count
FROM orders
WHERE `

// AggregateOrderStats computes the stats payload over every row the
// predicate matches, without pagination.
func (repo *orderSearchRepository) AggregateOrderStats(ctx context.Context, pred query.Predicate) (*entity.OrderStats, error) {
	clause, args := pred.Clause()

	var row orderStatsRow
	if err := repo.db.WithContext(ctx).
		Raw(orderStatsQuery+clause, args...).
		Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate order stats")
	}

	var distributionRows []*statusCountRow
	if err := repo.db.WithContext(ctx).
		Raw(orderDistributionQuery+clause+" GROUP BY orders.status", args...).
		Scan(&distributionRows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate order status distribution")
	}

	stats := entity.ZeroOrderStats()
	stats.TotalCount = row.TotalCount
	stats.AvgDurationMinutes = row.AvgDurationMinutes
	stats.AvgPreparationMinutes = row.AvgPreparationMinutes
	stats.OnTimePercentage = row.OnTimePercentage
	stats.TotalRevenue = row.TotalRevenue
	for _, dist := range distributionRows {
		stats.StatusDistribution[entity.OrderStatus(dist.Status)] = dist.Count
	}

	return stats, nil
}
