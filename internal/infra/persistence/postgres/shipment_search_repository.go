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

// statusCountRow is the scan target for the per-status distribution
// queries shared by the search repositories.
type statusCountRow struct {
	Status string
	Count  int64
}

// shipmentSearchRepository implements the repository.ShipmentSearchRepository interface.
type shipmentSearchRepository struct {
	db        *gorm.DB
	relations *relationLoader
	now       func() time.Time
}

// NewShipmentSearchRepository is the constructor for shipmentSearchRepository.
func NewShipmentSearchRepository(db *gorm.DB) repository.ShipmentSearchRepository {
	return &shipmentSearchRepository{
		db:        db,
		relations: &relationLoader{db: db},
		now:       time.Now,
	}
}

// CountShipments returns the number of distinct shipments the
// predicate matches.
func (repo *shipmentSearchRepository) CountShipments(ctx context.Context, pred query.Predicate) (int64, error) {
	clause, args := pred.Clause()

	var total int64
	if err := repo.db.WithContext(ctx).
		Raw("SELECT COUNT(DISTINCT shipments.id) FROM shipments WHERE "+clause, args...).
		Scan(&total).Error; err != nil {
		return 0, domainerrors.NewDatabaseExecuteError(err, "failed to count shipments")
	}

	return total, nil
}

// FindShipmentDetails loads one page of shipments and assembles their
// nested relations with batched IN queries.
func (repo *shipmentSearchRepository) FindShipmentDetails(ctx context.Context, pred query.Predicate, limit, offset int) ([]*entity.ShipmentDetail, error) {
	clause, args := pred.Clause()

	var shipmentRows []*model.ShipmentModel
	if err := repo.db.WithContext(ctx).
		Table("shipments").
		Where(clause, args...).
		Order("shipments.created_at DESC, shipments.id DESC").
		Limit(limit).
		Offset(offset).
		Find(&shipmentRows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to load shipment page")
	}

	if len(shipmentRows) == 0 {
		return []*entity.ShipmentDetail{}, nil
	}

	shipmentIDs := make([]uuid.UUID, 0, len(shipmentRows))
	storeOrderIDs := make([]uuid.UUID, 0, len(shipmentRows))
	originAddressIDs := make([]uuid.UUID, 0, len(shipmentRows))
	driverIDs := make([]uuid.UUID, 0, len(shipmentRows))
	for _, row := range shipmentRows {
		shipmentIDs = append(shipmentIDs, row.ID)
		storeOrderIDs = append(storeOrderIDs, row.StoreOrderID)
		originAddressIDs = append(originAddressIDs, row.OriginAddressID)
		if row.DriverID != nil {
			driverIDs = append(driverIDs, *row.DriverID)
		}
	}

	storeOrders, err := repo.relations.storeOrdersByID(ctx, storeOrderIDs)
	if err != nil {
		return nil, err
	}

	orderIDs := make([]uuid.UUID, 0, len(storeOrders))
	storeIDs := make([]uuid.UUID, 0, len(storeOrders))
	for _, row := range storeOrders {
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

	addresses, err := repo.relations.addressesByID(ctx, append(originAddressIDs, deliveryAddressIDs...))
	if err != nil {
		return nil, err
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

	tracking, err := repo.relations.trackingByShipment(ctx, shipmentIDs)
	if err != nil {
		return nil, err
	}

	tickets, err := repo.relations.ticketsByOrder(ctx, orderIDs)
	if err != nil {
		return nil, err
	}

	now := repo.now()
	details := make([]*entity.ShipmentDetail, 0, len(shipmentRows))
	for _, row := range shipmentRows {
		storeOrderM, ok := storeOrders[row.StoreOrderID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("shipment", row.ID, "store_order")
		}

		orderM, ok := orders[storeOrderM.OrderID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("shipment", row.ID, "order")
		}

		storeM, ok := stores[storeOrderM.StoreID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("shipment", row.ID, "store")
		}

		customerM, ok := customers[orderM.BuyerID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("shipment", row.ID, "customer")
		}

		originM, ok := addresses[row.OriginAddressID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("shipment", row.ID, "origin_address")
		}

		deliveryM, ok := addresses[orderM.DeliveryAddressID]
		if !ok {
			return nil, domainerrors.NewDataIntegrityError("shipment", row.ID, "delivery_address")
		}

		detail := &entity.ShipmentDetail{
			Shipment:              *toShipmentDomain(row),
			StoreOrder:            toStoreOrderDomain(storeOrderM),
			Order:                 toOrderDomain(orderM),
			Store:                 toStoreDomain(storeM),
			Customer:              toUserDomain(customerM),
			OriginAddress:         toAddressDomain(originM),
			DeliveryAddress:       toAddressDomain(deliveryM),
			Items:                 items[row.StoreOrderID],
			Payment:               payments[row.StoreOrderID],
			TrackingHistory:       tracking[row.ID],
			SupportTicket:         tickets[storeOrderM.OrderID],
			EstimatedDeliveryTime: estimatedMinutes(orderM.EstimatedDeliveryDate, row.CreatedAt),
			IsDelayed:             delayedFlag(orderM.EstimatedDeliveryDate, entity.ShipmentStatus(row.Status).IsTerminal(), now),
		}
		if row.DriverID != nil {
			detail.Driver = drivers[*row.DriverID]
		}
		if detail.Items == nil {
			detail.Items = []*entity.OrderItem{}
		}
		if detail.TrackingHistory == nil {
			detail.TrackingHistory = []*entity.TrackingPoint{}
		}

		details = append(details, detail)
	}

	return details, nil
}

// shipmentStatsRow is the scan target for the aggregate query.
type shipmentStatsRow struct {
	TotalCount         int64
	AvgDurationMinutes float64
	OnTimePercentage   float64
	TotalDeliveryFees  float64
}

const shipmentStatsQuery = `
SELECT
	COUNT(DISTINCT shipments.id) AS total_count,
	COALESCE(AVG(EXTRACT(EPOCH FROM (shipments.updated_at - shipments.created_at)) / 60)
		FILTER (WHERE shipments.status = 'delivered'), 0) AS avg_duration_minutes,
	COALESCE(COUNT(*) FILTER (WHERE shipments.status = 'delivered'
			AND o.estimated_delivery_date IS NOT NULL
			AND shipments.updated_at <= o.estimated_delivery_date) * 100.0
		/ NULLIF(COUNT(*) FILTER (WHERE shipments.status = 'delivered'), 0), 0) AS on_time_percentage,
	COALESCE(SUM(so.delivery_fee), 0) AS total_delivery_fees
FROM shipments
LEFT JOIN store_orders so ON so.id = shipments.store_order_id
LEFT JOIN orders o ON o.id = so.order_id
WHERE `

const shipmentDistributionQuery = `
SELECT shipments.status AS status, COUNT(DISTINCT shipments.id) AS count
FROM shipments
WHERE `

// AggregateShipmentStats computes the stats payload over every row the
// predicate matches, without pagination. The status distribution is
// zero-filled over the known statuses; unknown stored values still get
// their own bucket.
func (repo *shipmentSearchRepository) AggregateShipmentStats(ctx context.Context, pred query.Predicate) (*entity.ShipmentStats, error) {
	clause, args := pred.Clause()

	var row shipmentStatsRow
	if err := repo.db.WithContext(ctx).
		Raw(shipmentStatsQuery+clause, args...).
		Scan(&row).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate shipment stats")
	}

	var distributionRows []*statusCountRow
	if err := repo.db.WithContext(ctx).
		Raw(shipmentDistributionQuery+clause+" GROUP BY shipments.status", args...).
		Scan(&distributionRows).Error; err != nil {
		return nil, domainerrors.NewDatabaseExecuteError(err, "failed to aggregate shipment status distribution")
	}

	stats := entity.ZeroShipmentStats()
	stats.TotalCount = row.TotalCount
	stats.AvgDurationMinutes = row.AvgDurationMinutes
	stats.OnTimePercentage = row.OnTimePercentage
	stats.TotalDeliveryFees = row.TotalDeliveryFees
	for _, dist := range distributionRows {
		stats.StatusDistribution[entity.ShipmentStatus(dist.Status)] = dist.Count
	}

	return stats, nil
}
