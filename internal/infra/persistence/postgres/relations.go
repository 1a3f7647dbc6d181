package postgres

import (
	"context"
	"time"

	"souk/internal/domain/entity"
	"souk/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// relationLoader batches the nested-relation reads shared by the
// search repositories. Every loader issues one IN query per relation
// for the whole page and groups the rows in memory, so nested
// collections never fan out the root row count.
type relationLoader struct {
	db *gorm.DB
}

func (l *relationLoader) storeOrdersByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.StoreOrderModel, error) {
	result := make(map[uuid.UUID]*model.StoreOrderModel, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*model.StoreOrderModel
	if err := l.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load store orders by id")
	}

	for _, row := range rows {
		result[row.ID] = row
	}

	return result, nil
}

func (l *relationLoader) storeOrdersByOrder(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID][]*model.StoreOrderModel, error) {
	result := make(map[uuid.UUID][]*model.StoreOrderModel, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	var rows []*model.StoreOrderModel
	if err := l.db.WithContext(ctx).
		Where("order_id IN ?", orderIDs).
		Order("created_at ASC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load store orders by order")
	}

	for _, row := range rows {
		result[row.OrderID] = append(result[row.OrderID], row)
	}

	return result, nil
}

func (l *relationLoader) ordersByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.OrderModel, error) {
	result := make(map[uuid.UUID]*model.OrderModel, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*model.OrderModel
	if err := l.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load orders by id")
	}

	for _, row := range rows {
		result[row.ID] = row
	}

	return result, nil
}

func (l *relationLoader) usersByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.UserModel, error) {
	result := make(map[uuid.UUID]*model.UserModel, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*model.UserModel
	if err := l.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load users by id")
	}

	for _, row := range rows {
		result[row.ID] = row
	}

	return result, nil
}

func (l *relationLoader) storesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.StoreModel, error) {
	result := make(map[uuid.UUID]*model.StoreModel, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*model.StoreModel
	if err := l.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load stores by id")
	}

	for _, row := range rows {
		result[row.ID] = row
	}

	return result, nil
}

func (l *relationLoader) addressesByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*model.AddressModel, error) {
	result := make(map[uuid.UUID]*model.AddressModel, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var rows []*model.AddressModel
	if err := l.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load addresses by id")
	}

	for _, row := range rows {
		result[row.ID] = row
	}

	return result, nil
}

func (l *relationLoader) shipmentsByStoreOrder(ctx context.Context, storeOrderIDs []uuid.UUID) (map[uuid.UUID]*model.ShipmentModel, error) {
	result := make(map[uuid.UUID]*model.ShipmentModel, len(storeOrderIDs))
	if len(storeOrderIDs) == 0 {
		return result, nil
	}

	var rows []*model.ShipmentModel
	if err := l.db.WithContext(ctx).
		Where("store_order_id IN ?", storeOrderIDs).
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load shipments by store order")
	}

	for _, row := range rows {
		result[row.StoreOrderID] = row
	}

	return result, nil
}

// driverInfoByID resolves drivers together with their last known
// location. The location is the most recent ping per driver, picked
// with DISTINCT ON so one query covers the whole page.
func (l *relationLoader) driverInfoByID(ctx context.Context, ids []uuid.UUID) (map[uuid.UUID]*entity.DriverInfo, error) {
	result := make(map[uuid.UUID]*entity.DriverInfo, len(ids))
	if len(ids) == 0 {
		return result, nil
	}

	var driverRows []*model.DriverModel
	if err := l.db.WithContext(ctx).
		Where("id IN ?", ids).
		Find(&driverRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load drivers by id")
	}

	var locationRows []*model.DriverLocationModel
	if err := l.db.WithContext(ctx).
		Raw("SELECT DISTINCT ON (driver_id) driver_id, latitude, longitude, recorded_at "+
			"FROM driver_locations WHERE driver_id IN ? ORDER BY driver_id, recorded_at DESC", ids).
		Scan(&locationRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load last driver locations")
	}

	locations := make(map[uuid.UUID]*entity.DriverLocation, len(locationRows))
	for _, row := range locationRows {
		locations[row.DriverID] = &entity.DriverLocation{
			DriverID:   row.DriverID,
			Latitude:   row.Latitude,
			Longitude:  row.Longitude,
			RecordedAt: row.RecordedAt,
		}
	}

	for _, row := range driverRows {
		result[row.ID] = &entity.DriverInfo{
			Driver:       *toDriverDomain(row),
			LastLocation: locations[row.ID],
		}
	}

	return result, nil
}

// itemsByStoreOrder loads order items with their products attached.
func (l *relationLoader) itemsByStoreOrder(ctx context.Context, storeOrderIDs []uuid.UUID) (map[uuid.UUID][]*entity.OrderItem, error) {
	result := make(map[uuid.UUID][]*entity.OrderItem, len(storeOrderIDs))
	if len(storeOrderIDs) == 0 {
		return result, nil
	}

	var itemRows []*model.OrderItemModel
	if err := l.db.WithContext(ctx).
		Where("store_order_id IN ?", storeOrderIDs).
		Order("created_at ASC").
		Find(&itemRows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load order items by store order")
	}

	productIDs := make([]uuid.UUID, 0, len(itemRows))
	seen := make(map[uuid.UUID]struct{}, len(itemRows))
	for _, row := range itemRows {
		if _, ok := seen[row.ProductID]; ok {
			continue
		}
		seen[row.ProductID] = struct{}{}
		productIDs = append(productIDs, row.ProductID)
	}

	products := make(map[uuid.UUID]*model.ProductModel, len(productIDs))
	if len(productIDs) > 0 {
		var productRows []*model.ProductModel
		if err := l.db.WithContext(ctx).
			Where("id IN ?", productIDs).
			Find(&productRows).Error; err != nil {
			return nil, errors.Wrap(err, "failed to load products by id")
		}
		for _, row := range productRows {
			products[row.ID] = row
		}
	}

	for _, row := range itemRows {
		item := toOrderItemDomain(row)
		item.Product = toProductDomain(products[row.ProductID])
		result[row.StoreOrderID] = append(result[row.StoreOrderID], item)
	}

	return result, nil
}

// paymentsByStoreOrder keeps the most recent payment per sub-order.
func (l *relationLoader) paymentsByStoreOrder(ctx context.Context, storeOrderIDs []uuid.UUID) (map[uuid.UUID]*entity.Payment, error) {
	result := make(map[uuid.UUID]*entity.Payment, len(storeOrderIDs))
	if len(storeOrderIDs) == 0 {
		return result, nil
	}

	var rows []*model.PaymentModel
	if err := l.db.WithContext(ctx).
		Where("store_order_id IN ?", storeOrderIDs).
		Order("created_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load payments by store order")
	}

	for _, row := range rows {
		if _, ok := result[row.StoreOrderID]; ok {
			continue
		}
		result[row.StoreOrderID] = toPaymentDomain(row)
	}

	return result, nil
}

// trackingByShipment returns the tracking history per shipment,
// ordered most recent first.
func (l *relationLoader) trackingByShipment(ctx context.Context, shipmentIDs []uuid.UUID) (map[uuid.UUID][]*entity.TrackingPoint, error) {
	result := make(map[uuid.UUID][]*entity.TrackingPoint, len(shipmentIDs))
	if len(shipmentIDs) == 0 {
		return result, nil
	}

	var rows []*model.TrackingPointModel
	if err := l.db.WithContext(ctx).
		Where("shipment_id IN ?", shipmentIDs).
		Order("recorded_at DESC").
		Find(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load tracking points by shipment")
	}

	for _, row := range rows {
		result[row.ShipmentID] = append(result[row.ShipmentID], toTrackingPointDomain(row))
	}

	return result, nil
}

// supportTicketRow is the flat scan target for the ticket association
// query, carrying the order id the ticket text matched on.
type supportTicketRow struct {
	OrderID     uuid.UUID
	ID          uuid.UUID
	UserID      uuid.UUID
	Subject     string
	Description string
	Status      string
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// ticketsByOrder resolves the best-effort support-ticket association.
// Tickets carry no foreign key; the support flow writes
// "Commande N° <order id>" into the description, so the join is a
// substring match and keeps only the most recent ticket per order.
func (l *relationLoader) ticketsByOrder(ctx context.Context, orderIDs []uuid.UUID) (map[uuid.UUID]*entity.SupportTicket, error) {
	result := make(map[uuid.UUID]*entity.SupportTicket, len(orderIDs))
	if len(orderIDs) == 0 {
		return result, nil
	}

	var rows []*supportTicketRow
	if err := l.db.WithContext(ctx).
		Raw("SELECT o.id AS order_id, t.id, t.user_id, t.subject, t.description, t.status, t.created_at, t.updated_at "+
			"FROM support_tickets t "+
			"JOIN orders o ON t.description LIKE '%Commande N°' || o.id::text || '%' "+
			"WHERE o.id IN ? "+
			"ORDER BY o.id, t.created_at DESC", orderIDs).
		Scan(&rows).Error; err != nil {
		return nil, errors.Wrap(err, "failed to load support tickets by order")
	}

	for _, row := range rows {
		if _, ok := result[row.OrderID]; ok {
			continue
		}
		result[row.OrderID] = &entity.SupportTicket{
			ID:          row.ID,
			UserID:      row.UserID,
			Subject:     row.Subject,
			Description: row.Description,
			Status:      row.Status,
			CreatedAt:   row.CreatedAt,
			UpdatedAt:   row.UpdatedAt,
		}
	}

	return result, nil
}
