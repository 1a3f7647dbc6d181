package postgres

import (
	"time"

	"souk/internal/domain/entity"
	"souk/internal/infra/persistence/model"
)

// --- Mapper Functions ---

// toUserDomain converts a GORM UserModel to a domain User entity.
func toUserDomain(data *model.UserModel) *entity.User {
	if data == nil {
		return nil
	}

	return &entity.User{
		ID:        data.ID,
		Email:     data.Email,
		FullName:  data.FullName,
		Phone:     data.Phone,
		CreatedAt: data.CreatedAt,
		UpdatedAt: data.UpdatedAt,
	}
}

// toAddressDomain converts a GORM AddressModel to a domain Address entity.
func toAddressDomain(data *model.AddressModel) *entity.Address {
	if data == nil {
		return nil
	}

	return &entity.Address{
		ID:            data.ID,
		OwnerID:       data.OwnerID,
		RecipientName: data.RecipientName,
		Phone:         data.Phone,
		IsUrban:       data.IsUrban,
		Commune:       data.Commune,
		District:      data.District,
		Street:        data.Street,
		Prefecture:    data.Prefecture,
		SubPrefecture: data.SubPrefecture,
		Village:       data.Village,
		Landmark:      data.Landmark,
		Region:        data.Region,
		Formatted:     data.Formatted,
		Instructions:  data.Instructions,
		PhotoURL:      data.PhotoURL,
		CreatedAt:     data.CreatedAt,
		UpdatedAt:     data.UpdatedAt,
	}
}

// toOrderDomain converts a GORM OrderModel to a domain Order entity.
func toOrderDomain(data *model.OrderModel) *entity.Order {
	if data == nil {
		return nil
	}

	return &entity.Order{
		ID:                    data.ID,
		BuyerID:               data.BuyerID,
		DeliveryAddressID:     data.DeliveryAddressID,
		Status:                entity.OrderStatus(data.Status),
		EstimatedDeliveryDate: data.EstimatedDeliveryDate,
		CreatedAt:             data.CreatedAt,
		UpdatedAt:             data.UpdatedAt,
	}
}

// toStoreOrderDomain converts a GORM StoreOrderModel to a domain StoreOrder entity.
func toStoreOrderDomain(data *model.StoreOrderModel) *entity.StoreOrder {
	if data == nil {
		return nil
	}

	return &entity.StoreOrder{
		ID:          data.ID,
		OrderID:     data.OrderID,
		StoreID:     data.StoreID,
		Subtotal:    data.Subtotal,
		DeliveryFee: data.DeliveryFee,
		Total:       data.Total,
		Status:      entity.StoreOrderStatus(data.Status),
		ShipmentID:  data.ShipmentID,
		CreatedAt:   data.CreatedAt,
		UpdatedAt:   data.UpdatedAt,
	}
}

// toShipmentDomain converts a GORM ShipmentModel to a domain Shipment entity.
func toShipmentDomain(data *model.ShipmentModel) *entity.Shipment {
	if data == nil {
		return nil
	}

	return &entity.Shipment{
		ID:              data.ID,
		StoreOrderID:    data.StoreOrderID,
		OriginAddressID: data.OriginAddressID,
		DriverID:        data.DriverID,
		Status:          entity.ShipmentStatus(data.Status),
		PriorityLevel:   data.PriorityLevel,
		DeliveryNotes:   data.DeliveryNotes,
		CreatedAt:       data.CreatedAt,
		UpdatedAt:       data.UpdatedAt,
	}
}

// toOrderItemDomain converts a GORM OrderItemModel to a domain OrderItem entity.
func toOrderItemDomain(data *model.OrderItemModel) *entity.OrderItem {
	if data == nil {
		return nil
	}

	return &entity.OrderItem{
		ID:           data.ID,
		StoreOrderID: data.StoreOrderID,
		ProductID:    data.ProductID,
		VariantID:    data.VariantID,
		Quantity:     data.Quantity,
		UnitPrice:    data.UnitPrice,
		CreatedAt:    data.CreatedAt,
	}
}

// toProductDomain converts a GORM ProductModel to a domain Product entity.
func toProductDomain(data *model.ProductModel) *entity.Product {
	if data == nil {
		return nil
	}

	return &entity.Product{
		ID:       data.ID,
		StoreID:  data.StoreID,
		Name:     data.Name,
		ImageURL: data.ImageURL,
		Price:    data.Price,
	}
}

// toPaymentDomain converts a GORM PaymentModel to a domain Payment entity.
func toPaymentDomain(data *model.PaymentModel) *entity.Payment {
	if data == nil {
		return nil
	}

	return &entity.Payment{
		ID:            data.ID,
		StoreOrderID:  data.StoreOrderID,
		Amount:        data.Amount,
		Status:        entity.PaymentStatus(data.Status),
		Method:        data.Method,
		TransactionID: data.TransactionID,
		CreatedAt:     data.CreatedAt,
	}
}

// toTrackingPointDomain converts a GORM TrackingPointModel to a domain TrackingPoint entity.
func toTrackingPointDomain(data *model.TrackingPointModel) *entity.TrackingPoint {
	if data == nil {
		return nil
	}

	return &entity.TrackingPoint{
		ShipmentID: data.ShipmentID,
		Latitude:   data.Latitude,
		Longitude:  data.Longitude,
		RecordedAt: data.RecordedAt,
	}
}

// --- Derived presentation fields ---

// estimatedMinutes returns the whole minutes between a row's creation
// and the order's delivery estimate, or nil without an estimate.
func estimatedMinutes(estimate *time.Time, createdAt time.Time) *int {
	if estimate == nil {
		return nil
	}

	minutes := int(estimate.Sub(createdAt).Minutes())

	return &minutes
}

// delayedFlag is set only when the estimate has passed while the row
// is still in a non-terminal status. Rows that are not late carry no
// flag at all rather than an explicit false.
func delayedFlag(estimate *time.Time, terminal bool, now time.Time) *bool {
	if estimate == nil || terminal || !now.After(*estimate) {
		return nil
	}

	delayed := true

	return &delayed
}
