package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// StoreOrderFilters is the sparse filter set of the store-order graph.
// Payment filters join through the payments table rather than
// predicating on store-order columns.
type StoreOrderFilters struct {
	Statuses         []entity.StoreOrderStatus `json:"statuses,omitempty"`
	PaymentStatuses  []entity.PaymentStatus    `json:"paymentStatuses,omitempty"`
	PaymentMethods   []string                  `json:"paymentMethods,omitempty"`
	DateRange        *DateRange                `json:"dateRange,omitempty"`
	PaymentDateRange *DateRange                `json:"paymentDateRange,omitempty"`
	MinAmount        *float64                  `json:"minAmount,omitempty"`
	MaxAmount        *float64                  `json:"maxAmount,omitempty"`
	ShipmentStatuses []entity.ShipmentStatus   `json:"shipmentStatuses,omitempty"`
}

// StoreOrderSearchResult is the envelope returned by a store-order search.
type StoreOrderSearchResult struct {
	Records    []*entity.StoreOrderDetail `json:"records"`
	Total      int64                      `json:"total"`
	Page       int                        `json:"page"`
	TotalPages int                        `json:"totalPages"`
	Stats      *entity.StoreOrderStats    `json:"stats"`
}

// StoreOrderSearchUsecase is the role-aware store-order search surface.
type StoreOrderSearchUsecase interface {
	SearchStoreOrders(ctx context.Context, callerID uuid.UUID, role entity.Role, filters *StoreOrderFilters, page PageRequest) (*StoreOrderSearchResult, error)
}
