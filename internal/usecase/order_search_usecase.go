package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// OrderFilters is the sparse filter set of the top-level order graph.
// Amount bounds apply to the sum of the order's store-order totals;
// payment filters join through store orders into payments.
type OrderFilters struct {
	Statuses         []entity.OrderStatus   `json:"statuses,omitempty"`
	PaymentStatuses  []entity.PaymentStatus `json:"paymentStatuses,omitempty"`
	PaymentMethods   []string               `json:"paymentMethods,omitempty"`
	DateRange        *DateRange             `json:"dateRange,omitempty"`
	PaymentDateRange *DateRange             `json:"paymentDateRange,omitempty"`
	MinAmount        *float64               `json:"minAmount,omitempty"`
	MaxAmount        *float64               `json:"maxAmount,omitempty"`
}

// OrderSearchResult is the envelope returned by an order search.
type OrderSearchResult struct {
	Records    []*entity.OrderDetail `json:"records"`
	Total      int64                 `json:"total"`
	Page       int                   `json:"page"`
	TotalPages int                   `json:"totalPages"`
	Stats      *entity.OrderStats    `json:"stats"`
}

// OrderSearchUsecase is the role-aware top-level order search surface.
// Only stores and back-office staff see this graph; buyers use the
// storefront's own order history instead.
type OrderSearchUsecase interface {
	SearchOrders(ctx context.Context, callerID uuid.UUID, role entity.Role, filters *OrderFilters, page PageRequest) (*OrderSearchResult, error)
}
