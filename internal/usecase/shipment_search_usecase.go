package usecase

import (
	"context"

	"souk/internal/domain/entity"

	"github.com/google/uuid"
)

// ShipmentFilters is the sparse filter set of the shipment graph.
// Every field is optional; absent fields compile to no predicate.
type ShipmentFilters struct {
	Statuses                    []entity.ShipmentStatus `json:"statuses,omitempty"`
	DriverID                    *uuid.UUID              `json:"driverId,omitempty"`
	PriorityLevels              []string                `json:"priorityLevels,omitempty"`
	DateRange                   *DateRange              `json:"dateRange,omitempty"`
	StoreID                     *uuid.UUID              `json:"storeId,omitempty"`
	MinEstimatedDeliveryMinutes *int                    `json:"minEstimatedDeliveryMinutes,omitempty"`
	MaxEstimatedDeliveryMinutes *int                    `json:"maxEstimatedDeliveryMinutes,omitempty"`
	HasSupportTicket            *bool                   `json:"hasSupportTicket,omitempty"`
}

// ShipmentSearchResult is the single envelope returned by a shipment
// search: the page of assembled records plus pagination arithmetic and
// the stats computed over the whole authorized, filtered set.
type ShipmentSearchResult struct {
	Records    []*entity.ShipmentDetail `json:"records"`
	Total      int64                    `json:"total"`
	Page       int                      `json:"page"`
	TotalPages int                      `json:"totalPages"`
	Stats      *entity.ShipmentStats    `json:"stats"`
}

// ShipmentSearchUsecase is the role-aware shipment search surface.
type ShipmentSearchUsecase interface {
	// SearchShipments resolves the caller's access scope, applies the
	// filters, paginates deterministically and computes live stats over
	// the same authorized subset.
	SearchShipments(ctx context.Context, callerID uuid.UUID, role entity.Role, filters *ShipmentFilters, page PageRequest) (*ShipmentSearchResult, error)
}
