package repository

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/query"
)

// ShipmentSearchRepository executes the three read passes of a
// shipment search under one composed predicate: the distinct-root
// count, the paged assembly of nested rows, and the aggregate stats.
// All three see exactly the rows the predicate authorizes.
type ShipmentSearchRepository interface {
	// CountShipments returns COUNT(DISTINCT shipments.id) under the predicate.
	CountShipments(ctx context.Context, pred query.Predicate) (int64, error)

	// FindShipmentDetails returns one assembled row per shipment under
	// the predicate, ordered by created_at DESC, id DESC. Nested
	// collections never fan out the root row count. A shipment missing
	// a required relation aborts the call with a data-integrity error.
	FindShipmentDetails(ctx context.Context, pred query.Predicate, limit, offset int) ([]*entity.ShipmentDetail, error)

	// AggregateShipmentStats computes the stats payload under the same
	// predicate, without pagination.
	AggregateShipmentStats(ctx context.Context, pred query.Predicate) (*entity.ShipmentStats, error)
}
