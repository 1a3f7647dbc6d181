package impl

import (
	"context"

	"souk/internal/domain/entity"
	"souk/internal/domain/query"
	"souk/internal/domain/repository"
	"souk/internal/usecase"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/fx"
	"golang.org/x/sync/errgroup"
)

// estimatedMinutesExpr computes the minutes between the parent order's
// delivery estimate and the shipment's creation. It is derived, not
// stored, so it joins up through the owning sub-order.
const shipmentEstimatedMinutesExpr = "(SELECT EXTRACT(EPOCH FROM (o.estimated_delivery_date - shipments.created_at)) / 60 " +
	"FROM store_orders so JOIN orders o ON o.id = so.order_id WHERE so.id = shipments.store_order_id)"

// shipmentTicketExistsSubquery is the best-effort support-ticket
// association: the support flow writes "Commande N° <order id>" into
// the free-form description, so the join is a text match. Known
// limitation: substring ids can collide; a real foreign key is needed
// before this can be hardened.
const shipmentTicketExistsSubquery = "SELECT 1 FROM support_tickets t JOIN store_orders so ON so.id = shipments.store_order_id " +
	"WHERE t.description LIKE '%Commande N°' || so.order_id::text || '%'"

type shipmentSearchService struct {
	searchRepo repository.ShipmentSearchRepository
	scopes     *scopeResolver
}

// ShipmentSearchServiceParams holds dependencies for the shipment search service, injected by Fx.
type ShipmentSearchServiceParams struct {
	fx.In

	SearchRepo repository.ShipmentSearchRepository
	DriverRepo repository.DriverRepository
	StoreRepo  repository.StoreRepository
}

// NewShipmentSearchService creates a new shipment search service instance
func NewShipmentSearchService(params ShipmentSearchServiceParams) usecase.ShipmentSearchUsecase {
	return &shipmentSearchService{
		searchRepo: params.SearchRepo,
		scopes:     newScopeResolver(params.DriverRepo, params.StoreRepo),
	}
}

// SearchShipments runs the full search pipeline: scope, filters,
// count, pagination, then assembly and stats concurrently under the
// same composed predicate.
func (s *shipmentSearchService) SearchShipments(ctx context.Context, callerID uuid.UUID, role entity.Role, filters *usecase.ShipmentFilters, page usecase.PageRequest) (*usecase.ShipmentSearchResult, error) {
	scope, err := s.scopes.ShipmentScope(ctx, callerID, role)
	if err != nil {
		return nil, err
	}

	pred := query.And(append([]query.Predicate{scope}, compileShipmentFilters(filters)...)...)

	total, err := s.searchRepo.CountShipments(ctx, pred)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count shipments")
	}

	window := paginate(page, total)
	if total == 0 {
		return &usecase.ShipmentSearchResult{
			Records:    []*entity.ShipmentDetail{},
			Total:      0,
			Page:       window.page,
			TotalPages: window.totalPages,
			Stats:      entity.ZeroShipmentStats(),
		}, nil
	}

	var (
		records []*entity.ShipmentDetail
		stats   *entity.ShipmentStats
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var assembleErr error
		records, assembleErr = s.searchRepo.FindShipmentDetails(groupCtx, pred, window.perPage, window.offset)

		return assembleErr
	})
	group.Go(func() error {
		var statsErr error
		stats, statsErr = s.searchRepo.AggregateShipmentStats(groupCtx, pred)

		return statsErr
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &usecase.ShipmentSearchResult{
		Records:    records,
		Total:      total,
		Page:       window.page,
		TotalPages: window.totalPages,
		Stats:      stats,
	}, nil
}

// compileShipmentFilters translates the sparse filter object into
// predicates. Absent fields yield no predicate; everything is ANDed
// with the access scope by the caller.
func compileShipmentFilters(filters *usecase.ShipmentFilters) []query.Predicate {
	if filters == nil {
		return nil
	}

	var preds []query.Predicate

	if len(filters.Statuses) > 0 {
		preds = append(preds, query.In("shipments.status", filters.Statuses))
	}
	if filters.DriverID != nil {
		preds = append(preds, query.Eq("shipments.driver_id", *filters.DriverID))
	}
	if len(filters.PriorityLevels) > 0 {
		preds = append(preds, query.In("shipments.priority_level", filters.PriorityLevels))
	}
	preds = append(preds, compileDateRange("shipments.created_at", filters.DateRange)...)
	if filters.StoreID != nil {
		preds = append(preds, query.Exists(
			"SELECT 1 FROM store_orders so WHERE so.id = shipments.store_order_id AND so.store_id = ?",
			*filters.StoreID,
		))
	}
	if filters.MinEstimatedDeliveryMinutes != nil {
		preds = append(preds, query.Expr(shipmentEstimatedMinutesExpr+" >= ?", *filters.MinEstimatedDeliveryMinutes))
	}
	if filters.MaxEstimatedDeliveryMinutes != nil {
		preds = append(preds, query.Expr(shipmentEstimatedMinutesExpr+" <= ?", *filters.MaxEstimatedDeliveryMinutes))
	}
	if filters.HasSupportTicket != nil {
		if *filters.HasSupportTicket {
			preds = append(preds, query.Exists(shipmentTicketExistsSubquery))
		} else {
			preds = append(preds, query.NotExists(shipmentTicketExistsSubquery))
		}
	}

	return preds
}

// compileDateRange turns an optional inclusive range into zero, one or
// two bound predicates on the given column.
func compileDateRange(column string, dateRange *usecase.DateRange) []query.Predicate {
	if dateRange == nil {
		return nil
	}

	var preds []query.Predicate
	if dateRange.Start != nil {
		preds = append(preds, query.Gte(column, *dateRange.Start))
	}
	if dateRange.End != nil {
		preds = append(preds, query.Lte(column, *dateRange.End))
	}

	return preds
}
