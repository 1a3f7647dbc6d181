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

type storeOrderSearchService struct {
	searchRepo repository.StoreOrderSearchRepository
	scopes     *scopeResolver
}

// StoreOrderSearchServiceParams holds dependencies for the store-order search service, injected by Fx.
type StoreOrderSearchServiceParams struct {
	fx.In

	SearchRepo repository.StoreOrderSearchRepository
	DriverRepo repository.DriverRepository
	StoreRepo  repository.StoreRepository
}

// NewStoreOrderSearchService creates a new store-order search service instance
func NewStoreOrderSearchService(params StoreOrderSearchServiceParams) usecase.StoreOrderSearchUsecase {
	return &storeOrderSearchService{
		searchRepo: params.SearchRepo,
		scopes:     newScopeResolver(params.DriverRepo, params.StoreRepo),
	}
}

// SearchStoreOrders runs the search pipeline for the store-order graph.
func (s *storeOrderSearchService) SearchStoreOrders(ctx context.Context, callerID uuid.UUID, role entity.Role, filters *usecase.StoreOrderFilters, page usecase.PageRequest) (*usecase.StoreOrderSearchResult, error) {
	scope, err := s.scopes.StoreOrderScope(ctx, callerID, role)
	if err != nil {
		return nil, err
	}

	pred := query.And(append([]query.Predicate{scope}, compileStoreOrderFilters(filters)...)...)

	total, err := s.searchRepo.CountStoreOrders(ctx, pred)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count store orders")
	}

	window := paginate(page, total)
	if total == 0 {
		return &usecase.StoreOrderSearchResult{
			Records:    []*entity.StoreOrderDetail{},
			Total:      0,
			Page:       window.page,
			TotalPages: window.totalPages,
			Stats:      entity.ZeroStoreOrderStats(),
		}, nil
	}

	var (
		records []*entity.StoreOrderDetail
		stats   *entity.StoreOrderStats
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var assembleErr error
		records, assembleErr = s.searchRepo.FindStoreOrderDetails(groupCtx, pred, window.perPage, window.offset)

		return assembleErr
	})
	group.Go(func() error {
		var statsErr error
		stats, statsErr = s.searchRepo.AggregateStoreOrderStats(groupCtx, pred)

		return statsErr
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &usecase.StoreOrderSearchResult{
		Records:    records,
		Total:      total,
		Page:       window.page,
		TotalPages: window.totalPages,
		Stats:      stats,
	}, nil
}

// compileStoreOrderFilters translates the sparse store-order filter
// object into predicates. Payment filters compile to EXISTS subqueries
// through the payments table; shipment-status likewise through
// shipments.
func compileStoreOrderFilters(filters *usecase.StoreOrderFilters) []query.Predicate {
	if filters == nil {
		return nil
	}

	var preds []query.Predicate

	if len(filters.Statuses) > 0 {
		preds = append(preds, query.In("store_orders.status", filters.Statuses))
	}
	if len(filters.PaymentStatuses) > 0 {
		preds = append(preds, paymentExists("p.status", filters.PaymentStatuses))
	}
	if len(filters.PaymentMethods) > 0 {
		preds = append(preds, paymentExists("p.method", filters.PaymentMethods))
	}
	preds = append(preds, compileDateRange("store_orders.created_at", filters.DateRange)...)
	if filters.PaymentDateRange != nil {
		if filters.PaymentDateRange.Start != nil {
			preds = append(preds, query.Exists(
				"SELECT 1 FROM payments p WHERE p.store_order_id = store_orders.id AND p.created_at >= ?",
				*filters.PaymentDateRange.Start,
			))
		}
		if filters.PaymentDateRange.End != nil {
			preds = append(preds, query.Exists(
				"SELECT 1 FROM payments p WHERE p.store_order_id = store_orders.id AND p.created_at <= ?",
				*filters.PaymentDateRange.End,
			))
		}
	}
	if filters.MinAmount != nil {
		preds = append(preds, query.Gte("store_orders.total", *filters.MinAmount))
	}
	if filters.MaxAmount != nil {
		preds = append(preds, query.Lte("store_orders.total", *filters.MaxAmount))
	}
	if len(filters.ShipmentStatuses) > 0 {
		args := make([]any, 0, len(filters.ShipmentStatuses))
		placeholders := ""
		for i, status := range filters.ShipmentStatuses {
			if i > 0 {
				placeholders += ","
			}
			placeholders += "?"
			args = append(args, status)
		}
		preds = append(preds, query.Exists(
			"SELECT 1 FROM shipments sh WHERE sh.store_order_id = store_orders.id AND sh.status IN ("+placeholders+")",
			args...,
		))
	}

	return preds
}

// paymentExists builds an EXISTS predicate over the store order's
// payments matching column against the given set.
func paymentExists[T any](column string, values []T) query.Predicate {
	args := make([]any, 0, len(values))
	placeholders := ""
	for i, v := range values {
		if i > 0 {
			placeholders += ","
		}
		placeholders += "?"
		args = append(args, v)
	}

	return query.Exists(
		"SELECT 1 FROM payments p WHERE p.store_order_id = store_orders.id AND "+column+" IN ("+placeholders+")",
		args...,
	)
}
