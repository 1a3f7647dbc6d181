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

// orderTotalExpr is the order's monetary amount, derived from its
// store-order slices; orders carry no stored total of their own.
const orderTotalExpr = "(SELECT COALESCE(SUM(so.total), 0) FROM store_orders so WHERE so.order_id = orders.id)"

type orderSearchService struct {
	searchRepo repository.OrderSearchRepository
	scopes     *scopeResolver
}

// OrderSearchServiceParams holds dependencies for the order search service, injected by Fx.
type OrderSearchServiceParams struct {
	fx.In

	SearchRepo repository.OrderSearchRepository
	DriverRepo repository.DriverRepository
	StoreRepo  repository.StoreRepository
}

// NewOrderSearchService creates a new order search service instance
func NewOrderSearchService(params OrderSearchServiceParams) usecase.OrderSearchUsecase {
	return &orderSearchService{
		searchRepo: params.SearchRepo,
		scopes:     newScopeResolver(params.DriverRepo, params.StoreRepo),
	}
}

// SearchOrders runs the search pipeline for the top-level order graph.
func (s *orderSearchService) SearchOrders(ctx context.Context, callerID uuid.UUID, role entity.Role, filters *usecase.OrderFilters, page usecase.PageRequest) (*usecase.OrderSearchResult, error) {
	scope, err := s.scopes.OrderScope(ctx, callerID, role)
	if err != nil {
		return nil, err
	}

	pred := query.And(append([]query.Predicate{scope}, compileOrderFilters(filters)...)...)

	total, err := s.searchRepo.CountOrders(ctx, pred)
	if err != nil {
		return nil, errors.Wrap(err, "failed to count orders")
	}

	window := paginate(page, total)
	if total == 0 {
		return &usecase.OrderSearchResult{
			Records:    []*entity.OrderDetail{},
			Total:      0,
			Page:       window.page,
			TotalPages: window.totalPages,
			Stats:      entity.ZeroOrderStats(),
		}, nil
	}

	var (
		records []*entity.OrderDetail
		stats   *entity.OrderStats
	)

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		var assembleErr error
		records, assembleErr = s.searchRepo.FindOrderDetails(groupCtx, pred, window.perPage, window.offset)

		return assembleErr
	})
	group.Go(func() error {
		var statsErr error
		stats, statsErr = s.searchRepo.AggregateOrderStats(groupCtx, pred)

		return statsErr
	})
	if err := group.Wait(); err != nil {
		return nil, err
	}

	return &usecase.OrderSearchResult{
		Records:    records,
		Total:      total,
		Page:       window.page,
		TotalPages: window.totalPages,
		Stats:      stats,
	}, nil
}

// compileOrderFilters translates the sparse order filter object into
// predicates. Payment filters join through store orders into payments;
// amount bounds apply to the derived order total.
func compileOrderFilters(filters *usecase.OrderFilters) []query.Predicate {
	if filters == nil {
		return nil
	}

	var preds []query.Predicate

	if len(filters.Statuses) > 0 {
		preds = append(preds, query.In("orders.status", filters.Statuses))
	}
	if len(filters.PaymentStatuses) > 0 {
		preds = append(preds, orderPaymentExists("p.status", filters.PaymentStatuses))
	}
	if len(filters.PaymentMethods) > 0 {
		preds = append(preds, orderPaymentExists("p.method", filters.PaymentMethods))
	}
	preds = append(preds, compileDateRange("orders.created_at", filters.DateRange)...)
	if filters.PaymentDateRange != nil {
		if filters.PaymentDateRange.Start != nil {
			preds = append(preds, query.Exists(
				"SELECT 1 FROM payments p JOIN store_orders so ON so.id = p.store_order_id WHERE so.order_id = orders.id AND p.created_at >= ?",
				*filters.PaymentDateRange.Start,
			))
		}
		if filters.PaymentDateRange.End != nil {
			preds = append(preds, query.Exists(
				"SELECT 1 FROM payments p JOIN store_orders so ON so.id = p.store_order_id WHERE so.order_id = orders.id AND p.created_at <= ?",
				*filters.PaymentDateRange.End,
			))
		}
	}
	if filters.MinAmount != nil {
		preds = append(preds, query.Expr(orderTotalExpr+" >= ?", *filters.MinAmount))
	}
	if filters.MaxAmount != nil {
		preds = append(preds, query.Expr(orderTotalExpr+" <= ?", *filters.MaxAmount))
	}

	return preds
}

// orderPaymentExists builds an EXISTS predicate over the payments of
// the order's store-order slices.
func orderPaymentExists[T any](column string, values []T) query.Predicate {
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
		"SELECT 1 FROM payments p JOIN store_orders so ON so.id = p.store_order_id WHERE so.order_id = orders.id AND "+column+" IN ("+placeholders+")",
		args...,
	)
}
