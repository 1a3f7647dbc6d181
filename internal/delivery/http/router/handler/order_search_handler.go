package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// OrderSearchHandlerParams holds dependencies for OrderSearchHandler, injected by Fx.
type OrderSearchHandlerParams struct {
	fx.In

	SearchUC usecase.OrderSearchUsecase
	Logger   *slog.Logger
}

// OrderSearchHandler holds dependencies for the order search endpoint
type OrderSearchHandler struct {
	searchUC usecase.OrderSearchUsecase
	logger   *slog.Logger
}

// NewOrderSearchHandler is the constructor for OrderSearchHandler
func NewOrderSearchHandler(params OrderSearchHandlerParams) *OrderSearchHandler {
	return &OrderSearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// OrderSearchRequest represents the request body for an order search
type OrderSearchRequest struct {
	Role       string                `json:"role" validate:"required"`
	Filters    *usecase.OrderFilters `json:"filters"`
	Pagination usecase.PageRequest   `json:"pagination"`
}

// Search handles a role-aware top-level order search
func (h *OrderSearchHandler) Search(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req OrderSearchRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid search input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_FAILED", err.Error())
	}

	role, err := declaredRole(c, req.Role)
	if err != nil {
		return err
	}

	filters := req.Filters
	if filters == nil {
		filters = &usecase.OrderFilters{}
	}

	result, err := h.searchUC.SearchOrders(c.Request().Context(), userID, role, filters, req.Pagination)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Orders retrieved successfully")
}
