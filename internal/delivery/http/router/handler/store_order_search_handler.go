package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// StoreOrderSearchHandlerParams holds dependencies for StoreOrderSearchHandler, injected by Fx.
type StoreOrderSearchHandlerParams struct {
	fx.In

	SearchUC usecase.StoreOrderSearchUsecase
	Logger   *slog.Logger
}

// StoreOrderSearchHandler holds dependencies for the store-order search endpoint
type StoreOrderSearchHandler struct {
	searchUC usecase.StoreOrderSearchUsecase
	logger   *slog.Logger
}

// NewStoreOrderSearchHandler is the constructor for StoreOrderSearchHandler
func NewStoreOrderSearchHandler(params StoreOrderSearchHandlerParams) *StoreOrderSearchHandler {
	return &StoreOrderSearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// StoreOrderSearchRequest represents the request body for a store-order search
type StoreOrderSearchRequest struct {
	Role       string                     `json:"role" validate:"required"`
	Filters    *usecase.StoreOrderFilters `json:"filters"`
	Pagination usecase.PageRequest        `json:"pagination"`
}

// Search handles a role-aware store-order search
func (h *StoreOrderSearchHandler) Search(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req StoreOrderSearchRequest
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
		filters = &usecase.StoreOrderFilters{}
	}

	result, err := h.searchUC.SearchStoreOrders(c.Request().Context(), userID, role, filters, req.Pagination)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Store orders retrieved successfully")
}
