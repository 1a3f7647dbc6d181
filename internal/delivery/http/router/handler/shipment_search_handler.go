package handler

import (
	"log/slog"
	"net/http"

	"souk/internal/delivery/http/response"
	"souk/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// ShipmentSearchHandlerParams holds dependencies for ShipmentSearchHandler, injected by Fx.
type ShipmentSearchHandlerParams struct {
	fx.In

	SearchUC usecase.ShipmentSearchUsecase
	Logger   *slog.Logger
}

// ShipmentSearchHandler holds dependencies for the shipment search endpoint
type ShipmentSearchHandler struct {
	searchUC usecase.ShipmentSearchUsecase
	logger   *slog.Logger
}

// NewShipmentSearchHandler is the constructor for ShipmentSearchHandler
func NewShipmentSearchHandler(params ShipmentSearchHandlerParams) *ShipmentSearchHandler {
	return &ShipmentSearchHandler{
		searchUC: params.SearchUC,
		logger:   params.Logger,
	}
}

// ShipmentSearchRequest represents the request body for a shipment search
type ShipmentSearchRequest struct {
	Role       string                   `json:"role" validate:"required"`
	Filters    *usecase.ShipmentFilters `json:"filters"`
	Pagination usecase.PageRequest      `json:"pagination"`
}

// Search handles a role-aware shipment search
func (h *ShipmentSearchHandler) Search(c echo.Context) error {
	userID, err := getUserID(c)
	if err != nil {
		return err
	}

	var req ShipmentSearchRequest
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
		filters = &usecase.ShipmentFilters{}
	}

	result, err := h.searchUC.SearchShipments(c.Request().Context(), userID, role, filters, req.Pagination)
	if err != nil {
		return handleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, result, "Shipments retrieved successfully")
}
