package handler

import (
	"log/slog"
	"net/http"
	"strconv"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// InventoryHandlerParams holds dependencies for InventoryHandler, injected by Fx.
type InventoryHandlerParams struct {
	fx.In

	InventoryUC usecase.InventoryUsecase
	Logger      *slog.Logger
}

// InventoryHandler holds dependencies for inventory handlers
type InventoryHandler struct {
	inventoryUC usecase.InventoryUsecase
	logger      *slog.Logger
}

// NewInventoryHandler is the constructor for InventoryHandler
func NewInventoryHandler(params InventoryHandlerParams) *InventoryHandler {
	return &InventoryHandler{
		inventoryUC: params.InventoryUC,
		logger:      params.Logger,
	}
}

// SetStockRequest represents the request body for the admin stock update
type SetStockRequest struct {
	Size     string `json:"size" validate:"required"`
	Quantity *int   `json:"quantity" validate:"required"`
}

// CheckAvailability handles the per-size stock check on product pages
func (h *InventoryHandler) CheckAvailability(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	size := c.QueryParam("size")
	if size == "" {
		return response.BadRequest(c, "INVALID_INPUT", "Query parameter 'size' is required")
	}

	quantity := 1
	if parsed, err := strconv.Atoi(c.QueryParam("quantity")); err == nil && parsed > 0 {
		quantity = parsed
	}

	availability, err := h.inventoryUC.CheckAvailability(c.Request().Context(), productID, size, quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, availability, "Availability retrieved successfully")
}

// SetStock handles the administrative absolute stock update
func (h *InventoryHandler) SetStock(c echo.Context) error {
	productID, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		return response.BadRequest(c, "INVALID_ID", "Invalid product ID")
	}

	var req SetStockRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid stock input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	if err := h.inventoryUC.SetStock(c.Request().Context(), productID, req.Size, *req.Quantity); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Stock updated"}, "Stock updated successfully")
}

// ListLowStock handles the administrative low-stock report
func (h *InventoryHandler) ListLowStock(c echo.Context) error {
	records, err := h.inventoryUC.LowStock(c.Request().Context())
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, records, "Low stock records retrieved successfully")
}
