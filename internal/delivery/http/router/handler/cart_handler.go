package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

// CartHandlerParams holds dependencies for CartHandler, injected by Fx.
type CartHandlerParams struct {
	fx.In

	CartUC usecase.CartUsecase
	Logger *slog.Logger
}

// CartHandler holds dependencies for cart handlers. Every route resolves the
// owner per request: the authenticated user when a token was presented,
// otherwise the anonymous session from the X-Session-Id header.
type CartHandler struct {
	cartUC usecase.CartUsecase
	logger *slog.Logger
}

// NewCartHandler is the constructor for CartHandler
func NewCartHandler(params CartHandlerParams) *CartHandler {
	return &CartHandler{
		cartUC: params.CartUC,
		logger: params.Logger,
	}
}

// AddLineRequest represents the request body for adding a cart line
type AddLineRequest struct {
	ProductID int64  `json:"product_id" validate:"required"`
	Size      string `json:"size" validate:"required"`
	Quantity  int    `json:"quantity" validate:"required,min=1"`
}

// UpdateQuantityRequest represents the request body for changing a line quantity
type UpdateQuantityRequest struct {
	Quantity int `json:"quantity" validate:"required"`
}

// MergeCartRequest represents the request body for merging a guest session cart
type MergeCartRequest struct {
	SessionID string `json:"session_id" validate:"required"`
}

// GetCart handles loading the owner's cart
func (h *CartHandler) GetCart(c echo.Context) error {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Provide a bearer token or X-Session-Id header")
	}

	cart, err := h.cartUC.LoadCart(c.Request().Context(), owner)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart retrieved successfully")
}

// AddLine handles adding a (product, size) selection to the cart
func (h *CartHandler) AddLine(c echo.Context) error {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Provide a bearer token or X-Session-Id header")
	}

	var req AddLineRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid cart line input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.AddLine(c.Request().Context(), owner, req.ProductID, req.Size, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Line added to cart successfully")
}

// UpdateQuantity handles changing a cart line's quantity
func (h *CartHandler) UpdateQuantity(c echo.Context) error {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Provide a bearer token or X-Session-Id header")
	}

	lineID := c.Param("lineId")
	if lineID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	var req UpdateQuantityRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid quantity input")
	}

	cart, err := h.cartUC.UpdateQuantity(c.Request().Context(), owner, lineID, req.Quantity)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Cart updated successfully")
}

// RemoveLine handles removing a cart line
func (h *CartHandler) RemoveLine(c echo.Context) error {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Provide a bearer token or X-Session-Id header")
	}

	lineID := c.Param("lineId")
	if lineID == "" {
		return response.BadRequest(c, "INVALID_ID", "Invalid cart line ID")
	}

	cart, err := h.cartUC.RemoveLine(c.Request().Context(), owner, lineID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Line removed successfully")
}

// ClearCart handles emptying the owner's cart
func (h *CartHandler) ClearCart(c echo.Context) error {
	owner, ok := middleware.GetCartOwner(c)
	if !ok {
		return response.BadRequest(c, "MISSING_SESSION", "Provide a bearer token or X-Session-Id header")
	}

	if err := h.cartUC.ClearCart(c.Request().Context(), owner); err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, map[string]string{"message": "Cart cleared"}, "Cart cleared successfully")
}

// MergeGuestCart handles folding a guest session cart into the signed-in
// user's cart. Requires authentication.
func (h *CartHandler) MergeGuestCart(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	var req MergeCartRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid merge input")
	}

	if err := c.Validate(&req); err != nil {
		return response.BadRequest(c, "VALIDATION_ERROR", err.Error())
	}

	cart, err := h.cartUC.MergeGuestCart(c.Request().Context(), req.SessionID, userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, cart, "Guest cart merged successfully")
}
