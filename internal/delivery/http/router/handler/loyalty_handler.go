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

// LoyaltyHandlerParams holds dependencies for LoyaltyHandler, injected by Fx.
type LoyaltyHandlerParams struct {
	fx.In

	LoyaltyUC usecase.LoyaltyUsecase
	Logger    *slog.Logger
}

// LoyaltyHandler holds dependencies for loyalty handlers
type LoyaltyHandler struct {
	loyaltyUC usecase.LoyaltyUsecase
	logger    *slog.Logger
}

// NewLoyaltyHandler is the constructor for LoyaltyHandler
func NewLoyaltyHandler(params LoyaltyHandlerParams) *LoyaltyHandler {
	return &LoyaltyHandler{
		loyaltyUC: params.LoyaltyUC,
		logger:    params.Logger,
	}
}

// GetAccount handles retrieving the user's loyalty account
func (h *LoyaltyHandler) GetAccount(c echo.Context) error {
	userID, ok := middleware.GetUserID(c)
	if !ok {
		return response.Unauthorized(c, "INVALID_TOKEN", "Invalid user ID in token")
	}

	account, err := h.loyaltyUC.GetAccount(c.Request().Context(), userID)
	if err != nil {
		return response.HandleAppError(c, err)
	}

	return response.Success(c, http.StatusOK, account, "Loyalty account retrieved successfully")
}
