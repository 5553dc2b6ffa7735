// Package router contains routing and server setup for the HTTP delivery.
package router

import (
	"storefront/internal/delivery/http/middleware"
	"storefront/internal/delivery/http/router/handler"

	"github.com/labstack/echo/v4"
	"go.uber.org/fx"
)

type RouterParams struct {
	fx.In

	ProductHandler   *handler.ProductHandler
	CartHandler      *handler.CartHandler
	CheckoutHandler  *handler.CheckoutHandler
	OrderHandler     *handler.OrderHandler
	AddressHandler   *handler.AddressHandler
	CouponHandler    *handler.CouponHandler
	LoyaltyHandler   *handler.LoyaltyHandler
	InventoryHandler *handler.InventoryHandler
	AuthMiddleware   *middleware.AuthMiddleware
}

// router holds all the handlers that need to be registered.
type router struct {
	productHandler   *handler.ProductHandler
	cartHandler      *handler.CartHandler
	checkoutHandler  *handler.CheckoutHandler
	orderHandler     *handler.OrderHandler
	addressHandler   *handler.AddressHandler
	couponHandler    *handler.CouponHandler
	loyaltyHandler   *handler.LoyaltyHandler
	inventoryHandler *handler.InventoryHandler
	authMiddleware   *middleware.AuthMiddleware
}

// NewRouter is the constructor for the Router.
// Fx will inject the required handlers here.
func NewRouter(params RouterParams) *router {
	return &router{
		productHandler:   params.ProductHandler,
		cartHandler:      params.CartHandler,
		checkoutHandler:  params.CheckoutHandler,
		orderHandler:     params.OrderHandler,
		addressHandler:   params.AddressHandler,
		couponHandler:    params.CouponHandler,
		loyaltyHandler:   params.LoyaltyHandler,
		inventoryHandler: params.InventoryHandler,
		authMiddleware:   params.AuthMiddleware,
	}
}

// RegisterRoutes sets up all the API routes for the application.
func (r *router) RegisterRoutes(e *echo.Echo) {
	// Health check endpoint
	e.GET("/health", handler.HealthCheck)

	// Public catalog routes
	productGroup := e.Group("/products")
	{
		productGroup.GET("", r.productHandler.ListProducts)
		productGroup.GET("/:id", r.productHandler.GetProduct)
		productGroup.GET("/:id/availability", r.inventoryHandler.CheckAvailability)
	}

	// Cart routes work for guests (X-Session-Id) and signed-in users alike
	cartGroup := e.Group("/cart")
	cartGroup.Use(r.authMiddleware.OptionalAuthenticate)
	{
		cartGroup.GET("", r.cartHandler.GetCart)
		cartGroup.POST("/items", r.cartHandler.AddLine)
		cartGroup.PATCH("/items/:lineId", r.cartHandler.UpdateQuantity)
		cartGroup.DELETE("/items/:lineId", r.cartHandler.RemoveLine)
		cartGroup.DELETE("", r.cartHandler.ClearCart)
	}
	e.POST("/cart/merge", r.cartHandler.MergeGuestCart, r.authMiddleware.Authenticate)

	// Checkout and order routes require authentication
	checkoutGroup := e.Group("/checkout")
	checkoutGroup.Use(r.authMiddleware.Authenticate)
	{
		checkoutGroup.POST("", r.checkoutHandler.PlaceOrder)
	}

	orderGroup := e.Group("/orders")
	orderGroup.Use(r.authMiddleware.Authenticate)
	{
		orderGroup.GET("", r.orderHandler.ListOrders)
		orderGroup.GET("/:id", r.orderHandler.GetOrder)
		orderGroup.GET("/:id/payment-qr", r.orderHandler.GetPaymentQR)
		orderGroup.POST("/:id/repair", r.checkoutHandler.RepairOrder)
	}

	// Saved addresses, coupons, loyalty
	addressGroup := e.Group("/addresses")
	addressGroup.Use(r.authMiddleware.Authenticate)
	{
		addressGroup.GET("", r.addressHandler.ListAddresses)
		addressGroup.POST("", r.addressHandler.CreateAddress)
		addressGroup.PUT("/:id", r.addressHandler.UpdateAddress)
		addressGroup.DELETE("/:id", r.addressHandler.DeleteAddress)
		addressGroup.POST("/:id/default", r.addressHandler.SetDefaultAddress)
	}

	e.POST("/coupons/validate", r.couponHandler.ValidateCoupon, r.authMiddleware.Authenticate)
	e.GET("/loyalty", r.loyaltyHandler.GetAccount, r.authMiddleware.Authenticate)

	// Administrative routes require the "admin" role
	adminGroup := e.Group("/admin")
	adminGroup.Use(r.authMiddleware.Authenticate)
	adminGroup.Use(r.authMiddleware.RequireRole("admin"))
	{
		adminGroup.PATCH("/orders/:id/status", r.orderHandler.UpdateStatus)
		adminGroup.PUT("/products/:id/stock", r.inventoryHandler.SetStock)
		adminGroup.GET("/inventory/low-stock", r.inventoryHandler.ListLowStock)
	}
}
