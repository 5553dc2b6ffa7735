package impl

import (
	"io"
	"log/slog"

	"storefront/config"
)

func newDiscardLogger() *slog.Logger {
	return slog.New(slog.NewTextHandler(io.Discard, nil))
}

func newTestConfig() *config.Config {
	return &config.Config{
		Checkout: &config.CheckoutConfig{
			FreeShippingThreshold: 2000,
			ShippingFee:           150,
			UPIPayeeVPA:           "store@upi",
			UPIPayeeName:          "Storefront",
		},
		Loyalty: &config.LoyaltyConfig{
			PointsPerRupee: 0.1,
			RupeePerPoint:  0.5,
		},
	}
}
