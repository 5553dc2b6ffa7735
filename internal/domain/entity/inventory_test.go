package entity

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestProductInventory_AvailableStock(t *testing.T) {
	tests := []struct {
		name     string
		stock    int
		reserved int
		want     int
	}{
		{"no reservations", 10, 0, 10},
		{"partial reservation", 10, 4, 6},
		{"fully reserved", 10, 10, 0},
		{"over-reserved floors at zero", 10, 12, 0},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := &ProductInventory{StockQuantity: tt.stock, ReservedQuantity: tt.reserved}
			assert.Equal(t, tt.want, inv.AvailableStock())
		})
	}
}

func TestProductInventory_IsLowStock(t *testing.T) {
	inv := &ProductInventory{StockQuantity: 5, LowStockThreshold: 5}
	assert.True(t, inv.IsLowStock())

	inv.StockQuantity = 6
	assert.False(t, inv.IsLowStock())
}
