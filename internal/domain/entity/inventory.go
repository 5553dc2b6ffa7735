package entity

import "time"

// ProductInventory is the per (product, size) stock counter.
type ProductInventory struct {
	ProductID         int64     `json:"product_id"`
	Size              string    `json:"size"`
	StockQuantity     int       `json:"stock_quantity"`
	ReservedQuantity  int       `json:"reserved_quantity"`
	SoldQuantity      int       `json:"sold_quantity"`
	LowStockThreshold int       `json:"low_stock_threshold"`
	UpdatedAt         time.Time `json:"updated_at"`
}

// AvailableStock returns stock minus reservations. Floor at zero: a burst of
// concurrent reservations can briefly overshoot before the guarded UPDATE
// rejects the excess.
func (i *ProductInventory) AvailableStock() int {
	available := i.StockQuantity - i.ReservedQuantity
	if available < 0 {
		return 0
	}

	return available
}

// IsLowStock reports whether remaining stock has fallen to the threshold.
func (i *ProductInventory) IsLowStock() bool {
	return i.StockQuantity <= i.LowStockThreshold
}
