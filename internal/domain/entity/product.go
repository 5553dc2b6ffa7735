// Package entity contains the core business objects of the project.
package entity

import "time"

// Product is the core entity for one catalog item.
type Product struct {
	ID             int64     // Numeric catalog identifier.
	Name           string    // Display name.
	Description    string    // Long-form description shown on the product page.
	Price          float64   // Current unit price in rupees.
	ThumbnailURL   string    // Primary product image.
	AvailableSizes []string  // Sizes this product is sold in.
	Category       string    // Catalog category, e.g. "tshirts".
	CreatedAt      time.Time // Timestamp of when this product was created.
	UpdatedAt      time.Time // Timestamp of the last modification.
}

// Snapshot captures the denormalized product fields carried on a cart line.
func (p *Product) Snapshot() ProductSnapshot {
	return ProductSnapshot{
		ID:           p.ID,
		Name:         p.Name,
		Price:        p.Price,
		ThumbnailURL: p.ThumbnailURL,
	}
}

// ProductSnapshot is the denormalized product view embedded in cart lines.
// Guest carts persist it verbatim; authenticated carts re-join it live on load.
type ProductSnapshot struct {
	ID           int64   `json:"id"`
	Name         string  `json:"name"`
	Price        float64 `json:"price"`
	ThumbnailURL string  `json:"thumbnail_url"`
}
