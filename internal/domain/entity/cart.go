package entity

import (
	"time"

	"github.com/google/uuid"
)

// CartOwner identifies whose cart an operation targets. It is a tagged
// variant: either an anonymous session (guest) or an authenticated user.
// The variant is fixed at construction; no cart operation may change it.
type CartOwner struct {
	userID    uuid.UUID
	sessionID string
}

// GuestOwner returns a CartOwner for an anonymous session.
func GuestOwner(sessionID string) CartOwner {
	return CartOwner{sessionID: sessionID}
}

// AuthenticatedOwner returns a CartOwner for a signed-in user.
func AuthenticatedOwner(userID uuid.UUID) CartOwner {
	return CartOwner{userID: userID}
}

// IsGuest reports whether this owner is an anonymous session.
func (o CartOwner) IsGuest() bool {
	return o.userID == uuid.Nil
}

// UserID returns the authenticated user id, or uuid.Nil for guests.
func (o CartOwner) UserID() uuid.UUID {
	return o.userID
}

// SessionID returns the anonymous session id, or "" for authenticated owners.
func (o CartOwner) SessionID() string {
	return o.sessionID
}

// Key returns a loggable identifier for the owner.
func (o CartOwner) Key() string {
	if o.IsGuest() {
		return "guest:" + o.sessionID
	}

	return "user:" + o.userID.String()
}

// CartLine represents one distinct (product, size) selection for one owner.
type CartLine struct {
	// Opaque identifier: a server-assigned UUID string for persisted lines,
	// a locally generated token for guest lines.
	ID        string          `json:"id"`
	ProductID int64           `json:"product_id"`
	Size      string          `json:"size"`
	Quantity  int             `json:"quantity"`
	Product   ProductSnapshot `json:"product"`
	CreatedAt time.Time       `json:"created_at,omitempty"`
	UpdatedAt time.Time       `json:"updated_at,omitempty"`
}

// Extension returns quantity times the snapshot unit price.
func (l *CartLine) Extension() float64 {
	return float64(l.Quantity) * l.Product.Price
}

// NewGuestLineID generates a token for an ephemeral guest cart line.
func NewGuestLineID() string {
	return "guest-" + uuid.NewString()
}

// Cart is the materialized view of an owner's cart lines.
type Cart struct {
	Owner CartOwner   `json:"-"`
	Lines []*CartLine `json:"lines"`
}

// IsEmpty reports whether the cart has no lines.
func (c *Cart) IsEmpty() bool {
	return len(c.Lines) == 0
}

// TotalItems returns the sum of line quantities.
func (c *Cart) TotalItems() int {
	total := 0
	for _, line := range c.Lines {
		total += line.Quantity
	}

	return total
}

// TotalPrice returns the sum of line extensions.
func (c *Cart) TotalPrice() float64 {
	total := 0.0
	for _, line := range c.Lines {
		total += line.Extension()
	}

	return total
}

// FindLine returns the line matching (productID, size), or nil.
// The pair is unique per owner, so at most one line can match.
func (c *Cart) FindLine(productID int64, size string) *CartLine {
	for _, line := range c.Lines {
		if line.ProductID == productID && line.Size == size {
			return line
		}
	}

	return nil
}
