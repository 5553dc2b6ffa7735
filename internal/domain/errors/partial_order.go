package errors

import (
	"fmt"
	"net/http"

	"github.com/google/uuid"
)

// PartialOrderError is raised when the order row was created but some or all
// of its items failed to persist. The order is kept as a durable audit record;
// the error carries the created order id so the caller or an operator can
// reconcile by replaying the missing items.
type PartialOrderError struct {
	OrderID uuid.UUID
	Cause   error
}

// NewPartialOrderError creates a PartialOrderError for the given order.
func NewPartialOrderError(orderID uuid.UUID, cause error) *PartialOrderError {
	return &PartialOrderError{OrderID: orderID, Cause: cause}
}

// Error implements the error interface
func (e *PartialOrderError) Error() string {
	return fmt.Sprintf("order %s was created but its items failed to persist: %v", e.OrderID, e.Cause)
}

// Unwrap exposes the underlying persistence failure.
func (e *PartialOrderError) Unwrap() error {
	return e.Cause
}

// HTTPCode returns the HTTP status code
func (e *PartialOrderError) HTTPCode() int {
	return http.StatusInternalServerError
}

// ErrorCode returns the business error code
func (e *PartialOrderError) ErrorCode() string {
	return "ORDER_ITEMS_INCOMPLETE"
}

// Message returns the user-friendly error message
func (e *PartialOrderError) Message() string {
	return "Your order was created but could not be completed; support has been notified"
}

// Details returns detailed error information
func (e *PartialOrderError) Details() string {
	return "order_id=" + e.OrderID.String()
}
