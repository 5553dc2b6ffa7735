// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running server (HTTP API, queue worker) started by main
// and stopped through its fx lifecycle hook.
type Delivery interface {
	// Serve runs the server until it fails or is shut down.
	Serve(ctx context.Context) error
}
