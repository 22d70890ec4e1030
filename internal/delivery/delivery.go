// Package delivery defines the contract every transport entry point
// (HTTP server, workers) fulfills so the main function can start them
// uniformly.
package delivery

import "context"

// Delivery is a served transport endpoint.
type Delivery interface {
	// Serve blocks, serving requests until the context is canceled or the
	// listener fails.
	Serve(ctx context.Context) error
}
