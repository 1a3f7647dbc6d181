// Package delivery defines the contract every transport surface
// (HTTP, workers) fulfils so main can start them uniformly.
package delivery

import "context"

// Delivery is a long-running transport surface.
type Delivery interface {
	// Serve blocks until the surface stops or fails.
	Serve(ctx context.Context) error
}
