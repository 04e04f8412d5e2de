// Package delivery defines the contract every transport frontend satisfies.
package delivery

import "context"

// Delivery is a serving frontend (HTTP today). Serve blocks until the
// server stops.
type Delivery interface {
	Serve(ctx context.Context) error
}
