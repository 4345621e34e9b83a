// Package delivery defines the surfaces through which the application core
// is driven.
package delivery

import "context"

// Delivery is a long-running front end for the application core. Serve blocks
// until the context is done or the surface is closed by its user.
type Delivery interface {
	Serve(ctx context.Context) error
}
