// Package delivery defines the entry points that expose the application to
// the outside world.
package delivery

import "context"

// Delivery is a serving surface started by the composition root.
type Delivery interface {
	Serve(ctx context.Context) error
}
