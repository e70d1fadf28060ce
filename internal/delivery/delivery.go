// Package delivery defines the contract every inbound transport implements.
package delivery

import "context"

// Delivery is a long-running inbound adapter, started by main and stopped
// through the fx lifecycle.
type Delivery interface {
	Serve(ctx context.Context) error
}
