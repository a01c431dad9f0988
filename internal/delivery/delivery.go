// Package delivery defines the contract all transport servers implement.
package delivery

import "context"

// Delivery is a server that can be started by the process bootstrap.
type Delivery interface {
	Serve(ctx context.Context) error
}
