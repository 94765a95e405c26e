// Package delivery defines the contract shared by the transport servers.
package delivery

import "context"

// Delivery is a long-running transport front end. Serve blocks until the
// server stops or fails.
type Delivery interface {
	Serve(ctx context.Context) error
}
