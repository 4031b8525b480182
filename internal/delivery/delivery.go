// Package delivery defines the contract every transport server implements.
package delivery

import "context"

// Delivery is a long-running transport surface, such as an HTTP server or a
// queue consumer. Implementations block in Serve until the context is
// cancelled or a fatal error occurs.
type Delivery interface {
	Serve(ctx context.Context) error
}
