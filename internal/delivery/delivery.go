// Package delivery defines the transport-agnostic entry point contract.
package delivery

import "context"

// Delivery is a transport front of the application, started once at boot.
type Delivery interface {
	Serve(ctx context.Context) error
}
