// Package delivery defines the contract shared by the process's serving surfaces.
package delivery

import "context"

// Delivery is a long-running serving surface (e.g. the HTTP server) started
// by the process and stopped through its lifecycle hooks.
type Delivery interface {
	Serve(ctx context.Context) error
}
