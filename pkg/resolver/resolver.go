// Package resolver maps workshop ids to display titles. The engine
// consumes the Resolver interface; the Steam implementation lives here
// so the engine's decision logic stays testable without a network.
package resolver

import (
	"context"
)

// Resolver resolves a workshop id to a display title. An empty title
// with a nil error means the remote side had no name for the id; the
// engine treats that the same as an error. No call may block past the
// configured timeout.
type Resolver interface {
	Resolve(ctx context.Context, id string) (string, error)
}

// Func adapts a plain function to the Resolver interface, for tests
// and composition
type Func func(ctx context.Context, id string) (string, error)

// Resolve implements Resolver
func (f Func) Resolve(ctx context.Context, id string) (string, error) {
	return f(ctx, id)
}
