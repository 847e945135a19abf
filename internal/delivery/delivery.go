// Package delivery defines the contract every transport front end satisfies.
package delivery

import "context"

// Delivery is a blocking server started from main after the fx graph is up.
type Delivery interface {
	Serve(ctx context.Context) error
}
