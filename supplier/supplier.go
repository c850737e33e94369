package supplier

import "context"

// Supplier is the capability every data source implements to take part
// in registries and groups.
type Supplier interface {
	// Name returns the supplier's stable, non-empty display name.
	Name() string
	// Query executes the operation described by req and returns the
	// supplier's response or a typed error. Side effects (network I/O,
	// database lookups) are the implementer's concern.
	Query(ctx context.Context, req Request) (Response, error)
}
