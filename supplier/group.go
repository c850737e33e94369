package supplier

import "context"

// Group is the batch-query capability over an ordered set of suppliers.
type Group interface {
	// GroupName returns the group's display name.
	GroupName() string
	// Query dispatches req to every member and partitions the outcomes.
	Query(ctx context.Context, req Request) GroupResult
}

// Success pairs a supplier name with the response it returned.
type Success struct {
	Supplier string
	Response Response
}

// Failure pairs a supplier name with the error it returned.
type Failure struct {
	Supplier string
	Err      error
}

// GroupResult is the partitioned outcome of one fan-out: every queried
// member lands in exactly one list, in the group's dispatch order.
type GroupResult struct {
	Successes []Success
	Failures  []Failure
}

// AllFailed reports that at least one supplier was queried and none
// succeeded. An empty group never counts as all-failed.
func (r GroupResult) AllFailed() bool {
	return len(r.Successes) == 0 && len(r.Failures) > 0
}

// BasicGroup is the default Group implementation: an append-only,
// ordered member list under a display name. Duplicate member names are
// permitted and not deduplicated.
//
// Membership mutation during an in-flight Query is not safe; callers
// build first, then query.
type BasicGroup struct {
	name      string
	suppliers []Supplier
}

// NewBasicGroup creates an empty group with the given display name.
func NewBasicGroup(name string) *BasicGroup {
	return &BasicGroup{name: name}
}

// GroupName returns the group's display name.
func (g *BasicGroup) GroupName() string { return g.name }

// AddSupplier appends s to the member list.
func (g *BasicGroup) AddSupplier(s Supplier) {
	g.suppliers = append(g.suppliers, s)
}

// Len returns the number of members.
func (g *BasicGroup) Len() int { return len(g.suppliers) }

// Query dispatches req to every member in insertion order. Each member
// receives its own clone of the request, and every member is queried no
// matter how earlier members fared. Errors are recorded verbatim; the
// caller decides what an empty successes list means.
func (g *BasicGroup) Query(ctx context.Context, req Request) GroupResult {
	result := GroupResult{
		Successes: make([]Success, 0, len(g.suppliers)),
		Failures:  make([]Failure, 0),
	}

	for _, s := range g.suppliers {
		resp, err := s.Query(ctx, req.Clone())
		if err != nil {
			result.Failures = append(result.Failures, Failure{Supplier: s.Name(), Err: err})
			continue
		}
		result.Successes = append(result.Successes, Success{Supplier: s.Name(), Response: resp})
	}

	return result
}
