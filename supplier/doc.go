// Package supplier implements the supplier abstraction at the heart of
// supplier-kit: a uniform query capability over named data providers, a
// name-keyed registry of shared supplier handles, and groups that fan one
// request out to every member and partition the outcomes.
//
// A supplier is anything that implements the Supplier interface. The
// registry and group never inspect concrete types or interpret supplier
// errors; a failing member is recorded next to its name and the rest of
// the group is still queried.
//
// # Usage
//
//	reg := supplier.NewRegistry()
//	reg.RegisterAll([]supplier.Registration{
//	    {Name: "s1", Supplier: s1},
//	    {Name: "s2", Supplier: s2},
//	})
//
//	group := supplier.NewBasicGroup("marketplace")
//	missing := supplier.AddSuppliersFromRegistry(group, reg, []string{"s1", "s2", "s4"})
//	for _, f := range missing {
//	    log.Warn("not registered", logger.Fields("supplier", f.Supplier))
//	}
//
//	result := group.Query(ctx, supplier.Request{
//	    Operation: supplier.Search,
//	    Params:    map[string]any{"keyword": "laptop"},
//	})
//	for _, s := range result.Successes { ... }
//	for _, f := range result.Failures { ... }
//
// # Middleware
//
// Middleware wraps a Supplier with cross-cutting behavior. Use Chain to
// compose:
//
//	wrapped := supplier.Chain(
//	    supplier.WithLogging(log),
//	    supplier.WithMetrics(metrics),
//	    supplier.WithTracing("marketplace"),
//	)(raw)
//
// Instrument does the same at the group level, adding a per-query ID,
// a fan-out span, and a summary log line around Query.
//
// Dispatch is sequential and synchronous; implementors handle parallelism
// outside this contract. Each member receives its own clone of the
// request.
package supplier
