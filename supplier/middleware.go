package supplier

// Middleware transforms a Supplier by wrapping it. The returned supplier
// typically delegates to the original while adding cross-cutting
// behavior (logging, metrics, tracing, etc.). Name() must pass through
// unchanged so the aggregation key is stable.
type Middleware func(Supplier) Supplier

// Chain composes multiple middlewares into one. Middlewares are applied
// in order: the first middleware is outermost (executes first on the
// way in, last on the way out).
//
// Chain(a, b, c)(supplier) is equivalent to a(b(c(supplier))).
func Chain(middlewares ...Middleware) Middleware {
	return func(inner Supplier) Supplier {
		for i := len(middlewares) - 1; i >= 0; i-- {
			inner = middlewares[i](inner)
		}
		return inner
	}
}
