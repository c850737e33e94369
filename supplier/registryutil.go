package supplier

import (
	"github.com/jerry-maheswara-github/supplier-kit/errors"
)

// AddSupplierFromRegistry looks name up in reg and appends the supplier
// to g. Returns a NotFound error when the name is not registered.
func AddSupplierFromRegistry(g *BasicGroup, reg *Registry, name string) error {
	s, ok := reg.Get(name)
	if !ok {
		return errors.NotFound()
	}
	g.AddSupplier(s)
	return nil
}

// AddSuppliersFromRegistry appends every registered name to g in the
// requested order, and returns the names that were not registered, each
// paired with a NotFound error, also in the requested order.
func AddSuppliersFromRegistry(g *BasicGroup, reg *Registry, names []string) []Failure {
	failures := make([]Failure, 0)
	for _, name := range names {
		s, ok := reg.Get(name)
		if !ok {
			failures = append(failures, Failure{Supplier: name, Err: errors.NotFound()})
			continue
		}
		g.AddSupplier(s)
	}
	return failures
}
