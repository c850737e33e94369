package supplier

import (
	"sort"
	"sync"
)

// Registry is a name-keyed store of supplier handles with shared
// ownership semantics: a handle returned by Get stays valid no matter
// how the registry is mutated afterwards.
type Registry struct {
	mu        sync.RWMutex
	suppliers map[string]Supplier
}

// NewRegistry creates a new empty Registry.
func NewRegistry() *Registry {
	return &Registry{
		suppliers: make(map[string]Supplier),
	}
}

// Register inserts or replaces the supplier under name. Replacement is
// silent; the last registration wins.
func (r *Registry) Register(name string, s Supplier) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.suppliers[name] = s
}

// Get returns the supplier registered under name.
func (r *Registry) Get(name string) (Supplier, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	s, ok := r.suppliers[name]
	return s, ok
}

// AllNames returns sorted names of all registered suppliers.
func (r *Registry) AllNames() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	names := make([]string, 0, len(r.suppliers))
	for name := range r.suppliers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Len returns the number of registered suppliers.
func (r *Registry) Len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return len(r.suppliers)
}

// Registration pairs a name with a supplier for bulk registration.
type Registration struct {
	Name     string
	Supplier Supplier
}

// RegisterAll registers each pair in order. Later pairs silently replace
// earlier ones under the same name.
func (r *Registry) RegisterAll(regs []Registration) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for _, reg := range regs {
		r.suppliers[reg.Name] = reg.Supplier
	}
}
