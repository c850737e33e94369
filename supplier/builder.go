package supplier

import (
	"github.com/jerry-maheswara-github/supplier-kit/config"
)

// BuildGroup assembles a BasicGroup from a config definition, pulling
// members from reg in declared order. Missing members are reported the
// same way AddSuppliersFromRegistry reports them.
func BuildGroup(reg *Registry, def config.GroupDef) (*BasicGroup, []Failure) {
	g := NewBasicGroup(def.Name)
	missing := AddSuppliersFromRegistry(g, reg, def.Members)
	return g, missing
}

// BuildGroups assembles every group declared in cfg. The returned map
// carries the missing members per group name; groups with no misses do
// not appear in it.
func BuildGroups(reg *Registry, cfg *config.Config) ([]*BasicGroup, map[string][]Failure) {
	groups := make([]*BasicGroup, 0, len(cfg.Groups))
	missing := make(map[string][]Failure)
	for _, def := range cfg.Groups {
		g, fails := BuildGroup(reg, def)
		groups = append(groups, g)
		if len(fails) > 0 {
			missing[def.Name] = fails
		}
	}
	return groups, missing
}
