// Package avail tracks the external tools device types depend on and
// whether they are present on the running system.
package avail

// CommandChecker answers whether a named command can be found on the
// system. boshsys.CmdRunner satisfies it.
type CommandChecker interface {
	CommandExists(name string) bool
}

// ExternalResource is a tool some device type needs, e.g. "mdadm".
type ExternalResource struct {
	name    string
	checker CommandChecker
}

func (r *ExternalResource) Name() string { return r.name }

// Available reports whether the resource is currently present. The check
// is live, not cached; tools can appear or disappear between calls.
func (r *ExternalResource) Available() bool {
	return r.checker.CommandExists(r.name)
}

// Registry hands out ExternalResource instances, one per command name.
// Handing out a single instance per name lets callers aggregate
// dependencies across devices with set semantics.
type Registry struct {
	checker   CommandChecker
	resources map[string]*ExternalResource
}

func NewRegistry(checker CommandChecker) *Registry {
	return &Registry{
		checker:   checker,
		resources: map[string]*ExternalResource{},
	}
}

// Command returns the resource for the named command, creating it on
// first use.
func (g *Registry) Command(name string) *ExternalResource {
	if r, found := g.resources[name]; found {
		return r
	}

	r := &ExternalResource{name: name, checker: g.checker}
	g.resources[name] = r
	return r
}
