package routes

import (
	"fmt"
	"maps"
	"slices"
)

// Registry resolves registrar names to factories, so a set can be declared as
// ordered configuration rather than code. It is an explicit value handed to
// whatever loads by name, not process-global state.
type Registry struct {
	factories map[string]Factory
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Register binds a name to a factory. Empty names, nil factories, and names
// already bound are rejected.
func (g *Registry) Register(name string, f Factory) error {
	if name == "" {
		return fmt.Errorf("register registrar: name required")
	}
	if f == nil {
		return fmt.Errorf("register registrar %q: nil factory", name)
	}
	if _, exists := g.factories[name]; exists {
		return fmt.Errorf("register registrar %q: already registered", name)
	}
	g.factories[name] = f
	return nil
}

// Resolve returns the factory bound to name.
func (g *Registry) Resolve(name string) (Factory, bool) {
	f, ok := g.factories[name]
	return f, ok
}

// Names returns the registered names in sorted order.
func (g *Registry) Names() []string {
	return slices.Sorted(maps.Keys(g.factories))
}

// Set resolves names into a loadable set without constructing any registrar.
// An unknown name fails with an InvalidRegistrarError carrying that name.
func (g *Registry) Set(names ...string) ([]any, error) {
	set := make([]any, 0, len(names))
	for _, name := range names {
		f, ok := g.factories[name]
		if !ok {
			return nil, &InvalidRegistrarError{Name: name}
		}
		set = append(set, f)
	}
	return set, nil
}

// Load resolves each name in order, constructs the registrar, and applies it
// to the router. Unknown names fail fast with an InvalidRegistrarError under
// the same partial-application rules as Load; names may repeat and register
// again. Errors returned from Map come back unchanged.
func (g *Registry) Load(r *Router, names ...string) error {
	for _, name := range names {
		f, ok := g.factories[name]
		if !ok {
			return &InvalidRegistrarError{Name: name}
		}
		reg, err := construct(f)
		if err != nil {
			return &InvalidRegistrarError{Name: name}
		}
		if err := reg.Map(r); err != nil {
			return err
		}
	}
	return nil
}
