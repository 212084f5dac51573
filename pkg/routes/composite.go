package routes

// Composite is a registrar that opens a scoped group and loads a nested set
// inside it. The prefix and middleware apply to every route declared by the
// nested set and to nothing else. Grouping composes without a dedicated
// grouping type: a composite is just a registrar that delegates.
//
// A composite that reaches itself through its own nested set recurses without
// bound; keeping sets acyclic is the caller's responsibility.
type Composite struct {
	// Prefix is joined to the parent handle's prefix for every nested route.
	Prefix string

	// Middleware wraps every route declared by the nested set.
	Middleware []Middleware

	// Registrars is the nested ordered set, loaded under the same rules as
	// Load: Registrar values or Factory functions, fail-fast on the first
	// invalid entry.
	Registrars []any
}

// Map opens the group scope and fans out over the nested set.
func (c Composite) Map(r *Router) error {
	var err error
	r.Group(c.Prefix, func(g *Router) {
		g.Use(c.Middleware...)
		err = Load(g, c.Registrars...)
	})
	return err
}
