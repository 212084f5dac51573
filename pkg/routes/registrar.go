package routes

import "fmt"

// Registrar declares routes and groups against a router handle. Map is
// invoked exactly once per loaded set entry; the only observable effect is
// whatever the implementation declares on the handle.
type Registrar interface {
	Map(r *Router) error
}

// RegistrarFunc adapts a function to the Registrar contract.
type RegistrarFunc func(r *Router) error

// Map calls fn(r).
func (fn RegistrarFunc) Map(r *Router) error {
	return fn(r)
}

// Factory constructs a registrar. Factories let a set name constructible
// registrars without building them until load time; construction never runs
// for entries that fail validation.
type Factory func() Registrar

// InvalidRegistrarError reports a set entry that does not satisfy the
// registrar contract. Name is set when the entry was resolved by name
// through a Registry; Value carries the offending identifier otherwise.
type InvalidRegistrarError struct {
	Name  string
	Value any
}

func (e *InvalidRegistrarError) Error() string {
	if e.Name != "" {
		return fmt.Sprintf("invalid registrar %q", e.Name)
	}
	return fmt.Sprintf("invalid registrar entry %T: does not satisfy the registrar contract", e.Value)
}

// Load applies each set entry to the router in order. An entry may be a
// Registrar value or a Factory; a factory is invoked exactly once, after its
// entry has passed the contract check.
//
// Load fails fast: the first invalid entry stops the pass with an
// InvalidRegistrarError and no later entry is processed. Entries before the
// failure have already been applied to the router; partial application is
// order-dependent and is not rolled back. Duplicate entries are permitted
// and register again. An error returned by Map propagates unchanged.
func Load(r *Router, set ...any) error {
	for _, entry := range set {
		reg, err := resolve(entry)
		if err != nil {
			return err
		}
		if err := reg.Map(r); err != nil {
			return err
		}
	}
	return nil
}

func resolve(entry any) (Registrar, error) {
	switch v := entry.(type) {
	case Registrar:
		return v, nil
	case Factory:
		return construct(v)
	case func() Registrar:
		return construct(v)
	default:
		return nil, &InvalidRegistrarError{Value: entry}
	}
}

func construct(f Factory) (Registrar, error) {
	if f == nil {
		return nil, &InvalidRegistrarError{Value: f}
	}
	reg := f()
	if reg == nil {
		return nil, &InvalidRegistrarError{Value: f}
	}
	return reg, nil
}
