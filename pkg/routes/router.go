// Package routes provides the route registrar contract and the loader that
// applies ordered registrar sets to a shared router handle.
//
// A Registrar declares routes against a Router. Load fans out over an ordered
// set of registrar identifiers, validating each entry before construction and
// failing fast on the first invalid one. A Composite is a registrar that opens
// a prefix/middleware scope and loads a nested set inside it, which is how
// route trees compose without a dedicated grouping type.
package routes

import (
	"net/http"
	"slices"
	"strings"
)

// Middleware wraps an http.Handler with additional behavior.
type Middleware func(http.Handler) http.Handler

// Router is the handle registrars declare routes against. It wraps a shared
// http.ServeMux with an accumulated path prefix and middleware chain. Handles
// derived with Group share the multiplexer but carry their own prefix and
// chain, so scoping applies only to routes declared through the child.
type Router struct {
	mux    *http.ServeMux
	prefix string
	chain  []Middleware
}

// NewRouter creates a root handle over a fresh multiplexer.
func NewRouter() *Router {
	return &Router{mux: http.NewServeMux()}
}

// Use appends middleware to this handle's chain. The chain wraps routes
// declared after the call, on this handle and on handles derived from it.
func (r *Router) Use(mw ...Middleware) {
	r.chain = append(r.chain, mw...)
}

// Handle declares a route for the given method and pattern. The pattern is
// joined to the handle's accumulated prefix and the middleware chain wraps
// the handler outermost-first. A malformed pattern panics at declaration,
// exactly as http.ServeMux does.
func (r *Router) Handle(method, pattern string, h http.Handler) {
	for i := len(r.chain) - 1; i >= 0; i-- {
		h = r.chain[i](h)
	}
	r.mux.Handle(method+" "+r.path(pattern), h)
}

// HandleFunc declares a route with a handler function.
func (r *Router) HandleFunc(method, pattern string, h http.HandlerFunc) {
	r.Handle(method, pattern, h)
}

// Get declares a GET route.
func (r *Router) Get(pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodGet, pattern, h)
}

// Post declares a POST route.
func (r *Router) Post(pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodPost, pattern, h)
}

// Put declares a PUT route.
func (r *Router) Put(pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodPut, pattern, h)
}

// Patch declares a PATCH route.
func (r *Router) Patch(pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodPatch, pattern, h)
}

// Delete declares a DELETE route.
func (r *Router) Delete(pattern string, h http.HandlerFunc) {
	r.Handle(http.MethodDelete, pattern, h)
}

// Group derives a child handle whose prefix extends this handle's prefix and
// whose middleware chain starts as a copy of this handle's chain, then
// invokes fn with it. Routes declared outside fn are unaffected by the scope.
func (r *Router) Group(prefix string, fn func(*Router)) {
	child := &Router{
		mux:    r.mux,
		prefix: r.prefix + normalizePrefix(prefix),
		chain:  slices.Clone(r.chain),
	}
	fn(child)
}

// Handler returns the multiplexer carrying every declared route, ready to be
// handed to an http.Server.
func (r *Router) Handler() http.Handler {
	return r.mux
}

func (r *Router) path(pattern string) string {
	p := r.prefix + pattern
	if p == "" {
		return "/"
	}
	return p
}

func normalizePrefix(prefix string) string {
	if prefix == "" {
		return ""
	}
	if !strings.HasPrefix(prefix, "/") {
		prefix = "/" + prefix
	}
	return strings.TrimSuffix(prefix, "/")
}
