package container

import (
	"slices"
	"sync"
)

// ── Strategy types ────────────────────────────────────────────────────────────

// Constructor is a type-erased construction strategy. The value it returns
// must have the exact type of the key it is registered under.
type Constructor func(r *Resolver) any

// Upstream is the lookup a child container falls back to on a local miss.
//
// *Container implements it directly. UpstreamFunc adapts any other lookup
// source, e.g. a container the caller keeps behind its own lock.
type Upstream interface {
	Lookup(key TypeKey) (Constructor, bool)
}

// UpstreamFunc adapts an ordinary function to the Upstream interface.
type UpstreamFunc func(key TypeKey) (Constructor, bool)

// Lookup calls f(key).
func (f UpstreamFunc) Lookup(key TypeKey) (Constructor, bool) { return f(key) }

// ── Container ─────────────────────────────────────────────────────────────────

// Container is one scope of type-keyed construction strategies.
//
// It supports:
//   - Clone / Transient / Delegate / Custom / Singleton registration
//   - Parent delegation (a child scope shadows its parent per type)
//   - Resolution through a Resolver (see Resolve, MustResolve, TryResolve)
//
// Registration is expected to finish before concurrent resolution starts.
// The lock keeps the table consistent either way, but a registration racing
// with a resolution of the same type has no defined winner.
type Container struct {
	mu sync.RWMutex

	// key → strategy, this scope only
	constructors map[TypeKey]Constructor

	// consulted on local miss; nil for a root container
	parent Upstream
}

// New creates an empty root container.
func New() *Container {
	return &Container{constructors: make(map[TypeKey]Constructor)}
}

// WithParent creates an empty container whose lookups fall back to up.
//
//	app := container.New()
//	container.RegisterSingleton[*Logger](app)
//
//	request := container.WithParent(app)
//	container.RegisterClone(request, RequestID("abc"))
func WithParent(up Upstream) *Container {
	c := New()
	c.parent = up
	return c
}

// Parent returns the upstream lookup, or nil for a root container.
func (c *Container) Parent() Upstream { return c.parent }

// Resolver returns a fresh resolution view bound to this scope.
func (c *Container) Resolver() *Resolver {
	return &Resolver{container: c}
}

// ── Lookup ────────────────────────────────────────────────────────────────────

// Lookup returns the nearest strategy for key, searching this scope first and
// then the parent chain.
func (c *Container) Lookup(key TypeKey) (Constructor, bool) {
	c.mu.RLock()
	f, ok := c.constructors[key]
	c.mu.RUnlock()
	if ok {
		return f, true
	}
	if c.parent == nil {
		return nil, false
	}
	return c.parent.Lookup(key)
}

// Bound reports whether key has a strategy anywhere in the chain.
func (c *Container) Bound(key TypeKey) bool {
	_, ok := c.Lookup(key)
	return ok
}

// Has reports whether T has a strategy anywhere in the chain.
func Has[T any](c *Container) bool {
	return c.Bound(KeyOf[T]())
}

// Bindings returns the keys registered in this scope (parents excluded),
// sorted with TypeKey.Less.
func (c *Container) Bindings() []TypeKey {
	c.mu.RLock()
	out := make([]TypeKey, 0, len(c.constructors))
	for k := range c.constructors {
		out = append(out, k)
	}
	c.mu.RUnlock()

	slices.SortFunc(out, func(a, b TypeKey) int {
		switch {
		case a.Less(b):
			return -1
		case b.Less(a):
			return 1
		}
		return 0
	})
	return out
}

// Len returns the number of strategies registered in this scope.
func (c *Container) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.constructors)
}

// ── Registration ──────────────────────────────────────────────────────────────

// register stores f under key unless this scope already has an entry.
// Ancestors are never consulted: shadowing a parent is allowed.
func (c *Container) register(key TypeKey, f Constructor) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, exists := c.constructors[key]; exists {
		return &AlreadyRegisteredError{Key: key}
	}
	c.constructors[key] = f
	return nil
}
