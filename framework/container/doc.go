// Package container provides a type-keyed dependency container.
//
// # Overview
//
// A Container maps a Go type (its TypeKey) to a strategy that produces a
// value of that type. Values are obtained through a Resolver, and a strategy
// may itself resolve further dependencies from the Resolver it is handed, so
// constructor call graphs never need to be wired by hand.
//
// There is no reflection-based auto-wiring: every type either implements
// Construct / ConstructAs or is registered with an explicit closure.
//
// # Container Lifecycle
//
//  1. Create: c := container.New()
//  2. Register strategies (directly or through a ProviderRegistry)
//  3. Resolve: r := c.Resolver(); v, ok := container.Resolve[T](r)
//
// Registration is a setup-phase activity. Once resolution starts, the
// container is only read; the one exception is a singleton cell populating
// itself on first use.
//
// # Registering
//
//	// A copy of the value on every resolution
//	container.RegisterClone(c, uint32(42))
//
//	// Fresh instance from T's own Construct method
//	container.RegisterTransient[*Boss](c)
//
//	// Interface built by a concrete recipe
//	container.RegisterDelegate[AudioManager, *TestAudioManager](c)
//
//	// Arbitrary closure
//	container.RegisterCustom(c, func(r *container.Resolver) *Player { ... })
//
//	// Built once, shared afterwards
//	container.RegisterSingleton[*Logger](c)
//
//	// Fluent form
//	container.When[uint32](c).Clone(42)
//	container.When[*Logger](c).Singleton().ConstructWith(newLogger)
//
// A second registration of the same type in the same container returns an
// error matching ErrAlreadyRegistered and leaves the first one in place.
//
// # Resolving
//
//	r := c.Resolver()
//
//	n, ok := container.Resolve[uint32](r)         // ok == false on a miss
//	boss := container.MustResolve[*Boss](r)       // panics on a miss
//	am, err := container.TryResolve[AudioManager](r)
//
// # Scopes
//
//	app := container.New()
//	container.RegisterSingleton[*Logger](app)
//
//	req := container.WithParent(app)
//	container.RegisterTransient[*Boss](req)
//
//	// *Boss is found in req, *Logger falls through to app.
//	boss := container.MustResolve[*Boss](req.Resolver())
//
// A child registration shadows the parent's for the same type. Strategies
// always receive the Resolver of the scope where resolution started.
//
// # Singletons
//
// The first resolution of a singleton holds the cell's lock while it builds,
// so concurrent first callers get the same instance. If a singleton's
// construction resolves that same singleton again, the resolution panics with
// a *CyclicDependencyError (TryResolve turns it into an error) rather than
// deadlocking. Cycles spanning goroutines are not detected.
package container
