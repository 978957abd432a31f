package container

// ── Package-level registration ────────────────────────────────────────────────

// RegisterClone registers value; every resolution of T returns a copy.
// If T implements Cloner[T], the copy is value.Clone(), otherwise an ordinary
// Go assignment copy.
//
//	container.RegisterClone(c, uint32(42))
//	container.RegisterClone(c, &config.Config{...}) // pointer: copies share the target
func RegisterClone[T any](c *Container, value T) error {
	return c.register(KeyOf[T](), cloneStrategy(value))
}

// RegisterTransient registers T's own Construct method; every resolution
// builds a fresh instance.
//
//	container.RegisterTransient[*Boss](c)
func RegisterTransient[T Construct[T]](c *Container) error {
	return c.register(KeyOf[T](), func(r *Resolver) any {
		return construct[T](r)
	})
}

// RegisterDelegate registers T, built by E's ConstructAs recipe. The caller
// resolving T never learns about E, so E can be swapped per environment.
//
//	container.RegisterDelegate[AudioManager, *TestAudioManager](c)
func RegisterDelegate[T any, E ConstructAs[T]](c *Container) error {
	return c.register(KeyOf[T](), func(r *Resolver) any {
		return constructAs[T, E](r)
	})
}

// RegisterCustom registers an arbitrary closure as the strategy for T.
//
//	container.RegisterCustom(c, func(r *container.Resolver) *http.Client {
//	    return &http.Client{Timeout: 5 * time.Second}
//	})
func RegisterCustom[T any](c *Container, fn func(r *Resolver) T) error {
	return c.register(KeyOf[T](), func(r *Resolver) any {
		return fn(r)
	})
}

// RegisterSingleton registers T's Construct method behind a singleton cell:
// the first resolution builds the value, every later one returns that same
// value. T is normally a pointer type so the cached value is a shared handle.
//
//	container.RegisterSingleton[*Logger](c)
func RegisterSingleton[T Construct[T]](c *Container) error {
	key := KeyOf[T]()
	return c.register(key, newSingleton(key, func(r *Resolver) any {
		return construct[T](r)
	}))
}

// RegisterSingletonAs is the singleton form of RegisterDelegate.
func RegisterSingletonAs[T any, E ConstructAs[T]](c *Container) error {
	key := KeyOf[T]()
	return c.register(key, newSingleton(key, func(r *Resolver) any {
		return constructAs[T, E](r)
	}))
}

// RegisterSingletonFunc is the singleton form of RegisterCustom.
func RegisterSingletonFunc[T any](c *Container, fn func(r *Resolver) T) error {
	key := KeyOf[T]()
	return c.register(key, newSingleton(key, func(r *Resolver) any {
		return fn(r)
	}))
}

func cloneStrategy[T any](value T) Constructor {
	if cl, ok := any(value).(Cloner[T]); ok {
		return func(_ *Resolver) any { return cl.Clone() }
	}
	return func(_ *Resolver) any {
		v := value
		return v
	}
}

// ── Fluent builder ────────────────────────────────────────────────────────────

// Registration is the fluent form of the registration functions.
// Strategies needing an extra type parameter (Transient, Delegate) are only
// available as package-level functions because Go methods cannot declare
// their own type parameters.
//
//	container.When[uint32](c).Clone(42)
//	container.When[*Cache](c).Singleton().ConstructWith(newCache)
type Registration[T any] struct {
	container *Container
}

// When starts a registration for T on c.
func When[T any](c *Container) *Registration[T] {
	return &Registration[T]{container: c}
}

// Clone is RegisterClone.
func (b *Registration[T]) Clone(value T) error {
	return RegisterClone(b.container, value)
}

// ConstructWith is RegisterCustom.
func (b *Registration[T]) ConstructWith(fn func(r *Resolver) T) error {
	return RegisterCustom(b.container, fn)
}

// Singleton switches the builder to memoized strategies.
func (b *Registration[T]) Singleton() *SingletonRegistration[T] {
	return &SingletonRegistration[T]{container: b.container}
}

// SingletonRegistration builds memoized strategies for T.
type SingletonRegistration[T any] struct {
	container *Container
}

// ConstructWith is RegisterSingletonFunc.
func (b *SingletonRegistration[T]) ConstructWith(fn func(r *Resolver) T) error {
	return RegisterSingletonFunc(b.container, fn)
}
