package container

import (
	"fmt"
	"slices"
)

// Resolver is a read-only view bound to one container, used to drive one
// resolution call graph. Strategies receive the Resolver that started the
// resolution, so nested lookups always see the lowest scope (and therefore
// every shadowing registration), even when the strategy itself was found in
// a parent.
//
// A Resolver is not safe for concurrent use. Take one per goroutine from
// Container.Resolver; the container and its singleton cells are shared.
type Resolver struct {
	container *Container

	// singleton keys under construction by this resolution, outermost first
	building []TypeKey
}

// Container returns the scope this Resolver is bound to.
func (r *Resolver) Container() *Container { return r.container }

// Resolve builds a T using the nearest strategy in the scope chain.
// ok is false when no scope has a strategy for T.
//
//	n, ok := container.Resolve[uint32](c.Resolver())
func Resolve[T any](r *Resolver) (T, bool) {
	var zero T
	f, ok := r.container.Lookup(KeyOf[T]())
	if !ok {
		return zero, false
	}
	// A strategy yielding anything but T is a registration defect; it is
	// reported the same way as a miss.
	v, ok := f(r).(T)
	if !ok {
		return zero, false
	}
	return v, true
}

// MustResolve is Resolve for dependencies that must be present, typically
// inside a Construct method. It panics with a *NotRegisteredError on a miss.
//
//	func (*Boss) Construct(r *container.Resolver) *Boss {
//	    return &Boss{logger: container.MustResolve[*Logger](r)}
//	}
func MustResolve[T any](r *Resolver) T {
	v, ok := Resolve[T](r)
	if !ok {
		panic(&NotRegisteredError{Key: KeyOf[T]()})
	}
	return v
}

// TryResolve is the error-returning form of Resolve. It returns an error
// matching ErrNotRegistered when T (or a dependency required through
// MustResolve) is missing, and ErrCyclicDependency when a singleton's
// construction requested itself. Other panics are not intercepted.
func TryResolve[T any](r *Resolver) (v T, err error) {
	key := KeyOf[T]()
	depth := len(r.building)
	defer func() {
		rec := recover()
		if rec == nil {
			return
		}
		r.building = r.building[:depth]
		switch e := rec.(type) {
		case *CyclicDependencyError:
			err = fmt.Errorf("resolving [%s]: %w", key, e)
		case *NotRegisteredError:
			err = fmt.Errorf("resolving [%s]: %w", key, e)
		default:
			panic(rec)
		}
	}()

	v, ok := Resolve[T](r)
	if !ok {
		return v, &NotRegisteredError{Key: key}
	}
	return v, nil
}

// enter marks key as under construction, panicking with a
// *CyclicDependencyError if this resolution is already building it.
func (r *Resolver) enter(key TypeKey) {
	if i := slices.Index(r.building, key); i >= 0 {
		chain := append(slices.Clone(r.building[i:]), key)
		panic(&CyclicDependencyError{Chain: chain})
	}
	r.building = append(r.building, key)
}

func (r *Resolver) leave() {
	r.building = r.building[:len(r.building)-1]
}
