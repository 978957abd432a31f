package container

// Construct is implemented by types that know how to build themselves from a
// Resolver. The method is called on the zero value of T (a nil receiver for
// pointer types), so it must not read its receiver.
//
// Dependencies must be resolved through the Resolver passed in. A fresh one
// from Container.Resolver does not know which singletons are under
// construction, so a cycle through it blocks forever instead of failing with
// ErrCyclicDependency.
//
//	type Boss struct{ logger *Logger }
//
//	func (*Boss) Construct(r *container.Resolver) *Boss {
//	    return &Boss{logger: container.MustResolve[*Logger](r)}
//	}
type Construct[T any] interface {
	Construct(r *Resolver) T
}

// ConstructAs lets one concrete type act as the build recipe for a different
// registered type, usually an interface. Like Construct, it is called on the
// zero value of the implementing type.
//
//	func (*TestAudioManager) ConstructAs(r *container.Resolver) AudioManager {
//	    return &TestAudioManager{}
//	}
type ConstructAs[T any] interface {
	ConstructAs(r *Resolver) T
}

// Cloner is an optional interface for values registered with RegisterClone.
// When implemented, every resolution receives Clone() instead of a plain Go
// copy, which matters for values holding slices, maps or pointers.
type Cloner[T any] interface {
	Clone() T
}

func construct[T Construct[T]](r *Resolver) T {
	var zero T
	return zero.Construct(r)
}

func constructAs[T any, E ConstructAs[T]](r *Resolver) T {
	var zero E
	return zero.ConstructAs(r)
}
