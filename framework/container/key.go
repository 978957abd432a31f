package container

import (
	"reflect"
)

// TypeKey identifies a requested type inside a Container.
//
// Two keys are equal iff they denote the same Go type. Interface types keep
// their own identity, so the key for an interface never matches the key of a
// concrete type implementing it.
//
//	container.KeyOf[*Logger]()       // "*game.Logger"
//	container.KeyOf[AudioManager]()  // "game.AudioManager"
type TypeKey struct {
	t reflect.Type
}

// KeyOf returns the TypeKey for T.
func KeyOf[T any]() TypeKey {
	return TypeKey{t: reflect.TypeFor[T]()}
}

// Type returns the underlying reflect.Type (nil for the zero TypeKey).
func (k TypeKey) Type() reflect.Type { return k.t }

// IsZero reports whether k was never assigned a type.
func (k TypeKey) IsZero() bool { return k.t == nil }

// String returns the Go spelling of the type, e.g. "*game.Logger".
func (k TypeKey) String() string {
	if k.t == nil {
		return "<nil>"
	}
	return k.t.String()
}

// Less orders keys by type string, then by package path of the (pointer-
// stripped) type. Distinct types that still tie, such as same-named types
// declared inside different functions, are ordered by their runtime type
// descriptor, which is stable for the life of the process.
func (k TypeKey) Less(other TypeKey) bool {
	a, b := k.String(), other.String()
	if a != b {
		return a < b
	}
	if pa, pb := pkgPath(k.t), pkgPath(other.t); pa != pb {
		return pa < pb
	}
	return typeAddr(k.t) < typeAddr(other.t)
}

func typeAddr(t reflect.Type) uintptr {
	if t == nil {
		return 0
	}
	return reflect.ValueOf(t).Pointer()
}

func pkgPath(t reflect.Type) string {
	for t != nil {
		switch t.Kind() {
		case reflect.Pointer, reflect.Slice, reflect.Array, reflect.Chan, reflect.Map:
			t = t.Elem()
		default:
			return t.PkgPath()
		}
	}
	return ""
}
