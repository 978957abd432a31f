package container

import (
	"errors"
	"fmt"
	"strings"
)

var (
	// ErrAlreadyRegistered is returned when a type already has a strategy in
	// the same container.
	ErrAlreadyRegistered = errors.New("container: type already registered")

	// ErrNotRegistered means no scope in the chain has a strategy for a type.
	ErrNotRegistered = errors.New("container: type not registered")

	// ErrCyclicDependency is raised when a singleton's construction resolves
	// that same singleton again.
	ErrCyclicDependency = errors.New("container: cyclic singleton dependency")
)

// AlreadyRegisteredError carries the key that was registered twice.
type AlreadyRegisteredError struct {
	Key TypeKey
}

func (e *AlreadyRegisteredError) Error() string {
	return fmt.Sprintf("container: [%s] is already registered in this scope", e.Key)
}

func (e *AlreadyRegisteredError) Is(target error) bool {
	return target == ErrAlreadyRegistered
}

// NotRegisteredError carries the key that could not be resolved.
type NotRegisteredError struct {
	Key TypeKey
}

func (e *NotRegisteredError) Error() string {
	return fmt.Sprintf("container: no strategy registered for [%s]", e.Key)
}

func (e *NotRegisteredError) Is(target error) bool {
	return target == ErrNotRegistered
}

// CyclicDependencyError lists the singleton keys under construction, in
// order, ending with the key that was requested again.
type CyclicDependencyError struct {
	Chain []TypeKey
}

func (e *CyclicDependencyError) Error() string {
	names := make([]string, len(e.Chain))
	for i, k := range e.Chain {
		names[i] = k.String()
	}
	return "container: cyclic singleton dependency: " + strings.Join(names, " -> ")
}

func (e *CyclicDependencyError) Is(target error) bool {
	return target == ErrCyclicDependency
}

// IsAlreadyRegistered reports whether err is a duplicate registration.
func IsAlreadyRegistered(err error) bool {
	return errors.Is(err, ErrAlreadyRegistered)
}

// IsNotRegistered reports whether err is a resolution miss.
func IsNotRegistered(err error) bool {
	return errors.Is(err, ErrNotRegistered)
}
