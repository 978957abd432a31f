package container

import "sync"

// singleton memoizes one strategy. The mutex is held for the whole first
// construction so concurrent first callers block and then share the result.
type singleton struct {
	key   TypeKey
	build Constructor

	mu    sync.Mutex
	built bool
	value any
}

func newSingleton(key TypeKey, build Constructor) Constructor {
	s := &singleton{key: key, build: build}
	return s.get
}

// get returns the cached value, constructing it on first use. Re-entry
// through the same Resolver is caught by Resolver.enter before the lock is
// taken. Re-entry through another Resolver (a second goroutine, or a build
// that called Container.Resolver itself) blocks on the lock.
func (s *singleton) get(r *Resolver) any {
	r.enter(s.key)
	defer r.leave()

	s.mu.Lock()
	defer s.mu.Unlock()
	if !s.built {
		// a panicking build leaves the cell empty
		s.value = s.build(r)
		s.built = true
	}
	return s.value
}
