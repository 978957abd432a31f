package routing

import (
	"context"
	"net/http"

	"github.com/km-arc/go-locator/framework/container"
)

type scopeKey struct{}

// ScopeFunc registers request-specific strategies into a fresh child scope.
type ScopeFunc func(scope *container.Container, r *http.Request) error

// Scoped gives every request its own child container whose upstream is
// parent. setup may register per-request values (request ID, user, ...);
// they shadow nothing outside the request. A setup error answers 500.
//
//	r.Middleware(routing.Scoped(app.Container, func(s *container.Container, r *http.Request) error {
//	    return container.RegisterClone(s, RequestID(routing.RequestID(r)))
//	}))
func Scoped(parent *container.Container, setup ScopeFunc) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, req *http.Request) {
			scope := container.WithParent(parent)
			if setup != nil {
				if err := setup(scope, req); err != nil {
					http.Error(w, err.Error(), http.StatusInternalServerError)
					return
				}
			}
			ctx := context.WithValue(req.Context(), scopeKey{}, scope.Resolver())
			next.ServeHTTP(w, req.WithContext(ctx))
		})
	}
}

// ResolverFrom returns the request scope's Resolver stored by Scoped.
func ResolverFrom(ctx context.Context) (*container.Resolver, bool) {
	r, ok := ctx.Value(scopeKey{}).(*container.Resolver)
	return r, ok
}
