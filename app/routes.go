// Package app holds the HTTP endpoints of the arcade demo.
package app

import (
	"net/http"

	foundation "github.com/km-arc/go-locator/framework/app"
	"github.com/km-arc/go-locator/framework/container"
	gohttp "github.com/km-arc/go-locator/framework/http"
	"github.com/km-arc/go-locator/framework/routing"
	"github.com/km-arc/go-locator/internal/game"
)

// RequestID is registered in every request scope.
type RequestID string

// Routes mounts the demo endpoints on the application router. Each request
// resolves through its own child scope of the application container.
func Routes(a *foundation.Application) {
	r := a.Router()

	r.Get("/bindings", func(w http.ResponseWriter, req *http.Request) {
		keys := a.Bindings()
		names := make([]string, len(keys))
		for i, k := range keys {
			names[i] = k.String()
		}
		gohttp.NewWriter(w, req).OK(names)
	})

	r.Group(func(scoped *routing.Router) {
		scoped.Middleware(routing.Scoped(a.Container, func(s *container.Container, req *http.Request) error {
			return container.RegisterClone(s, RequestID(routing.RequestID(req)))
		}))

		scoped.Post("/boss/{action}", bossAction)
		scoped.Post("/player/jump", playerJump)
		scoped.Get("/log", logLines)
	})
}

func bossAction(w http.ResponseWriter, req *http.Request) {
	out := gohttp.NewWriter(w, req)
	rs, ok := routing.ResolverFrom(req.Context())
	if !ok {
		out.Fail(http.StatusInternalServerError, "no request scope")
		return
	}
	boss, err := container.TryResolve[*game.Boss](rs)
	if err != nil {
		out.Err(err)
		return
	}

	switch routing.Param(req, "action") {
	case "hit":
		boss.Hit()
	case "fire":
		boss.Fire()
	default:
		out.Fail(http.StatusNotFound, "unknown boss action")
		return
	}
	id, _ := container.Resolve[RequestID](rs)
	out.OK(map[string]any{
		"request_id": string(id),
		"logger_id":  boss.Logger().ID(),
	})
}

func playerJump(w http.ResponseWriter, req *http.Request) {
	out := gohttp.NewWriter(w, req)
	rs, ok := routing.ResolverFrom(req.Context())
	if !ok {
		out.Fail(http.StatusInternalServerError, "no request scope")
		return
	}
	player, err := container.TryResolve[*game.Player](rs)
	if err != nil {
		out.Err(err)
		return
	}
	out.OK(map[string]any{"sound": player.Jump()})
}

func logLines(w http.ResponseWriter, req *http.Request) {
	out := gohttp.NewWriter(w, req)
	rs, ok := routing.ResolverFrom(req.Context())
	if !ok {
		out.Fail(http.StatusInternalServerError, "no request scope")
		return
	}
	logger, err := container.TryResolve[*game.Logger](rs)
	if err != nil {
		out.Err(err)
		return
	}
	out.OK(logger.Lines())
}
