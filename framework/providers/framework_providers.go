package providers

import (
	"errors"
	"io"

	"github.com/km-arc/go-locator/framework/config"
	"github.com/km-arc/go-locator/framework/container"
	"github.com/km-arc/go-locator/framework/routing"
	"github.com/km-arc/go-locator/internal/game"
)

// ── ConfigServiceProvider ─────────────────────────────────────────────────────

// ConfigServiceProvider binds the application configuration.
//
// Bound types:
//   - config.Config (clone: every resolution gets its own copy)
//
// When Config is nil the configuration is loaded from EnvFiles.
type ConfigServiceProvider struct {
	container.BaseProvider
	Config   *config.Config
	EnvFiles []string
}

func (p *ConfigServiceProvider) Register(c *container.Container) error {
	cfg := p.Config
	if cfg == nil {
		var err error
		if cfg, err = config.Load(p.EnvFiles...); err != nil {
			return err
		}
	}
	return container.RegisterClone(c, *cfg)
}

// ── RoutingServiceProvider ────────────────────────────────────────────────────

// RoutingServiceProvider registers the HTTP router.
//
// Bound types:
//   - *routing.Router (singleton)
type RoutingServiceProvider struct {
	container.BaseProvider
}

func (p *RoutingServiceProvider) Register(c *container.Container) error {
	return container.RegisterSingletonFunc(c, func(*container.Resolver) *routing.Router {
		return routing.New()
	})
}

// ── GameServiceProvider ───────────────────────────────────────────────────────

// GameServiceProvider wires the game graph.
//
// Bound types:
//   - *game.Logger (singleton), game.AudioManager, *game.Player, *game.Boss
//   - game.Prefix (clone)
//   - io.Writer (clone, only when Out is set)
type GameServiceProvider struct {
	Audio  string
	Prefix string
	Out    io.Writer
}

func (p *GameServiceProvider) Register(c *container.Container) error {
	if err := game.Register(c, p.Audio); err != nil {
		return err
	}
	errs := []error{container.RegisterClone(c, game.Prefix(p.Prefix))}
	if p.Out != nil {
		errs = append(errs, container.RegisterClone(c, p.Out))
	}
	return errors.Join(errs...)
}

// Boot builds the shared logger eagerly so a broken graph fails at startup.
func (p *GameServiceProvider) Boot(r *container.Resolver) error {
	logger, err := container.TryResolve[*game.Logger](r)
	if err != nil {
		return err
	}
	if _, err := container.TryResolve[game.AudioManager](r); err != nil {
		return err
	}
	logger.Log("game booted")
	return nil
}
