package app

import (
	"context"
	"errors"
	"io"
	"log"
	"net/http"
	"time"

	"github.com/km-arc/go-locator/framework/config"
	"github.com/km-arc/go-locator/framework/container"
	"github.com/km-arc/go-locator/framework/providers"
	"github.com/km-arc/go-locator/framework/routing"
)

// Application is the root scope of the program plus its providers.
// It embeds the Container so the registration functions take it directly:
//
//	container.RegisterSingleton[*Cache](application.Container)
type Application struct {
	*container.Container
	Providers *container.ProviderRegistry
}

// New creates the application and registers the framework providers.
// A nil cfg is loaded from .env and the environment. Game output goes to out
// (io.Discard when nil).
func New(cfg *config.Config, out io.Writer) (*Application, error) {
	if cfg == nil {
		var err error
		if cfg, err = config.Load(); err != nil {
			return nil, err
		}
	}
	c := container.New()
	registry := container.NewProviderRegistry(c)

	a := &Application{
		Container: c,
		Providers: registry,
	}

	if out == nil {
		out = io.Discard
	}
	err := errors.Join(
		registry.Register(&providers.ConfigServiceProvider{Config: cfg}),
		registry.Register(&providers.RoutingServiceProvider{}),
		registry.Register(&providers.GameServiceProvider{
			Audio:  cfg.Game.Audio,
			Prefix: cfg.Game.LogPrefix,
			Out:    out,
		}),
	)
	if err != nil {
		return nil, err
	}
	return a, nil
}

// Register adds a ServiceProvider to the application.
func (a *Application) Register(provider container.ServiceProvider) error {
	return a.Providers.Register(provider)
}

// Boot runs the Boot phase on all providers.
func (a *Application) Boot() error {
	return a.Providers.Boot()
}

// Config resolves a copy of the configuration.
func (a *Application) Config() config.Config {
	return container.MustResolve[config.Config](a.Resolver())
}

// Router resolves the singleton router.
func (a *Application) Router() *routing.Router {
	return container.MustResolve[*routing.Router](a.Resolver())
}

// Serve boots the application (if needed) and serves HTTP on App.Port until
// ctx is cancelled, then shuts down gracefully.
func (a *Application) Serve(ctx context.Context) error {
	if !a.Providers.Booted() {
		if err := a.Boot(); err != nil {
			return err
		}
	}
	cfg := a.Config()
	srv := &http.Server{
		Addr:              ":" + cfg.App.Port,
		Handler:           a.Router(),
		ReadHeaderTimeout: 5 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Printf("%s running on http://localhost%s [%s]", cfg.App.Name, srv.Addr, cfg.App.Env)
		errc <- srv.ListenAndServe()
	}()

	select {
	case err := <-errc:
		return err
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return err
		}
		if err := <-errc; !errors.Is(err, http.ErrServerClosed) {
			return err
		}
		return nil
	}
}

// Environment returns App.Env.
func (a *Application) Environment() string { return a.Config().App.Env }
func (a *Application) IsLocal() bool       { return a.Environment() == "local" }
func (a *Application) IsProduction() bool  { return a.Environment() == "production" }
func (a *Application) IsDebug() bool       { return a.Config().App.Debug }
