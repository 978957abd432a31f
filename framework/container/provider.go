package container

import "fmt"

// ── ServiceProvider interface ─────────────────────────────────────────────────

// ServiceProvider groups related registrations.
//
// Register runs during setup and must only register; a duplicate registration
// surfaces here as an error. Boot runs after every provider has registered,
// so it is safe to resolve anything there.
//
//	type GameProvider struct{ container.BaseProvider }
//
//	func (p *GameProvider) Register(c *container.Container) error {
//	    return container.RegisterSingleton[*Logger](c)
//	}
//
//	func (p *GameProvider) Boot(r *container.Resolver) error {
//	    container.MustResolve[*Logger](r).Log("booted")
//	    return nil
//	}
type ServiceProvider interface {
	// Register binds strategies into the container.
	Register(c *Container) error

	// Boot is called after all providers are registered.
	Boot(r *Resolver) error
}

// ── BaseProvider ──────────────────────────────────────────────────────────────

// BaseProvider is an embeddable no-op Boot.
type BaseProvider struct{}

func (p *BaseProvider) Boot(_ *Resolver) error { return nil }

// ── ProviderRegistry ──────────────────────────────────────────────────────────

// ProviderRegistry runs the two-phase setup of a container: every provider's
// Register, then every provider's Boot.
type ProviderRegistry struct {
	container  *Container
	providers  []ServiceProvider
	registered map[ServiceProvider]bool
	booted     bool
}

// NewProviderRegistry creates a registry bound to c.
func NewProviderRegistry(c *Container) *ProviderRegistry {
	return &ProviderRegistry{
		container:  c,
		registered: make(map[ServiceProvider]bool),
	}
}

// Register calls provider.Register. Registering the same provider value
// twice is a no-op. A provider added after Boot is booted immediately.
func (pr *ProviderRegistry) Register(provider ServiceProvider) error {
	if pr.registered[provider] {
		return nil
	}
	if err := provider.Register(pr.container); err != nil {
		return fmt.Errorf("registering %T: %w", provider, err)
	}
	pr.registered[provider] = true
	pr.providers = append(pr.providers, provider)

	if pr.booted {
		return pr.boot(provider)
	}
	return nil
}

// Boot calls Boot on every registered provider in registration order and
// stops at the first error. Later calls are no-ops.
func (pr *ProviderRegistry) Boot() error {
	if pr.booted {
		return nil
	}
	pr.booted = true
	for _, provider := range pr.providers {
		if err := pr.boot(provider); err != nil {
			return err
		}
	}
	return nil
}

func (pr *ProviderRegistry) boot(provider ServiceProvider) error {
	if err := provider.Boot(pr.container.Resolver()); err != nil {
		return fmt.Errorf("booting %T: %w", provider, err)
	}
	return nil
}

// Booted reports whether Boot has been called.
func (pr *ProviderRegistry) Booted() bool { return pr.booted }

// Providers returns the registered providers in registration order.
func (pr *ProviderRegistry) Providers() []ServiceProvider { return pr.providers }

// Container returns the container the providers register into.
func (pr *ProviderRegistry) Container() *Container { return pr.container }
