package config

import (
	"sync/atomic"
)

// Provider gives handlers access to the active configuration. The pointer
// swap is atomic, so a reload never tears a config mid-request; callers
// take a snapshot with Get and use it for the whole request.
type Provider struct {
	config atomic.Pointer[Config]
}

func NewProvider(cfg *Config) *Provider {
	p := &Provider{}
	p.config.Store(cfg)
	return p
}

// Get returns the current configuration snapshot.
func (p *Provider) Get() *Config {
	return p.config.Load()
}

// Update atomically replaces the active configuration.
func (p *Provider) Update(cfg *Config) {
	p.config.Store(cfg)
}
