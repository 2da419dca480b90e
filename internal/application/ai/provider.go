// Package ai implements the text-generation gateway: prompt building,
// provider selection, and translation of provider failures into a
// small user-facing error taxonomy.
package ai

import (
	"context"
	"fmt"
)

// Provider is an external text-generation service. Generate performs a
// single synchronous call and returns the raw generated text.
type Provider interface {
	Name() string
	Generate(ctx context.Context, prompt string) (string, error)
}

// Registry holds the configured providers in preference order. The
// set is fixed at configuration time; the hot path never probes for
// credentials.
type Registry struct {
	override  string
	providers []Provider
}

// NewRegistry builds a registry from the providers that have
// credentials configured, in preference order. override forces a
// specific provider by name; empty means first available.
func NewRegistry(override string, providers ...Provider) *Registry {
	return &Registry{
		override:  override,
		providers: providers,
	}
}

// Select picks the provider per policy: explicit override first, then
// the first configured provider, otherwise ErrNoProvider.
func (r *Registry) Select() (Provider, error) {
	if r.override != "" {
		for _, p := range r.providers {
			if p.Name() == r.override {
				return p, nil
			}
		}
		return nil, fmt.Errorf("%w: provider %q is not configured", ErrNoProvider, r.override)
	}

	if len(r.providers) == 0 {
		return nil, ErrNoProvider
	}
	return r.providers[0], nil
}
