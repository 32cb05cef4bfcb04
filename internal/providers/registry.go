package providers

import (
	"errors"
	"sync"
)

var (
	// ErrProviderNotFound is returned when a provider is not registered.
	ErrProviderNotFound = errors.New("provider not found")

	// ErrProviderExists is returned when registering a duplicate provider.
	ErrProviderExists = errors.New("provider already exists")

	// ErrNoAvailableProvider is returned when no registered provider is
	// configured with credentials.
	ErrNoAvailableProvider = errors.New("no available provider")
)

// Registry manages analyzer registration and lookup.
type Registry struct {
	mu        sync.RWMutex
	analyzers map[string]Analyzer
	order     []string
	fallback  string
}

// NewRegistry creates an empty provider registry.
func NewRegistry() *Registry {
	return &Registry{
		analyzers: make(map[string]Analyzer),
	}
}

// Register adds an analyzer. The first available analyzer registered
// becomes the default.
func (r *Registry) Register(a Analyzer) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	name := a.Name()
	if _, exists := r.analyzers[name]; exists {
		return ErrProviderExists
	}

	r.analyzers[name] = a
	r.order = append(r.order, name)

	if r.fallback == "" && a.Available() {
		r.fallback = name
	}

	return nil
}

// Get returns the analyzer with the given name.
func (r *Registry) Get(name string) (Analyzer, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	a, ok := r.analyzers[name]
	if !ok {
		return nil, ErrProviderNotFound
	}
	return a, nil
}

// Default returns the named analyzer when name is non-empty, otherwise the
// first available one in registration order.
func (r *Registry) Default(name string) (Analyzer, error) {
	if name != "" {
		return r.Get(name)
	}

	r.mu.RLock()
	defer r.mu.RUnlock()

	for _, n := range r.order {
		if r.analyzers[n].Available() {
			return r.analyzers[n], nil
		}
	}
	return nil, ErrNoAvailableProvider
}

// List returns the names of all registered analyzers in registration order.
func (r *Registry) List() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	names := make([]string, len(r.order))
	copy(names, r.order)
	return names
}
