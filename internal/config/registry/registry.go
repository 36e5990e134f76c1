package registry

import (
	"fmt"
	"sort"
	"sync"
)

// Registry holds the definitions of all known settings.
type Registry struct {
	mu       sync.RWMutex
	settings map[string]*Setting
}

// NewRegistry creates an empty registry.
func NewRegistry() *Registry {
	return &Registry{
		settings: make(map[string]*Setting),
	}
}

// Register adds a setting definition.
// Registering an existing path replaces the definition.
func (r *Registry) Register(s *Setting) error {
	if s == nil || s.Path == "" {
		return fmt.Errorf("registry: setting must have a path")
	}
	if s.Default != nil {
		if err := s.Validate(s.Default); err != nil {
			return fmt.Errorf("registry: invalid default for %s: %w", s.Path, err)
		}
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	r.settings[s.Path] = s
	return nil
}

// Get returns the setting definition for a path, or nil if unknown.
func (r *Registry) Get(path string) *Setting {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.settings[path]
}

// Paths returns all registered paths, sorted.
func (r *Registry) Paths() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()

	paths := make([]string, 0, len(r.settings))
	for p := range r.settings {
		paths = append(paths, p)
	}
	sort.Strings(paths)
	return paths
}
