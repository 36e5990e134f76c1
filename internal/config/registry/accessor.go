package registry

import (
	"errors"
	"fmt"
	"strings"
	"sync"
)

// ErrSettingNotFound is returned when a setting is not registered.
var ErrSettingNotFound = errors.New("setting not found")

// ValueStore is the interface for accessing raw configuration values.
type ValueStore interface {
	// GetValue returns the value at the given path.
	// Returns nil, false if the path doesn't exist.
	GetValue(path string) (any, bool)
}

// MapValueStore wraps a nested map as a mutable ValueStore.
type MapValueStore struct {
	mu   sync.RWMutex
	data map[string]any
}

// NewMapValueStore creates a ValueStore from a nested map.
// A nil map yields an empty store.
func NewMapValueStore(data map[string]any) *MapValueStore {
	if data == nil {
		data = make(map[string]any)
	}
	return &MapValueStore{data: data}
}

// GetValue returns the value at the given dot-separated path.
func (s *MapValueStore) GetValue(path string) (any, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return getByPath(s.data, path)
}

// SetValue stores a value at the given dot-separated path, creating
// intermediate maps as needed.
func (s *MapValueStore) SetValue(path string, value any) {
	s.mu.Lock()
	defer s.mu.Unlock()
	setByPath(s.data, path, value)
}

// Accessor provides type-safe access to configuration values.
// Missing values fall back to the registered default, which is what
// lets a widget read a setting without a config file present.
type Accessor struct {
	registry *Registry
	values   ValueStore
}

// NewAccessor creates a new type-safe accessor.
func NewAccessor(registry *Registry, values ValueStore) *Accessor {
	return &Accessor{
		registry: registry,
		values:   values,
	}
}

// Get returns the raw value at the given path.
// If the value is not set, returns the default from the registry.
// Returns ErrSettingNotFound if the setting is not registered.
func (a *Accessor) Get(path string) (any, error) {
	if val, ok := a.values.GetValue(path); ok {
		return val, nil
	}

	setting := a.registry.Get(path)
	if setting == nil {
		return nil, fmt.Errorf("%w: %s", ErrSettingNotFound, path)
	}

	return setting.Default, nil
}

// GetString returns a string value at the given path.
func (a *Accessor) GetString(path string) (string, error) {
	val, err := a.Get(path)
	if err != nil {
		return "", err
	}
	if val == nil {
		return "", nil
	}

	s, ok := val.(string)
	if !ok {
		return "", &TypeError{Path: path, Expected: "string", Actual: fmt.Sprintf("%T", val)}
	}
	return s, nil
}

// GetInt returns an integer value at the given path.
func (a *Accessor) GetInt(path string) (int, error) {
	val, err := a.Get(path)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, nil
	}

	switch v := val.(type) {
	case int:
		return v, nil
	case int64:
		return int(v), nil
	case int32:
		return int(v), nil
	case float64:
		return int(v), nil
	default:
		return 0, &TypeError{Path: path, Expected: "integer", Actual: fmt.Sprintf("%T", val)}
	}
}

// GetFloat64 returns a float64 value at the given path.
func (a *Accessor) GetFloat64(path string) (float64, error) {
	val, err := a.Get(path)
	if err != nil {
		return 0, err
	}
	if val == nil {
		return 0, nil
	}

	switch v := val.(type) {
	case float64:
		return v, nil
	case float32:
		return float64(v), nil
	case int:
		return float64(v), nil
	case int64:
		return float64(v), nil
	default:
		return 0, &TypeError{Path: path, Expected: "number", Actual: fmt.Sprintf("%T", val)}
	}
}

// GetBool returns a boolean value at the given path.
func (a *Accessor) GetBool(path string) (bool, error) {
	val, err := a.Get(path)
	if err != nil {
		return false, err
	}
	if val == nil {
		return false, nil
	}

	b, ok := val.(bool)
	if !ok {
		return false, &TypeError{Path: path, Expected: "boolean", Actual: fmt.Sprintf("%T", val)}
	}
	return b, nil
}

// TypeError is returned when a type conversion fails.
type TypeError struct {
	Path     string
	Expected string
	Actual   string
}

func (e *TypeError) Error() string {
	return fmt.Sprintf("type error at %s: expected %s, got %s", e.Path, e.Expected, e.Actual)
}

// getByPath navigates a nested map using a dot-separated path.
func getByPath(data map[string]any, path string) (any, bool) {
	if data == nil {
		return nil, false
	}

	parts := strings.Split(path, ".")
	current := any(data)

	for _, part := range parts {
		m, ok := current.(map[string]any)
		if !ok {
			return nil, false
		}

		val, exists := m[part]
		if !exists {
			return nil, false
		}

		current = val
	}

	return current, true
}

// setByPath sets a value in a nested map using a dot-separated path.
// Creates intermediate maps as needed.
func setByPath(data map[string]any, path string, value any) {
	parts := strings.Split(path, ".")
	current := data

	for i := 0; i < len(parts)-1; i++ {
		part := parts[i]
		if next, ok := current[part].(map[string]any); ok {
			current = next
		} else {
			next := make(map[string]any)
			current[part] = next
			current = next
		}
	}

	current[parts[len(parts)-1]] = value
}
