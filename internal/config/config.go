// Package config wires the settings registry, defaults and file
// loading for the plot viewer.
package config

import (
	"github.com/dshills/plotview/internal/config/loader"
	"github.com/dshills/plotview/internal/config/registry"
)

// Setting paths used by the plot widgets.
const (
	// KeyZoomCenterOnCursor controls whether wheel zoom keeps the
	// visible x-range centered on the cursor line.
	KeyZoomCenterOnCursor = "plot.zoom_x_center_on_cursor"

	// KeyWheelScaleFactor is the exponent scale applied per wheel
	// delta unit.
	KeyWheelScaleFactor = "plot.wheel_scale_factor"

	// KeyXMouseEnabled enables mouse interaction on the x axis.
	KeyXMouseEnabled = "plot.x_mouse_enabled"

	// KeyYMouseEnabled enables mouse interaction on the y axis.
	KeyYMouseEnabled = "plot.y_mouse_enabled"
)

// DefaultWheelScaleFactor is the exponent per wheel delta unit: one
// discrete tick (120 units) scales the view by 1.02^-15.
const DefaultWheelScaleFactor = -1.0 / 8.0

// NewRegistry returns a registry with all plotview settings registered.
func NewRegistry() *registry.Registry {
	r := registry.NewRegistry()

	// Defaults are validated at registration; panics here are
	// programming errors caught by the package tests.
	mustRegister(r, &registry.Setting{
		Path:        KeyZoomCenterOnCursor,
		Type:        registry.TypeBool,
		Default:     true,
		Description: "Keep wheel zoom centered on the cursor line",
	})
	mustRegister(r, &registry.Setting{
		Path:        KeyWheelScaleFactor,
		Type:        registry.TypeFloat,
		Default:     DefaultWheelScaleFactor,
		Description: "Scale exponent per wheel delta unit",
		Minimum:     registry.MinValue(-1),
		Maximum:     registry.MaxValue(1),
	})
	mustRegister(r, &registry.Setting{
		Path:        KeyXMouseEnabled,
		Type:        registry.TypeBool,
		Default:     true,
		Description: "Enable mouse interaction on the x axis",
	})
	mustRegister(r, &registry.Setting{
		Path:        KeyYMouseEnabled,
		Type:        registry.TypeBool,
		Default:     true,
		Description: "Enable mouse interaction on the y axis",
	})

	return r
}

func mustRegister(r *registry.Registry, s *registry.Setting) {
	if err := r.Register(s); err != nil {
		panic(err)
	}
}

// Load builds an accessor from the registered defaults overlaid with
// values from the given TOML file. An empty path uses defaults only.
func Load(path string) (*registry.Accessor, error) {
	reg := NewRegistry()

	values := map[string]any{}
	if path != "" {
		var err error
		values, err = loader.NewTOMLLoader(path).Load()
		if err != nil {
			return nil, err
		}
	}

	return registry.NewAccessor(reg, registry.NewMapValueStore(values)), nil
}
