// Package loader provides the plugin-like feature loading system.
//
// Each feature (offers, markets, catalog, ...) implements Feature and is
// registered with a Manager, which loads the enabled ones onto the router.
//
// # Feature Interface
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
package loader
