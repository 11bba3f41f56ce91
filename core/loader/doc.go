// Package loader provides the plugin-like feature loading system.
//
// Each feature implements the Feature interface, which defines its name, an
// enablement switch and route registration.
//
//	type Feature interface {
//	    Name() string
//	    IsEnabled() bool
//	    Load(app fiber.Router) error
//	}
//
// The Manager keeps features in registration order. Fiber matches routes in
// the order they were added, so the static catch-all must be registered after
// the admin features living under /_server.
package loader
