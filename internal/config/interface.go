package config

import "context"

// Loader is the interface for a format-specific instance loader.
type Loader interface {
	// Load reads every instance the loader recognizes under the given paths.
	// Paths may be files or directories; entries in a format the loader does
	// not handle are skipped, not reported.
	Load(ctx context.Context, paths ...string) ([]*Instance, error)
}
