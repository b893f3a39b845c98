// Package config defines the format-agnostic problem model for the
// application, along with the Loader interface for reading it from various
// sources.
//
// The `config.Instance` is the single source of truth for the `stn` and `env`
// packages. Concrete loaders for HCL, YAML and the legacy whitespace tables
// live in separate packages and translate their own document shapes into this
// model.
package config
