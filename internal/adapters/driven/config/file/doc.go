// Package file provides the TOML-backed configuration store.
// Settings live in <config-dir>/config.toml, grouped into [check], [search]
// and [cache] tables, and are addressed with dot-notation keys.
package file
