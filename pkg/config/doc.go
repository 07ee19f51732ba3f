// Package config loads and validates the driver configuration: the
// seed, output size, and render settings cmd/mapgen needs around a
// generator program, as distinct from the program itself (pkg/program).
package config
