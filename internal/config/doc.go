// Package config loads and validates the reconciler configuration.
//
// Configuration is a YAML file with ${VAR} environment substitution. Every
// field is optional; applyDefaults fills in anything missing, so an empty
// file is a valid configuration.
package config
