// Package config reads application settings from the environment.
package config

import goconfig "github.com/escalopa/config-go"

var cfg = goconfig.New()

// Get returns the value of the given key, empty when unset.
func Get(key string) string {
	return cfg.Get(key)
}

// GetOrDefault returns the value of the given key, or def when unset.
func GetOrDefault(key, def string) string {
	env := cfg.Get(key)
	if env != "" {
		return env
	}
	return def
}
