// Package config loads and validates topicroute configuration.
//
// Configuration priority: built-in defaults, then an optional YAML
// file, then environment variable overrides. The routing table is read
// once at startup and treated as immutable afterwards.
package config
