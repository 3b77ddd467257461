// Package config loads optional YAML settings for the setup tool: the
// ordered list of Mojang manifest mirrors, HTTP timeouts, and the jar
// filename. A missing settings file is not an error — every field has a
// default, and the mirror list is passed into the resolver explicitly so
// tests can substitute fake endpoints.
package config
