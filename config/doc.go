// Package config handles loading and parsing of configuration from YAML files
// and environment variables. It defines the application configuration structure
// covering the listen address, environment, logging level, and hit accounting
// buffer size. Platform-injected PORT takes precedence over the configured
// listen address.
package config
