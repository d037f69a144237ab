// Package config loads streamkit configuration from YAML files and
// environment variables.
//
// Applications embedding streamkit keep stream defaults (buffer size, error
// delay policy, logging) in a config.yml next to their binary or in the
// environment. LoadConfig discovers both, env vars winning over file values.
//
//	var cfg config.StreamConfig
//	if err := config.LoadConfig("my-service", &cfg); err != nil {
//	    ...
//	}
//	cfg.ApplyDefaults()
//	if err := cfg.Validate(); err != nil {
//	    ...
//	}
package config
