package config

import (
	"github.com/kbukum/streamkit/flow"
	"github.com/kbukum/streamkit/logger"
	"github.com/kbukum/streamkit/validation"
)

// StreamConfig contains the stream defaults an application embedding
// streamkit needs. Projects extend this by embedding it in their own config
// structs.
//
// Example:
//
//	type MyConfig struct {
//	    config.StreamConfig `yaml:",inline" mapstructure:",squash"`
//	    Source source.Config `yaml:"source" mapstructure:"source"`
//	}
type StreamConfig struct {
	Name string `yaml:"name" mapstructure:"name"`
	// BufferSize is the per-subscription bounded queue capacity used when
	// hopping execution contexts.
	BufferSize int `yaml:"buffer_size" mapstructure:"buffer_size" validate:"gt=0"`
	// DelayError keeps buffered items ahead of a recorded failure.
	DelayError bool          `yaml:"delay_error" mapstructure:"delay_error"`
	Logging    logger.Config `yaml:"logging" mapstructure:"logging"`
}

// GetStreamConfig returns the base StreamConfig. When embedded in a larger
// config struct, this method is promoted so the embedding struct
// automatically satisfies the Config interface.
func (c *StreamConfig) GetStreamConfig() *StreamConfig {
	return c
}

// Config is satisfied by any struct embedding StreamConfig.
type Config interface {
	GetStreamConfig() *StreamConfig
}

// ApplyDefaults applies default values to the stream configuration.
// Override this in embedding structs and call
// c.StreamConfig.ApplyDefaults() first.
func (c *StreamConfig) ApplyDefaults() {
	if c.BufferSize == 0 {
		c.BufferSize = flow.DefaultBufferSize
	}
	// Propagate the name into logging so Init() uses the right tag.
	if c.Logging.ServiceName == "" && c.Name != "" {
		c.Logging.ServiceName = c.Name
	}
	c.Logging.ApplyDefaults()
}

// Validate validates the stream configuration fields.
// Override this in embedding structs and call c.StreamConfig.Validate()
// first.
func (c *StreamConfig) Validate() error {
	if err := validation.Validate(c); err != nil {
		return err
	}
	return c.Logging.Validate()
}
