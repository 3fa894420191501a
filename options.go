package jsonapi

import (
	"github.com/neuronlabs/jsonapi/config"
	"github.com/neuronlabs/jsonapi/log"
)

// Option is the function that sets the Encoder options.
type Option func(e *Encoder)

// WithConfig sets the encoder config. The encoder restores the values from
// the config after each encoding.
func WithConfig(cfg *config.Encoder) Option {
	return func(e *Encoder) {
		if cfg != nil {
			e.config = cfg
		}
	}
}

// WithLogger sets the module logger of the encoder.
func WithLogger(logger *log.ModuleLogger) Option {
	return func(e *Encoder) {
		if logger != nil {
			e.logger = logger
		}
	}
}
