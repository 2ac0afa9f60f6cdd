package internal

import (
	"github.com/starford/ansuz/internal/logging"
)

// Option is a functional option for configuring the application.
type Option func(*application)

type application struct {
	config *Config
	log    *logging.Logger
}

// WithConfig sets the application configuration.
func WithConfig(cfg *Config) Option {
	return func(a *application) {
		a.config = cfg
	}
}

// WithLogger overrides the default stdout logger. Used by tests to capture
// output.
func WithLogger(log *logging.Logger) Option {
	return func(a *application) {
		a.log = log
	}
}
