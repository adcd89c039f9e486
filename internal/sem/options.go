package sem

import "github.com/sirupsen/logrus"

// options holds Analyze's optional, purely-observational configuration.
type options struct {
	logger *logrus.Logger
}

// Option configures Analyze.
type Option func(*options)

// WithLogger attaches a structured logger that receives one debug line per
// registry-seeding step and per specialization request (spec_full §4.8).
// Logging never affects control flow or error semantics; passing nil (the
// default) disables it.
func WithLogger(logger *logrus.Logger) Option {
	return func(o *options) { o.logger = logger }
}
