package htable

import "github.com/rs/zerolog"

type options struct {
	logger zerolog.Logger
}

func defaultOptions() options {
	return options{logger: zerolog.Nop()}
}

// Option configures a Table at construction
type Option func(*options)

// WithLogger makes the table report resize events at debug level
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) {
		o.logger = logger.With().Str("component", "htable").Logger()
	}
}
