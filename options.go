package bitvec

type options struct {
	logger *Logger
}

// Option configures a BitVector at construction.
type Option func(*options)

// WithLogger attaches a structured logger to the vector.
// Copies made with Clone and the results of operators inherit it.
//
// If nil is passed, logging is disabled.
func WithLogger(l *Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

func applyOptions(optFns []Option) options {
	var o options
	for _, fn := range optFns {
		if fn != nil {
			fn(&o)
		}
	}
	return o
}
