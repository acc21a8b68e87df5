package heap

import "github.com/go-kit/log"

// DefaultFanOut is the maximum number of children a tree root accepts by default.
const DefaultFanOut = 8

// options defines the configuration of a Heap.
type options struct {
	fanOut int        // Maximum number of children per node
	logger log.Logger // Receives debug output about the forest shape
}

// Option configures a Heap.
type Option func(*options)

// WithFanOut sets the maximum number of children per node. Values below 1 are ignored.
func WithFanOut(n int) Option {
	return func(o *options) {
		if n > 0 {
			o.fanOut = n
		}
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger(l log.Logger) Option {
	return func(o *options) {
		o.logger = l
	}
}

// defaultOptions returns the default configuration.
func defaultOptions() options {
	return options{
		fanOut: DefaultFanOut,
		logger: log.NewNopLogger(),
	}
}
