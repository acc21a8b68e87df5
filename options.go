package lazysort

import (
	"github.com/davidvella/lazysort/partition"
	"github.com/go-kit/log"
)

// options defines all configuration options for an Iterator.
type options[T any] struct {
	pivot    partition.Pivot[T] // Chooses the pivot of each partitioned range
	logger   log.Logger         // Receives debug output about partition steps
	observer Observer           // Notified after each emitted element
}

// Option is a function that configures an Iterator.
type Option[T any] func(*options[T])

// WithPivot sets the pivot selection used when partitioning.
func WithPivot[T any](p partition.Pivot[T]) Option[T] {
	return func(o *options[T]) {
		o.pivot = p
	}
}

// WithLogger sets the logger used for debug output.
func WithLogger[T any](l log.Logger) Option[T] {
	return func(o *options[T]) {
		o.logger = l
	}
}

// WithObserver sets an observer notified after each emitted element.
func WithObserver[T any](obs Observer) Option[T] {
	return func(o *options[T]) {
		o.observer = obs
	}
}

// defaultOptions returns the default configuration.
func defaultOptions[T any]() options[T] {
	return options[T]{
		pivot:    partition.Midpoint[T],
		logger:   log.NewNopLogger(),
		observer: nil,
	}
}
