package vector

import "log/slog"

const (
	// DefaultInitialCapacity is the capacity of a vector created without
	// WithInitialCapacity.
	DefaultInitialCapacity = 20

	// DefaultGrowthBoost is how many slots are added each time a full
	// vector has to grow.
	DefaultGrowthBoost = 10
)

// Option configures a Vector at construction time.
type Option func(*options)

type options struct {
	initialCapacity int
	boost           int
	name            string
	log             *slog.Logger
}

func defaultOptions() options {
	return options{
		initialCapacity: DefaultInitialCapacity,
		boost:           DefaultGrowthBoost,
	}
}

// WithInitialCapacity sets the number of slots allocated up front.
// Zero is allowed; negative values are treated as zero.
func WithInitialCapacity(capacity int) Option {
	return func(o *options) {
		o.initialCapacity = max(capacity, 0)
	}
}

// WithGrowthBoost sets the fixed number of slots added on every growth.
// Growth is additive, never multiplicative. Values below one are ignored.
func WithGrowthBoost(boost int) Option {
	return func(o *options) {
		if boost > 0 {
			o.boost = boost
		}
	}
}

// WithName names the vector. Named vectors report reallocations, element
// copies, size and capacity as Prometheus metrics labeled with the name.
// Vectors sharing a name share the series. Clones are not named.
func WithName(name string) Option {
	return func(o *options) {
		o.name = name
	}
}

// WithLogger makes the vector log each reallocation at debug level.
func WithLogger(log *slog.Logger) Option {
	return func(o *options) {
		o.log = log
	}
}
