// Package discrete: functional options for the elimination drivers.
// SumProduct, MaxProduct and Optimize accept either an explicit Ordering or
// an OrderingType; with no options they fall back to the NATURAL ordering.
package discrete

// Options configures one driver call.
//
// Ordering     – explicit elimination ordering; validated as an exact
//                permutation of the graph's universe when set.
// OrderingType – built-in policy used when no explicit Ordering is given.
type Options struct {
	Ordering     Ordering     // explicit ordering (nil = compute from type)
	OrderingType OrderingType // policy for the computed ordering
}

// Option is a functional option for the elimination drivers.
type Option func(*Options)

// WithOrdering supplies an explicit elimination ordering. The driver fails
// with ErrInvalidOrdering if it is not a permutation of the graph's keys.
func WithOrdering(ordering Ordering) Option {
	return func(o *Options) {
		o.Ordering = ordering
	}
}

// WithOrderingType selects a built-in ordering policy, used only when no
// explicit ordering is supplied.
func WithOrderingType(orderingType OrderingType) Option {
	return func(o *Options) {
		o.OrderingType = orderingType
	}
}

// DefaultOptions returns the driver defaults: no explicit ordering, NATURAL
// ordering policy.
func DefaultOptions() Options {
	return Options{
		Ordering:     nil,
		OrderingType: OrderingNatural,
	}
}
