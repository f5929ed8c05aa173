package docgo

const defaultCapacity = 8

type options struct {
	capacity int
}

// Option configures Doc construction.
type Option func(*options)

// WithCapacity pre-sizes the buffer for an expected token count, avoiding
// doubling reallocations while the producer pushes tokens.
func WithCapacity(capacity int) Option {
	return func(o *options) {
		if capacity > 0 {
			o.capacity = capacity
		}
	}
}
