package array

type options struct {
	splitter  Splitter
	allocator interface{}
}

// Option represents converter option
type Option func(o *options)

// WithSplitter sets text splitter
func WithSplitter(splitter Splitter) Option {
	return func(o *options) {
		o.splitter = splitter
	}
}

// WithAllocator overrides target slice allocation, allocator is only used by Converter[T] of the same T
func WithAllocator[T any](allocate func(length int) []T) Option {
	return func(o *options) {
		o.allocator = allocate
	}
}
