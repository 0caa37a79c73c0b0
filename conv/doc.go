// Package conv provides a registry of leaf value converters.
// It converts values to primitives, their named variants, pointers, time.Time and slices,
// and accepts custom converters registered per target type or per source/destination pair.
// Slice targets are served by the array package converters created on demand.
package conv
