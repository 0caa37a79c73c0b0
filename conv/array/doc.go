// Package array converts arbitrary values to typed slices.
//
// Conversion rules:
//   - nil value is returned as nil
//   - a non slice value is checked for List, Collection and iterable shapes, text is split
//     into fields first
//   - if a non slice value can't be resolved, it is converted to a single element slice
//   - a source slice is converted to the target slice, by converting each element
//
// Every element is converted with a Registry, a slice whose element type already matches
// the target is returned as is.
package array
