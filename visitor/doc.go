// Package visitor offers generic visitors for the container shapes handled by
// the array converter: slices and arrays, linked lists and range-over-func sequences.
// It also provides a small concurrent map used for converter registration.
package visitor
