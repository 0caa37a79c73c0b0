package array

import "github.com/viant/typeconv/visitor"

// List represents an ordered, index addressable container
type List interface {
	Len() int
	At(index int) interface{}
}

// Collection represents a sized container with its own enumeration order.
// Each stops when fn returns false.
type Collection interface {
	Len() int
	Each(fn func(element interface{}) bool)
}

// Iterable represents a lazily enumerated container of unknown size.
// Iterate stops when fn returns false.
type Iterable interface {
	Iterate(fn func(element interface{}) bool)
}

func eachVisitor(each func(fn func(element interface{}) bool)) visitor.Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		var err error
		index := 0
		each(func(element interface{}) bool {
			var next bool
			next, err = f(index, element)
			index++
			return err == nil && next
		})
		return err
	}
}
