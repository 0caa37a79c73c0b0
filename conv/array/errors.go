package array

import (
	"errors"
	"fmt"
	"reflect"
)

var (
	//ErrAllocation is returned when target slice can not be allocated
	ErrAllocation = errors.New("failed to allocate slice")
	//ErrInconsistentKind is returned when primitive element kind has no conversion branch
	ErrInconsistentKind = errors.New("inconsistent primitive kind")
	//ErrSizeMismatch is returned when collection enumerates different number of elements than its size
	ErrSizeMismatch = errors.New("collection size mismatch")
	//ErrUnexpectedType is returned when registry returns value of other than requested type
	ErrUnexpectedType = errors.New("unexpected converted type")
)

// Error represents element conversion error
type Error struct {
	Index  int
	Source reflect.Type
	Target reflect.Type
	Err    error
}

func (e *Error) Error() string {
	return fmt.Sprintf("failed to convert element %d (%v) to %v: %v", e.Index, e.Source, e.Target, e.Err)
}

func (e *Error) Unwrap() error {
	return e.Err
}

func newError(index int, value interface{}, target reflect.Type, err error) *Error {
	return &Error{Index: index, Source: reflect.TypeOf(value), Target: target, Err: err}
}
