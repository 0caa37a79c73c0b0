package visitor

import (
	"fmt"
	"reflect"

	"github.com/viant/xunsafe"
)

// AnySliceVisitorOf dynamically creates a visitor from any slice or array value.
func AnySliceVisitorOf(value interface{}) (Visitor[int, any], error) {
	switch actual := value.(type) {
	case []string:
		return AnyTypedSliceVisitorOf[string](actual), nil
	case []interface{}:
		return AnyTypedSliceVisitorOf[interface{}](actual), nil
	case []int:
		return AnyTypedSliceVisitorOf[int](actual), nil
	case []uint:
		return AnyTypedSliceVisitorOf[uint](actual), nil
	case []uint32:
		return AnyTypedSliceVisitorOf[uint32](actual), nil
	case []uint64:
		return AnyTypedSliceVisitorOf[uint64](actual), nil
	case []byte:
		return AnyTypedSliceVisitorOf[byte](actual), nil
	}
	val := reflect.ValueOf(value)
	switch val.Kind() {
	case reflect.Slice:
		return unsafeSliceVisitor(value, val.Type()), nil
	case reflect.Array:
		visitor := &AnySliceVisitor{data: val}
		return visitor.Visit, nil
	}
	return nil, fmt.Errorf("expected slice or array, got %T", value)
}

// unsafeSliceVisitor reads elements of any slice type through its header without reflect.Value indexing
func unsafeSliceVisitor(value interface{}, sliceType reflect.Type) Visitor[int, any] {
	slicePtr := xunsafe.AsPointer(value)
	xSlice := xunsafe.NewSlice(sliceType)
	return func(f func(key int, element any) (bool, error)) error {
		sliceLen := xSlice.Len(slicePtr)
		for i := 0; i < sliceLen; i++ {
			continueVisit, err := f(i, xSlice.ValueAt(slicePtr, i))
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnyTypedSliceVisitorOf return visitor
func AnyTypedSliceVisitorOf[E any](slice []E) Visitor[int, any] {
	return func(f func(key int, element any) (bool, error)) error {
		for i, e := range slice {
			continueVisit, err := f(i, e)
			if err != nil {
				return err
			}
			if !continueVisit {
				break
			}
		}
		return nil
	}
}

// AnySliceVisitor implements Visitor[int, any] for fixed size arrays.
type AnySliceVisitor struct {
	data reflect.Value
}

// Visit iterates over array elements via reflection.
func (v *AnySliceVisitor) Visit(f func(key int, element any) (bool, error)) error {
	for i := 0; i < v.data.Len(); i++ {
		continueVisit, err := f(i, v.data.Index(i).Interface())
		if err != nil {
			return err
		}
		if !continueVisit {
			break
		}
	}
	return nil
}
