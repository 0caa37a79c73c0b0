package array

import (
	"container/list"
	"fmt"
	"reflect"

	"github.com/viant/typeconv/csv"
	"github.com/viant/typeconv/visitor"
)

// Registry converts a single value to the target type
type Registry interface {
	ConvertType(value interface{}, target reflect.Type) (interface{}, error)
}

// Splitter splits text into fields
type Splitter interface {
	Split(text string) []string
}

// Converter converts values to []T, it is safe for concurrent use when its Registry is
type Converter[T any] struct {
	registry    Registry
	elementType reflect.Type
	typed       bool
	splitter    Splitter
	allocate    func(length int) []T
}

// ElementType returns target element type
func (c *Converter[T]) ElementType() reflect.Type {
	return c.elementType
}

// Convert converts source to a slice of T
func (c *Converter[T]) Convert(source interface{}) ([]T, error) {
	if source == nil {
		return nil, nil
	}
	value := reflect.ValueOf(source)
	if isNil(value) {
		return nil, nil
	}
	switch value.Kind() {
	case reflect.Slice, reflect.Array:
		return c.convertArrayToArray(source, value)
	}
	return c.convertValueToArray(source, value)
}

func (c *Converter[T]) convertType(index int, value interface{}) (T, error) {
	var result T
	converted, err := c.registry.ConvertType(value, c.elementType)
	if err != nil {
		return result, newError(index, value, c.elementType, err)
	}
	if converted == nil {
		return result, nil
	}
	result, ok := converted.(T)
	if !ok {
		return result, newError(index, value, c.elementType, fmt.Errorf("%w: %T", ErrUnexpectedType, converted))
	}
	return result, nil
}

func (c *Converter[T]) createArray(length int) ([]T, error) {
	result := c.allocate(length)
	if len(result) != length {
		return nil, fmt.Errorf("%w: expected %d elements of %v, but had %d", ErrAllocation, length, c.elementType, len(result))
	}
	return result, nil
}

func (c *Converter[T]) convertToSingleElementArray(value interface{}) ([]T, error) {
	result, err := c.createArray(1)
	if err != nil {
		return nil, err
	}
	if result[0], err = c.convertType(0, value); err != nil {
		return nil, err
	}
	return result, nil
}

// convertValueToArray converts non slice value, shapes are matched in order: list,
// collection, iterable, text; anything else becomes a single element slice
func (c *Converter[T]) convertValueToArray(source interface{}, value reflect.Value) ([]T, error) {
	switch actual := source.(type) {
	case List:
		result, err := c.createArray(actual.Len())
		if err != nil {
			return nil, err
		}
		for i := range result {
			if result[i], err = c.convertType(i, actual.At(i)); err != nil {
				return nil, err
			}
		}
		return result, nil
	case Collection:
		return c.convertCollection(actual.Len(), eachVisitor(actual.Each))
	case *list.List:
		return c.convertCollection(actual.Len(), visitor.ListVisitorOf(actual))
	case Iterable:
		return c.convertIterable(eachVisitor(actual.Iterate))
	case visitor.Visitor[int, any]:
		return c.convertIterable(actual)
	}
	if visit, ok := visitor.SeqVisitorOf(source); ok {
		return c.convertIterable(visit)
	}
	if value.Kind() == reflect.String {
		fields := c.splitter.Split(value.String())
		return c.convertArrayToArray(fields, reflect.ValueOf(fields))
	}
	return c.convertToSingleElementArray(source)
}

func (c *Converter[T]) convertCollection(size int, visit visitor.Visitor[int, any]) ([]T, error) {
	result, err := c.createArray(size)
	if err != nil {
		return nil, err
	}
	count := 0
	err = visit(func(index int, element any) (bool, error) {
		if index >= size {
			return false, fmt.Errorf("%w: more than %d elements", ErrSizeMismatch, size)
		}
		converted, err := c.convertType(index, element)
		if err != nil {
			return false, err
		}
		result[index] = converted
		count++
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	if count != size {
		return nil, fmt.Errorf("%w: expected %d elements, but had %d", ErrSizeMismatch, size, count)
	}
	return result, nil
}

func (c *Converter[T]) convertIterable(visit visitor.Visitor[int, any]) ([]T, error) {
	var buffer []T
	err := visit(func(index int, element any) (bool, error) {
		converted, err := c.convertType(index, element)
		if err != nil {
			return false, err
		}
		buffer = append(buffer, converted)
		return true, nil
	})
	if err != nil {
		return nil, err
	}
	result, err := c.createArray(len(buffer))
	if err != nil {
		return nil, err
	}
	copy(result, buffer)
	return result, nil
}

func (c *Converter[T]) convertArrayToArray(source interface{}, value reflect.Value) ([]T, error) {
	componentType := value.Type().Elem()
	if c.typed && componentType == c.elementType {
		// equal types, no conversion needed
		if same, ok := c.identity(source, value); ok {
			return same, nil
		}
	}
	if kind := KindOf(componentType); kind.IsPrimitive() {
		return c.convertPrimitiveArrayToArray(source, value, kind)
	}
	visit, err := visitor.AnySliceVisitorOf(source)
	if err != nil {
		return nil, err
	}
	return c.convertCollection(value.Len(), visit)
}

func (c *Converter[T]) identity(source interface{}, value reflect.Value) ([]T, bool) {
	if same, ok := source.([]T); ok {
		return same, true
	}
	switch value.Kind() {
	case reflect.Slice: //named slice type
		sliceType := reflect.TypeOf([]T(nil))
		if value.Type().ConvertibleTo(sliceType) {
			return value.Convert(sliceType).Interface().([]T), true
		}
	case reflect.Array:
		result, err := c.createArray(value.Len())
		if err != nil {
			return nil, false
		}
		reflect.Copy(reflect.ValueOf(result), value)
		return result, true
	}
	return nil, false
}

// Convert converts source to []T with a new converter
func Convert[T any](registry Registry, source interface{}, opts ...Option) ([]T, error) {
	return New[T](registry, opts...).Convert(source)
}

// New creates a converter to []T
func New[T any](registry Registry, opts ...Option) *Converter[T] {
	return newConverter[T](registry, reflect.TypeFor[T](), opts)
}

func newConverter[T any](registry Registry, elementType reflect.Type, opts []Option) *Converter[T] {
	o := &options{}
	for _, opt := range opts {
		opt(o)
	}
	ret := &Converter[T]{
		registry:    registry,
		elementType: elementType,
		typed:       elementType == reflect.TypeFor[T](),
		splitter:    o.splitter,
	}
	if ret.splitter == nil {
		ret.splitter = csv.New()
	}
	if allocate, ok := o.allocator.(func(int) []T); ok && allocate != nil {
		ret.allocate = allocate
	} else {
		ret.allocate = func(length int) []T {
			return make([]T, length)
		}
	}
	return ret
}

func isNil(value reflect.Value) bool {
	switch value.Kind() {
	case reflect.Ptr, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan, reflect.Interface, reflect.UnsafePointer:
		return value.IsNil()
	}
	return false
}
