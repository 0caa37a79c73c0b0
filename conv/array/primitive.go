package array

import (
	"fmt"
	"reflect"
)

// convertPrimitiveArrayToArray converts slice or array of primitive kind elements
func (c *Converter[T]) convertPrimitiveArrayToArray(source interface{}, value reflect.Value, kind Kind) ([]T, error) {
	switch actual := source.(type) {
	case []int32:
		return convertEach(c, actual)
	case []int64:
		return convertEach(c, actual)
	case []float32:
		return convertEach(c, actual)
	case []float64:
		return convertEach(c, actual)
	case []int16:
		return convertEach(c, actual)
	case []int8:
		return convertEach(c, actual)
	case []uint16:
		result, err := c.createArray(len(actual))
		if err != nil {
			return nil, err
		}
		for i, item := range actual {
			if result[i], err = c.convertType(i, CodeUnit(item)); err != nil {
				return nil, err
			}
		}
		return result, nil
	case []bool:
		return convertEach(c, actual)
	}
	// named element types and fixed size arrays
	result, err := c.createArray(value.Len())
	if err != nil {
		return nil, err
	}
	for i := range result {
		item, ok := kind.box(value.Index(i))
		if !ok {
			return nil, fmt.Errorf("%w: %v of %v", ErrInconsistentKind, kind, value.Type())
		}
		if result[i], err = c.convertType(i, item); err != nil {
			return nil, err
		}
	}
	return result, nil
}

func convertEach[S any, T any](c *Converter[T], source []S) ([]T, error) {
	result, err := c.createArray(len(source))
	if err != nil {
		return nil, err
	}
	for i, item := range source {
		if result[i], err = c.convertType(i, item); err != nil {
			return nil, err
		}
	}
	return result, nil
}
