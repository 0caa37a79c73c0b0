package array

import (
	"fmt"
	"reflect"
)

// Dynamic converts values to a slice of element type known only at runtime
type Dynamic struct {
	sliceType reflect.Type
	converter *Converter[interface{}]
}

// SliceType returns target slice type
func (d *Dynamic) SliceType() reflect.Type {
	return d.sliceType
}

// Convert converts source to a slice value of SliceType, nil source returns nil slice value
func (d *Dynamic) Convert(source interface{}) (reflect.Value, error) {
	if source == nil {
		return reflect.Zero(d.sliceType), nil
	}
	value := reflect.ValueOf(source)
	if value.Type() == d.sliceType {
		return value, nil
	}
	if value.Kind() == reflect.Slice && value.Type().Elem() == d.sliceType.Elem() && value.Type().ConvertibleTo(d.sliceType) {
		return value.Convert(d.sliceType), nil
	}
	items, err := d.converter.Convert(source)
	if err != nil || items == nil {
		return reflect.Zero(d.sliceType), err
	}
	elementType := d.sliceType.Elem()
	result := reflect.MakeSlice(d.sliceType, len(items), len(items))
	for i, item := range items {
		if item == nil {
			continue
		}
		itemValue := reflect.ValueOf(item)
		if !itemValue.Type().AssignableTo(elementType) {
			return reflect.Zero(d.sliceType), newError(i, item, elementType, fmt.Errorf("%w: %T", ErrUnexpectedType, item))
		}
		result.Index(i).Set(itemValue)
	}
	return result, nil
}

// NewDynamic creates a converter to []elementType
func NewDynamic(registry Registry, elementType reflect.Type, opts ...Option) *Dynamic {
	return &Dynamic{
		sliceType: reflect.SliceOf(elementType),
		converter: newConverter[interface{}](registry, elementType, opts),
	}
}
