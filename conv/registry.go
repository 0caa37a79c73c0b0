package conv

import (
	"errors"
	"fmt"
	"reflect"

	"github.com/viant/typeconv/conv/array"
	"github.com/viant/typeconv/csv"
	"github.com/viant/typeconv/visitor"
	"go.uber.org/zap"
)

// TypeConverter converts a value to the type it is registered for
type TypeConverter interface {
	ConvertType(value interface{}) (interface{}, error)
}

// TypeConverterFunc adapts function to TypeConverter
type TypeConverterFunc func(value interface{}) (interface{}, error)

// ConvertType converts value
func (f TypeConverterFunc) ConvertType(value interface{}) (interface{}, error) {
	return f(value)
}

// ConversionFunc defines a custom conversion function, dest is a pointer to the destination type
type ConversionFunc func(src interface{}, dest interface{}, opts Options) error

type typeKey struct {
	srcType  reflect.Type
	destType reflect.Type
}

// Registry converts values to target types, it is safe for concurrent use
type Registry struct {
	options     Options
	layout      string
	logger      *zap.Logger
	splitter    *csv.Splitter
	converters  *visitor.SyncMap[reflect.Type, TypeConverter]
	conversions *visitor.SyncMap[typeKey, ConversionFunc]
	arrays      *visitor.SyncMap[reflect.Type, *array.Dynamic]
}

// NewRegistry creates a registry with the provided options
func NewRegistry(options Options) *Registry {
	logger := options.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Registry{
		options:     options,
		layout:      options.Layout(),
		logger:      logger,
		splitter:    options.splitter(),
		converters:  visitor.NewSyncMap[reflect.Type, TypeConverter](),
		conversions: visitor.NewSyncMap[typeKey, ConversionFunc](),
		arrays:      visitor.NewSyncMap[reflect.Type, *array.Dynamic](),
	}
}

// Options returns registry options
func (r *Registry) Options() Options {
	return r.options
}

// Splitter returns text splitter
func (r *Registry) Splitter() *csv.Splitter {
	return r.splitter
}

// Register registers converter for target type, it replaces built-in conversion of that type
func (r *Registry) Register(target reflect.Type, converter TypeConverter) {
	r.converters.Put(target, converter)
}

// Unregister removes converter registered for target type
func (r *Registry) Unregister(target reflect.Type) bool {
	return r.converters.Delete(target)
}

// Lookup returns converter registered for target type
func (r *Registry) Lookup(target reflect.Type) (TypeConverter, bool) {
	return r.converters.Get(target)
}

// RegisterConversion registers a custom conversion function between source and destination types
func (r *Registry) RegisterConversion(srcType, destType reflect.Type, fn ConversionFunc) {
	r.conversions.Put(typeKey{srcType, destType}, fn)
}

// ConvertType converts value to target type, nil value returns target zero value
func (r *Registry) ConvertType(value interface{}, target reflect.Type) (interface{}, error) {
	result, err := r.convertType(value, target)
	if err != nil {
		r.logger.Debug("conversion failed",
			zap.String("source", fmt.Sprintf("%T", value)),
			zap.Stringer("target", target),
			zap.Error(err))
	}
	return result, err
}

// Convert converts the source value to the destination pointer
func (r *Registry) Convert(src interface{}, dest interface{}) error {
	if dest == nil {
		return errors.New("destination cannot be nil")
	}
	destValue := reflect.ValueOf(dest)
	if destValue.Kind() != reflect.Ptr {
		return errors.New("destination must be a pointer")
	}
	if destValue.IsNil() {
		return errors.New("destination pointer cannot be nil")
	}
	if src == nil {
		return nil // Nothing to convert
	}
	converted, err := r.ConvertType(src, destValue.Type().Elem())
	if err != nil {
		return err
	}
	if converted == nil {
		destValue.Elem().Set(reflect.Zero(destValue.Type().Elem()))
		return nil
	}
	destValue.Elem().Set(reflect.ValueOf(converted))
	return nil
}

func (r *Registry) convertType(value interface{}, target reflect.Type) (interface{}, error) {
	if target == nil {
		return nil, fmt.Errorf("%w: target type was nil", ErrUnsupported)
	}
	if value == nil {
		return reflect.Zero(target).Interface(), nil
	}
	srcType := reflect.TypeOf(value)
	// Try custom conversion first
	if fn, ok := r.conversions.Get(typeKey{srcType, target}); ok {
		dest := reflect.New(target)
		if err := fn(value, dest.Interface(), r.options); err != nil {
			return nil, err
		}
		return dest.Elem().Interface(), nil
	}
	if srcType == target {
		return value, nil
	}
	if converter, ok := r.converters.Get(target); ok {
		return converter.ConvertType(value)
	}
	if target.Kind() == reflect.Interface && srcType.Implements(target) {
		return value, nil
	}
	srcValue := reflect.ValueOf(value)
	if srcValue.Kind() == reflect.Ptr && target.Kind() != reflect.Ptr {
		if srcValue.IsNil() {
			return reflect.Zero(target).Interface(), nil
		}
		return r.convertType(srcValue.Elem().Interface(), target)
	}
	if target.Kind() == reflect.Ptr {
		return r.convertToPointer(value, target)
	}
	dest := reflect.New(target)
	handled, err := r.convertBuiltin(dest, srcValue)
	if err != nil {
		return nil, err
	}
	if handled {
		return dest.Elem().Interface(), nil
	}
	// Then handle direct convertibility for non-primitive types
	if srcType.ConvertibleTo(target) {
		return srcValue.Convert(target).Interface(), nil
	}
	return nil, fmt.Errorf("%w: %v to %v", ErrUnsupported, srcType, target)
}

func (r *Registry) convertToPointer(value interface{}, target reflect.Type) (interface{}, error) {
	srcValue := reflect.ValueOf(value)
	if srcValue.Kind() == reflect.Ptr && srcValue.IsNil() {
		return reflect.Zero(target).Interface(), nil
	}
	converted, err := r.convertType(value, target.Elem())
	if err != nil {
		return nil, err
	}
	ptr := reflect.New(target.Elem())
	if converted != nil {
		ptr.Elem().Set(reflect.ValueOf(converted))
	}
	return ptr.Interface(), nil
}

// arrayConverter returns slice converter for the element type, converters are created when needed
func (r *Registry) arrayConverter(elementType reflect.Type) *array.Dynamic {
	if converter, ok := r.arrays.Get(elementType); ok {
		return converter
	}
	converter := array.NewDynamic(r, elementType, array.WithSplitter(r.splitter))
	r.arrays.Put(elementType, converter)
	return converter
}

// ToArray converts source to []T using registry leaf conversions and text splitter
func ToArray[T any](r *Registry, source interface{}) ([]T, error) {
	return array.Convert[T](r, source, array.WithSplitter(r.splitter))
}
