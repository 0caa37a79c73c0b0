package conv

import (
	"fmt"
	"math"
	"reflect"
	"strconv"
	"strings"
	"time"

	"github.com/viant/typeconv/conv/array"
	ftime "github.com/viant/typeconv/format/time"
)

var (
	timeType     = reflect.TypeOf(time.Time{})
	byteType     = reflect.TypeOf(byte(0))
	codeUnitType = reflect.TypeOf(array.CodeUnit(0))
)

// convertBuiltin converts srcValue into destValue pointer, it returns false if destination kind has no built-in conversion
func (r *Registry) convertBuiltin(destValue, srcValue reflect.Value) (bool, error) {
	destType := destValue.Type().Elem()
	switch destType.Kind() {
	case reflect.String:
		return true, r.convertToString(destValue, srcValue)
	case reflect.Bool:
		return true, r.convertToBool(destValue, srcValue)
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true, r.convertToInt(destValue, srcValue)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return true, r.convertToUint(destValue, srcValue)
	case reflect.Float32, reflect.Float64:
		return true, r.convertToFloat(destValue, srcValue)
	case reflect.Slice:
		return true, r.convertToSlice(destValue, srcValue)
	case reflect.Struct:
		if destType == timeType {
			return true, r.convertToTime(destValue, srcValue)
		}
	}
	return false, nil
}

func (r *Registry) convertToString(destValue, srcValue reflect.Value) error {
	var result string

	switch srcValue.Kind() {
	case reflect.String:
		result = srcValue.String()
	case reflect.Bool:
		result = strconv.FormatBool(srcValue.Bool())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = strconv.FormatInt(srcValue.Int(), 10)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		if srcValue.Type() == codeUnitType {
			result = srcValue.Interface().(array.CodeUnit).String()
			break
		}
		result = strconv.FormatUint(srcValue.Uint(), 10)
	case reflect.Float32:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 32)
	case reflect.Float64:
		result = strconv.FormatFloat(srcValue.Float(), 'f', -1, 64)
	case reflect.Slice:
		if srcValue.Type().Elem().Kind() != reflect.Uint8 { // []byte
			return fmt.Errorf("%w: %v to string", ErrUnsupported, srcValue.Type())
		}
		result = string(srcValue.Bytes())
	case reflect.Struct:
		if srcValue.Type() != timeType {
			return r.convertStringer(destValue, srcValue)
		}
		result = srcValue.Interface().(time.Time).Format(r.layout)
	default:
		return r.convertStringer(destValue, srcValue)
	}

	destValue.Elem().SetString(result)
	return nil
}

func (r *Registry) convertStringer(destValue, srcValue reflect.Value) error {
	stringer, ok := srcValue.Interface().(fmt.Stringer)
	if !ok {
		return fmt.Errorf("%w: %v to string", ErrUnsupported, srcValue.Type())
	}
	destValue.Elem().SetString(stringer.String())
	return nil
}

func (r *Registry) convertToBool(destValue, srcValue reflect.Value) error {
	var result bool

	switch srcValue.Kind() {
	case reflect.Bool:
		result = srcValue.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int() != 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint() != 0
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float() != 0
	case reflect.String:
		text := strings.ToLower(strings.TrimSpace(srcValue.String()))
		switch text {
		case "yes", "y", "on":
			result = true
		case "no", "n", "off":
			result = false
		default:
			var err error
			if result, err = strconv.ParseBool(text); err != nil {
				// Try numeric conversion if boolean parsing fails
				f, fErr := strconv.ParseFloat(text, 64)
				if fErr != nil {
					return err
				}
				result = f != 0
			}
		}
	default:
		return fmt.Errorf("%w: %v to bool", ErrUnsupported, srcValue.Type())
	}

	destValue.Elem().SetBool(result)
	return nil
}

func (r *Registry) convertToInt(destValue, srcValue reflect.Value) error {
	var result int64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = srcValue.Int()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		v := srcValue.Uint()
		if v > 1<<63-1 {
			return fmt.Errorf("%w: %d for %v", ErrOverflow, v, destValue.Type().Elem())
		}
		result = int64(v)
	case reflect.Float32, reflect.Float64:
		var err error
		if result, err = floatToInt(srcValue.Float(), destValue.Type().Elem()); err != nil {
			return err
		}
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		text := strings.TrimSpace(srcValue.String())
		if strings.ContainsAny(text, ".eE") {
			var f float64
			if f, err = strconv.ParseFloat(text, 64); err != nil {
				return err
			}
			if result, err = floatToInt(f, destValue.Type().Elem()); err != nil {
				return err
			}
		} else {
			result, err = strconv.ParseInt(text, 10, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v to int", ErrUnsupported, srcValue.Type())
	}

	if destValue.Elem().OverflowInt(result) {
		return fmt.Errorf("%w: %d for %v", ErrOverflow, result, destValue.Type().Elem())
	}
	destValue.Elem().SetInt(result)
	return nil
}

func (r *Registry) convertToUint(destValue, srcValue reflect.Value) error {
	var result uint64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		v := srcValue.Int()
		if v < 0 {
			return fmt.Errorf("%w: cannot convert negative value %d to unsigned int", ErrOverflow, v)
		}
		result = uint64(v)
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = srcValue.Uint()
	case reflect.Float32, reflect.Float64:
		var err error
		if result, err = floatToUint(srcValue.Float(), destValue.Type().Elem()); err != nil {
			return err
		}
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		text := strings.TrimSpace(srcValue.String())
		if strings.ContainsAny(text, ".eE") {
			var f float64
			if f, err = strconv.ParseFloat(text, 64); err != nil {
				return err
			}
			if result, err = floatToUint(f, destValue.Type().Elem()); err != nil {
				return err
			}
		} else {
			result, err = strconv.ParseUint(text, 10, 64)
		}
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v to uint", ErrUnsupported, srcValue.Type())
	}

	if destValue.Elem().OverflowUint(result) {
		return fmt.Errorf("%w: %d for %v", ErrOverflow, result, destValue.Type().Elem())
	}
	destValue.Elem().SetUint(result)
	return nil
}

// floatToInt truncates f, it rejects NaN and values outside int64 range
func floatToInt(f float64, target reflect.Type) (int64, error) {
	if math.IsNaN(f) || f < -(1<<63) || f >= 1<<63 {
		return 0, fmt.Errorf("%w: %v for %v", ErrOverflow, f, target)
	}
	return int64(f), nil
}

// floatToUint truncates f, it rejects negative values and anything uint64 can not hold
func floatToUint(f float64, target reflect.Type) (uint64, error) {
	if f < 0 {
		return 0, fmt.Errorf("%w: cannot convert negative value %f to unsigned int", ErrOverflow, f)
	}
	if math.IsNaN(f) || f >= 1<<64 {
		return 0, fmt.Errorf("%w: %v for %v", ErrOverflow, f, target)
	}
	return uint64(f), nil
}

func (r *Registry) convertToFloat(destValue, srcValue reflect.Value) error {
	var result float64

	switch srcValue.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		result = float64(srcValue.Int())
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		result = float64(srcValue.Uint())
	case reflect.Float32, reflect.Float64:
		result = srcValue.Float()
	case reflect.Bool:
		if srcValue.Bool() {
			result = 1
		}
	case reflect.String:
		var err error
		result, err = strconv.ParseFloat(strings.TrimSpace(srcValue.String()), destValue.Type().Elem().Bits())
		if err != nil {
			return err
		}
	default:
		return fmt.Errorf("%w: %v to float", ErrUnsupported, srcValue.Type())
	}

	if destValue.Elem().OverflowFloat(result) {
		return fmt.Errorf("%w: %v for %v", ErrOverflow, result, destValue.Type().Elem())
	}
	destValue.Elem().SetFloat(result)
	return nil
}

func (r *Registry) convertToTime(destValue, srcValue reflect.Value) error {
	var t time.Time
	var err error

	switch srcValue.Kind() {
	case reflect.String:
		if t, err = ftime.Parse(r.layout, strings.TrimSpace(srcValue.String())); err != nil {
			return err
		}
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		unixTime := srcValue.Int()
		if unixTime > 1e10 { // Assuming nanoseconds if value is very large
			t = time.Unix(0, unixTime)
		} else {
			t = time.Unix(unixTime, 0)
		}
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		unixTime := int64(srcValue.Uint())
		if unixTime > 1e10 { // Assuming nanoseconds if value is very large
			t = time.Unix(0, unixTime)
		} else {
			t = time.Unix(unixTime, 0)
		}
	case reflect.Float32, reflect.Float64:
		unixTime := int64(srcValue.Float())
		fractional := srcValue.Float() - float64(unixTime)
		nanos := int64(fractional * 1e9)
		t = time.Unix(unixTime, nanos)
	case reflect.Struct:
		if !srcValue.Type().ConvertibleTo(timeType) {
			return fmt.Errorf("%w: struct %v to time.Time", ErrUnsupported, srcValue.Type())
		}
		t = srcValue.Convert(timeType).Interface().(time.Time)
	default:
		return fmt.Errorf("%w: %v to time.Time", ErrUnsupported, srcValue.Type())
	}

	destValue.Elem().Set(reflect.ValueOf(t))
	return nil
}

func (r *Registry) convertToSlice(destValue, srcValue reflect.Value) error {
	destType := destValue.Type().Elem()

	// Special case: string to []byte conversion
	if destType.Elem() == byteType && srcValue.Kind() == reflect.String {
		destValue.Elem().Set(reflect.ValueOf([]byte(srcValue.String())).Convert(destType))
		return nil
	}
	sliceValue, err := r.arrayConverter(destType.Elem()).Convert(srcValue.Interface())
	if err != nil {
		return err
	}
	if sliceValue.Type() != destType {
		sliceValue = sliceValue.Convert(destType)
	}
	destValue.Elem().Set(sliceValue)
	return nil
}
