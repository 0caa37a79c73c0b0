package array

import "reflect"

// CodeUnit represents UTF-16 code unit element of Char kind slices
type CodeUnit uint16

// String returns the unit as a character
func (c CodeUnit) String() string {
	return string(rune(c))
}

// Kind represents primitive slice element kind
type Kind int

const (
	Invalid Kind = iota
	Int32
	Int64
	Float32
	Float64
	Int16
	Int8
	//Char represents UTF-16 code unit
	Char
	Bool
)

var kindNames = [...]string{
	Invalid: "invalid",
	Int32:   "int32",
	Int64:   "int64",
	Float32: "float32",
	Float64: "float64",
	Int16:   "int16",
	Int8:    "int8",
	Char:    "char",
	Bool:    "bool",
}

func (k Kind) String() string {
	if k < Invalid || int(k) >= len(kindNames) {
		return kindNames[Invalid]
	}
	return kindNames[k]
}

// IsPrimitive returns true for numeric, boolean and character kinds
func (k Kind) IsPrimitive() bool {
	return k > Invalid && k <= Bool
}

// KindOf returns primitive kind of the supplied element type, named types resolve to their underlying kind
func KindOf(t reflect.Type) Kind {
	if t == nil {
		return Invalid
	}
	switch t.Kind() {
	case reflect.Int32:
		return Int32
	case reflect.Int64:
		return Int64
	case reflect.Float32:
		return Float32
	case reflect.Float64:
		return Float64
	case reflect.Int16:
		return Int16
	case reflect.Int8:
		return Int8
	case reflect.Uint16:
		return Char
	case reflect.Bool:
		return Bool
	}
	return Invalid
}

// box reads value with the kind accessor and returns it as the kind's canonical go type
func (k Kind) box(value reflect.Value) (interface{}, bool) {
	switch k {
	case Int32:
		return int32(value.Int()), true
	case Int64:
		return value.Int(), true
	case Float32:
		return float32(value.Float()), true
	case Float64:
		return value.Float(), true
	case Int16:
		return int16(value.Int()), true
	case Int8:
		return int8(value.Int()), true
	case Char:
		return CodeUnit(value.Uint()), true
	case Bool:
		return value.Bool(), true
	}
	return nil, false
}
