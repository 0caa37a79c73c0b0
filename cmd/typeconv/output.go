package main

import (
	"fmt"
	"time"

	"github.com/francoispqt/gojay"
)

// jsonArray encodes converted elements
type jsonArray struct {
	items  []interface{}
	layout string
}

func (a *jsonArray) MarshalJSONArray(enc *gojay.Encoder) {
	for _, item := range a.items {
		switch actual := item.(type) {
		case string:
			enc.AddString(actual)
		case bool:
			enc.AddBool(actual)
		case int:
			enc.AddInt64(int64(actual))
		case int8:
			enc.AddInt64(int64(actual))
		case int16:
			enc.AddInt64(int64(actual))
		case int32:
			enc.AddInt64(int64(actual))
		case int64:
			enc.AddInt64(actual)
		case uint:
			enc.AddUint64(uint64(actual))
		case uint8:
			enc.AddUint64(uint64(actual))
		case uint16:
			enc.AddUint64(uint64(actual))
		case uint32:
			enc.AddUint64(uint64(actual))
		case uint64:
			enc.AddUint64(actual)
		case float32:
			enc.AddFloat32(actual)
		case float64:
			enc.AddFloat64(actual)
		case time.Time:
			enc.AddTime(&actual, a.layout)
		default:
			enc.AddString(fmt.Sprint(actual))
		}
	}
}

func (a *jsonArray) IsNil() bool {
	return a == nil || a.items == nil
}

func encodeJSON(items []interface{}, layout string) ([]byte, error) {
	if items == nil {
		items = []interface{}{}
	}
	return gojay.MarshalJSONArray(&jsonArray{items: items, layout: layout})
}
