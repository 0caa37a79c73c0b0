package array_test

import (
	"strconv"
	"strings"
	"testing"

	"github.com/viant/typeconv/conv"
	"github.com/viant/typeconv/conv/array"
)

func BenchmarkConverter_Int32ToFloat64(b *testing.B) {
	converter := array.New[float64](conv.NewRegistry(conv.DefaultOptions()))
	src := make([]int32, 256)
	for i := range src {
		src[i] = int32(i)
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(src); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkConverter_TextToInt(b *testing.B) {
	converter := array.New[int](conv.NewRegistry(conv.DefaultOptions()))
	fields := make([]string, 256)
	for i := range fields {
		fields[i] = strconv.Itoa(i)
	}
	src := strings.Join(fields, ",")
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(src); err != nil {
			b.Fatal(err)
		}
	}
}

// Reuses one buffer to measure conversion without per call allocation.
func BenchmarkConverter_Allocator(b *testing.B) {
	buffer := make([]int64, 256)
	converter := array.New[int64](conv.NewRegistry(conv.DefaultOptions()), array.WithAllocator[int64](func(length int) []int64 {
		if length > cap(buffer) {
			buffer = make([]int64, length)
		}
		return buffer[:length]
	}))
	src := make([]interface{}, 256)
	for i := range src {
		src[i] = i
	}
	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := converter.Convert(src); err != nil {
			b.Fatal(err)
		}
	}
}
