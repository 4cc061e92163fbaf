package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/vision/internal/tensor"
)

// Bincount counts occurrences of integer values in [0, buckets).
//
// Float inputs are expected to hold already-rounded values; each element is
// truncated to an integer bucket index. Out-of-range values are clamped to
// the nearest bucket so that histogram shape is stable for any input range.
// Returns an int64 tensor of shape {buckets}.
func (cpu *CPUBackend) Bincount(x *tensor.RawTensor, buckets int) *tensor.RawTensor {
	if buckets <= 0 {
		panic(fmt.Sprintf("bincount: buckets must be positive, got %d", buckets))
	}

	result, err := tensor.NewRaw(tensor.Shape{buckets}, tensor.Int64, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("bincount: %v", err))
	}
	counts := result.AsInt64()

	bump := func(v float64) {
		if math.IsNaN(v) {
			panic("bincount: NaN value")
		}
		idx := int(v)
		if idx < 0 {
			idx = 0
		} else if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
	}

	switch x.DType() {
	case tensor.Float32:
		for _, v := range x.AsFloat32() {
			bump(float64(v))
		}
	case tensor.Float64:
		for _, v := range x.AsFloat64() {
			bump(v)
		}
	case tensor.Int32:
		for _, v := range x.AsInt32() {
			bump(float64(v))
		}
	case tensor.Int64:
		for _, v := range x.AsInt64() {
			bump(float64(v))
		}
	case tensor.Uint8:
		for _, v := range x.AsUint8() {
			bump(float64(v))
		}
	default:
		panic(fmt.Sprintf("bincount: unsupported dtype %s", x.DType()))
	}

	return result
}
