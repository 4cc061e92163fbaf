package cpu

import (
	"fmt"

	"github.com/born-ml/vision/internal/tensor"
)

// Cast converts a tensor to a different data type.
//
// Numeric casts truncate like Go conversions. Bool sources become 0/1;
// numeric targets of a bool cast are exact. Casting to bool maps zero to
// false and anything else to true.
func (cpu *CPUBackend) Cast(x *tensor.RawTensor, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape().Clone(), dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("cast: %v", err))
	}

	if x.DType() == dtype {
		copy(result.Data(), x.Data())
		return result
	}

	values := castSource(x)

	switch dtype {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range values {
			dst[i] = float32(v)
		}
	case tensor.Float64:
		copy(result.AsFloat64(), values)
	case tensor.Int32:
		dst := result.AsInt32()
		for i, v := range values {
			dst[i] = int32(v)
		}
	case tensor.Int64:
		dst := result.AsInt64()
		for i, v := range values {
			dst[i] = int64(v)
		}
	case tensor.Uint8:
		dst := result.AsUint8()
		for i, v := range values {
			dst[i] = uint8(v)
		}
	case tensor.Bool:
		dst := result.AsBool()
		for i, v := range values {
			dst[i] = v != 0
		}
	default:
		panic(fmt.Sprintf("cast: unsupported target dtype %s", dtype))
	}

	return result
}

// castSource reads any dtype into a float64 working slice.
func castSource(x *tensor.RawTensor) []float64 {
	values := make([]float64, x.NumElements())

	switch x.DType() {
	case tensor.Float32:
		for i, v := range x.AsFloat32() {
			values[i] = float64(v)
		}
	case tensor.Float64:
		copy(values, x.AsFloat64())
	case tensor.Int32:
		for i, v := range x.AsInt32() {
			values[i] = float64(v)
		}
	case tensor.Int64:
		for i, v := range x.AsInt64() {
			values[i] = float64(v)
		}
	case tensor.Uint8:
		for i, v := range x.AsUint8() {
			values[i] = float64(v)
		}
	case tensor.Bool:
		for i, v := range x.AsBool() {
			if v {
				values[i] = 1
			}
		}
	default:
		panic(fmt.Sprintf("cast: unsupported source dtype %s", x.DType()))
	}

	return values
}
