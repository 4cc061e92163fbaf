package cpu

import (
	"fmt"
	"math"

	"github.com/born-ml/vision/internal/tensor"
)

// Element-wise math operations. These are defined for float tensors only;
// integer inputs must be cast first.

// Sqrt computes the square root of each element.
func (cpu *CPUBackend) Sqrt(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("sqrt", x, math.Sqrt)
}

// Round rounds each element half away from zero.
func (cpu *CPUBackend) Round(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("round", x, math.Round)
}

// Atan computes the arc tangent of each element.
func (cpu *CPUBackend) Atan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("atan", x, math.Atan)
}

// Tan computes the tangent of each element (input in radians).
func (cpu *CPUBackend) Tan(x *tensor.RawTensor) *tensor.RawTensor {
	return cpu.mathOp("tan", x, math.Tan)
}

func (cpu *CPUBackend) mathOp(name string, x *tensor.RawTensor, op func(float64) float64) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape().Clone(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	switch x.DType() {
	case tensor.Float32:
		dst := result.AsFloat32()
		for i, v := range x.AsFloat32() {
			dst[i] = float32(op(float64(v)))
		}
	case tensor.Float64:
		dst := result.AsFloat64()
		for i, v := range x.AsFloat64() {
			dst[i] = op(v)
		}
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s (only float32/float64 supported)", name, x.DType()))
	}

	return result
}
