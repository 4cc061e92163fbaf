package cpu

import (
	"fmt"

	"github.com/born-ml/vision/internal/tensor"
)

// Comparison operations - return bool tensors.

// Greater returns a > b element-wise.
func (cpu *CPUBackend) Greater(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("greater", cmpGreater, a, b)
}

// Lower returns a < b element-wise.
func (cpu *CPUBackend) Lower(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("lower", cmpLower, a, b)
}

// GreaterEqual returns a >= b element-wise.
func (cpu *CPUBackend) GreaterEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("greaterEqual", cmpGreaterEqual, a, b)
}

// LowerEqual returns a <= b element-wise.
func (cpu *CPUBackend) LowerEqual(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("lowerEqual", cmpLowerEqual, a, b)
}

// Equal returns a == b element-wise.
func (cpu *CPUBackend) Equal(a, b *tensor.RawTensor) *tensor.RawTensor {
	return cpu.comparison("equal", cmpEqual, a, b)
}

func (cpu *CPUBackend) comparison(name string, op cmpOp, a, b *tensor.RawTensor) *tensor.RawTensor {
	if a.DType() != b.DType() {
		panic(fmt.Sprintf("%s: dtype mismatch: %s vs %s", name, a.DType(), b.DType()))
	}

	outShape, needsBroadcast, err := tensor.BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	result, err := tensor.NewRaw(outShape, tensor.Bool, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	fast := !needsBroadcast && a.Shape().Equal(b.Shape())
	switch a.DType() {
	case tensor.Float32:
		compareImpl[float32](op, result, a, b, outShape, fast)
	case tensor.Float64:
		compareImpl[float64](op, result, a, b, outShape, fast)
	case tensor.Int32:
		compareImpl[int32](op, result, a, b, outShape, fast)
	case tensor.Int64:
		compareImpl[int64](op, result, a, b, outShape, fast)
	case tensor.Uint8:
		compareImpl[uint8](op, result, a, b, outShape, fast)
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, a.DType()))
	}

	return result
}
