package cpu

import (
	"fmt"

	"github.com/born-ml/vision/internal/tensor"
)

// Scalar operations: element-wise arithmetic against a single value.
// The scalar is converted to the tensor's dtype before the loop.

// AddScalar adds a scalar to each element.
func (cpu *CPUBackend) AddScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("addScalar", opAdd, x, scalar)
}

// SubScalar subtracts a scalar from each element.
func (cpu *CPUBackend) SubScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("subScalar", opSub, x, scalar)
}

// MulScalar multiplies each element by a scalar.
func (cpu *CPUBackend) MulScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("mulScalar", opMul, x, scalar)
}

// DivScalar divides each element by a scalar.
func (cpu *CPUBackend) DivScalar(x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	return cpu.scalarOp("divScalar", opDiv, x, scalar)
}

func (cpu *CPUBackend) scalarOp(name string, op binOp, x *tensor.RawTensor, scalar any) *tensor.RawTensor {
	result, err := tensor.NewRaw(x.Shape().Clone(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}

	s := toFloat64(scalar)

	switch x.DType() {
	case tensor.Float32:
		scalarImpl(op, dataOf[float32](result), dataOf[float32](x), float32(s))
	case tensor.Float64:
		scalarImpl(op, dataOf[float64](result), dataOf[float64](x), s)
	case tensor.Int32:
		scalarImpl(op, dataOf[int32](result), dataOf[int32](x), int32(s))
	case tensor.Int64:
		scalarImpl(op, dataOf[int64](result), dataOf[int64](x), int64(s))
	case tensor.Uint8:
		scalarImpl(op, dataOf[uint8](result), dataOf[uint8](x), uint8(s))
	default:
		panic(fmt.Sprintf("%s: unsupported dtype %s", name, x.DType()))
	}

	return result
}

func scalarImpl[T number](op binOp, dst, src []T, scalar T) {
	for i := range dst {
		dst[i] = applyBin(op, src[i], scalar)
	}
}
