package cpu

import (
	"fmt"

	"github.com/born-ml/vision/internal/tensor"
)

// Whole-tensor reductions. All return 0-D (scalar) tensors; the arg
// reductions return int32 flat indices, breaking ties toward the first
// occurrence.

// Sum returns the total sum of all elements.
func (cpu *CPUBackend) Sum(x *tensor.RawTensor) *tensor.RawTensor {
	result := cpu.scalarTensor("sum", x.DType())

	switch x.DType() {
	case tensor.Float32:
		sumImpl(dataOf[float32](result), dataOf[float32](x))
	case tensor.Float64:
		sumImpl(dataOf[float64](result), dataOf[float64](x))
	case tensor.Int32:
		sumImpl(dataOf[int32](result), dataOf[int32](x))
	case tensor.Int64:
		sumImpl(dataOf[int64](result), dataOf[int64](x))
	case tensor.Uint8:
		sumImpl(dataOf[uint8](result), dataOf[uint8](x))
	default:
		panic(fmt.Sprintf("sum: unsupported dtype %s", x.DType()))
	}

	return result
}

// Max returns the maximum element.
func (cpu *CPUBackend) Max(x *tensor.RawTensor) *tensor.RawTensor {
	cpu.requireNonEmpty("max", x)
	result := cpu.scalarTensor("max", x.DType())
	cpu.extremum(x, result, nil, true)
	return result
}

// Min returns the minimum element.
func (cpu *CPUBackend) Min(x *tensor.RawTensor) *tensor.RawTensor {
	cpu.requireNonEmpty("min", x)
	result := cpu.scalarTensor("min", x.DType())
	cpu.extremum(x, result, nil, false)
	return result
}

// Argmax returns the flat index of the first maximum element.
func (cpu *CPUBackend) Argmax(x *tensor.RawTensor) *tensor.RawTensor {
	cpu.requireNonEmpty("argmax", x)
	result := cpu.scalarTensor("argmax", tensor.Int32)
	cpu.extremum(x, nil, result, true)
	return result
}

// Argmin returns the flat index of the first minimum element.
func (cpu *CPUBackend) Argmin(x *tensor.RawTensor) *tensor.RawTensor {
	cpu.requireNonEmpty("argmin", x)
	result := cpu.scalarTensor("argmin", tensor.Int32)
	cpu.extremum(x, nil, result, false)
	return result
}

func (cpu *CPUBackend) requireNonEmpty(name string, x *tensor.RawTensor) {
	if x.NumElements() == 0 {
		panic(fmt.Sprintf("%s: empty tensor", name))
	}
}

func (cpu *CPUBackend) scalarTensor(name string, dtype tensor.DataType) *tensor.RawTensor {
	result, err := tensor.NewRaw(tensor.Shape{}, dtype, cpu.device)
	if err != nil {
		panic(fmt.Sprintf("%s: %v", name, err))
	}
	return result
}

// extremum finds the max or min element, writing the value into valOut
// and/or the flat index into idxOut (either may be nil).
func (cpu *CPUBackend) extremum(x, valOut, idxOut *tensor.RawTensor, wantMax bool) {
	switch x.DType() {
	case tensor.Float32:
		extremumImpl(dataOf[float32](x), valOut, idxOut, wantMax)
	case tensor.Float64:
		extremumImpl(dataOf[float64](x), valOut, idxOut, wantMax)
	case tensor.Int32:
		extremumImpl(dataOf[int32](x), valOut, idxOut, wantMax)
	case tensor.Int64:
		extremumImpl(dataOf[int64](x), valOut, idxOut, wantMax)
	case tensor.Uint8:
		extremumImpl(dataOf[uint8](x), valOut, idxOut, wantMax)
	default:
		panic(fmt.Sprintf("extremum: unsupported dtype %s", x.DType()))
	}
}

func sumImpl[T number](dst, src []T) {
	var total T
	for _, v := range src {
		total += v
	}
	dst[0] = total
}

func extremumImpl[T number](src []T, valOut, idxOut *tensor.RawTensor, wantMax bool) {
	best := 0
	for i, v := range src {
		if (wantMax && v > src[best]) || (!wantMax && v < src[best]) {
			best = i
		}
	}

	if valOut != nil {
		dataOf[T](valOut)[0] = src[best]
	}
	if idxOut != nil {
		idxOut.AsInt32()[0] = int32(best)
	}
}
