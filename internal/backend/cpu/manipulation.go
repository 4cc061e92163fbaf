package cpu

import (
	"fmt"

	"github.com/born-ml/vision/internal/tensor"
)

// Narrow returns a slice of x along dim, from start (inclusive) spanning
// length elements. The data is copied into a contiguous result tensor.
func (cpu *CPUBackend) Narrow(x *tensor.RawTensor, dim, start, length int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("narrow: dimension %d out of range for %dD tensor", dim, len(shape)))
	}
	if start < 0 || length <= 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension of size %d",
			start, start+length, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = length

	result, err := tensor.NewRaw(outShape, x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("narrow: %v", err))
	}

	// View the tensor as [outer, shape[dim], inner] and copy row ranges.
	strides := shape.ComputeStrides()
	inner := strides[dim]
	outer := x.NumElements() / (shape[dim] * inner)

	elemSize := x.DType().Size()
	src := x.Data()
	dst := result.Data()

	srcRow := shape[dim] * inner * elemSize
	dstRow := length * inner * elemSize
	off := start * inner * elemSize

	for o := 0; o < outer; o++ {
		copy(dst[o*dstRow:(o+1)*dstRow], src[o*srcRow+off:o*srcRow+off+dstRow])
	}

	return result
}

// Unsqueeze adds a dimension of size 1 at the given position.
func (cpu *CPUBackend) Unsqueeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim > len(shape) {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor", dim, len(shape)))
	}

	newShape := make(tensor.Shape, 0, len(shape)+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return cpu.Reshape(x, newShape)
}

// Squeeze removes a dimension of size 1 at the given position.
func (cpu *CPUBackend) Squeeze(x *tensor.RawTensor, dim int) *tensor.RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("squeeze: dimension %d out of range for %dD tensor", dim, len(shape)))
	}
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[dim]))
	}

	newShape := make(tensor.Shape, 0, len(shape)-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)
	return cpu.Reshape(x, newShape)
}

// Gather selects elements along dim using an int32 index tensor.
// Supports 1-D source tensors, which covers histogram index lookups.
func (cpu *CPUBackend) Gather(x *tensor.RawTensor, dim int, index *tensor.RawTensor) *tensor.RawTensor {
	if len(x.Shape()) != 1 || dim != 0 {
		panic("gather: only 1D tensors along dim 0 are supported")
	}
	if index.DType() != tensor.Int32 {
		panic(fmt.Sprintf("gather: index dtype must be int32, got %s", index.DType()))
	}

	indices := index.AsInt32()
	result, err := tensor.NewRaw(index.Shape().Clone(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("gather: %v", err))
	}

	n := x.NumElements()
	elemSize := x.DType().Size()
	src := x.Data()
	dst := result.Data()

	for i, idx := range indices {
		if int(idx) < 0 || int(idx) >= n {
			panic(fmt.Sprintf("gather: index %d out of bounds for size %d", idx, n))
		}
		copy(dst[i*elemSize:(i+1)*elemSize], src[int(idx)*elemSize:(int(idx)+1)*elemSize])
	}

	return result
}

// Where selects elements from x where condition is true, from y otherwise.
// All three tensors must share the same shape.
func (cpu *CPUBackend) Where(condition, x, y *tensor.RawTensor) *tensor.RawTensor {
	if condition.DType() != tensor.Bool {
		panic(fmt.Sprintf("where: condition dtype must be bool, got %s", condition.DType()))
	}
	if !condition.Shape().Equal(x.Shape()) || !x.Shape().Equal(y.Shape()) {
		panic(fmt.Sprintf("where: shape mismatch: cond %v, x %v, y %v",
			condition.Shape(), x.Shape(), y.Shape()))
	}
	if x.DType() != y.DType() {
		panic(fmt.Sprintf("where: dtype mismatch: %s vs %s", x.DType(), y.DType()))
	}

	result, err := tensor.NewRaw(x.Shape().Clone(), x.DType(), cpu.device)
	if err != nil {
		panic(fmt.Sprintf("where: %v", err))
	}

	cond := condition.AsBool()
	elemSize := x.DType().Size()
	xData := x.Data()
	yData := y.Data()
	dst := result.Data()

	for i, c := range cond {
		src := yData
		if c {
			src = xData
		}
		copy(dst[i*elemSize:(i+1)*elemSize], src[i*elemSize:(i+1)*elemSize])
	}

	return result
}
