package cpu

import (
	"fmt"

	"github.com/born-ml/vision/internal/tensor"
)

// number constrains the numeric tensor element types.
type number interface {
	~float32 | ~float64 | ~int32 | ~int64 | ~uint8
}

// binOp identifies an element-wise binary operation.
type binOp int

const (
	opAdd binOp = iota
	opSub
	opMul
	opDiv
)

// cmpOp identifies an element-wise comparison.
type cmpOp int

const (
	cmpGreater cmpOp = iota
	cmpLower
	cmpGreaterEqual
	cmpLowerEqual
	cmpEqual
)

// dataOf returns the typed slice view of a raw tensor.
func dataOf[T number](r *tensor.RawTensor) []T {
	var dummy T
	switch any(dummy).(type) {
	case float32:
		return any(r.AsFloat32()).([]T)
	case float64:
		return any(r.AsFloat64()).([]T)
	case int32:
		return any(r.AsInt32()).([]T)
	case int64:
		return any(r.AsInt64()).([]T)
	case uint8:
		return any(r.AsUint8()).([]T)
	default:
		panic("unsupported type")
	}
}

// applyBin evaluates a binary operation on two typed values.
func applyBin[T number](op binOp, x, y T) T {
	switch op {
	case opAdd:
		return x + y
	case opSub:
		return x - y
	case opMul:
		return x * y
	case opDiv:
		return x / y
	default:
		panic("unknown binary op")
	}
}

// applyCmp evaluates a comparison on two typed values.
func applyCmp[T number](op cmpOp, x, y T) bool {
	switch op {
	case cmpGreater:
		return x > y
	case cmpLower:
		return x < y
	case cmpGreaterEqual:
		return x >= y
	case cmpLowerEqual:
		return x <= y
	case cmpEqual:
		return x == y
	default:
		panic("unknown comparison op")
	}
}

// binaryImpl writes op(a, b) into result, using the vectorized path when
// shapes match exactly and the broadcast path otherwise.
func binaryImpl[T number](op binOp, result, a, b *tensor.RawTensor, outShape tensor.Shape, fast bool) {
	dst := dataOf[T](result)
	aData := dataOf[T](a)
	bData := dataOf[T](b)

	if fast {
		for i := range dst {
			dst[i] = applyBin(op, aData[i], bData[i])
		}
		return
	}

	for i := range dst {
		aIdx := broadcastIndex(i, outShape, a.Shape())
		bIdx := broadcastIndex(i, outShape, b.Shape())
		dst[i] = applyBin(op, aData[aIdx], bData[bIdx])
	}
}

// compareImpl writes op(a, b) into the bool result tensor.
func compareImpl[T number](op cmpOp, result, a, b *tensor.RawTensor, outShape tensor.Shape, fast bool) {
	dst := result.AsBool()
	aData := dataOf[T](a)
	bData := dataOf[T](b)

	if fast {
		for i := range dst {
			dst[i] = applyCmp(op, aData[i], bData[i])
		}
		return
	}

	for i := range dst {
		aIdx := broadcastIndex(i, outShape, a.Shape())
		bIdx := broadcastIndex(i, outShape, b.Shape())
		dst[i] = applyCmp(op, aData[aIdx], bData[bIdx])
	}
}

// broadcastIndex maps a flat index in the broadcast output shape back to the
// flat index in an input shape, treating size-1 dimensions as repeated.
func broadcastIndex(flatIdx int, outShape, inShape tensor.Shape) int {
	outStrides := outShape.ComputeStrides()
	inStrides := inShape.ComputeStrides()

	inIdx := 0
	offset := len(outShape) - len(inShape)

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		coord := temp / outStrides[i]
		temp %= outStrides[i]

		j := i - offset
		if j < 0 {
			continue
		}
		if inShape[j] == 1 {
			continue
		}
		inIdx += coord * inStrides[j]
	}

	return inIdx
}

// toFloat64 converts any supported scalar to float64.
func toFloat64(scalar any) float64 {
	switch v := scalar.(type) {
	case float32:
		return float64(v)
	case float64:
		return v
	case int:
		return float64(v)
	case int32:
		return float64(v)
	case int64:
		return float64(v)
	case uint8:
		return float64(v)
	default:
		panic(fmt.Sprintf("unsupported scalar type: %T", scalar))
	}
}
