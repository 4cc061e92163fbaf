package tensor

import (
	"fmt"
	"math"
)

// Verify that MockBackend implements Backend.
var _ Backend = (*MockBackend)(nil)

// MockBackend is a simple backend for testing.
// It implements all operations naively for correctness verification,
// converting through float64 regardless of dtype.
type MockBackend struct{}

// NewMockBackend creates a new MockBackend.
func NewMockBackend() *MockBackend {
	return &MockBackend{}
}

// Name returns the backend name.
func (m *MockBackend) Name() string {
	return "mock"
}

// Device returns the device type.
func (m *MockBackend) Device() Device {
	return CPU
}

// Add performs element-wise addition with broadcasting.
func (m *MockBackend) Add(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x + y })
}

// Sub performs element-wise subtraction with broadcasting.
func (m *MockBackend) Sub(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x - y })
}

// Mul performs element-wise multiplication with broadcasting.
func (m *MockBackend) Mul(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x * y })
}

// Div performs element-wise division with broadcasting.
func (m *MockBackend) Div(a, b *RawTensor) *RawTensor {
	return m.elementWise(a, b, func(x, y float64) float64 { return x / y })
}

// AddScalar adds a scalar to each element.
func (m *MockBackend) AddScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v + s })
}

// SubScalar subtracts a scalar from each element.
func (m *MockBackend) SubScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v - s })
}

// MulScalar multiplies each element by a scalar.
func (m *MockBackend) MulScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v * s })
}

// DivScalar divides each element by a scalar.
func (m *MockBackend) DivScalar(x *RawTensor, scalar any) *RawTensor {
	s := scalarToFloat64(scalar)
	return m.unary(x, func(v float64) float64 { return v / s })
}

// Sqrt computes the square root of each element.
func (m *MockBackend) Sqrt(x *RawTensor) *RawTensor {
	return m.unary(x, math.Sqrt)
}

// Round rounds each element half away from zero.
func (m *MockBackend) Round(x *RawTensor) *RawTensor {
	return m.unary(x, math.Round)
}

// Atan computes the arc tangent of each element.
func (m *MockBackend) Atan(x *RawTensor) *RawTensor {
	return m.unary(x, math.Atan)
}

// Tan computes the tangent of each element.
func (m *MockBackend) Tan(x *RawTensor) *RawTensor {
	return m.unary(x, math.Tan)
}

// Greater returns a > b element-wise.
func (m *MockBackend) Greater(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x > y })
}

// Lower returns a < b element-wise.
func (m *MockBackend) Lower(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x < y })
}

// GreaterEqual returns a >= b element-wise.
func (m *MockBackend) GreaterEqual(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x >= y })
}

// LowerEqual returns a <= b element-wise.
func (m *MockBackend) LowerEqual(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x <= y })
}

// Equal returns a == b element-wise.
func (m *MockBackend) Equal(a, b *RawTensor) *RawTensor {
	return m.compare(a, b, func(x, y float64) bool { return x == y })
}

// Sum returns the total sum as a scalar tensor.
func (m *MockBackend) Sum(x *RawTensor) *RawTensor {
	sum := 0.0
	for _, v := range m.toFloat64Slice(x) {
		sum += v
	}
	return m.scalarResult(sum, x.DType())
}

// Max returns the maximum element as a scalar tensor.
func (m *MockBackend) Max(x *RawTensor) *RawTensor {
	data := m.toFloat64Slice(x)
	best := data[0]
	for _, v := range data[1:] {
		if v > best {
			best = v
		}
	}
	return m.scalarResult(best, x.DType())
}

// Min returns the minimum element as a scalar tensor.
func (m *MockBackend) Min(x *RawTensor) *RawTensor {
	data := m.toFloat64Slice(x)
	best := data[0]
	for _, v := range data[1:] {
		if v < best {
			best = v
		}
	}
	return m.scalarResult(best, x.DType())
}

// Argmax returns the flat index of the first maximum as an int32 scalar.
func (m *MockBackend) Argmax(x *RawTensor) *RawTensor {
	data := m.toFloat64Slice(x)
	best := 0
	for i, v := range data {
		if v > data[best] {
			best = i
		}
	}
	return m.indexResult(best)
}

// Argmin returns the flat index of the first minimum as an int32 scalar.
func (m *MockBackend) Argmin(x *RawTensor) *RawTensor {
	data := m.toFloat64Slice(x)
	best := 0
	for i, v := range data {
		if v < data[best] {
			best = i
		}
	}
	return m.indexResult(best)
}

// Bincount counts occurrences of integer values in [0, buckets).
func (m *MockBackend) Bincount(x *RawTensor, buckets int) *RawTensor {
	if buckets <= 0 {
		panic(fmt.Sprintf("bincount: buckets must be positive, got %d", buckets))
	}

	result, err := NewRaw(Shape{buckets}, Int64, m.Device())
	if err != nil {
		panic(err)
	}

	counts := result.AsInt64()
	for _, v := range m.toFloat64Slice(x) {
		idx := int(v)
		if idx < 0 {
			idx = 0
		}
		if idx >= buckets {
			idx = buckets - 1
		}
		counts[idx]++
	}
	return result
}

// Reshape changes tensor shape.
func (m *MockBackend) Reshape(t *RawTensor, newShape Shape) *RawTensor {
	if err := newShape.Validate(); err != nil {
		panic(err)
	}

	if t.NumElements() != newShape.NumElements() {
		panic(fmt.Sprintf("cannot reshape tensor with %d elements to shape %v (%d elements)",
			t.NumElements(), newShape, newShape.NumElements()))
	}

	result, err := NewRaw(newShape, t.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	copy(result.Data(), t.Data())
	return result
}

// Narrow slices the tensor along dim, copying the selected range.
func (m *MockBackend) Narrow(x *RawTensor, dim, start, length int) *RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("narrow: dimension %d out of range for %dD tensor", dim, len(shape)))
	}
	if start < 0 || length <= 0 || start+length > shape[dim] {
		panic(fmt.Sprintf("narrow: range [%d, %d) out of bounds for dimension of size %d", start, start+length, shape[dim]))
	}

	outShape := shape.Clone()
	outShape[dim] = length

	result, err := NewRaw(outShape, x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	src := m.toFloat64Slice(x)
	dst := make([]float64, outShape.NumElements())

	srcStrides := shape.ComputeStrides()
	dstStrides := outShape.ComputeStrides()

	for i := range dst {
		// Convert flat output index to coordinates, shift along dim, map back.
		temp := i
		srcIdx := 0
		for d := 0; d < len(outShape); d++ {
			coord := temp / dstStrides[d]
			temp %= dstStrides[d]
			if d == dim {
				coord += start
			}
			srcIdx += coord * srcStrides[d]
		}
		dst[i] = src[srcIdx]
	}

	m.fromFloat64Slice(dst, result)
	return result
}

// Unsqueeze adds a dimension of size 1.
func (m *MockBackend) Unsqueeze(x *RawTensor, dim int) *RawTensor {
	shape := x.Shape()
	if dim < 0 || dim > len(shape) {
		panic(fmt.Sprintf("unsqueeze: dimension %d out of range for %dD tensor", dim, len(shape)))
	}

	newShape := make(Shape, 0, len(shape)+1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, 1)
	newShape = append(newShape, shape[dim:]...)
	return m.Reshape(x, newShape)
}

// Squeeze removes a dimension of size 1.
func (m *MockBackend) Squeeze(x *RawTensor, dim int) *RawTensor {
	shape := x.Shape()
	if dim < 0 || dim >= len(shape) {
		panic(fmt.Sprintf("squeeze: dimension %d out of range for %dD tensor", dim, len(shape)))
	}
	if shape[dim] != 1 {
		panic(fmt.Sprintf("squeeze: dimension %d has size %d, expected 1", dim, shape[dim]))
	}

	newShape := make(Shape, 0, len(shape)-1)
	newShape = append(newShape, shape[:dim]...)
	newShape = append(newShape, shape[dim+1:]...)
	return m.Reshape(x, newShape)
}

// Gather selects elements along dim using an index tensor.
// The mock supports the 1-D case, which is all the vision ops use.
func (m *MockBackend) Gather(x *RawTensor, dim int, index *RawTensor) *RawTensor {
	if len(x.Shape()) != 1 || dim != 0 {
		panic("mock gather only supports 1D tensors along dim 0")
	}
	if index.DType() != Int32 {
		panic(fmt.Sprintf("gather: index dtype must be int32, got %s", index.DType()))
	}

	indices := index.AsInt32()
	result, err := NewRaw(index.Shape().Clone(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	src := m.toFloat64Slice(x)
	dst := make([]float64, len(indices))
	for i, idx := range indices {
		if int(idx) < 0 || int(idx) >= len(src) {
			panic(fmt.Sprintf("gather: index %d out of bounds for size %d", idx, len(src)))
		}
		dst[i] = src[idx]
	}

	m.fromFloat64Slice(dst, result)
	return result
}

// Where selects elements from x or y based on condition.
func (m *MockBackend) Where(condition, x, y *RawTensor) *RawTensor {
	if !condition.Shape().Equal(x.Shape()) || !x.Shape().Equal(y.Shape()) {
		panic("mock where requires equal shapes")
	}

	result, err := NewRaw(x.Shape().Clone(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	cond := condition.AsBool()
	xData := m.toFloat64Slice(x)
	yData := m.toFloat64Slice(y)
	dst := make([]float64, len(xData))
	for i := range dst {
		if cond[i] {
			dst[i] = xData[i]
		} else {
			dst[i] = yData[i]
		}
	}

	m.fromFloat64Slice(dst, result)
	return result
}

// Cast converts the tensor to a different dtype.
func (m *MockBackend) Cast(x *RawTensor, dtype DataType) *RawTensor {
	result, err := NewRaw(x.Shape().Clone(), dtype, m.Device())
	if err != nil {
		panic(err)
	}

	if dtype == Bool {
		dst := result.AsBool()
		for i, v := range m.toFloat64Slice(x) {
			dst[i] = v != 0
		}
		return result
	}

	m.fromFloat64Slice(m.toFloat64Slice(x), result)
	return result
}

// Internal helpers

// elementWise performs element-wise operations with broadcasting.
func (m *MockBackend) elementWise(a, b *RawTensor, op func(float64, float64) float64) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, a.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	numElements := outShape.NumElements()

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := make([]float64, numElements)

	for i := 0; i < numElements; i++ {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())

		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	m.fromFloat64Slice(resultData, result)
	return result
}

// compare performs element-wise comparison with broadcasting, returning a bool tensor.
func (m *MockBackend) compare(a, b *RawTensor, op func(float64, float64) bool) *RawTensor {
	outShape, _, err := BroadcastShapes(a.Shape(), b.Shape())
	if err != nil {
		panic(err)
	}

	result, err := NewRaw(outShape, Bool, m.Device())
	if err != nil {
		panic(err)
	}

	aData := m.toFloat64Slice(a)
	bData := m.toFloat64Slice(b)
	resultData := result.AsBool()

	for i := range resultData {
		aIdx := m.broadcastIndex(i, outShape, a.Shape())
		bIdx := m.broadcastIndex(i, outShape, b.Shape())

		resultData[i] = op(aData[aIdx], bData[bIdx])
	}

	return result
}

// unary applies op to every element.
func (m *MockBackend) unary(x *RawTensor, op func(float64) float64) *RawTensor {
	result, err := NewRaw(x.Shape().Clone(), x.DType(), m.Device())
	if err != nil {
		panic(err)
	}

	src := m.toFloat64Slice(x)
	dst := make([]float64, len(src))
	for i, v := range src {
		dst[i] = op(v)
	}

	m.fromFloat64Slice(dst, result)
	return result
}

// scalarResult wraps a float64 into a 0-D tensor of the given dtype.
func (m *MockBackend) scalarResult(v float64, dtype DataType) *RawTensor {
	result, err := NewRaw(Shape{}, dtype, m.Device())
	if err != nil {
		panic(err)
	}
	m.fromFloat64Slice([]float64{v}, result)
	return result
}

// indexResult wraps an index into a 0-D int32 tensor.
func (m *MockBackend) indexResult(idx int) *RawTensor {
	result, err := NewRaw(Shape{}, Int32, m.Device())
	if err != nil {
		panic(err)
	}
	result.AsInt32()[0] = int32(idx)
	return result
}

func (m *MockBackend) toFloat64Slice(t *RawTensor) []float64 {
	switch t.DType() {
	case Float32:
		src := t.AsFloat32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Float64:
		return t.AsFloat64()
	case Int32:
		src := t.AsInt32()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Int64:
		src := t.AsInt64()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Uint8:
		src := t.AsUint8()
		dst := make([]float64, len(src))
		for i, v := range src {
			dst[i] = float64(v)
		}
		return dst
	case Bool:
		src := t.AsBool()
		dst := make([]float64, len(src))
		for i, v := range src {
			if v {
				dst[i] = 1
			}
		}
		return dst
	default:
		panic(fmt.Sprintf("unsupported dtype: %s", t.DType()))
	}
}

func (m *MockBackend) fromFloat64Slice(src []float64, t *RawTensor) {
	switch t.DType() {
	case Float32:
		dst := t.AsFloat32()
		for i, v := range src {
			dst[i] = float32(v)
		}
	case Float64:
		copy(t.AsFloat64(), src)
	case Int32:
		dst := t.AsInt32()
		for i, v := range src {
			dst[i] = int32(v)
		}
	case Int64:
		dst := t.AsInt64()
		for i, v := range src {
			dst[i] = int64(v)
		}
	case Uint8:
		dst := t.AsUint8()
		for i, v := range src {
			dst[i] = uint8(v)
		}
	case Bool:
		dst := t.AsBool()
		for i, v := range src {
			dst[i] = v != 0
		}
	}
}

func (m *MockBackend) broadcastIndex(flatIdx int, outShape, inShape Shape) int {
	// Convert flat index to multi-dimensional indices in output shape
	outStrides := outShape.ComputeStrides()
	indices := make([]int, len(outShape))

	temp := flatIdx
	for i := 0; i < len(outShape); i++ {
		indices[i] = temp / outStrides[i]
		temp %= outStrides[i]
	}

	// Map to input shape (accounting for broadcasting)
	inStrides := inShape.ComputeStrides()
	inIdx := 0

	offset := len(outShape) - len(inShape)
	for i := 0; i < len(inShape); i++ {
		outDimIdx := indices[offset+i]

		// If input dimension is 1, always use index 0 (broadcasting)
		if inShape[i] == 1 {
			outDimIdx = 0
		}

		inIdx += outDimIdx * inStrides[i]
	}

	return inIdx
}

// scalarToFloat64 converts any supported scalar type to float64.
func scalarToFloat64(scalar any) float64 {
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
