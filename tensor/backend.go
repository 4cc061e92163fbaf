// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

package tensor

import "github.com/born-ml/vision/internal/tensor"

// Backend defines the interface that all compute backends must implement.
// Backends handle the actual computation for tensor operations.
//
// Implementations:
//   - backend/cpu: Pure Go reference implementation
//
// The operation surface covers what the vision ops require: element-wise
// arithmetic and comparisons, whole-tensor reductions, histogram binning,
// slicing, indexing and type conversion.
type Backend interface {
	// Element-wise binary operations (with broadcasting).
	Add(a, b *RawTensor) *RawTensor // Element-wise addition.
	Sub(a, b *RawTensor) *RawTensor // Element-wise subtraction.
	Mul(a, b *RawTensor) *RawTensor // Element-wise multiplication.
	Div(a, b *RawTensor) *RawTensor // Element-wise division.

	// Scalar operations (element-wise with scalar).
	AddScalar(x *RawTensor, scalar any) *RawTensor // Add scalar.
	SubScalar(x *RawTensor, scalar any) *RawTensor // Subtract scalar.
	MulScalar(x *RawTensor, scalar any) *RawTensor // Multiply by scalar.
	DivScalar(x *RawTensor, scalar any) *RawTensor // Divide by scalar.

	// Math operations (element-wise, float tensors only).
	Sqrt(x *RawTensor) *RawTensor  // Square root.
	Round(x *RawTensor) *RawTensor // Round half away from zero.
	Atan(x *RawTensor) *RawTensor  // Arc tangent.
	Tan(x *RawTensor) *RawTensor   // Tangent.

	// Comparison operations (element-wise, return bool tensor).
	Greater(a, b *RawTensor) *RawTensor      // a > b.
	Lower(a, b *RawTensor) *RawTensor        // a < b.
	GreaterEqual(a, b *RawTensor) *RawTensor // a >= b.
	LowerEqual(a, b *RawTensor) *RawTensor   // a <= b.
	Equal(a, b *RawTensor) *RawTensor        // a == b.

	// Whole-tensor reductions (scalar result).
	Sum(x *RawTensor) *RawTensor    // Total sum.
	Max(x *RawTensor) *RawTensor    // Maximum value.
	Min(x *RawTensor) *RawTensor    // Minimum value.
	Argmax(x *RawTensor) *RawTensor // Flat index of first maximum (int32 scalar).
	Argmin(x *RawTensor) *RawTensor // Flat index of first minimum (int32 scalar).

	// Histogram binning over [0, buckets); returns int64 tensor of shape {buckets}.
	Bincount(x *RawTensor, buckets int) *RawTensor

	// Shape operations.
	Reshape(t *RawTensor, newShape Shape) *RawTensor        // Reshape tensor.
	Narrow(x *RawTensor, dim, start, length int) *RawTensor // Slice along a dimension.
	Unsqueeze(x *RawTensor, dim int) *RawTensor             // Add dimension of size 1.
	Squeeze(x *RawTensor, dim int) *RawTensor               // Remove dimension of size 1.

	// Indexing operations.
	Gather(x *RawTensor, dim int, index *RawTensor) *RawTensor // Select elements along dim using index tensor.
	Where(condition, x, y *RawTensor) *RawTensor               // Conditional element selection.

	// Type conversion.
	Cast(x *RawTensor, dtype DataType) *RawTensor // Cast to different data type.

	// Metadata.
	Name() string   // Backend name (e.g., "CPU").
	Device() Device // Device type.
}

// Compile-time check that internal Backend implements public Backend.
var _ Backend = tensor.Backend(nil)
