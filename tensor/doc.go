// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package tensor provides type-safe tensor operations for the Born vision
// library.
//
// # Overview
//
// Tensors are the fundamental data structure for image processing in this
// module. This package provides:
//   - Generic type-safe tensors (Tensor[T, B])
//   - NumPy-style broadcasting
//   - Zero-copy operations where possible
//   - Device abstraction (CPU today, GPU backends pluggable)
//
// # Basic Usage
//
//	import (
//	    "github.com/born-ml/vision/tensor"
//	    "github.com/born-ml/vision/backend/cpu"
//	)
//
//	func main() {
//	    backend := cpu.New()
//
//	    // Create tensors
//	    x := tensor.Zeros[float32](tensor.Shape{2, 3}, backend)
//	    y := tensor.Ones[float32](tensor.Shape{2, 3}, backend)
//
//	    // Tensor operations
//	    z := x.Add(y)
//	    mask := z.Greater(x)
//	}
//
// # Supported Data Types
//
// The tensor package supports the following data types via the DType constraint:
//   - float32, float64 (floating-point)
//   - int32, int64 (signed integers)
//   - uint8 (unsigned integers, the natural dtype for 8-bit images)
//   - bool (boolean masks)
//
// # Broadcasting
//
// Tensor operations follow NumPy broadcasting rules:
//
//	a := tensor.Zeros[float32](tensor.Shape{3, 1}, backend)     // (3, 1)
//	b := tensor.Ones[float32](tensor.Shape{3, 4}, backend)      // (3, 4)
//	c := a.Add(b)                                                // (3, 4)
//
// # Memory Management
//
// Tensors use zero-copy operations where possible. The underlying data is
// reference-counted and automatically freed when no longer needed.
//
// # Available Operations
//
// Scalar operations:
//
//	y := x.MulScalar(2.0)    // Multiply by scalar
//	y := x.AddScalar(1.0)    // Add scalar
//
// Math operations:
//
//	y := x.Sqrt()            // Square root
//	y := x.Round()           // Round to nearest integer
//	y := x.Atan()            // Arc tangent
//
// Comparison operations (return Tensor[bool, B]):
//
//	mask := x.Greater(y)     // or x.Gt(y)
//	mask := x.LowerEqual(y)  // or x.Le(y)
//
// Reductions (return 0-D scalar tensors):
//
//	s := x.Sum()
//	i := x.Argmax()
//
// Histograms:
//
//	h := x.Bincount(256)     // Count values into 256 buckets
//
// Type conversion:
//
//	u := x.Uint8()           // Convert to uint8
//	f := x.Float32()         // Convert to float32
//
// See method documentation for the full list of operations.
package tensor
