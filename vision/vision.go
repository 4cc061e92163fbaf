// Copyright 2025 Born ML Framework. All rights reserved.
// Use of this source code is governed by an Apache 2.0
// license that can be found in the LICENSE file.

// Package vision provides image operations built on the tensor core.
//
// The central operation is Threshold, which binarizes a grayscale or RGB
// image into a 0/255 mask using a fixed threshold, Otsu's method, or the
// triangle method:
//
//	backend := cpu.New()
//	img, _ := vision.FromImage(decoded, backend)
//	bin, err := vision.Threshold(img, vision.Options{Method: vision.MethodOtsu})
package vision

import (
	"image"

	"github.com/born-ml/vision/internal/tensor"
	"github.com/born-ml/vision/internal/vision"
)

// Method selects the threshold-value strategy.
type Method = vision.Method

// Supported threshold methods.
const (
	MethodBinary   Method = vision.MethodBinary
	MethodOtsu     Method = vision.MethodOtsu
	MethodTriangle Method = vision.MethodTriangle
)

// Options configures Threshold.
type Options = vision.Options

// ErrInvalidArgument is returned when an input fails validation.
var ErrInvalidArgument = vision.ErrInvalidArgument

// ErrUnsupportedMethod is returned for an unrecognized threshold method.
// It wraps ErrInvalidArgument.
var ErrUnsupportedMethod = vision.ErrUnsupportedMethod

// DefaultOptions returns the default configuration: binary method,
// not inverted, threshold value 0.5.
func DefaultOptions() Options {
	return vision.DefaultOptions()
}

// Threshold binarizes a [height, width, channels] image tensor into a
// [height, width, 1] uint8 tensor whose elements are exactly 0 or 255.
// See internal documentation on Options for the method semantics.
func Threshold[T tensor.DType, B tensor.Backend](img *tensor.Tensor[T, B], opts Options) (*tensor.Tensor[uint8, B], error) {
	return vision.Threshold(img, opts)
}

// Grayscale reduces an image tensor to a single float32 channel using
// CCIR 601 luma weights (pass-through for single-channel input).
func Grayscale[T tensor.DType, B tensor.Backend](img *tensor.Tensor[T, B]) *tensor.Tensor[float32, B] {
	return vision.Grayscale(img)
}

// IntensityHistogram builds the 256-bucket intensity histogram of a
// grayscale tensor.
func IntensityHistogram[B tensor.Backend](gray *tensor.Tensor[float32, B]) *tensor.Tensor[int64, B] {
	return vision.IntensityHistogram(gray)
}

// FromImage converts a decoded image into a [height, width, channels] uint8 tensor.
func FromImage[B tensor.Backend](img image.Image, b B) (*tensor.Tensor[uint8, B], error) {
	return vision.FromImage(img, b)
}

// ToGray converts a [height, width, 1] uint8 tensor into an *image.Gray.
func ToGray[B tensor.Backend](t *tensor.Tensor[uint8, B]) (*image.Gray, error) {
	return vision.ToGray(t)
}
