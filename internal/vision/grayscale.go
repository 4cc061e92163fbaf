package vision

import "github.com/born-ml/vision/internal/tensor"

// CCIR 601 luma weights.
const (
	lumaRed   = 0.2989
	lumaGreen = 0.5870
	lumaBlue  = 0.1140
)

// Grayscale reduces a [height, width, channels] image to a single-channel
// float32 tensor of shape [height, width, 1].
//
// Three-channel images are combined as 0.2989*R + 0.5870*G + 0.1140*B.
// Single-channel images are passed through (cast to float32 only).
func Grayscale[T tensor.DType, B tensor.Backend](img *tensor.Tensor[T, B]) *tensor.Tensor[float32, B] {
	f := img.Float32()
	if f.Shape()[2] == 1 {
		return f
	}

	r := f.Narrow(2, 0, 1).MulScalar(lumaRed)
	g := f.Narrow(2, 1, 1).MulScalar(lumaGreen)
	b := f.Narrow(2, 2, 1).MulScalar(lumaBlue)

	return r.Add(g).Add(b)
}
