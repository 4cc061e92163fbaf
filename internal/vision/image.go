package vision

import (
	"image"
	"image/color"

	"github.com/pkg/errors"

	"github.com/born-ml/vision/internal/tensor"
)

// FromImage converts a decoded image into a [height, width, channels] uint8
// tensor. Grayscale images produce one channel; everything else produces
// three (RGB, alpha discarded).
func FromImage[B tensor.Backend](img image.Image, b B) (*tensor.Tensor[uint8, B], error) {
	bounds := img.Bounds()
	h, w := bounds.Dy(), bounds.Dx()
	if h == 0 || w == 0 {
		return nil, errors.Wrap(ErrInvalidArgument, "image has empty bounds")
	}

	if gray, ok := img.(*image.Gray); ok {
		data := make([]uint8, h*w)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				data[y*w+x] = gray.GrayAt(bounds.Min.X+x, bounds.Min.Y+y).Y
			}
		}
		return tensor.FromSlice(data, tensor.Shape{h, w, 1}, b)
	}

	data := make([]uint8, h*w*3)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			r, g, bl, _ := img.At(bounds.Min.X+x, bounds.Min.Y+y).RGBA()
			i := (y*w + x) * 3
			data[i] = uint8(r >> 8)
			data[i+1] = uint8(g >> 8)
			data[i+2] = uint8(bl >> 8)
		}
	}
	return tensor.FromSlice(data, tensor.Shape{h, w, 3}, b)
}

// ToGray converts a single-channel uint8 tensor of shape [height, width, 1]
// back into an *image.Gray.
func ToGray[B tensor.Backend](t *tensor.Tensor[uint8, B]) (*image.Gray, error) {
	shape := t.Shape()
	if len(shape) != 3 || shape[2] != 1 {
		return nil, errors.Wrapf(ErrInvalidArgument, "expected shape [height, width, 1], got %v", shape)
	}

	h, w := shape[0], shape[1]
	img := image.NewGray(image.Rect(0, 0, w, h))
	data := t.Data()
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			img.SetGray(x, y, color.Gray{Y: data[y*w+x]})
		}
	}
	return img, nil
}
