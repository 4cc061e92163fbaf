package vision

import (
	"image"
	"image/color"
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vision/internal/backend/cpu"
	"github.com/born-ml/vision/internal/tensor"
)

func TestFromImageGray(t *testing.T) {
	b := cpu.New()

	src := image.NewGray(image.Rect(0, 0, 3, 2))
	for y := 0; y < 2; y++ {
		for x := 0; x < 3; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(y*3 + x)})
		}
	}

	got, err := FromImage(src, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 3, 1}, got.Shape())
	assert.Equal(t, []uint8{0, 1, 2, 3, 4, 5}, got.Data())
}

func TestFromImageRGBA(t *testing.T) {
	b := cpu.New()

	src := image.NewRGBA(image.Rect(0, 0, 2, 1))
	src.SetRGBA(0, 0, color.RGBA{R: 10, G: 20, B: 30, A: 255})
	src.SetRGBA(1, 0, color.RGBA{R: 200, G: 150, B: 100, A: 255})

	got, err := FromImage(src, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, 2, 3}, got.Shape())
	assert.Equal(t, []uint8{10, 20, 30, 200, 150, 100}, got.Data())
}

func TestFromImageNonZeroOrigin(t *testing.T) {
	b := cpu.New()

	src := image.NewGray(image.Rect(5, 5, 7, 6))
	src.SetGray(5, 5, color.Gray{Y: 11})
	src.SetGray(6, 5, color.Gray{Y: 22})

	got, err := FromImage(src, b)
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, 2, 1}, got.Shape())
	assert.Equal(t, []uint8{11, 22}, got.Data())
}

func TestFromImageEmptyBounds(t *testing.T) {
	b := cpu.New()

	_, err := FromImage(image.NewGray(image.Rect(0, 0, 0, 0)), b)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestToGray(t *testing.T) {
	b := cpu.New()

	src := must.M1(tensor.FromSlice([]uint8{0, 255, 128, 64}, tensor.Shape{2, 2, 1}, b))

	img, err := ToGray(src)
	require.NoError(t, err)

	assert.Equal(t, image.Rect(0, 0, 2, 2), img.Bounds())
	assert.Equal(t, uint8(0), img.GrayAt(0, 0).Y)
	assert.Equal(t, uint8(255), img.GrayAt(1, 0).Y)
	assert.Equal(t, uint8(128), img.GrayAt(0, 1).Y)
	assert.Equal(t, uint8(64), img.GrayAt(1, 1).Y)
}

func TestToGrayWrongShape(t *testing.T) {
	b := cpu.New()

	src := must.M1(tensor.FromSlice([]uint8{1, 2, 3, 4, 5, 6}, tensor.Shape{1, 2, 3}, b))

	_, err := ToGray(src)
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrInvalidArgument))
}

func TestImageRoundTrip(t *testing.T) {
	b := cpu.New()

	src := image.NewGray(image.Rect(0, 0, 4, 4))
	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			src.SetGray(x, y, color.Gray{Y: uint8(16 * (y*4 + x))})
		}
	}

	tens := must.M1(FromImage(src, b))
	out := must.M1(Threshold(tens, Options{Method: MethodBinary, Value: 0.5}))
	img := must.M1(ToGray(out))

	for y := 0; y < 4; y++ {
		for x := 0; x < 4; x++ {
			want := uint8(0)
			if 16*(y*4+x) > 127 {
				want = 255
			}
			assert.Equal(t, want, img.GrayAt(x, y).Y, "pixel (%d,%d)", x, y)
		}
	}
}
