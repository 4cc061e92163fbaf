package vision

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/born-ml/vision/internal/backend/cpu"
	"github.com/born-ml/vision/internal/tensor"
)

func grayImage(data []float32, h, w int, b *cpu.CPUBackend) *tensor.Tensor[float32, *cpu.CPUBackend] {
	return must.M1(tensor.FromSlice(data, tensor.Shape{h, w, 1}, b))
}

func TestThresholdBinary(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{10, 200, 250, 5}, 2, 2, b)

	out, err := Threshold(img, Options{Method: MethodBinary, Value: 0.5})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{2, 2, 1}, out.Shape())
	assert.Equal(t, []uint8{0, 255, 255, 0}, out.Data())
}

func TestThresholdBinaryInverted(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{10, 200, 250, 5}, 2, 2, b)

	out, err := Threshold(img, Options{Method: MethodBinary, Value: 0.5, Inverted: true})
	require.NoError(t, err)

	assert.Equal(t, []uint8{255, 0, 0, 255}, out.Data())
}

func TestThresholdInversionComplement(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{0, 64, 127, 128, 191, 255}, 2, 3, b)

	for _, method := range []Method{MethodBinary, MethodOtsu, MethodTriangle} {
		plain := must.M1(Threshold(img, Options{Method: method, Value: 0.5}))
		inverted := must.M1(Threshold(img, Options{Method: method, Value: 0.5, Inverted: true}))

		for i := range plain.Data() {
			assert.Equal(t, uint8(255), plain.Data()[i]+inverted.Data()[i],
				"method %s: pixel %d not complementary", method, i)
		}
	}
}

func TestThresholdOutputIsBinary(t *testing.T) {
	b := cpu.New()

	data := make([]float32, 64)
	for i := range data {
		data[i] = float32(i * 4)
	}
	img := grayImage(data, 8, 8, b)

	out := must.M1(Threshold(img, DefaultOptions()))
	for i, v := range out.Data() {
		assert.Contains(t, []uint8{0, 255}, v, "pixel %d", i)
	}
}

func TestThresholdDefaultsToBinary(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{10, 200}, 1, 2, b)

	// Zero-value method falls back to the binary strategy.
	out, err := Threshold(img, Options{Value: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 255}, out.Data())
}

func TestThresholdThreeChannel(t *testing.T) {
	b := cpu.New()

	// One red, one white pixel. Red's luma is ~76, below the midpoint;
	// white's is 255.
	data := []float32{
		255, 0, 0,
		255, 255, 255,
	}
	img := must.M1(tensor.FromSlice(data, tensor.Shape{1, 2, 3}, b))

	out, err := Threshold(img, Options{Method: MethodBinary, Value: 0.5})
	require.NoError(t, err)

	assert.Equal(t, tensor.Shape{1, 2, 1}, out.Shape())
	assert.Equal(t, []uint8{0, 255}, out.Data())
}

func TestThresholdOtsuBimodal(t *testing.T) {
	b := cpu.New()

	// Half the pixels dark, half bright. Otsu must split them.
	data := make([]float32, 16)
	for i := range data {
		if i < 8 {
			data[i] = 10
		} else {
			data[i] = 200
		}
	}
	img := grayImage(data, 4, 4, b)

	out, err := Threshold(img, Options{Method: MethodOtsu})
	require.NoError(t, err)

	for i, v := range out.Data() {
		if i < 8 {
			assert.Equal(t, uint8(0), v, "dark pixel %d", i)
		} else {
			assert.Equal(t, uint8(255), v, "bright pixel %d", i)
		}
	}
}

func TestThresholdOtsuDeterministic(t *testing.T) {
	b := cpu.New()

	data := []float32{5, 5, 80, 80, 80, 200, 200, 250, 0, 130, 130, 130}
	img := grayImage(data, 3, 4, b)

	first := must.M1(Threshold(img, Options{Method: MethodOtsu}))
	for i := 0; i < 5; i++ {
		again := must.M1(Threshold(img, Options{Method: MethodOtsu}))
		assert.Equal(t, first.Data(), again.Data(), "run %d", i)
	}
}

func TestThresholdConstantImage(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{100, 100, 100, 100}, 2, 2, b)

	// A constant image has no valid split; the threshold falls back to the
	// single populated bucket, so nothing exceeds it.
	for _, method := range []Method{MethodOtsu, MethodTriangle} {
		out, err := Threshold(img, Options{Method: method})
		require.NoError(t, err)
		assert.Equal(t, []uint8{0, 0, 0, 0}, out.Data(), "method %s", method)

		inverted := must.M1(Threshold(img, Options{Method: method, Inverted: true}))
		assert.Equal(t, []uint8{255, 255, 255, 255}, inverted.Data(), "method %s inverted", method)
	}
}

func TestThresholdTriangleSkewed(t *testing.T) {
	b := cpu.New()

	// A dominant dark background with a few bright outliers; the triangle
	// method must separate the outliers from the background mass.
	data := make([]float32, 100)
	for i := range data {
		data[i] = 20
	}
	data[10] = 240
	data[55] = 250
	img := grayImage(data, 10, 10, b)

	out, err := Threshold(img, Options{Method: MethodTriangle})
	require.NoError(t, err)

	bright := 0
	for _, v := range out.Data() {
		if v == 255 {
			bright++
		}
	}
	assert.Equal(t, 2, bright)
	assert.Equal(t, uint8(255), out.At(1, 0, 0))
	assert.Equal(t, uint8(255), out.At(5, 5, 0))
}

func TestThresholdUint8Input(t *testing.T) {
	b := cpu.New()

	img := must.M1(tensor.FromSlice([]uint8{10, 200, 250, 5}, tensor.Shape{2, 2, 1}, b))

	out, err := Threshold(img, Options{Method: MethodBinary, Value: 0.5})
	require.NoError(t, err)
	assert.Equal(t, []uint8{0, 255, 255, 0}, out.Data())
}

func TestThresholdDoesNotMutateInput(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{10, 200, 250, 5}, 2, 2, b)

	_ = must.M1(Threshold(img, DefaultOptions()))
	assert.Equal(t, []float32{10, 200, 250, 5}, img.Data())
}

func TestThresholdValidation(t *testing.T) {
	b := cpu.New()

	valid := grayImage([]float32{1, 2, 3, 4}, 2, 2, b)

	t.Run("WrongRank", func(t *testing.T) {
		img := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{2, 2}, b))
		_, err := Threshold(img, DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "rank")
	})

	t.Run("WrongChannelCount", func(t *testing.T) {
		img := must.M1(tensor.FromSlice([]float32{1, 2, 3, 4}, tensor.Shape{1, 2, 2}, b))
		_, err := Threshold(img, DefaultOptions())
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "channels")
	})

	t.Run("UnknownMethod", func(t *testing.T) {
		_, err := Threshold(valid, Options{Method: "adaptive"})
		require.Error(t, err)
		assert.True(t, errors.Is(err, ErrUnsupportedMethod))
		assert.True(t, errors.Is(err, ErrInvalidArgument))
		assert.Contains(t, err.Error(), "adaptive")
	})

	t.Run("ValueOutOfRange", func(t *testing.T) {
		for _, v := range []float64{-0.1, 1.5} {
			_, err := Threshold(valid, Options{Method: MethodBinary, Value: v})
			require.Error(t, err, "value %g", v)
			assert.True(t, errors.Is(err, ErrInvalidArgument))
		}
	})
}

func TestThresholdValueBoundaries(t *testing.T) {
	b := cpu.New()

	img := grayImage([]float32{0, 128, 255}, 1, 3, b)

	// Value 0 keeps everything above zero; value 1 keeps nothing since no
	// pixel exceeds 255.
	low := must.M1(Threshold(img, Options{Method: MethodBinary, Value: 0}))
	assert.Equal(t, []uint8{0, 255, 255}, low.Data())

	high := must.M1(Threshold(img, Options{Method: MethodBinary, Value: 1}))
	assert.Equal(t, []uint8{0, 0, 0}, high.Data())
}
