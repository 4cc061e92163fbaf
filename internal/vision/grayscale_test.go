package vision

import (
	"testing"

	"github.com/janpfeifer/must"
	"github.com/stretchr/testify/assert"

	"github.com/born-ml/vision/internal/backend/cpu"
	"github.com/born-ml/vision/internal/tensor"
)

func TestGrayscaleSingleChannel(t *testing.T) {
	b := cpu.New()

	img := must.M1(tensor.FromSlice([]uint8{0, 100, 200, 255}, tensor.Shape{2, 2, 1}, b))

	gray := Grayscale(img)
	assert.Equal(t, tensor.Shape{2, 2, 1}, gray.Shape())
	assert.Equal(t, tensor.Float32, gray.DType())
	assert.Equal(t, []float32{0, 100, 200, 255}, gray.Data())
}

func TestGrayscaleLumaWeights(t *testing.T) {
	b := cpu.New()

	// Pure primaries expose each luma coefficient directly.
	data := []float32{
		255, 0, 0,
		0, 255, 0,
		0, 0, 255,
		255, 255, 255,
	}
	img := must.M1(tensor.FromSlice(data, tensor.Shape{4, 1, 3}, b))

	gray := Grayscale(img)
	assert.Equal(t, tensor.Shape{4, 1, 1}, gray.Shape())

	got := gray.Data()
	assert.InDelta(t, 255*0.2989, got[0], 1e-2)
	assert.InDelta(t, 255*0.5870, got[1], 1e-2)
	assert.InDelta(t, 255*0.1140, got[2], 1e-2)
	assert.InDelta(t, 255, got[3], 1e-2)
}

func TestGrayscaleGrayPixelsUnchanged(t *testing.T) {
	b := cpu.New()

	// R == G == B must map to (nearly) the same intensity.
	data := []float32{128, 128, 128}
	img := must.M1(tensor.FromSlice(data, tensor.Shape{1, 1, 3}, b))

	gray := Grayscale(img)
	assert.InDelta(t, 128, gray.Data()[0], 1e-2)
}

func TestIntensityHistogram(t *testing.T) {
	b := cpu.New()

	gray := must.M1(tensor.FromSlice([]float32{0, 0, 127.4, 127.6, 255}, tensor.Shape{5, 1, 1}, b))

	hist := IntensityHistogram(gray)
	assert.Equal(t, tensor.Shape{histogramBuckets}, hist.Shape())

	counts := hist.Data()
	assert.Equal(t, int64(2), counts[0])
	assert.Equal(t, int64(1), counts[127], "127.4 rounds down")
	assert.Equal(t, int64(1), counts[128], "127.6 rounds up")
	assert.Equal(t, int64(1), counts[255])

	var total int64
	for _, c := range counts {
		total += c
	}
	assert.Equal(t, int64(5), total)
}
