package vision

import (
	"github.com/pkg/errors"

	"github.com/born-ml/vision/internal/tensor"
)

// Method selects the threshold-value strategy.
type Method string

// Supported threshold methods.
const (
	// MethodBinary uses the fixed threshold Options.Value * 255.
	MethodBinary Method = "binary"
	// MethodOtsu picks the threshold maximizing between-class variance.
	MethodOtsu Method = "otsu"
	// MethodTriangle picks the threshold furthest from the histogram's
	// peak-to-tail chord.
	MethodTriangle Method = "triangle"
)

const (
	// maxIntensity is the upper bound of the 8-bit intensity range.
	maxIntensity = 255
	// histogramBuckets is the number of intensity buckets.
	histogramBuckets = 256
)

// Options configures Threshold.
type Options struct {
	// Method selects the threshold strategy. Empty means MethodBinary.
	Method Method
	// Inverted swaps the comparison direction: foreground becomes
	// grayscale <= threshold instead of grayscale > threshold.
	Inverted bool
	// Value is the normalized threshold in [0, 1], scaled to [0, 255]
	// internally. Only meaningful for MethodBinary.
	Value float64
}

// DefaultOptions returns the default configuration: binary method,
// not inverted, threshold value 0.5.
func DefaultOptions() Options {
	return Options{Method: MethodBinary, Value: 0.5}
}

// Threshold binarizes an image.
//
// The input must be a rank-3 tensor of shape [height, width, channels] with
// 1 or 3 channels, holding intensities in [0, 255]. Three-channel images are
// reduced to grayscale with CCIR 601 luma weights first. Every output pixel
// is exactly 0 or 255, and is 255 iff the grayscale pixel satisfies the
// (possibly inverted) comparison against the selected threshold.
//
// The output has shape [height, width, 1]. The input is never mutated.
// Validation failures return ErrInvalidArgument; there are no other error
// paths.
func Threshold[T tensor.DType, B tensor.Backend](img *tensor.Tensor[T, B], opts Options) (*tensor.Tensor[uint8, B], error) {
	if opts.Method == "" {
		opts.Method = MethodBinary
	}
	if err := validateInput(img.Raw(), opts); err != nil {
		return nil, err
	}

	gray := Grayscale(img)

	var thresh float64
	switch opts.Method {
	case MethodBinary:
		thresh = opts.Value * maxIntensity
	case MethodOtsu:
		thresh = float64(otsuThreshold(IntensityHistogram(gray).Data()))
	case MethodTriangle:
		thresh = float64(triangleThreshold(IntensityHistogram(gray).Data()))
	}

	bound := tensor.Full[float32](gray.Shape(), float32(thresh), img.Backend())

	var mask *tensor.Tensor[bool, B]
	if opts.Inverted {
		mask = gray.LowerEqual(bound)
	} else {
		mask = gray.Greater(bound)
	}

	return mask.Uint8().MulScalar(maxIntensity), nil
}

// validateInput checks rank, channel count, dtype and options.
// It runs before any computation so a failing call produces no output.
func validateInput(raw *tensor.RawTensor, opts Options) error {
	shape := raw.Shape()
	if len(shape) != 3 {
		return errors.Wrapf(ErrInvalidArgument, "image must be rank 3 [height, width, channels], got rank %d", len(shape))
	}
	if c := shape[2]; c != 1 && c != 3 {
		return errors.Wrapf(ErrInvalidArgument, "image must have 1 or 3 channels, got %d", c)
	}
	if dt := raw.DType(); !dt.IsFloat() && !dt.IsInteger() {
		return errors.Wrapf(ErrInvalidArgument, "image dtype must be numeric, got %s", dt)
	}

	switch opts.Method {
	case MethodBinary, MethodOtsu, MethodTriangle:
	default:
		return errors.Wrapf(ErrUnsupportedMethod, "unknown threshold method %q", opts.Method)
	}

	if opts.Value < 0 || opts.Value > 1 {
		return errors.Wrapf(ErrInvalidArgument, "threshold value must be in [0, 1], got %g", opts.Value)
	}

	return nil
}
