package vision

import "github.com/born-ml/vision/internal/tensor"

// IntensityHistogram builds the 256-bucket intensity histogram of a
// grayscale tensor. Values are rounded to the nearest integer and binned;
// values outside [0, 255] land in the boundary buckets.
func IntensityHistogram[B tensor.Backend](gray *tensor.Tensor[float32, B]) *tensor.Tensor[int64, B] {
	return gray.Round().Bincount(histogramBuckets)
}

// firstNonZero returns the index of the first non-zero bucket, or -1 if the
// histogram is empty.
func firstNonZero(hist []int64) int {
	for i, c := range hist {
		if c != 0 {
			return i
		}
	}
	return -1
}

// lastNonZero returns the index of the last non-zero bucket, or -1 if the
// histogram is empty.
func lastNonZero(hist []int64) int {
	for i := len(hist) - 1; i >= 0; i-- {
		if hist[i] != 0 {
			return i
		}
	}
	return -1
}
