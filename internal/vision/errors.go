// Package vision implements image operations on top of the tensor core.
package vision

import "github.com/pkg/errors"

// ErrInvalidArgument is returned when an operation is called with an input
// that fails validation: wrong rank, unsupported channel count or dtype, or
// an unrecognized parameter value. It is detected before any computation;
// no output is produced.
var ErrInvalidArgument = errors.New("invalid argument")

// ErrUnsupportedMethod is returned for an unrecognized threshold method.
// It wraps ErrInvalidArgument, so errors.Is matches either sentinel.
var ErrUnsupportedMethod = errors.Wrap(ErrInvalidArgument, "unsupported method")
