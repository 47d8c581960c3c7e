package glic

import "errors"

// Error kinds returned by the codec. Callers should match against these
// with errors.Is; call sites wrap them with a component-qualified message.
var (
	// ErrTruncatedInput is returned when a bit reader runs out of data
	// before a logical field finishes. Decoding a segment's residuals
	// treats this as a soft stop rather than a hard failure; see Decode.
	ErrTruncatedInput = errors.New("glic: truncated input")

	// ErrBadMagic is returned when a container's first four bytes do not
	// match the GLIC magic number.
	ErrBadMagic = errors.New("glic: bad magic")

	// ErrBadVersion is returned when a container's version field is not
	// a version this package understands.
	ErrBadVersion = errors.New("glic: unsupported version")

	// ErrUnsupportedEnum is returned when a channel config names an
	// out-of-range color space, predictor, wavelet, transform, clamp
	// policy, or encoding method.
	ErrUnsupportedEnum = errors.New("glic: unsupported enum value")

	// ErrDecodeFailure is a catch-all for a decode stage that could not
	// complete for a reason other than truncation.
	ErrDecodeFailure = errors.New("glic: decode failure")
)
