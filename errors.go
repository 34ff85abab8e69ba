package rawimg

import "errors"

// Common errors for catalog, validation and decode operations.
var (
	// ErrFormatUnsupported is returned when a format name is not known
	// to the catalog or has no registered pattern table.
	ErrFormatUnsupported = errors.New("rawimg: unsupported format")

	// ErrDuplicateFormat is returned when registering a format whose
	// name is already present.
	ErrDuplicateFormat = errors.New("rawimg: duplicate format name")

	// ErrBufferTooSmall is returned when the input buffer is shorter
	// than the size required by the format at the given dimensions.
	ErrBufferTooSmall = errors.New("rawimg: buffer too small")

	// ErrInvalidDimensions is returned when width or height is
	// non-positive.
	ErrInvalidDimensions = errors.New("rawimg: invalid dimensions")

	// ErrInvalidStride is returned when an explicit row stride is less
	// than the minimum required for the width.
	ErrInvalidStride = errors.New("rawimg: row stride too small for width")

	// ErrInvalidPlane is returned when a plane descriptor violates its
	// geometry invariants.
	ErrInvalidPlane = errors.New("rawimg: invalid plane descriptor")

	// ErrUnbalancedPattern is returned when a 2x2 pattern table does
	// not hold exactly two Green, one Red and one Blue entry.
	ErrUnbalancedPattern = errors.New("rawimg: pattern is not a balanced bayer tile")

	// ErrCanceled is returned when a decode observes context
	// cancellation between row bands.
	ErrCanceled = errors.New("rawimg: decode canceled")
)
