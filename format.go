package rawimg

import "fmt"

// FormatCategory is the family of sensor data layouts a format
// belongs to.
type FormatCategory uint8

const (
	// CategoryBayer is single-plane color-filter-array data, one
	// sample per pixel site.
	CategoryBayer FormatCategory = iota

	// categoryCount is the number of categories (for internal use).
	categoryCount
)

// String returns the category name.
func (c FormatCategory) String() string {
	switch c {
	case CategoryBayer:
		return "Bayer"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined categories.
func (c FormatCategory) IsValid() bool {
	return c < categoryCount
}

// PlaneDescriptor describes the byte and bit layout of one data plane
// inside a raw buffer.
//
// A 10-bit sample stored little-endian in two bytes is
// {ByteStride: 2, SignificantBits: 10, ContainerBits: 16}.
type PlaneDescriptor struct {
	// ByteStride is the number of bytes advanced per pixel group.
	ByteStride int

	// SignificantBits is the meaningful bit depth of a sample.
	SignificantBits int

	// ContainerBits is the total bits a sample occupies. Must be a
	// multiple of 8 and at least SignificantBits.
	ContainerBits int
}

// Validate checks the plane geometry invariants.
func (p PlaneDescriptor) Validate() error {
	switch {
	case p.SignificantBits < 1:
		return fmt.Errorf("%w: significant bits %d", ErrInvalidPlane, p.SignificantBits)
	case p.ContainerBits%8 != 0:
		return fmt.Errorf("%w: container bits %d not byte-aligned", ErrInvalidPlane, p.ContainerBits)
	case p.SignificantBits > p.ContainerBits:
		return fmt.Errorf("%w: %d significant bits in %d-bit container", ErrInvalidPlane, p.SignificantBits, p.ContainerBits)
	case p.ByteStride < p.ContainerBits/8:
		return fmt.Errorf("%w: byte stride %d below container width", ErrInvalidPlane, p.ByteStride)
	}
	return nil
}

// RowBytes returns the minimum bytes per image row at the given width,
// honoring the plane's byte stride when it exceeds the container width.
func (p PlaneDescriptor) RowBytes(width int) int {
	n := (width*p.ContainerBits + 7) / 8
	if m := width * p.ByteStride; m > n {
		n = m
	}
	return n
}

// Format is an immutable pixel-format descriptor. Formats are built
// once, registered with a Catalog, and never mutated afterwards.
type Format struct {
	// Category is the layout family. Only CategoryBayer is decoded.
	Category FormatCategory

	// Name is the unique catalog key, e.g. "GBRG_16".
	Name string

	// Is16Bit selects two-byte little-endian sample reads.
	Is16Bit bool

	// Planes holds one descriptor per data plane. Bayer data has a
	// single plane.
	Planes []PlaneDescriptor
}

// Validate checks the format invariants: a name, a recognized
// category, and at least one valid plane consistent with Is16Bit.
func (f Format) Validate() error {
	if f.Name == "" {
		return fmt.Errorf("%w: empty format name", ErrFormatUnsupported)
	}
	if !f.Category.IsValid() {
		return fmt.Errorf("%w: format %q has unknown category", ErrFormatUnsupported, f.Name)
	}
	if len(f.Planes) == 0 {
		return fmt.Errorf("%w: format %q has no planes", ErrInvalidPlane, f.Name)
	}
	for _, p := range f.Planes {
		if err := p.Validate(); err != nil {
			return fmt.Errorf("format %q: %w", f.Name, err)
		}
	}
	want := 8
	if f.Is16Bit {
		want = 16
	}
	if f.Planes[0].ContainerBits != want {
		return fmt.Errorf("%w: format %q container is %d bits, flag says %d",
			ErrInvalidPlane, f.Name, f.Planes[0].ContainerBits, want)
	}
	return nil
}

// RowBytes returns the minimum bytes per row of the primary plane.
func (f Format) RowBytes(width int) int {
	return f.Planes[0].RowBytes(width)
}

// RequiredSize returns the minimum buffer length in bytes needed to
// hold a width x height image in this format, tightly packed.
// It is monotonically non-decreasing in both dimensions.
func (f Format) RequiredSize(width, height int) int {
	if width <= 0 || height <= 0 {
		return 0
	}
	return f.RowBytes(width) * height
}

// ValidateBuffer checks dimensions and buffer sizing before any pixel
// is touched. rowStride of 0 means tightly packed. The decode loop is
// fault-free for any buffer that passes this check.
func (f Format) ValidateBuffer(data []byte, width, height, rowStride int) error {
	if width <= 0 || height <= 0 {
		return fmt.Errorf("%w: %dx%d", ErrInvalidDimensions, width, height)
	}
	min := f.RowBytes(width)
	if rowStride == 0 {
		rowStride = min
	}
	if rowStride < min {
		return fmt.Errorf("%w: stride %d, need %d", ErrInvalidStride, rowStride, min)
	}
	need := rowStride * height
	if len(data) < need {
		return fmt.Errorf("%w: have %d bytes, need %d", ErrBufferTooSmall, len(data), need)
	}
	return nil
}
