package rawimg

// ColorComponent identifies which color channel a raw sensor sample
// carries. A Bayer sensor captures exactly one component per pixel
// site; the remaining two are reconstructed by the decoder.
type ColorComponent uint8

const (
	// Red is the red channel.
	Red ColorComponent = iota

	// Green is the green channel. A balanced Bayer tile carries two
	// green sites per 2x2 block.
	Green

	// Blue is the blue channel.
	Blue

	// componentCount is the number of components (for internal use).
	componentCount
)

// String returns the channel name.
func (c ColorComponent) String() string {
	switch c {
	case Red:
		return "Red"
	case Green:
		return "Green"
	case Blue:
		return "Blue"
	default:
		return "Unknown"
	}
}

// IsValid reports whether c is one of the defined components.
func (c ColorComponent) IsValid() bool {
	return c < componentCount
}
