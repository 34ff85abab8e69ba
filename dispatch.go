package rawimg

import "fmt"

// DecoderConfig is the concrete configuration the decoder needs for
// one format: which 2x2 table assigns channels, and how wide a sample
// read is.
type DecoderConfig struct {
	Pattern Pattern
	Is16Bit bool
}

// Dispatch maps format names to pattern tables. It is the single
// place new CFA layouts are added: a new layout is a new table plus a
// Register call, with no change to the decode algorithm.
//
// Like Catalog, a Dispatch is populated at startup and read-only
// afterwards, so Lookup needs no locking.
type Dispatch struct {
	patterns map[string]Pattern
}

// NewDispatch creates an empty dispatch table.
func NewDispatch() *Dispatch {
	return &Dispatch{patterns: make(map[string]Pattern)}
}

// Register binds a pattern table to a format name. The pattern is
// checked for Bayer channel balance; a duplicate name fails with
// ErrDuplicateFormat.
func (d *Dispatch) Register(name string, p Pattern) error {
	if err := p.Validate(); err != nil {
		return fmt.Errorf("pattern for %q: %w", name, err)
	}
	if _, ok := d.patterns[name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFormat, name)
	}
	d.patterns[name] = p
	return nil
}

// Lookup resolves the decoder configuration for a format. Fails with
// ErrFormatUnsupported if no pattern is registered under the format's
// name.
func (d *Dispatch) Lookup(f Format) (DecoderConfig, error) {
	p, ok := d.patterns[f.Name]
	if !ok {
		return DecoderConfig{}, fmt.Errorf("%w: no pattern for %q", ErrFormatUnsupported, f.Name)
	}
	return DecoderConfig{Pattern: p, Is16Bit: f.Is16Bit}, nil
}
