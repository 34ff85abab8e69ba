package rawimg

import (
	"fmt"
	"slices"
)

// Catalog is a registry of named pixel formats.
//
// Populate a catalog at startup with Register, then treat it as
// read-only. Immutability after population is what makes concurrent
// Resolve calls safe without locking; there is deliberately no way to
// remove or replace an entry.
type Catalog struct {
	formats map[string]Format
}

// NewCatalog creates a catalog holding the given formats.
// Each format is validated; a duplicate name fails with
// ErrDuplicateFormat.
func NewCatalog(formats ...Format) (*Catalog, error) {
	c := &Catalog{formats: make(map[string]Format, len(formats))}
	for _, f := range formats {
		if err := c.Register(f); err != nil {
			return nil, err
		}
	}
	return c, nil
}

// Register inserts a format. Intended for startup population only;
// callers must not register concurrently with Resolve.
func (c *Catalog) Register(f Format) error {
	if err := f.Validate(); err != nil {
		return err
	}
	if _, ok := c.formats[f.Name]; ok {
		return fmt.Errorf("%w: %q", ErrDuplicateFormat, f.Name)
	}
	c.formats[f.Name] = f
	return nil
}

// Resolve returns the format registered under name, or
// ErrFormatUnsupported.
func (c *Catalog) Resolve(name string) (Format, error) {
	f, ok := c.formats[name]
	if !ok {
		return Format{}, fmt.Errorf("%w: %q", ErrFormatUnsupported, name)
	}
	return f, nil
}

// Names returns the registered format names in sorted order.
func (c *Catalog) Names() []string {
	names := make([]string, 0, len(c.formats))
	for n := range c.formats {
		names = append(names, n)
	}
	slices.Sort(names)
	return names
}

// Len returns the number of registered formats.
func (c *Catalog) Len() int {
	return len(c.formats)
}

// defaultCatalog and defaultDispatch are built once at init and never
// mutated afterwards.
var (
	defaultCatalog  *Catalog
	defaultDispatch *Dispatch
)

// bayerLayouts pairs the standard layout names with their tables.
var bayerLayouts = []struct {
	name    string
	pattern Pattern
}{
	{"GBRG", GBRG},
	{"RGGB", RGGB},
	{"BGGR", BGGR},
	{"GRBG", GRBG},
}

func init() {
	c, err := NewCatalog(builtinFormats()...)
	if err != nil {
		panic(err)
	}
	d := NewDispatch()
	for _, l := range bayerLayouts {
		for _, depth := range []int{8, 12, 16} {
			if err := d.Register(fmt.Sprintf("%s_%d", l.name, depth), l.pattern); err != nil {
				panic(err)
			}
		}
	}
	defaultCatalog = c
	defaultDispatch = d
}

// builtinFormats returns the standard format set: each of the four
// Bayer layouts at 8 bits in one byte, and at 12 and 16 bits in a
// little-endian 16-bit container.
func builtinFormats() []Format {
	var out []Format
	for _, l := range bayerLayouts {
		out = append(out,
			Format{
				Category: CategoryBayer,
				Name:     l.name + "_8",
				Planes:   []PlaneDescriptor{{ByteStride: 1, SignificantBits: 8, ContainerBits: 8}},
			},
			Format{
				Category: CategoryBayer,
				Name:     l.name + "_12",
				Is16Bit:  true,
				Planes:   []PlaneDescriptor{{ByteStride: 2, SignificantBits: 12, ContainerBits: 16}},
			},
			Format{
				Category: CategoryBayer,
				Name:     l.name + "_16",
				Is16Bit:  true,
				Planes:   []PlaneDescriptor{{ByteStride: 2, SignificantBits: 16, ContainerBits: 16}},
			},
		)
	}
	return out
}

// DefaultCatalog returns the process-wide immutable catalog holding
// the built-in formats. Safe for unsynchronized concurrent reads.
func DefaultCatalog() *Catalog {
	return defaultCatalog
}

// DefaultDispatch returns the dispatch table matching DefaultCatalog.
func DefaultDispatch() *Dispatch {
	return defaultDispatch
}
