package rawimg

import (
	"errors"
	"testing"
)

func TestCatalogRegisterResolve(t *testing.T) {
	c, err := NewCatalog(testFormat16())
	if err != nil {
		t.Fatalf("NewCatalog() error = %v", err)
	}

	f, err := c.Resolve("TEST_16")
	if err != nil {
		t.Fatalf("Resolve() error = %v", err)
	}
	if !f.Is16Bit || f.Name != "TEST_16" {
		t.Errorf("Resolve() = %+v, want TEST_16 16-bit", f)
	}

	if _, err := c.Resolve("NOPE"); !errors.Is(err, ErrFormatUnsupported) {
		t.Errorf("Resolve(unknown) = %v, want ErrFormatUnsupported", err)
	}
}

func TestCatalogDuplicate(t *testing.T) {
	if _, err := NewCatalog(testFormat16(), testFormat16()); !errors.Is(err, ErrDuplicateFormat) {
		t.Errorf("NewCatalog(dup) = %v, want ErrDuplicateFormat", err)
	}
}

func TestCatalogRejectsInvalidFormat(t *testing.T) {
	bad := Format{Category: CategoryBayer, Name: "BAD"}
	if _, err := NewCatalog(bad); !errors.Is(err, ErrInvalidPlane) {
		t.Errorf("NewCatalog(bad) = %v, want ErrInvalidPlane", err)
	}
}

func TestDefaultCatalog(t *testing.T) {
	c := DefaultCatalog()
	if c.Len() != 12 {
		t.Errorf("Len() = %d, want 12", c.Len())
	}

	for _, name := range []string{
		"GBRG_8", "GBRG_12", "GBRG_16",
		"RGGB_8", "RGGB_12", "RGGB_16",
		"BGGR_8", "BGGR_12", "BGGR_16",
		"GRBG_8", "GRBG_12", "GRBG_16",
	} {
		f, err := c.Resolve(name)
		if err != nil {
			t.Errorf("Resolve(%q) error = %v", name, err)
			continue
		}
		if err := f.Validate(); err != nil {
			t.Errorf("format %q invalid: %v", name, err)
		}
		if _, err := DefaultDispatch().Lookup(f); err != nil {
			t.Errorf("Lookup(%q) error = %v", name, err)
		}
	}
}

func TestDefaultCatalogNamesSorted(t *testing.T) {
	names := DefaultCatalog().Names()
	if len(names) != 12 {
		t.Fatalf("len(Names()) = %d, want 12", len(names))
	}
	for i := 1; i < len(names); i++ {
		if names[i-1] >= names[i] {
			t.Errorf("Names() not sorted: %q before %q", names[i-1], names[i])
		}
	}
}
