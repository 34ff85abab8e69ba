// Package rawimg decodes raw Bayer sensor image data into displayable
// RGBA bitmaps.
//
// # Overview
//
// rawimg interprets an arbitrary byte buffer according to a declared
// pixel format (color filter array layout, bit depth, plane geometry)
// and produces an 8-bit-per-channel RGBA pixmap. It is the rendering
// core of a raw sensor viewer: the surrounding application supplies
// the bytes and consumes the bitmap; everything in between lives here.
//
// # Quick Start
//
//	import "github.com/gopixel/rawimg"
//
//	// Decode a 16-bit GBRG buffer using the built-in catalog.
//	pm, err := rawimg.Decode(ctx, data, "GBRG_16", 1920, 1080)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	pm.SavePNG("frame.png")
//
// # Architecture
//
// The library is organized into:
//   - Format catalog: named, immutable pixel-format descriptors
//   - Pattern tables: data-driven 2x2 CFA layouts (GBRG, RGGB, BGGR, GRBG)
//   - Dispatch: format name -> decoder configuration lookup
//   - Decoder: validation, sample normalization, bilinear demosaic
//   - Internal: parallel (row-band worker pool)
//
// New CFA layouts are added by registering a pattern table; the decode
// algorithm itself never changes.
//
// # Concurrency
//
// Decoding is stateless and reentrant. Independent buffers may be
// decoded concurrently, and a single decode splits its rows across a
// worker pool. Cancellation is cooperative via context.Context,
// checked between row bands.
package rawimg

// Version information
const (
	// Version is the current version of the library
	Version = "0.2.0"

	// VersionMajor is the major version
	VersionMajor = 0

	// VersionMinor is the minor version
	VersionMinor = 2

	// VersionPatch is the patch version
	VersionPatch = 0
)
