package rawimg

import (
	"context"
	"runtime"
	"sync/atomic"

	"github.com/gopixel/rawimg/internal/parallel"
)

// bandRows is the row granularity for parallel fan-out and
// cancellation checks.
const bandRows = 64

// Decoder turns raw Bayer buffers into RGBA pixmaps using a format
// catalog and a dispatch table. The zero value uses the built-in
// defaults.
//
// A Decoder holds no mutable state: decodes are pure functions of
// their inputs and may run concurrently on independent buffers.
type Decoder struct {
	catalog  *Catalog
	dispatch *Dispatch
}

// NewDecoder creates a decoder over an explicit catalog and dispatch
// table. Pass nil for either to use the built-in defaults.
func NewDecoder(c *Catalog, d *Dispatch) *Decoder {
	return &Decoder{catalog: c, dispatch: d}
}

func (dec *Decoder) cat() *Catalog {
	if dec.catalog != nil {
		return dec.catalog
	}
	return DefaultCatalog()
}

func (dec *Decoder) disp() *Dispatch {
	if dec.dispatch != nil {
		return dec.dispatch
	}
	return DefaultDispatch()
}

var defaultDecoder = &Decoder{}

// Decode decodes data as a width x height image in the named format
// from the default catalog. See Decoder.Decode.
func Decode(ctx context.Context, data []byte, format string, width, height int, opts ...DecodeOption) (*Pixmap, error) {
	return defaultDecoder.Decode(ctx, data, format, width, height, opts...)
}

// Decode decodes a raw Bayer buffer into a freshly allocated RGBA
// pixmap. The buffer is never written; ownership of the pixmap
// transfers to the caller.
//
// The format name is resolved through the catalog and dispatch table
// (ErrFormatUnsupported if unknown), and the buffer is validated
// eagerly (ErrInvalidDimensions, ErrInvalidStride, ErrBufferTooSmall)
// before any pixel is read. Cancellation of ctx is observed between
// row bands and yields ErrCanceled rather than a partial bitmap.
//
// Decoding the same inputs always yields byte-identical output,
// regardless of worker count.
func (dec *Decoder) Decode(ctx context.Context, data []byte, format string, width, height int, opts ...DecodeOption) (*Pixmap, error) {
	if ctx == nil {
		ctx = context.Background()
	}

	f, err := dec.cat().Resolve(format)
	if err != nil {
		return nil, err
	}
	cfg, err := dec.disp().Lookup(f)
	if err != nil {
		return nil, err
	}

	o := defaultDecodeOptions()
	for _, opt := range opts {
		opt(&o)
	}
	if err := f.ValidateBuffer(data, width, height, o.rowStride); err != nil {
		return nil, err
	}

	stride := o.rowStride
	if stride == 0 {
		stride = f.RowBytes(width)
	}
	workers := o.workers
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	plane := f.Planes[0]
	bd := &bayerDecode{
		data:       data,
		width:      width,
		height:     height,
		stride:     stride,
		byteStride: plane.ByteStride,
		is16:       cfg.Is16Bit,
		maxVal:     uint32(1)<<plane.SignificantBits - 1,
		out:        NewPixmap(width, height),
	}
	bd.buildKernels(cfg.Pattern)

	Logger().Debug("rawimg: decode",
		"format", format, "width", width, "height", height,
		"stride", stride, "workers", workers)

	if width == 1 || height == 1 {
		// Some channels have no same-channel neighbor in a single
		// row or column; those fall back to the site's own sample.
		Logger().Warn("rawimg: degenerate dimensions, missing channels fall back to the native sample",
			"format", format, "width", width, "height", height)
	}

	serial := workers == 1 || height <= bandRows
	if o.pool != nil && !o.pool.inner.IsRunning() {
		serial = true
	}
	if serial {
		for _, b := range parallel.Split(height, bandRows) {
			if ctx.Err() != nil {
				return nil, ErrCanceled
			}
			bd.decodeBand(b.Y0, b.Y1)
		}
		return bd.out, nil
	}

	var pool *parallel.Pool
	if o.pool != nil {
		pool = o.pool.inner
	} else {
		pool = parallel.NewPool(workers)
		defer pool.Close()
	}

	var canceled atomic.Bool
	pool.RunBands(height, bandRows, func(b parallel.Band) {
		if canceled.Load() {
			return
		}
		if ctx.Err() != nil {
			canceled.Store(true)
			return
		}
		bd.decodeBand(b.Y0, b.Y1)
	})
	if canceled.Load() {
		return nil, ErrCanceled
	}
	return bd.out, nil
}

// DecodeLuma decodes data and reduces it to a single 8-bit luminance
// channel, (R+G+B)/3 per pixel, row-major and tightly packed. Useful
// for focus and exposure checks where full color is not needed.
func (dec *Decoder) DecodeLuma(ctx context.Context, data []byte, format string, width, height int, opts ...DecodeOption) ([]byte, error) {
	pm, err := dec.Decode(ctx, data, format, width, height, opts...)
	if err != nil {
		return nil, err
	}
	pix := pm.Data()
	luma := make([]byte, width*height)
	for i := range luma {
		o := i * 4
		luma[i] = uint8((uint32(pix[o]) + uint32(pix[o+1]) + uint32(pix[o+2]) + 1) / 3)
	}
	return luma, nil
}

// DecodeLuma decodes with the default catalog. See Decoder.DecodeLuma.
func DecodeLuma(ctx context.Context, data []byte, format string, width, height int, opts ...DecodeOption) ([]byte, error) {
	return defaultDecoder.DecodeLuma(ctx, data, format, width, height, opts...)
}

// offset is a relative neighbor position inside the 3x3 demosaic
// window.
type offset struct {
	dx, dy int
}

// bayerDecode carries the per-call decode state: the borrowed input,
// the owned output, and the kernels derived from the pattern table.
// It is never shared across calls.
type bayerDecode struct {
	data       []byte
	width      int
	height     int
	stride     int
	byteStride int
	is16       bool
	maxVal     uint32
	out        *Pixmap

	// kernels[y&1][x&1][c] lists the 3x3 offsets whose sites carry
	// channel c. The native channel's kernel is just {0,0}.
	kernels [2][2][componentCount][]offset
}

// buildKernels derives the per-parity interpolation kernels from the
// 2x2 pattern. ColorAt handles the negative offsets' parity, so the
// kernels are valid at every pixel; border handling happens at read
// time by dropping out-of-range neighbors.
func (d *bayerDecode) buildKernels(p Pattern) {
	for py := 0; py < 2; py++ {
		for px := 0; px < 2; px++ {
			for c := Red; c < componentCount; c++ {
				if p[py][px] == c {
					d.kernels[py][px][c] = []offset{{0, 0}}
					continue
				}
				var k []offset
				for dy := -1; dy <= 1; dy++ {
					for dx := -1; dx <= 1; dx++ {
						if dx == 0 && dy == 0 {
							continue
						}
						if p.ColorAt(px+dx, py+dy) == c {
							k = append(k, offset{dx, dy})
						}
					}
				}
				d.kernels[py][px][c] = k
			}
		}
	}
}

// sample8 reads the raw sample at (x, y) and normalizes it to the
// 8-bit output range. Out-of-declared-range bits are clamped, not
// rejected, so minor format mismatches degrade gracefully.
func (d *bayerDecode) sample8(x, y int) uint32 {
	off := y*d.stride + x*d.byteStride
	var v uint32
	if d.is16 {
		// little-endian
		v = uint32(d.data[off]) | uint32(d.data[off+1])<<8
	} else {
		v = uint32(d.data[off])
	}
	if v > d.maxVal {
		v = d.maxVal
	}
	return (v*255 + d.maxVal/2) / d.maxVal
}

// decodeBand fills output rows [y0, y1). Bands only read the input
// (including rows adjacent to the band), so disjoint bands are safe
// to decode concurrently.
func (d *bayerDecode) decodeBand(y0, y1 int) {
	pix := d.out.Data()
	for y := y0; y < y1; y++ {
		row := pix[y*d.width*4 : (y+1)*d.width*4]
		for x := 0; x < d.width; x++ {
			k := &d.kernels[y&1][x&1]
			i := x * 4
			row[i+0] = d.channelAt(x, y, k[Red])
			row[i+1] = d.channelAt(x, y, k[Green])
			row[i+2] = d.channelAt(x, y, k[Blue])
			row[i+3] = 0xFF
		}
	}
}

// channelAt averages the normalized samples of the kernel's in-range
// neighbors, rounding to nearest. With a single in-range neighbor the
// result is that neighbor exactly, which is the border behavior at
// corners and edges.
func (d *bayerDecode) channelAt(x, y int, kernel []offset) uint8 {
	var sum, n uint32
	for _, o := range kernel {
		nx, ny := x+o.dx, y+o.dy
		if nx < 0 || nx >= d.width || ny < 0 || ny >= d.height {
			continue
		}
		sum += d.sample8(nx, ny)
		n++
	}
	if n == 0 {
		// 1-pixel-wide or 1-pixel-tall image with no same-channel
		// row or column in range; the site's own sample is the best
		// remaining estimate.
		return uint8(d.sample8(x, y))
	}
	return uint8((sum + n/2) / n)
}
