package rawimg

// DecodeOption configures a single decode call.
//
// Example:
//
//	// Tightly packed input, default parallelism
//	pm, err := rawimg.Decode(ctx, data, "RGGB_12", w, h)
//
//	// Padded rows, serial decode
//	pm, err := rawimg.Decode(ctx, data, "RGGB_12", w, h,
//	    rawimg.WithRowStride(4096),
//	    rawimg.WithWorkers(1))
type DecodeOption func(*decodeOptions)

// decodeOptions holds optional per-call configuration.
type decodeOptions struct {
	rowStride int
	workers   int
	pool      *Pool
}

// defaultDecodeOptions returns the default decode options.
func defaultDecodeOptions() decodeOptions {
	return decodeOptions{
		rowStride: 0,   // tightly packed
		workers:   0,   // GOMAXPROCS
		pool:      nil, // per-call pool
	}
}

// WithRowStride sets an explicit input row stride in bytes, for
// buffers with per-row padding. The stride must be at least the
// format's minimum row size at the decode width; zero means tightly
// packed.
func WithRowStride(stride int) DecodeOption {
	return func(o *decodeOptions) {
		o.rowStride = stride
	}
}

// WithWorkers sets the number of row-band decode workers.
// Zero or negative uses GOMAXPROCS; one forces a serial decode.
// Ignored when WithPool supplies a pool.
func WithWorkers(n int) DecodeOption {
	return func(o *decodeOptions) {
		o.workers = n
	}
}

// WithPool runs the decode on a caller-owned worker pool instead of a
// fresh per-call pool, so workers survive across frames. Nil means
// per-call. A closed pool falls back to serial decoding.
func WithPool(p *Pool) DecodeOption {
	return func(o *decodeOptions) {
		o.pool = p
	}
}
