package rawimg

import "github.com/gopixel/rawimg/internal/parallel"

// Pool is a reusable set of decode workers. Callers decoding many
// frames (a video-rate stream, a thumbnail sweep) create one Pool and
// pass it to each call with WithPool, avoiding per-decode worker
// startup and teardown.
//
// A Pool is safe for concurrent use by multiple decodes; output is
// byte-identical whether a decode runs on a shared pool, a per-call
// pool, or serially.
type Pool struct {
	inner *parallel.Pool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used.
func NewPool(workers int) *Pool {
	return &Pool{inner: parallel.NewPool(workers)}
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.inner.Workers()
}

// Close stops the workers. Close is safe to call multiple times, but
// must not race a decode in flight on this pool; decodes started
// after Close fall back to serial execution.
func (p *Pool) Close() {
	p.inner.Close()
}
