// Package parallel provides the row-band worker pool used by decode.
package parallel

import (
	"runtime"
	"sync"
	"sync/atomic"
)

// Band is a half-open range of image rows [Y0, Y1) owned by exactly
// one worker during a decode.
type Band struct {
	Y0, Y1 int
}

// Split divides height rows into bands of at most chunk rows.
// A non-positive chunk yields a single band covering every row.
func Split(height, chunk int) []Band {
	if height <= 0 {
		return nil
	}
	if chunk <= 0 || chunk >= height {
		return []Band{{0, height}}
	}
	bands := make([]Band, 0, (height+chunk-1)/chunk)
	for y := 0; y < height; y += chunk {
		y1 := y + chunk
		if y1 > height {
			y1 = height
		}
		bands = append(bands, Band{y, y1})
	}
	return bands
}

// Pool is a pool of goroutines for decoding row bands.
//
// Each worker has its own queue and steals from other workers when
// its queue runs dry, which balances load when some bands are slower
// than others (border bands do less interpolation work per pixel).
//
// Thread safety: Pool is safe for concurrent use.
type Pool struct {
	workers int
	queues  []chan func()
	done    chan struct{}
	wg      sync.WaitGroup
	running atomic.Bool
}

// NewPool creates a pool with the given number of workers.
// If workers is 0 or negative, GOMAXPROCS is used. Workers start
// immediately and wait for bands.
func NewPool(workers int) *Pool {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	queueSize := workers * 4
	if queueSize < 8 {
		queueSize = 8
	}

	p := &Pool{
		workers: workers,
		queues:  make([]chan func(), workers),
		done:    make(chan struct{}),
	}
	for i := range p.queues {
		p.queues[i] = make(chan func(), queueSize)
	}
	p.running.Store(true)

	p.wg.Add(workers)
	for i := 0; i < workers; i++ {
		go p.worker(i)
	}
	return p
}

// worker is the main loop for each worker goroutine.
func (p *Pool) worker(id int) {
	defer p.wg.Done()

	mine := p.queues[id]
	for {
		select {
		case <-p.done:
			p.drain(mine)
			return
		case job := <-mine:
			if job != nil {
				job()
			}
		default:
			if stolen := p.steal(id); stolen != nil {
				stolen()
				continue
			}
			select {
			case <-p.done:
				p.drain(mine)
				return
			case job := <-mine:
				if job != nil {
					job()
				}
			}
		}
	}
}

// drain executes all remaining jobs in a queue.
func (p *Pool) drain(queue chan func()) {
	for {
		select {
		case job := <-queue:
			if job != nil {
				job()
			}
		default:
			return
		}
	}
}

// steal takes a job from another worker's queue, or returns nil.
func (p *Pool) steal(myID int) func() {
	for i := 0; i < p.workers; i++ {
		if i == myID {
			continue
		}
		select {
		case job := <-p.queues[i]:
			return job
		default:
		}
	}
	return nil
}

// RunBands splits height rows into chunk-sized bands, runs fn on each
// band across the workers, and waits for all bands to finish. fn must
// write only to output owned by its band; reads of neighboring input
// rows are safe because input is never written.
// If the pool is closed, RunBands is a no-op.
func (p *Pool) RunBands(height, chunk int, fn func(Band)) {
	bands := Split(height, chunk)
	if len(bands) == 0 || !p.running.Load() {
		return
	}

	var wgDone sync.WaitGroup
	wgDone.Add(len(bands))

	for i, b := range bands {
		band := b
		job := func() {
			defer wgDone.Done()
			fn(band)
		}
		select {
		case p.queues[i%p.workers] <- job:
		case <-p.done:
			wgDone.Done()
		}
	}

	wgDone.Wait()
}

// Close gracefully shuts down the pool: it stops accepting bands,
// finishes queued work, and stops all workers.
// Close is safe to call multiple times.
func (p *Pool) Close() {
	if !p.running.CompareAndSwap(true, false) {
		return
	}
	close(p.done)
	p.wg.Wait()
}

// Workers returns the number of workers in the pool.
func (p *Pool) Workers() int {
	return p.workers
}

// IsRunning reports whether the pool is still accepting bands.
func (p *Pool) IsRunning() bool {
	return p.running.Load()
}
