package parallel

import (
	"sync"
	"sync/atomic"
	"testing"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name   string
		height int
		chunk  int
		want   []Band
	}{
		{"even split", 128, 64, []Band{{0, 64}, {64, 128}}},
		{"ragged tail", 100, 64, []Band{{0, 64}, {64, 100}}},
		{"single band", 10, 64, []Band{{0, 10}}},
		{"chunk of one", 3, 1, []Band{{0, 1}, {1, 2}, {2, 3}}},
		{"non-positive chunk", 10, 0, []Band{{0, 10}}},
		{"zero height", 0, 64, nil},
		{"negative height", -4, 64, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Split(tt.height, tt.chunk)
			if len(got) != len(tt.want) {
				t.Fatalf("Split() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("band %d = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestRunBandsCoversEveryRowOnce(t *testing.T) {
	const height = 1000
	p := NewPool(4)
	defer p.Close()

	var mu sync.Mutex
	seen := make([]int, height)

	p.RunBands(height, 64, func(b Band) {
		mu.Lock()
		defer mu.Unlock()
		for y := b.Y0; y < b.Y1; y++ {
			seen[y]++
		}
	})

	for y, n := range seen {
		if n != 1 {
			t.Fatalf("row %d decoded %d times, want 1", y, n)
		}
	}
}

func TestRunBandsWaitsForCompletion(t *testing.T) {
	p := NewPool(3)
	defer p.Close()

	var done atomic.Int32
	p.RunBands(512, 16, func(Band) {
		done.Add(1)
	})
	if got := done.Load(); got != 32 {
		t.Errorf("bands run = %d, want 32", got)
	}
}

func TestPoolDefaultWorkers(t *testing.T) {
	p := NewPool(0)
	defer p.Close()
	if p.Workers() < 1 {
		t.Errorf("Workers() = %d, want >= 1", p.Workers())
	}
}

func TestPoolClose(t *testing.T) {
	p := NewPool(2)
	if !p.IsRunning() {
		t.Error("IsRunning() = false before Close")
	}
	p.Close()
	p.Close() // idempotent
	if p.IsRunning() {
		t.Error("IsRunning() = true after Close")
	}

	// RunBands on a closed pool is a no-op, not a deadlock.
	ran := false
	p.RunBands(100, 10, func(Band) { ran = true })
	if ran {
		t.Error("RunBands executed work on a closed pool")
	}
}
