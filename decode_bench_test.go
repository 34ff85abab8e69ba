package rawimg

import (
	"context"
	"math/rand"
	"testing"
)

// benchBuffer builds a 1080p 16-bit frame of deterministic noise.
func benchBuffer(b *testing.B, w, h int) []byte {
	b.Helper()
	buf := make([]byte, w*h*2)
	rng := rand.New(rand.NewSource(42))
	rng.Read(buf)
	return buf
}

func BenchmarkDecodeSerial(b *testing.B) {
	const w, h = 1920, 1080
	buf := benchBuffer(b, w, h)
	ctx := context.Background()

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(ctx, buf, "GBRG_12", w, h, WithWorkers(1)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeParallel(b *testing.B) {
	const w, h = 1920, 1080
	buf := benchBuffer(b, w, h)
	ctx := context.Background()

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(ctx, buf, "GBRG_12", w, h); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecodeParallel_2Workers(b *testing.B) {
	const w, h = 1920, 1080
	buf := benchBuffer(b, w, h)
	ctx := context.Background()

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(ctx, buf, "GBRG_12", w, h, WithWorkers(2)); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkDecode8Bit(b *testing.B) {
	const w, h = 1920, 1080
	buf := benchBuffer(b, w, h)[: w*h : w*h]
	ctx := context.Background()

	b.SetBytes(int64(len(buf)))
	b.ReportAllocs()
	b.ResetTimer()

	for i := 0; i < b.N; i++ {
		if _, err := Decode(ctx, buf, "RGGB_8", w, h); err != nil {
			b.Fatal(err)
		}
	}
}
