// Command rawdump converts a raw Bayer sensor dump to PNG.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"strings"

	"github.com/gopixel/rawimg"
)

func main() {
	var (
		format  = flag.String("format", "GBRG_16", "pixel format name (see -list)")
		width   = flag.Int("width", 0, "image width in pixels")
		height  = flag.Int("height", 0, "image height in pixels")
		stride  = flag.Int("stride", 0, "input row stride in bytes (0 = tightly packed)")
		scale   = flag.Float64("scale", 1.0, "output scale factor")
		workers = flag.Int("workers", 0, "decode workers (0 = all cores)")
		output  = flag.String("output", "out.png", "output PNG file")
		list    = flag.Bool("list", false, "list supported formats and exit")
	)
	flag.Parse()

	if *list {
		fmt.Println(strings.Join(rawimg.DefaultCatalog().Names(), "\n"))
		return
	}

	if flag.NArg() != 1 {
		log.Fatal("usage: rawdump [flags] <raw-file>")
	}
	if *width <= 0 || *height <= 0 {
		log.Fatal("-width and -height are required")
	}

	data, err := os.ReadFile(flag.Arg(0))
	if err != nil {
		log.Fatalf("read input: %v", err)
	}

	pm, err := rawimg.Decode(context.Background(), data, *format, *width, *height,
		rawimg.WithRowStride(*stride),
		rawimg.WithWorkers(*workers),
	)
	if err != nil {
		log.Fatalf("decode: %v", err)
	}

	if *scale != 1.0 {
		pm = pm.Resize(int(float64(pm.Width())**scale), int(float64(pm.Height())**scale))
	}

	if err := pm.SavePNG(*output); err != nil {
		log.Fatalf("save: %v", err)
	}
	log.Printf("wrote %s (%dx%d)", *output, pm.Width(), pm.Height())
}
