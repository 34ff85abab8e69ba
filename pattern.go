package rawimg

// Pattern is a 2x2 color filter array table. The value at [y&1][x&1]
// is the channel captured by the sensor at pixel (x, y); the table
// tiles the whole sensor with period 2 in both axes.
//
// A pattern is a plain value, not a type per layout: supporting a new
// CFA arrangement means declaring a new table and registering it with
// a Dispatch, never touching the decode algorithm.
type Pattern [2][2]ColorComponent

// Standard Bayer layouts, named by their top-left 2x2 tile read
// left-to-right, top-to-bottom.
var (
	GBRG = Pattern{{Green, Blue}, {Red, Green}}
	RGGB = Pattern{{Red, Green}, {Green, Blue}}
	BGGR = Pattern{{Blue, Green}, {Green, Red}}
	GRBG = Pattern{{Green, Red}, {Blue, Green}}
)

// ColorAt returns the channel captured at pixel (x, y).
//
// Negative coordinates are valid and follow the same periodicity;
// Go's bitwise AND on two's-complement integers keeps the parity
// correct, which the demosaic kernels rely on near image borders.
func (p Pattern) ColorAt(x, y int) ColorComponent {
	return p[y&1][x&1]
}

// Validate checks the standard Bayer balance constraint: the 2x2 tile
// must contain exactly two Green, one Red and one Blue entry. Returns
// ErrUnbalancedPattern otherwise.
func (p Pattern) Validate() error {
	var counts [componentCount]int
	for y := 0; y < 2; y++ {
		for x := 0; x < 2; x++ {
			c := p[y][x]
			if !c.IsValid() {
				return ErrUnbalancedPattern
			}
			counts[c]++
		}
	}
	if counts[Green] != 2 || counts[Red] != 1 || counts[Blue] != 1 {
		return ErrUnbalancedPattern
	}
	return nil
}
