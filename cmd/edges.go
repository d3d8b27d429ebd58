package main

import "math"

// Bitmap is a binary image, same layout as Grid.
type Bitmap struct {
	W, H int
	Pix  []bool
}

func NewBitmap(w, h int) *Bitmap {
	return &Bitmap{W: w, H: h, Pix: make([]bool, w*h)}
}

func (b *Bitmap) At(x, y int) bool {
	return b.Pix[y*b.W+x]
}

func (b *Bitmap) Set(x, y int) {
	b.Pix[y*b.W+x] = true
}

func (b *Bitmap) Count() int {
	n := 0
	for _, p := range b.Pix {
		if p {
			n++
		}
	}

	return n
}

// DetectEdges reduces the grid to a binary edge map: box blur, Sobel gradient
// magnitude, then hysteresis thresholding (pixels above High seed edges,
// pixels above Low extend them). The outermost pixel ring is always left
// clear so the tracer's rim scan has a clean border.
func DetectEdges(g *Grid, cfg EdgeConfig) (*Bitmap, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	cells := g.Cells
	if cfg.Blur > 0 {
		cells = boxBlur(g, cfg.Blur)
	}

	mag := sobel(cells, g.W, g.H)

	edges := NewBitmap(g.W, g.H)
	queue := make([]int, 0, g.W)

	for y := 1; y < g.H-1; y++ {
		for x := 1; x < g.W-1; x++ {
			if mag[y*g.W+x] >= cfg.High && !edges.At(x, y) {
				edges.Set(x, y)
				queue = append(queue, y*g.W+x)
			}
		}
	}

	// Grow weak edges out from the strong seeds.
	for len(queue) > 0 {
		idx := queue[0]
		queue = queue[1:]

		cx, cy := idx%g.W, idx/g.W

		for i := 0; i < 8; i++ {
			nx, ny := cx+colDelta[i], cy+rowDelta[i]
			if nx < 1 || nx >= g.W-1 || ny < 1 || ny >= g.H-1 {
				continue
			}

			if !edges.At(nx, ny) && mag[ny*g.W+nx] >= cfg.Low {
				edges.Set(nx, ny)
				queue = append(queue, ny*g.W+nx)
			}
		}
	}

	return edges, nil
}

func boxBlur(g *Grid, radius int) []float64 {
	out := make([]float64, len(g.Cells))

	for y := 0; y < g.H; y++ {
		for x := 0; x < g.W; x++ {
			sum := 0.0
			n := 0

			for dy := -radius; dy <= radius; dy++ {
				for dx := -radius; dx <= radius; dx++ {
					nx, ny := x+dx, y+dy
					if nx < 0 || nx >= g.W || ny < 0 || ny >= g.H {
						continue
					}

					sum += g.Cells[ny*g.W+nx]
					n++
				}
			}

			out[y*g.W+x] = sum / float64(n)
		}
	}

	return out
}

func sobel(cells []float64, w, h int) []float64 {
	mag := make([]float64, len(cells))

	for y := 1; y < h-1; y++ {
		for x := 1; x < w-1; x++ {
			at := func(dx, dy int) float64 {
				return cells[(y+dy)*w+x+dx]
			}

			gx := -at(-1, -1) - 2*at(-1, 0) - at(-1, 1) +
				at(1, -1) + 2*at(1, 0) + at(1, 1)
			gy := -at(-1, -1) - 2*at(0, -1) - at(1, -1) +
				at(-1, 1) + 2*at(0, 1) + at(1, 1)

			// Sobel kernels sum to 4 per axis on unit-range input.
			mag[y*w+x] = math.Hypot(gx, gy) / 4.0
		}
	}

	return mag
}
