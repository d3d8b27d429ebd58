package main

import "math"

// cell is a bitmap pixel coordinate (col, row).
type cell struct {
	X, Y int
}

// 8-neighbour offsets, top-left to bottom-right.
var (
	rowDelta = []int{-1, -1, -1, 0, 0, 1, 1, 1}
	colDelta = []int{-1, 0, 1, -1, 1, -1, 0, 1}
)

// labelComponents numbers every set pixel with its 8-connected component,
// two-pass with union-find for the label equivalences. Returns the per-pixel
// labels (0 = background) and the pixel lists per component.
func labelComponents(b *Bitmap) ([]int, [][]cell) {
	labels := make([]int, b.W*b.H)
	uf := newUnionFind()

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			if !b.At(x, y) {
				continue
			}

			// Only the four already-visited neighbours matter on the
			// first pass.
			for _, d := range [][2]int{{-1, -1}, {0, -1}, {1, -1}, {-1, 0}} {
				nx, ny := x+d[0], y+d[1]
				if nx < 0 || nx >= b.W || ny < 0 {
					continue
				}

				n := labels[ny*b.W+nx]
				if n == 0 {
					continue
				}

				if labels[y*b.W+x] == 0 {
					labels[y*b.W+x] = n
				} else if n != labels[y*b.W+x] {
					uf.union(n, labels[y*b.W+x])
				}
			}

			if labels[y*b.W+x] == 0 {
				labels[y*b.W+x] = uf.makeSet()
			}
		}
	}

	// Second pass: collapse equivalences and renumber densely.
	dense := map[int]int{}
	var comps [][]cell

	for y := 0; y < b.H; y++ {
		for x := 0; x < b.W; x++ {
			l := labels[y*b.W+x]
			if l == 0 {
				continue
			}

			root := uf.find(l)
			id, ok := dense[root]
			if !ok {
				id = len(comps)
				dense[root] = id
				comps = append(comps, nil)
			}

			labels[y*b.W+x] = id + 1
			comps[id] = append(comps[id], cell{X: x, Y: y})
		}
	}

	return labels, comps
}

type unionFind struct {
	parent []int
}

func newUnionFind() *unionFind {
	return &unionFind{parent: []int{0}} // label 0 is background
}

func (u *unionFind) makeSet() int {
	u.parent = append(u.parent, len(u.parent))

	return len(u.parent) - 1
}

func (u *unionFind) find(x int) int {
	for u.parent[x] != x {
		u.parent[x] = u.parent[u.parent[x]]
		x = u.parent[x]
	}

	return x
}

func (u *unionFind) union(a, b int) {
	ra, rb := u.find(a), u.find(b)
	if ra != rb {
		u.parent[rb] = ra
	}
}

type link struct {
	from, to cell
	d        float64
}

// joinComponents draws straight pixel lines between disjoint components so
// the figure becomes a single connected stroke. Links are chosen as the
// closest pixel pair between each component pair, then reduced to a minimum
// spanning tree (Prim) before drawing.
func joinComponents(b *Bitmap, comps [][]cell) {
	n := len(comps)
	if n < 2 {
		return
	}

	adj := make([][]link, n)
	for i := range adj {
		adj[i] = make([]link, n)
	}

	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			l := closestPair(comps[i], comps[j])
			adj[i][j] = l
			adj[j][i] = link{from: l.to, to: l.from, d: l.d}
		}
	}

	visited := make([]bool, n)
	visited[0] = true

	for edges := 0; edges < n-1; edges++ {
		best := link{d: math.Inf(1)}
		bestTo := -1

		for i := 0; i < n; i++ {
			if !visited[i] {
				continue
			}

			for j := 0; j < n; j++ {
				if visited[j] {
					continue
				}

				if adj[i][j].d < best.d {
					best = adj[i][j]
					bestTo = j
				}
			}
		}

		drawLine(b, best.from, best.to)
		visited[bestTo] = true
	}
}

func closestPair(a, b []cell) link {
	best := link{d: math.Inf(1)}

	for _, ca := range a {
		for _, cb := range b {
			dx := float64(cb.X - ca.X)
			dy := float64(cb.Y - ca.Y)

			d := math.Hypot(dx, dy)
			if d < best.d {
				best = link{from: ca, to: cb, d: d}
			}
		}
	}

	return best
}

// drawLine sets the pixels of the segment from a to b, Bresenham.
func drawLine(b *Bitmap, p1, p2 cell) {
	x1, y1 := p1.X, p1.Y
	x2, y2 := p2.X, p2.Y

	steep := abs(y2-y1) > abs(x2-x1)
	if steep {
		x1, y1 = y1, x1
		x2, y2 = y2, x2
	}

	if x1 > x2 {
		x1, x2 = x2, x1
		y1, y2 = y2, y1
	}

	dx := x2 - x1
	dy := y2 - y1

	errAcc := dx / 2
	ystep := 1
	if y1 >= y2 {
		ystep = -1
	}

	y := y1
	for x := x1; x <= x2; x++ {
		if steep {
			b.Set(y, x)
		} else {
			b.Set(x, y)
		}

		errAcc -= abs(dy)
		if errAcc < 0 {
			y += ystep
			errAcc += dx
		}
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}

	return v
}
