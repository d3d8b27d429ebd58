package main

import (
	"math"
	"sort"

	"github.com/rs/zerolog/log"
)

// Tracing pipeline: edge map -> one connected stroke. The figure is walked as
// a breadth-first tree so the ball never lifts; branches are retraced on the
// way back, shortest branches first, so the stroke finishes at the tip of the
// longest branch instead of deep inside the figure.

type node struct {
	pt           cell
	children     []*node
	parent       *node
	depth        int
	farthestLeaf int
}

// GenerateTrace converts the grid into an edge-tracing track: detect edges,
// join the disjoint pieces into one connected figure, then walk it as a
// single stroke. A grid with no detectable edges yields a track holding only
// the table center.
func GenerateTrace(g *Grid, ecfg EdgeConfig, cfg TrackConfig) (Track, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	edges, err := DetectEdges(g, ecfg)
	if err != nil {
		return nil, err
	}

	_, comps := labelComponents(edges)
	joinComponents(edges, comps)

	log.Debug().
		Int("edge_pixels", edges.Count()).
		Int("components", len(comps)).
		Msg("edge map ready")

	start, ok := findStart(edges)
	if !ok {
		log.Warn().Msg("no edges detected, emitting center only")

		return Track{{X: 0, Y: 0}}, nil
	}

	root, maxDepth := bfsTree(edges, start)
	sortTree(postorder(root))

	cells := treeToTrack(root, maxDepth)

	// Center the figure and scale it so the image diagonal fits just
	// inside the rim.
	diag := math.Hypot(float64(edges.W-1), float64(edges.H-1))
	scale := 1.0
	if diag > 0 {
		scale = 2.0 * cfg.Radius * 0.98 / diag
	}

	track := make(Track, 0, len(cells))
	for _, c := range cells {
		track = append(track, Coordinate{
			X: (float64(c.X) - float64(edges.W-1)/2.0) * scale,
			Y: (float64(c.Y) - float64(edges.H-1)/2.0) * scale,
		})
	}

	return finishTrack(track, cfg), nil
}

// findStart scans the bitmap in a clockwise spiral from the border inward and
// returns the first set pixel. The outermost ring is skipped; DetectEdges
// never marks it. This puts the stroke's start as close to the rim as
// possible, which is where the ball usually rests.
func findStart(b *Bitmap) (cell, bool) {
	left, top := 1, 1
	bottom, right := b.H-1, b.W-1

	for top < bottom && left < right {
		for x := left; x < right; x++ {
			if b.At(x, top) {
				return cell{X: x, Y: top}, true
			}
		}
		top++

		for y := top; y < bottom; y++ {
			if b.At(right-1, y) {
				return cell{X: right - 1, Y: y}, true
			}
		}
		right--

		if top < bottom {
			for x := right - 1; x >= left; x-- {
				if b.At(x, bottom-1) {
					return cell{X: x, Y: bottom - 1}, true
				}
			}
			bottom--
		}

		if left < right {
			for y := bottom - 1; y >= top; y-- {
				if b.At(left, y) {
					return cell{X: left, Y: y}, true
				}
			}
			left++
		}
	}

	return cell{}, false
}

// bfsTree visits every set pixel reachable from start, breadth first over
// 8-neighbours. Breadth first keeps adjacent pixels adjacent in the tree
// instead of forcing long retraces for stragglers.
func bfsTree(b *Bitmap, start cell) (*node, int) {
	visited := make([]bool, b.W*b.H)
	visited[start.Y*b.W+start.X] = true

	root := &node{pt: start}
	maxDepth := 0

	queue := []*node{root}

	for len(queue) > 0 {
		curr := queue[0]
		queue = queue[1:]

		for i := 0; i < 8; i++ {
			x := curr.pt.X + colDelta[i]
			y := curr.pt.Y + rowDelta[i]

			if x < 0 || x >= b.W || y < 0 || y >= b.H {
				continue
			}

			if !b.At(x, y) || visited[y*b.W+x] {
				continue
			}

			visited[y*b.W+x] = true

			child := &node{
				pt:     cell{X: x, Y: y},
				parent: curr,
				depth:  curr.depth + 1,
			}

			if child.depth > maxDepth {
				maxDepth = child.depth
			}

			curr.children = append(curr.children, child)
			queue = append(queue, child)
		}
	}

	return root, maxDepth
}

func postorder(root *node) []*node {
	stack := []*node{root}
	var out []*node

	for len(stack) > 0 {
		curr := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		out = append(out, curr)
		stack = append(stack, curr.children...)
	}

	return out
}

// sortTree fills in farthestLeaf bottom-up and orders every node's children
// by it, descending. treeToTrack pops children from the back, so the deepest
// branch is always walked last.
func sortTree(stack []*node) {
	for i := len(stack) - 1; i >= 0; i-- {
		n := stack[i]

		if len(n.children) == 0 {
			n.farthestLeaf = 0
		}

		sort.SliceStable(n.children, func(a, b int) bool {
			return n.children[a].farthestLeaf > n.children[b].farthestLeaf
		})

		if n.parent == nil {
			return
		}

		if n.farthestLeaf+1 > n.parent.farthestLeaf {
			n.parent.farthestLeaf = n.farthestLeaf + 1
		}
	}
}

// treeToTrack walks the sorted tree depth first, emitting each pixel as it is
// entered. Pixels passed on the way back up to an unfinished branch are not
// re-emitted. The walk stops once every node is visited and the deepest
// branch is done.
func treeToTrack(root *node, maxDepth int) []cell {
	var track []cell

	stack := []*node{root}

	goingUp := false
	var childAbove *node

	for len(stack) > 0 {
		curr := stack[len(stack)-1]

		if curr == childAbove {
			childAbove = nil
		}

		if len(curr.children) > 1 && childAbove == nil {
			childAbove = curr.children[0]
		}

		if !(goingUp && len(curr.children) > 0) {
			track = append(track, curr.pt)
		}

		if len(curr.children) > 0 {
			last := len(curr.children) - 1
			next := curr.children[last]
			curr.children = curr.children[:last]

			stack = append(stack, next)
			goingUp = false
		} else {
			stack = stack[:len(stack)-1]
			goingUp = true

			if curr.depth == maxDepth-1 && childAbove == nil {
				break
			}
		}
	}

	return track
}
