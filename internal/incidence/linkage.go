// Package incidence implements the exact-cover incidence structure at the
// heart of the solver: a four-way doubly-linked node mesh realized as a
// contiguous index arena (not heap-allocated pointer nodes), plus the
// Dancing-Links-style cover/uncover mechanics and the depth-limited
// fork-join search that walks it.
package incidence

import (
	"sync/atomic"

	"github.com/kpitt/polyomino/internal/image"
	"github.com/kpitt/polyomino/internal/tileset"
)

// node is one entry in the incidence arena. For a column-header node, extra
// holds the current count of body nodes in that column. For a body node,
// extra holds the index of that node's column header -- which also happens
// to identify whether the node's column is a cell column (extra < P) or a
// kind column (extra >= P), a property the search and renderer both rely on.
type node struct {
	left, right, up, down, extra uint32
}

// Linkage is the incidence structure built once from an image and tile set,
// then mutated in place by the search. Column headers occupy indices
// 0..width-1 of data (cell columns first, then kind columns); index width is
// the root sentinel. solution holds the row-entry node indices chosen so
// far; maxima[k] is one more than the largest tile of kind k's point count,
// used for the max-possible admissibility bound.
type Linkage struct {
	width      int
	pointcount int
	data       []node
	solution   []uint32
	maxima     []uint8
	maxPossible int
	remaining   int
	allowRepeat bool
	unused      bool
	stats       *searchStats
}

// searchStats accumulates counters across a whole Solve call, including
// every forked clone, since forks share one instance by pointer rather than
// getting their own copy.
type searchStats struct {
	nodesVisited   atomic.Int64
	forksSpawned   atomic.Int64
	solutionsFound atomic.Int64
}

// Stats is a point-in-time snapshot of a Linkage's accumulated search
// counters, suitable for logging.
type Stats struct {
	NodesVisited   int64
	ForksSpawned   int64
	SolutionsFound int64
}

// Stats returns the current search counters. Meaningful after a Solve call
// returns; reads taken mid-search (from another goroutine) are a consistent
// snapshot per field but not necessarily mutually consistent.
func (lk *Linkage) Stats() Stats {
	return Stats{
		NodesVisited:   lk.stats.nodesVisited.Load(),
		ForksSpawned:   lk.stats.forksSpawned.Load(),
		SolutionsFound: lk.stats.solutionsFound.Load(),
	}
}

// root returns the index of the sentinel header.
func (lk *Linkage) root() uint32 {
	return uint32(lk.width)
}

// Solution is an emitted placement sequence: one row-entry node index per
// tile placed, in the order the search chose them.
type Solution []uint32

// Pointcount returns P, the number of cell columns.
func (lk *Linkage) Pointcount() int {
	return lk.pointcount
}

// RowMembers returns the cell-ids and kind covered by the row that entry
// belongs to, by walking right from entry back to itself. It is used by the
// renderer (§4.7) and does not mutate the structure.
func (lk *Linkage) RowMembers(entry uint32) (cells []int, kind int) {
	kind = -1
	j := entry
	for {
		col := int(lk.data[j].extra)
		if col >= lk.pointcount {
			kind = col - lk.pointcount
		} else {
			cells = append(cells, col)
		}
		j = lk.data[j].right
		if j == entry {
			break
		}
	}
	return cells, kind
}

func newLinkage(width, pointcount int) *Linkage {
	data := make([]node, width+1, width+1+4096)
	for i := range width + 1 {
		left := i - 1
		if i == 0 {
			left = width
		}
		right := i + 1
		if i == width {
			right = 0
		}
		data[i] = node{left: uint32(left), right: uint32(right), up: uint32(i), down: uint32(i)}
	}
	return &Linkage{width: width, pointcount: pointcount, data: data, stats: &searchStats{}}
}

// Build constructs the incidence structure for image and tiles: one row per
// feasible placement of every tile variant anchored at every image cell
// (§4.1). allowRepeat controls whether kind columns carry coverage capacity
// during the search (§4.2-4.3).
func Build(img *image.Image, tiles *tileset.Tiles, allowRepeat bool) *Linkage {
	pointcount := img.NumCells()
	numKinds := tiles.NumKinds()
	width := pointcount + numKinds

	lk := newLinkage(width, pointcount)
	maxima := make([]uint8, numKinds)

	buffer := make([]int, 0, 32)
	for _, tile := range tiles.Variants {
		for anchorID, anchor := range img.Points {
			buffer = buffer[:0]
			buffer = append(buffer, anchorID)

			feasible := true
			for _, p := range tile.Points {
				x := int(anchor.X) + int(p.X)
				y := int(anchor.Y) + int(p.Y)
				id, ok := img.CellAt(x, y)
				if !ok {
					feasible = false
					break
				}
				buffer = append(buffer, id)
			}
			if !feasible {
				continue
			}

			buffer = append(buffer, pointcount+tile.Kind)
			lk.addRow(buffer)

			tilesize := len(tile.Points) + 1
			if tilesize > int(maxima[tile.Kind]) {
				maxima[tile.Kind] = uint8(tilesize)
			}
		}
	}

	lk.remaining = pointcount
	lk.maxima = maxima
	for _, m := range maxima {
		lk.maxPossible += int(m)
	}
	lk.allowRepeat = allowRepeat
	for _, m := range maxima {
		if m == 0 {
			lk.unused = true
			break
		}
	}

	return lk
}

// addRow appends one matrix row whose members are the column indices in
// row, in order, wiring each new body node into the bottom of its column and
// into a circular row with the previously-created members of this call.
func (lk *Linkage) addRow(row []int) {
	origIndex := uint32(len(lk.data))
	for ord, i := range row {
		index := uint32(len(lk.data))
		left := index - 1
		if ord == 0 {
			left = origIndex
		}
		lk.data = append(lk.data, node{
			left:  left,
			right: origIndex,
			up:    lk.data[i].up,
			down:  uint32(i),
			extra: uint32(i),
		})
		lk.returnToRow(index)
		lk.returnToCol(index)
		lk.data[i].extra++
	}
}

func (lk *Linkage) returnToRow(i uint32) {
	previous := lk.data[i].left
	next := lk.data[i].right
	lk.data[previous].right = i
	lk.data[next].left = i
}

func (lk *Linkage) returnToCol(i uint32) {
	previous := lk.data[i].up
	next := lk.data[i].down
	lk.data[previous].down = i
	lk.data[next].up = i
}

// Clone returns a deep, independent copy of the structure, for handing off
// to a forked search worker (§4.6, §5).
func (lk *Linkage) Clone() *Linkage {
	clone := &Linkage{
		width:       lk.width,
		pointcount:  lk.pointcount,
		data:        append([]node(nil), lk.data...),
		solution:    append([]uint32(nil), lk.solution...),
		maxima:      lk.maxima, // immutable after construction; safe to share
		maxPossible: lk.maxPossible,
		remaining:   lk.remaining,
		allowRepeat: lk.allowRepeat,
		unused:      lk.unused,
		stats:       lk.stats, // shared: forked clones report into one run's counters
	}
	return clone
}
