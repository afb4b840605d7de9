// Package image holds the rectangular grid of filled cells a tiling is
// solved against, and its line-oriented loader.
package image

import "github.com/kpitt/polyomino/internal/geometry"

// emptyCell marks a grid position that is not part of the image.
const emptyCell = -1

// Image is a rectangular grid whose filled cells are numbered 0..P-1 in the
// order they were encountered while loading. Cells is indexed [x][y]; a
// value of emptyCell means that position is not filled.
type Image struct {
	Width, Height int
	Cells         [][]int
	Points        []geometry.Point
}

// NumCells returns P, the number of filled cells in the image.
func (img *Image) NumCells() int {
	return len(img.Points)
}

// CellAt returns the cell-id at (x, y) and whether that position is filled
// and in bounds.
func (img *Image) CellAt(x, y int) (int, bool) {
	if x < 0 || y < 0 || x >= img.Height || y >= img.Width {
		return 0, false
	}
	id := img.Cells[x][y]
	if id == emptyCell {
		return 0, false
	}
	return id, true
}
