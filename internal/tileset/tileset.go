// Package tileset loads and holds the ordered sequence of tile variants a
// solve run places onto an image, along with the kind registry (the mapping
// from a tile's kind index back to its printable name character).
package tileset

import "github.com/kpitt/polyomino/internal/geometry"

// Tiles is an ordered sequence of tile variants plus the parallel kind
// registry. Distinct variants (e.g. rotations of one piece) may share a
// kind; Names[k] is the printable character for kind k.
type Tiles struct {
	Variants []geometry.Tile
	Names    []byte
}

// NumKinds returns the number of distinct kinds registered, regardless of
// how many variants (rotations) each one has.
func (t *Tiles) NumKinds() int {
	return len(t.Names)
}
