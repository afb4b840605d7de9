// Package geometry holds the plain data types shared by tile and image
// definitions: points on a signed lattice and tiles built from them.
package geometry

// Point is an offset or absolute location on the signed 16-bit lattice that
// tile and image coordinates live on. Tile offsets may be negative relative
// to a placement's anchor.
type Point struct {
	X, Y int16
}

// Tile is a single placeable piece variant: an ordered, possibly-empty list
// of offsets from an implicit anchor at (0,0), tagged with the kind index it
// belongs to. Distinct tiles (e.g. rotations of the same piece) share a kind.
//
// Points is taken verbatim from input: duplicate offsets and an explicit
// (0,0) offset are legal and are not filtered out here.
type Tile struct {
	Kind   int
	Points []Point
}
