package tileset

import (
	"fmt"
	"sort"
	"strings"
	"sync"
)

// pentominoShapes lists the 12 free pentominoes by their standard letter
// names, each as a connected set of 5 absolute grid cells in one canonical
// orientation. Builtin (and BuiltinWithSquare, used only by tests) expand
// each shape into every distinct rotation/reflection and
// re-derive kind-grouped tile lines from that, the way a producer is assumed
// to have already done per §3 before handing tiles to the solver.
var pentominoShapes = map[byte][][2]int{
	'F': {{1, 0}, {2, 0}, {0, 1}, {1, 1}, {1, 2}},
	'I': {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {0, 4}},
	'L': {{0, 0}, {0, 1}, {0, 2}, {0, 3}, {1, 3}},
	'N': {{1, 0}, {1, 1}, {0, 2}, {1, 2}, {0, 3}},
	'P': {{0, 0}, {1, 0}, {0, 1}, {1, 1}, {0, 2}},
	'T': {{0, 0}, {1, 0}, {2, 0}, {1, 1}, {1, 2}},
	'U': {{0, 0}, {2, 0}, {0, 1}, {1, 1}, {2, 1}},
	'V': {{0, 0}, {0, 1}, {0, 2}, {1, 2}, {2, 2}},
	'W': {{0, 0}, {0, 1}, {1, 1}, {1, 2}, {2, 2}},
	'X': {{1, 0}, {0, 1}, {1, 1}, {2, 1}, {1, 2}},
	'Y': {{1, 0}, {0, 1}, {1, 1}, {1, 2}, {1, 3}},
	'Z': {{0, 0}, {1, 0}, {1, 1}, {1, 2}, {2, 2}},
}

// pentominoOrder fixes the letter order the builtin tile file is generated
// in, so the resulting kind indices are stable and reproducible.
var pentominoOrder = []byte{'F', 'I', 'L', 'N', 'P', 'T', 'U', 'V', 'W', 'X', 'Y', 'Z'}

// orientations returns the up to 8 distinct rotations/reflections of shape,
// each normalized to a non-negative bounding box and sorted lexicographically
// by (x, y), with the lexicographically-first cell treated as that
// orientation's anchor.
func orientations(shape [][2]int) [][][2]int {
	transforms := []func(x, y int) (int, int){
		func(x, y int) (int, int) { return x, y },
		func(x, y int) (int, int) { return -y, x },
		func(x, y int) (int, int) { return -x, -y },
		func(x, y int) (int, int) { return y, -x },
		func(x, y int) (int, int) { return -x, y },
		func(x, y int) (int, int) { return y, x },
		func(x, y int) (int, int) { return x, -y },
		func(x, y int) (int, int) { return -y, -x },
	}

	seen := make(map[string]bool)
	var out [][][2]int
	for _, tf := range transforms {
		cells := make([][2]int, len(shape))
		for i, c := range shape {
			x, y := tf(c[0], c[1])
			cells[i] = [2]int{x, y}
		}
		normalize(cells)
		key := cellKey(cells)
		if seen[key] {
			continue
		}
		seen[key] = true
		out = append(out, cells)
	}
	return out
}

func normalize(cells [][2]int) {
	minX, minY := cells[0][0], cells[0][1]
	for _, c := range cells[1:] {
		if c[0] < minX {
			minX = c[0]
		}
		if c[1] < minY {
			minY = c[1]
		}
	}
	for i := range cells {
		cells[i][0] -= minX
		cells[i][1] -= minY
	}
	sort.Slice(cells, func(i, j int) bool {
		if cells[i][0] != cells[j][0] {
			return cells[i][0] < cells[j][0]
		}
		return cells[i][1] < cells[j][1]
	})
}

func cellKey(cells [][2]int) string {
	var b strings.Builder
	for _, c := range cells {
		fmt.Fprintf(&b, "%d,%d;", c[0], c[1])
	}
	return b.String()
}

// tileFileLine renders one shape orientation as a "NAME X Y X Y ..." tile
// file line, using its first (anchor) cell as the implicit (0,0) and the
// rest as offsets from it.
func tileFileLine(name byte, cells [][2]int) string {
	anchor := cells[0]
	var b strings.Builder
	b.WriteByte(name)
	for _, c := range cells[1:] {
		fmt.Fprintf(&b, " %d %d", c[0]-anchor[0], c[1]-anchor[1])
	}
	return b.String()
}

func buildTileFile(letters []byte, extra ...string) string {
	var lines []string
	for _, name := range letters {
		for _, o := range orientations(pentominoShapes[name]) {
			lines = append(lines, tileFileLine(name, o))
		}
	}
	lines = append(lines, extra...)
	return strings.Join(lines, "\n")
}

var builtinOnce = sync.OnceValues(func() (*Tiles, error) {
	return Load(strings.NewReader(buildTileFile(pentominoOrder)))
})

// Builtin returns the standard 12-piece pentomino set (every rotation and
// reflection of each piece as a distinct variant sharing one kind per
// letter), used as the CLI's default tile file so it never needs an external
// file on disk.
func Builtin() (*Tiles, error) {
	return builtinOnce()
}

var builtinWithSquareOnce = sync.OnceValues(func() (*Tiles, error) {
	// The extra "square" kind is a single 2x2 tetromino. Together with the
	// 12 pentominoes (60 cells) it covers exactly 64 cells, enough to tile
	// an unmodified 8x8 board with no holes -- the classic "pentominoes
	// plus a square" puzzle the original Rust reference's
	// "tiles/pentomino_square" file name refers to.
	square := "S 1 0 0 1 1 1"
	return Load(strings.NewReader(buildTileFile(pentominoOrder, square)))
})

// BuiltinWithSquare returns the 12 pentominoes plus one extra 2x2 square
// kind, sized to exactly tile an unmodified 8x8 board. It exists for the
// find-one end-to-end scenario in §8 and is not exposed as a CLI default.
func BuiltinWithSquare() (*Tiles, error) {
	return builtinWithSquareOnce()
}
