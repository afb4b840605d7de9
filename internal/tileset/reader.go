package tileset

import (
	"bufio"
	"io"
	"strconv"
	"strings"

	"github.com/kpitt/polyomino/internal/geometry"
)

// maxTilePoints is the retained-offsets cap per tile line (§3: tile points
// have length <= 254, the anchor at (0,0) is implicit and not counted).
const maxTilePoints = 254

// Load reads a tile file: each non-empty line is "NAME X1 Y1 X2 Y2 ...",
// where NAME is the first byte of the line's first whitespace-separated
// token and the remaining tokens are signed integer offsets taken in pairs. Lines with the same NAME
// share a kind index, assigned on first occurrence, which is how rotations
// of one piece are grouped.
//
// Malformed lines are silently skipped rather than treated as an error: a
// line with no tokens at all contributes nothing. An odd trailing token or
// an unparsable token is simply dropped, not treated as a parse failure, as
// long as a NAME was present.
func Load(r io.Reader) (*Tiles, error) {
	used := make(map[byte]int)
	var names []byte
	var variants []geometry.Tile

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		tile, ok := parseLine(scanner.Text(), used, &names)
		if !ok {
			continue
		}
		variants = append(variants, tile)
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	return &Tiles{Variants: variants, Names: names}, nil
}

func parseLine(line string, used map[byte]int, names *[]byte) (geometry.Tile, bool) {
	fields := strings.Fields(line)
	if len(fields) == 0 {
		return geometry.Tile{}, false
	}

	name := fields[0][0]
	kind, ok := used[name]
	if !ok {
		kind = len(*names)
		used[name] = kind
		*names = append(*names, name)
	}

	var nums []int16
	for _, f := range fields[1:] {
		n, err := strconv.ParseInt(f, 10, 16)
		if err != nil {
			continue
		}
		nums = append(nums, int16(n))
	}

	pairs := len(nums) / 2
	if pairs > maxTilePoints {
		pairs = maxTilePoints
	}
	var points []geometry.Point
	if pairs > 0 {
		points = make([]geometry.Point, pairs)
		for i := range pairs {
			points[i] = geometry.Point{X: nums[2*i], Y: nums[2*i+1]}
		}
	}

	return geometry.Tile{Kind: kind, Points: points}, true
}
