// Package render paints a solved incidence solution into an ASCII-art grid
// of piece-name characters, colored per kind. No borders are drawn.
package render

import (
	"strings"

	"github.com/fatih/color"

	"github.com/kpitt/polyomino/internal/image"
	"github.com/kpitt/polyomino/internal/incidence"
	"github.com/kpitt/polyomino/internal/tileset"
)

// blank marks a grid position the image has no cell at.
const blank = ' '

// palette assigns a stable terminal color per kind index, cycling once the
// tile set has more kinds than colors.
var palette = []*color.Color{
	color.New(color.FgHiRed),
	color.New(color.FgHiGreen),
	color.New(color.FgHiYellow),
	color.New(color.FgHiBlue),
	color.New(color.FgHiMagenta),
	color.New(color.FgHiCyan),
	color.New(color.FgRed),
	color.New(color.FgGreen),
	color.New(color.FgYellow),
	color.New(color.FgBlue),
	color.New(color.FgMagenta),
	color.New(color.FgCyan),
}

// Render paints one solution into a height x width grid of piece-name bytes.
// Positions the image has no cell at are left as blank. It does not mutate
// lk.
func Render(lk *incidence.Linkage, sol incidence.Solution, img *image.Image, tiles *tileset.Tiles) [][]byte {
	grid := make([][]byte, img.Height)
	for x := range grid {
		grid[x] = make([]byte, img.Width)
		for y := range grid[x] {
			grid[x][y] = blank
		}
	}

	for _, entry := range sol {
		cells, kind := lk.RowMembers(entry)
		name := byte('?')
		if kind >= 0 && kind < len(tiles.Names) {
			name = tiles.Names[kind]
		}
		for _, id := range cells {
			p := img.Points[id]
			grid[p.X][p.Y] = name
		}
	}
	return grid
}

// RenderString renders the solution as newline-joined rows, coloring each
// piece's name character by kind so adjacent placements of different kinds
// stay visually distinguishable in a terminal. Placements of the same kind
// share one color.
func RenderString(lk *incidence.Linkage, sol incidence.Solution, img *image.Image, tiles *tileset.Tiles) string {
	grid := Render(lk, sol, img, tiles)

	kindOf := make(map[byte]int, len(tiles.Names))
	for k, name := range tiles.Names {
		kindOf[name] = k
	}

	var b strings.Builder
	for x, row := range grid {
		if x > 0 {
			b.WriteByte('\n')
		}
		for _, ch := range row {
			if ch == blank {
				b.WriteByte(' ')
				continue
			}
			c := palette[kindOf[ch]%len(palette)]
			b.WriteString(c.Sprintf("%c", ch))
		}
	}
	return b.String()
}
