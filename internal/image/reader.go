package image

import (
	"bufio"
	"io"

	"github.com/kpitt/polyomino/internal/geometry"
)

// Load reads lines until the first empty line (or EOF); each line's byte
// equal to fill marks a filled cell. Line index becomes the x coordinate,
// column index within the line becomes the y coordinate (§6). Width is the
// longest line seen; lines need not be padded, and missing positions are
// empty. Cell-ids are assigned in the order cells are encountered, which is
// (x, y) order since lines are read top to bottom.
func Load(r io.Reader, fill byte) (*Image, error) {
	var rows [][]byte
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			break
		}
		rows = append(rows, []byte(line))
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}

	width := 0
	for _, row := range rows {
		if len(row) > width {
			width = len(row)
		}
	}

	img := &Image{Width: width, Height: len(rows)}
	img.Cells = make([][]int, img.Height)
	for x, row := range rows {
		img.Cells[x] = make([]int, width)
		for y := range width {
			img.Cells[x][y] = emptyCell
		}
		for y, ch := range row {
			if ch != fill {
				continue
			}
			id := len(img.Points)
			img.Points = append(img.Points, geometry.Point{X: int16(x), Y: int16(y)})
			img.Cells[x][y] = id
		}
	}

	return img, nil
}
