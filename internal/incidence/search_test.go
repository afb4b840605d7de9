package incidence

import (
	"strings"
	"testing"

	"github.com/kpitt/polyomino/internal/image"
	"github.com/kpitt/polyomino/internal/tileset"
)

func rectImage(t *testing.T, width, height int) *image.Image {
	t.Helper()
	rows := make([]string, height)
	for i := range rows {
		rows[i] = strings.Repeat("x", width)
	}
	img, err := image.Load(strings.NewReader(strings.Join(rows, "\n")), 'x')
	if err != nil {
		t.Fatalf("rectImage(%d,%d): %v", width, height, err)
	}
	return img
}

// chessImage builds the classic 8x8 board with its center 2x2 removed, the
// standard "pentomino chessboard" puzzle.
func chessImage(t *testing.T) *image.Image {
	t.Helper()
	var b strings.Builder
	for r := range 8 {
		for c := range 8 {
			hole := (r == 3 || r == 4) && (c == 3 || c == 4)
			if hole {
				b.WriteByte(' ')
			} else {
				b.WriteByte('x')
			}
		}
		if r != 7 {
			b.WriteByte('\n')
		}
	}
	img, err := image.Load(strings.NewReader(b.String()), 'x')
	if err != nil {
		t.Fatalf("chessImage: %v", err)
	}
	return img
}

func mustTiles(t *testing.T, body string) *tileset.Tiles {
	t.Helper()
	tiles, err := tileset.Load(strings.NewReader(body))
	if err != nil {
		t.Fatalf("loading tiles: %v", err)
	}
	return tiles
}

func TestPentominoChessboard(t *testing.T) {
	tiles, err := tileset.Builtin()
	if err != nil {
		t.Fatalf("tileset.Builtin: %v", err)
	}
	img := chessImage(t)

	lk := Build(img, tiles, false)
	solutions := lk.Solve(true)

	if got, want := len(solutions), 520; got != want {
		t.Errorf("chessboard solutions = %d, want %d", got, want)
	}
}

func TestPentominoRectangles(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		want          int
	}{
		{"3x20", 20, 3, 8},
		{"4x15", 15, 4, 1472},
		{"5x4", 5, 4, 200},
	}

	tiles, err := tileset.Builtin()
	if err != nil {
		t.Fatalf("tileset.Builtin: %v", err)
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			img := rectImage(t, tc.width, tc.height)
			lk := Build(img, tiles, false)
			solutions := lk.Solve(true)
			if got := len(solutions); got != tc.want {
				t.Errorf("rect %s solutions = %d, want %d", tc.name, got, tc.want)
			}
		})
	}
}

func TestTrominoSingleRow(t *testing.T) {
	tiles := mustTiles(t, "T 1 0 2 0\nT 0 1 0 2\n")
	img := rectImage(t, 3, 1)

	lk := Build(img, tiles, false)
	solutions := lk.Solve(true)

	if got, want := len(solutions), 1; got != want {
		t.Errorf("tromino/3x1 solutions = %d, want %d", got, want)
	}
}

func TestDominoAllowRepeat(t *testing.T) {
	tiles := mustTiles(t, "D 1 0\nD 0 1\n")
	img := rectImage(t, 3, 2)

	lk := Build(img, tiles, true)
	solutions := lk.Solve(true)

	if got, want := len(solutions), 3; got != want {
		t.Errorf("domino/3x2 allow-repeat solutions = %d, want %d", got, want)
	}
}

func TestFindOneStopsAtFirstSolution(t *testing.T) {
	tiles, err := tileset.BuiltinWithSquare()
	if err != nil {
		t.Fatalf("tileset.BuiltinWithSquare: %v", err)
	}
	img := rectImage(t, 8, 8)

	lk := Build(img, tiles, false)
	solutions := lk.Solve(false)

	if got, want := len(solutions), 1; got != want {
		t.Errorf("find_one 8x8 solutions = %d, want %d", got, want)
	}
}

func TestSolveRestoresInitialState(t *testing.T) {
	tiles, err := tileset.Builtin()
	if err != nil {
		t.Fatalf("tileset.Builtin: %v", err)
	}
	img := rectImage(t, 5, 4)

	lk := Build(img, tiles, false)
	before := append([]node(nil), lk.data...)
	beforeRemaining, beforeMaxPossible := lk.remaining, lk.maxPossible

	lk.Solve(true)

	if lk.remaining != beforeRemaining {
		t.Errorf("remaining after solve = %d, want %d", lk.remaining, beforeRemaining)
	}
	if lk.maxPossible != beforeMaxPossible {
		t.Errorf("maxPossible after solve = %d, want %d", lk.maxPossible, beforeMaxPossible)
	}
	if len(lk.solution) != 0 {
		t.Errorf("solution not empty after solve: %v", lk.solution)
	}
	if len(before) != len(lk.data) {
		t.Fatalf("node count changed: before %d, after %d", len(before), len(lk.data))
	}
	for i := range before {
		if before[i] != lk.data[i] {
			t.Fatalf("node %d not restored: before %+v, after %+v", i, before[i], lk.data[i])
		}
	}
}

// Repeated builds against the same fixture, each solved from scratch, should
// all agree on the solution count: Solve mutates a Linkage's columns but
// Build always starts from a clean arena, so this guards against state
// leaking across independent runs rather than against fork-depth effects.
func TestSolveStableAcrossRepeatedRuns(t *testing.T) {
	tiles := mustTiles(t, "D 1 0\nD 0 1\n")
	img := rectImage(t, 3, 2)

	for i := range 3 {
		lk := Build(img, tiles, true)
		if got := len(lk.Solve(true)); got != 3 {
			t.Errorf("run %d: solve(true) = %d solutions, want 3", i, got)
		}
	}
}

// TestSolveCountIndependentOfForkDepth forces a fully serial run (no
// fork-join at all, by entering solve at depth == maxParallelDepth so the
// findAll && depth < maxParallelDepth branch never triggers) and checks it
// finds the same solutions as the default run, which forks at depth 0 and 1.
// §8 requires the solution count be independent of MAX_PARALLEL_DEPTH,
// including the degenerate case of no parallelism at all.
func TestSolveCountIndependentOfForkDepth(t *testing.T) {
	tiles := mustTiles(t, "D 1 0\nD 0 1\n")
	img := rectImage(t, 3, 2)

	forked := Build(img, tiles, true)
	forkedSolutions := forked.Solve(true)

	serial := Build(img, tiles, true)
	serialSolutions := serial.solve(maxParallelDepth, true)

	if len(forkedSolutions) != len(serialSolutions) {
		t.Fatalf("fork-join found %d solutions, serial-only found %d",
			len(forkedSolutions), len(serialSolutions))
	}
	if len(forkedSolutions) != 3 {
		t.Fatalf("solutions = %d, want 3", len(forkedSolutions))
	}
}

// TestSolutionCountInvariantUnderKindReordering swaps the order in which two
// kinds appear in the tile file. Kind indices are assigned by first
// occurrence (internal/tileset.Load), so this changes which kind gets index
// 0, but the set of placeable shapes is identical either way and §8 requires
// the solution count to be unaffected. Two single-cell kinds on a 2-cell
// image must be placed one each (allowRepeat is false), giving exactly the 2
// solutions from swapping which kind covers which cell.
func TestSolutionCountInvariantUnderKindReordering(t *testing.T) {
	img := rectImage(t, 2, 1)

	abTiles := mustTiles(t, "A\nB\n")
	abSolutions := Build(img, abTiles, false).Solve(true)

	baTiles := mustTiles(t, "B\nA\n")
	baSolutions := Build(img, baTiles, false).Solve(true)

	if len(abSolutions) != len(baSolutions) {
		t.Fatalf("A-then-B found %d solutions, B-then-A found %d",
			len(abSolutions), len(baSolutions))
	}
	if len(abSolutions) != 2 {
		t.Fatalf("solutions = %d, want 2", len(abSolutions))
	}
}
