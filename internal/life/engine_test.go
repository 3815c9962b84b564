package life

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"testing"
)

func gridOf(cells ...[2]int) Grid {
	var g Grid
	for _, rc := range cells {
		g.Set(rc[0], rc[1], true)
	}
	return g
}

func expectCells(t *testing.T, e *Engine, label string, cells ...[2]int) {
	t.Helper()
	want := map[[2]int]bool{}
	for _, rc := range cells {
		r, c := Wrap(rc[0], rc[1])
		want[[2]int{r, c}] = true
	}
	g := e.Grid()
	for r := 0; r < Rows; r++ {
		for c := 0; c < Cols; c++ {
			if g[r][c] != want[[2]int{r, c}] {
				t.Fatalf("%s: cell (%d,%d) alive=%v, expected %v", label, r, c, g[r][c], want[[2]int{r, c}])
			}
		}
	}
}

func TestEmptyGridStaysEmpty(t *testing.T) {
	e := New(Grid{})
	for i := 0; i < 3; i++ {
		e.Advance()
		if n := e.Population(); n != 0 {
			t.Fatalf("generation %d has %d live cells, expected none", e.Generation(), n)
		}
	}
}

func TestBlockIsStillLife(t *testing.T) {
	block := [][2]int{{10, 10}, {10, 11}, {11, 10}, {11, 11}}
	e := New(gridOf(block...))
	for _, rc := range block {
		if n := e.Neighbors(rc[0], rc[1]); n != 3 {
			t.Fatalf("block cell %v has %d neighbours, expected 3", rc, n)
		}
	}
	for i := 1; i <= 4; i++ {
		e.Advance()
		expectCells(t, e, "block", block...)
	}
}

func TestBlinkerOscillation(t *testing.T) {
	vertical := [][2]int{{1, 2}, {2, 2}, {3, 2}}
	horizontal := [][2]int{{2, 1}, {2, 2}, {2, 3}}

	e := New(gridOf(vertical...))
	e.Advance()
	expectCells(t, e, "after first step", horizontal...)
	e.Advance()
	expectCells(t, e, "after second step", vertical...)
}

func TestDiagonalLineDecays(t *testing.T) {
	e := New(gridOf([2]int{20, 20}, [2]int{21, 21}, [2]int{22, 22}))
	e.Advance()
	expectCells(t, e, "after first step", [2]int{21, 21})
	e.Advance()
	expectCells(t, e, "after second step")
}

func TestNeighborsWrapAroundCorners(t *testing.T) {
	e := New(gridOf([2]int{63, 63}, [2]int{63, 0}, [2]int{0, 63}))
	if n := e.Neighbors(0, 0); n != 3 {
		t.Fatalf("expected 3 wrapped neighbours at (0,0), got %d", n)
	}
	e.Advance()
	if g := e.Grid(); !g[0][0] {
		t.Fatal("expected birth at (0,0) from neighbours across both edges")
	}
}

func TestNeighborsStayInRange(t *testing.T) {
	var full Grid
	for r := range full {
		for c := range full[r] {
			full[r][c] = true
		}
	}
	e := New(full)
	for _, rc := range [][2]int{{0, 0}, {0, 63}, {63, 0}, {63, 63}, {31, 31}} {
		if n := e.Neighbors(rc[0], rc[1]); n != 8 {
			t.Fatalf("full grid cell %v has %d neighbours, expected 8", rc, n)
		}
	}

	e = New(Grid{})
	if n := e.Neighbors(0, 0); n != 0 {
		t.Fatalf("empty grid reports %d neighbours", n)
	}
}

func TestGliderCrossesEdges(t *testing.T) {
	glider := func(r0, c0 int) [][2]int {
		return [][2]int{{r0, c0 + 1}, {r0 + 1, c0 + 2}, {r0 + 2, c0}, {r0 + 2, c0 + 1}, {r0 + 2, c0 + 2}}
	}
	e := New(gridOf(glider(62, 62)...))
	for i := 0; i < 4; i++ {
		e.Advance()
	}
	expectCells(t, e, "glider after one period", glider(63, 63)...)
	if e.Generation() != 4 {
		t.Fatalf("expected generation 4, got %d", e.Generation())
	}
}

func TestBlinkerAcrossEdges(t *testing.T) {
	e := New(gridOf([2]int{63, 0}, [2]int{0, 0}, [2]int{1, 0}))
	e.Advance()
	expectCells(t, e, "wrapped blinker", [2]int{0, 63}, [2]int{0, 0}, [2]int{0, 1})
	e.Advance()
	expectCells(t, e, "wrapped blinker back", [2]int{63, 0}, [2]int{0, 0}, [2]int{1, 0})
}

func TestRestartAndReset(t *testing.T) {
	start := gridOf([2]int{5, 5}, [2]int{5, 6}, [2]int{5, 7})
	e := New(start)
	e.Advance()
	e.Restart()
	if e.Generation() != 0 {
		t.Fatalf("restart should zero the generation, got %d", e.Generation())
	}
	if e.Grid() != start {
		t.Fatal("restart did not restore the initial grid")
	}

	e.Reset(7)
	first := e.Grid()
	if first.Population() == 0 {
		t.Fatal("reset produced an empty board")
	}
	e.Advance()
	e.Reset(7)
	if e.Grid() != first {
		t.Fatal("reset with the same seed should be deterministic")
	}
	e.Advance()
	e.Restart()
	if e.Grid() != first {
		t.Fatal("restart after reset should return to the seeded board")
	}
}

func TestCellsMirrorsGrid(t *testing.T) {
	e := New(gridOf([2]int{0, 0}, [2]int{63, 1}))
	cells := e.Cells()
	if len(cells) != Rows*Cols {
		t.Fatalf("expected %d cells, got %d", Rows*Cols, len(cells))
	}
	if cells[0] != 1 || cells[63*Cols+1] != 1 {
		t.Fatal("live cells missing from Cells view")
	}
	if cells[1] != 0 {
		t.Fatal("dead cell reported alive")
	}
	if s := e.Size(); s.W != Cols || s.H != Rows {
		t.Fatalf("unexpected size %+v", s)
	}
}

func TestLoad(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "blinker.grid")
	if err := os.WriteFile(path, []byte("000\n111\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err := Load(path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	expectCells(t, e, "loaded", [2]int{1, 0}, [2]int{1, 1}, [2]int{1, 2})

	bad := filepath.Join(dir, "bad.grid")
	if err := os.WriteFile(bad, []byte("01x\n"), 0o644); err != nil {
		t.Fatal(err)
	}
	e, err = Load(bad)
	if e != nil {
		t.Fatal("failed load must not return an engine")
	}
	var perr *ParseError
	if !errors.As(err, &perr) || perr.Kind != UnexpectedChar {
		t.Fatalf("expected unexpected character error, got %v", err)
	}

	e, err = Load(filepath.Join(dir, "missing.grid"))
	if e != nil {
		t.Fatal("failed load must not return an engine")
	}
	var ioErr *IOError
	if !errors.As(err, &ioErr) {
		t.Fatalf("expected IOError, got %T", err)
	}
	if !errors.Is(err, fs.ErrNotExist) {
		t.Fatalf("IOError should unwrap to ErrNotExist, got %v", err)
	}
}

type failingReader struct{}

func (failingReader) Read([]byte) (int, error) { return 0, errors.New("boom") }

func TestLoadReaderReportsReadFailure(t *testing.T) {
	_, err := LoadReader("pipe", failingReader{})
	var ioErr *IOError
	if !errors.As(err, &ioErr) || ioErr.Path != "pipe" {
		t.Fatalf("expected IOError for pipe, got %v", err)
	}
}
