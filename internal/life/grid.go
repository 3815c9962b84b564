package life

// Board dimensions. Every Grid is exactly Rows by Cols.
const (
	Rows = 64
	Cols = 64
)

// Grid holds the alive/dead state of every cell, indexed [row][col].
type Grid [Rows][Cols]bool

// Wrap maps any coordinate pair onto the torus, so -1 becomes 63 and 64
// becomes 0.
func Wrap(row, col int) (int, int) {
	row = (row%Rows + Rows) % Rows
	col = (col%Cols + Cols) % Cols
	return row, col
}

// Alive reports whether the cell at the wrapped coordinate is alive.
func (g *Grid) Alive(row, col int) bool {
	r, c := Wrap(row, col)
	return g[r][c]
}

// Set updates the cell at the wrapped coordinate.
func (g *Grid) Set(row, col int, alive bool) {
	r, c := Wrap(row, col)
	g[r][c] = alive
}

// Population counts the live cells.
func (g *Grid) Population() int {
	n := 0
	for r := range g {
		for _, alive := range g[r] {
			if alive {
				n++
			}
		}
	}
	return n
}
