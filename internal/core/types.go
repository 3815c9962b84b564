package core

// Size describes the dimensions of a simulation grid.
type Size struct {
	W int
	H int
}

// Sim is what the viewers need from a cellular automaton.
type Sim interface {
	Name() string
	Size() Size
	Reset(seed int64)
	Step()
	Cells() []uint8
}

// Restarter is implemented by sims that can return to their initial state.
type Restarter interface {
	Restart()
}

// Stats is implemented by sims that track generations and population.
type Stats interface {
	Generation() int
	Population() int
}
