package ui

import (
	"fmt"

	"lifegrid/internal/core"
)

// StatusLine summarises a running sim for display under or over the grid.
func StatusLine(sim core.Sim, paused bool) string {
	line := sim.Name()
	if stats, ok := sim.(core.Stats); ok {
		line = fmt.Sprintf("%s  gen %d  pop %d", line, stats.Generation(), stats.Population())
	}
	if paused {
		line += "  [paused]"
	}
	return line
}
