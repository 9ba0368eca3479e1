package life

import "github.com/vovakirdan/led-arcade/internal/core"

// Grid dimensions: the whole play area below the HUD.
const (
	Cols = core.Width
	Rows = core.Height - core.HUDHeight
)

// Grid is a toroidal Life board. Row 0 is the first play-area row.
type Grid [Rows][Cols]bool

// Alive reports whether the cell at (x, y) is alive, wrapping coordinates.
func (g *Grid) Alive(x, y int) bool {
	return g[core.Mod(y, Rows)][core.Mod(x, Cols)]
}

// Set sets the cell at (x, y), wrapping coordinates.
func (g *Grid) Set(x, y int, alive bool) {
	g[core.Mod(y, Rows)][core.Mod(x, Cols)] = alive
}

// Neighbors counts the live cells around (x, y).
func (g *Grid) Neighbors(x, y int) int {
	n := 0
	for dy := -1; dy <= 1; dy++ {
		for dx := -1; dx <= 1; dx++ {
			if (dx != 0 || dy != 0) && g.Alive(x+dx, y+dy) {
				n++
			}
		}
	}
	return n
}

// Population returns the number of live cells.
func (g *Grid) Population() int {
	n := 0
	for y := range g {
		for x := range g[y] {
			if g[y][x] {
				n++
			}
		}
	}
	return n
}

// Step writes the generation following src into dst using B3/S23.
// src is only read; dst and src must not alias.
func Step(dst, src *Grid) {
	for y := 0; y < Rows; y++ {
		for x := 0; x < Cols; x++ {
			n := src.Neighbors(x, y)
			dst[y][x] = n == 3 || (n == 2 && src[y][x])
		}
	}
}
