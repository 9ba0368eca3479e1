package dispatch

import "github.com/vovakirdan/led-arcade/internal/core"

// Titles are drawn sideways: read them with the strip turned so that
// column 7 is on top.
var titles = map[core.GameKind]core.Bitmap{
	core.KindTetris: core.ParseBitmap(
		"........",
		".....#..",
		".#####..",
		".....#..",
		"........",
		"........",
		".#####..",
		".#.#.#..",
		".#.#.#..",
		"........",
		"........",
		".....#..",
		".#####..",
		".....#..",
		"........",
		"........",
		".#####..",
		"...#.#..",
		"...###..",
		"........",
		"........",
		".#####..",
		"..#.....",
		"...#....",
		".#####..",
		"........",
		"........",
		".#####..",
		".#...#..",
		".#...#..",
	),
	core.KindSnake: core.ParseBitmap(
		"........",
		".#.#.#..",
		".#.#.#..",
		"..#.#...",
		"........",
		".#####..",
		".....#..",
		"....#...",
		".....#..",
		".#####..",
		"........",
		".#####..",
		".#.#.#..",
		".#.#.#..",
		"........",
		"........",
		".#####..",
		"..#.....",
		"...#....",
		"....#...",
		".#####..",
		"......#.",
		".#####..",
		"...#....",
		"..#.#...",
		".#...#..",
		"........",
		".####...",
		"...#.#..",
		"...#.#..",
		".####...",
	),
	core.KindTanks: core.ParseBitmap(
		"........",
		"........",
		"........",
		"........",
		".....#..",
		".#####..",
		".....#..",
		"........",
		"........",
		".####...",
		"...#.#..",
		".####...",
		"........",
		"........",
		".#####..",
		"...#....",
		".#####..",
		"........",
		"........",
		".#####..",
		"...##...",
		".##..#..",
		"........",
		"........",
		".#####..",
		"..#.....",
		"...#....",
		".#####..",
	),
	core.KindRaces: core.ParseBitmap(
		"........",
		"........",
		"........",
		"........",
		".#####..",
		".....#..",
		".....#..",
		"........",
		"........",
		".#####..",
		".#...#..",
		".#####..",
		"........",
		"........",
		".#####..",
		"...#....",
		".#####..",
		"........",
		"........",
		".#####..",
		"...##...",
		".##..#..",
		"........",
		"........",
		".#####..",
		"..#.....",
		"...#....",
		".#####..",
	),
	core.KindLife: core.ParseBitmap(
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		"........",
		".#####..",
		".#......",
		".#......",
		"........",
		"........",
		".#####..",
		"........",
		"........",
		".#####..",
		"...#.#..",
		".....#..",
		"........",
		"........",
		".#####..",
		".#.#.#..",
		".#.#.#..",
	),
}

// TitleColor is the colour of the menu titles.
var TitleColor = core.Green

func renderMenu(fb *core.Framebuffer, kind core.GameKind) {
	fb.Clear()
	if t, ok := titles[kind]; ok {
		fb.DrawBitmap(&t, TitleColor)
	}
}
