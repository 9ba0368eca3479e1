package life

import "github.com/vovakirdan/led-arcade/internal/core"

type pattern struct {
	name  string
	cells []core.Dot // grid coordinates; nil means a random fill
}

var patterns = [...]pattern{
	{name: "random"},
	{name: "glider", cells: []core.Dot{{X: 1, Y: 2}, {X: 2, Y: 3}, {X: 0, Y: 4}, {X: 1, Y: 4}, {X: 2, Y: 4}}},
	{name: "blinker", cells: []core.Dot{{X: 3, Y: 4}, {X: 3, Y: 5}, {X: 3, Y: 6}}},
	{name: "block", cells: []core.Dot{{X: 3, Y: 4}, {X: 4, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 5}}},
	{name: "toad", cells: []core.Dot{{X: 2, Y: 4}, {X: 3, Y: 4}, {X: 4, Y: 4}, {X: 1, Y: 5}, {X: 2, Y: 5}, {X: 3, Y: 5}}},
	{name: "beacon", cells: []core.Dot{{X: 1, Y: 2}, {X: 2, Y: 2}, {X: 1, Y: 3}, {X: 4, Y: 4}, {X: 3, Y: 5}, {X: 4, Y: 5}}},
}

// PatternNames lists the starting patterns in HUD order.
func PatternNames() []string {
	names := make([]string, len(patterns))
	for i, p := range patterns {
		names[i] = p.name
	}
	return names
}

// PatternIndex returns the HUD number of a named pattern.
func PatternIndex(name string) (int, bool) {
	for i, p := range patterns {
		if p.name == name {
			return i, true
		}
	}
	return 0, false
}
