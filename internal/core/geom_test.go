package core

import "testing"

func TestRectIntersects(t *testing.T) {
	tests := []struct {
		name     string
		a, b     Rect
		expected bool
	}{
		{
			name:     "overlapping tanks",
			a:        NewRect(0, 6, 2, 2),
			b:        NewRect(1, 7, 2, 2),
			expected: true,
		},
		{
			name:     "side by side",
			a:        NewRect(0, 6, 2, 2),
			b:        NewRect(2, 6, 2, 2),
			expected: false,
		},
		{
			name:     "stacked",
			a:        NewRect(3, 10, 2, 2),
			b:        NewRect(3, 12, 2, 2),
			expected: false,
		},
		{
			name:     "single cell overlap",
			a:        NewRect(0, 0, 2, 2),
			b:        NewRect(1, 1, 1, 1),
			expected: true,
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := tc.a.Intersects(tc.b)
			if result != tc.expected {
				t.Errorf("Intersects() = %v, expected %v", result, tc.expected)
			}
			resultReverse := tc.b.Intersects(tc.a)
			if resultReverse != tc.expected {
				t.Errorf("Intersects() (reversed) = %v, expected %v", resultReverse, tc.expected)
			}
		})
	}
}

func TestRectContains(t *testing.T) {
	r := PlayArea

	tests := []struct {
		name     string
		x, y     int
		expected bool
	}{
		{"top-left of play area", 0, HUDHeight, true},
		{"bottom-right corner", Width - 1, Height - 1, true},
		{"inside HUD", 3, 2, false},
		{"right edge (exclusive)", Width, 10, false},
		{"below bottom", 3, Height, false},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			result := r.Contains(tc.x, tc.y)
			if result != tc.expected {
				t.Errorf("Contains(%d, %d) = %v, expected %v", tc.x, tc.y, result, tc.expected)
			}
		})
	}
}

func TestDotWrap(t *testing.T) {
	tests := []struct {
		in, expected Dot
	}{
		{Dot{X: -1, Y: 10}, Dot{X: 7, Y: 10}},
		{Dot{X: 8, Y: 10}, Dot{X: 0, Y: 10}},
		{Dot{X: 3, Y: HUDHeight - 1}, Dot{X: 3, Y: Height - 1}},
		{Dot{X: 3, Y: Height}, Dot{X: 3, Y: HUDHeight}},
		{Dot{X: 4, Y: 20}, Dot{X: 4, Y: 20}},
	}

	for _, tc := range tests {
		result := tc.in.Wrap(PlayArea)
		if result != tc.expected {
			t.Errorf("Wrap(%v) = %v, expected %v", tc.in, result, tc.expected)
		}
	}
}

func TestDotDirections(t *testing.T) {
	if !DirUp.IsOpposite(DirDown) {
		t.Error("up should be opposite to down")
	}
	if DirUp.IsOpposite(DirLeft) {
		t.Error("up should not be opposite to left")
	}
	if DirNone.IsOpposite(DirNone) {
		t.Error("zero direction has no opposite")
	}

	d := DirUp
	for i, want := range []Dot{DirRight, DirDown, DirLeft, DirUp} {
		d = d.RotateCW()
		if d != want {
			t.Errorf("rotation %d = %v, expected %v", i+1, d, want)
		}
	}
}

func TestClamp(t *testing.T) {
	tests := []struct {
		val, min, max, expected int
	}{
		{5, 0, 10, 5},
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{0, 0, 10, 0},
		{10, 0, 10, 10},
	}

	for _, tc := range tests {
		result := Clamp(tc.val, tc.min, tc.max)
		if result != tc.expected {
			t.Errorf("Clamp(%d, %d, %d) = %d, expected %d", tc.val, tc.min, tc.max, result, tc.expected)
		}
	}
}

func TestAbsSignMod(t *testing.T) {
	if Abs(-5) != 5 || Abs(5) != 5 || Abs(0) != 0 {
		t.Error("Abs returned a wrong value")
	}
	if Sign(-3) != -1 || Sign(0) != 0 || Sign(9) != 1 {
		t.Error("Sign returned a wrong value")
	}
	if Mod(-1, 8) != 7 || Mod(9, 8) != 1 || Mod(3, 0) != 0 {
		t.Error("Mod returned a wrong value")
	}
}
