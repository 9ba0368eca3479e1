// Package core provides the shared building blocks of the arcade: the LED
// framebuffer, the pixel palette, sprites, edge-detected input and a seeded
// random source. It has no third-party dependencies and does not allocate in
// the per-tick path, so it runs unchanged on the LED target.
package core

// Dot is a cell coordinate or a unit direction on the LED grid. y grows
// downwards.
type Dot struct {
	X, Y int
}

// Unit directions.
var (
	DirNone  = Dot{}
	DirUp    = Dot{X: 0, Y: -1}
	DirDown  = Dot{X: 0, Y: 1}
	DirLeft  = Dot{X: -1, Y: 0}
	DirRight = Dot{X: 1, Y: 0}
)

// Directions lists the four unit directions clockwise from up.
var Directions = [4]Dot{DirUp, DirRight, DirDown, DirLeft}

// Add returns d+o.
func (d Dot) Add(o Dot) Dot {
	return Dot{X: d.X + o.X, Y: d.Y + o.Y}
}

// Scale returns d*k.
func (d Dot) Scale(k int) Dot {
	return Dot{X: d.X * k, Y: d.Y * k}
}

// Neg returns -d.
func (d Dot) Neg() Dot {
	return Dot{X: -d.X, Y: -d.Y}
}

// IsZero reports whether d is the zero vector.
func (d Dot) IsZero() bool {
	return d.X == 0 && d.Y == 0
}

// IsOpposite reports whether o points exactly the other way from d.
func (d Dot) IsOpposite(o Dot) bool {
	return !d.IsZero() && d == o.Neg()
}

// RotateCW turns a direction 90° clockwise.
func (d Dot) RotateCW() Dot {
	return Dot{X: -d.Y, Y: d.X}
}

// Wrap folds d into the rectangle r, torus style.
func (d Dot) Wrap(r Rect) Dot {
	return Dot{
		X: r.X + Mod(d.X-r.X, r.W),
		Y: r.Y + Mod(d.Y-r.Y, r.H),
	}
}

// Rect represents an axis-aligned box of cells.
type Rect struct {
	X, Y int // Top-left corner position
	W, H int // Width and height
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, w, h int) Rect {
	return Rect{X: x, Y: y, W: w, H: h}
}

// PlayArea is the part of the display below the HUD.
var PlayArea = NewRect(0, HUDHeight, Width, Height-HUDHeight)

// Right returns the x-coordinate of the right edge.
func (r Rect) Right() int {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge.
func (r Rect) Bottom() int {
	return r.Y + r.H
}

// Intersects returns true if this rectangle overlaps with another.
func (r Rect) Intersects(other Rect) bool {
	if r.X >= other.Right() || other.X >= r.Right() {
		return false
	}
	if r.Y >= other.Bottom() || other.Y >= r.Bottom() {
		return false
	}
	return true
}

// Contains returns true if the point (x, y) is inside this rectangle.
func (r Rect) Contains(x, y int) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// ContainsDot is Contains for a Dot.
func (r Rect) ContainsDot(d Dot) bool {
	return r.Contains(d.X, d.Y)
}

// Inside reports whether other lies entirely within r.
func (r Rect) Inside(other Rect) bool {
	return other.X >= r.X && other.Y >= r.Y && other.Right() <= r.Right() && other.Bottom() <= r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// Abs returns the absolute value of an integer.
func Abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}

// Sign returns -1, 0 or 1.
func Sign(x int) int {
	switch {
	case x < 0:
		return -1
	case x > 0:
		return 1
	}
	return 0
}

// Mod is the non-negative remainder of a/m.
func Mod(a, m int) int {
	if m <= 0 {
		return 0
	}
	r := a % m
	if r < 0 {
		r += m
	}
	return r
}
