package tanks

import "github.com/vovakirdan/led-arcade/internal/core"

// TankSize is the side of the square tank sprite.
const TankSize = 2

// MissilesPerTank is how many missiles a tank can have in flight.
const MissilesPerTank = 2

type missile struct {
	pos  core.Dot
	dir  core.Dot
	live bool
}

type tank struct {
	pos      core.Dot // top-left cell
	dir      core.Dot
	alive    bool
	steps    int // remaining forward steps of an AI move
	missiles [MissilesPerTank]missile
}

func (t *tank) rect() core.Rect {
	return core.NewRect(t.pos.X, t.pos.Y, TankSize, TankSize)
}

func rectAt(p core.Dot) core.Rect {
	return core.NewRect(p.X, p.Y, TankSize, TankSize)
}

// muzzle is the cell just in front of the tank where a new missile appears.
// The offsets rotate with the tank so the barrel keeps the same side.
func (t *tank) muzzle() core.Dot {
	switch t.dir {
	case core.DirUp:
		return core.Dot{X: t.pos.X, Y: t.pos.Y - 1}
	case core.DirRight:
		return core.Dot{X: t.pos.X + TankSize, Y: t.pos.Y}
	case core.DirDown:
		return core.Dot{X: t.pos.X + 1, Y: t.pos.Y + TankSize}
	default:
		return core.Dot{X: t.pos.X - 1, Y: t.pos.Y + 1}
	}
}

// fire launches a missile from the first free slot. It returns the slot or
// -1 when both are in flight.
func (t *tank) fire() int {
	for i := range t.missiles {
		if !t.missiles[i].live {
			t.missiles[i] = missile{pos: t.muzzle(), dir: t.dir, live: true}
			return i
		}
	}
	return -1
}

// front reports whether cell (x, y) of the sprite faces forward, for drawing
// the barrel side in a brighter colour.
func (t *tank) front(x, y int) bool {
	switch t.dir {
	case core.DirUp:
		return y == 0
	case core.DirDown:
		return y == TankSize-1
	case core.DirLeft:
		return x == 0
	default:
		return x == TankSize-1
	}
}

func (t *tank) draw(fb *core.Framebuffer, body, front core.Pixel) {
	for y := 0; y < TankSize; y++ {
		for x := 0; x < TankSize; x++ {
			c := body
			if t.front(x, y) {
				c = front
			}
			fb.Set(t.pos.X+x, t.pos.Y+y, c)
		}
	}
}
