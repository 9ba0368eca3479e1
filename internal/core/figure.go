package core

// Figure is a small monochrome sprite of at most 16 cells, stored row-major
// as a bit set so that pieces, digits and cars can be copied by value.
type Figure struct {
	W, H uint8
	bits uint16
}

// ParseFigure builds a figure from rows where '#' marks a set cell.
// It panics on sprites larger than 16 cells; figures are package-level data.
func ParseFigure(rows ...string) Figure {
	h := len(rows)
	w := 0
	for _, r := range rows {
		w = max(w, len(r))
	}
	if w*h > 16 {
		panic("core: figure larger than 16 cells")
	}
	f := Figure{W: uint8(w), H: uint8(h)}
	for y, r := range rows {
		for x := 0; x < len(r); x++ {
			if r[x] == '#' {
				f.bits |= 1 << uint(y*w+x)
			}
		}
	}
	return f
}

// At reports whether cell (x, y) of the figure is set.
func (f Figure) At(x, y int) bool {
	if x < 0 || y < 0 || x >= int(f.W) || y >= int(f.H) {
		return false
	}
	return f.bits&(1<<uint(y*int(f.W)+x)) != 0
}

// Rotate returns the figure turned 90° clockwise.
func (f Figure) Rotate() Figure {
	r := Figure{W: f.H, H: f.W}
	for ny := 0; ny < int(r.H); ny++ {
		for nx := 0; nx < int(r.W); nx++ {
			if f.At(ny, int(f.H)-1-nx) {
				r.bits |= 1 << uint(ny*int(r.W)+nx)
			}
		}
	}
	return r
}

// Cells returns the number of set cells.
func (f Figure) Cells() int {
	n := 0
	for b := f.bits; b != 0; b &= b - 1 {
		n++
	}
	return n
}

// Bitmap is a full-screen monochrome image, one byte per row with bit x set
// for column x.
type Bitmap [Height]uint8

// ParseBitmap builds a bitmap from up to Height rows of '#' and '.'.
func ParseBitmap(rows ...string) Bitmap {
	var b Bitmap
	for y, r := range rows {
		if y >= Height {
			break
		}
		for x := 0; x < len(r) && x < Width; x++ {
			if r[x] == '#' {
				b[y] |= 1 << uint(x)
			}
		}
	}
	return b
}

// At reports whether pixel (x, y) is set.
func (b *Bitmap) At(x, y int) bool {
	if x < 0 || y < 0 || x >= Width || y >= Height {
		return false
	}
	return b[y]&(1<<uint(x)) != 0
}
