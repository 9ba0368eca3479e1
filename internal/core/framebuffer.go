package core

import "strings"

// Display geometry. The LED strip is mounted in portrait: 8 pixels per row,
// 32 rows. The top HUDHeight rows hold the score display.
const (
	Width     = 8
	Height    = 32
	Size      = Width * Height
	HUDHeight = 6
)

// Frame is one complete image, row-major: index = y*Width + x.
type Frame [Size]Pixel

// At returns the pixel at (x, y), or Off outside the frame.
func (f *Frame) At(x, y int) Pixel {
	if !InBounds(x, y) {
		return Off
	}
	return f[y*Width+x]
}

// String renders the frame as Height lines of Width palette letters.
func (f *Frame) String() string {
	var sb strings.Builder
	sb.Grow(Size + Height)
	for y := 0; y < Height; y++ {
		if y > 0 {
			sb.WriteByte('\n')
		}
		for x := 0; x < Width; x++ {
			sb.WriteByte(f[y*Width+x].Char())
		}
	}
	return sb.String()
}

// ParseFrame is the inverse of Frame.String. Missing rows and columns are off.
func ParseFrame(s string) Frame {
	var f Frame
	for y, line := range strings.Split(strings.TrimSpace(s), "\n") {
		if y >= Height {
			break
		}
		line = strings.TrimSpace(line)
		for x := 0; x < len(line) && x < Width; x++ {
			f[y*Width+x] = PixelFromChar(line[x])
		}
	}
	return f
}

// InBounds reports whether (x, y) is a valid pixel coordinate.
func InBounds(x, y int) bool {
	return x >= 0 && x < Width && y >= 0 && y < Height
}

// Framebuffer is the mutable canvas games render into. Every tick starts from
// Clear and produces a complete frame.
type Framebuffer struct {
	frame   Frame
	dropped uint32
}

// Clear turns every pixel off.
func (fb *Framebuffer) Clear() {
	fb.frame = Frame{}
}

// Fill sets every pixel to c.
func (fb *Framebuffer) Fill(c Pixel) {
	for i := range fb.frame {
		fb.frame[i] = c
	}
}

// Set writes one pixel. Out-of-range writes are dropped and counted; with the
// arcadedebug build tag they panic.
func (fb *Framebuffer) Set(x, y int, c Pixel) {
	if !InBounds(x, y) {
		if strictBounds {
			panic("core: framebuffer write out of range")
		}
		fb.dropped++
		return
	}
	fb.frame[y*Width+x] = c
}

// Get returns the pixel at (x, y), or Off outside the frame.
func (fb *Framebuffer) Get(x, y int) Pixel {
	return fb.frame.At(x, y)
}

// IsSet reports whether (x, y) is lit.
func (fb *Framebuffer) IsSet(x, y int) bool {
	return !fb.frame.At(x, y).IsOff()
}

// Dropped returns the number of out-of-range writes since creation.
func (fb *Framebuffer) Dropped() uint32 {
	return fb.dropped
}

// Snapshot returns a copy of the current frame.
func (fb *Framebuffer) Snapshot() Frame {
	return fb.frame
}

// Frame exposes the backing frame for hosts that display it without copying.
func (fb *Framebuffer) Frame() *Frame {
	return &fb.frame
}

// CopyFrom replaces the contents with another framebuffer's pixels.
func (fb *Framebuffer) CopyFrom(src *Framebuffer) {
	fb.frame = src.frame
}

// HLine draws a horizontal line of length n starting at (x, y).
func (fb *Framebuffer) HLine(x, y, n int, c Pixel) {
	for i := 0; i < n; i++ {
		fb.Set(x+i, y, c)
	}
}

// VLine draws a vertical line of length n starting at (x, y).
func (fb *Framebuffer) VLine(x, y, n int, c Pixel) {
	for i := 0; i < n; i++ {
		fb.Set(x, y+i, c)
	}
}

// DrawFigure stamps the set cells of fig with its top-left at (x, y). Cells
// outside the frame are clipped; partially visible sprites are expected, so
// clipping does not count as a dropped write.
func (fb *Framebuffer) DrawFigure(x, y int, fig Figure, c Pixel) {
	for fy := 0; fy < int(fig.H); fy++ {
		for fx := 0; fx < int(fig.W); fx++ {
			if !fig.At(fx, fy) {
				continue
			}
			if InBounds(x+fx, y+fy) {
				fb.frame[(y+fy)*Width+x+fx] = c
			}
		}
	}
}

// DrawBitmap draws every set pixel of b in colour c.
func (fb *Framebuffer) DrawBitmap(b *Bitmap, c Pixel) {
	for y := 0; y < Height; y++ {
		for x := 0; x < Width; x++ {
			if b.At(x, y) {
				fb.frame[y*Width+x] = c
			}
		}
	}
}

// Collides reports whether fig placed at (x, y) would leave the frame or
// overlap a lit pixel.
func (fb *Framebuffer) Collides(x, y int, fig Figure) bool {
	for fy := 0; fy < int(fig.H); fy++ {
		for fx := 0; fx < int(fig.W); fx++ {
			if !fig.At(fx, fy) {
				continue
			}
			if !InBounds(x+fx, y+fy) || fb.IsSet(x+fx, y+fy) {
				return true
			}
		}
	}
	return false
}

// RowFull reports whether every pixel of row y is lit.
func (fb *Framebuffer) RowFull(y int) bool {
	if y < 0 || y >= Height {
		return false
	}
	for x := 0; x < Width; x++ {
		if fb.frame[y*Width+x].IsOff() {
			return false
		}
	}
	return true
}

// RowEmpty reports whether every pixel of row y is off.
func (fb *Framebuffer) RowEmpty(y int) bool {
	if y < 0 || y >= Height {
		return true
	}
	for x := 0; x < Width; x++ {
		if !fb.frame[y*Width+x].IsOff() {
			return false
		}
	}
	return true
}

// ClearRow turns off row y.
func (fb *Framebuffer) ClearRow(y int) {
	fb.HLine(0, y, Width, Off)
}

// CopyRow copies row src onto row dst.
func (fb *Framebuffer) CopyRow(dst, src int) {
	if dst < 0 || dst >= Height || src < 0 || src >= Height {
		return
	}
	copy(fb.frame[dst*Width:(dst+1)*Width], fb.frame[src*Width:(src+1)*Width])
}

// Occupied counts the lit pixels in rows [top, bottom).
func (fb *Framebuffer) Occupied(top, bottom int) int {
	n := 0
	for y := max(top, 0); y < min(bottom, Height); y++ {
		for x := 0; x < Width; x++ {
			if !fb.frame[y*Width+x].IsOff() {
				n++
			}
		}
	}
	return n
}

// Overlay draws every lit pixel of src on top of fb.
func (fb *Framebuffer) Overlay(src *Framebuffer) {
	for i, p := range src.frame {
		if !p.IsOff() {
			fb.frame[i] = p
		}
	}
}
