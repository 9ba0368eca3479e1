package core

// Pixel is one RGB LED. The zero value is off.
type Pixel struct {
	R, G, B uint8
}

// RGB constructs a Pixel.
func RGB(r, g, b uint8) Pixel {
	return Pixel{R: r, G: g, B: b}
}

// IsOff reports whether the pixel is black.
func (p Pixel) IsOff() bool {
	return p.R == 0 && p.G == 0 && p.B == 0
}

// Packed returns the pixel as 0xRRGGBB.
func (p Pixel) Packed() uint32 {
	return uint32(p.R)<<16 | uint32(p.G)<<8 | uint32(p.B)
}

// Scale multiplies every channel by num/den, used for LED brightness limits.
func (p Pixel) Scale(num, den uint8) Pixel {
	if den == 0 {
		return Off
	}
	return Pixel{
		R: uint8(uint16(p.R) * uint16(num) / uint16(den)),
		G: uint8(uint16(p.G) * uint16(num) / uint16(den)),
		B: uint8(uint16(p.B) * uint16(num) / uint16(den)),
	}
}

// Palette. Channel ratios follow the LED hardware palette, scaled up so they
// are visible on a monitor; LED hosts scale them back down.
var (
	Off        = Pixel{}
	Black      = Pixel{}
	Brick      = Pixel{R: 252, G: 42, B: 0}
	Red        = Pixel{R: 126}
	Green      = Pixel{G: 126}
	Blue       = Pixel{B: 126}
	LightBlue  = Pixel{G: 126, B: 126}
	Pink       = Pixel{R: 63, B: 63}
	Yellow     = Pixel{R: 126, G: 126}
	DarkGreen  = Pixel{G: 63}
	LightGreen = Pixel{G: 189}
)

// paletteChars maps palette colours to the letters used by Frame.String.
var paletteChars = [...]struct {
	c  Pixel
	ch byte
}{
	{Brick, 'K'},
	{Red, 'R'},
	{Green, 'G'},
	{Blue, 'B'},
	{LightBlue, 'C'},
	{Pink, 'P'},
	{Yellow, 'Y'},
	{DarkGreen, 'd'},
	{LightGreen, 'L'},
}

// Char returns the ASCII letter for a palette colour, '.' for off and '?'
// for anything outside the palette.
func (p Pixel) Char() byte {
	if p.IsOff() {
		return '.'
	}
	for _, e := range paletteChars {
		if e.c == p {
			return e.ch
		}
	}
	return '?'
}

// PixelFromChar is the inverse of Char. Unknown letters map to Off.
func PixelFromChar(ch byte) Pixel {
	for _, e := range paletteChars {
		if e.ch == ch {
			return e.c
		}
	}
	return Off
}
