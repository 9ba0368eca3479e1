package core

// Digits is the 3x5 font used by the score display.
var Digits = [10]Figure{
	ParseFigure("###", "#.#", "#.#", "#.#", "###"),
	ParseFigure(".#", "##", ".#", ".#", ".#"),
	ParseFigure("###", "..#", "###", "#..", "###"),
	ParseFigure("###", "..#", "###", "..#", "###"),
	ParseFigure("#.#", "#.#", "###", "..#", "..#"),
	ParseFigure("###", "#..", "###", "..#", "###"),
	ParseFigure("###", "#..", "###", "#.#", "###"),
	ParseFigure("###", "..#", "..#", "..#", "..#"),
	ParseFigure("###", "#.#", "###", "#.#", "###"),
	ParseFigure("###", "#.#", "###", "..#", "###"),
}

// DrawDigit draws digit d%10 with its top-left corner at (x, y).
func DrawDigit(fb *Framebuffer, x, y, d int, c Pixel) {
	if d < 0 {
		d = -d
	}
	fb.DrawFigure(x, y, Digits[d%10], c)
}

// DrawScore draws n modulo 100 as two digits in the HUD: tens at column 0,
// ones at column 5.
func DrawScore(fb *Framebuffer, n int, c Pixel) {
	if n < 0 {
		n = 0
	}
	DrawDigit(fb, 0, 0, (n/10)%10, c)
	DrawDigit(fb, 5, 0, n%10, c)
}

// DrawSeparator draws the line between the HUD and the play area.
func DrawSeparator(fb *Framebuffer, c Pixel) {
	fb.HLine(0, HUDHeight-1, Width, c)
}

// DrawPips draws up to 5 dots down column x of the HUD, one per unit of n.
// Used for lives and ammo counters between the two score digits.
func DrawPips(fb *Framebuffer, x, n int, c Pixel) {
	for i := 0; i < min(n, HUDHeight-1); i++ {
		fb.Set(x, i, c)
	}
}
