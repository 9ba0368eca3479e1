package tui

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/kamstrup/intmap"
	"golang.org/x/term"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// Each terminal cell shows two LEDs stacked with an upper half block: the
// foreground is the top LED, the background the bottom one.
const halfBlock = "▀"

// MaxScale caps how large a single LED is drawn.
const MaxScale = 4

// Renderer turns frames into styled terminal text.
type Renderer struct {
	scale  int
	styles *intmap.Map[uint64, lipgloss.Style]
}

// NewRenderer creates a renderer drawing every LED as scale×scale cells.
func NewRenderer(scale int) *Renderer {
	return &Renderer{
		scale:  core.Clamp(scale, 1, MaxScale),
		styles: intmap.New[uint64, lipgloss.Style](64),
	}
}

// Scale returns the current LED size.
func (r *Renderer) Scale() int {
	return r.scale
}

// Size returns the terminal columns and rows one frame occupies.
func (r *Renderer) Size() (cols, rows int) {
	return core.Width * 2 * r.scale, core.Height * r.scale / 2
}

// Fit picks the largest scale whose frame fits in width×height cells,
// reserving footer rows below it.
func (r *Renderer) Fit(width, height, footer int) {
	scale := min(width/(core.Width*2), (height-footer)*2/core.Height)
	r.scale = core.Clamp(scale, 1, MaxScale)
}

func (r *Renderer) style(top, bottom core.Pixel) lipgloss.Style {
	k := uint64(top.Packed())<<24 | uint64(bottom.Packed())
	if s, ok := r.styles.Get(k); ok {
		return s
	}
	s := lipgloss.NewStyle().
		Foreground(lipgloss.Color(hexColor(top))).
		Background(lipgloss.Color(hexColor(bottom)))
	r.styles.Put(k, s)
	return s
}

// Render draws the frame. Adjacent cells with the same colours share one
// styled run to keep the escape sequences short.
func (r *Renderer) Render(f *core.Frame) string {
	cols, rows := r.Size()
	var sb strings.Builder
	sb.Grow(cols * rows * 4)

	for row := range rows {
		if row > 0 {
			sb.WriteByte('\n')
		}
		// Virtual rows are LED rows repeated scale times.
		top := (2 * row) / r.scale
		bottom := (2*row + 1) / r.scale

		x := 0
		for x < core.Width {
			t, b := f.At(x, top), f.At(x, bottom)
			run := 1
			for x+run < core.Width && f.At(x+run, top) == t && f.At(x+run, bottom) == b {
				run++
			}
			sb.WriteString(r.style(t, b).Render(strings.Repeat(halfBlock, run*2*r.scale)))
			x += run
		}
	}
	return sb.String()
}

func hexColor(p core.Pixel) string {
	return fmt.Sprintf("#%06x", p.Packed())
}

// TerminalSize returns the size of the controlling terminal, or 0×0 when
// stdout is not a terminal.
func TerminalSize() (width, height int) {
	fd := int(os.Stdout.Fd())
	if !term.IsTerminal(fd) {
		return 0, 0
	}
	w, h, err := term.GetSize(fd)
	if err != nil {
		return 0, 0
	}
	return w, h
}
