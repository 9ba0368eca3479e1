package tui

import (
	"strings"
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vovakirdan/led-arcade/internal/core"
)

func TestRendererSize(t *testing.T) {
	tests := []struct {
		scale      int
		cols, rows int
	}{
		{1, 16, 16},
		{2, 32, 32},
		{3, 48, 48},
	}

	var fb core.Framebuffer
	fb.Set(3, 17, core.Yellow)

	for _, tt := range tests {
		r := NewRenderer(tt.scale)
		cols, rows := r.Size()
		assert.Equal(t, tt.cols, cols)
		assert.Equal(t, tt.rows, rows)

		lines := strings.Split(r.Render(fb.Frame()), "\n")
		require.Len(t, lines, tt.rows)
		for i, line := range lines {
			assert.Equal(t, tt.cols, lipgloss.Width(line), "scale %d line %d", tt.scale, i)
		}
	}
}

func TestRendererScaleClamped(t *testing.T) {
	assert.Equal(t, 1, NewRenderer(0).Scale())
	assert.Equal(t, MaxScale, NewRenderer(99).Scale())
}

func TestRendererFit(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		footer        int
		want          int
	}{
		{"tiny terminal", 10, 10, 2, 1},
		{"height bound", 80, 40, 3, 2},
		{"width bound", 40, 200, 0, 2},
		{"huge terminal", 500, 500, 0, MaxScale},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := NewRenderer(1)
			r.Fit(tt.width, tt.height, tt.footer)
			assert.Equal(t, tt.want, r.Scale())
		})
	}
}

func TestRendererCachesStylesPerColourPair(t *testing.T) {
	r := NewRenderer(1)
	var fb core.Framebuffer

	r.Render(fb.Frame())
	assert.Equal(t, 1, r.styles.Len())

	fb.Set(0, 0, core.Red)
	fb.Set(5, 0, core.Red)
	r.Render(fb.Frame())
	r.Render(fb.Frame())
	assert.Equal(t, 2, r.styles.Len())
}

func TestHexColor(t *testing.T) {
	assert.Equal(t, "#000000", hexColor(core.Off))
	assert.Equal(t, "#fc2a00", hexColor(core.Brick))
	assert.Equal(t, "#007e7e", hexColor(core.LightBlue))
}
