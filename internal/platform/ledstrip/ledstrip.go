// Package ledstrip streams frames to an addressable LED matrix through a
// serial bridge. The matrix is one WS2812 strip folded into rows, so every
// frame is written as Size GRB triples in strip order.
package ledstrip

import (
	"errors"
	"fmt"
	"io"
	"sync"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// FrameBytes is the length of one frame on the wire, without header.
const FrameBytes = core.Size * 3

// Options describes how the strip is wired.
type Options struct {
	// Brightness scales every channel by Brightness/255. Zero means full.
	Brightness uint8

	// Serpentine strips run right to left on even rows.
	Serpentine bool

	// Adalight prefixes each frame with the "Ada" header understood by the
	// common Arduino bridge sketches.
	Adalight bool
}

// Strip is a Display writing to w. Show cannot report errors, so the first
// write error is kept, later frames are dropped and Err returns it.
type Strip struct {
	w    io.Writer
	opts Options

	mu     sync.Mutex
	buf    []byte
	err    error
	frames int
}

// New creates a strip writing to w.
func New(w io.Writer, opts Options) *Strip {
	if opts.Brightness == 0 {
		opts.Brightness = 255
	}
	size := FrameBytes
	if opts.Adalight {
		size += 6
	}
	return &Strip{w: w, opts: opts, buf: make([]byte, 0, size)}
}

// Index returns the strip position of the LED at x, y.
func (s *Strip) Index(x, y int) int {
	if s.opts.Serpentine && y%2 == 0 {
		x = core.Width - 1 - x
	}
	return y*core.Width + x
}

// Encode appends the wire form of frame to dst.
func (s *Strip) Encode(dst []byte, frame *core.Frame) []byte {
	if s.opts.Adalight {
		n := core.Size - 1
		hi, lo := byte(n>>8), byte(n)
		dst = append(dst, 'A', 'd', 'a', hi, lo, hi^lo^0x55)
	}

	start := len(dst)
	dst = append(dst, make([]byte, FrameBytes)...)
	out := dst[start:]
	for y := range core.Height {
		for x := range core.Width {
			p := frame.At(x, y).Scale(s.opts.Brightness, 255)
			i := s.Index(x, y) * 3
			out[i], out[i+1], out[i+2] = p.G, p.R, p.B
		}
	}
	return dst
}

// Show writes one frame.
func (s *Strip) Show(frame *core.Frame) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.err != nil {
		return
	}
	s.buf = s.Encode(s.buf[:0], frame)
	if _, err := s.w.Write(s.buf); err != nil {
		s.err = fmt.Errorf("ledstrip: write frame %d: %w", s.frames, err)
		return
	}
	s.frames++
}

// Frames returns the number of frames written.
func (s *Strip) Frames() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.frames
}

// Err returns the write error that stopped the strip, if any.
func (s *Strip) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}

// Close blanks the strip and closes the writer if it is a Closer.
func (s *Strip) Close() error {
	var blank core.Frame
	s.Show(&blank)
	err := s.Err()
	if c, ok := s.w.(io.Closer); ok {
		err = errors.Join(err, c.Close())
	}
	return err
}
