package platform

import "github.com/vovakirdan/led-arcade/internal/core"

// Recorder wraps a Controller and keeps every sample it returns, so a session
// can be saved and replayed later.
type Recorder struct {
	src     Controller
	samples []core.RawInput
}

// NewRecorder records the samples read from src.
func NewRecorder(src Controller) *Recorder {
	return &Recorder{src: src}
}

// Read reads from the wrapped controller and records the sample.
func (r *Recorder) Read() core.RawInput {
	raw := r.src.Read()
	r.samples = append(r.samples, raw)
	return raw
}

// Samples returns the recorded samples in order. The slice is shared with the
// recorder and grows as more samples are read.
func (r *Recorder) Samples() []core.RawInput {
	return r.samples
}

// Len returns the number of recorded samples.
func (r *Recorder) Len() int {
	return len(r.samples)
}
