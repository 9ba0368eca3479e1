package storage

import (
	"fmt"
	"hash/fnv"

	"github.com/vovakirdan/led-arcade/internal/core"
)

// BytesPerTick is the encoded size of one raw input sample: x, y and a
// button bitmask.
const BytesPerTick = 3

// EncodeInputs packs raw input samples for storage.
func EncodeInputs(inputs []core.RawInput) []byte {
	out := make([]byte, 0, len(inputs)*BytesPerTick)
	for _, in := range inputs {
		var mask byte
		for b, held := range in.Buttons {
			if held {
				mask |= 1 << uint(b)
			}
		}
		out = append(out, byte(in.X), byte(in.Y), mask)
	}
	return out
}

// DecodeInputs unpacks samples written by EncodeInputs.
func DecodeInputs(data []byte) ([]core.RawInput, error) {
	if len(data)%BytesPerTick != 0 {
		return nil, fmt.Errorf("storage: input stream length %d is not a multiple of %d", len(data), BytesPerTick)
	}
	out := make([]core.RawInput, 0, len(data)/BytesPerTick)
	for i := 0; i < len(data); i += BytesPerTick {
		in := core.RawInput{X: int8(data[i]), Y: int8(data[i+1])}
		mask := data[i+2]
		if mask>>uint(core.ButtonCount) != 0 {
			return nil, fmt.Errorf("storage: unknown buttons %08b at tick %d", mask, i/BytesPerTick)
		}
		for b := range in.Buttons {
			in.Buttons[b] = mask&(1<<uint(b)) != 0
		}
		out = append(out, in)
	}
	return out, nil
}

// HashFrame returns the FNV-64a hash of a frame's RGB bytes, row-major.
func HashFrame(f *core.Frame) uint64 {
	h := fnv.New64a()
	buf := make([]byte, 0, len(f)*3)
	for _, p := range f {
		buf = append(buf, p.R, p.G, p.B)
	}
	h.Write(buf)
	return h.Sum64()
}
