//go:build js && wasm

// arcade-wasm runs the arcade in a browser. The page provides a canvas with
// id "arcade"; the matrix is drawn into an 8x32 ImageData and scaled up by
// CSS (image-rendering: pixelated).
//
// Build:
//
//	GOOS=js GOARCH=wasm go build -o arcade.wasm ./cmd/arcade-wasm
package main

import (
	"context"
	"syscall/js"
	"time"

	"github.com/vovakirdan/led-arcade/internal/config"
	"github.com/vovakirdan/led-arcade/internal/core"
	"github.com/vovakirdan/led-arcade/internal/platform/browser"
	"github.com/vovakirdan/led-arcade/internal/scheduler"
	"github.com/vovakirdan/led-arcade/internal/session"
)

// canvasDisplay copies each frame into the canvas ImageData.
type canvasDisplay struct {
	ctx   js.Value
	image js.Value
	data  js.Value // the ImageData's Uint8ClampedArray
	buf   []byte
}

func newCanvasDisplay(canvas js.Value) *canvasDisplay {
	canvas.Set("width", core.Width)
	canvas.Set("height", core.Height)
	ctx := canvas.Call("getContext", "2d")
	image := ctx.Call("createImageData", core.Width, core.Height)
	return &canvasDisplay{
		ctx:   ctx,
		image: image,
		data:  image.Get("data"),
	}
}

func (d *canvasDisplay) Show(frame *core.Frame) {
	d.buf = browser.RGBA(d.buf, frame)
	js.CopyBytesToJS(d.data, d.buf)
	d.ctx.Call("putImageData", d.image, 0, 0)
}

func main() {
	doc := js.Global().Get("document")
	canvas := doc.Call("getElementById", "arcade")
	if canvas.IsNull() {
		js.Global().Get("console").Call("error", "arcade: no <canvas id=\"arcade\"> on the page")
		return
	}

	setup := session.Setup{
		Config: config.EmbeddedConfig(),
		Seed:   uint64(time.Now().UnixNano()),
	}
	machine, err := setup.Machine()
	if err != nil {
		js.Global().Get("console").Call("error", err.Error())
		return
	}

	keys := &browser.Keys{}
	sched := scheduler.New(machine, newCanvasDisplay(canvas), keys, nil, scheduler.Options{
		TickRate: setup.Config.TickRate,
		DeadZone: setup.Config.DeadZone,
	})

	onKey := func(down bool) js.Func {
		return js.FuncOf(func(_ js.Value, args []js.Value) any {
			ev := args[0]
			key := ev.Get("key").String()
			var handled bool
			if down {
				handled = keys.Down(key)
			} else {
				handled = keys.Up(key)
			}
			if handled {
				ev.Call("preventDefault")
			}
			return nil
		})
	}
	js.Global().Call("addEventListener", "keydown", onKey(true))
	js.Global().Call("addEventListener", "keyup", onKey(false))
	js.Global().Call("addEventListener", "blur", js.FuncOf(func(js.Value, []js.Value) any {
		keys.Release()
		return nil
	}))

	// requestAnimationFrame paces the loop; the clock turns frame timestamps
	// into fixed ticks so game speed does not depend on the display rate.
	clock := browser.NewClock(setup.Config.TickRate)
	ctx := context.Background()
	var frame js.Func
	frame = js.FuncOf(func(_ js.Value, args []js.Value) any {
		for range clock.Frame(args[0].Float()) {
			if err := sched.Tick(ctx); err != nil {
				return nil
			}
		}
		js.Global().Call("requestAnimationFrame", frame)
		return nil
	})
	js.Global().Call("requestAnimationFrame", frame)

	select {}
}
