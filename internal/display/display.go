// Package display is the CHIP-8 display sink and host keyboard watcher. It
// is deliberately outside the chip8 core (spec.md §1): the core produces a
// 64x32 one-bit framebuffer and never scales it; this package is the
// presentation layer that blows 1x1 pixels up to NxN on-screen blocks and
// turns host key events into the hex-keypad mailbox the core reads.
package display

import (
	"fmt"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"golang.org/x/image/colornames"

	"github.com/coredump8/chippy8/internal/chip8"
	"github.com/coredump8/chippy8/internal/input"
)

const (
	fbWidth  float64 = 64
	fbHeight float64 = 32

	keyRepeatDur = time.Second / 5
)

// keyByName maps the host key names used by input.QWERTYLayout onto
// pixelgl's button constants.
var keyByName = map[string]pixelgl.Button{
	"1": pixelgl.Key1, "2": pixelgl.Key2, "3": pixelgl.Key3, "4": pixelgl.Key4,
	"Q": pixelgl.KeyQ, "W": pixelgl.KeyW, "E": pixelgl.KeyE, "R": pixelgl.KeyR,
	"A": pixelgl.KeyA, "S": pixelgl.KeyS, "D": pixelgl.KeyD, "F": pixelgl.KeyF,
	"Z": pixelgl.KeyZ, "X": pixelgl.KeyX, "C": pixelgl.KeyC, "V": pixelgl.KeyV,
}

var _ input.Source = (*Window)(nil)

// Window embeds a pixelgl window, maps hex digits to pixelgl buttons, and
// starts and stops a per-key ticker on press and release the way the
// teacher's window did. Nothing reads those tickers; the held key comes
// from pixelgl's button state.
type Window struct {
	*pixelgl.Window
	scale    float64
	keyMap   map[byte]pixelgl.Button
	keysDown [16]*time.Ticker
	current  *byte
}

// NewWindow opens a pixelgl window scale pixels per CHIP-8 pixel.
func NewWindow(scale int) (*Window, error) {
	if scale < 1 {
		scale = 1
	}
	s := float64(scale)
	cfg := pixelgl.WindowConfig{
		Title:  "chippy8",
		Bounds: pixel.R(0, 0, fbWidth*s, fbHeight*s),
		VSync:  true,
	}
	w, err := pixelgl.NewWindow(cfg)
	if err != nil {
		return nil, fmt.Errorf("error creating new window: %w", err)
	}

	km := make(map[byte]pixelgl.Button, 16)
	for hexKey, name := range input.QWERTYLayout {
		if btn, ok := keyByName[name]; ok {
			km[hexKey] = btn
		}
	}

	return &Window{
		Window: w,
		scale:  s,
		keyMap: km,
	}, nil
}

// Draw blits the framebuffer to the window, each CHIP-8 pixel scaled to an
// scale x scale block. The CPU hands this a read-only *chip8.Framebuffer —
// Draw never mutates it.
func (w *Window) Draw(fb *chip8.Framebuffer) {
	w.Clear(colornames.Black)
	draw := imdraw.New(nil)
	draw.Color = pixel.RGB(1, 1, 1)

	for y := 0; y < fb.Height(); y++ {
		for x := 0; x < fb.Width(); x++ {
			if fb.At(x, y) == 0 {
				continue
			}
			// Flip Y: framebuffer row 0 is the top row, pixelgl's
			// origin is bottom-left.
			screenY := fb.Height() - 1 - y
			draw.Push(pixel.V(w.scale*float64(x), w.scale*float64(screenY)))
			draw.Push(pixel.V(w.scale*float64(x)+w.scale, w.scale*float64(screenY)+w.scale))
			draw.Rectangle(0)
		}
	}

	draw.Draw(w)
	w.Update()
}

// PollInput refreshes which hex key (if any) is currently held, from
// pixelgl's JustPressed/Pressed state; when several keys are held, which
// one is reported is not defined. Call once per outer-loop tick.
func (w *Window) PollInput() {
	var held *byte
	for hexKey, btn := range w.keyMap {
		hexKey := hexKey
		switch {
		case w.JustReleased(btn):
			if w.keysDown[hexKey] != nil {
				w.keysDown[hexKey].Stop()
				w.keysDown[hexKey] = nil
			}
		case w.JustPressed(btn):
			if w.keysDown[hexKey] == nil {
				w.keysDown[hexKey] = time.NewTicker(keyRepeatDur)
			}
			held = &hexKey
		case w.Pressed(btn):
			held = &hexKey
		}
	}
	w.current = held
}

// Current satisfies input.Source: the currently depressed hex key, or nil.
func (w *Window) Current() *byte {
	return w.current
}
