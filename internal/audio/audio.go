// Package audio relays the chip8 core's sound-timer events to a speaker.
// Tone synthesis is a spec non-goal — the sound timer is maintained and
// counted down but this package never synthesizes a waveform. What it does
// provide is the real plumbing: decoding and playing a short asset once per
// "timer reached zero" event, the way the teacher's beep-based relay did,
// so the wiring exists even though the content is silent by default.
package audio

import (
	"os"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
)

// Relay plays a short beep each time it receives a value on its channel.
// If no asset is available it degrades to doing nothing — a missing beep
// file is never an error for the VM, since audio is out of the core's
// scope entirely.
type Relay struct {
	events    chan struct{}
	streamer  beep.StreamSeekCloser
	format    beep.Format
	available bool
}

// NewRelay opens assetPath (a short mp3) and initializes the speaker. If
// the asset can't be opened or decoded, the returned Relay is still usable
// but Run becomes a no-op drain.
func NewRelay(assetPath string) *Relay {
	r := &Relay{events: make(chan struct{}, 1)}

	f, err := os.Open(assetPath)
	if err != nil {
		return r
	}

	streamer, format, err := mp3.Decode(f)
	if err != nil {
		return r
	}

	if err := speaker.Init(format.SampleRate, format.SampleRate.N(time.Second/10)); err != nil {
		return r
	}

	r.streamer = streamer
	r.format = format
	r.available = true
	return r
}

// Events returns the channel the outer loop signals on every step where the
// sound timer goes from a nonzero value to 0.
func (r *Relay) Events() chan<- struct{} {
	return r.events
}

// Run drains events and plays the asset for each one, until the channel is
// closed. Intended to run on its own goroutine.
func (r *Relay) Run() {
	for range r.events {
		if !r.available {
			continue
		}
		speaker.Lock()
		err := r.streamer.Seek(0)
		speaker.Unlock()
		if err != nil {
			continue
		}
		speaker.Play(r.streamer)
	}
}

// Close shuts down the relay's event channel and releases the decoded
// stream, if one was opened.
func (r *Relay) Close() {
	close(r.events)
	if r.streamer != nil {
		r.streamer.Close()
	}
}
