// Package sound provides optional procedural beep effects for the console.
// Playback must be safe to call from game code at any time: if the speaker
// failed to initialize or sound is toggled off, calls are no-ops. Sound must
// never break gameplay.
package sound

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type toneKey struct {
	freq int
	dur  time.Duration
}

// Player synthesizes and plays sine tones through the speaker, caching
// rendered tone buffers so repeated effects do not re-generate samples.
type Player struct {
	mu        sync.Mutex
	enabled   bool
	available bool
	cache     map[toneKey]*beep.Buffer
}

// NewPlayer creates a player. Call Init before playing.
func NewPlayer() *Player {
	return &Player{
		enabled: true,
		cache:   make(map[toneKey]*beep.Buffer),
	}
}

// Init initializes the speaker. Failure is non-fatal: the player stays
// silent and the error is returned for logging.
func (p *Player) Init() error {
	err := speaker.Init(sampleRate, sampleRate.N(time.Second/10))
	p.mu.Lock()
	p.available = err == nil
	p.mu.Unlock()
	return err
}

// Close shuts down the speaker.
func (p *Player) Close() {
	p.mu.Lock()
	available := p.available
	p.available = false
	p.mu.Unlock()
	if available {
		speaker.Close()
	}
}

// Enabled reports whether sound is toggled on.
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

// SetEnabled toggles sound on or off.
func (p *Player) SetEnabled(enabled bool) {
	p.mu.Lock()
	p.enabled = enabled
	p.mu.Unlock()
}

// Toggle flips the enabled state and returns the new value.
func (p *Player) Toggle() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.enabled = !p.enabled
	return p.enabled
}

// Beep plays a sine tone of the given frequency and duration.
func (p *Player) Beep(freq int, dur time.Duration) {
	buf := p.tone(freq, dur)
	if buf == nil {
		return
	}
	speaker.Play(buf.Streamer(0, buf.Len()))
}

// Melody plays a short ascending major-chord arpeggio (victory jingle).
func (p *Player) Melody() {
	notes := []int{440, 554, 659, 880}

	p.mu.Lock()
	ok := p.enabled && p.available
	p.mu.Unlock()
	if !ok {
		return
	}

	streamers := make([]beep.Streamer, 0, len(notes))
	for _, freq := range notes {
		if buf := p.tone(freq, 150*time.Millisecond); buf != nil {
			streamers = append(streamers, buf.Streamer(0, buf.Len()))
		}
	}
	if len(streamers) > 0 {
		speaker.Play(beep.Seq(streamers...))
	}
}

// tone returns a cached rendered tone, or nil when sound is unavailable
// or disabled.
func (p *Player) tone(freq int, dur time.Duration) *beep.Buffer {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.enabled || !p.available {
		return nil
	}
	key := toneKey{freq: freq, dur: dur}
	if buf, ok := p.cache[key]; ok {
		return buf
	}

	sine, err := generators.SineTone(sampleRate, float64(freq))
	if err != nil {
		return nil
	}
	buf := beep.NewBuffer(beep.Format{
		SampleRate:  sampleRate,
		NumChannels: 2,
		Precision:   2,
	})
	buf.Append(beep.Take(sampleRate.N(dur), sine))
	p.cache[key] = buf
	return buf
}
