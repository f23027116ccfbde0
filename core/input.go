package core

import "time"

// Key identifies a special (non-rune) key.
type Key uint8

const (
	KeyNone Key = iota
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
	KeyEnter
	KeyEscape
	KeySpace
	KeyTab
	KeyBackspace
)

// Press is a single key event: either a special key or a rune.
// Letter runes are lowercased at the source.
type Press struct {
	Key  Key
	Rune rune
}

// Terminals deliver no key-up events, so a key counts as held while
// auto-repeat keeps refreshing its press timestamp within this window.
const heldWindow = 200 * time.Millisecond

// Tracker accumulates key events between frames and maintains the
// held-key approximation.
type Tracker struct {
	pending []Press
	held    map[Press]time.Time
}

// NewTracker creates an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{held: make(map[Press]time.Time)}
}

// Observe records a key event at the given time.
func (t *Tracker) Observe(p Press, at time.Time) {
	t.pending = append(t.pending, p)
	t.held[p] = at
}

// Frame returns the input view for one frame, consuming pending presses.
func (t *Tracker) Frame(now time.Time) *Input {
	presses := t.pending
	t.pending = nil

	// Expire stale held entries so the map does not grow unbounded.
	for p, at := range t.held {
		if now.Sub(at) > heldWindow {
			delete(t.held, p)
		}
	}

	return &Input{presses: presses, held: t.held, now: now}
}

// Input is the per-frame keyboard view handed to screens.
type Input struct {
	presses []Press
	held    map[Press]time.Time
	now     time.Time
}

// Presses returns this frame's discrete key events in order.
func (in *Input) Presses() []Press {
	return in.presses
}

// Pressed reports whether a special key was pressed this frame.
func (in *Input) Pressed(k Key) bool {
	for _, p := range in.presses {
		if p.Key == k {
			return true
		}
	}
	return false
}

// PressedRune reports whether a rune was pressed this frame.
func (in *Input) PressedRune(r rune) bool {
	for _, p := range in.presses {
		if p.Key == KeyNone && p.Rune == r {
			return true
		}
	}
	return false
}

// Held reports whether a special key is being held down.
func (in *Input) Held(k Key) bool {
	return in.heldPress(Press{Key: k})
}

// HeldRune reports whether a rune key is being held down.
func (in *Input) HeldRune(r rune) bool {
	return in.heldPress(Press{Key: KeyNone, Rune: r})
}

func (in *Input) heldPress(p Press) bool {
	at, ok := in.held[p]
	if !ok {
		return false
	}
	return in.now.Sub(at) <= heldWindow
}
