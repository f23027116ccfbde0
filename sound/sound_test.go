package sound

import (
	"testing"
	"time"
)

func TestBeepWithoutSpeakerIsNoop(t *testing.T) {
	p := NewPlayer()
	// No Init: speaker unavailable. Must not panic.
	p.Beep(880, 60*time.Millisecond)
	p.Melody()
}

func TestToggle(t *testing.T) {
	p := NewPlayer()
	if !p.Enabled() {
		t.Error("Expected sound enabled by default")
	}
	if p.Toggle() {
		t.Error("Expected first toggle to disable sound")
	}
	if !p.Toggle() {
		t.Error("Expected second toggle to re-enable sound")
	}
}

func TestDisabledPlayerProducesNoTone(t *testing.T) {
	p := NewPlayer()
	p.SetEnabled(false)
	if buf := p.tone(440, 50*time.Millisecond); buf != nil {
		t.Error("Expected no tone while disabled")
	}
}
