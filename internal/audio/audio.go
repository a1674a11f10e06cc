// Package audio synthesizes the game's two sound effects with beep.
// No sound assets ship with the binary; the fire blip and the hit boom
// are generated. Playback is strictly best-effort: if the speaker cannot
// be initialized the package stays silent and the game plays on.
package audio

import (
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

// Player owns the speaker and mixes the fire/hit effects into it.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewPlayer creates a silent, uninitialized player.
func NewPlayer() *Player {
	return &Player{mixer: &beep.Mixer{}}
}

// Init opens the speaker. Safe to call more than once. An error leaves
// the player silent but usable.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if p.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*50)); err != nil {
		return err
	}

	speaker.Play(p.mixer)
	p.initialized = true
	return nil
}

// Cleanup stops playback. The speaker itself stays open; beep provides
// no close, so clearing the mixer is the shutdown.
func (p *Player) Cleanup() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	p.initialized = false
}

// Fire plays the shot/radar blip. A no-op when uninitialized.
func (p *Player) Fire() {
	p.play(NewBlipGenerator(sampleRate))
}

// Hit plays the rock-destroyed boom. A no-op when uninitialized.
func (p *Player) Hit() {
	p.play(NewBoomGenerator(sampleRate))
}

func (p *Player) play(s beep.Streamer) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}
