package ui

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/samdwyer/minirogue/internal/game"
)

const sampleRate = beep.SampleRate(44100)

// Cue identifies a short sound effect.
type Cue int

const (
	CueHit Cue = iota
	CueKill
	CuePickup
	CueAdvance
	CueGameOver
)

// String returns a human-readable cue name.
func (c Cue) String() string {
	switch c {
	case CueHit:
		return "hit"
	case CueKill:
		return "kill"
	case CuePickup:
		return "pickup"
	case CueAdvance:
		return "advance"
	case CueGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// SoundManager plays cues through the system speaker. Until Initialize
// succeeds every Play is a no-op, so a nil or uninitialized manager is a
// silent one.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
}

// NewSoundManager creates a new sound manager
func NewSoundManager() *SoundManager {
	return &SoundManager{mixer: &beep.Mixer{}}
}

// Initialize opens the speaker and starts the mixer.
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Millisecond*100)); err != nil {
		return err
	}
	speaker.Play(sm.mixer)
	sm.initialized = true
	return nil
}

// Cleanup silences all cues.
func (sm *SoundManager) Cleanup() {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue on the mixer.
func (sm *SoundManager) Play(c Cue) {
	if sm == nil {
		return
	}
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Add(CueStreamer(c))
	speaker.Unlock()
}

// CuesFor returns the cues announcing a turn's outcome. Game over replaces
// every other cue.
func CuesFor(out game.Outcome) []Cue {
	if out.GameOver {
		return []Cue{CueGameOver}
	}
	var cues []Cue
	switch {
	case out.Killed:
		cues = append(cues, CueKill)
	case out.Attacked:
		cues = append(cues, CueHit)
	}
	if out.PickedUp {
		cues = append(cues, CuePickup)
	}
	if out.Advanced {
		cues = append(cues, CueAdvance)
	}
	return cues
}

// CueStreamer builds a fresh, finite streamer for c.
func CueStreamer(c Cue) beep.Streamer {
	ms := func(n int) time.Duration { return time.Duration(n) * time.Millisecond }

	switch c {
	case CueHit:
		return NewToneGenerator(sampleRate, 220, 110, ms(90))
	case CueKill:
		return beep.Seq(
			NewToneGenerator(sampleRate, 330, 330, ms(60)),
			NewToneGenerator(sampleRate, 165, 110, ms(140)),
		)
	case CuePickup:
		return beep.Seq(
			NewToneGenerator(sampleRate, 660, 660, ms(70)),
			NewToneGenerator(sampleRate, 990, 990, ms(90)),
		)
	case CueAdvance:
		return NewToneGenerator(sampleRate, 200, 600, ms(250))
	case CueGameOver:
		return beep.Seq(
			NewToneGenerator(sampleRate, 392, 392, ms(200)),
			NewToneGenerator(sampleRate, 330, 330, ms(200)),
			NewToneGenerator(sampleRate, 262, 196, ms(400)),
		)
	default:
		return beep.Silence(0)
	}
}

// ToneGenerator produces a sine tone sweeping linearly from one frequency to
// another, with a short attack and an exponential decay.
type ToneGenerator struct {
	sr       beep.SampleRate
	from, to float64
	samples  int
	pos      int
	phase    float64
}

// NewToneGenerator creates a tone generator lasting d.
func NewToneGenerator(sr beep.SampleRate, from, to float64, d time.Duration) *ToneGenerator {
	return &ToneGenerator{
		sr:      sr,
		from:    from,
		to:      to,
		samples: sr.N(d),
	}
}

func (g *ToneGenerator) Stream(samples [][2]float64) (n int, ok bool) {
	if g.pos >= g.samples {
		return 0, false
	}
	for i := range samples {
		if g.pos >= g.samples {
			return i, true
		}
		progress := float64(g.pos) / float64(g.samples)
		freq := g.from + (g.to-g.from)*progress

		attack := math.Min(float64(g.pos)/float64(g.sr)/0.005, 1.0)
		envelope := attack * math.Exp(-3*progress)
		sample := 0.25 * envelope * math.Sin(2*math.Pi*g.phase)

		samples[i][0] = sample
		samples[i][1] = sample

		g.phase += freq / float64(g.sr)
		if g.phase >= 1 {
			g.phase--
		}
		g.pos++
	}
	return len(samples), true
}

func (g *ToneGenerator) Err() error {
	return nil
}
