package gsound

import (
	"math"
	"sync"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const sampleRate = beep.SampleRate(44100)

type Cue int

const (
	CueSnap    Cue = iota // piece dropped
	CueCorrect            // piece landed on its target
	CueSolved
	CueExpired
	CueErase
)

// Player mixes short generated tones into a single speaker stream.
type Player struct {
	mu      sync.Mutex
	mixer   *beep.Mixer
	volume  float64
	enabled bool
	ready   bool
}

func NewPlayer(enabled bool) *Player {
	return &Player{mixer: &beep.Mixer{}, volume: 0.4, enabled: enabled}
}

// Init opens the audio device. A missing device is not fatal: the player
// just stays silent.
func (p *Player) Init() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.ready {
		return nil
	}
	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		return err
	}
	speaker.Play(p.mixer)
	p.ready = true
	return nil
}

func (p *Player) SetEnabled(v bool) {
	p.mu.Lock()
	p.enabled = v
	p.mu.Unlock()
}

func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.enabled
}

func (p *Player) Play(c Cue) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready || !p.enabled {
		return
	}
	s := Stream(c, p.volume)
	if s == nil {
		return
	}
	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.ready {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.ready = false
}

// Stream builds the finite streamer for a cue.
func Stream(c Cue, vol float64) beep.Streamer {
	switch c {
	case CueSnap:
		return withVolume(tone(440, 40*time.Millisecond), vol*0.6)
	case CueCorrect:
		return withVolume(beep.Seq(tone(660, 60*time.Millisecond), tone(880, 80*time.Millisecond)), vol)
	case CueSolved:
		return withVolume(beep.Seq(
			tone(523.25, 120*time.Millisecond),
			tone(659.25, 120*time.Millisecond),
			tone(783.99, 120*time.Millisecond),
			tone(1046.5, 240*time.Millisecond),
		), vol)
	case CueExpired:
		return withVolume(beep.Seq(tone(220, 200*time.Millisecond), tone(165, 300*time.Millisecond)), vol)
	case CueErase:
		return withVolume(tone(1200, 15*time.Millisecond), vol*0.2)
	default:
		return nil
	}
}

func tone(freq float64, d time.Duration) beep.Streamer {
	sine, err := generators.SineTone(sampleRate, freq)
	if err != nil {
		return generators.Silence(sampleRate.N(d))
	}
	return fade(beep.Take(sampleRate.N(d), sine), sampleRate.N(d))
}

// short linear release against clicks at the end of a tone
func fade(s beep.Streamer, total int) beep.Streamer {
	release := total / 4
	pos := 0
	return beep.StreamerFunc(func(samples [][2]float64) (int, bool) {
		n, ok := s.Stream(samples)
		for i := 0; i < n; i++ {
			if left := total - pos; left < release {
				g := float64(left) / float64(release)
				samples[i][0] *= g
				samples[i][1] *= g
			}
			pos++
		}
		return n, ok
	})
}

// log2(0) is -Inf, zero volume is treated as silent
func withVolume(s beep.Streamer, vol float64) beep.Streamer {
	if vol <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(vol)}
}
