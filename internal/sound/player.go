// Package sound plays the wheel's tick and result chime through the beep
// speaker and reports how loud the output currently is.
package sound

import (
	"fmt"
	"log/slog"
	"math"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/speaker"

	"github.com/iburimskiy/name-wheel/internal/config"
)

const (
	levelRingSize = 4096
	levelWindow   = 1024
)

// Player mixes short sounds into a single speaker stream. A nil *Player is
// valid and silent.
type Player struct {
	sr     beep.SampleRate
	mixer  *beep.Mixer
	tap    *levelTap
	volume float64
	muted  bool

	tick  *beep.Buffer
	chime *beep.Buffer

	level float64
}

func newPlayer(sr beep.SampleRate, cfg config.AudioConfig) *Player {
	mixer := &beep.Mixer{}
	return &Player{
		sr:     sr,
		mixer:  mixer,
		tap:    newLevelTap(mixer, levelRingSize),
		volume: cfg.Volume,
		muted:  cfg.Muted,
	}
}

// NewPlayer initializes the speaker and starts streaming the mixer. Sample
// files from cfg replace the synthesized sounds; a sample that fails to load
// is logged and the synthesized sound is kept.
func NewPlayer(cfg config.AudioConfig, logger *slog.Logger) (*Player, error) {
	sr := beep.SampleRate(config.SampleRate)
	p := newPlayer(sr, cfg)

	if cfg.TickSound != "" {
		buf, err := LoadSample(cfg.TickSound, sr)
		if err != nil {
			logger.Warn("tick sound not loaded", "path", cfg.TickSound, "error", err)
		} else {
			p.tick = buf
		}
	}
	if cfg.ChimeSound != "" {
		buf, err := LoadSample(cfg.ChimeSound, sr)
		if err != nil {
			logger.Warn("chime sound not loaded", "path", cfg.ChimeSound, "error", err)
		} else {
			p.chime = buf
		}
	}

	bufferSize := sr.N(time.Second / 20)
	if err := speaker.Init(sr, bufferSize); err != nil {
		return nil, fmt.Errorf("init speaker: %w", err)
	}
	speaker.Play(p.tap)
	return p, nil
}

// Tick plays the sector tick.
func (p *Player) Tick() {
	if p == nil {
		return
	}
	if p.tick != nil {
		p.play(p.tick.Streamer(0, p.tick.Len()))
		return
	}
	p.play(Click(p.sr))
}

// Chime plays the result jingle.
func (p *Player) Chime() {
	if p == nil {
		return
	}
	if p.chime != nil {
		p.play(p.chime.Streamer(0, p.chime.Len()))
		return
	}
	p.play(Chime(p.sr))
}

func (p *Player) play(s beep.Streamer) {
	if p.muted || p.volume <= 0 {
		return
	}
	v := &effects.Volume{
		Streamer: s,
		Base:     2,
		Volume:   math.Log2(p.volume),
	}
	speaker.Lock()
	p.mixer.Add(v)
	speaker.Unlock()
}

// Level returns the smoothed loudness of the output in [0, 1]. Call it once
// per frame.
func (p *Player) Level() float64 {
	if p == nil {
		return 0
	}
	rms := p.tap.rms(levelWindow)
	mag := math.Pow(rms, 0.3) // compress so quiet ticks still show
	p.level = config.SmoothingFactor*p.level + (1-config.SmoothingFactor)*mag
	return math.Min(p.level, 1)
}

// Close stops everything that is playing.
func (p *Player) Close() {
	if p == nil {
		return
	}
	speaker.Lock()
	speaker.Clear()
	speaker.Unlock()
}
