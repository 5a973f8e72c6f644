package main

import (
	"log/slog"
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const chimeSampleRate = beep.SampleRate(44100)

// Chime plays a short tone every time a polygon spawns. Within a cycle each
// tone is a bit higher than the previous one.
type Chime struct {
	enabled bool
}

// NewChime initializes the speaker. Sound is optional: if the speaker can't
// be initialized, the chime stays silent.
func NewChime(enabled bool) *Chime {
	if !enabled {
		return &Chime{}
	}
	err := speaker.Init(chimeSampleRate, chimeSampleRate.N(time.Second/10))
	if err != nil {
		slog.Warn("audio initialization failed, running without sound",
			"err", err)
		return &Chime{}
	}
	return &Chime{enabled: true}
}

// ChimeFreq is the frequency of the tone for a polygon that started at
// startAngle degrees.
func ChimeFreq(startAngle float64) float64 {
	// A whole tone higher for every 10 degrees.
	return 440 * math.Pow(2, startAngle/60)
}

func (c *Chime) Play(p Polygon) {
	if !c.enabled {
		return
	}
	sine, err := generators.SineTone(chimeSampleRate, ChimeFreq(p.StartAngle))
	if err != nil {
		slog.Warn("can't generate chime", "err", err)
		return
	}
	tone := beep.Take(chimeSampleRate.N(60*time.Millisecond), sine)
	speaker.Play(&effects.Volume{
		Streamer: tone,
		Base:     2,
		Volume:   -3,
	})
}
