// =======================
// chime/chime.go
// =======================

package chime

import (
	"fmt"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
	"github.com/gopxl/beep/speaker"
)

const (
	DefaultSampleRate = 44100

	toneLength = 60 * time.Millisecond
	brightFreq = 880 // walking toward #999999
	darkFreq   = 660 // walking toward #000000
	toneVolume = -2
)

// Chime plays a short tone whenever the color cycle changes direction.
type Chime struct {
	rate beep.SampleRate
}

// New initializes the speaker.
func New(sampleRate int) (*Chime, error) {
	rate := beep.SampleRate(sampleRate)
	if err := speaker.Init(rate, rate.N(time.Second/10)); err != nil {
		return nil, fmt.Errorf("speaker init failed: %w", err)
	}
	return &Chime{rate: rate}, nil
}

// Tone returns a quieted sine of the given frequency and length.
func Tone(rate beep.SampleRate, freq float64, d time.Duration) (beep.Streamer, error) {
	sine, err := generators.SineTone(rate, freq)
	if err != nil {
		return nil, err
	}
	return &effects.Volume{
		Streamer: beep.Take(rate.N(d), sine),
		Base:     2,
		Volume:   toneVolume,
	}, nil
}

// Play queues the tone for a flip; reverse selects the darker pitch.
func (c *Chime) Play(reverse bool) error {
	freq := float64(brightFreq)
	if reverse {
		freq = darkFreq
	}
	tone, err := Tone(c.rate, freq, toneLength)
	if err != nil {
		return err
	}
	speaker.Play(tone)
	return nil
}

// Close stops playback and releases the device.
func (c *Chime) Close() {
	speaker.Clear()
	speaker.Close()
}
