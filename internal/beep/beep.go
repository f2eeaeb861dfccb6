// Package beep turns the sound timer into an audible tone. The
// machine core only counts the timer down; this is the host half.
package beep

import (
	"bytes"
	"fmt"
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

const (
	sampleRate = 44100
	beepHz     = 440

	volumeStep = 0.2
	volumeMax  = 1.0
	volumeMin  = 0.0
)

// Beep plays a generated sine tone for as long as the caller keeps
// it switched on.
type Beep struct {
	p *audio.Player
}

// New generates one second of a 440 Hz sine wave and wraps it in an
// infinitely looping player. The tone is silent until SetPlaying.
func New() (*Beep, error) {
	numSamples := sampleRate
	// the player takes 16-bit little-endian stereo, so each sample is
	// written to both channels
	buf := make([]byte, numSamples*4)
	for i := 0; i < numSamples; i++ {
		a := math.Sin(2.0 * math.Pi * float64(beepHz) * float64(i) / float64(sampleRate))
		s := int16(a * math.MaxInt16)
		buf[4*i] = byte(s)
		buf[4*i+1] = byte(s >> 8)
		buf[4*i+2] = byte(s)
		buf[4*i+3] = byte(s >> 8)
	}

	audioCtx := audio.NewContext(sampleRate)
	loop := audio.NewInfiniteLoop(bytes.NewReader(buf), int64(len(buf)))
	player, err := audioCtx.NewPlayer(loop)
	if err != nil {
		return nil, fmt.Errorf("couldn't create an audio player: %w", err)
	}

	return &Beep{
		p: player,
	}, nil
}

// SetPlaying starts or pauses the tone. Safe to call every frame;
// it only acts on edges.
func (b *Beep) SetPlaying(playing bool) {
	switch {
	case playing && !b.p.IsPlaying():
		b.p.Play()
	case !playing && b.p.IsPlaying():
		b.p.Pause()
	}
}

func (b *Beep) VolumeUp() {
	volume := b.p.Volume()
	volume = min(volume+volumeStep, volumeMax)
	b.p.SetVolume(volume)
}

func (b *Beep) VolumeDown() {
	volume := b.p.Volume()
	volume = max(volume-volumeStep, volumeMin)
	b.p.SetVolume(volume)
}

func (b *Beep) SetVolume(volume float64) {
	volume = min(volume, volumeMax)
	volume = max(volume, volumeMin)
	b.p.SetVolume(volume)
}
