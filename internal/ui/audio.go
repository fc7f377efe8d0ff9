package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundPlace SoundType = iota
	SoundFlip
	SoundPass
	SoundWin
	SoundLoss
)

const (
	sampleRate = 44100
)

// AudioManager handles sound effect playback.
type AudioManager struct {
	context *audio.Context
	sounds  map[SoundType][]byte
	enabled bool
	volume  float64
}

// NewAudioManager creates a new audio manager.
func NewAudioManager() *AudioManager {
	am := &AudioManager{
		context: audio.NewContext(sampleRate),
		sounds:  make(map[SoundType][]byte),
		enabled: true,
		volume:  0.5,
	}
	am.generateSounds()
	return am
}

// generateSounds synthesises every effect once at startup.
func (am *AudioManager) generateSounds() {
	am.sounds[SoundPlace] = synth(0.08, func(t, _ float64) float64 {
		return click(t, 440) * 0.35
	})
	am.sounds[SoundFlip] = synth(0.18, func(t, _ float64) float64 {
		// Two knocks, the second a little higher, like a disc turning over.
		v := click(t, 520) * 0.25
		if t > 0.07 {
			v += click(t-0.07, 600) * 0.2
		}
		return v
	})
	am.sounds[SoundPass] = synth(0.25, func(t, p float64) float64 {
		return math.Sin(2*math.Pi*300*t) * attackDecay(p) * 0.3
	})
	am.sounds[SoundWin] = synth(0.6, func(t, p float64) float64 {
		return chord(t, 261.63, 329.63, 392.00) * swell(p) * 0.45
	})
	am.sounds[SoundLoss] = synth(0.6, func(t, p float64) float64 {
		return chord(t, 220.00, 261.63, 329.63) * swell(p) * 0.45
	})
}

// synth renders a mono signal into 16-bit little-endian stereo samples.
// fn receives the time in seconds and the progress through the sound (0..1).
func synth(duration float64, fn func(t, progress float64) float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4)

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		v := fn(t, t/duration)
		if v > 1 {
			v = 1
		} else if v < -1 {
			v = -1
		}

		val := int16(v * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// click is a short percussive knock with a fast exponential decay.
func click(t, freq float64) float64 {
	if t < 0 {
		return 0
	}
	noise := (math.Sin(t*sampleRate*0.3) + math.Sin(t*sampleRate*0.7)) * 0.3
	return (math.Sin(2*math.Pi*freq*t) + noise) * math.Exp(-t*30)
}

// chord averages sine waves at the given frequencies.
func chord(t float64, freqs ...float64) float64 {
	v := 0.0
	for _, f := range freqs {
		v += math.Sin(2 * math.Pi * f * t)
	}
	return v / float64(len(freqs))
}

func attackDecay(p float64) float64 {
	if p < 0.1 {
		return p / 0.1
	}
	return 1.0 - (p-0.1)/0.9
}

func swell(p float64) float64 {
	switch {
	case p < 0.1:
		return p / 0.1
	case p > 0.7:
		return (1.0 - p) / 0.3
	default:
		return 1.0
	}
}

// Play plays a sound effect.
func (am *AudioManager) Play(sound SoundType) {
	if !am.enabled {
		return
	}

	data, ok := am.sounds[sound]
	if !ok {
		return
	}

	// A new player per play lets sounds overlap.
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// SetVolume sets the audio volume (0.0 to 1.0).
func (am *AudioManager) SetVolume(volume float64) {
	am.volume = math.Max(0, math.Min(1, volume))
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
