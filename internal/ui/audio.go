package ui

import (
	"math"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// SoundType represents different sound effects.
type SoundType int

const (
	SoundSelect SoundType = iota
	SoundMove
	SoundCapture
	SoundCheck
	SoundGameEnd
)

const (
	sampleRate = 44100
)

// envelope maps progress through a sound (0..1) to a gain.
type envelope func(progress float64) float64

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

// generateSounds creates procedural sounds for each event type.
func (am *AudioManager) generateSounds() {
	// Select: soft high tick
	am.sounds[SoundSelect] = synth(0.04, 0.15, decay(60), 880)

	// Move: short wooden click
	am.sounds[SoundMove] = synth(0.08, 0.3, decay(30), 440)

	// Capture: lower and louder
	am.sounds[SoundCapture] = synth(0.12, 0.5, decay(25), 330, 495)

	// Check: alert tone
	am.sounds[SoundCheck] = synth(0.15, 0.4, attackDecay(0.1), 880)

	// Game end: C major chord
	am.sounds[SoundGameEnd] = synth(0.6, 0.5, attackHoldRelease(0.1, 0.7), 261.63, 329.63, 392.00)
}

// synth renders the average of sine waves at freqs as 16-bit stereo PCM.
func synth(duration, amplitude float64, env envelope, freqs ...float64) []byte {
	samples := int(sampleRate * duration)
	data := make([]byte, samples*4) // stereo 16-bit

	for i := 0; i < samples; i++ {
		t := float64(i) / sampleRate
		sample := 0.0
		for _, freq := range freqs {
			sample += math.Sin(2 * math.Pi * freq * t)
		}
		sample = sample / float64(len(freqs)) * env(t/duration) * amplitude

		val := int16(sample * 32767)
		data[i*4] = byte(val)
		data[i*4+1] = byte(val >> 8)
		data[i*4+2] = byte(val)
		data[i*4+3] = byte(val >> 8)
	}
	return data
}

// decay returns an exponential decay envelope.
func decay(rate float64) envelope {
	return func(p float64) float64 {
		return math.Exp(-p * rate / 10)
	}
}

// attackDecay ramps up over the first attack share, then falls linearly.
func attackDecay(attack float64) envelope {
	return func(p float64) float64 {
		if p < attack {
			return p / attack
		}
		return 1.0 - (p-attack)/(1.0-attack)
	}
}

// attackHoldRelease ramps up, holds, then fades out from release on.
func attackHoldRelease(attack, release float64) envelope {
	return func(p float64) float64 {
		switch {
		case p < attack:
			return p / attack
		case p > release:
			return (1.0 - p) / (1.0 - release)
		default:
			return 1.0
		}
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

	// Create a new player for each play (allows overlapping sounds)
	player := am.context.NewPlayerFromBytes(data)
	player.SetVolume(am.volume)
	player.Play()
}

// SetEnabled enables or disables audio.
func (am *AudioManager) SetEnabled(enabled bool) {
	am.enabled = enabled
}

// IsEnabled returns whether audio is enabled.
func (am *AudioManager) IsEnabled() bool {
	return am.enabled
}
