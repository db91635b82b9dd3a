// Package audio synthesizes the game's sound effects with beep and renders
// them to 16-bit little-endian stereo PCM, the format ebiten's audio players
// consume.
package audio

import (
	"encoding/binary"
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

const SampleRate beep.SampleRate = 44100

type Effect string

const (
	EffectChop Effect = "chop"
	EffectMiss Effect = "miss"
	EffectCoin Effect = "coin"
	EffectJump Effect = "jump"
	EffectBoss Effect = "boss"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// sweep is a decaying oscillator whose frequency glides linearly from
// startFreq to endFreq over its duration.
type sweep struct {
	startFreq float64
	endFreq   float64
	wave      WaveType
	phase     float64
	position  int
	duration  int
	rng       *rand.Rand
}

func newSweep(startFreq, endFreq float64, d time.Duration, wave WaveType, seed int64) *sweep {
	return &sweep{
		startFreq: startFreq,
		endFreq:   endFreq,
		wave:      wave,
		duration:  SampleRate.N(d),
		rng:       rand.New(rand.NewSource(seed)),
	}
}

func (s *sweep) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if s.position >= s.duration {
			return i, i > 0
		}
		t := float64(s.position) / float64(s.duration)
		freq := s.startFreq + (s.endFreq-s.startFreq)*t

		var val float64
		switch s.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * s.phase)
		case WaveSquare:
			if s.phase < 0.5 {
				val = 1
			} else {
				val = -1
			}
		case WaveSaw:
			val = 2 * (s.phase - 0.5)
		case WaveNoise:
			val = s.rng.Float64()*2 - 1
		}
		// linear decay keeps the tail click-free
		val *= 1 - t

		samples[i][0] = val
		samples[i][1] = val

		s.phase += freq / float64(SampleRate)
		s.phase -= math.Floor(s.phase)
		s.position++
	}
	return len(samples), true
}

func (s *sweep) Err() error { return nil }

func quieter(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// Streamer builds a fresh streamer for the effect.
func Streamer(e Effect) beep.Streamer {
	switch e {
	case EffectChop:
		return beep.Mix(
			quieter(newSweep(0, 0, 90*time.Millisecond, WaveNoise, 1), -1.5),
			newSweep(140, 60, 120*time.Millisecond, WaveSine, 2),
		)
	case EffectMiss:
		return quieter(newSweep(320, 140, 180*time.Millisecond, WaveSquare, 3), -2)
	case EffectCoin:
		return beep.Seq(
			quieter(newSweep(880, 880, 60*time.Millisecond, WaveSine, 4), -1),
			quieter(newSweep(1320, 1320, 90*time.Millisecond, WaveSine, 5), -1),
		)
	case EffectJump:
		return quieter(newSweep(300, 620, 100*time.Millisecond, WaveSine, 6), -1.5)
	case EffectBoss:
		return beep.Seq(
			newSweep(90, 50, 350*time.Millisecond, WaveSaw, 7),
			beep.Silence(SampleRate.N(40*time.Millisecond)),
			quieter(newSweep(660, 990, 200*time.Millisecond, WaveSquare, 8), -2),
		)
	default:
		return nil
	}
}

// Render drains s into 16-bit little-endian interleaved stereo PCM.
func Render(s beep.Streamer) []byte {
	if s == nil {
		return nil
	}
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, v := range frame {
				out = binary.LittleEndian.AppendUint16(out, uint16(toInt16(v)))
			}
		}
		if !ok {
			return out
		}
	}
}

func toInt16(v float64) int16 {
	if v > 1 {
		v = 1
	}
	if v < -1 {
		v = -1
	}
	return int16(math.Round(v * math.MaxInt16))
}

// Bank holds the rendered PCM for every effect.
type Bank map[Effect][]byte

func NewBank() Bank {
	b := Bank{}
	for _, e := range []Effect{EffectChop, EffectMiss, EffectCoin, EffectJump, EffectBoss} {
		b[e] = Render(Streamer(e))
	}
	return b
}
