package audio

import (
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
)

// Speaker plays effects through beep's speaker. It is the sound backend for
// hosts without an ebiten audio context and must not be combined with
// Player in one process.
type Speaker struct {
	mixer *beep.Mixer
	// volume is a base-2 exponent; 0 leaves effects untouched.
	volume float64
}

func NewSpeaker(volume float64) (*Speaker, error) {
	if err := speaker.Init(SampleRate, SampleRate.N(100*time.Millisecond)); err != nil {
		return nil, err
	}
	s := &Speaker{mixer: &beep.Mixer{}, volume: volume}
	speaker.Play(s.mixer)
	return s, nil
}

func (s *Speaker) Play(e Effect) {
	if s == nil {
		return
	}
	st := Streamer(e)
	if st == nil {
		return
	}
	speaker.Lock()
	s.mixer.Add(quieter(st, s.volume))
	speaker.Unlock()
}

func (s *Speaker) Close() {
	if s == nil {
		return
	}
	speaker.Clear()
	speaker.Close()
}
