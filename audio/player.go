package audio

import (
	"log"

	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
)

// Player plays banked effects through ebiten's audio context.
type Player struct {
	ctx    *ebaudio.Context
	bank   Bank
	volume float64
}

// NewPlayer creates the audio context. Ebiten allows one context per
// process, so call it once.
func NewPlayer(bank Bank, volume float64) *Player {
	return &Player{
		ctx:    ebaudio.NewContext(int(SampleRate)),
		bank:   bank,
		volume: volume,
	}
}

func (p *Player) Play(e Effect) {
	if p == nil || p.ctx == nil {
		return
	}
	pcm, ok := p.bank[e]
	if !ok || len(pcm) == 0 {
		log.Printf("audio: no samples for %q", e)
		return
	}
	player := p.ctx.NewPlayerFromBytes(pcm)
	player.SetVolume(p.volume)
	player.Play()
}
