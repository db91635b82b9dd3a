package system

import (
	"github.com/milk9111/timberjack/audio"
	"github.com/milk9111/timberjack/ecs"
)

// SoundPlayer plays a synthesized effect.
type SoundPlayer interface {
	Play(e audio.Effect)
}

// AudioSystem turns gameplay events into sound effects.
type AudioSystem struct {
	player SoundPlayer
}

func NewAudioSystem(player SoundPlayer) *AudioSystem {
	return &AudioSystem{player: player}
}

func (a *AudioSystem) Update(w *ecs.World) {
	if w == nil || a.player == nil {
		return
	}

	for _, evt := range w.Events().Items() {
		switch evt.Kind {
		case ecs.EventCutSucceeded:
			a.player.Play(audio.EffectChop)
			if evt.Amount > 0 {
				a.player.Play(audio.EffectCoin)
			}
		case ecs.EventCutMissed:
			a.player.Play(audio.EffectMiss)
		case ecs.EventJumped:
			a.player.Play(audio.EffectJump)
		case ecs.EventBossSpawned, ecs.EventBossDefeated:
			a.player.Play(audio.EffectBoss)
		case ecs.EventPurchased:
			a.player.Play(audio.EffectCoin)
		}
	}
}
