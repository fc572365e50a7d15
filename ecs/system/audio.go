package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
)

// Trigger plays a named one-shot clip. *sound.Manager satisfies it.
type Trigger interface {
	Trigger(name string)
}

// AudioSystem plays the sound cue of each queued movement event.
type AudioSystem struct {
	sfx Trigger
}

func NewAudioSystem(sfx Trigger) *AudioSystem {
	return &AudioSystem{sfx: sfx}
}

func (s *AudioSystem) Update(w *ecs.World) {
	if w == nil || s.sfx == nil {
		return
	}
	for _, evt := range w.Events().Peek() {
		cues, ok := ecs.Get(w, evt.Entity, component.SoundCuesComponent)
		if !ok {
			continue
		}
		var name string
		switch evt.Type {
		case ecs.EventJumped:
			name = cues.Jump
		case ecs.EventGroundedChanged:
			if grounded, _ := evt.Data.(bool); grounded {
				name = cues.Land
			}
		case ecs.EventDashStarted:
			name = cues.Dash
		case ecs.EventHazardHit:
			name = cues.Hazard
		}
		if name != "" {
			s.sfx.Trigger(name)
		}
	}
}
