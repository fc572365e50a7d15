package system

import (
	"log"

	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
)

// MusicPlayer switches the music track. *sound.Manager satisfies it.
type MusicPlayer interface {
	PlayMusic(name string, loop bool) error
	CurrentMusic() string
}

// MusicSystem applies MusicRequest entities and destroys them. A request for
// the track already playing is dropped so level reloads keep the music going.
type MusicSystem struct {
	music MusicPlayer
}

func NewMusicSystem(music MusicPlayer) *MusicSystem {
	return &MusicSystem{music: music}
}

func (s *MusicSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	var requests []ecs.Entity
	ecs.ForEach(w, component.MusicRequestComponent, func(e ecs.Entity, _ *component.MusicRequest) {
		requests = append(requests, e)
	})
	for _, e := range requests {
		req, _ := ecs.Get(w, e, component.MusicRequestComponent)
		if s.music != nil && req != nil && req.Track != s.music.CurrentMusic() {
			if err := s.music.PlayMusic(req.Track, req.Loop); err != nil {
				log.Printf("music: %v", err)
			}
		}
		ecs.DestroyEntity(w, e)
	}
}
