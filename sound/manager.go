package sound

import (
	"fmt"
	"log"

	"github.com/milk9111/ledgehop/common"
)

// Player is one playing clip. *audio.Player satisfies it.
type Player interface {
	Play()
	Pause()
	Rewind() error
	IsPlaying() bool
	SetVolume(volume float64)
}

// Bank creates players for named clips.
type Bank interface {
	Music(name string, loop bool) (Player, error)
	SFX(name string) (Player, error)
}

const defaultMaxVoices = 8

// Manager owns the music channel and the one-shot effect voices.
type Manager struct {
	bank Bank

	music     Player
	musicName string
	musicVol  float64

	voices    []Player
	sfxVol    float64
	maxVoices int
}

func NewManager(bank Bank) *Manager {
	return &Manager{
		bank:      bank,
		musicVol:  1,
		sfxVol:    1,
		maxVoices: defaultMaxVoices,
	}
}

// PlayMusic replaces the current track.
func (m *Manager) PlayMusic(name string, loop bool) error {
	if m == nil || m.bank == nil {
		return nil
	}
	p, err := m.bank.Music(name, loop)
	if err != nil {
		return fmt.Errorf("sound: music %s: %w", name, err)
	}
	m.StopMusic()
	p.SetVolume(m.musicVol)
	p.Play()
	m.music = p
	m.musicName = name
	return nil
}

func (m *Manager) StopMusic() {
	if m == nil || m.music == nil {
		return
	}
	m.music.Pause()
	m.music = nil
	m.musicName = ""
}

func (m *Manager) CurrentMusic() string {
	if m == nil {
		return ""
	}
	return m.musicName
}

// PlaySFX starts a one-shot clip on a fresh voice. When every voice is busy
// the oldest one is cut.
func (m *Manager) PlaySFX(name string) error {
	if m == nil || m.bank == nil {
		return nil
	}
	m.prune()
	p, err := m.bank.SFX(name)
	if err != nil {
		return fmt.Errorf("sound: sfx %s: %w", name, err)
	}
	if len(m.voices) >= m.maxVoices {
		m.voices[0].Pause()
		m.voices = m.voices[1:]
	}
	p.SetVolume(m.sfxVol)
	p.Play()
	m.voices = append(m.voices, p)
	return nil
}

// Trigger plays an effect and logs failures instead of returning them.
func (m *Manager) Trigger(name string) {
	if err := m.PlaySFX(name); err != nil {
		log.Printf("sound: %v", err)
	}
}

func (m *Manager) SetMusicVolume(v float64) {
	if m == nil {
		return
	}
	m.musicVol = common.Clamp01(v)
	if m.music != nil {
		m.music.SetVolume(m.musicVol)
	}
}

func (m *Manager) SetSFXVolume(v float64) {
	if m == nil {
		return
	}
	m.sfxVol = common.Clamp01(v)
	for _, p := range m.voices {
		p.SetVolume(m.sfxVol)
	}
}

func (m *Manager) MusicVolume() float64 {
	if m == nil {
		return 0
	}
	return m.musicVol
}

func (m *Manager) SFXVolume() float64 {
	if m == nil {
		return 0
	}
	return m.sfxVol
}

// ActiveVoices reports the effect voices still playing.
func (m *Manager) ActiveVoices() int {
	if m == nil {
		return 0
	}
	m.prune()
	return len(m.voices)
}

func (m *Manager) prune() {
	live := m.voices[:0]
	for _, p := range m.voices {
		if p.IsPlaying() {
			live = append(live, p)
		}
	}
	for i := len(live); i < len(m.voices); i++ {
		m.voices[i] = nil
	}
	m.voices = live
}
