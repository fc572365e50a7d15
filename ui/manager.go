package ui

import (
	"errors"
	"fmt"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/milk9111/ledgehop/save"
	"github.com/milk9111/ledgehop/sound"
)

const (
	MusicKey = "MUSIC_ON"
	SoundKey = "SOUND_ON"
)

var ErrUnknownScreen = errors.New("ui: screen not registered")

// Manager owns the registered screens and the navigation history. The top of
// the history is the current screen.
type Manager struct {
	screens map[ScreenType]*Screen
	order   []ScreenType
	history []ScreenType

	store *save.Store
	sound *sound.Manager

	soundOn bool
	musicOn bool

	// OnRootBack runs when Back is requested with nothing left to go back to.
	OnRootBack func(current ScreenType)
	// OnSettingsChanged runs after a toggle changes so menus can relabel.
	OnSettingsChanged func()
}

// NewManager registers a screen for each entry of cfg. store and snd may be
// nil; toggles then only track their state.
func NewManager(cfg Config, store *save.Store, snd *sound.Manager) (*Manager, error) {
	m := &Manager{
		screens: make(map[ScreenType]*Screen),
		store:   store,
		sound:   snd,
		soundOn: true,
		musicOn: true,
	}
	for _, sc := range cfg.Screens {
		s, err := NewScreen(sc)
		if err != nil {
			return nil, err
		}
		m.Register(s)
	}
	return m, nil
}

// Register adds s, replacing any screen of the same type.
func (m *Manager) Register(s *Screen) {
	if s == nil {
		return
	}
	if _, ok := m.screens[s.Type]; !ok {
		m.order = append(m.order, s.Type)
	}
	m.screens[s.Type] = s
}

func (m *Manager) Screen(t ScreenType) (*Screen, bool) {
	s, ok := m.screens[t]
	return s, ok
}

func (m *Manager) lookup(t ScreenType) (*Screen, error) {
	s, ok := m.screens[t]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrUnknownScreen, t)
	}
	return s, nil
}

// Current returns the screen on top of the history.
func (m *Manager) Current() (ScreenType, bool) {
	if len(m.history) == 0 {
		return 0, false
	}
	return m.history[len(m.history)-1], true
}

func (m *Manager) History() []ScreenType {
	out := make([]ScreenType, len(m.history))
	copy(out, m.history)
	return out
}

// TransitionTo pushes t unless it is already current, then shows it.
func (m *Manager) TransitionTo(t ScreenType) error {
	s, err := m.lookup(t)
	if err != nil {
		return err
	}
	if cur, ok := m.Current(); !ok || cur != t {
		m.history = append(m.history, t)
	}
	s.show()
	return nil
}

// Back hides the current screen and reveals the one beneath it. With a
// single screen left it calls OnRootBack instead and reports false.
func (m *Manager) Back() bool {
	if len(m.history) < 2 {
		if cur, ok := m.Current(); ok && m.OnRootBack != nil {
			m.OnRootBack(cur)
		}
		return false
	}
	top := m.history[len(m.history)-1]
	m.history = m.history[:len(m.history)-1]
	if s, ok := m.screens[top]; ok {
		s.hide()
	}
	prev := m.history[len(m.history)-1]
	if s, ok := m.screens[prev]; ok && (!s.active || s.hiding) {
		s.show()
	}
	return true
}

// Show animates t in without touching the history.
func (m *Manager) Show(t ScreenType) error {
	s, err := m.lookup(t)
	if err != nil {
		return err
	}
	s.show()
	return nil
}

// Hide animates t out and drops it from the history.
func (m *Manager) Hide(t ScreenType) error {
	s, err := m.lookup(t)
	if err != nil {
		return err
	}
	s.hide()
	m.removeFromHistory(t)
	return nil
}

func (m *Manager) removeFromHistory(t ScreenType) {
	kept := m.history[:0]
	for _, h := range m.history {
		if h != t {
			kept = append(kept, h)
		}
	}
	m.history = kept
}

// ShowOrHide transitions to t when open is true and hides it otherwise.
func (m *Manager) ShowOrHide(t ScreenType, open bool) error {
	if open {
		return m.TransitionTo(t)
	}
	return m.Hide(t)
}

// Clear hides every screen and empties the history.
func (m *Manager) Clear() {
	for _, s := range m.screens {
		s.hide()
	}
	m.history = m.history[:0]
}

func (m *Manager) SoundOn() bool { return m.soundOn }
func (m *Manager) MusicOn() bool { return m.musicOn }

// SetSound toggles effects, persists the choice and applies the volume.
func (m *Manager) SetSound(on bool) {
	m.soundOn = on
	m.persist(SoundKey, on)
	m.applyVolumes()
}

// SetMusic toggles music, persists the choice and applies the volume.
func (m *Manager) SetMusic(on bool) {
	m.musicOn = on
	m.persist(MusicKey, on)
	m.applyVolumes()
}

// ApplySavedSettings reads both toggles from the store. A key that was never
// saved counts as on.
func (m *Manager) ApplySavedSettings() {
	if m.store != nil {
		m.soundOn = m.savedToggle(SoundKey)
		m.musicOn = m.savedToggle(MusicKey)
	}
	m.applyVolumes()
}

func (m *Manager) savedToggle(key string) bool {
	if !m.store.KeyExists(key) {
		return true
	}
	return m.store.Int(key) > 0
}

func (m *Manager) persist(key string, on bool) {
	if m.store == nil {
		return
	}
	v := 0
	if on {
		v = 1
	}
	if err := m.store.SaveInt(key, v); err != nil {
		log.Printf("ui: save %s: %v", key, err)
	}
}

func (m *Manager) applyVolumes() {
	if m.sound != nil {
		m.sound.SetSFXVolume(volume(m.soundOn))
		m.sound.SetMusicVolume(volume(m.musicOn))
	}
	if m.OnSettingsChanged != nil {
		m.OnSettingsChanged()
	}
}

func volume(on bool) float64 {
	if on {
		return 1
	}
	return 0
}

// Blocking reports whether a screen other than the gameplay HUD is up.
func (m *Manager) Blocking() bool {
	for t, s := range m.screens {
		if t != Gameplay && s.active {
			return true
		}
	}
	return false
}

// Update advances every tween and feeds input to the current screen.
func (m *Manager) Update(dt float64) {
	for _, t := range m.order {
		m.screens[t].update(dt)
	}
	if cur, ok := m.Current(); ok {
		if s := m.screens[cur]; s.UI != nil && s.Interactive() {
			s.UI.Update()
		}
	}
}

// Draw renders active screens in history order, current last.
func (m *Manager) Draw(dst *ebiten.Image) {
	drawn := make(map[ScreenType]bool, len(m.history))
	for _, t := range m.order {
		if !m.inHistory(t) {
			m.screens[t].draw(dst)
			drawn[t] = true
		}
	}
	for _, t := range m.history {
		if !drawn[t] {
			m.screens[t].draw(dst)
			drawn[t] = true
		}
	}
}

func (m *Manager) inHistory(t ScreenType) bool {
	for _, h := range m.history {
		if h == t {
			return true
		}
	}
	return false
}
