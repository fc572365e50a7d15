package sound

import (
	"errors"
	"testing"
)

type fakePlayer struct {
	name    string
	playing bool
	volume  float64
}

func (p *fakePlayer) Play()               { p.playing = true }
func (p *fakePlayer) Pause()              { p.playing = false }
func (p *fakePlayer) Rewind() error       { return nil }
func (p *fakePlayer) IsPlaying() bool     { return p.playing }
func (p *fakePlayer) SetVolume(v float64) { p.volume = v }

type fakeBank struct {
	made []*fakePlayer
}

func (b *fakeBank) create(name string) (Player, error) {
	if name == "missing" {
		return nil, errors.New("unknown clip")
	}
	p := &fakePlayer{name: name}
	b.made = append(b.made, p)
	return p, nil
}

func (b *fakeBank) Music(name string, _ bool) (Player, error) { return b.create(name) }
func (b *fakeBank) SFX(name string) (Player, error)           { return b.create(name) }

func TestManagerMusic(t *testing.T) {
	bank := &fakeBank{}
	m := NewManager(bank)
	m.SetMusicVolume(0.5)

	if err := m.PlayMusic("theme", true); err != nil {
		t.Fatalf("PlayMusic: %v", err)
	}
	first := bank.made[0]
	if !first.playing || first.volume != 0.5 {
		t.Fatalf("expected playing at 0.5, got %+v", first)
	}

	if err := m.PlayMusic("boss", true); err != nil {
		t.Fatalf("PlayMusic: %v", err)
	}
	if first.playing {
		t.Fatalf("previous track should stop")
	}
	if m.CurrentMusic() != "boss" {
		t.Fatalf("unexpected current track %q", m.CurrentMusic())
	}

	m.SetMusicVolume(3)
	if bank.made[1].volume != 1 {
		t.Fatalf("volume should clamp and apply to the live track, got %g", bank.made[1].volume)
	}

	if err := m.PlayMusic("missing", true); err == nil {
		t.Fatalf("expected error for unknown clip")
	}
	if m.CurrentMusic() != "boss" {
		t.Fatalf("failed load must keep the current track")
	}
}

func TestManagerSFX(t *testing.T) {
	bank := &fakeBank{}
	m := NewManager(bank)
	m.SetSFXVolume(0)

	for i := 0; i < defaultMaxVoices+2; i++ {
		if err := m.PlaySFX("jump"); err != nil {
			t.Fatalf("PlaySFX: %v", err)
		}
	}
	if got := m.ActiveVoices(); got != defaultMaxVoices {
		t.Fatalf("expected %d voices, got %d", defaultMaxVoices, got)
	}
	if bank.made[0].playing || bank.made[1].playing {
		t.Fatalf("oldest voices should be cut")
	}
	if bank.made[2].volume != 0 {
		t.Fatalf("muted effects should play at volume 0")
	}

	m.SetSFXVolume(1)
	if bank.made[len(bank.made)-1].volume != 1 {
		t.Fatalf("volume change should reach live voices")
	}

	bank.made[len(bank.made)-1].Pause()
	if got := m.ActiveVoices(); got != defaultMaxVoices-1 {
		t.Fatalf("finished voices should be pruned, got %d", got)
	}
}

func TestRenderProducesStereoPCM(t *testing.T) {
	clips := Clips()
	for _, name := range []string{"jump", "land", "dash", "ui", "theme"} {
		s, ok := clips[name]
		if !ok {
			t.Fatalf("missing clip %s", name)
		}
		pcm := Render(s)
		if len(pcm) == 0 || len(pcm)%4 != 0 {
			t.Fatalf("%s: expected whole stereo 16-bit frames, got %d bytes", name, len(pcm))
		}
	}
	jump := Render(newTone(440, 440, 0, WaveSine))
	if len(jump) != 0 {
		t.Fatalf("zero-length tone should render nothing")
	}
}
