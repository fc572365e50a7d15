package sound

import (
	"bytes"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2/audio"
)

// EbitenBank plays pre-rendered PCM clips through an ebiten audio context.
type EbitenBank struct {
	ctx   *audio.Context
	clips map[string][]byte
}

// NewEbitenBank renders every synthesized clip. The context's sample rate
// must match SampleRate.
func NewEbitenBank(ctx *audio.Context) *EbitenBank {
	b := &EbitenBank{ctx: ctx, clips: make(map[string][]byte)}
	for name, s := range Clips() {
		b.clips[name] = Render(s)
	}
	return b
}

func (b *EbitenBank) pcm(name string) ([]byte, error) {
	if b == nil || b.ctx == nil {
		return nil, fmt.Errorf("no audio context")
	}
	data, ok := b.clips[name]
	if !ok || len(data) == 0 {
		return nil, fmt.Errorf("unknown clip %q", name)
	}
	return data, nil
}

func (b *EbitenBank) Music(name string, loop bool) (Player, error) {
	data, err := b.pcm(name)
	if err != nil {
		return nil, err
	}
	if !loop {
		return b.ctx.NewPlayerFromBytes(data), nil
	}
	stream := audio.NewInfiniteLoop(bytes.NewReader(data), int64(len(data)))
	p, err := b.ctx.NewPlayer(stream)
	if err != nil {
		return nil, err
	}
	return p, nil
}

func (b *EbitenBank) SFX(name string) (Player, error) {
	data, err := b.pcm(name)
	if err != nil {
		return nil, err
	}
	return b.ctx.NewPlayerFromBytes(data), nil
}
