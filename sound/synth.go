package sound

import (
	"math"
	"math/rand"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
)

// SampleRate is shared by the synthesizer and the ebiten audio context.
const SampleRate beep.SampleRate = 44100

type Wave int

const (
	WaveSine Wave = iota
	WaveSquare
	WaveSaw
	WaveNoise
)

// tone is an oscillator whose frequency glides linearly from `from` to `to`
// over its duration.
type tone struct {
	from, to float64
	wave     Wave
	phase    float64
	pos      int
	total    int
	rng      *rand.Rand
}

func newTone(from, to float64, d time.Duration, wave Wave) *tone {
	return &tone{
		from:  from,
		to:    to,
		wave:  wave,
		total: SampleRate.N(d),
		rng:   rand.New(rand.NewSource(1)),
	}
}

func (t *tone) Stream(samples [][2]float64) (int, bool) {
	if t.pos >= t.total {
		return 0, false
	}
	for i := range samples {
		if t.pos >= t.total {
			return i, true
		}
		var v float64
		switch t.wave {
		case WaveSine:
			v = math.Sin(2 * math.Pi * t.phase)
		case WaveSquare:
			v = 1
			if t.phase >= 0.5 {
				v = -1
			}
		case WaveSaw:
			v = 2 * (t.phase - 0.5)
		case WaveNoise:
			v = t.rng.Float64()*2 - 1
		}
		samples[i][0], samples[i][1] = v, v

		freq := t.from + (t.to-t.from)*float64(t.pos)/float64(t.total)
		t.phase += freq / float64(SampleRate)
		t.phase -= math.Floor(t.phase)
		t.pos++
	}
	return len(samples), true
}

func (t *tone) Err() error { return nil }

// fade applies a linear attack and release to a finite streamer.
type fade struct {
	s                      beep.Streamer
	attack, release, total int
	pos                    int
}

func newFade(s beep.Streamer, total, attack, release time.Duration) *fade {
	return &fade{
		s:       s,
		attack:  SampleRate.N(attack),
		release: SampleRate.N(release),
		total:   SampleRate.N(total),
	}
}

func (f *fade) Stream(samples [][2]float64) (int, bool) {
	n, ok := f.s.Stream(samples)
	for i := 0; i < n; i++ {
		gain := 1.0
		if f.attack > 0 && f.pos < f.attack {
			gain = float64(f.pos) / float64(f.attack)
		}
		if rest := f.total - f.pos; f.release > 0 && rest < f.release {
			gain = math.Max(0, float64(rest)/float64(f.release))
		}
		samples[i][0] *= gain
		samples[i][1] *= gain
		f.pos++
	}
	return n, ok
}

func (f *fade) Err() error { return f.s.Err() }

func gain(s beep.Streamer, g float64) beep.Streamer {
	if g <= 0 {
		return &effects.Volume{Streamer: s, Base: 2, Silent: true}
	}
	return &effects.Volume{Streamer: s, Base: 2, Volume: math.Log2(g)}
}

func note(freq float64, d time.Duration, wave Wave, g float64) beep.Streamer {
	return gain(newFade(newTone(freq, freq, d, wave), d, 5*time.Millisecond, d/3), g)
}

// Clips synthesizes the built-in sound set.
func Clips() map[string]beep.Streamer {
	jump := 120 * time.Millisecond
	land := 70 * time.Millisecond
	dash := 160 * time.Millisecond
	return map[string]beep.Streamer{
		"jump": gain(newFade(newTone(330, 660, jump, WaveSquare), jump, 2*time.Millisecond, 60*time.Millisecond), 0.25),
		"land": gain(newFade(newTone(0, 0, land, WaveNoise), land, time.Millisecond, 50*time.Millisecond), 0.3),
		"dash": beep.Mix(
			gain(newFade(newTone(0, 0, dash, WaveNoise), dash, 20*time.Millisecond, 100*time.Millisecond), 0.2),
			gain(newFade(newTone(220, 110, dash, WaveSaw), dash, 10*time.Millisecond, 100*time.Millisecond), 0.15),
		),
		"ui":    note(880, 50*time.Millisecond, WaveSine, 0.3),
		"theme": theme(),
	}
}

func theme() beep.Streamer {
	const beat = 180 * time.Millisecond
	freqs := []float64{261.63, 329.63, 392.00, 523.25, 392.00, 329.63, 293.66, 349.23, 440.00, 349.23}
	notes := make([]beep.Streamer, 0, len(freqs))
	for _, f := range freqs {
		notes = append(notes, note(f, beat, WaveSine, 0.2))
	}
	return beep.Seq(notes...)
}

// Render drains s into 16-bit little-endian stereo PCM, the format ebiten's
// audio context plays.
func Render(s beep.Streamer) []byte {
	var out []byte
	buf := make([][2]float64, 512)
	for {
		n, ok := s.Stream(buf)
		for _, frame := range buf[:n] {
			for _, ch := range frame {
				v := int16(math.Max(-1, math.Min(1, ch)) * math.MaxInt16)
				out = append(out, byte(v), byte(v>>8))
			}
		}
		if !ok || n == 0 {
			return out
		}
	}
}
