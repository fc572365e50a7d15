package system

import (
	"math"
	"testing"

	"github.com/milk9111/ledgehop/camera"
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/ecs/entity"
	"github.com/milk9111/ledgehop/levels"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"github.com/milk9111/ledgehop/prefabs"
)

const dt = 1.0 / 64

type fixture struct {
	w      *ecs.World
	phys   physics.World
	player ecs.Entity
	input  *component.Input
	fixed  *ecs.Scheduler
	frame  *ecs.Scheduler
	sfx    *sfxRecorder
}

type sfxRecorder struct {
	played []string
}

func (r *sfxRecorder) Trigger(name string) { r.played = append(r.played, name) }

func testPlayerSpec() prefabs.PlayerSpec {
	return prefabs.PlayerSpec{
		Name:     "player",
		Body:     prefabs.BodyComponentSpec{Width: 0.8, Height: 1.6},
		Movement: movement.DefaultConfig(),
		Sounds:   prefabs.SoundCueSpec{Jump: "jump", Land: "land", Dash: "dash", Hazard: "hurt"},
	}
}

var backends = []string{physics.BackendChipmunk, physics.BackendResolv}

// eachBackend runs fn once per physics backend.
func eachBackend(t *testing.T, fn func(t *testing.T, backend string)) {
	t.Helper()
	for _, backend := range backends {
		t.Run(backend, func(t *testing.T) {
			fn(t, backend)
		})
	}
}

func newFixture(t *testing.T, backend string, rows ...string) *fixture {
	t.Helper()
	lvl, err := levels.FromRows(rows...)
	if err != nil {
		t.Fatalf("level: %v", err)
	}
	w := ecs.NewWorld()
	width, height := lvl.Size()
	phys, err := physics.NewWorld(backend, width, height)
	if err != nil {
		t.Fatalf("physics: %v", err)
	}
	if err := entity.LoadLevelToWorld(w, lvl, phys); err != nil {
		t.Fatalf("load level: %v", err)
	}
	player, err := entity.NewPlayerAt(w, testPlayerSpec(), phys, lvl.Spawn())
	if err != nil {
		t.Fatalf("player: %v", err)
	}

	f := &fixture{w: w, phys: phys, player: player, input: &component.Input{}, sfx: &sfxRecorder{}}
	in := &InputSystem{Sample: func() component.Input {
		cur := *f.input
		f.input.JumpPressed = false
		f.input.DashPressed = false
		return cur
	}}
	f.fixed = ecs.NewScheduler(
		NewPlayerControllerSystem(phys, dt),
		NewPhysicsSystem(phys, dt),
		NewRespawnSystem(phys),
		NewGoalSystem(),
	)
	f.frame = ecs.NewScheduler(in, NewAudioSystem(f.sfx))
	return f
}

// tick runs one frame of input followed by n fixed steps, then the frame
// systems, and returns the drained events.
func (f *fixture) tick(n int) []ecs.Event {
	f.frame.Systems()[0].Update(f.w)
	for i := 0; i < n; i++ {
		f.fixed.Update(f.w)
	}
	for _, s := range f.frame.Systems()[1:] {
		s.Update(f.w)
	}
	return f.w.Events().Drain()
}

func (f *fixture) controller(t *testing.T) *movement.Controller {
	t.Helper()
	p, ok := ecs.Get(f.w, f.player, component.PlayerComponent)
	if !ok {
		t.Fatalf("player component missing")
	}
	return p.Controller
}

func (f *fixture) transform(t *testing.T) *component.Transform {
	t.Helper()
	tr, ok := ecs.Get(f.w, f.player, component.TransformComponent)
	if !ok {
		t.Fatalf("transform missing")
	}
	return tr
}

func countEvents(evts []ecs.Event, typ ecs.EventType) int {
	n := 0
	for _, e := range evts {
		if e.Type == typ {
			n++
		}
	}
	return n
}

var flatRoom = []string{
	"#............#",
	"#............#",
	"#............#",
	"#.P..........#",
	"##############",
}

func TestPlayerSettlesOnFloor(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend, flatRoom...)
		evts := f.tick(4)

		if !f.controller(t).State().IsGrounded() {
			t.Fatalf("player should be grounded on spawn")
		}
		if got := f.transform(t).Y; math.Abs(got-1.8) > 1e-6 {
			t.Fatalf("expected center y 1.8, got %v", got)
		}
		if countEvents(evts, ecs.EventGroundedChanged) != 1 {
			t.Fatalf("expected one grounded event, got %+v", evts)
		}
		if len(f.sfx.played) != 1 || f.sfx.played[0] != "land" {
			t.Fatalf("expected land cue, got %v", f.sfx.played)
		}
	})
}

func TestJumpPressTravelsThroughInput(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend, flatRoom...)
		f.tick(2)
		f.sfx.played = nil

		f.input.Jump = true
		f.input.JumpPressed = true
		evts := f.tick(3)

		if countEvents(evts, ecs.EventJumped) != 1 {
			t.Fatalf("one press should jump once, got %+v", evts)
		}
		if f.controller(t).State().IsGrounded() {
			t.Fatalf("player should have left the ground")
		}
		if f.transform(t).Y <= 1.8 {
			t.Fatalf("player should be rising, y=%v", f.transform(t).Y)
		}
		if len(f.sfx.played) == 0 || f.sfx.played[0] != "jump" {
			t.Fatalf("expected jump cue, got %v", f.sfx.played)
		}
		in, _ := ecs.Get(f.w, f.player, component.InputComponent)
		if !in.Jump {
			t.Fatalf("input component should hold the sample")
		}
	})
}

func TestHazardRespawns(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend,
			"#......#",
			"#.P....#",
			"#.^....#",
			"########",
		)
		spawnY := f.transform(t).Y

		var evts []ecs.Event
		for i := 0; i < 60 && countEvents(evts, ecs.EventRespawned) == 0; i++ {
			evts = append(evts, f.tick(1)...)
		}
		if countEvents(evts, ecs.EventHazardHit) != 1 || countEvents(evts, ecs.EventRespawned) != 1 {
			t.Fatalf("expected one hit and one respawn, got %+v", evts)
		}
		p, _ := ecs.Get(f.w, f.player, component.PlayerComponent)
		if p.Deaths != 1 {
			t.Fatalf("expected 1 death, got %d", p.Deaths)
		}
		if got := f.transform(t).Y; got != spawnY {
			t.Fatalf("expected respawn at %v, got %v", spawnY, got)
		}
		if ecs.Has(f.w, f.player, component.RespawnRequestComponent) {
			t.Fatalf("respawn request should be consumed")
		}
		if f.controller(t).Velocity() != (movement.Vec2{}) {
			t.Fatalf("controller should be reset")
		}
		found := false
		for _, s := range f.sfx.played {
			found = found || s == "hurt"
		}
		if !found {
			t.Fatalf("expected hazard cue, got %v", f.sfx.played)
		}
	})
}

func TestSafeRespawnTracksGround(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend, flatRoom...)
		f.input.MoveX = 1
		f.tick(16)
		safe, _ := ecs.Get(f.w, f.player, component.SafeRespawnComponent)
		if safe.X <= 2.5 || safe.X != f.transform(t).X {
			t.Fatalf("safe point should follow the grounded player, got %v vs %v", safe.X, f.transform(t).X)
		}
	})
}

func TestHeldInputStaysFlushAgainstWall(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend, flatRoom...)
		f.input.MoveX = 1

		// two seconds of fixed steps pushing into the right wall, whose inner
		// face is at x=13
		for i := 0; i < 128; i++ {
			f.tick(1)
			body := f.phys.PlayerBody()
			if right := body.Center.X + body.Size.X/2; right > 13+1e-6 {
				t.Fatalf("tick %d: player sank into the wall, right edge=%v", i, right)
			}
		}

		body := f.phys.PlayerBody()
		if right := body.Center.X + body.Size.X/2; math.Abs(right-13) > 1e-6 {
			t.Fatalf("expected right edge flush at 13, got %v", right)
		}
		if got := f.transform(t).Y; math.Abs(got-1.8) > 1e-6 {
			t.Fatalf("expected center y 1.8 on the floor, got %v", got)
		}
		if !f.controller(t).State().IsGrounded() {
			t.Fatalf("player should still be grounded, mode=%v", f.controller(t).Mode())
		}
		if v := f.controller(t).Velocity(); v.X != 0 {
			t.Fatalf("resolved velocity into the wall should be zero, got %v", v)
		}
	})
}

func TestGoalCompletesOnce(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend,
			"#.......#",
			"#.P...G.#",
			"#########",
		)
		f.input.MoveX = 1
		var evts []ecs.Event
		for i := 0; i < 120; i++ {
			evts = append(evts, f.tick(1)...)
		}
		if n := countEvents(evts, ecs.EventLevelCompleted); n != 1 {
			t.Fatalf("expected exactly one completion, got %d", n)
		}
		ge, _ := ecs.First(f.w, component.GoalComponent)
		g, _ := ecs.Get(f.w, ge, component.GoalComponent)
		if !g.Reached {
			t.Fatalf("goal should be marked reached")
		}
	})
}

type fakeMusic struct {
	current string
	plays   int
}

func (m *fakeMusic) PlayMusic(name string, loop bool) error {
	m.current = name
	m.plays++
	return nil
}

func (m *fakeMusic) CurrentMusic() string { return m.current }

func TestMusicRequests(t *testing.T) {
	w := ecs.NewWorld()
	music := &fakeMusic{}
	sys := NewMusicSystem(music)

	if err := entity.RequestMusic(w, "theme", true); err != nil {
		t.Fatalf("request: %v", err)
	}
	sys.Update(w)
	if music.plays != 1 || music.current != "theme" {
		t.Fatalf("expected theme to start, got %+v", music)
	}
	if _, ok := ecs.First(w, component.MusicRequestComponent); ok {
		t.Fatalf("request should be destroyed")
	}

	_ = entity.RequestMusic(w, "theme", true)
	sys.Update(w)
	if music.plays != 1 {
		t.Fatalf("same track should not restart")
	}
}

func TestCameraFollowsPlayer(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend, flatRoom...)
		cfg := camera.DefaultConfig()
		cfg.ViewWidth, cfg.ViewHeight = 4, 3
		if _, err := entity.NewCameraAt(f.w, cfg, "player", movement.Vec2{X: 2, Y: 2}); err != nil {
			t.Fatalf("camera: %v", err)
		}
		cams := NewCameraSystem(dt)

		f.input.MoveX = 1
		for i := 0; i < 60; i++ {
			f.tick(1)
			cams.Update(f.w)
		}
		ce, _ := ecs.First(f.w, component.CameraTagComponent)
		ct, _ := ecs.Get(f.w, ce, component.TransformComponent)
		if ct.X <= 2 {
			t.Fatalf("camera should move right with the player, x=%v", ct.X)
		}
		if ct.X > 14-cfg.ViewWidth/2+1e-9 {
			t.Fatalf("camera should stay inside the level, x=%v", ct.X)
		}
	})
}

func TestInputForwardsPresses(t *testing.T) {
	eachBackend(t, func(t *testing.T, backend string) {
		f := newFixture(t, backend, flatRoom...)
		f.input.JumpPressed = true
		f.input.DashPressed = true
		f.frame.Systems()[0].Update(f.w)
		jump, dash := f.controller(t).Intents().Pending()
		if jump != 1 || dash != 1 {
			t.Fatalf("expected one queued press each, got %d %d", jump, dash)
		}
		f.frame.Systems()[0].Update(f.w)
		jump, dash = f.controller(t).Intents().Pending()
		if jump != 1 || dash != 1 {
			t.Fatalf("held buttons must not queue again, got %d %d", jump, dash)
		}
	})
}
