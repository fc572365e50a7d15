package physics

import (
	"math"
	"testing"

	"github.com/milk9111/ledgehop/movement"
)

var (
	floor = Rect{X: 0, Y: 0, Width: 10, Height: 1, Layer: movement.LayerGround | movement.LayerWall}
	wall  = Rect{X: 6, Y: 1, Width: 1, Height: 9, Layer: movement.LayerWall}
	spike = Rect{X: 1, Y: 1, Width: 1, Height: 1, Layer: movement.LayerHazard}

	playerSize = movement.Vec2{X: 1, Y: 2}
	down       = movement.Vec2{Y: -1}
	right      = movement.Vec2{X: 1}
	left       = movement.Vec2{X: -1}
)

func backends(t *testing.T) map[string]World {
	t.Helper()
	out := map[string]World{}
	for _, name := range []string{BackendChipmunk, BackendResolv} {
		w, err := NewWorld(name, 10, 10)
		if err != nil {
			t.Fatalf("NewWorld(%s): %v", name, err)
		}
		w.SetStatics([]Rect{floor, wall, spike})
		out[name] = w
	}
	return out
}

func TestNewWorldUnknownBackend(t *testing.T) {
	if _, err := NewWorld("box2d", 1, 1); err == nil {
		t.Fatalf("expected error for unknown backend")
	}
}

func TestCastShape(t *testing.T) {
	cases := []struct {
		name   string
		origin movement.Vec2
		dir    movement.Vec2
		dist   float64
		mask   movement.LayerMask
		want   bool
	}{
		{"standing_on_floor", movement.Vec2{X: 3, Y: 2}, down, 0.1, movement.LayerGround, true},
		{"hovering_above_floor", movement.Vec2{X: 3, Y: 2.5}, down, 0.1, movement.LayerGround, false},
		{"floor_not_on_mask", movement.Vec2{X: 3, Y: 2}, down, 0.1, movement.LayerHazard, false},
		{"wall_to_the_right", movement.Vec2{X: 5.4, Y: 5}, right, 0.2, movement.LayerWall, true},
		{"wall_out_of_reach", movement.Vec2{X: 5, Y: 5}, right, 0.2, movement.LayerWall, false},
		{"nothing_to_the_left", movement.Vec2{X: 5.4, Y: 5}, left, 0.2, movement.LayerWall, false},
		{"wall_not_ground", movement.Vec2{X: 5.4, Y: 5}, right, 0.2, movement.LayerGround, false},
		{"player_layer_ignored", movement.Vec2{X: 3, Y: 2}, down, 0.1, movement.LayerPlayer, false},
		{"hazards_are_not_contact", movement.Vec2{X: 1.5, Y: 3}, down, 0.1, movement.LayerHazard, false},
	}
	for name, w := range backends(t) {
		for _, tc := range cases {
			t.Run(name+"/"+tc.name, func(t *testing.T) {
				got := w.CastShape(tc.origin, playerSize, tc.dir, tc.dist, tc.mask)
				if got != tc.want {
					t.Fatalf("expected %v, got %v", tc.want, got)
				}
			})
		}
	}
}

func TestStepLandsOnFloor(t *testing.T) {
	for name, w := range backends(t) {
		t.Run(name, func(t *testing.T) {
			w.SpawnPlayer(movement.Vec2{X: 3, Y: 4}, playerSize)
			for i := 0; i < 120; i++ {
				w.SetPlayerVelocity(movement.Vec2{Y: -10})
				w.Step(1.0 / 60.0)
			}
			body := w.PlayerBody()
			bottom := body.Center.Y - body.Size.Y/2
			if bottom < 0.8 || bottom > 1.05 {
				t.Fatalf("expected player resting on the floor, bottom=%g", bottom)
			}
			if !w.CastShape(body.Center, body.Size, down, 0.1, movement.LayerGround) {
				t.Fatalf("expected ground contact after landing")
			}
		})
	}
}

func TestStepStopsAtWall(t *testing.T) {
	for name, w := range backends(t) {
		t.Run(name, func(t *testing.T) {
			w.SpawnPlayer(movement.Vec2{X: 4, Y: 2}, playerSize)
			for i := 0; i < 60; i++ {
				w.SetPlayerVelocity(movement.Vec2{X: 10})
				w.Step(1.0 / 60.0)
			}
			body := w.PlayerBody()
			if right := body.Center.X + body.Size.X/2; right > 6.2 {
				t.Fatalf("player passed through the wall, right edge=%g", right)
			}
		})
	}
}

func TestHeldInputStaysFlush(t *testing.T) {
	const dt = 1.0 / 64
	for name, w := range backends(t) {
		t.Run(name, func(t *testing.T) {
			ctrl, err := movement.NewController(movement.DefaultConfig(), w)
			if err != nil {
				t.Fatalf("controller: %v", err)
			}
			w.SpawnPlayer(movement.Vec2{X: 3, Y: 2}, playerSize)
			ctrl.Intents().SetAxis(1, 0)
			for i := 0; i < 128; i++ {
				w.SetPlayerVelocity(ctrl.Step(dt, w.PlayerBody()))
				w.Step(dt)
				ctrl.SyncVelocity(w.PlayerVelocity())

				body := w.PlayerBody()
				if right := body.Center.X + body.Size.X/2; right > 6+1e-6 {
					t.Fatalf("step %d: player sank into the wall, right edge=%g", i, right)
				}
				if bottom := body.Center.Y - body.Size.Y/2; bottom < 1-1e-6 {
					t.Fatalf("step %d: player sank into the floor, bottom=%g", i, bottom)
				}
			}
			body := w.PlayerBody()
			if right := body.Center.X + body.Size.X/2; math.Abs(right-6) > 1e-6 {
				t.Fatalf("expected right edge flush at 6, got %g", right)
			}
			if bottom := body.Center.Y - body.Size.Y/2; math.Abs(bottom-1) > 1e-6 {
				t.Fatalf("expected bottom flush at 1, got %g", bottom)
			}
			if !ctrl.State().IsGrounded() {
				t.Fatalf("expected the player to stay grounded, mode=%v", ctrl.Mode())
			}
			if v := w.PlayerVelocity(); v.X != 0 {
				t.Fatalf("velocity into the wall should be cleared, got %v", v)
			}
		})
	}
}

func TestHazardHit(t *testing.T) {
	for name, w := range backends(t) {
		t.Run(name, func(t *testing.T) {
			w.SpawnPlayer(movement.Vec2{X: 1.5, Y: 2.5}, playerSize)
			w.SetPlayerVelocity(movement.Vec2{Y: -1})
			w.Step(1.0 / 60.0)
			if !w.TakeHazardHit() {
				t.Fatalf("expected hazard hit")
			}
			if w.TakeHazardHit() {
				t.Fatalf("hazard hit should be consumed")
			}
		})
	}
}

func TestGuardRecoversPanics(t *testing.T) {
	g := NewGuard("test", movement.CasterFunc(func(_, _, _ movement.Vec2, _ float64, _ movement.LayerMask) bool {
		panic("broken oracle")
	}))
	if g.CastShape(movement.Vec2{}, playerSize, down, 0.1, movement.LayerGround) {
		t.Fatalf("expected no contact from a failing oracle")
	}
	if g.Failures() != 1 {
		t.Fatalf("expected 1 failure, got %d", g.Failures())
	}

	ok := NewGuard("ok", movement.CasterFunc(func(_, _, _ movement.Vec2, _ float64, _ movement.LayerMask) bool {
		return true
	}))
	if !ok.CastShape(movement.Vec2{}, playerSize, down, 0.1, movement.LayerGround) {
		t.Fatalf("expected the wrapped result")
	}
}
