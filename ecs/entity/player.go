package entity

import (
	"fmt"

	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
	"github.com/milk9111/ledgehop/prefabs"
)

// NewPlayerAt spawns the player with its feet at spawn and wires the
// controller's events into the world queue.
func NewPlayerAt(w *ecs.World, spec prefabs.PlayerSpec, phys physics.World, spawn movement.Vec2) (ecs.Entity, error) {
	if phys == nil {
		return 0, fmt.Errorf("player: nil physics world")
	}
	ctrl, err := movement.NewController(spec.Movement, physics.NewGuard("player", phys))
	if err != nil {
		return 0, fmt.Errorf("player: controller: %w", err)
	}

	size := movement.Vec2{X: spec.Body.Width, Y: spec.Body.Height}
	center := movement.Vec2{X: spawn.X, Y: spawn.Y + size.Y/2}
	phys.SpawnPlayer(center, size)

	player := ecs.CreateEntity(w)
	bridgeEvents(w, player, ctrl)

	if err := ecs.Add(w, player, component.PlayerTagComponent, &component.PlayerTag{}); err != nil {
		return 0, fmt.Errorf("player: add player tag: %w", err)
	}
	if err := ecs.Add(w, player, component.TransformComponent, &component.Transform{X: center.X, Y: center.Y}); err != nil {
		return 0, fmt.Errorf("player: add transform: %w", err)
	}
	if err := ecs.Add(w, player, component.InputComponent, &component.Input{}); err != nil {
		return 0, fmt.Errorf("player: add input: %w", err)
	}
	if err := ecs.Add(w, player, component.PlayerComponent, &component.Player{
		Controller: ctrl,
		Width:      size.X,
		Height:     size.Y,
	}); err != nil {
		return 0, fmt.Errorf("player: add player: %w", err)
	}
	if err := ecs.Add(w, player, component.SafeRespawnComponent, &component.SafeRespawn{
		X:           center.X,
		Y:           center.Y,
		Initialized: true,
	}); err != nil {
		return 0, fmt.Errorf("player: add safe respawn: %w", err)
	}
	if err := ecs.Add(w, player, component.SoundCuesComponent, &component.SoundCues{
		Jump:   spec.Sounds.Jump,
		Land:   spec.Sounds.Land,
		Dash:   spec.Sounds.Dash,
		Hazard: spec.Sounds.Hazard,
	}); err != nil {
		return 0, fmt.Errorf("player: add sound cues: %w", err)
	}
	return player, nil
}

func bridgeEvents(w *ecs.World, e ecs.Entity, ctrl *movement.Controller) {
	events := w.Events()
	ctrl.Events().OnJumped(func() {
		events.Push(ecs.Event{Type: ecs.EventJumped, Entity: e})
	})
	ctrl.Events().OnGroundedChanged(func(grounded bool) {
		events.Push(ecs.Event{Type: ecs.EventGroundedChanged, Entity: e, Data: grounded})
	})
	ctrl.Events().OnDashStarted(func() {
		events.Push(ecs.Event{Type: ecs.EventDashStarted, Entity: e})
	})
}
