package system

import (
	"github.com/milk9111/ledgehop/ecs"
	"github.com/milk9111/ledgehop/ecs/component"
	"github.com/milk9111/ledgehop/movement"
	"github.com/milk9111/ledgehop/physics"
)

// GoalSystem completes the level the first time the player overlaps a goal.
type GoalSystem struct{}

func NewGoalSystem() *GoalSystem {
	return &GoalSystem{}
}

func (s *GoalSystem) Update(w *ecs.World) {
	if w == nil {
		return
	}
	player, ok := ecs.First(w, component.PlayerComponent)
	if !ok {
		return
	}
	p, _ := ecs.Get(w, player, component.PlayerComponent)
	t, ok := ecs.Get(w, player, component.TransformComponent)
	if !ok {
		return
	}
	box := physics.RectAround(movement.Vec2{X: t.X, Y: t.Y}, movement.Vec2{X: p.Width, Y: p.Height})

	ecs.ForEach(w, component.GoalComponent, func(e ecs.Entity, g *component.Goal) {
		if g.Reached || !g.Bounds.Intersects(box) {
			return
		}
		g.Reached = true
		w.Events().Push(ecs.Event{Type: ecs.EventLevelCompleted, Entity: player, Data: e})
	})
}
