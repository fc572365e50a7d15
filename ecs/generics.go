package ecs

import (
	"fmt"

	"github.com/milk9111/ledgehop/ecs/component"
)

func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s", component.ErrEntityNotAlive, e)
	}
	w.store(kind.ID(), true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.store(handle.Kind().ID(), false).Remove(e)
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	return w.store(handle.Kind().ID(), false).Has(e)
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	value, ok := w.store(handle.Kind().ID(), false).Get(e).(*T)
	return value, ok
}

// First returns the first entity holding the component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	s := w.store(handle.Kind().ID(), false)
	if s.Len() == 0 {
		return 0, false
	}
	return s.Entities()[0], true
}

// ForEach visits every entity holding the component. fn may not add or
// remove components of the same kind.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s := w.store(handle.Kind().ID(), false)
	if s == nil {
		return
	}
	for i, e := range s.dense {
		if v, ok := s.values[i].(*T); ok {
			fn(e, v)
		}
	}
}

// ForEach2 visits entities holding both components, iterating the smaller
// store.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	sa := w.store(ha.Kind().ID(), false)
	sb := w.store(hb.Kind().ID(), false)
	if sa.Len() == 0 || sb.Len() == 0 {
		return
	}
	driver := sa
	if sb.Len() < sa.Len() {
		driver = sb
	}
	for _, e := range append([]Entity(nil), driver.dense...) {
		a, okA := sa.Get(e).(*A)
		b, okB := sb.Get(e).(*B)
		if okA && okB {
			fn(e, a, b)
		}
	}
}
