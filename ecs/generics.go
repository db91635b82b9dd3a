package ecs

import "github.com/milk9111/timberjack/ecs/component"

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *sparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if s, ok := w.stores[kind.ID()]; ok {
		typed, _ := s.(*sparseSet[T])
		return typed
	}
	if !create {
		return nil
	}
	s := newSparseSet[T]()
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any existing component of the same kind.
func Add[T any](w *World, e Entity, handle component.ComponentHandle[T], value *T) error {
	kind := handle.Kind()
	if !kind.Valid() {
		return component.ErrInvalidComponentKind
	}
	if value == nil {
		return component.ErrNilComponent
	}
	if !IsAlive(w, e) {
		return component.ErrEntityNotAlive
	}
	storeFor(w, kind, true).set(e, value)
	return nil
}

func Get[T any](w *World, e Entity, handle component.ComponentHandle[T]) (*T, bool) {
	if !IsAlive(w, e) {
		return nil, false
	}
	s := storeFor(w, handle.Kind(), false)
	if s == nil {
		return nil, false
	}
	return s.get(e.id())
}

func Has[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	_, ok := Get(w, e, handle)
	return ok
}

func Remove[T any](w *World, e Entity, handle component.ComponentHandle[T]) bool {
	if !IsAlive(w, e) {
		return false
	}
	s := storeFor(w, handle.Kind(), false)
	if s == nil {
		return false
	}
	return s.remove(e.id())
}

// ForEach calls fn for every entity holding the component. fn may add or
// remove components and destroy entities.
func ForEach[T any](w *World, handle component.ComponentHandle[T], fn func(Entity, *T)) {
	s := storeFor(w, handle.Kind(), false)
	if s == nil || s.len() == 0 {
		return
	}
	owners := append([]Entity(nil), s.owners...)
	for _, e := range owners {
		v, ok := Get(w, e, handle)
		if !ok {
			continue
		}
		fn(e, v)
	}
}

// ForEach2 visits entities holding both components.
func ForEach2[A, B any](w *World, ha component.ComponentHandle[A], hb component.ComponentHandle[B], fn func(Entity, *A, *B)) {
	ForEach(w, ha, func(e Entity, a *A) {
		b, ok := Get(w, e, hb)
		if !ok {
			return
		}
		fn(e, a, b)
	})
}

// First returns any entity holding the component.
func First[T any](w *World, handle component.ComponentHandle[T]) (Entity, bool) {
	s := storeFor(w, handle.Kind(), false)
	if s == nil || s.len() == 0 {
		return 0, false
	}
	return s.owners[0], true
}

// Count returns how many entities hold the component.
func Count[T any](w *World, handle component.ComponentHandle[T]) int {
	s := storeFor(w, handle.Kind(), false)
	if s == nil {
		return 0
	}
	return s.len()
}
