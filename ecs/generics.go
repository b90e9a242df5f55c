package ecs

import (
	"errors"
	"fmt"

	"github.com/milk9111/hopper/ecs/component"
)

var (
	ErrEntityNotAlive = errors.New("ecs: entity not alive")
	ErrNilComponent   = errors.New("ecs: nil component")
	ErrInvalidKind    = errors.New("ecs: unregistered component kind")
)

func storeFor[T any](w *World, kind component.ComponentKind[T], create bool) *SparseSet[T] {
	if w == nil || !kind.Valid() {
		return nil
	}
	if w.stores == nil {
		w.stores = make(map[component.ComponentID]componentStore)
	}
	if s, ok := w.stores[kind.ID()]; ok {
		return s.(*SparseSet[T])
	}
	if !create {
		return nil
	}
	s := &SparseSet[T]{}
	w.stores[kind.ID()] = s
	return s
}

// Add attaches value to e, replacing any previous value of the same kind.
func Add[T any](w *World, e Entity, kind component.ComponentKind[T], value *T) error {
	if !kind.Valid() {
		return ErrInvalidKind
	}
	if value == nil {
		return fmt.Errorf("%w: %s", ErrNilComponent, kind.Name())
	}
	if !IsAlive(w, e) {
		return fmt.Errorf("%w: %s on %d", ErrEntityNotAlive, kind.Name(), e)
	}
	storeFor(w, kind, true).Set(e, value)
	return nil
}

func Remove[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	if s == nil {
		return false
	}
	return s.remove(e)
}

func Has[T any](w *World, e Entity, kind component.ComponentKind[T]) bool {
	s := storeFor(w, kind, false)
	return s != nil && IsAlive(w, e) && s.Has(e)
}

func Get[T any](w *World, e Entity, kind component.ComponentKind[T]) (*T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || !IsAlive(w, e) {
		return nil, false
	}
	v := s.Get(e)
	return v, v != nil
}

// First returns the first entity carrying kind in store order.
func First[T any](w *World, kind component.ComponentKind[T]) (Entity, *T, bool) {
	s := storeFor(w, kind, false)
	if s == nil || len(s.dense) == 0 {
		return 0, nil, false
	}
	return s.dense[0], s.values[0], true
}

// ForEach visits every entity carrying kind. The callback must not add or
// remove components of that kind.
func ForEach[T any](w *World, kind component.ComponentKind[T], fn func(Entity, *T)) {
	s := storeFor(w, kind, false)
	if s == nil {
		return
	}
	for i, e := range s.dense {
		fn(e, s.values[i])
	}
}

func ForEach2[A, B any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], fn func(Entity, *A, *B)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	if sa == nil || sb == nil {
		return
	}
	for i, e := range sa.dense {
		b := sb.Get(e)
		if b == nil {
			continue
		}
		fn(e, sa.values[i], b)
	}
}

func ForEach3[A, B, C any](w *World, ka component.ComponentKind[A], kb component.ComponentKind[B], kc component.ComponentKind[C], fn func(Entity, *A, *B, *C)) {
	sa := storeFor(w, ka, false)
	sb := storeFor(w, kb, false)
	sc := storeFor(w, kc, false)
	if sa == nil || sb == nil || sc == nil {
		return
	}
	for i, e := range sa.dense {
		b := sb.Get(e)
		c := sc.Get(e)
		if b == nil || c == nil {
			continue
		}
		fn(e, sa.values[i], b, c)
	}
}
