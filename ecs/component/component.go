package component

import "sync/atomic"

// ComponentID is the registry key of a component kind.
type ComponentID uint32

var lastID atomic.Uint32

// ComponentKind names one component type. Every call to NewComponent yields a
// distinct kind, even for the same T; the zero kind is never registered.
type ComponentKind[T any] struct {
	id   ComponentID
	name string
}

func NewComponent[T any](name string) ComponentKind[T] {
	return ComponentKind[T]{id: ComponentID(lastID.Add(1)), name: name}
}

func (k ComponentKind[T]) ID() ComponentID { return k.id }

func (k ComponentKind[T]) Name() string { return k.name }

func (k ComponentKind[T]) Valid() bool { return k.id != 0 }
