package ecs

// Event is a generic ECS event payload.
type Event struct {
	Type string
	Data any
}

const (
	// EventTargetReached is pushed when the player touches the level target.
	EventTargetReached = "target_reached"
)

// EventQueue holds the events of the current tick.
type EventQueue struct {
	items []Event
}

// Push adds an event.
func (q *EventQueue) Push(evt Event) {
	if q == nil {
		return
	}
	q.items = append(q.items, evt)
}

// Has reports whether an event of type typ is queued.
func (q *EventQueue) Has(typ string) bool {
	if q == nil {
		return false
	}
	for _, evt := range q.items {
		if evt.Type == typ {
			return true
		}
	}
	return false
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = nil
}
