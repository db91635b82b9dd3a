package ecs

// EventKind identifies gameplay events.
type EventKind string

const (
	EventCutStarted   EventKind = "cut_started"
	EventCutSucceeded EventKind = "cut_succeeded"
	EventCutMissed    EventKind = "cut_missed"
	EventBossSpawned  EventKind = "boss_spawned"
	EventBossDefeated EventKind = "boss_defeated"
	EventJumped       EventKind = "jumped"
	EventPurchased    EventKind = "purchased"
)

// Event is published by a system and visible to every system that runs
// later in the same frame.
type Event struct {
	Kind   EventKind
	Entity Entity
	X, Y   float64
	Amount int
	Name   string
}

// EventQueue is a simple FIFO queue.
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

// Items returns the events published so far this frame.
func (q *EventQueue) Items() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

func (q *EventQueue) flush() {
	if q == nil {
		return
	}
	q.items = q.items[:0]
}
