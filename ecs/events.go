package ecs

// EventType names a world event.
type EventType string

const (
	EventJumped          EventType = "jumped"
	EventGroundedChanged EventType = "grounded_changed"
	EventDashStarted     EventType = "dash_started"
	EventHazardHit       EventType = "hazard_hit"
	EventRespawned       EventType = "respawned"
	EventLevelCompleted  EventType = "level_completed"
)

// Event is a world event payload.
type Event struct {
	Type   EventType
	Entity Entity
	Data   any
}

// EventQueue is a FIFO queue. Producers push during fixed steps, frame
// systems read it with Peek and the game loop drains it once per frame.
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

func (q *EventQueue) Len() int {
	if q == nil {
		return 0
	}
	return len(q.items)
}

// Peek returns the queued events without removing them. The slice must not
// be modified.
func (q *EventQueue) Peek() []Event {
	if q == nil {
		return nil
	}
	return q.items
}

// Drain returns all events and clears the queue.
func (q *EventQueue) Drain() []Event {
	if q == nil || len(q.items) == 0 {
		return nil
	}
	out := q.items
	q.items = nil
	return out
}
