package glimpse

// EventQueue collects events from native callbacks until the
// render loop drains them. It is not safe for concurrent use, callbacks
// and the loop must run on the same thread.
type EventQueue struct {
	events []Event
}

func (q *EventQueue) Push(ev Event) {
	q.events = append(q.events, ev)
}

func (q *EventQueue) Len() int {
	return len(q.events)
}

// Drain returns all queued events in order and empties the queue.
func (q *EventQueue) Drain() []Event {
	if len(q.events) == 0 {
		return nil
	}

	events := q.events
	q.events = nil
	return events
}
