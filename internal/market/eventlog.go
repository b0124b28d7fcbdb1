package market

import (
	"iter"
	"slices"
	"time"

	"github.com/theirongolddev/automarket/internal/model"
)

// EventLog is the ordered record of successful mutating operations in a session.
type EventLog struct {
	events []model.Event
	now    func() time.Time
}

// NewEventLog returns an empty log stamped with the wall clock.
func NewEventLog() *EventLog {
	return &EventLog{now: time.Now}
}

// Record appends an event with the next sequence number.
func (l *EventLog) Record(description string) model.Event {
	ev := model.Event{
		Seq:         len(l.events) + 1,
		At:          l.now(),
		Description: description,
	}
	l.events = append(l.events, ev)
	return ev
}

// All yields events in insertion order over a snapshot.
func (l *EventLog) All() iter.Seq[model.Event] {
	return func(yield func(model.Event) bool) {
		for _, ev := range slices.Clone(l.events) {
			if !yield(ev) {
				return
			}
		}
	}
}

// Len returns the number of recorded events.
func (l *EventLog) Len() int {
	return len(l.events)
}

// Since returns a copy of the events after the first n.
func (l *EventLog) Since(n int) []model.Event {
	if n < 0 {
		n = 0
	}
	if n >= len(l.events) {
		return nil
	}
	return slices.Clone(l.events[n:])
}
