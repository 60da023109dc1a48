package shape

// EventType identifies what happened to a shape.
type EventType int

const (
	EventCreated EventType = iota
	EventMutated
	EventRejected
)

func (t EventType) String() string {
	switch t {
	case EventCreated:
		return "created"
	case EventMutated:
		return "mutated"
	case EventRejected:
		return "rejected"
	default:
		return "unknown"
	}
}

// Event describes a construction, a committed mutation, or rejected input.
type Event struct {
	Type  EventType
	Kind  Kind
	Name  string // name of the shape at the time of the event
	Field string // empty for EventCreated

	Old any // previous value, EventMutated only
	New any // committed or rejected value

	Description string           // EventCreated only
	Err         *ValidationError // EventRejected only
}

// Observer receives shape events. Observers must not call back into the
// shape that emitted the event.
type Observer interface {
	OnEvent(Event)
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func(Event)

// OnEvent calls f(e).
func (f ObserverFunc) OnEvent(e Event) { f(e) }
