package sim

// VTimeInSec is a point in simulated time, in seconds.
type VTimeInSec float64

// An Event is something that happens to one Handler at one point in time.
type Event interface {
	Time() VTimeInSec
	Handler() Handler

	// IsSecondary reports whether the event waits until every primary event
	// of the same time is handled.
	IsSecondary() bool
}

// EventBase holds the fields shared by all events. ID is unique within a
// simulation when the sequential ID generator is used.
type EventBase struct {
	ID        string
	time      VTimeInSec
	handler   Handler
	secondary bool
}

func makeEventBase(
	t VTimeInSec,
	handler Handler,
	secondary bool,
) EventBase {
	return EventBase{
		ID:        GetIDGenerator().Generate(),
		time:      t,
		handler:   handler,
		secondary: secondary,
	}
}

// Time returns when the event happens.
func (e EventBase) Time() VTimeInSec {
	return e.time
}

// Handler returns the handler of the event.
func (e EventBase) Handler() Handler {
	return e.handler
}

// IsSecondary reports whether the event is secondary.
func (e EventBase) IsSecondary() bool {
	return e.secondary
}

// A Handler handles the events scheduled for it. An error fails the event
// and stops the engine run.
type Handler interface {
	Handle(e Event) error
}
