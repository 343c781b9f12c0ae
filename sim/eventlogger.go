package sim

import (
	"log"
	"reflect"
)

// LogHookBase gives a hook a logger to write to.
type LogHookBase struct {
	*log.Logger
}

// EventLogger is a hook on an engine that prints every event it handles.
type EventLogger struct {
	LogHookBase
}

// NewEventLogger creates an EventLogger that writes to logger.
func NewEventLogger(logger *log.Logger) *EventLogger {
	h := new(EventLogger)
	h.Logger = logger

	return h
}

// Func writes the event information into the logger. Failed events are
// logged after they are handled, together with the error.
func (h *EventLogger) Func(ctx HookCtx) {
	evt, ok := ctx.Item.(Event)
	if !ok {
		return
	}

	switch ctx.Pos {
	case HookPosBeforeEvent:
		h.logEvent(evt)
	case HookPosAfterEvent:
		if err, failed := ctx.Detail.(error); failed && err != nil {
			h.Logger.Printf("%.10f, %s failed: %v",
				evt.Time(), reflect.TypeOf(evt), err)
		}
	}
}

func (h *EventLogger) logEvent(evt Event) {
	comp, ok := evt.Handler().(Named)
	if ok {
		h.Logger.Printf("%.10f, %s -> %s",
			evt.Time(), reflect.TypeOf(evt), comp.Name())
		return
	}

	h.Logger.Printf("%.10f, %s", evt.Time(), reflect.TypeOf(evt))
}
