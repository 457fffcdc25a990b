package utils

type Event struct {
	Event string      `json:"event"`
	Data  interface{} `json:"data"`
}

// EventBus carries application events to the realtime feed. Publish
// never blocks: when the buffer is full the event is dropped.
type EventBus struct {
	events chan Event
}

func NewEventBus() *EventBus {
	return &EventBus{
		events: make(chan Event, 100),
	}
}

func (eb *EventBus) Publish(event string, data interface{}) {
	select {
	case eb.events <- Event{Event: event, Data: data}:
	default:
	}
}

func (eb *EventBus) Events() <-chan Event {
	return eb.events
}
