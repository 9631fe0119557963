package core

// EventContext carries the payload of a fired event.
type EventContext struct {
	// 64 bytes
	Data struct {
		I64 [2]int64
		F64 [2]float64

		I32 [4]int32
		U32 [4]uint32
	}
}

// System internal event codes. Application should use codes beyond 255.
type SystemEventCode int

const (
	// Resized/resolution changed from the host.
	/* Context usage:
	 * i32 width = data.Data.I32[0];
	 * i32 height = data.Data.I32[1];
	 */
	EVENT_CODE_RESIZED SystemEventCode = 0x08
)

// ListenerID identifies a registration so it can be removed later.
type ListenerID uint64

// Should return true if handled.
type FnOnEvent func(code SystemEventCode, sender interface{}, data EventContext) bool

type registeredEvent struct {
	id       ListenerID
	callback FnOnEvent
}

// EventBus dispatches events to the listeners registered for their code, in
// registration order. It is not safe for concurrent use; hosts fire events on
// the same thread that runs frame callbacks.
type EventBus struct {
	registered map[SystemEventCode][]*registeredEvent
	lastID     ListenerID
}

func NewEventBus() *EventBus {
	return &EventBus{
		registered: make(map[SystemEventCode][]*registeredEvent),
	}
}

// Register listens for events sent with the provided code and returns the
// handle needed to unregister. A nil callback is ignored and yields 0.
func (b *EventBus) Register(code SystemEventCode, onEvent FnOnEvent) ListenerID {
	if onEvent == nil {
		return 0
	}
	b.lastID++
	b.registered[code] = append(b.registered[code], &registeredEvent{
		id:       b.lastID,
		callback: onEvent,
	})
	return b.lastID
}

// Unregister stops the given listener from receiving events with the provided
// code. Returns false if no matching registration is found.
func (b *EventBus) Unregister(code SystemEventCode, id ListenerID) bool {
	events := b.registered[code]
	for i, e := range events {
		if e.id == id {
			b.registered[code] = append(events[:i:i], events[i+1:]...)
			return true
		}
	}
	// Not found.
	return false
}

// Fire sends an event to listeners of the given code. If a handler returns
// true, the event is considered handled and is not passed on to any more
// listeners. Returns true if handled.
func (b *EventBus) Fire(code SystemEventCode, sender interface{}, context EventContext) bool {
	// Copy so that handlers may unregister themselves while firing.
	events := append([]*registeredEvent(nil), b.registered[code]...)
	for _, e := range events {
		if e.callback(code, sender, context) {
			// Message has been handled, do not send to other listeners.
			return true
		}
	}
	return false
}

// Count returns how many listeners are registered for code.
func (b *EventBus) Count(code SystemEventCode) int {
	return len(b.registered[code])
}
