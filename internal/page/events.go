package page

import "sync"

// EventType is the kind of UI event.
type EventType string

const (
	Click   EventType = "click"
	KeyDown EventType = "keydown"
)

// DocumentTarget is the target of events not aimed at a specific element,
// such as key presses.
const DocumentTarget = "document"

// Event is a single UI event. Target is the id of the element the event
// landed on, or the class name of a collection (nav links) together with the
// element's position in Index.
type Event struct {
	Type   EventType `json:"type" form:"type"`
	Target string    `json:"target" form:"target"`
	Index  int       `json:"index" form:"index"`
	Key    string    `json:"key" form:"key"`
}

// Handler reacts to an event.
type Handler func(Event)

// EventSource is anything a controller can register handlers on.
type EventSource interface {
	On(typ EventType, target string, h Handler)
}

type binding struct {
	typ    EventType
	target string
}

// Bus is an EventSource that delivers dispatched events to the handlers bound
// to the exact target. Events do not bubble: a click on a child of the modal
// is not a click on the modal.
type Bus struct {
	mu       sync.RWMutex
	handlers map[binding][]Handler
}

// NewBus returns an empty bus.
func NewBus() *Bus {
	return &Bus{handlers: make(map[binding][]Handler)}
}

// On registers h for events of typ on target.
func (b *Bus) On(typ EventType, target string, h Handler) {
	if target == "" {
		target = DocumentTarget
	}
	b.mu.Lock()
	defer b.mu.Unlock()
	k := binding{typ: typ, target: target}
	b.handlers[k] = append(b.handlers[k], h)
}

// Dispatch runs the handlers bound to ev and reports whether there were any.
func (b *Bus) Dispatch(ev Event) bool {
	if ev.Target == "" {
		ev.Target = DocumentTarget
	}
	b.mu.RLock()
	hs := append([]Handler(nil), b.handlers[binding{typ: ev.Type, target: ev.Target}]...)
	b.mu.RUnlock()

	for _, h := range hs {
		h(ev)
	}
	return len(hs) > 0
}
