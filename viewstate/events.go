package viewstate

import (
	"slices"
	"sync"
)

// EventKind names an input notification the controller listens for.
type EventKind int

const (
	EventScroll EventKind = iota
	EventPointerMove
	EventPointerLeave
	EventPointerEnter
	EventMenuButton
	EventNavLink
)

var eventKindNames = map[EventKind]string{
	EventScroll:       "scroll",
	EventPointerMove:  "pointermove",
	EventPointerLeave: "pointerleave",
	EventPointerEnter: "pointerenter",
	EventMenuButton:   "menubutton",
	EventNavLink:      "navlink",
}

func (k EventKind) String() string {
	if name, ok := eventKindNames[k]; ok {
		return name
	}
	return "unknown"
}

// EventKinds lists every kind in subscription order.
var EventKinds = []EventKind{
	EventScroll, EventPointerMove, EventPointerLeave, EventPointerEnter, EventMenuButton, EventNavLink,
}

// Event is one input notification. Pos is set for pointer moves and Section
// for nav link clicks.
type Event struct {
	Kind    EventKind
	Pos     Point
	Section Section
}

// Source delivers events to subscribers. The returned func releases the
// subscription.
type Source interface {
	Subscribe(kind EventKind, fn func(Event)) (unsubscribe func())
}

// Dispatcher is an in-process Source. Handlers run synchronously on the
// emitting goroutine, in subscription order.
type Dispatcher struct {
	mu     sync.Mutex
	nextID int
	subs   map[EventKind]map[int]func(Event)
}

func NewDispatcher() *Dispatcher {
	return &Dispatcher{subs: make(map[EventKind]map[int]func(Event))}
}

func (d *Dispatcher) Subscribe(kind EventKind, fn func(Event)) func() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.nextID++
	id := d.nextID
	if d.subs[kind] == nil {
		d.subs[kind] = make(map[int]func(Event))
	}
	d.subs[kind][id] = fn
	var once sync.Once
	return func() {
		once.Do(func() {
			d.mu.Lock()
			defer d.mu.Unlock()
			delete(d.subs[kind], id)
		})
	}
}

// Emit delivers ev to every current subscriber of its kind.
func (d *Dispatcher) Emit(ev Event) {
	d.mu.Lock()
	ids := make([]int, 0, len(d.subs[ev.Kind]))
	for id := range d.subs[ev.Kind] {
		ids = append(ids, id)
	}
	handlers := make([]func(Event), 0, len(ids))
	slices.Sort(ids)
	for _, id := range ids {
		handlers = append(handlers, d.subs[ev.Kind][id])
	}
	d.mu.Unlock()

	for _, fn := range handlers {
		fn(ev)
	}
}

// Subscribers counts live subscriptions across all kinds.
func (d *Dispatcher) Subscribers() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	n := 0
	for _, m := range d.subs {
		n += len(m)
	}
	return n
}
