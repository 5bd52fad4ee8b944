//go:build js && wasm

package dom

import (
	"syscall/js"

	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

// Subscribe implements viewstate.Source by registering DOM listeners. The
// returned func removes them and releases the callbacks.
func (d *Document) Subscribe(kind viewstate.EventKind, fn func(viewstate.Event)) func() {
	switch kind {
	case viewstate.EventScroll:
		return listen(d.win, "scroll", func(js.Value, js.Value) {
			fn(viewstate.Event{Kind: kind})
		})
	case viewstate.EventPointerMove:
		return listen(d.doc, "mousemove", func(_, ev js.Value) {
			fn(viewstate.Event{Kind: kind, Pos: viewstate.Point{
				X: ev.Get("clientX").Float(),
				Y: ev.Get("clientY").Float(),
			}})
		})
	case viewstate.EventPointerLeave:
		return listen(d.doc.Get("documentElement"), "mouseleave", func(js.Value, js.Value) {
			fn(viewstate.Event{Kind: kind})
		})
	case viewstate.EventPointerEnter:
		return listen(d.doc.Get("documentElement"), "mouseenter", func(js.Value, js.Value) {
			fn(viewstate.Event{Kind: kind})
		})
	case viewstate.EventMenuButton:
		return listen(d.doc.Call("getElementById", menuToggleID), "click", func(js.Value, js.Value) {
			fn(viewstate.Event{Kind: kind})
		})
	case viewstate.EventNavLink:
		var unsubs []func()
		for _, el := range d.queryAll(navLinkSelector) {
			unsubs = append(unsubs, listen(el, "click", func(target, _ js.Value) {
				s, err := viewstate.ParseSection(target.Get("dataset").Get("navLink").String())
				if err != nil {
					logger().WithError(err).Debug("nav link without a section")
					return
				}
				fn(viewstate.Event{Kind: kind, Section: s})
			}))
		}
		return func() {
			for _, u := range unsubs {
				u()
			}
		}
	}
	logger().WithField("kind", kind).Warn("no DOM source for event kind")
	return func() {}
}

// listen attaches handler to target for one event type. A missing target
// yields a no-op subscription.
func listen(target js.Value, event string, handler func(this, ev js.Value)) func() {
	if !present(target) {
		return func() {}
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		ev := js.Undefined()
		if len(args) > 0 {
			ev = args[0]
		}
		handler(this, ev)
		return nil
	})
	target.Call("addEventListener", event, cb)
	released := false
	return func() {
		if released {
			return
		}
		released = true
		target.Call("removeEventListener", event, cb)
		cb.Release()
	}
}
