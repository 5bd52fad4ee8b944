//go:build js && wasm

// Package dom binds the view-state controller to a browser document through
// syscall/js. The page markup comes from the server's index template.
package dom

import (
	"strconv"
	"sync"
	"syscall/js"

	"github.com/sirupsen/logrus"

	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

const (
	cardSelector     = ".project-card"
	dotSelector      = ".cursor-dot"
	outlineSelector  = ".cursor-outline"
	navSelector      = "[data-nav]"
	navLinkSelector  = "[data-nav-link]"
	menuToggleID     = "menu-toggle"
	mobileMenuID     = "mobile-menu"
	trailClass       = "trail"
	hiddenCursorCls  = "cursor-hidden"
	activeNavClass   = "text-blue-400"
	inactiveNavClass = "text-gray-300"
)

// Document adapts the live DOM to every collaborator the controller needs:
// section layout, follower graphics, the trail sink, card lookup and the
// event source.
type Document struct {
	win js.Value
	doc js.Value

	mu    sync.Mutex
	marks map[viewstate.MarkID]js.Value
}

func New() *Document {
	return &Document{
		win:   js.Global(),
		doc:   js.Global().Get("document"),
		marks: make(map[viewstate.MarkID]js.Value),
	}
}

func px(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "px"
}

func rectOf(el js.Value) viewstate.Rect {
	r := el.Call("getBoundingClientRect")
	return viewstate.Rect{
		Left:   r.Get("left").Float(),
		Top:    r.Get("top").Float(),
		Width:  r.Get("width").Float(),
		Height: r.Get("height").Float(),
	}
}

func present(v js.Value) bool {
	return !v.IsNull() && !v.IsUndefined()
}

func (d *Document) query(selector string) js.Value {
	return d.doc.Call("querySelector", selector)
}

func (d *Document) queryAll(selector string) []js.Value {
	list := d.doc.Call("querySelectorAll", selector)
	out := make([]js.Value, list.Length())
	for i := range out {
		out[i] = list.Index(i)
	}
	return out
}

// Bounds implements viewstate.Layout.
func (d *Document) Bounds(s viewstate.Section) (viewstate.Rect, bool) {
	el := d.doc.Call("getElementById", string(s))
	if !present(el) {
		return viewstate.Rect{}, false
	}
	return rectOf(el), true
}

// MoveTo implements viewstate.Followers. Missing follower elements are skipped.
func (d *Document) MoveTo(p viewstate.Point) {
	for _, sel := range []string{dotSelector, outlineSelector} {
		el := d.query(sel)
		if !present(el) {
			continue
		}
		style := el.Get("style")
		style.Set("left", px(p.X))
		style.Set("top", px(p.Y))
	}
}

func (d *Document) SetVisible(v bool) {
	for _, sel := range []string{dotSelector, outlineSelector} {
		el := d.query(sel)
		if !present(el) {
			continue
		}
		el.Get("classList").Call("toggle", hiddenCursorCls, !v)
	}
}

// CreateMark implements viewstate.EffectSink.
func (d *Document) CreateMark(m viewstate.TrailMark) {
	body := d.doc.Get("body")
	if !present(body) {
		return
	}
	el := d.doc.Call("createElement", "div")
	el.Set("className", trailClass)
	style := el.Get("style")
	style.Set("left", px(m.Pos.X))
	style.Set("top", px(m.Pos.Y))
	body.Call("appendChild", el)

	d.mu.Lock()
	d.marks[m.ID] = el
	d.mu.Unlock()
}

func (d *Document) RemoveMark(id viewstate.MarkID) {
	d.mu.Lock()
	el, ok := d.marks[id]
	delete(d.marks, id)
	d.mu.Unlock()
	if ok {
		el.Call("remove")
	}
}

type card struct{ el js.Value }

func (c card) Bounds() viewstate.Rect { return rectOf(c.el) }

func (c card) SetVar(name, value string) {
	c.el.Get("style").Call("setProperty", name, value)
}

// Cards implements viewstate.CardSource. The document is queried on every call.
func (d *Document) Cards() []viewstate.Card {
	els := d.queryAll(cardSelector)
	out := make([]viewstate.Card, len(els))
	for i, el := range els {
		out[i] = card{el: el}
	}
	return out
}

// Render applies controller state to the nav bar and the mobile menu.
func (d *Document) Render(st viewstate.State) {
	for _, el := range d.queryAll(navSelector) {
		active := el.Get("dataset").Get("nav").String() == string(st.Active)
		classes := el.Get("classList")
		classes.Call("toggle", activeNavClass, active)
		classes.Call("toggle", inactiveNavClass, !active)
	}

	open := st.Menu == viewstate.MenuOpen
	if menu := d.doc.Call("getElementById", mobileMenuID); present(menu) {
		menu.Set("hidden", !open)
	}
	if btn := d.doc.Call("getElementById", menuToggleID); present(btn) {
		btn.Call("setAttribute", "aria-expanded", strconv.FormatBool(open))
		for _, icon := range d.queryAll("[data-menu-icon]") {
			icon.Set("hidden", icon.Get("dataset").Get("menuIcon").String() != st.Menu.String())
		}
	}
}

// OnPageHide runs fn once when the page is being unloaded. A pagehide for a
// page entering the back/forward cache is ignored: the wasm instance is frozen
// with the page and resumes as-is on pageshow.
func (d *Document) OnPageHide(fn func()) {
	var once sync.Once
	var cb js.Func
	cb = js.FuncOf(func(_ js.Value, args []js.Value) any {
		if len(args) > 0 && !unloads(args[0]) {
			logger().Debug("page cached, keeping view state")
			return nil
		}
		once.Do(func() {
			d.win.Call("removeEventListener", "pagehide", cb)
			fn()
			cb.Release()
		})
		return nil
	})
	d.win.Call("addEventListener", "pagehide", cb)
}

// unloads reports whether a pagehide event discards the page.
func unloads(ev js.Value) bool {
	return !ev.Get("persisted").Truthy()
}

func logger() *logrus.Entry {
	return logrus.WithField("surface", "dom")
}
