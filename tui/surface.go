package tui

import (
	"maps"
	"slices"

	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

// surface is the terminal stand-in for the document: it measures sections
// and cards against the current scroll offset, and keeps the follower and
// trail state the view draws. Everything here is touched from the bubbletea
// update goroutine only.
type surface struct {
	layout  pageLayout
	yOffset int

	cursor     viewstate.Point
	cursorSeen bool
	visible    bool

	marks    map[viewstate.MarkID]viewstate.TrailMark
	cardVars []map[string]string
	dirty    bool
}

func newSurface() *surface {
	return &surface{
		visible: true,
		marks:   make(map[viewstate.MarkID]viewstate.TrailMark),
	}
}

// setLayout swaps in a freshly rendered page, keeping one variable map per card.
func (s *surface) setLayout(l pageLayout) {
	s.layout = l
	for len(s.cardVars) < len(l.cards) {
		s.cardVars = append(s.cardVars, map[string]string{})
	}
	s.cardVars = s.cardVars[:len(l.cards)]
	s.dirty = false
}

// Bounds reports a section's rows relative to the top of the page body.
func (s *surface) Bounds(sec viewstate.Section) (viewstate.Rect, bool) {
	sp, ok := s.layout.sections[sec]
	if !ok {
		return viewstate.Rect{}, false
	}
	return viewstate.Rect{
		Top:    float64(sp.start - s.yOffset),
		Width:  1,
		Height: float64(sp.height),
	}, true
}

func (s *surface) MoveTo(p viewstate.Point) {
	s.cursor = p
	s.cursorSeen = true
}

func (s *surface) SetVisible(v bool) { s.visible = v }

func (s *surface) CreateMark(m viewstate.TrailMark) { s.marks[m.ID] = m }

func (s *surface) RemoveMark(id viewstate.MarkID) { delete(s.marks, id) }

// trail returns the live marks oldest first.
func (s *surface) trail() []viewstate.TrailMark {
	ids := slices.Sorted(maps.Keys(s.marks))
	out := make([]viewstate.TrailMark, 0, len(ids))
	for _, id := range ids {
		out = append(out, s.marks[id])
	}
	return out
}

// Cards returns every project card. Bounds are in screen cells so they share
// the pointer's coordinate space.
func (s *surface) Cards() []viewstate.Card {
	out := make([]viewstate.Card, len(s.layout.cards))
	for i := range s.layout.cards {
		out[i] = cardHandle{s: s, i: i}
	}
	return out
}

type cardHandle struct {
	s *surface
	i int
}

func (c cardHandle) Bounds() viewstate.Rect {
	box := c.s.layout.cards[c.i]
	return viewstate.Rect{
		Left:   float64(box.col),
		Top:    float64(navHeight + box.line - c.s.yOffset),
		Width:  float64(box.width),
		Height: float64(box.height),
	}
}

func (c cardHandle) SetVar(name, value string) {
	if c.s.cardVars[c.i][name] != value {
		c.s.cardVars[c.i][name] = value
		c.s.dirty = true
	}
}
