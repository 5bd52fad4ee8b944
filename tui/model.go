// Package tui renders the portfolio in a terminal. Mouse motion, wheel
// scrolling, focus changes and clicks feed the same view-state controller the
// browser build uses.
package tui

import (
	"time"

	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"

	"github.com/BvspHUB/PortoFabrlio/content"
	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

// navHit is a clickable range on the nav bar.
type navHit struct {
	bounds  viewstate.Rect
	section viewstate.Section // empty for the menu button
}

// Model is the root Bubble Tea model.
type Model struct {
	page     *content.Content
	width    int
	height   int
	viewport viewport.Model
	ready    bool
	quitting bool
	navHits  []navHit
	keys     keyMap
	now      func() time.Time

	surface *surface
	sched   *scheduler
	events  *viewstate.Dispatcher
	ctrl    *viewstate.Controller
}

// NewModel wires a controller to a fresh terminal surface.
func NewModel(page *content.Content, log *logrus.Entry) Model {
	s := newSurface()
	sched := newScheduler()
	events := viewstate.NewDispatcher()
	ctrl := viewstate.New(s, s, sched,
		viewstate.WithTrackerOptions(viewstate.WithReferenceLine(referenceLineRows)),
		viewstate.WithDriverOptions(
			viewstate.WithFollowers(s),
			viewstate.WithCards(s),
		),
		viewstate.WithLogger(log),
	)
	// A fresh dispatcher and controller cannot fail to attach.
	_ = ctrl.Attach(events)

	return Model{
		page:     page,
		viewport: viewport.New(0, 0),
		keys:     newKeyMap(),
		now:      time.Now,
		surface:  s,
		sched:    sched,
		events:   events,
		ctrl:     ctrl,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// State exposes the controller snapshot.
func (m Model) State() viewstate.State {
	return m.ctrl.Snapshot()
}

// Close tears the controller down. Pending trail timers are cancelled.
func (m Model) Close() {
	m.ctrl.Close()
}
