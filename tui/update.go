package tui

import (
	"strconv"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch x := msg.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = x.Width, x.Height
		m.viewport.Width = x.Width
		m.viewport.Height = max(x.Height-navHeight-footerHeight, 1)
		m.ready = true
		m.relayout()
		m.emitScroll()
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(x)

	case tea.MouseMsg:
		m.handleMouse(x)
		return m, nil

	case tea.BlurMsg:
		m.events.Emit(viewstate.Event{Kind: viewstate.EventPointerLeave})
		return m, nil

	case tea.FocusMsg:
		m.events.Emit(viewstate.Event{Kind: viewstate.EventPointerEnter})
		return m, nil

	case taskDueMsg:
		m.sched.run(x.id)
		return m, nil
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.Close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Menu):
		m.events.Emit(viewstate.Event{Kind: viewstate.EventMenuButton})
	case key.Matches(msg, m.keys.Jump):
		n, _ := strconv.Atoi(msg.String())
		if n >= 1 && n <= len(viewstate.Sections) {
			m.followLink(viewstate.Sections[n-1])
		}
	case key.Matches(msg, m.keys.Up):
		m.scrollBy(-1)
	case key.Matches(msg, m.keys.Down):
		m.scrollBy(1)
	case key.Matches(msg, m.keys.PageUp):
		m.scrollBy(-m.viewport.Height)
	case key.Matches(msg, m.keys.PageDown):
		m.scrollBy(m.viewport.Height)
	case key.Matches(msg, m.keys.Top):
		m.scrollTo(0)
	case key.Matches(msg, m.keys.Bottom):
		m.scrollTo(len(m.surface.layout.lines))
	}
	return m, nil
}

func (m *Model) handleMouse(msg tea.MouseMsg) {
	pos := viewstate.Point{X: float64(msg.X), Y: float64(msg.Y)}

	switch {
	case msg.Action == tea.MouseActionMotion:
		m.events.Emit(viewstate.Event{Kind: viewstate.EventPointerMove, Pos: pos})
		m.refreshIfDirty()

	case msg.Button == tea.MouseButtonWheelUp:
		m.scrollBy(-wheelStep)

	case msg.Button == tea.MouseButtonWheelDown:
		m.scrollBy(wheelStep)

	case msg.Button == tea.MouseButtonLeft && msg.Action == tea.MouseActionPress:
		m.handleClick(msg.X, msg.Y)
	}
}

func (m *Model) handleClick(x, y int) {
	p := cellCenter(x, y)
	if y < navHeight {
		for _, hit := range m.navHits {
			if !hit.bounds.Contains(p) {
				continue
			}
			if hit.section == "" {
				m.events.Emit(viewstate.Event{Kind: viewstate.EventMenuButton})
			} else {
				m.followLink(hit.section)
			}
			return
		}
		return
	}
	if menu := m.menuBounds(); m.ctrl.Snapshot().Menu == viewstate.MenuOpen && menu.Contains(p) {
		m.followLink(viewstate.Sections[y-int(menu.Top)])
	}
}

// followLink scrolls a section to the top of the body, the way an anchor
// link does in the browser, and closes the menu.
func (m *Model) followLink(s viewstate.Section) {
	m.events.Emit(viewstate.Event{Kind: viewstate.EventNavLink, Section: s})
	if sp, ok := m.surface.layout.sections[s]; ok {
		m.scrollTo(sp.start)
	}
}

func (m *Model) scrollBy(delta int) {
	m.scrollTo(m.viewport.YOffset + delta)
}

func (m *Model) scrollTo(offset int) {
	m.viewport.SetYOffset(offset)
	if m.viewport.YOffset == m.surface.yOffset {
		return
	}
	m.emitScroll()
}

func (m *Model) emitScroll() {
	m.surface.yOffset = m.viewport.YOffset
	m.events.Emit(viewstate.Event{Kind: viewstate.EventScroll})
}

// relayout re-renders the page for the current width and card variables.
func (m *Model) relayout() {
	if !m.ready {
		return
	}
	m.navHits = navLayout(m.page.Name, m.width)
	l := renderPage(m.page, m.width, m.viewport.Height, m.surface.cardVars)
	m.surface.setLayout(l)
	m.viewport.SetContent(joinLines(l.lines))
	m.surface.yOffset = m.viewport.YOffset
}

func (m *Model) refreshIfDirty() {
	if m.surface.dirty {
		m.relayout()
	}
}
