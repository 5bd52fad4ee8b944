package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

const menuButton = "[≡]"

// navLayout places the brand, the inline links (on wide terminals) and the
// menu button on the nav row.
func navLayout(brand string, width int) []navHit {
	var hits []navHit
	if width >= wideNavWidth {
		x := 1 + lipgloss.Width(brand) + 4
		for _, s := range viewstate.Sections {
			w := lipgloss.Width(s.Title())
			hits = append(hits, navHit{bounds: cellRect(x, 0, w, navHeight), section: s})
			x += w + 3
		}
	}
	bx := max(width-lipgloss.Width(menuButton)-1, 0)
	hits = append(hits, navHit{bounds: cellRect(bx, 0, lipgloss.Width(menuButton), navHeight)})
	return hits
}

func (m Model) menuLeft() int {
	return max(m.width-menuWidth, 0)
}

// menuBounds is the area the open menu covers, one row per section.
func (m Model) menuBounds() viewstate.Rect {
	return cellRect(m.menuLeft(), navHeight, menuWidth, len(viewstate.Sections))
}

func cellRect(x, y, w, h int) viewstate.Rect {
	return viewstate.Rect{Left: float64(x), Top: float64(y), Width: float64(w), Height: float64(h)}
}

// cellCenter maps a terminal cell to the middle of its unit square, so a
// cell on a rectangle's right or bottom edge falls outside it.
func cellCenter(x, y int) viewstate.Point {
	return viewstate.Point{X: float64(x) + 0.5, Y: float64(y) + 0.5}
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	if !m.ready {
		return "loading…"
	}
	st := m.ctrl.Snapshot()

	c := &canvas{width: m.width, lines: make([]string, 0, m.height)}
	c.lines = append(c.lines, m.renderNav(st))
	body := strings.Split(m.viewport.View(), "\n")
	for len(body) < m.viewport.Height {
		body = append(body, "")
	}
	c.lines = append(c.lines, body[:m.viewport.Height]...)
	c.lines = append(c.lines, m.renderFooter())

	if st.Menu == viewstate.MenuOpen {
		for i, s := range viewstate.Sections {
			c.put(m.menuLeft(), navHeight+i, menuStyle.Width(menuWidth).Render(" "+s.Title()))
		}
	}

	now := m.now()
	for _, mark := range m.surface.trail() {
		age := now.Sub(mark.CreatedAt)
		glyph := trailFreshStyle.Render("•")
		switch {
		case age >= fadeTrailAge:
			glyph = trailFadeStyle.Render("·")
		case age >= freshTrailAge:
			glyph = trailFadeStyle.Render("•")
		}
		c.put(int(mark.Pos.X), int(mark.Pos.Y), glyph)
	}

	if st.CursorVisible && m.surface.cursorSeen {
		x, y := int(st.Pointer.X), int(st.Pointer.Y)
		c.put(x-1, y, cursorOutlineStyle.Render("("))
		c.put(x+1, y, cursorOutlineStyle.Render(")"))
		c.put(x, y, cursorDotStyle.Render("●"))
	}

	return c.String()
}

func (m Model) renderNav(st viewstate.State) string {
	nav := &canvas{width: m.width, lines: []string{strings.Repeat(" ", m.width)}}
	nav.put(1, 0, brandStyle.Render(m.page.Name))
	for _, hit := range m.navHits {
		if hit.section == "" {
			nav.put(int(hit.bounds.Left), 0, navStyle.Render(menuButton))
			continue
		}
		style := navStyle
		if hit.section == st.Active {
			style = navActiveStyle
		}
		nav.put(int(hit.bounds.Left), 0, style.Render(hit.section.Title()))
	}
	return nav.lines[0]
}

func (m Model) renderFooter() string {
	parts := make([]string, 0, len(m.keys.help()))
	for _, b := range m.keys.help() {
		parts = append(parts, keyHelp(b))
	}
	return footerStyle.Render(" " + strings.Join(parts, " • "))
}

func keyHelp(b key.Binding) string {
	h := b.Help()
	return h.Key + " " + h.Desc
}
