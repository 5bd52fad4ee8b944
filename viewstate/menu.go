package viewstate

// MenuState is the mobile nav menu position.
type MenuState int

const (
	MenuClosed MenuState = iota
	MenuOpen
)

func (s MenuState) String() string {
	if s == MenuOpen {
		return "open"
	}
	return "closed"
}

// Menu is the mobile nav toggle. The zero value is closed.
type Menu struct {
	open bool
}

// Toggle flips the menu on a button click.
func (m *Menu) Toggle() MenuState {
	m.open = !m.open
	return m.State()
}

// SelectLink closes the menu after a nav link is followed.
func (m *Menu) SelectLink() MenuState {
	m.open = false
	return MenuClosed
}

func (m *Menu) Open() bool { return m.open }

func (m *Menu) State() MenuState {
	if m.open {
		return MenuOpen
	}
	return MenuClosed
}
