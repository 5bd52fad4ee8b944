package tui

import (
	"io"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BvspHUB/PortoFabrlio/content"
	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

func newTestModel(t *testing.T) Model {
	t.Helper()
	page, err := content.Default()
	require.NoError(t, err)
	logger := logrus.New()
	logger.SetOutput(io.Discard)

	m := NewModel(page, logrus.NewEntry(logger))
	t.Cleanup(m.Close)
	return step(m, tea.WindowSizeMsg{Width: 80, Height: 24})
}

func step(m Model, msg tea.Msg) Model {
	next, _ := m.Update(msg)
	return next.(Model)
}

func keyPress(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func motion(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionMotion, Button: tea.MouseButtonNone}
}

func click(x, y int) tea.MouseMsg {
	return tea.MouseMsg{X: x, Y: y, Action: tea.MouseActionPress, Button: tea.MouseButtonLeft}
}

func TestModelStartsOnHome(t *testing.T) {
	m := newTestModel(t)
	st := m.State()
	assert.Equal(t, viewstate.Home, st.Active)
	assert.Equal(t, viewstate.MenuClosed, st.Menu)

	view := m.View()
	assert.Contains(t, view, "Pabril")
	assert.Len(t, strings.Split(view, "\n"), 24)
}

func TestModelPointerMotion(t *testing.T) {
	m := newTestModel(t)
	m = step(m, motion(10, 5))

	st := m.State()
	assert.Equal(t, viewstate.Point{X: 10, Y: 5}, st.Pointer)
	assert.Equal(t, 1, st.LiveMarks)
	assert.Contains(t, m.View(), "●")

	// the first scheduled task is the first mark's expiry
	m = step(m, taskDueMsg{id: 1})
	assert.Equal(t, 0, m.State().LiveMarks)
	assert.Empty(t, m.surface.trail())
}

func TestModelFocusTogglesFollowers(t *testing.T) {
	m := newTestModel(t)
	m = step(m, motion(4, 4))

	m = step(m, tea.BlurMsg{})
	assert.False(t, m.State().CursorVisible)
	assert.NotContains(t, m.View(), "●")

	m = step(m, tea.FocusMsg{})
	assert.True(t, m.State().CursorVisible)
}

func TestModelJumpKeysTrackSections(t *testing.T) {
	m := newTestModel(t)

	m = step(m, keyPress("3"))
	assert.Equal(t, viewstate.Projects, m.State().Active)
	assert.Equal(t, m.surface.layout.sections[viewstate.Projects].start, m.viewport.YOffset)

	m = step(m, keyPress("2"))
	assert.Equal(t, viewstate.Skills, m.State().Active)

	m = step(m, keyPress("g"))
	assert.Equal(t, viewstate.Home, m.State().Active)
}

func TestModelWheelScrolls(t *testing.T) {
	m := newTestModel(t)
	m = step(m, tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelDown, Action: tea.MouseActionPress})
	assert.Equal(t, wheelStep, m.viewport.YOffset)
	assert.Equal(t, wheelStep, m.surface.yOffset)

	m = step(m, tea.MouseMsg{X: 5, Y: 5, Button: tea.MouseButtonWheelUp, Action: tea.MouseActionPress})
	assert.Equal(t, 0, m.viewport.YOffset)
}

func TestModelNavClick(t *testing.T) {
	m := newTestModel(t)
	var skills navHit
	for _, hit := range m.navHits {
		if hit.section == viewstate.Skills {
			skills = hit
		}
	}
	require.NotZero(t, skills.bounds.Width)

	end := int(skills.bounds.Right())
	m = step(m, click(end, 0))
	assert.Equal(t, viewstate.Home, m.State().Active, "cell after the link is a gap")

	m = step(m, click(end-1, 0))
	assert.Equal(t, viewstate.Skills, m.State().Active)
}

func TestModelMenu(t *testing.T) {
	m := newTestModel(t)
	button := m.navHits[len(m.navHits)-1]
	require.Empty(t, button.section)

	m = step(m, click(int(button.bounds.Left), 0))
	assert.Equal(t, viewstate.MenuOpen, m.State().Menu)
	assert.Contains(t, m.View(), " Contact")

	m = step(m, click(m.menuLeft()-1, navHeight+2))
	assert.Equal(t, viewstate.MenuOpen, m.State().Menu, "click left of the menu")
	m = step(m, click(m.menuLeft()+1, navHeight+len(viewstate.Sections)))
	assert.Equal(t, viewstate.MenuOpen, m.State().Menu, "click below the last row")
	assert.Equal(t, viewstate.Home, m.State().Active)

	m = step(m, click(m.menuLeft()+1, navHeight+2))
	assert.Equal(t, viewstate.MenuClosed, m.State().Menu)
	assert.Equal(t, viewstate.Projects, m.State().Active)

	m = step(m, keyPress("m"))
	m = step(m, keyPress("m"))
	assert.Equal(t, viewstate.MenuClosed, m.State().Menu)
}

func TestModelCardGlowFollowsPointer(t *testing.T) {
	m := newTestModel(t)
	m = step(m, keyPress("3"))

	cards := m.surface.Cards()
	require.Len(t, cards, 3)
	r := cards[0].Bounds()
	m = step(m, motion(int(r.Left), int(r.Top+r.Height/2)))

	assert.Equal(t, "0%", m.surface.cardVars[0][viewstate.CardVarX])
	for i := range cards {
		assert.Contains(t, m.surface.cardVars[i], viewstate.CardVarY)
	}
}

func TestModelQuitClosesController(t *testing.T) {
	m := newTestModel(t)
	m = step(m, motion(1, 1))

	next, cmd := m.Update(keyPress("q"))
	m = next.(Model)
	require.NotNil(t, cmd)
	assert.Empty(t, m.View())
	assert.Equal(t, 0, m.sched.pending())
	assert.Empty(t, m.surface.trail())

	m = step(m, motion(9, 9))
	m = step(m, taskDueMsg{id: 1})
	assert.Equal(t, viewstate.Point{X: 1, Y: 1}, m.State().Pointer)
}

func TestSchedulerDeliversThroughLoop(t *testing.T) {
	s := newScheduler()
	msgs := make(chan tea.Msg, 1)
	s.bind(func(msg tea.Msg) { msgs <- msg })

	ran := false
	s.AfterFunc(time.Millisecond, func() { ran = true })

	select {
	case msg := <-msgs:
		due, ok := msg.(taskDueMsg)
		require.True(t, ok)
		assert.False(t, ran, "callbacks run on the update loop, not the timer")
		s.run(due.id)
		assert.True(t, ran)
	case <-time.After(time.Second):
		t.Fatal("task never came due")
	}
	assert.Equal(t, 0, s.pending())
}

func TestSchedulerStop(t *testing.T) {
	s := newScheduler()
	ran := false
	task := s.AfterFunc(time.Hour, func() { ran = true })

	assert.True(t, task.Stop())
	assert.False(t, task.Stop())
	s.run(1)
	assert.False(t, ran)
}
