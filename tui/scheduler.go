package tui

import (
	"sync"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/BvspHUB/PortoFabrlio/viewstate"
)

// scheduler implements viewstate.Scheduler on top of the bubbletea loop:
// timers only post a message, and the callback runs when Update receives
// it. Trail expiry therefore never races the renderer.
type scheduler struct {
	mu     sync.Mutex
	send   func(tea.Msg)
	nextID uint64
	tasks  map[uint64]*task
}

type task struct {
	s     *scheduler
	id    uint64
	fn    func()
	timer *time.Timer
}

func newScheduler() *scheduler {
	return &scheduler{tasks: make(map[uint64]*task)}
}

// bind sets where due tasks are posted. Tasks that come due before bind are
// dropped.
func (s *scheduler) bind(send func(tea.Msg)) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.send = send
}

func (s *scheduler) AfterFunc(d time.Duration, fn func()) viewstate.Task {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	t := &task{s: s, id: s.nextID, fn: fn}
	s.tasks[t.id] = t
	id := t.id
	t.timer = time.AfterFunc(d, func() { s.post(taskDueMsg{id: id}) })
	return t
}

func (s *scheduler) post(msg tea.Msg) {
	s.mu.Lock()
	send := s.send
	s.mu.Unlock()
	if send != nil {
		send(msg)
	}
}

// run executes a due task on the update goroutine. Stopped tasks are gone
// from the table and are skipped.
func (s *scheduler) run(id uint64) {
	s.mu.Lock()
	t, ok := s.tasks[id]
	delete(s.tasks, id)
	s.mu.Unlock()
	if ok {
		t.fn()
	}
}

func (s *scheduler) pending() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.tasks)
}

func (t *task) Stop() bool {
	t.s.mu.Lock()
	_, ok := t.s.tasks[t.id]
	delete(t.s.tasks, t.id)
	t.s.mu.Unlock()
	t.timer.Stop()
	return ok
}
