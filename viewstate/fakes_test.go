package viewstate

import (
	"fmt"
	"time"
)

// fakeScheduler runs callbacks when the test advances its clock.
type fakeScheduler struct {
	now   time.Time
	tasks []*fakeTask
}

type fakeTask struct {
	due     time.Time
	fn      func()
	fired   bool
	stopped bool
}

func (t *fakeTask) Stop() bool {
	if t.fired || t.stopped {
		return false
	}
	t.stopped = true
	return true
}

func newFakeScheduler() *fakeScheduler {
	return &fakeScheduler{now: time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)}
}

func (s *fakeScheduler) Now() time.Time { return s.now }

func (s *fakeScheduler) AfterFunc(d time.Duration, fn func()) Task {
	t := &fakeTask{due: s.now.Add(d), fn: fn}
	s.tasks = append(s.tasks, t)
	return t
}

func (s *fakeScheduler) Advance(d time.Duration) {
	s.now = s.now.Add(d)
	for _, t := range s.tasks {
		if t.fired || t.stopped || t.due.After(s.now) {
			continue
		}
		t.fired = true
		t.fn()
	}
}

func (s *fakeScheduler) Stopped() int {
	n := 0
	for _, t := range s.tasks {
		if t.stopped {
			n++
		}
	}
	return n
}

// fakeSink records trail mark traffic with the scheduler time it happened at.
type fakeSink struct {
	clock   func() time.Time
	calls   []string
	created map[MarkID]time.Time
	removed map[MarkID]time.Time
}

func newFakeSink(clock func() time.Time) *fakeSink {
	return &fakeSink{clock: clock, created: map[MarkID]time.Time{}, removed: map[MarkID]time.Time{}}
}

func (s *fakeSink) CreateMark(m TrailMark) {
	s.calls = append(s.calls, fmt.Sprintf("create %d (%g,%g)", m.ID, m.Pos.X, m.Pos.Y))
	s.created[m.ID] = m.CreatedAt
}

func (s *fakeSink) RemoveMark(id MarkID) {
	s.calls = append(s.calls, fmt.Sprintf("remove %d", id))
	s.removed[id] = s.clock()
}

type fakeFollowers struct {
	pos     Point
	visible bool
	moves   int
}

func (f *fakeFollowers) MoveTo(p Point) { f.pos = p; f.moves++ }
func (f *fakeFollowers) SetVisible(v bool) { f.visible = v }

type fakeCard struct {
	rect Rect
	vars map[string]string
}

func newFakeCard(r Rect) *fakeCard { return &fakeCard{rect: r, vars: map[string]string{}} }

func (c *fakeCard) Bounds() Rect { return c.rect }
func (c *fakeCard) SetVar(name, value string) { c.vars[name] = value }

// fakeLayout is a mutable section geometry. Missing keys are absent elements.
type fakeLayout map[Section]Rect

func (l fakeLayout) Bounds(s Section) (Rect, bool) {
	r, ok := l[s]
	return r, ok
}

// stacked lays sections out top to bottom with the given heights, scrolled by offset.
func stacked(offset float64, heights ...float64) fakeLayout {
	l := fakeLayout{}
	top := -offset
	for i, h := range heights {
		l[Sections[i]] = Rect{Top: top, Width: 1024, Height: h}
		top += h
	}
	return l
}
