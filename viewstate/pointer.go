package viewstate

import (
	"slices"
	"strconv"
	"sync"
	"time"

	"github.com/sirupsen/logrus"
)

// TrailLifetime is how long a trail mark stays on screen.
const TrailLifetime = time.Second

// Style variables written on every card. Presentation reads them to place
// the card's gradient origin.
const (
	CardVarX = "--mouse-x"
	CardVarY = "--mouse-y"
)

// MarkID identifies a trail mark for its whole life.
type MarkID uint64

// TrailMark is a short-lived glyph left behind by the pointer.
type TrailMark struct {
	ID        MarkID
	Pos       Point
	CreatedAt time.Time
}

// Followers are the dot and outline that sit under the pointer.
type Followers interface {
	MoveTo(Point)
	SetVisible(bool)
}

// EffectSink draws and erases trail marks.
type EffectSink interface {
	CreateMark(TrailMark)
	RemoveMark(MarkID)
}

// Card is an element flagged for pointer-relative styling.
type Card interface {
	Bounds() Rect
	SetVar(name, value string)
}

// CardSource enumerates the cards currently in the document.
type CardSource interface {
	Cards() []Card
}

// CardsFunc adapts a function to CardSource.
type CardsFunc func() []Card

func (f CardsFunc) Cards() []Card { return f() }

// Task is a pending one-shot callback.
type Task interface {
	Stop() bool
}

// Scheduler runs f once after d.
type Scheduler interface {
	AfterFunc(d time.Duration, f func()) Task
}

// ClockScheduler schedules on the wall clock. Callbacks run on their own
// goroutine.
type ClockScheduler struct{}

func (ClockScheduler) AfterFunc(d time.Duration, f func()) Task {
	return time.AfterFunc(d, f)
}

// CardPercent places p inside r as percentages of r's width and height. It
// reports false for a collapsed box.
func CardPercent(p Point, r Rect) (x, y float64, ok bool) {
	if r.Width == 0 || r.Height == 0 {
		return 0, 0, false
	}
	return (p.X - r.Left) / r.Width * 100, (p.Y - r.Top) / r.Height * 100, true
}

// FormatPercent renders v as a CSS percentage, e.g. "12.5%".
func FormatPercent(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64) + "%"
}

// Driver turns pointer notifications into follower moves, trail marks and
// card variables. It is safe to call from scheduler goroutines.
type Driver struct {
	mu        sync.Mutex
	sink      EffectSink
	sched     Scheduler
	followers Followers
	cards     CardSource
	now       func() time.Time
	lifetime  time.Duration
	log       *logrus.Entry

	pos     Point
	visible bool
	nextID  MarkID
	pending map[MarkID]Task
	closed  bool
}

// DriverOption configures a Driver.
type DriverOption func(*Driver)

// WithFollowers attaches the follower graphics. Without them moves only
// leave trails and update cards.
func WithFollowers(f Followers) DriverOption {
	return func(d *Driver) { d.followers = f }
}

// WithCards sets where cards are looked up on each move.
func WithCards(c CardSource) DriverOption {
	return func(d *Driver) { d.cards = c }
}

// WithClock overrides the timestamp source for new marks.
func WithClock(now func() time.Time) DriverOption {
	return func(d *Driver) { d.now = now }
}

// WithTrailLifetime overrides TrailLifetime.
func WithTrailLifetime(lifetime time.Duration) DriverOption {
	return func(d *Driver) { d.lifetime = lifetime }
}

// WithDriverLogger sets the entry used for debug output.
func WithDriverLogger(log *logrus.Entry) DriverOption {
	return func(d *Driver) { d.log = log }
}

// NewDriver returns a driver with visible followers and no live marks.
func NewDriver(sink EffectSink, sched Scheduler, opts ...DriverOption) *Driver {
	d := &Driver{
		sink:     sink,
		sched:    sched,
		now:      time.Now,
		lifetime: TrailLifetime,
		log:      logrus.NewEntry(logrus.StandardLogger()),
		visible:  true,
		pending:  make(map[MarkID]Task),
	}
	for _, opt := range opts {
		opt(d)
	}
	return d
}

// Move handles one pointer-move notification.
func (d *Driver) Move(p Point) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}

	d.pos = p
	if d.followers != nil {
		d.followers.MoveTo(p)
	}

	d.nextID++
	mark := TrailMark{ID: d.nextID, Pos: p, CreatedAt: d.now()}
	d.sink.CreateMark(mark)
	id := mark.ID
	d.pending[id] = d.sched.AfterFunc(d.lifetime, func() { d.expire(id) })

	if d.cards == nil {
		return
	}
	for _, card := range d.cards.Cards() {
		x, y, ok := CardPercent(p, card.Bounds())
		if !ok {
			continue
		}
		card.SetVar(CardVarX, FormatPercent(x))
		card.SetVar(CardVarY, FormatPercent(y))
	}
}

func (d *Driver) expire(id MarkID) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	if _, ok := d.pending[id]; !ok {
		return
	}
	delete(d.pending, id)
	d.sink.RemoveMark(id)
}

// Leave hides the followers when the pointer exits the document.
func (d *Driver) Leave() { d.setVisible(false) }

// Enter shows the followers again.
func (d *Driver) Enter() { d.setVisible(true) }

func (d *Driver) setVisible(v bool) {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.visible = v
	if d.followers != nil {
		d.followers.SetVisible(v)
	}
}

// Position returns the last pointer position.
func (d *Driver) Position() Point {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.pos
}

// Visible reports whether the followers are shown.
func (d *Driver) Visible() bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	return d.visible
}

// LiveMarks counts trail marks still waiting to expire.
func (d *Driver) LiveMarks() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.pending)
}

// Close cancels every pending expiry and erases the marks it owned. Later
// calls on the driver do nothing.
func (d *Driver) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()
	if d.closed {
		return
	}
	d.closed = true

	ids := make([]MarkID, 0, len(d.pending))
	for id := range d.pending {
		ids = append(ids, id)
	}
	slices.Sort(ids)
	for _, id := range ids {
		d.pending[id].Stop()
		d.sink.RemoveMark(id)
	}
	d.pending = nil
	d.log.WithField("marks", len(ids)).Debug("pointer driver closed")
}
