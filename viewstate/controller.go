package viewstate

import (
	"errors"
	"sync"

	"github.com/sirupsen/logrus"
)

var (
	// ErrAttached is returned when a controller is bound to a second source.
	ErrAttached = errors.New("controller already attached")
	// ErrClosed is returned when attaching a controller after Close.
	ErrClosed = errors.New("controller closed")
)

// State is a read-only view of everything the page renders from.
type State struct {
	Active        Section
	Menu          MenuState
	Pointer       Point
	CursorVisible bool
	LiveMarks     int
}

// Controller owns the view state of one page view: the section tracker, the
// pointer driver and the menu. Events are handled one at a time.
type Controller struct {
	mu       sync.Mutex
	tracker  *Tracker
	pointer  *Driver
	menu     Menu
	onChange func(State)
	log      *logrus.Entry

	unsubs   []func()
	attached bool
	closed   bool
}

// Option configures a Controller.
type Option func(*controllerConfig)

type controllerConfig struct {
	trackerOpts []TrackerOption
	driverOpts  []DriverOption
	onChange    func(State)
	log         *logrus.Entry
}

// WithTrackerOptions forwards options to the section tracker.
func WithTrackerOptions(opts ...TrackerOption) Option {
	return func(c *controllerConfig) { c.trackerOpts = append(c.trackerOpts, opts...) }
}

// WithDriverOptions forwards options to the pointer driver.
func WithDriverOptions(opts ...DriverOption) Option {
	return func(c *controllerConfig) { c.driverOpts = append(c.driverOpts, opts...) }
}

// OnChange registers a render hook. It runs after every handled event except
// pointer moves, which the followers and sink already render.
func OnChange(fn func(State)) Option {
	return func(c *controllerConfig) { c.onChange = fn }
}

// WithLogger sets the entry shared by the controller and its components.
func WithLogger(log *logrus.Entry) Option {
	return func(c *controllerConfig) { c.log = log }
}

// New builds a controller over the given layout, trail sink and scheduler.
func New(layout Layout, sink EffectSink, sched Scheduler, opts ...Option) *Controller {
	cfg := controllerConfig{log: logrus.NewEntry(logrus.StandardLogger())}
	for _, opt := range opts {
		opt(&cfg)
	}
	trackerOpts := append([]TrackerOption{WithTrackerLogger(cfg.log)}, cfg.trackerOpts...)
	driverOpts := append([]DriverOption{WithDriverLogger(cfg.log)}, cfg.driverOpts...)
	return &Controller{
		tracker:  NewTracker(layout, trackerOpts...),
		pointer:  NewDriver(sink, sched, driverOpts...),
		onChange: cfg.onChange,
		log:      cfg.log,
	}
}

// Attach subscribes the controller to every event kind on src.
func (c *Controller) Attach(src Source) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return ErrClosed
	}
	if c.attached {
		return ErrAttached
	}
	for _, kind := range EventKinds {
		c.unsubs = append(c.unsubs, src.Subscribe(kind, c.Handle))
	}
	c.attached = true
	return nil
}

// Handle applies one event. Events after Close are dropped.
func (c *Controller) Handle(ev Event) {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	notify := true
	switch ev.Kind {
	case EventScroll:
		_, notify = c.tracker.Update()
	case EventPointerMove:
		c.pointer.Move(ev.Pos)
		notify = false
	case EventPointerLeave:
		c.pointer.Leave()
	case EventPointerEnter:
		c.pointer.Enter()
	case EventMenuButton:
		c.menu.Toggle()
	case EventNavLink:
		c.menu.SelectLink()
	default:
		c.log.WithField("kind", ev.Kind).Warn("ignoring unknown event")
		notify = false
	}
	state := c.snapshot()
	hook := c.onChange
	c.mu.Unlock()

	if notify && hook != nil {
		hook(state)
	}
}

// Snapshot returns the current state.
func (c *Controller) Snapshot() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.snapshot()
}

func (c *Controller) snapshot() State {
	return State{
		Active:        c.tracker.Active(),
		Menu:          c.menu.State(),
		Pointer:       c.pointer.Position(),
		CursorVisible: c.pointer.Visible(),
		LiveMarks:     c.pointer.LiveMarks(),
	}
}

// Close releases every subscription and cancels pending trail expiries.
// It is safe to call more than once.
func (c *Controller) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.closed {
		return
	}
	c.closed = true
	for _, unsub := range c.unsubs {
		unsub()
	}
	c.unsubs = nil
	c.pointer.Close()
	c.log.Debug("view state controller closed")
}
