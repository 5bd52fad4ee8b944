package viewstate

import "github.com/sirupsen/logrus"

// DefaultReferenceLine is the distance from the viewport top, in CSS pixels,
// of the line a section must cross to become active.
const DefaultReferenceLine = 100

// Layout measures page sections. Bounds reports false for a section whose
// element is not in the document.
type Layout interface {
	Bounds(Section) (Rect, bool)
}

// LayoutFunc adapts a function to Layout.
type LayoutFunc func(Section) (Rect, bool)

func (f LayoutFunc) Bounds(s Section) (Rect, bool) { return f(s) }

// Locate returns the first section, in page order, whose box straddles line.
// Overlapping sections resolve to the earlier one.
func Locate(layout Layout, line float64) (Section, bool) {
	for _, s := range Sections {
		r, ok := layout.Bounds(s)
		if !ok {
			continue
		}
		if r.Top <= line && r.Bottom() >= line {
			return s, true
		}
	}
	return "", false
}

// Tracker keeps the active section in step with scrolling.
type Tracker struct {
	layout Layout
	line   float64
	active Section
	log    *logrus.Entry
}

// TrackerOption configures a Tracker.
type TrackerOption func(*Tracker)

// WithReferenceLine moves the activation line. Terminal surfaces measure in
// rows and use a much smaller value than the browser default.
func WithReferenceLine(line float64) TrackerOption {
	return func(t *Tracker) { t.line = line }
}

// WithTrackerLogger sets the entry used for debug output.
func WithTrackerLogger(log *logrus.Entry) TrackerOption {
	return func(t *Tracker) { t.log = log }
}

// NewTracker returns a tracker that starts on Home.
func NewTracker(layout Layout, opts ...TrackerOption) *Tracker {
	t := &Tracker{
		layout: layout,
		line:   DefaultReferenceLine,
		active: Home,
		log:    logrus.NewEntry(logrus.StandardLogger()),
	}
	for _, opt := range opts {
		opt(t)
	}
	return t
}

// Update re-measures the sections after a scroll. When nothing crosses the
// reference line the previous section stays active.
func (t *Tracker) Update() (Section, bool) {
	found, ok := Locate(t.layout, t.line)
	if !ok || found == t.active {
		return t.active, false
	}
	t.log.WithFields(logrus.Fields{"from": t.active, "to": found}).Debug("active section changed")
	t.active = found
	return found, true
}

// Active returns the highlighted section.
func (t *Tracker) Active() Section {
	return t.active
}

// ReferenceLine returns the activation line in surface units.
func (t *Tracker) ReferenceLine() float64 {
	return t.line
}
