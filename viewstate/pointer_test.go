package viewstate

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type driverRig struct {
	sched     *fakeScheduler
	sink      *fakeSink
	followers *fakeFollowers
	cards     []*fakeCard
	driver    *Driver
}

func newDriverRig(cards ...*fakeCard) *driverRig {
	r := &driverRig{sched: newFakeScheduler(), followers: &fakeFollowers{visible: true}, cards: cards}
	r.sink = newFakeSink(r.sched.Now)
	r.driver = NewDriver(r.sink, r.sched,
		WithFollowers(r.followers),
		WithCards(CardsFunc(func() []Card {
			out := make([]Card, 0, len(r.cards))
			for _, c := range r.cards {
				out = append(out, c)
			}
			return out
		})),
		WithClock(r.sched.Now),
	)
	return r
}

func TestDriverMovesFollowersExactly(t *testing.T) {
	r := newDriverRig()
	r.driver.Move(Point{X: 150, Y: 300})

	assert.Equal(t, Point{X: 150, Y: 300}, r.followers.pos)
	assert.Equal(t, Point{X: 150, Y: 300}, r.driver.Position())
	assert.Equal(t, []string{"create 1 (150,300)"}, r.sink.calls)
}

func TestDriverExpiresMarkAfterLifetime(t *testing.T) {
	r := newDriverRig()
	start := r.sched.Now()
	r.driver.Move(Point{X: 1, Y: 1})
	require.Equal(t, 1, r.driver.LiveMarks())

	r.sched.Advance(999 * time.Millisecond)
	assert.Equal(t, 1, r.driver.LiveMarks())
	assert.Empty(t, r.sink.removed)

	r.sched.Advance(time.Millisecond)
	assert.Equal(t, 0, r.driver.LiveMarks())
	assert.Equal(t, start.Add(TrailLifetime), r.sink.removed[1])
}

func TestDriverExpiresEachMarkIndependently(t *testing.T) {
	r := newDriverRig()
	for i := 0; i < 5; i++ {
		r.driver.Move(Point{X: float64(i), Y: 0})
		r.sched.Advance(50 * time.Millisecond)
	}
	require.Equal(t, 5, r.driver.LiveMarks())

	r.sched.Advance(700 * time.Millisecond)
	assert.Empty(t, r.sink.removed)

	for i := 1; i <= 5; i++ {
		r.sched.Advance(50 * time.Millisecond)
		id := MarkID(i)
		require.Contains(t, r.sink.removed, id)
		assert.Equal(t, r.sink.created[id].Add(TrailLifetime), r.sink.removed[id])
		assert.Equal(t, 5-i, r.driver.LiveMarks())
	}
}

func TestDriverMarkExpiryIgnoresLaterMoves(t *testing.T) {
	r := newDriverRig()
	r.driver.Move(Point{X: 0, Y: 0})
	r.sched.Advance(900 * time.Millisecond)
	r.driver.Move(Point{X: 5, Y: 5})
	r.sched.Advance(100 * time.Millisecond)

	assert.Contains(t, r.sink.removed, MarkID(1))
	assert.NotContains(t, r.sink.removed, MarkID(2))
}

func TestDriverCardPercentages(t *testing.T) {
	card := newFakeCard(Rect{Width: 200, Height: 100})
	far := newFakeCard(Rect{Left: 400, Top: 200, Width: 100, Height: 100})
	r := newDriverRig(card, far)

	r.driver.Move(Point{X: 50, Y: 50})

	assert.Equal(t, "25%", card.vars[CardVarX])
	assert.Equal(t, "50%", card.vars[CardVarY])
	// every card is updated, not only the one under the pointer
	assert.Equal(t, "-350%", far.vars[CardVarX])
	assert.Equal(t, "-150%", far.vars[CardVarY])
}

func TestDriverSkipsCollapsedCards(t *testing.T) {
	flat := newFakeCard(Rect{Width: 120, Height: 0})
	r := newDriverRig(flat)
	r.driver.Move(Point{X: 10, Y: 10})
	assert.Empty(t, flat.vars)
}

func TestDriverRequeriesCardsOnEveryMove(t *testing.T) {
	r := newDriverRig()
	r.driver.Move(Point{X: 10, Y: 10})

	added := newFakeCard(Rect{Width: 40, Height: 40})
	r.cards = append(r.cards, added)
	r.driver.Move(Point{X: 10, Y: 10})
	assert.Equal(t, "25%", added.vars[CardVarX])
}

func TestDriverVisibility(t *testing.T) {
	r := newDriverRig()
	assert.True(t, r.driver.Visible())

	r.driver.Leave()
	assert.False(t, r.driver.Visible())
	assert.False(t, r.followers.visible)

	r.driver.Enter()
	assert.True(t, r.driver.Visible())
	assert.True(t, r.followers.visible)
}

func TestDriverWithoutFollowers(t *testing.T) {
	sched := newFakeScheduler()
	sink := newFakeSink(sched.Now)
	d := NewDriver(sink, sched)

	assert.NotPanics(t, func() {
		d.Move(Point{X: 3, Y: 4})
		d.Leave()
		d.Enter()
	})
	assert.Len(t, sink.calls, 1)
}

func TestDriverCloseCancelsPendingMarks(t *testing.T) {
	r := newDriverRig()
	r.driver.Move(Point{X: 1, Y: 1})
	r.driver.Move(Point{X: 2, Y: 2})
	r.sched.Advance(TrailLifetime)
	r.driver.Move(Point{X: 3, Y: 3})

	r.driver.Close()
	assert.Equal(t, 1, r.sched.Stopped())
	assert.Equal(t, []string{
		"create 1 (1,1)", "create 2 (2,2)", "remove 1", "remove 2", "create 3 (3,3)", "remove 3",
	}, r.sink.calls)

	calls := len(r.sink.calls)
	r.driver.Move(Point{X: 9, Y: 9})
	r.driver.Leave()
	r.sched.Advance(time.Hour)
	r.driver.Close()
	assert.Len(t, r.sink.calls, calls)
	assert.Equal(t, 3, r.followers.moves)
}

func TestFormatPercent(t *testing.T) {
	assert.Equal(t, "12.5%", FormatPercent(12.5))
	assert.Equal(t, "100%", FormatPercent(100))
	assert.Equal(t, "-20%", FormatPercent(-20))
}

func TestCardPercent(t *testing.T) {
	x, y, ok := CardPercent(Point{X: 150, Y: 75}, Rect{Left: 100, Top: 50, Width: 200, Height: 100})
	require.True(t, ok)
	assert.InDelta(t, 25, x, 1e-9)
	assert.InDelta(t, 25, y, 1e-9)

	_, _, ok = CardPercent(Point{}, Rect{Width: 0, Height: 10})
	assert.False(t, ok)
}
