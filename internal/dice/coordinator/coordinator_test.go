package coordinator

import (
	"errors"
	"slices"
	"sync"
	"testing"
	"time"

	"github.com/louisbranch/dicetray/internal/dice/clock"
)

type fakeUnit struct {
	mu          sync.Mutex
	value       int
	unavailable bool
	next        int
	rolls       []*int
	onRoll      func()
}

func newFakeUnit(value, next int) *fakeUnit {
	return &fakeUnit{value: value, next: next}
}

func (u *fakeUnit) RollDie(forced *int) {
	u.mu.Lock()
	u.rolls = append(u.rolls, forced)
	if forced != nil {
		u.value = *forced
	} else {
		u.value = u.next
	}
	onRoll := u.onRoll
	u.mu.Unlock()
	if onRoll != nil {
		onRoll()
	}
}

func (u *fakeUnit) Value() (int, bool) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if u.unavailable {
		return 0, false
	}
	return u.value, true
}

func (u *fakeUnit) rollCount() int {
	u.mu.Lock()
	defer u.mu.Unlock()
	return len(u.rolls)
}

type recorder struct {
	mu      sync.Mutex
	results []Result
	passes  []Aggregation
	started int
}

func (r *recorder) options(fake *clock.Fake) Options {
	return Options{
		Clock: fake,
		OnResult: func(result Result) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.results = append(r.results, result)
		},
		OnRollStarted: func() {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.started++
		},
		OnAggregate: func(pass Aggregation) {
			r.mu.Lock()
			defer r.mu.Unlock()
			r.passes = append(r.passes, pass)
		},
	}
}

func (r *recorder) resultCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.results)
}

func (r *recorder) passCount() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.passes)
}

func intPtr(v int) *int {
	return &v
}

func newTestCoordinator(t *testing.T, unitCount, defaultValue int) (*Coordinator, *clock.Fake, *recorder) {
	t.Helper()
	fake := clock.NewFake(time.Date(2026, time.March, 1, 12, 0, 0, 0, time.UTC))
	rec := &recorder{}
	c := New(unitCount, defaultValue, rec.options(fake))
	t.Cleanup(c.Close)
	return c, fake, rec
}

func attachUnits(t *testing.T, c *Coordinator, units ...*fakeUnit) {
	t.Helper()
	for i, unit := range units {
		if unit == nil {
			continue
		}
		if err := c.Attach(i, unit); err != nil {
			t.Fatalf("attach slot %d: %v", i, err)
		}
	}
}

func TestNewStartsAtBaselineWithoutCallback(t *testing.T) {
	c, _, rec := newTestCoordinator(t, 3, 6)

	got := c.Result()
	want := Result{Total: 18, Values: []int{6, 6, 6}}
	if !got.Equal(want) {
		t.Fatalf("result = %+v, want %+v", got, want)
	}
	if rec.resultCount() != 0 {
		t.Fatalf("expected no result callback, got %d", rec.resultCount())
	}
	if c.Len() != 3 || c.Live() != 0 {
		t.Fatalf("len/live = %d/%d, want 3/0", c.Len(), c.Live())
	}
}

func TestNewClampsNegativeUnitCount(t *testing.T) {
	c, _, _ := newTestCoordinator(t, -2, 6)
	if c.Len() != 0 {
		t.Fatalf("len = %d, want 0", c.Len())
	}
	if got := c.Result(); got.Total != 0 || len(got.Values) != 0 {
		t.Fatalf("result = %+v, want empty", got)
	}
}

func TestRollAllDispatchesOncePerLiveUnit(t *testing.T) {
	c, _, rec := newTestCoordinator(t, 4, 6)
	units := []*fakeUnit{newFakeUnit(6, 1), nil, newFakeUnit(6, 2), newFakeUnit(6, 3)}
	attachUnits(t, c, units...)

	if !c.RollAll(nil) {
		t.Fatal("expected roll to dispatch")
	}
	for i, unit := range units {
		if unit == nil {
			continue
		}
		if unit.rollCount() != 1 {
			t.Fatalf("unit %d rolls = %d, want 1", i, unit.rollCount())
		}
	}
	if c.Outstanding() != 3 {
		t.Fatalf("outstanding = %d, want 3", c.Outstanding())
	}
	if rec.started != 1 {
		t.Fatalf("roll started callbacks = %d, want 1", rec.started)
	}
}

func TestRollAllWithoutLiveUnitsIsNoop(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)

	if c.RollAll([]*int{intPtr(3)}) {
		t.Fatal("expected roll with no units to be a no-op")
	}
	if c.Outstanding() != 0 {
		t.Fatalf("outstanding = %d, want 0", c.Outstanding())
	}
	if rec.started != 0 {
		t.Fatalf("roll started callbacks = %d, want 0", rec.started)
	}
	if fake.Pending() != 0 {
		t.Fatalf("pending timers = %d, want 0", fake.Pending())
	}
}

func TestForcedValuesAndOutOfOrderCompletion(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 3, 6)
	units := []*fakeUnit{newFakeUnit(6, 2), newFakeUnit(6, 1), newFakeUnit(6, 5)}
	attachUnits(t, c, units...)

	c.RollAll([]*int{nil, intPtr(4), nil})

	if units[0].rolls[0] != nil || units[2].rolls[0] != nil {
		t.Fatal("expected unforced slots to randomize")
	}
	if units[1].rolls[0] == nil || *units[1].rolls[0] != 4 {
		t.Fatalf("slot 1 forced = %v, want 4", units[1].rolls[0])
	}

	// Settle order: 2, 0, 1.
	c.UnitSettled()
	c.UnitSettled()
	fake.Advance(time.Second)
	if rec.resultCount() != 0 {
		t.Fatal("aggregated before every unit settled")
	}

	c.UnitSettled()
	fake.Advance(DefaultDebounce - time.Millisecond)
	if rec.resultCount() != 0 {
		t.Fatal("aggregated before debounce window elapsed")
	}
	fake.Advance(time.Millisecond)

	if rec.resultCount() != 1 {
		t.Fatalf("result callbacks = %d, want 1", rec.resultCount())
	}
	want := Result{Total: 11, Values: []int{2, 4, 5}}
	if !rec.results[0].Equal(want) {
		t.Fatalf("result = %+v, want %+v", rec.results[0], want)
	}
	if !c.Result().Equal(want) {
		t.Fatalf("current = %+v, want %+v", c.Result(), want)
	}
}

func TestCompletionInAnyOrderNotifiesOnce(t *testing.T) {
	orders := [][]int{{0, 1, 2}, {2, 1, 0}, {1, 0, 2}, {1, 2, 0}}
	for _, order := range orders {
		c, fake, rec := newTestCoordinator(t, 3, 1)
		units := []*fakeUnit{newFakeUnit(1, 3), newFakeUnit(1, 4), newFakeUnit(1, 6)}
		attachUnits(t, c, units...)

		c.RollAll(nil)
		for range order {
			c.UnitSettled()
		}
		fake.Advance(DefaultDebounce)

		if rec.resultCount() != 1 {
			t.Fatalf("order %v: result callbacks = %d, want 1", order, rec.resultCount())
		}
		if rec.results[0].Total != 13 {
			t.Fatalf("order %v: total = %d, want 13", order, rec.results[0].Total)
		}
	}
}

func TestIdenticalAggregationIsSuppressed(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	units := []*fakeUnit{newFakeUnit(6, 3), newFakeUnit(6, 2)}
	attachUnits(t, c, units...)

	for i := 0; i < 2; i++ {
		c.RollAll(nil)
		c.UnitSettled()
		c.UnitSettled()
		fake.Advance(DefaultDebounce)
	}

	if rec.resultCount() != 1 {
		t.Fatalf("result callbacks = %d, want 1", rec.resultCount())
	}
	if rec.passCount() != 2 {
		t.Fatalf("aggregation passes = %d, want 2", rec.passCount())
	}
	if !rec.passes[0].Changed || rec.passes[1].Changed {
		t.Fatalf("changed flags = %v/%v, want true/false", rec.passes[0].Changed, rec.passes[1].Changed)
	}
}

func TestRollMatchingBaselineDoesNotNotify(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	attachUnits(t, c, newFakeUnit(6, 6), newFakeUnit(6, 6))

	c.RollAll(nil)
	c.UnitSettled()
	c.UnitSettled()
	fake.Advance(DefaultDebounce)

	if rec.resultCount() != 0 {
		t.Fatalf("result callbacks = %d, want 0", rec.resultCount())
	}
	if rec.passCount() != 1 || rec.passes[0].Outstanding != 0 {
		t.Fatalf("passes = %+v, want one settled pass", rec.passes)
	}
}

func TestConfigureResetsOutstandingAndAbsorbsLateSignals(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	attachUnits(t, c, newFakeUnit(6, 6), newFakeUnit(6, 6))

	c.RollAll(nil)
	c.UnitSettled()
	c.Configure(2, 6)
	if c.Outstanding() != 0 {
		t.Fatalf("outstanding = %d, want 0", c.Outstanding())
	}

	c.UnitSettled()
	if c.Outstanding() != 0 {
		t.Fatalf("late signal drove outstanding to %d", c.Outstanding())
	}
	if fake.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1 safety-net aggregation", fake.Pending())
	}
	fake.Advance(DefaultDebounce)
	if rec.resultCount() != 0 {
		t.Fatalf("result callbacks = %d, want 0", rec.resultCount())
	}
	if !c.Result().Equal(Result{Total: 12, Values: []int{6, 6}}) {
		t.Fatalf("result = %+v, want baseline", c.Result())
	}
}

func TestConfigureDiscardsArmedAggregation(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 1, 6)
	attachUnits(t, c, newFakeUnit(6, 2))

	c.RollAll(nil)
	c.UnitSettled()
	if fake.Pending() != 1 {
		t.Fatalf("pending timers = %d, want 1", fake.Pending())
	}

	c.Configure(1, 6)
	fake.Advance(DefaultDebounce)

	if rec.passCount() != 0 {
		t.Fatalf("aggregation passes = %d, want 0", rec.passCount())
	}
}

func TestConfigureReplacesBaselineWithoutCallback(t *testing.T) {
	c, _, rec := newTestCoordinator(t, 3, 6)
	units := []*fakeUnit{newFakeUnit(6, 1), newFakeUnit(6, 1), newFakeUnit(6, 1)}
	attachUnits(t, c, units...)

	c.Configure(2, 4)

	want := Result{Total: 8, Values: []int{4, 4}}
	if !c.Result().Equal(want) {
		t.Fatalf("result = %+v, want %+v", c.Result(), want)
	}
	if c.Len() != 2 || c.Live() != 2 {
		t.Fatalf("len/live = %d/%d, want 2/2", c.Len(), c.Live())
	}
	if rec.resultCount() != 0 {
		t.Fatalf("result callbacks = %d, want 0", rec.resultCount())
	}

	c.Configure(4, 4)
	if c.Len() != 4 || c.Live() != 2 {
		t.Fatalf("len/live = %d/%d, want 4/2", c.Len(), c.Live())
	}
}

func TestDetachedUnitStallsUntilConfigure(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	attachUnits(t, c, newFakeUnit(6, 3), newFakeUnit(6, 4))

	c.RollAll(nil)
	c.UnitSettled()
	c.Detach(1)
	fake.Advance(time.Second)

	if rec.passCount() != 0 {
		t.Fatalf("aggregation passes = %d, want 0", rec.passCount())
	}
	if c.Outstanding() != 1 {
		t.Fatalf("outstanding = %d, want 1", c.Outstanding())
	}

	c.Configure(2, 6)
	if c.Outstanding() != 0 {
		t.Fatalf("outstanding = %d, want 0", c.Outstanding())
	}
}

func TestSupersedingRollCountsStaleSignals(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	attachUnits(t, c, newFakeUnit(6, 3), newFakeUnit(6, 4))

	c.RollAll(nil)
	c.UnitSettled()
	c.RollAll(nil)
	if c.Outstanding() != 2 {
		t.Fatalf("outstanding = %d, want 2", c.Outstanding())
	}

	// The first dispatch's remaining signal counts toward the second.
	c.UnitSettled()
	if c.Outstanding() != 1 {
		t.Fatalf("outstanding = %d, want 1", c.Outstanding())
	}
	c.UnitSettled()
	fake.Advance(DefaultDebounce)
	if rec.resultCount() != 1 {
		t.Fatalf("result callbacks = %d, want 1", rec.resultCount())
	}
}

func TestUnavailableValueFallsBackToDefault(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	missing := newFakeUnit(6, 2)
	missing.unavailable = true
	attachUnits(t, c, newFakeUnit(6, 3), missing)

	c.RollAll(nil)
	c.UnitSettled()
	c.UnitSettled()
	fake.Advance(DefaultDebounce)

	want := Result{Total: 9, Values: []int{3, 6}}
	if rec.resultCount() != 1 || !rec.results[0].Equal(want) {
		t.Fatalf("results = %+v, want [%+v]", rec.results, want)
	}
}

func TestIdleSignalReaggregates(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 1, 6)
	unit := newFakeUnit(6, 6)
	attachUnits(t, c, unit)

	unit.mu.Lock()
	unit.value = 2
	unit.mu.Unlock()
	c.UnitSettled()
	fake.Advance(DefaultDebounce)

	if rec.resultCount() != 1 || rec.results[0].Total != 2 {
		t.Fatalf("results = %+v, want one result with total 2", rec.results)
	}
}

func TestSynchronousSettleDoesNotDeadlock(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 2, 6)
	units := []*fakeUnit{newFakeUnit(6, 1), newFakeUnit(6, 2)}
	for _, unit := range units {
		unit.onRoll = c.UnitSettled
	}
	attachUnits(t, c, units...)

	c.RollAll(nil)
	fake.Advance(DefaultDebounce)

	if rec.resultCount() != 1 || rec.results[0].Total != 3 {
		t.Fatalf("results = %+v, want total 3", rec.results)
	}
}

func TestAttachOutOfRange(t *testing.T) {
	c, _, _ := newTestCoordinator(t, 1, 6)
	for _, index := range []int{-1, 1, 5} {
		if err := c.Attach(index, newFakeUnit(6, 6)); !errors.Is(err, ErrSlotOutOfRange) {
			t.Fatalf("attach(%d) error = %v, want %v", index, err, ErrSlotOutOfRange)
		}
	}
	c.Detach(7)
}

func TestForcedValuesAreCopied(t *testing.T) {
	c, _, _ := newTestCoordinator(t, 1, 6)
	unit := newFakeUnit(6, 6)
	attachUnits(t, c, unit)

	forced := intPtr(3)
	c.RollAll([]*int{forced})
	*forced = 5

	if got := *unit.rolls[0]; got != 3 {
		t.Fatalf("forced value = %d, want 3", got)
	}
}

func TestForcedValuesSkipEmptySlots(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 3, 6)
	a, b := newFakeUnit(6, 1), newFakeUnit(6, 1)
	attachUnits(t, c, nil, a, b)

	if !c.RollAll([]*int{intPtr(4), intPtr(5)}) {
		t.Fatal("expected roll to dispatch")
	}
	if a.rolls[0] == nil || *a.rolls[0] != 4 {
		t.Fatalf("slot 1 forced = %v, want 4", a.rolls[0])
	}
	if b.rolls[0] == nil || *b.rolls[0] != 5 {
		t.Fatalf("slot 2 forced = %v, want 5", b.rolls[0])
	}

	c.UnitSettled()
	c.UnitSettled()
	fake.Advance(DefaultDebounce)
	want := Result{Total: 9, Values: []int{4, 5}}
	if rec.resultCount() != 1 || !rec.results[0].Equal(want) {
		t.Fatalf("results = %+v, want %+v", rec.results, want)
	}
}

func TestShortForcedListRandomizesRemainingUnits(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 3, 6)
	units := []*fakeUnit{newFakeUnit(6, 1), newFakeUnit(6, 3), newFakeUnit(6, 5)}
	attachUnits(t, c, units...)

	c.RollAll([]*int{intPtr(2)})

	if units[0].rolls[0] == nil || *units[0].rolls[0] != 2 {
		t.Fatalf("slot 0 forced = %v, want 2", units[0].rolls[0])
	}
	for i, unit := range units[1:] {
		if unit.rolls[0] != nil {
			t.Fatalf("slot %d forced = %d, want random", i+1, *unit.rolls[0])
		}
	}

	for range units {
		c.UnitSettled()
	}
	fake.Advance(DefaultDebounce)
	want := Result{Total: 10, Values: []int{2, 3, 5}}
	if rec.resultCount() != 1 || !rec.results[0].Equal(want) {
		t.Fatalf("results = %+v, want %+v", rec.results, want)
	}
}

func TestCloseStopsTimersAndIgnoresSignals(t *testing.T) {
	c, fake, rec := newTestCoordinator(t, 1, 6)
	attachUnits(t, c, newFakeUnit(6, 1))

	c.RollAll(nil)
	c.UnitSettled()
	c.Close()
	fake.Advance(DefaultDebounce)
	c.UnitSettled()

	if rec.passCount() != 0 || fake.Pending() != 0 {
		t.Fatalf("passes/pending = %d/%d, want 0/0", rec.passCount(), fake.Pending())
	}
	if c.RollAll(nil) {
		t.Fatal("expected closed coordinator to ignore rolls")
	}
}

func TestRealClockAggregates(t *testing.T) {
	results := make(chan Result, 1)
	c := New(2, 6, Options{
		Debounce: 5 * time.Millisecond,
		OnResult: func(result Result) { results <- result },
	})
	defer c.Close()
	units := []*fakeUnit{newFakeUnit(6, 1), newFakeUnit(6, 5)}
	for _, unit := range units {
		unit.onRoll = func() { go c.UnitSettled() }
	}
	attachUnits(t, c, units...)

	c.RollAll(nil)

	select {
	case got := <-results:
		if !slices.Equal(got.Values, []int{1, 5}) {
			t.Fatalf("values = %v, want [1 5]", got.Values)
		}
	case <-time.After(2 * time.Second):
		t.Fatal("timeout waiting for result")
	}
}
