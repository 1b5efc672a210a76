// Package coordinator synchronizes rolls across a group of independently
// animating die units.
//
// A Coordinator owns a fixed-length, ordered set of unit slots. RollAll
// commands every attached unit to roll and arms an outstanding counter; each
// unit reports back through UnitSettled when its animation completes. When the
// counter reaches zero the coordinator waits a short debounce window, reads
// every unit's settled value, and notifies OnResult if the aggregate differs
// from the last one it reported.
//
// # Superseded rolls
//
// Dispatches are not tagged with a generation. Calling RollAll while a
// previous roll is outstanding re-arms the counter, and completion signals
// from the earlier dispatch still count toward the new one. Configure zeroes
// the counter; signals arriving afterwards take the idle branch of
// UnitSettled and only trigger a re-aggregation.
//
// # Detached units
//
// A unit detached between dispatch and completion never signals, so the
// counter never reaches zero for that roll. A later Configure is the way back
// to a consistent resting state.
package coordinator

import (
	"errors"
	"slices"
	"sync"
	"time"

	"github.com/louisbranch/dicetray/internal/dice/clock"
)

// DefaultDebounce is the delay between the last expected settle signal and
// the aggregation pass.
const DefaultDebounce = 100 * time.Millisecond

// ErrSlotOutOfRange indicates an attach outside the configured slot range.
var ErrSlotOutOfRange = errors.New("unit slot is out of range")

// Unit is the narrow contract the coordinator consumes from a die.
//
// RollDie starts a roll that settles to *forced when forced is non-nil and
// valid for the unit, otherwise to a value of the unit's choosing. The unit
// must call the coordinator's UnitSettled exactly once per RollDie.
//
// Value returns the last settled value. The second result is false when the
// unit cannot report one; the coordinator then uses its default value. Value
// must not call back into the coordinator.
type Unit interface {
	RollDie(forced *int)
	Value() (int, bool)
}

// Result is an aggregated roll: the total and the per-slot values of every
// attached unit in slot order.
type Result struct {
	Total  int
	Values []int
}

// Equal reports whether r and other hold the same total and value sequence.
func (r Result) Equal(other Result) bool {
	return r.Total == other.Total && slices.Equal(r.Values, other.Values)
}

func (r Result) clone() Result {
	return Result{Total: r.Total, Values: slices.Clone(r.Values)}
}

// Aggregation describes one aggregation pass.
type Aggregation struct {
	Result Result
	// Changed is true when the pass replaced the previous result.
	Changed bool
	// Outstanding is the counter value when the pass ran.
	Outstanding int
}

// Options configures coordinator callbacks and timing.
type Options struct {
	// Clock schedules debounce timers. Defaults to the real clock.
	Clock clock.Clock
	// Debounce overrides DefaultDebounce when positive.
	Debounce time.Duration
	// OnResult receives each distinct aggregated result.
	OnResult func(Result)
	// OnRollStarted fires once per dispatched RollAll.
	OnRollStarted func()
	// OnAggregate fires after every aggregation pass, changed or not.
	OnAggregate func(Aggregation)
	// Logf receives diagnostic messages.
	Logf func(string, ...any)
}

// Coordinator tracks in-flight rolls across a set of unit slots. All methods
// are safe for concurrent use; callbacks and unit commands run without the
// internal lock held.
type Coordinator struct {
	clock         clock.Clock
	debounce      time.Duration
	onResult      func(Result)
	onRollStarted func()
	onAggregate   func(Aggregation)
	logf          func(string, ...any)

	mu                  sync.Mutex
	units               []Unit
	defaultValue        int
	outstanding         int
	previousOutstanding int
	current             Result
	timerSeq            uint64
	timers              map[uint64]clock.Timer
	closed              bool
}

// New creates a coordinator with unitCount empty slots. The resting result
// starts at unitCount copies of defaultValue and no callback fires for it.
func New(unitCount, defaultValue int, opts Options) *Coordinator {
	if unitCount < 0 {
		unitCount = 0
	}
	debounce := opts.Debounce
	if debounce <= 0 {
		debounce = DefaultDebounce
	}
	return &Coordinator{
		clock:         clock.OrReal(opts.Clock),
		debounce:      debounce,
		onResult:      opts.OnResult,
		onRollStarted: opts.OnRollStarted,
		onAggregate:   opts.OnAggregate,
		logf:          opts.Logf,
		units:         make([]Unit, unitCount),
		defaultValue:  defaultValue,
		current:       baseline(unitCount, defaultValue),
		timers:        make(map[uint64]clock.Timer),
	}
}

func baseline(unitCount, defaultValue int) Result {
	values := make([]int, unitCount)
	for i := range values {
		values[i] = defaultValue
	}
	return Result{Total: unitCount * defaultValue, Values: values}
}

// Configure re-provisions the slot collection. Slots below the new count keep
// their unit; new slots start empty. The resting result is replaced when the
// new baseline differs from it. Any in-flight roll bookkeeping and armed
// aggregation timers are discarded. No callback fires.
func (c *Coordinator) Configure(unitCount, defaultValue int) {
	if unitCount < 0 {
		unitCount = 0
	}

	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	units := make([]Unit, unitCount)
	copy(units, c.units)
	c.units = units
	c.defaultValue = defaultValue

	next := baseline(unitCount, defaultValue)
	if !next.Equal(c.current) {
		c.current = next
	}
	dropped := c.outstanding
	c.outstanding = 0
	c.previousOutstanding = 0
	c.stopTimersLocked()
	c.mu.Unlock()

	if dropped > 0 {
		c.log("configure discarded %d outstanding settle signals", dropped)
	}
}

// Attach binds unit to slot index, replacing any unit already there.
func (c *Coordinator) Attach(index int, unit Unit) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.units) {
		return ErrSlotOutOfRange
	}
	c.units[index] = unit
	return nil
}

// Detach empties slot index. Unknown slots are ignored.
func (c *Coordinator) Detach(index int) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if index < 0 || index >= len(c.units) {
		return
	}
	c.units[index] = nil
}

// liveLocked returns the attached units in slot order.
func (c *Coordinator) liveLocked() []Unit {
	live := make([]Unit, 0, len(c.units))
	for _, unit := range c.units {
		if unit != nil {
			live = append(live, unit)
		}
	}
	return live
}

// RollAll commands every attached unit to roll. forced is indexed by live
// position: forced[k], when present and non-nil, goes to the k-th attached
// unit in slot order, skipping empty slots. Units past the end of forced
// randomize. It reports false without touching any state when no unit is
// attached.
func (c *Coordinator) RollAll(forced []*int) bool {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return false
	}
	live := c.liveLocked()
	if len(live) == 0 {
		c.mu.Unlock()
		return false
	}
	c.outstanding = len(live)
	c.previousOutstanding = len(live)
	c.mu.Unlock()

	if c.onRollStarted != nil {
		c.onRollStarted()
	}
	for pos, unit := range live {
		unit.RollDie(forcedAt(forced, pos))
	}
	return true
}

func forcedAt(forced []*int, pos int) *int {
	if pos >= len(forced) || forced[pos] == nil {
		return nil
	}
	value := *forced[pos]
	return &value
}

// UnitSettled records one completion signal. When no roll is outstanding the
// signal only schedules a re-aggregation; otherwise it decrements the counter
// and schedules aggregation on the transition to zero.
func (c *Coordinator) UnitSettled() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.outstanding <= 0 {
		c.scheduleAggregateLocked()
		c.mu.Unlock()
		c.log("settle signal with no roll outstanding")
		return
	}
	c.previousOutstanding = c.outstanding
	c.outstanding--
	if c.previousOutstanding > 0 && c.outstanding <= 0 {
		c.scheduleAggregateLocked()
	}
	c.mu.Unlock()
}

func (c *Coordinator) scheduleAggregateLocked() {
	c.timerSeq++
	id := c.timerSeq
	c.timers[id] = c.clock.AfterFunc(c.debounce, func() {
		c.aggregate(id)
	})
}

func (c *Coordinator) stopTimersLocked() {
	for id, timer := range c.timers {
		timer.Stop()
		delete(c.timers, id)
	}
}

// aggregate reads every attached unit and publishes the result when it
// differs from the current one. Passes whose timer was discarded are skipped.
func (c *Coordinator) aggregate(timerID uint64) {
	c.mu.Lock()
	if _, ok := c.timers[timerID]; !ok {
		c.mu.Unlock()
		return
	}
	delete(c.timers, timerID)

	next := Result{Values: make([]int, 0, len(c.units))}
	for _, unit := range c.units {
		if unit == nil {
			continue
		}
		value, ok := unit.Value()
		if !ok {
			value = c.defaultValue
		}
		next.Values = append(next.Values, value)
		next.Total += value
	}

	changed := !next.Equal(c.current)
	if changed {
		c.current = next
	}
	pass := Aggregation{
		Result:      next.clone(),
		Changed:     changed,
		Outstanding: c.outstanding,
	}
	c.mu.Unlock()

	if changed && c.onResult != nil {
		c.onResult(next.clone())
	}
	if c.onAggregate != nil {
		c.onAggregate(pass)
	}
}

// Result returns the current resting result.
func (c *Coordinator) Result() Result {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.current.clone()
}

// Outstanding returns the number of units that have not signalled for the
// current roll.
func (c *Coordinator) Outstanding() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.outstanding
}

// Live returns the number of attached units.
func (c *Coordinator) Live() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.liveLocked())
}

// Len returns the number of slots.
func (c *Coordinator) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.units)
}

// Close discards armed aggregation timers. Subsequent rolls and signals are
// ignored.
func (c *Coordinator) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.closed = true
	c.stopTimersLocked()
}

func (c *Coordinator) log(format string, args ...any) {
	if c.logf != nil {
		c.logf(format, args...)
	}
}
