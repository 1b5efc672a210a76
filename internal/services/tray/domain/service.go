// Package domain owns the dice tray: one roll coordinator and the simulated
// dice attached to it.
package domain

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/louisbranch/dicetray/internal/dice/clock"
	"github.com/louisbranch/dicetray/internal/dice/coordinator"
	"github.com/louisbranch/dicetray/internal/dice/die"
	apperrors "github.com/louisbranch/dicetray/internal/platform/errors"
	"github.com/louisbranch/dicetray/internal/platform/id"
	"github.com/louisbranch/dicetray/internal/random"
	"github.com/louisbranch/dicetray/internal/services/tray/storage"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	otelcodes "go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	tracerName       = "github.com/louisbranch/dicetray/internal/services/tray/domain"
	subscriberBuffer = 16
)

// Result is an aggregated roll.
type Result = coordinator.Result

// State is a snapshot of the tray.
type State struct {
	Settings Settings
	Result   Result
	// Outstanding counts dice that have not settled for the current roll.
	Outstanding int
	Live        int
}

// Rolling reports whether a roll is still in flight.
func (s State) Rolling() bool {
	return s.Outstanding > 0
}

// RollOutcome is the settled result of one Roll call.
type RollOutcome struct {
	ID     string
	Total  int
	Values []int
	// Changed is false when the roll repeated the previous outcome.
	Changed bool
}

// ServiceConfig wires the tray's collaborators. Zero values select defaults.
type ServiceConfig struct {
	// Store persists settings across restarts. Nil keeps them in memory only.
	Store    storage.SettingsStore
	Clock    clock.Clock
	Seeds    random.SeedFunc
	NewID    func() (string, error)
	Defaults Settings

	Debounce  time.Duration
	Animation time.Duration
	Jitter    time.Duration
	// RollTimeout bounds how long Roll waits for the dice to settle.
	RollTimeout time.Duration

	Tracer trace.Tracer
	Logf   func(string, ...any)
}

// Service coordinates rolls across the tray's dice.
type Service struct {
	store       storage.SettingsStore
	clock       clock.Clock
	seeds       random.SeedFunc
	newID       func() (string, error)
	defaults    Settings
	animation   time.Duration
	jitter      time.Duration
	rollTimeout time.Duration
	tracer      trace.Tracer
	logf        func(string, ...any)

	coord        *coordinator.Coordinator
	rollsStarted atomic.Uint64

	mu          sync.Mutex
	started     bool
	closed      bool
	settings    Settings
	dice        []*die.Die
	waiters     map[*rollWaiter]struct{}
	subscribers map[chan Result]struct{}
}

type rollWaiter struct {
	// after is the dispatch count observed before this waiter's roll.
	after uint64
	done  chan waitResult
}

type waitResult struct {
	pass coordinator.Aggregation
	err  error
}

// NewService builds a tray that is not yet provisioned; call Start before
// rolling.
func NewService(cfg ServiceConfig) (*Service, error) {
	defaults := cfg.Defaults
	if defaults == (Settings{}) {
		defaults = DefaultSettings()
	}
	if err := defaults.Validate(); err != nil {
		return nil, fmt.Errorf("default settings: %w", err)
	}
	seeds := cfg.Seeds
	if seeds == nil {
		seeds = random.NewSeed
	}
	newID := cfg.NewID
	if newID == nil {
		newID = id.NewID
	}
	tracer := cfg.Tracer
	if tracer == nil {
		tracer = otel.Tracer(tracerName)
	}

	s := &Service{
		store:       cfg.Store,
		clock:       clock.OrReal(cfg.Clock),
		seeds:       seeds,
		newID:       newID,
		defaults:    defaults,
		animation:   cfg.Animation,
		jitter:      cfg.Jitter,
		rollTimeout: cfg.RollTimeout,
		tracer:      tracer,
		logf:        cfg.Logf,
		settings:    defaults,
		waiters:     make(map[*rollWaiter]struct{}),
		subscribers: make(map[chan Result]struct{}),
	}
	s.coord = coordinator.New(defaults.UnitCount, defaults.DefaultValue, coordinator.Options{
		Clock:         s.clock,
		Debounce:      cfg.Debounce,
		OnResult:      s.publish,
		OnRollStarted: s.onRollStarted,
		OnAggregate:   s.onAggregate,
		Logf:          cfg.Logf,
	})
	return s, nil
}

// Start loads persisted settings, falling back to the defaults, and attaches
// a die to every slot. Calling Start again is a no-op.
func (s *Service) Start(ctx context.Context) (err error) {
	ctx, span := s.tracer.Start(ctx, "tray.start")
	defer func() { endSpan(span, err) }()

	settings := s.defaults
	if s.store != nil {
		record, err := s.store.GetSettings(ctx)
		switch {
		case err == nil:
			loaded := settingsFromRecord(record)
			if verr := loaded.Validate(); verr != nil {
				s.log("ignoring stored tray settings: %v", verr)
			} else {
				settings = loaded
			}
		case errors.Is(err, storage.ErrNotFound):
		default:
			return fmt.Errorf("load tray settings: %w", err)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return errTrayClosed()
	}
	if s.started {
		return nil
	}
	if err := s.provisionLocked(settings); err != nil {
		return err
	}
	s.started = true
	span.SetAttributes(settingsAttributes(settings)...)
	return nil
}

// Configure validates and persists settings, then re-provisions the dice.
// Rolls still waiting to settle fail with ROLL_SUPERSEDED.
func (s *Service) Configure(ctx context.Context, settings Settings) (State, error) {
	return s.configure(ctx, "tray.configure", func(Settings) Settings { return settings })
}

// ConfigurePatch overlays the fields set in patch onto the current settings
// and applies the result like Configure. The merge happens under the tray
// lock, so concurrent patches of different fields all take effect.
func (s *Service) ConfigurePatch(ctx context.Context, patch SettingsPatch) (State, error) {
	return s.configure(ctx, "tray.configure_patch", patch.Apply)
}

func (s *Service) configure(ctx context.Context, spanName string, next func(current Settings) Settings) (state State, err error) {
	ctx, span := s.tracer.Start(ctx, spanName)
	defer func() { endSpan(span, err) }()

	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	settings := next(s.settings)
	span.SetAttributes(settingsAttributes(settings)...)
	if err := settings.Validate(); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	if s.store != nil {
		record := settings.record()
		record.UpdatedAt = s.clock.Now().UTC()
		if err := s.store.PutSettings(ctx, record); err != nil {
			s.mu.Unlock()
			return State{}, fmt.Errorf("persist tray settings: %w", err)
		}
	}
	if err := s.provisionLocked(settings); err != nil {
		s.mu.Unlock()
		return State{}, err
	}
	waiters := s.takeWaitersLocked()
	state = s.stateLocked()
	s.mu.Unlock()

	superseded := apperrors.New(apperrors.CodeRollSuperseded, "tray reconfigured before roll settled")
	for _, w := range waiters {
		w.done <- waitResult{err: superseded}
	}
	if len(waiters) > 0 {
		s.log("configure superseded %d pending rolls", len(waiters))
	}
	return state, nil
}

// provisionLocked swaps in freshly built dice for settings. Old dice are
// stopped so they never signal into the new configuration.
func (s *Service) provisionLocked(settings Settings) error {
	dice := make([]*die.Die, settings.UnitCount)
	for i := range dice {
		seed, err := s.seeds()
		if err != nil {
			return fmt.Errorf("seed die %d: %w", i, err)
		}
		d, err := die.New(die.Config{
			Sides:     settings.Sides,
			Default:   settings.DefaultValue,
			Animation: s.animation,
			Jitter:    s.jitter,
			Seed:      seed,
			Clock:     s.clock,
			OnSettled: s.coord.UnitSettled,
		})
		if err != nil {
			return fmt.Errorf("build die %d: %w", i, err)
		}
		dice[i] = d
	}

	for _, d := range s.dice {
		d.Stop()
	}
	s.coord.Configure(settings.UnitCount, settings.DefaultValue)
	for i, d := range dice {
		if err := s.coord.Attach(i, d); err != nil {
			return fmt.Errorf("attach die %d: %w", i, err)
		}
	}
	s.dice = dice
	s.settings = settings
	return nil
}

// Roll rolls every die and waits for the aggregated result. forced[k], when
// non-nil, fixes the face of the k-th live die.
func (s *Service) Roll(ctx context.Context, forced []*int) (outcome RollOutcome, err error) {
	ctx, span := s.tracer.Start(ctx, "tray.roll", trace.WithAttributes(
		attribute.Int("tray.forced_count", len(forced)),
	))
	defer func() { endSpan(span, err) }()

	if s.rollTimeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, s.rollTimeout)
		defer cancel()
	}

	rollID, err := s.newID()
	if err != nil {
		return RollOutcome{}, fmt.Errorf("generate roll id: %w", err)
	}
	span.SetAttributes(attribute.String("tray.roll_id", rollID))

	s.mu.Lock()
	if err := s.readyLocked(); err != nil {
		s.mu.Unlock()
		return RollOutcome{}, err
	}
	// Registration and dispatch share the lock so a Configure either
	// supersedes this roll before its dice move or runs after they do.
	// RollAll only arms die timers and never re-enters the service.
	w := &rollWaiter{after: s.rollsStarted.Load(), done: make(chan waitResult, 1)}
	if !s.coord.RollAll(forced) {
		s.mu.Unlock()
		return RollOutcome{}, apperrors.New(apperrors.CodeRollNoLiveUnits, "no live dice to roll")
	}
	s.waiters[w] = struct{}{}
	s.mu.Unlock()

	select {
	case res := <-w.done:
		if res.err != nil {
			return RollOutcome{}, res.err
		}
		span.SetAttributes(
			attribute.Int("tray.total", res.pass.Result.Total),
			attribute.Bool("tray.changed", res.pass.Changed),
		)
		return RollOutcome{
			ID:      rollID,
			Total:   res.pass.Result.Total,
			Values:  res.pass.Result.Values,
			Changed: res.pass.Changed,
		}, nil
	case <-ctx.Done():
		s.removeWaiter(w)
		if errors.Is(ctx.Err(), context.DeadlineExceeded) {
			return RollOutcome{}, apperrors.Wrap(apperrors.CodeRollTimedOut, "roll did not settle before deadline", ctx.Err())
		}
		return RollOutcome{}, ctx.Err()
	}
}

// State returns the current tray snapshot.
func (s *Service) State(ctx context.Context) State {
	_, span := s.tracer.Start(ctx, "tray.state")
	defer span.End()

	s.mu.Lock()
	defer s.mu.Unlock()
	return s.stateLocked()
}

func (s *Service) stateLocked() State {
	return State{
		Settings:    s.settings,
		Result:      s.coord.Result(),
		Outstanding: s.coord.Outstanding(),
		Live:        s.coord.Live(),
	}
}

// Subscribe streams every distinct result until cancel is called or the
// service closes. Results are dropped for subscribers that fall behind.
func (s *Service) Subscribe() (<-chan Result, func()) {
	ch := make(chan Result, subscriberBuffer)

	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		close(ch)
		return ch, func() {}
	}
	s.subscribers[ch] = struct{}{}

	var once sync.Once
	cancel := func() {
		once.Do(func() {
			s.mu.Lock()
			defer s.mu.Unlock()
			if _, ok := s.subscribers[ch]; ok {
				delete(s.subscribers, ch)
				close(ch)
			}
		})
	}
	return ch, cancel
}

// Close stops every die, fails pending rolls and ends all subscriptions.
func (s *Service) Close() {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return
	}
	s.closed = true
	for _, d := range s.dice {
		d.Stop()
	}
	s.coord.Close()
	waiters := s.takeWaitersLocked()
	for ch := range s.subscribers {
		delete(s.subscribers, ch)
		close(ch)
	}
	s.mu.Unlock()

	for _, w := range waiters {
		w.done <- waitResult{err: errTrayClosed()}
	}
}

func (s *Service) publish(result Result) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for ch := range s.subscribers {
		select {
		case ch <- Result{Total: result.Total, Values: append([]int(nil), result.Values...)}:
		default:
			s.log("dropping result for slow subscriber")
		}
	}
}

func (s *Service) onRollStarted() {
	s.rollsStarted.Add(1)
}

// onAggregate completes waiters once a pass observes no outstanding dice for
// a roll dispatched after they registered.
func (s *Service) onAggregate(pass coordinator.Aggregation) {
	if pass.Outstanding > 0 {
		return
	}
	started := s.rollsStarted.Load()

	s.mu.Lock()
	ready := make([]*rollWaiter, 0, len(s.waiters))
	for w := range s.waiters {
		if started > w.after {
			ready = append(ready, w)
			delete(s.waiters, w)
		}
	}
	s.mu.Unlock()

	for _, w := range ready {
		w.done <- waitResult{pass: pass}
	}
}

func (s *Service) readyLocked() error {
	if s.closed {
		return errTrayClosed()
	}
	if !s.started {
		return apperrors.New(apperrors.CodeTrayNotStarted, "tray not started")
	}
	return nil
}

func (s *Service) takeWaitersLocked() []*rollWaiter {
	waiters := make([]*rollWaiter, 0, len(s.waiters))
	for w := range s.waiters {
		waiters = append(waiters, w)
		delete(s.waiters, w)
	}
	return waiters
}

func (s *Service) removeWaiter(w *rollWaiter) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.waiters, w)
}

func (s *Service) log(format string, args ...any) {
	if s.logf != nil {
		s.logf(format, args...)
	}
}

func errTrayClosed() error {
	return apperrors.New(apperrors.CodeTrayClosed, "tray closed")
}

func settingsAttributes(settings Settings) []attribute.KeyValue {
	return []attribute.KeyValue{
		attribute.Int("tray.unit_count", settings.UnitCount),
		attribute.Int("tray.default_value", settings.DefaultValue),
		attribute.Int("tray.sides", settings.Sides),
	}
}

func endSpan(span trace.Span, err error) {
	if err != nil {
		span.RecordError(err)
		span.SetStatus(otelcodes.Error, err.Error())
	}
	span.End()
}
