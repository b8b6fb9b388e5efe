// Package app holds the application state: the last loaded dataset, the
// timeline rebuilt from it and the period currently on screen. It is the only
// stateful layer and is driven from a single goroutine.
package app

import (
	"context"
	"errors"
	"fmt"
	"slices"

	"go.uber.org/zap"

	"github.com/rustyeddy/pocketbook/journal"
	"github.com/rustyeddy/pocketbook/ledger"
)

// ErrUnknownPeriod is returned by Select for a key that is neither "all" nor a
// month present in the timeline.
var ErrUnknownPeriod = errors.New("unknown period")

// View is everything a screen needs for the selected period.
type View struct {
	Period   string
	Events   []ledger.Event
	Baseline ledger.Baseline
	Report   ledger.Report
	Curve    []ledger.Point
}

// State coordinates the store and the ledger computations.
type State struct {
	store journal.Store
	log   *zap.Logger
	opts  ledger.Options

	data     journal.Dataset
	timeline []ledger.Event
	months   []string
	period   string
	lastErr  error
	loaded   bool
}

// New returns a state bound to store. A nil logger disables logging.
func New(store journal.Store, log *zap.Logger, opts ledger.Options) *State {
	if log == nil {
		log = zap.NewNop()
	}
	return &State{
		store:  store,
		log:    log,
		opts:   opts,
		period: ledger.AllTime,
	}
}

// Reload fetches the dataset and rebuilds the timeline from scratch. On
// failure the previous timeline stays in place and the error is recorded.
func (s *State) Reload(ctx context.Context) error {
	data, err := s.store.Fetch(ctx)
	if err != nil {
		s.lastErr = err
		s.log.Error("fetch dataset", zap.Error(err), zap.Int("kept_events", len(s.timeline)))
		return err
	}

	s.data = data
	s.timeline = data.Timeline(s.opts)
	s.months = ledger.Months(s.timeline)
	s.lastErr = nil
	s.loaded = true

	if s.period != ledger.AllTime && !slices.Contains(s.months, s.period) {
		s.log.Info("selected month no longer present", zap.String("period", s.period))
		s.period = ledger.AllTime
	}

	s.log.Debug("timeline rebuilt",
		zap.Int("trades", len(data.Trades)),
		zap.Int("transactions", len(data.Transactions)),
		zap.Int("months", len(s.months)),
	)
	return nil
}

// Select changes the period on screen.
func (s *State) Select(period string) error {
	if period == "" {
		period = ledger.AllTime
	}
	if period != ledger.AllTime && !slices.Contains(s.months, period) {
		return fmt.Errorf("%w: %q", ErrUnknownPeriod, period)
	}
	s.period = period
	return nil
}

// Period returns the selected period key.
func (s *State) Period() string {
	return s.period
}

// Periods returns "all" followed by the month keys, newest first.
func (s *State) Periods() []string {
	return append([]string{ledger.AllTime}, s.months...)
}

// View computes the filtered slice, report and curve of the selected period.
func (s *State) View() View {
	p, err := ledger.ParsePeriod(s.period)
	if err != nil {
		p, _ = ledger.ParsePeriod(ledger.AllTime)
	}
	events, base := ledger.Filter(s.timeline, p)
	return View{
		Period:   s.period,
		Events:   events,
		Baseline: base,
		Report:   ledger.Summarize(events, base),
		Curve:    ledger.Curve(events, base),
	}
}

// Submit sends m to the store and reloads whatever the outcome, so the
// screen reflects the store's state. A submit error takes precedence over a
// reload error.
func (s *State) Submit(ctx context.Context, m journal.Mutation) error {
	log := s.log.With(zap.String("action", string(m.Action)), zap.String("id", m.ID))

	subErr := s.store.Submit(ctx, m)
	if subErr != nil {
		log.Error("submit mutation", zap.Error(subErr))
	} else {
		log.Info("mutation accepted")
	}

	if err := s.Reload(ctx); err != nil && subErr == nil {
		return err
	}
	return subErr
}

// Timeline returns the full enriched timeline.
func (s *State) Timeline() []ledger.Event {
	return s.timeline
}

// Dataset returns the last successfully loaded dataset.
func (s *State) Dataset() journal.Dataset {
	return s.data
}

// Loaded reports whether a fetch has ever succeeded.
func (s *State) Loaded() bool {
	return s.loaded
}

// Err returns the error of the last failed reload, or nil.
func (s *State) Err() error {
	return s.lastErr
}
