package app

import (
	"context"
	"sync"

	"github.com/rs/zerolog/log"

	"travel_catalog/internal/domain"
)

// FetchFunc loads the full sequence for one listing.
type FetchFunc[T any] func(ctx context.Context) ([]T, error)

// LoadObserver is an optional extension of domain.ErrorReporter that is told
// how many items each successful fetch produced.
type LoadObserver interface {
	Loaded(category domain.Category, n int)
}

// Listing is the per-screen controller: it owns the screen's State and runs
// its fetches. Overlapping Start/Refresh calls resolve last-call-wins: a new
// call cancels the in-flight fetch and results of older calls are dropped.
type Listing[T domain.Item] struct {
	category domain.Category
	fetch    FetchFunc[T]
	reporter domain.ErrorReporter

	mu     sync.Mutex
	state  State[T]
	gen    uint64
	cancel context.CancelFunc
}

func NewListing[T domain.Item](cat domain.Category, fetch FetchFunc[T], reporter domain.ErrorReporter) *Listing[T] {
	return &Listing[T]{
		category: cat,
		fetch:    fetch,
		reporter: reporter,
		state:    Initial[T](),
	}
}

func (l *Listing[T]) Category() domain.Category { return l.category }

// Start mounts the screen: Loading, then Ready or Error. It blocks until the
// fetch resolves or is superseded.
func (l *Listing[T]) Start(ctx context.Context) {
	l.run(ctx, State[T].Begin)
}

// Refresh reloads without clearing the items currently shown.
func (l *Listing[T]) Refresh(ctx context.Context) {
	l.run(ctx, State[T].BeginRefresh)
}

func (l *Listing[T]) run(ctx context.Context, enter func(State[T]) State[T]) {
	l.mu.Lock()
	if l.cancel != nil {
		l.cancel()
	}
	l.gen++
	gen := l.gen
	fctx, cancel := context.WithCancel(ctx)
	l.cancel = cancel
	prevStatus, prevErr := l.state.Status, l.state.Err
	l.state = enter(l.state)
	l.mu.Unlock()
	defer cancel()

	items, err := l.fetch(fctx)

	l.mu.Lock()
	if gen != l.gen {
		l.mu.Unlock()
		log.Debug().Str("category", string(l.category)).Uint64("gen", gen).Msg("stale fetch result dropped")
		return
	}
	l.cancel = nil
	if err != nil && ctx.Err() != nil {
		// the caller gave up; the remote did not fail
		l.state = l.state.Abandon(prevStatus, prevErr)
		l.mu.Unlock()
		log.Debug().Str("category", string(l.category)).Err(ctx.Err()).Msg("fetch abandoned by caller")
		return
	}
	if err != nil {
		l.state = l.state.Failed(err)
	} else {
		l.state = l.state.Loaded(items)
	}
	l.mu.Unlock()

	if err != nil {
		if l.reporter != nil {
			l.reporter.Report(l.category, err)
		}
		return
	}
	if o, ok := l.reporter.(LoadObserver); ok {
		o.Loaded(l.category, len(items))
	}
}

// Close cancels any in-flight fetch; its result will be discarded.
func (l *Listing[T]) Close() {
	l.mu.Lock()
	defer l.mu.Unlock()
	if l.cancel != nil {
		l.cancel()
		l.cancel = nil
	}
	l.gen++
}

// Snapshot returns a copy of the current state.
func (l *Listing[T]) Snapshot() State[T] {
	l.mu.Lock()
	defer l.mu.Unlock()
	return l.state
}

func (l *Listing[T]) Select(item T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = l.state.Select(item)
}

// SelectID selects the first held item with the given id.
func (l *Listing[T]) SelectID(id string) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()
	for _, it := range l.state.Items {
		if it.ItemID() == id {
			l.state = l.state.Select(it)
			return it, true
		}
	}
	var zero T
	return zero, false
}

func (l *Listing[T]) Dismiss() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = l.state.Dismiss()
}

func (l *Listing[T]) SetLabel(label Label) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.state = l.state.WithLabel(label)
}

// ListView is the display-facing projection of a listing.
type ListView[T any] struct {
	Category   domain.Category `json:"category"`
	Status     Status          `json:"status"`
	Refreshing bool            `json:"refreshing"`
	Label      Label           `json:"label"`
	Items      []T             `json:"items"`
}

// View applies the label filter and hides failures behind a ready status.
func (l *Listing[T]) View() ListView[T] {
	s := l.Snapshot()
	items := Filter(s.Items, s.Label)
	if items == nil {
		items = []T{}
	}
	return ListView[T]{
		Category:   l.category,
		Status:     s.DisplayStatus(),
		Refreshing: s.Refreshing,
		Label:      s.Label,
		Items:      items,
	}
}
