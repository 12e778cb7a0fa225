package app_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"travel_catalog/internal/app"
	"travel_catalog/internal/domain"
)

// ---- fakes ----

type fakeReporter struct {
	mu     sync.Mutex
	errs   []error
	loaded []int
}

func (r *fakeReporter) Report(cat domain.Category, err error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.errs = append(r.errs, err)
}

func (r *fakeReporter) Loaded(cat domain.Category, n int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.loaded = append(r.loaded, n)
}

func (r *fakeReporter) reported() []error {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]error(nil), r.errs...)
}

func static[T any](items []T, err error) app.FetchFunc[T] {
	return func(ctx context.Context) ([]T, error) { return items, err }
}

var twoHotels = []domain.Hotel{
	{ID: "h1", Name: "Ayana", Rating: domain.RatingOf(4.5), PricePerNight: 1500000},
	{ID: "h2", Name: "Kecil", Rating: domain.RatingOf(3.0), PricePerNight: 250000},
}

// ---- tests ----

func TestListing_StartSelectDismiss(t *testing.T) {
	rep := &fakeReporter{}
	l := app.NewListing(domain.Hotels, static(twoHotels, nil), rep)

	if s := l.Snapshot(); s.Status != app.StatusLoading {
		t.Fatalf("expected loading before start, got %s", s.Status)
	}

	l.Start(context.Background())
	s := l.Snapshot()
	if s.Status != app.StatusReady || len(s.Items) != 2 {
		t.Fatalf("expected ready with 2 items, got %s %d", s.Status, len(s.Items))
	}

	h, ok := l.SelectID("h1")
	if !ok || h.ID != "h1" {
		t.Fatalf("select h1 failed: %+v %v", h, ok)
	}
	s = l.Snapshot()
	if !s.DetailVisible || !s.HasSelected || s.Selected.ID != "h1" {
		t.Fatalf("unexpected selection state: %+v", s)
	}

	l.Dismiss()
	s = l.Snapshot()
	if s.DetailVisible {
		t.Fatalf("detail should be hidden")
	}
	if !s.HasSelected || s.Selected.ID != "h1" {
		t.Fatalf("dismiss should keep the last selection, got %+v", s.Selected)
	}

	if _, ok := l.SelectID("nope"); ok {
		t.Fatalf("unknown id should not select")
	}
	if len(rep.reported()) != 0 || len(rep.loaded) != 1 || rep.loaded[0] != 2 {
		t.Fatalf("unexpected reporter calls: %+v", rep)
	}
}

func TestListing_FetchFailureShowsEmptyReady(t *testing.T) {
	rep := &fakeReporter{}
	cause := &domain.NetworkError{URL: "hotel.json", Err: errors.New("connection refused")}
	l := app.NewListing(domain.Hotels, static[domain.Hotel](nil, cause), rep)

	l.Start(context.Background())

	v := l.View()
	if v.Status != app.StatusReady || len(v.Items) != 0 || v.Items == nil {
		t.Fatalf("expected empty ready view, got %+v", v)
	}
	s := l.Snapshot()
	if s.Status != app.StatusError || !errors.Is(s.Err, cause) {
		t.Fatalf("state should keep the cause, got %s %v", s.Status, s.Err)
	}
	if errs := rep.reported(); len(errs) != 1 || !errors.Is(errs[0], cause) {
		t.Fatalf("expected exactly one report, got %v", errs)
	}
}

func TestListing_RefreshFailureKeepsItems(t *testing.T) {
	rep := &fakeReporter{}
	fail := false
	l := app.NewListing[domain.Hotel](domain.Hotels, func(ctx context.Context) ([]domain.Hotel, error) {
		if fail {
			return nil, &domain.HTTPStatusError{Status: 500}
		}
		return twoHotels, nil
	}, rep)

	l.Start(context.Background())
	fail = true
	l.Refresh(context.Background())

	v := l.View()
	if v.Status != app.StatusReady || len(v.Items) != 2 || v.Refreshing {
		t.Fatalf("expected previous items after failed refresh, got %+v", v)
	}
	if len(rep.reported()) != 1 {
		t.Fatalf("expected one report, got %d", len(rep.reported()))
	}
}

func TestListing_RefreshKeepsItemsWhileLoading(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{}, 1)
	calls := 0
	l := app.NewListing[domain.Hotel](domain.Hotels, func(ctx context.Context) ([]domain.Hotel, error) {
		calls++
		if calls == 1 {
			return twoHotels, nil
		}
		entered <- struct{}{}
		<-release
		return twoHotels[:1], nil
	}, nil)

	l.Start(context.Background())

	done := make(chan struct{})
	go func() {
		l.Refresh(context.Background())
		close(done)
	}()
	<-entered

	s := l.Snapshot()
	if s.Status != app.StatusLoading || !s.Refreshing || len(s.Items) != 2 {
		t.Fatalf("expected loading with old items, got %s refreshing=%v items=%d", s.Status, s.Refreshing, len(s.Items))
	}

	close(release)
	<-done
	s = l.Snapshot()
	if s.Status != app.StatusReady || s.Refreshing || len(s.Items) != 1 {
		t.Fatalf("expected refreshed list, got %+v", s)
	}
}

func TestListing_LastCallWins(t *testing.T) {
	rep := &fakeReporter{}
	entered := make(chan struct{}, 1)
	var (
		mu    sync.Mutex
		calls int
	)
	l := app.NewListing[domain.Hotel](domain.Hotels, func(ctx context.Context) ([]domain.Hotel, error) {
		mu.Lock()
		calls++
		n := calls
		mu.Unlock()
		if n == 1 {
			// slow first fetch: only ends when its context is cancelled
			entered <- struct{}{}
			<-ctx.Done()
			return nil, &domain.NetworkError{Err: ctx.Err()}
		}
		return twoHotels, nil
	}, rep)

	first := make(chan struct{})
	go func() {
		l.Start(context.Background())
		close(first)
	}()
	<-entered

	l.Refresh(context.Background())

	select {
	case <-first:
	case <-time.After(2 * time.Second):
		t.Fatalf("stale fetch was not cancelled")
	}

	s := l.Snapshot()
	if s.Status != app.StatusReady || len(s.Items) != 2 {
		t.Fatalf("expected result of the latest call, got %s %d", s.Status, len(s.Items))
	}
	if len(rep.reported()) != 0 {
		t.Fatalf("stale failure must not be reported: %v", rep.reported())
	}
}

func TestListing_CloseCancelsInFlight(t *testing.T) {
	rep := &fakeReporter{}
	entered := make(chan struct{})
	l := app.NewListing[domain.Hotel](domain.Hotels, func(ctx context.Context) ([]domain.Hotel, error) {
		close(entered)
		<-ctx.Done()
		return nil, ctx.Err()
	}, rep)

	done := make(chan struct{})
	go func() {
		l.Start(context.Background())
		close(done)
	}()
	<-entered
	l.Close()
	<-done

	if s := l.Snapshot(); s.Status != app.StatusLoading {
		t.Fatalf("closed listing should not transition, got %s", s.Status)
	}
	if len(rep.reported()) != 0 {
		t.Fatalf("cancelled fetch must not be reported")
	}
}

func TestListing_CallerCancelIsNotAFailure(t *testing.T) {
	rep := &fakeReporter{}
	calls := 0
	l := app.NewListing[domain.Hotel](domain.Hotels, func(ctx context.Context) ([]domain.Hotel, error) {
		calls++
		if calls == 1 {
			return twoHotels, nil
		}
		<-ctx.Done()
		return nil, &domain.NetworkError{URL: "hotel.json", Err: ctx.Err()}
	}, rep)

	l.Start(context.Background())

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	l.Refresh(ctx)

	s := l.Snapshot()
	if s.Status != app.StatusReady || s.Refreshing || s.Err != nil || len(s.Items) != 2 {
		t.Fatalf("expected previous ready list, got %s refreshing=%v err=%v items=%d", s.Status, s.Refreshing, s.Err, len(s.Items))
	}
	if len(rep.reported()) != 0 {
		t.Fatalf("caller cancellation must not be reported: %v", rep.reported())
	}
}

func TestListing_ViewAppliesLabel(t *testing.T) {
	l := app.NewListing(domain.Attractions, static(attractions(9), nil), nil)
	l.Start(context.Background())

	l.SetLabel(app.Popular)
	v := l.View()
	if v.Label != app.Popular || len(v.Items) != 2 {
		t.Fatalf("unexpected popular view: %+v", ids(v.Items))
	}

	l.SetLabel(app.New)
	if v := l.View(); len(v.Items) != 5 || v.Items[0].ID != "a4" {
		t.Fatalf("unexpected new view: %v", ids(v.Items))
	}

	// label survives a refresh
	l.Refresh(context.Background())
	if v := l.View(); v.Label != app.New || len(v.Items) != 5 {
		t.Fatalf("label lost on refresh: %+v", v.Label)
	}
}

func TestState_TransitionsArePure(t *testing.T) {
	s0 := app.Initial[domain.Hotel]().Loaded(twoHotels)
	s1 := s0.Select(twoHotels[1])
	if s0.HasSelected || s0.DetailVisible {
		t.Fatalf("Select mutated the receiver")
	}
	s2 := s1.Dismiss()
	if !s1.DetailVisible || s2.DetailVisible || s2.Selected.ID != "h2" {
		t.Fatalf("unexpected dismiss result")
	}
	s3 := s2.Failed(errors.New("x"))
	if s3.DisplayStatus() != app.StatusReady || len(s3.Items) != 2 {
		t.Fatalf("failed state should display ready with previous items")
	}
}
