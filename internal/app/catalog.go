package app

import (
	"context"
	"fmt"
	"sync"

	"github.com/rs/zerolog/log"
	"golang.org/x/sync/semaphore"

	"travel_catalog/internal/domain"
)

// Screen is the type-erased form of a listing bound to its detail formatter,
// which is what a display adapter works with.
type Screen interface {
	Category() domain.Category
	Start(ctx context.Context)
	Refresh(ctx context.Context)
	View() any
	SetLabel(label Label)
	SelectID(id string) (any, bool)
	Dismiss()
	Detail() DetailView
	Close()
}

// DetailView is the detail modal: the last selected item, formatted, and
// whether it is currently shown.
type DetailView struct {
	Visible bool `json:"visible"`
	Item    any  `json:"item,omitempty"`
}

type screen[T domain.Item, D any] struct {
	*Listing[T]
	present func(T) D
}

func NewScreen[T domain.Item, D any](l *Listing[T], present func(T) D) Screen {
	return &screen[T, D]{Listing: l, present: present}
}

func (s *screen[T, D]) View() any { return s.Listing.View() }

func (s *screen[T, D]) SelectID(id string) (any, bool) {
	it, ok := s.Listing.SelectID(id)
	if !ok {
		return nil, false
	}
	return s.present(it), true
}

func (s *screen[T, D]) Detail() DetailView {
	st := s.Snapshot()
	if !st.HasSelected {
		return DetailView{}
	}
	return DetailView{Visible: st.DetailVisible, Item: s.present(st.Selected)}
}

// Catalog holds one independent screen per category.
type Catalog struct {
	screens map[domain.Category]Screen
}

// NewCatalog builds the four screens over their sources.
func NewCatalog(src domain.CatalogSource, attractions domain.AttractionSource, rep domain.ErrorReporter, p Presenter) *Catalog {
	c := &Catalog{screens: map[domain.Category]Screen{}}
	c.Add(NewScreen(NewListing[domain.Hotel](domain.Hotels, src.Hotels, rep), p.Hotel))
	c.Add(NewScreen(NewListing[domain.Flight](domain.Flights, src.Flights, rep), p.Flight))
	c.Add(NewScreen(NewListing[domain.Rental](domain.Rentals, src.Rentals, rep), p.Rental))
	c.Add(NewScreen(NewListing[domain.Attraction](domain.Attractions, attractions.Attractions, rep), p.Attraction))
	return c
}

func (c *Catalog) Add(s Screen) { c.screens[s.Category()] = s }

func (c *Catalog) Screen(cat domain.Category) (Screen, error) {
	s, ok := c.screens[cat]
	if !ok {
		return nil, fmt.Errorf("%w: %q", domain.ErrUnknownCategory, cat)
	}
	return s, nil
}

// StartAll mounts every screen, at most workers at a time. Fetch failures are
// handled per screen, so this only returns early if ctx ends.
func (c *Catalog) StartAll(ctx context.Context, workers int) error {
	if workers <= 0 {
		workers = len(c.screens)
	}
	sem := semaphore.NewWeighted(int64(workers))
	var wg sync.WaitGroup

	for _, cat := range domain.Categories {
		cat := cat
		s, ok := c.screens[cat]
		if !ok {
			continue
		}
		// acquire before launching the goroutine; release inside it
		if err := sem.Acquire(ctx, 1); err != nil {
			wg.Wait()
			return err
		}
		wg.Add(1)
		go func() {
			defer wg.Done()
			defer sem.Release(1)
			s.Start(ctx)
			log.Info().Str("category", string(cat)).Msg("screen mounted")
		}()
	}

	wg.Wait()
	return nil
}

// Close cancels in-flight fetches of every screen.
func (c *Catalog) Close() {
	for _, s := range c.screens {
		s.Close()
	}
}
