package app

// Status of a listing screen.
type Status string

const (
	StatusLoading Status = "loading"
	StatusReady   Status = "ready"
	StatusError   Status = "error"
)

// State is everything one listing screen holds. Transitions are pure: each
// method returns the next state and leaves the receiver untouched.
type State[T any] struct {
	Status     Status
	Items      []T
	Err        error
	Refreshing bool
	Label      Label

	Selected      T
	HasSelected   bool
	DetailVisible bool
}

// Initial is the state of a freshly mounted screen.
func Initial[T any]() State[T] {
	return State[T]{Status: StatusLoading, Label: All}
}

// Begin enters Loading for a first load. Anything held from a previous visit is dropped.
func (s State[T]) Begin() State[T] {
	next := Initial[T]()
	next.Label = s.Label
	return next
}

// BeginRefresh enters Loading but keeps the current items on screen until the fetch resolves.
func (s State[T]) BeginRefresh() State[T] {
	s.Status = StatusLoading
	s.Refreshing = true
	return s
}

// Loaded replaces the whole sequence.
func (s State[T]) Loaded(items []T) State[T] {
	if items == nil {
		items = []T{}
	}
	s.Status = StatusReady
	s.Items = items
	s.Err = nil
	s.Refreshing = false
	return s
}

// Failed records the cause; the previous items, if any, stay.
func (s State[T]) Failed(err error) State[T] {
	s.Status = StatusError
	s.Err = err
	s.Refreshing = false
	if s.Items == nil {
		s.Items = []T{}
	}
	return s
}

// Abandon leaves Loading for the status held before the fetch began, keeping
// whatever items are still there.
func (s State[T]) Abandon(prev Status, prevErr error) State[T] {
	s.Status = prev
	s.Err = prevErr
	s.Refreshing = false
	if s.Items == nil && prev != StatusLoading {
		s.Items = []T{}
	}
	return s
}

func (s State[T]) Select(item T) State[T] {
	s.Selected = item
	s.HasSelected = true
	s.DetailVisible = true
	return s
}

// Dismiss hides the detail but keeps the last selection.
func (s State[T]) Dismiss() State[T] {
	s.DetailVisible = false
	return s
}

func (s State[T]) WithLabel(l Label) State[T] {
	s.Label = l
	return s
}

// DisplayStatus is what a display layer shows: failures render as an
// ordinary ready list.
func (s State[T]) DisplayStatus() Status {
	if s.Status == StatusError {
		return StatusReady
	}
	return s.Status
}
