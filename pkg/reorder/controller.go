package reorder

import (
	"context"
	"errors"
	"slices"
	"sync"
)

// ErrInFlight is returned when a drag ends while the previous order is still being persisted.
var ErrInFlight = errors.New("reorder: previous reorder still in flight")

// Phase is the state of the last drag handled by a Controller.
type Phase int

const (
	PhaseIdle Phase = iota
	PhaseTentative
	PhaseCommitted
	PhaseReverted
)

func (p Phase) String() string {
	switch p {
	case PhaseIdle:
		return "idle"
	case PhaseTentative:
		return "tentative"
	case PhaseCommitted:
		return "committed"
	case PhaseReverted:
		return "reverted"
	default:
		return "unknown"
	}
}

// Persister stores the full new order of a collection.
type Persister interface {
	Reorder(ctx context.Context, positions []Position) error
}

// PersistFunc adapts a function to Persister.
type PersistFunc func(ctx context.Context, positions []Position) error

func (f PersistFunc) Reorder(ctx context.Context, positions []Position) error {
	return f(ctx, positions)
}

// Result describes what HandleDragEnd did.
type Result struct {
	Changed   bool
	Positions []Position
	Phase     Phase
}

// Controller owns the local copy of an ordered list.
type Controller[T any] struct {
	mu       sync.Mutex
	items    []T
	key      func(T) string
	persist  Persister
	onFail   func(error)
	phase    Phase
	inFlight bool
	// gen changes on every Replace, a persist started under an older gen leaves the list alone
	gen uint64
}

// Option configures a Controller.
type Option[T any] func(*Controller[T])

// WithFailureNotifier registers fn to be told about persist failures after rollback.
func WithFailureNotifier[T any](fn func(error)) Option[T] {
	return func(c *Controller[T]) {
		c.onFail = fn
	}
}

func NewController[T any](items []T, key func(T) string, persist Persister, opts ...Option[T]) *Controller[T] {
	c := &Controller[T]{
		items:   slices.Clone(items),
		key:     key,
		persist: persist,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Items returns a copy of the current local order.
func (c *Controller[T]) Items() []T {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Phase returns the phase of the last drag.
func (c *Controller[T]) Phase() Phase {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.phase
}

// Replace swaps the local list, e.g. after a refetch. A persist still in flight
// keeps running but its outcome no longer touches the replaced list.
func (c *Controller[T]) Replace(items []T) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.items = slices.Clone(items)
	c.phase = PhaseIdle
	c.gen++
}

// HandleDragEnd moves draggedID onto targetID's position.
//
// The new order is visible through Items before the persist call returns. If the
// persister fails the list is restored to the exact pre-drag sequence, the failure
// notifier is called and the persist error is returned.
func (c *Controller[T]) HandleDragEnd(ctx context.Context, draggedID, targetID string) (Result, error) {
	c.mu.Lock()
	if c.inFlight {
		c.mu.Unlock()
		return Result{Phase: PhaseTentative}, ErrInFlight
	}

	next, ok := MoveByID(c.items, c.key, draggedID, targetID)
	if !ok {
		phase := c.phase
		c.mu.Unlock()
		return Result{Phase: phase}, nil
	}

	previous := c.items
	gen := c.gen
	c.items = next
	c.phase = PhaseTentative
	c.inFlight = true
	positions := Positions(next, c.key)
	c.mu.Unlock()

	err := c.persist.Reorder(ctx, positions)

	c.mu.Lock()
	c.inFlight = false
	stale := c.gen != gen
	if err != nil {
		if !stale {
			c.items = previous
			c.phase = PhaseReverted
		}
		notify := c.onFail
		c.mu.Unlock()
		if notify != nil {
			notify(err)
		}
		return Result{Changed: false, Positions: positions, Phase: PhaseReverted}, err
	}
	if !stale {
		c.phase = PhaseCommitted
	}
	c.mu.Unlock()

	return Result{Changed: true, Positions: positions, Phase: PhaseCommitted}, nil
}
