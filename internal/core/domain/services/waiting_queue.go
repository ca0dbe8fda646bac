package services

import (
	"errors"
	"sort"
	"time"

	"dispatch/internal/core/domain/model/order"
)

// Queue movement errors. Moving the head up or the tail down is refused
// explicitly rather than silently absorbed, so the UI can tell the
// dispatcher instead of appearing to ignore the click.
var (
	// ErrOrderNotInQueue is returned when the order is not among the
	// currently queued orders.
	ErrOrderNotInQueue = errors.New("order is not in the waiting queue")
	// ErrOrderAtQueueHead is returned when moving the first queued order up.
	ErrOrderAtQueueHead = errors.New("order is already at the head of the queue")
	// ErrOrderAtQueueTail is returned when moving the last queued order down.
	ErrOrderAtQueueTail = errors.New("order is already at the tail of the queue")
)

// MoveDirection selects which neighbour a queued order swaps with.
type MoveDirection string

const (
	// MoveUp swaps with the next-higher-priority (lower position) order.
	MoveUp MoveDirection = "up"
	// MoveDown swaps with the next-lower-priority (higher position) order.
	MoveDown MoveDirection = "down"
)

// Validate checks the direction is up or down.
func (d MoveDirection) Validate() error {
	if d != MoveUp && d != MoveDown {
		return errors.New("direction must be up or down")
	}
	return nil
}

// WaitingQueue governs the dispatch waiting queue: orders that are ready
// but have no free vehicles. Positions are append-only monotonically
// increasing integers: a removed order's slot is never reused, so gaps
// are normal and ordering is always by sorted position, lowest first.
//
// The service operates on aggregates the caller loaded; the caller
// persists every mutated order within one transaction.
type WaitingQueue struct{}

// NewWaitingQueue creates a WaitingQueue service.
func NewWaitingQueue() WaitingQueue {
	return WaitingQueue{}
}

// Enqueue places the order at the back of the queue: its position is one
// past the maximum position currently in use (1 for an empty queue).
// queued must be the full set of currently queued orders.
func (WaitingQueue) Enqueue(o *order.Order, queued []*order.Order, now time.Time) error {
	if err := o.Validate(); err != nil {
		return err
	}

	maxPosition := 0
	for _, q := range queued {
		if q.QueuePosition() > maxPosition {
			maxPosition = q.QueuePosition()
		}
	}

	return o.Enqueue(maxPosition+1, now)
}

// Move swaps the order's queue position with its neighbour in the given
// direction and returns the neighbour, which the caller must persist
// together with the order. The neighbour is the adjacent entry in sorted
// order, not necessarily position±1, since removals leave gaps.
//
// Moving the head up or the tail down fails without mutating anything.
func (WaitingQueue) Move(o *order.Order, queued []*order.Order, direction MoveDirection) (*order.Order, error) {
	if err := o.Validate(); err != nil {
		return nil, err
	}
	if err := direction.Validate(); err != nil {
		return nil, err
	}

	sorted := make([]*order.Order, len(queued))
	copy(sorted, queued)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].QueuePosition() < sorted[j].QueuePosition()
	})

	index := -1
	for i, q := range sorted {
		if q.IsEqual(o) {
			index = i
			break
		}
	}
	if index < 0 {
		return nil, ErrOrderNotInQueue
	}

	var neighbour *order.Order
	switch direction {
	case MoveUp:
		if index == 0 {
			return nil, ErrOrderAtQueueHead
		}
		neighbour = sorted[index-1]
	case MoveDown:
		if index == len(sorted)-1 {
			return nil, ErrOrderAtQueueTail
		}
		neighbour = sorted[index+1]
	}

	current := sorted[index]
	currentPosition := current.QueuePosition()
	neighbourPosition := neighbour.QueuePosition()

	if err := current.SetQueuePosition(neighbourPosition); err != nil {
		return nil, err
	}
	if err := neighbour.SetQueuePosition(currentPosition); err != nil {
		// Restore the first half of the swap so a failure leaves the
		// queue exactly as it was.
		_ = current.SetQueuePosition(currentPosition)
		return nil, err
	}

	return neighbour, nil
}

// Remove takes the order out of the queue and back to pending. Remaining
// entries keep their positions; contiguity is a rendering concern.
func (WaitingQueue) Remove(o *order.Order) error {
	if err := o.Validate(); err != nil {
		return err
	}
	return o.RemoveFromQueue()
}
