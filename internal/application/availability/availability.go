// Package availability answers whether a published event can still
// accept confirmed participants.
package availability

import (
	"context"

	"github.com/eventboard/eventboard/internal/domain"
)

// ConfirmedCounter reports how many requests for an event currently
// hold a given status.
type ConfirmedCounter interface {
	CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int, error)
}

type Query struct {
	requests ConfirmedCounter
}

func New(requests ConfirmedCounter) *Query {
	return &Query{requests: requests}
}

// ConfirmedCount returns the number of confirmed requests for the event.
func (q *Query) ConfirmedCount(ctx context.Context, eventID int64) (int, error) {
	return q.requests.CountByEventAndStatus(ctx, eventID, domain.RequestConfirmed)
}

// IsAvailable reports whether the event still has room for another
// confirmed participant. An event with no participant limit is always
// available.
func (q *Query) IsAvailable(ctx context.Context, e *domain.Event) (bool, error) {
	if e.ParticipantLimit == 0 {
		return true, nil
	}
	confirmed, err := q.ConfirmedCount(ctx, e.ID)
	if err != nil {
		return false, err
	}
	return confirmed < e.ParticipantLimit, nil
}
