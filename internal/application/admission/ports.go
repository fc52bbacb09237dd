package admission

import (
	"context"
	"time"

	"github.com/eventboard/eventboard/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventStore interface {
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
}

type UserDirectory interface {
	Exists(ctx context.Context, id int64) (bool, error)
}

// RequestStore persists participation requests. Capacity-sensitive work
// goes through WithEventLock, which runs fn inside a transaction holding
// a row lock on the event so that concurrent admissions for the same
// event serialize.
type RequestStore interface {
	GetByID(ctx context.Context, id int64) (*domain.ParticipationRequest, error)
	ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error)
	ListByEvent(ctx context.Context, eventID int64) ([]*domain.ParticipationRequest, error)
	Save(ctx context.Context, r *domain.ParticipationRequest) error

	WithEventLock(ctx context.Context, eventID int64, fn func(tx RequestTx) error) error
}

// RequestTx is the view of the store available while the event lock is
// held.
type RequestTx interface {
	HasActiveByEventAndRequester(ctx context.Context, eventID, requesterID int64) (bool, error)
	CountByEventAndStatus(ctx context.Context, eventID int64, status domain.RequestStatus) (int, error)
	Create(ctx context.Context, r *domain.ParticipationRequest) error

	// FindBatch returns the requests that exist among ids, preserving
	// the order of ids. Unknown ids are skipped.
	FindBatch(ctx context.Context, ids []int64) ([]*domain.ParticipationRequest, error)
	SaveBatch(ctx context.Context, rs []*domain.ParticipationRequest) error

	// RejectPendingByEvent flips every still pending request for the
	// event to rejected and returns how many rows changed.
	RejectPendingByEvent(ctx context.Context, eventID int64) (int64, error)
}
