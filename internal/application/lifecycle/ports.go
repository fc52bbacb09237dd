package lifecycle

import (
	"context"
	"time"

	"github.com/eventboard/eventboard/internal/domain"
)

type Clock interface {
	Now() time.Time
}

type EventStore interface {
	Create(ctx context.Context, e *domain.Event) error
	GetByID(ctx context.Context, id int64) (*domain.Event, error)
	Update(ctx context.Context, e *domain.Event) error

	ListByInitiator(ctx context.Context, initiatorID int64, from, size int) ([]*domain.Event, error)
	FindAdmin(ctx context.Context, f AdminFilter) ([]*domain.Event, error)
	FindPublished(ctx context.Context, f PublicFilter) ([]*domain.Event, error)
	GetPublishedByID(ctx context.Context, id int64) (*domain.Event, error)
	IncrementViews(ctx context.Context, id int64) error
}

type UserDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.User, error)
}

type CategoryDirectory interface {
	GetByID(ctx context.Context, id int64) (*domain.Category, error)
}

type LocationStore interface {
	Save(ctx context.Context, c domain.Coordinates) (int64, error)
	Update(ctx context.Context, id int64, c domain.Coordinates) error
}

// Analytics records endpoint hits and reports how many distinct
// visitors an endpoint has seen. Implementations are best effort:
// RecordHit never fails the caller and UniqueHits returns 0 when the
// backend is unreachable.
type Analytics interface {
	RecordHit(ctx context.Context, uri, ip string, at time.Time)
	UniqueHits(ctx context.Context, uri string) int64
}

// Availability answers whether an event still has confirmed capacity.
type Availability interface {
	IsAvailable(ctx context.Context, e *domain.Event) (bool, error)
}
