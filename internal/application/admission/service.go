// Package admission manages participation requests: who asked to join
// an event, who got in, and what happens when the seats run out.
package admission

import (
	"context"

	"github.com/eventboard/eventboard/internal/domain"
)

type Service struct {
	requests RequestStore
	events   EventStore
	users    UserDirectory
	clock    Clock
}

func New(requests RequestStore, events EventStore, users UserDirectory, clock Clock) *Service {
	return &Service{requests: requests, events: events, users: users, clock: clock}
}

func (s *Service) requireUser(ctx context.Context, userID int64) error {
	ok, err := s.users.Exists(ctx, userID)
	if err != nil {
		return err
	}
	if !ok {
		return domain.ErrNotFound("user not found")
	}
	return nil
}
