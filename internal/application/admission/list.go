package admission

import (
	"context"

	"github.com/eventboard/eventboard/internal/domain"
)

// ListByRequester returns every request the user has filed, any status.
func (s *Service) ListByRequester(ctx context.Context, requesterID int64) ([]*domain.ParticipationRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	return s.requests.ListByRequester(ctx, requesterID)
}

// ListByEvent returns all requests for an event. Only the event's
// initiator may look.
func (s *Service) ListByEvent(ctx context.Context, initiatorID, eventID int64) ([]*domain.ParticipationRequest, error) {
	if err := s.requireUser(ctx, initiatorID); err != nil {
		return nil, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID != initiatorID {
		return nil, domain.ErrForbidden("only the event initiator can view its requests")
	}
	return s.requests.ListByEvent(ctx, eventID)
}
