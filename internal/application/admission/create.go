package admission

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
	"github.com/eventboard/eventboard/internal/metrics"
)

// Create files a participation request. The duplicate check and the
// capacity check run under the event lock, so two racing requests for
// the last seat cannot both be confirmed.
func (s *Service) Create(ctx context.Context, requesterID, eventID int64) (*domain.ParticipationRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID == requesterID {
		return nil, domain.ErrForbidden("the initiator cannot request to join their own event")
	}
	if e.Status != domain.StatusPublished {
		return nil, domain.ErrForbidden("cannot participate in an unpublished event")
	}

	var created *domain.ParticipationRequest
	err = s.requests.WithEventLock(ctx, eventID, func(tx RequestTx) error {
		dup, err := tx.HasActiveByEventAndRequester(ctx, eventID, requesterID)
		if err != nil {
			return err
		}
		if dup {
			return domain.ErrForbidden("an active request for this event already exists")
		}
		if e.ParticipantLimit > 0 {
			confirmed, err := tx.CountByEventAndStatus(ctx, eventID, domain.RequestConfirmed)
			if err != nil {
				return err
			}
			if confirmed >= e.ParticipantLimit {
				return domain.ErrForbidden("the participant limit has been reached")
			}
		}
		created = domain.NewParticipationRequest(requesterID, e, s.clock.Now())
		return tx.Create(ctx, created)
	})
	if err != nil {
		return nil, err
	}

	if created.Status == domain.RequestConfirmed {
		metrics.RequestsConfirmed.Inc()
	}
	zlog.Info().
		Int64("request_id", created.ID).
		Int64("event_id", eventID).
		Int64("requester_id", requesterID).
		Str("status", string(created.Status)).
		Msg("participation request created")
	return created, nil
}
