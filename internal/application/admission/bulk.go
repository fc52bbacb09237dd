package admission

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
	"github.com/eventboard/eventboard/internal/metrics"
)

// StatusUpdateResult reports which requests a moderation batch
// confirmed and which it rejected.
type StatusUpdateResult struct {
	Confirmed []*domain.ParticipationRequest
	Rejected  []*domain.ParticipationRequest
}

// BulkUpdateStatus confirms or rejects a batch of pending requests on
// behalf of the event initiator. Requests are processed in the order
// given: confirmations stop the moment the participant limit fills and
// the rest of the batch is rejected. If the batch lands exactly on the
// limit, every other pending request for the event is rejected too.
//
// The whole batch runs under the event lock and commits atomically; on
// any error nothing changes.
func (s *Service) BulkUpdateStatus(ctx context.Context, initiatorID, eventID int64, requestIDs []int64, target domain.RequestStatus) (StatusUpdateResult, error) {
	result := StatusUpdateResult{
		Confirmed: []*domain.ParticipationRequest{},
		Rejected:  []*domain.ParticipationRequest{},
	}

	if target != domain.RequestConfirmed && target != domain.RequestRejected {
		return StatusUpdateResult{}, domain.ErrInvalidArgument("status must be CONFIRMED or REJECTED")
	}
	if err := s.requireUser(ctx, initiatorID); err != nil {
		return StatusUpdateResult{}, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return StatusUpdateResult{}, err
	}
	if e.InitiatorID != initiatorID {
		return StatusUpdateResult{}, domain.ErrForbidden("only the event initiator can moderate requests")
	}
	if len(requestIDs) == 0 {
		return result, nil
	}

	var cascaded int64
	err = s.requests.WithEventLock(ctx, eventID, func(tx RequestTx) error {
		batch, err := tx.FindBatch(ctx, requestIDs)
		if err != nil {
			return err
		}
		if len(batch) == 0 {
			return nil
		}

		if target == domain.RequestRejected {
			for _, r := range batch {
				if r.Status != domain.RequestPending {
					return domain.ErrForbidden("only pending requests can be updated")
				}
				r.Status = domain.RequestRejected
				result.Rejected = append(result.Rejected, r)
			}
			return tx.SaveBatch(ctx, batch)
		}

		if e.ParticipantLimit == 0 || !e.RequestModeration {
			return domain.ErrForbidden("confirmation is not required for this event")
		}
		confirmed, err := tx.CountByEventAndStatus(ctx, eventID, domain.RequestConfirmed)
		if err != nil {
			return err
		}
		if confirmed >= e.ParticipantLimit {
			return domain.ErrForbidden("the participant limit has been reached")
		}

		for _, r := range batch {
			if r.Status != domain.RequestPending {
				return domain.ErrForbidden("only pending requests can be updated")
			}
			if confirmed < e.ParticipantLimit {
				r.Status = domain.RequestConfirmed
				result.Confirmed = append(result.Confirmed, r)
				confirmed++
			} else {
				r.Status = domain.RequestRejected
				result.Rejected = append(result.Rejected, r)
			}
		}
		if err := tx.SaveBatch(ctx, batch); err != nil {
			return err
		}

		if confirmed == e.ParticipantLimit {
			cascaded, err = tx.RejectPendingByEvent(ctx, eventID)
			if err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return StatusUpdateResult{}, err
	}

	metrics.RequestsConfirmed.Add(float64(len(result.Confirmed)))
	metrics.RequestsRejected.Add(float64(len(result.Rejected)) + float64(cascaded))
	zlog.Info().
		Int64("event_id", eventID).
		Int("confirmed", len(result.Confirmed)).
		Int("rejected", len(result.Rejected)).
		Int64("cascade_rejected", cascaded).
		Msg("request batch moderated")
	return result, nil
}
