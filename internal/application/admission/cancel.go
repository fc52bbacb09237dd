package admission

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
)

// Cancel withdraws the caller's own request. Canceling a confirmed
// request frees its seat; a request can only be canceled once.
func (s *Service) Cancel(ctx context.Context, requesterID, requestID int64) (*domain.ParticipationRequest, error) {
	if err := s.requireUser(ctx, requesterID); err != nil {
		return nil, err
	}
	r, err := s.requests.GetByID(ctx, requestID)
	if err != nil {
		return nil, err
	}
	if r.RequesterID != requesterID {
		return nil, domain.ErrNotFound("request not found")
	}
	if err := r.Cancel(); err != nil {
		return nil, err
	}
	if err := s.requests.Save(ctx, r); err != nil {
		return nil, err
	}
	zlog.Info().Int64("request_id", r.ID).Int64("event_id", r.EventID).Msg("participation request canceled")
	return r, nil
}
