package lifecycle

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
)

type UserPatch struct {
	Fields      domain.Patch
	CategoryID  *int64
	Location    *domain.Coordinates
	StateAction *domain.UserStateAction
}

// UpdateByInitiator applies the initiator's patch. Only pending and
// canceled events may be touched.
func (s *Service) UpdateByInitiator(ctx context.Context, userID, eventID int64, p UserPatch) (*domain.Event, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID != userID {
		return nil, domain.ErrForbidden("only the initiator can modify the event")
	}
	if !e.EditableByInitiator() {
		return nil, domain.ErrForbidden("only pending or canceled events can be modified")
	}

	if err := s.applyShared(ctx, e, p.Fields, p.CategoryID, p.Location); err != nil {
		return nil, err
	}
	if p.StateAction != nil {
		if err := e.ApplyUserAction(*p.StateAction); err != nil {
			return nil, err
		}
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	zlog.Info().Int64("event_id", e.ID).Str("status", string(e.Status)).Msg("event updated by initiator")
	return e, nil
}

// applyShared handles the patch fields common to initiator and admin
// updates: category rebinding, location move and the scalar fields.
func (s *Service) applyShared(ctx context.Context, e *domain.Event, fields domain.Patch, categoryID *int64, loc *domain.Coordinates) error {
	if categoryID != nil {
		if _, err := s.categories.GetByID(ctx, *categoryID); err != nil {
			return err
		}
		e.CategoryID = *categoryID
	}
	if loc != nil {
		if err := s.locations.Update(ctx, e.LocationID, *loc); err != nil {
			return err
		}
	}
	return e.ApplyPatch(fields, s.clock.Now())
}
