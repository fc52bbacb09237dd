package lifecycle

import (
	"context"
	"time"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
)

type AdminPatch struct {
	Fields      domain.Patch
	CategoryID  *int64
	Location    *domain.Coordinates
	StateAction *domain.AdminStateAction
}

type AdminFilter struct {
	Users      []int64
	States     []domain.EventStatus
	Categories []int64
	RangeStart *time.Time
	RangeEnd   *time.Time
	From       int
	Size       int
}

// UpdateByAdmin applies a moderator's patch. The state action is
// evaluated first so a publish decision is judged against the event's
// stored state, not the patched one.
func (s *Service) UpdateByAdmin(ctx context.Context, eventID int64, p AdminPatch) (*domain.Event, error) {
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	if p.StateAction != nil {
		if err := e.ApplyAdminAction(*p.StateAction, s.clock.Now()); err != nil {
			return nil, err
		}
	}
	if err := s.applyShared(ctx, e, p.Fields, p.CategoryID, p.Location); err != nil {
		return nil, err
	}

	if err := s.events.Update(ctx, e); err != nil {
		return nil, err
	}
	zlog.Info().Int64("event_id", e.ID).Str("status", string(e.Status)).Msg("event updated by admin")
	return e, nil
}

// ListByAdmin searches events across all states for the moderation UI.
func (s *Service) ListByAdmin(ctx context.Context, f AdminFilter) ([]*domain.Event, error) {
	if err := normalizePage(&f.From, &f.Size); err != nil {
		return nil, err
	}
	for _, st := range f.States {
		if !st.Valid() {
			return nil, domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
				"states": "must be one of: PENDING, PUBLISHED, CANCELED",
			})
		}
	}
	return s.events.FindAdmin(ctx, f)
}
