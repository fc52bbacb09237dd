package lifecycle

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
)

// GetPublishedByID serves the public event page. Only published events
// are visible here; anything else reads as not found.
//
// The view counter counts distinct visitors: the hit is recorded and
// the event's views column is bumped only when the unique hit count for
// the page actually grew. A repeat visit from the same address leaves
// the counter alone.
func (s *Service) GetPublishedByID(ctx context.Context, eventID int64, hit Hit) (*domain.Event, error) {
	e, err := s.events.GetPublishedByID(ctx, eventID)
	if err != nil {
		return nil, err
	}

	before := s.stats.UniqueHits(ctx, hit.URI)
	s.stats.RecordHit(ctx, hit.URI, hit.IP, s.clock.Now())
	after := s.stats.UniqueHits(ctx, hit.URI)

	if after > before {
		if err := s.events.IncrementViews(ctx, e.ID); err != nil {
			zlog.Warn().Err(err).Int64("event_id", e.ID).Msg("view increment failed")
		} else {
			e.Views++
		}
	}
	return e, nil
}
