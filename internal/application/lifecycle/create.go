package lifecycle

import (
	"context"

	zlog "github.com/rs/zerolog/log"

	"github.com/eventboard/eventboard/internal/domain"
)

type CreateCmd struct {
	InitiatorID int64
	CategoryID  int64
	Location    domain.Coordinates
	Fields      domain.NewEventFields
}

func (s *Service) Create(ctx context.Context, cmd CreateCmd) (*domain.Event, error) {
	if _, err := s.users.GetByID(ctx, cmd.InitiatorID); err != nil {
		return nil, err
	}
	if _, err := s.categories.GetByID(ctx, cmd.CategoryID); err != nil {
		return nil, err
	}

	e, err := domain.NewEvent(cmd.InitiatorID, cmd.CategoryID, 0, cmd.Fields, s.clock.Now())
	if err != nil {
		return nil, err
	}

	locID, err := s.locations.Save(ctx, cmd.Location)
	if err != nil {
		return nil, err
	}
	e.LocationID = locID

	if err := s.events.Create(ctx, e); err != nil {
		return nil, err
	}
	zlog.Info().Int64("event_id", e.ID).Int64("initiator_id", e.InitiatorID).Msg("event created")
	return e, nil
}
