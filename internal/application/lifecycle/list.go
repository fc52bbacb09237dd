package lifecycle

import (
	"context"
	"sort"
	"strings"
	"time"

	"github.com/eventboard/eventboard/internal/domain"
)

type Sort string

const (
	SortNone      Sort = ""
	SortEventDate Sort = "EVENT_DATE"
	SortViews     Sort = "VIEWS"
)

type PublicFilter struct {
	Text          string
	Categories    []int64
	Paid          *bool
	RangeStart    *time.Time
	RangeEnd      *time.Time
	OnlyAvailable bool
	Sort          Sort
	From          int
	Size          int
}

func (f *PublicFilter) normalize() error {
	f.Text = strings.TrimSpace(f.Text)
	if err := normalizePage(&f.From, &f.Size); err != nil {
		return err
	}
	switch f.Sort {
	case SortNone, SortEventDate, SortViews:
	default:
		return domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			"sort": "must be one of: EVENT_DATE, VIEWS",
		})
	}
	if f.RangeStart != nil && f.RangeEnd != nil && f.RangeEnd.Before(*f.RangeStart) {
		return domain.ErrInvalidArgument("rangeEnd must be >= rangeStart")
	}
	return nil
}

// Hit identifies a public page view for analytics.
type Hit struct {
	URI string
	IP  string
}

// GetPublished returns the public listing. When no date range is given
// only upcoming events are shown. The hit is recorded best effort.
func (s *Service) GetPublished(ctx context.Context, f PublicFilter, hit Hit) ([]*domain.Event, error) {
	if err := f.normalize(); err != nil {
		return nil, err
	}
	if f.RangeStart == nil && f.RangeEnd == nil {
		now := s.clock.Now()
		f.RangeStart = &now
	}

	items, err := s.events.FindPublished(ctx, f)
	if err != nil {
		return nil, err
	}

	if f.OnlyAvailable {
		kept := items[:0]
		for _, e := range items {
			ok, err := s.avail.IsAvailable(ctx, e)
			if err != nil {
				return nil, err
			}
			if ok {
				kept = append(kept, e)
			}
		}
		items = kept
	}

	switch f.Sort {
	case SortEventDate:
		sort.SliceStable(items, func(i, j int) bool { return items[i].EventDate.Before(items[j].EventDate) })
	case SortViews:
		sort.SliceStable(items, func(i, j int) bool { return items[i].Views < items[j].Views })
	}

	s.stats.RecordHit(ctx, hit.URI, hit.IP, s.clock.Now())
	return items, nil
}

// ListByInitiator pages through the caller's own events, any state.
func (s *Service) ListByInitiator(ctx context.Context, userID int64, from, size int) ([]*domain.Event, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	if err := normalizePage(&from, &size); err != nil {
		return nil, err
	}
	return s.events.ListByInitiator(ctx, userID, from, size)
}

// GetByInitiator returns full details of one of the caller's events.
func (s *Service) GetByInitiator(ctx context.Context, userID, eventID int64) (*domain.Event, error) {
	if _, err := s.users.GetByID(ctx, userID); err != nil {
		return nil, err
	}
	e, err := s.events.GetByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if e.InitiatorID != userID {
		return nil, domain.ErrNotFound("event not found")
	}
	return e, nil
}

func normalizePage(from, size *int) error {
	if *from < 0 {
		return domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			"from": "must be >= 0",
		})
	}
	if *size == 0 {
		*size = 10
	}
	if *size < 0 {
		return domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			"size": "must be > 0",
		})
	}
	return nil
}
