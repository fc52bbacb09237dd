package domain

import (
	"strings"
	"time"
)

// MinLeadTime is the minimum gap between "now" and an event date, enforced
// on creation and on every date-mutating edit.
const MinLeadTime = 2 * time.Hour

type Event struct {
	ID                int64
	Title             string
	Annotation        string
	Description       string
	CategoryID        int64
	EventDate         time.Time
	LocationID        int64
	Paid              bool
	ParticipantLimit  int // 0 = unlimited
	RequestModeration bool
	InitiatorID       int64

	Status      EventStatus
	CreatedOn   time.Time
	PublishedOn *time.Time

	Views int64
}

type NewEventFields struct {
	Title             string
	Annotation        string
	Description       string
	EventDate         time.Time
	Paid              bool
	ParticipantLimit  int
	RequestModeration bool
}

func NewEvent(initiatorID, categoryID, locationID int64, f NewEventFields, now time.Time) (*Event, error) {
	f.Title = strings.TrimSpace(f.Title)
	f.Annotation = strings.TrimSpace(f.Annotation)
	f.Description = strings.TrimSpace(f.Description)

	if f.ParticipantLimit < 0 {
		return nil, ErrInvalidArgument("participant limit must be >= 0 (0 means unlimited)")
	}
	if err := validateEventDate(f.EventDate, now); err != nil {
		return nil, err
	}

	return &Event{
		Title:             f.Title,
		Annotation:        f.Annotation,
		Description:       f.Description,
		CategoryID:        categoryID,
		EventDate:         f.EventDate.UTC(),
		LocationID:        locationID,
		Paid:              f.Paid,
		ParticipantLimit:  f.ParticipantLimit,
		RequestModeration: f.RequestModeration,
		InitiatorID:       initiatorID,
		Status:            StatusPending,
		CreatedOn:         now.UTC(),
		Views:             0,
	}, nil
}

// Patch carries the mutable event fields; nil means "leave unchanged".
// Category and location changes are resolved by the caller against their
// directories before the patch is applied.
type Patch struct {
	Title             *string
	Annotation        *string
	Description       *string
	EventDate         *time.Time
	Paid              *bool
	ParticipantLimit  *int
	RequestModeration *bool
}

func (e *Event) ApplyPatch(p Patch, now time.Time) error {
	if p.ParticipantLimit != nil && *p.ParticipantLimit < 0 {
		return ErrInvalidArgument("participant limit must be >= 0 (0 means unlimited)")
	}
	if p.EventDate != nil {
		if err := validateEventDate(*p.EventDate, now); err != nil {
			return err
		}
		e.EventDate = p.EventDate.UTC()
	}
	if p.Title != nil {
		e.Title = strings.TrimSpace(*p.Title)
	}
	if p.Annotation != nil {
		e.Annotation = strings.TrimSpace(*p.Annotation)
	}
	if p.Description != nil {
		e.Description = strings.TrimSpace(*p.Description)
	}
	if p.Paid != nil {
		e.Paid = *p.Paid
	}
	if p.ParticipantLimit != nil {
		e.ParticipantLimit = *p.ParticipantLimit
	}
	if p.RequestModeration != nil {
		e.RequestModeration = *p.RequestModeration
	}
	return nil
}

// EditableByInitiator reports whether the initiator may still mutate the
// event; published events are off limits.
func (e *Event) EditableByInitiator() bool {
	return e.Status == StatusPending || e.Status == StatusCanceled
}

func (e *Event) ApplyUserAction(a UserStateAction) error {
	if !e.EditableByInitiator() {
		return ErrForbidden("only a pending or canceled event can be sent to review or canceled")
	}
	switch a {
	case SendToReview:
		e.Status = StatusPending
	case CancelReview:
		e.Status = StatusCanceled
	default:
		return ErrInvalidArgument("unknown state action: " + string(a))
	}
	return nil
}

func (e *Event) ApplyAdminAction(a AdminStateAction, now time.Time) error {
	switch a {
	case PublishEvent:
		if e.Status != StatusPending {
			return ErrForbidden("only a pending event can be published")
		}
		t := now.UTC()
		e.Status = StatusPublished
		e.PublishedOn = &t
	case RejectEvent:
		if e.Status == StatusPublished {
			return ErrForbidden("a published event cannot be rejected")
		}
		e.Status = StatusCanceled
	default:
		return ErrInvalidArgument("unknown state action: " + string(a))
	}
	return nil
}

func validateEventDate(d time.Time, now time.Time) error {
	if d.Before(now.Add(MinLeadTime)) {
		return ErrInvalidArgument("event date must be at least 2 hours from now")
	}
	return nil
}
