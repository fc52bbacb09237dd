package domain

import "time"

// ParticipationRequest is a user's bid to attend an event, subject to
// moderation and capacity.
type ParticipationRequest struct {
	ID          int64
	EventID     int64
	RequesterID int64
	Status      RequestStatus
	Created     time.Time
}

// NewParticipationRequest decides the initial status: events that do not
// moderate requests, or have unlimited capacity, confirm immediately.
func NewParticipationRequest(requesterID int64, e *Event, now time.Time) *ParticipationRequest {
	status := RequestPending
	if !e.RequestModeration || e.ParticipantLimit == 0 {
		status = RequestConfirmed
	}
	return &ParticipationRequest{
		EventID:     e.ID,
		RequesterID: requesterID,
		Status:      status,
		Created:     now.UTC(),
	}
}

// Active reports whether the request still occupies (or competes for) a slot.
func (r *ParticipationRequest) Active() bool {
	return r.Status != RequestCanceled
}

// Cancel is requester-initiated. CANCELED is terminal: there is no
// self-transition, so a second cancel fails. Canceling a confirmed request
// is permitted and frees a capacity slot.
func (r *ParticipationRequest) Cancel() error {
	if r.Status == RequestCanceled {
		return ErrForbidden("request is already canceled")
	}
	r.Status = RequestCanceled
	return nil
}
