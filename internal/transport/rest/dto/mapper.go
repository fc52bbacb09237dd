package dto

import (
	"github.com/eventboard/eventboard/internal/domain"
)

func FromEvent(e *domain.Event, confirmed int) EventResp {
	resp := EventResp{
		ID:                e.ID,
		Title:             e.Title,
		Annotation:        e.Annotation,
		Description:       e.Description,
		Category:          e.CategoryID,
		EventDate:         NewDateTime(e.EventDate),
		LocationID:        e.LocationID,
		Paid:              e.Paid,
		ParticipantLimit:  e.ParticipantLimit,
		RequestModeration: e.RequestModeration,
		InitiatorID:       e.InitiatorID,
		State:             string(e.Status),
		CreatedOn:         NewDateTime(e.CreatedOn),
		Views:             e.Views,
		ConfirmedRequests: confirmed,
	}
	if e.PublishedOn != nil {
		p := NewDateTime(*e.PublishedOn)
		resp.PublishedOn = &p
	}
	return resp
}

func FromRequest(r *domain.ParticipationRequest) RequestResp {
	return RequestResp{
		ID:        r.ID,
		Event:     r.EventID,
		Requester: r.RequesterID,
		Status:    string(r.Status),
		Created:   NewDateTime(r.Created),
	}
}

func FromRequests(rs []*domain.ParticipationRequest) []RequestResp {
	out := make([]RequestResp, 0, len(rs))
	for _, r := range rs {
		out = append(out, FromRequest(r))
	}
	return out
}
