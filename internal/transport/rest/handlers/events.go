package handlers

import (
	"context"
	"net/http"

	"github.com/eventboard/eventboard/internal/application/availability"
	"github.com/eventboard/eventboard/internal/application/lifecycle"
	"github.com/eventboard/eventboard/internal/domain"
	"github.com/eventboard/eventboard/internal/transport/rest/dto"
	"github.com/eventboard/eventboard/internal/transport/rest/response"
	"github.com/eventboard/eventboard/internal/transport/rest/validate"
)

type EventsHandler struct {
	svc   *lifecycle.Service
	avail *availability.Query
}

func NewEventsHandler(svc *lifecycle.Service, avail *availability.Query) *EventsHandler {
	return &EventsHandler{svc: svc, avail: avail}
}

func (h *EventsHandler) toResp(ctx context.Context, e *domain.Event) (dto.EventResp, error) {
	confirmed, err := h.avail.ConfirmedCount(ctx, e.ID)
	if err != nil {
		return dto.EventResp{}, err
	}
	return dto.FromEvent(e, confirmed), nil
}

func (h *EventsHandler) toResps(ctx context.Context, items []*domain.Event) ([]dto.EventResp, error) {
	out := make([]dto.EventResp, 0, len(items))
	for _, e := range items {
		resp, err := h.toResp(ctx, e)
		if err != nil {
			return nil, err
		}
		out = append(out, resp)
	}
	return out, nil
}

// --- Initiator surface ---

func (h *EventsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.NewEventReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	fields := domain.NewEventFields{
		Title:             req.Title,
		Annotation:        req.Annotation,
		Description:       req.Description,
		EventDate:         req.EventDate.Time,
		RequestModeration: true,
	}
	if req.Paid != nil {
		fields.Paid = *req.Paid
	}
	if req.ParticipantLimit != nil {
		fields.ParticipantLimit = *req.ParticipantLimit
	}
	if req.RequestModeration != nil {
		fields.RequestModeration = *req.RequestModeration
	}

	e, err := h.svc.Create(r.Context(), lifecycle.CreateCmd{
		InitiatorID: userID,
		CategoryID:  req.Category,
		Location:    domain.Coordinates{Lat: req.Location.Lat, Lon: req.Location.Lon},
		Fields:      fields,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.FromEvent(e, 0))
}

func (h *EventsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	q := r.URL.Query()
	from, err := queryInt(q, "from", 0)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	size, err := queryInt(q, "size", 0)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	items, err := h.svc.ListByInitiator(r.Context(), userID, from, size)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResps(r.Context(), items)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

func (h *EventsHandler) GetMine(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		response.Err(w, r, err)
		return
	}

	e, err := h.svc.GetByInitiator(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResp(r.Context(), e)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

func (h *EventsHandler) UpdateMine(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	eventID, err := pathID(r, "eventID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.UpdateEventUserReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	patch := lifecycle.UserPatch{
		Fields:     fieldsPatch(req.Title, req.Annotation, req.Description, req.EventDate, req.Paid, req.ParticipantLimit, req.RequestModeration),
		CategoryID: req.Category,
	}
	if req.Location != nil {
		c := domain.Coordinates{Lat: req.Location.Lat, Lon: req.Location.Lon}
		patch.Location = &c
	}
	if req.StateAction != nil {
		a := domain.UserStateAction(*req.StateAction)
		patch.StateAction = &a
	}

	e, err := h.svc.UpdateByInitiator(r.Context(), userID, eventID, patch)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResp(r.Context(), e)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

// --- Admin surface ---

func (h *EventsHandler) ListAdmin(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	users, err := queryInt64List(q, "users")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	categories, err := queryInt64List(q, "categories")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var states []domain.EventStatus
	for _, s := range queryStringList(q, "states") {
		states = append(states, domain.EventStatus(s))
	}
	rangeStart, err := queryTime(q, "rangeStart")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	rangeEnd, err := queryTime(q, "rangeEnd")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	from, err := queryInt(q, "from", 0)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	size, err := queryInt(q, "size", 0)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	items, err := h.svc.ListByAdmin(r.Context(), lifecycle.AdminFilter{
		Users:      users,
		States:     states,
		Categories: categories,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		From:       from,
		Size:       size,
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResps(r.Context(), items)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

func (h *EventsHandler) UpdateAdmin(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	var req dto.UpdateEventAdminReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	patch := lifecycle.AdminPatch{
		Fields:     fieldsPatch(req.Title, req.Annotation, req.Description, req.EventDate, req.Paid, req.ParticipantLimit, req.RequestModeration),
		CategoryID: req.Category,
	}
	if req.Location != nil {
		c := domain.Coordinates{Lat: req.Location.Lat, Lon: req.Location.Lon}
		patch.Location = &c
	}
	if req.StateAction != nil {
		a := domain.AdminStateAction(*req.StateAction)
		patch.StateAction = &a
	}

	e, err := h.svc.UpdateByAdmin(r.Context(), eventID, patch)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResp(r.Context(), e)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

// --- Public surface ---

func (h *EventsHandler) ListPublic(w http.ResponseWriter, r *http.Request) {
	q := r.URL.Query()

	categories, err := queryInt64List(q, "categories")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	paid, err := queryBool(q, "paid")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	onlyAvailable, err := queryBool(q, "onlyAvailable")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	rangeStart, err := queryTime(q, "rangeStart")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	rangeEnd, err := queryTime(q, "rangeEnd")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	from, err := queryInt(q, "from", 0)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	size, err := queryInt(q, "size", 0)
	if err != nil {
		response.Err(w, r, err)
		return
	}

	filter := lifecycle.PublicFilter{
		Text:       q.Get("text"),
		Categories: categories,
		Paid:       paid,
		RangeStart: rangeStart,
		RangeEnd:   rangeEnd,
		Sort:       lifecycle.Sort(q.Get("sort")),
		From:       from,
		Size:       size,
	}
	if onlyAvailable != nil {
		filter.OnlyAvailable = *onlyAvailable
	}

	items, err := h.svc.GetPublished(r.Context(), filter, lifecycle.Hit{
		URI: r.URL.Path,
		IP:  clientIP(r),
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResps(r.Context(), items)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

func (h *EventsHandler) GetPublic(w http.ResponseWriter, r *http.Request) {
	eventID, err := pathID(r, "eventID")
	if err != nil {
		response.Err(w, r, err)
		return
	}

	e, err := h.svc.GetPublishedByID(r.Context(), eventID, lifecycle.Hit{
		URI: r.URL.Path,
		IP:  clientIP(r),
	})
	if err != nil {
		response.Err(w, r, err)
		return
	}
	resp, err := h.toResp(r.Context(), e)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, resp)
}

func fieldsPatch(title, annotation, description *string, eventDate *dto.DateTime, paid *bool, limit *int, moderation *bool) domain.Patch {
	p := domain.Patch{
		Title:             title,
		Annotation:        annotation,
		Description:       description,
		Paid:              paid,
		ParticipantLimit:  limit,
		RequestModeration: moderation,
	}
	if eventDate != nil {
		t := eventDate.Time
		p.EventDate = &t
	}
	return p
}
