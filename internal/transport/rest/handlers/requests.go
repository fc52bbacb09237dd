package handlers

import (
	"net/http"
	"strconv"

	"github.com/eventboard/eventboard/internal/application/admission"
	"github.com/eventboard/eventboard/internal/domain"
	"github.com/eventboard/eventboard/internal/transport/rest/dto"
	"github.com/eventboard/eventboard/internal/transport/rest/response"
	"github.com/eventboard/eventboard/internal/transport/rest/validate"
)

type RequestsHandler struct {
	svc *admission.Service
}

func NewRequestsHandler(svc *admission.Service) *RequestsHandler {
	return &RequestsHandler{svc: svc}
}

func (h *RequestsHandler) Create(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	eventID, err := strconv.ParseInt(r.URL.Query().Get("eventId"), 10, 64)
	if err != nil || eventID <= 0 {
		response.Err(w, r, domain.ErrInvalidArgumentMeta("invalid query param", map[string]string{
			"eventId": "must be a positive integer",
		}))
		return
	}

	req, err := h.svc.Create(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusCreated, dto.FromRequest(req))
}

func (h *RequestsHandler) Cancel(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}
	requestID, err := pathID(r, "requestID")
	if err != nil {
		response.Err(w, r, err)
		return
	}

	req, err := h.svc.Cancel(r.Context(), userID, requestID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.FromRequest(req))
}

func (h *RequestsHandler) ListMine(w http.ResponseWriter, r *http.Request) {
	userID, err := pathID(r, "userID")
	if err != nil {
		response.Err(w, r, err)
		return
	}

	items, err := h.svc.ListByRequester(r.Context(), userID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.FromRequests(items))
}

func (h *RequestsHandler) ListForEvent(w http.ResponseWriter, r *http.Request) {
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

	items, err := h.svc.ListByEvent(r.Context(), userID, eventID)
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.FromRequests(items))
}

func (h *RequestsHandler) BulkUpdate(w http.ResponseWriter, r *http.Request) {
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
	var req dto.StatusUpdateReq
	if err := validate.DecodeJSON(r, &req); err != nil {
		response.Err(w, r, err)
		return
	}

	result, err := h.svc.BulkUpdateStatus(r.Context(), userID, eventID, req.RequestIDs, domain.RequestStatus(req.Status))
	if err != nil {
		response.Err(w, r, err)
		return
	}
	response.Data(w, http.StatusOK, dto.StatusUpdateResp{
		ConfirmedRequests: dto.FromRequests(result.Confirmed),
		RejectedRequests:  dto.FromRequests(result.Rejected),
	})
}
