package dto

type RequestResp struct {
	ID        int64    `json:"id"`
	Event     int64    `json:"event"`
	Requester int64    `json:"requester"`
	Status    string   `json:"status"`
	Created   DateTime `json:"created"`
}

type StatusUpdateReq struct {
	RequestIDs []int64 `json:"requestIds" validate:"required,min=1"`
	Status     string  `json:"status" validate:"required,oneof=CONFIRMED REJECTED"`
}

type StatusUpdateResp struct {
	ConfirmedRequests []RequestResp `json:"confirmedRequests"`
	RejectedRequests  []RequestResp `json:"rejectedRequests"`
}
