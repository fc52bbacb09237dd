package dto

type LocationDTO struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

type NewEventReq struct {
	Title             string      `json:"title" validate:"required,min=3,max=120"`
	Annotation        string      `json:"annotation" validate:"required,min=20,max=2000"`
	Description       string      `json:"description" validate:"required,min=20,max=7000"`
	Category          int64       `json:"category" validate:"required,gt=0"`
	EventDate         DateTime    `json:"eventDate" validate:"required"`
	Location          LocationDTO `json:"location"`
	Paid              *bool       `json:"paid"`
	ParticipantLimit  *int        `json:"participantLimit" validate:"omitempty,gte=0"`
	RequestModeration *bool       `json:"requestModeration"`
}

type UpdateEventUserReq struct {
	Title             *string      `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Annotation        *string      `json:"annotation,omitempty" validate:"omitempty,min=20,max=2000"`
	Description       *string      `json:"description,omitempty" validate:"omitempty,min=20,max=7000"`
	Category          *int64       `json:"category,omitempty" validate:"omitempty,gt=0"`
	EventDate         *DateTime    `json:"eventDate,omitempty"`
	Location          *LocationDTO `json:"location,omitempty"`
	Paid              *bool        `json:"paid,omitempty"`
	ParticipantLimit  *int         `json:"participantLimit,omitempty" validate:"omitempty,gte=0"`
	RequestModeration *bool        `json:"requestModeration,omitempty"`
	StateAction       *string      `json:"stateAction,omitempty" validate:"omitempty,oneof=SEND_TO_REVIEW CANCEL_REVIEW"`
}

type UpdateEventAdminReq struct {
	Title             *string      `json:"title,omitempty" validate:"omitempty,min=3,max=120"`
	Annotation        *string      `json:"annotation,omitempty" validate:"omitempty,min=20,max=2000"`
	Description       *string      `json:"description,omitempty" validate:"omitempty,min=20,max=7000"`
	Category          *int64       `json:"category,omitempty" validate:"omitempty,gt=0"`
	EventDate         *DateTime    `json:"eventDate,omitempty"`
	Location          *LocationDTO `json:"location,omitempty"`
	Paid              *bool        `json:"paid,omitempty"`
	ParticipantLimit  *int         `json:"participantLimit,omitempty" validate:"omitempty,gte=0"`
	RequestModeration *bool        `json:"requestModeration,omitempty"`
	StateAction       *string      `json:"stateAction,omitempty" validate:"omitempty,oneof=PUBLISH_EVENT REJECT_EVENT"`
}

// EventResp is the stable API response model.
type EventResp struct {
	ID                int64     `json:"id"`
	Title             string    `json:"title"`
	Annotation        string    `json:"annotation"`
	Description       string    `json:"description"`
	Category          int64     `json:"category"`
	EventDate         DateTime  `json:"eventDate"`
	LocationID        int64     `json:"location_id"`
	Paid              bool      `json:"paid"`
	ParticipantLimit  int       `json:"participantLimit"`
	RequestModeration bool      `json:"requestModeration"`
	InitiatorID       int64     `json:"initiator_id"`
	State             string    `json:"state"`
	CreatedOn         DateTime  `json:"createdOn"`
	PublishedOn       *DateTime `json:"publishedOn,omitempty"`
	Views             int64     `json:"views"`
	ConfirmedRequests int       `json:"confirmedRequests"`
}
