package domain

type EventStatus string

const (
	StatusPending   EventStatus = "PENDING"
	StatusPublished EventStatus = "PUBLISHED"
	StatusCanceled  EventStatus = "CANCELED"
)

func (s EventStatus) Valid() bool {
	return s == StatusPending || s == StatusPublished || s == StatusCanceled
}

type RequestStatus string

const (
	RequestPending   RequestStatus = "PENDING"
	RequestConfirmed RequestStatus = "CONFIRMED"
	RequestRejected  RequestStatus = "REJECTED"
	RequestCanceled  RequestStatus = "CANCELED"
)

func (s RequestStatus) Valid() bool {
	return s == RequestPending || s == RequestConfirmed || s == RequestRejected || s == RequestCanceled
}

// UserStateAction is the initiator-side review toggle in a user patch.
type UserStateAction string

const (
	SendToReview UserStateAction = "SEND_TO_REVIEW"
	CancelReview UserStateAction = "CANCEL_REVIEW"
)

func (a UserStateAction) Valid() bool {
	return a == SendToReview || a == CancelReview
}

// AdminStateAction is the moderation verdict in an admin patch.
type AdminStateAction string

const (
	PublishEvent AdminStateAction = "PUBLISH_EVENT"
	RejectEvent  AdminStateAction = "REJECT_EVENT"
)

func (a AdminStateAction) Valid() bool {
	return a == PublishEvent || a == RejectEvent
}
