package domain

import (
	"time"

	"github.com/google/uuid"
)

// Trip is an organized outing. The organizer never changes after creation.
type Trip struct {
	Entity
	Title       string     `json:"title"`
	Destination string     `json:"destination"`
	Description string     `json:"description"`
	StartAt     time.Time  `json:"start_at"`
	EndAt       time.Time  `json:"end_at"`
	Status      TripStatus `json:"status"`
	OrganizerID uuid.UUID  `json:"organizer_id"`
}

// Participant is a confirmed member of a trip, at most one per (trip, user).
type Participant struct {
	Entity
	TripID uuid.UUID `json:"trip_id"`
	UserID uuid.UUID `json:"user_id"`
	Role   Role      `json:"role"`
}

func NewParticipant(now time.Time, tripID, userID uuid.UUID, role Role) Participant {
	return Participant{
		Entity: NewEntity(now),
		TripID: tripID,
		UserID: userID,
		Role:   role,
	}
}

// JoinRequest is an applicant's ask to join a trip, at most one per (trip, applicant).
// Only PENDING -> APPROVED is reachable.
type JoinRequest struct {
	Entity
	TripID      uuid.UUID     `json:"trip_id"`
	ApplicantID uuid.UUID     `json:"applicant_id"`
	Status      RequestStatus `json:"status"`
	Message     string        `json:"message"`
}

func (r JoinRequest) IsPending() bool {
	return r.Status == RequestPending
}

// TripMessage is an append-only entry of the trip group chat.
type TripMessage struct {
	Entity
	TripID   uuid.UUID `json:"trip_id"`
	SenderID uuid.UUID `json:"sender_id"`
	Content  string    `json:"content"`
	SentAt   time.Time `json:"sent_at"`
}
